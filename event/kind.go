// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package event

import "fmt"

// Kind tags an event with its payload type.
type Kind uint8

const (
	// KindSectionTransition fires when the orchestrator adopts a new
	// section profile.
	KindSectionTransition Kind = iota

	// KindSystemSwitched fires when a canvas group activates a
	// different visualization system.
	KindSystemSwitched

	// KindContextLost fires when a rendering context reports loss.
	KindContextLost

	// KindContextRestored fires after a successful restoration.
	KindContextRestored

	// KindContextFailed fires when restoration attempts are exhausted
	// and the context is permanently dead.
	KindContextFailed

	// KindQualityChanged fires when the governor steps the quality
	// tier.
	KindQualityChanged
)

// String returns a short name for the kind, stable for log output.
func (k Kind) String() string {
	switch k {
	case KindSectionTransition:
		return "section-transition"
	case KindSystemSwitched:
		return "system-switched"
	case KindContextLost:
		return "context-lost"
	case KindContextRestored:
		return "context-restored"
	case KindContextFailed:
		return "context-failed"
	case KindQualityChanged:
		return "quality-changed"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}
