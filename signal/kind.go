// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package signal

import "fmt"

// Kind identifies the input source a Sample was derived from.
type Kind uint8

const (
	// KindPointer is pointer motion: position plus derived speed.
	KindPointer Kind = iota

	// KindScroll is page scroll: progress plus derived velocity.
	KindScroll

	// KindHover is interactive-element hover state.
	KindHover

	// KindVisibility is a section's viewport intersection ratio.
	KindVisibility

	// KindAudio is a frequency-spectrum reading.
	KindAudio

	// KindClock is the slow diurnal factor.
	KindClock
)

// String returns a short lowercase name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPointer:
		return "pointer"
	case KindScroll:
		return "scroll"
	case KindHover:
		return "hover"
	case KindVisibility:
		return "visibility"
	case KindAudio:
		return "audio"
	case KindClock:
		return "clock"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}
