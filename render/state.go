// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "fmt"

// State is a rendering context's lifecycle state.
//
// The transitions form a small one-way machine with a single loop:
//
//	Live ──loss──▶ Lost ──tick──▶ Recovering ──success──▶ Live
//	                                   │
//	                                   └─ budget exhausted ──▶ Dead
//
// Dead is terminal. A context that has spent its restoration budget
// stays dead until the surrounding engine replaces it wholesale; its
// canvas group falls back to the software gradient instead.
type State uint8

const (
	// StateLive is the normal operating state.
	StateLive State = iota

	// StateLost means the context reported loss and no restoration
	// attempt has been scheduled yet.
	StateLost

	// StateRecovering means restoration attempts are in flight or
	// scheduled.
	StateRecovering

	// StateDead means the restoration budget is exhausted or the
	// context was destroyed. Terminal.
	StateDead
)

// String returns a short lowercase name for the state.
func (s State) String() string {
	switch s {
	case StateLive:
		return "live"
	case StateLost:
		return "lost"
	case StateRecovering:
		return "recovering"
	case StateDead:
		return "dead"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}
