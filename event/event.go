// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package event

import (
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/verve/param"
)

// Event is one discrete notification. ID is unique per event; At is the
// engine tick time the event was produced at.
type Event struct {
	ID      string
	Kind    Kind
	At      time.Time
	Payload Payload
}

// Payload is implemented by the closed set of event payload types.
type Payload interface {
	// EventKind returns the Kind the payload belongs to.
	EventKind() Kind
}

// New stamps a payload into a full event with a fresh id.
func New(at time.Time, p Payload) Event {
	return Event{
		ID:      uuid.NewString(),
		Kind:    p.EventKind(),
		At:      at,
		Payload: p,
	}
}

// SectionTransition reports a section profile change.
type SectionTransition struct {
	// Prev is "" for the first transition after startup.
	Prev string
	Next string
	// System is the visualization system the new section selects.
	System string
}

// EventKind implements Payload.
func (SectionTransition) EventKind() Kind { return KindSectionTransition }

// SystemSwitched reports a canvas group activating a different system.
type SystemSwitched struct {
	Group string
	Prev  string
	Next  string
}

// EventKind implements Payload.
func (SystemSwitched) EventKind() Kind { return KindSystemSwitched }

// ContextLost reports a rendering context entering the lost state.
type ContextLost struct {
	ContextID string
}

// EventKind implements Payload.
func (ContextLost) EventKind() Kind { return KindContextLost }

// ContextRestored reports a successful restoration.
type ContextRestored struct {
	ContextID string
	// Attempt is the restoration attempt that succeeded, starting at 1.
	Attempt int
	// Incarnation identifies the rebuilt context generation.
	Incarnation string
}

// EventKind implements Payload.
func (ContextRestored) EventKind() Kind { return KindContextRestored }

// ContextFailed reports a context whose restoration budget is exhausted.
type ContextFailed struct {
	ContextID string
	Attempts  int
}

// EventKind implements Payload.
func (ContextFailed) EventKind() Kind { return KindContextFailed }

// QualityChanged reports a governor tier step.
type QualityChanged struct {
	Prev param.QualityLevel
	Next param.QualityLevel
	// AvgFPS is the window average that triggered the step.
	AvgFPS float64
}

// EventKind implements Payload.
func (QualityChanged) EventKind() Kind { return KindQualityChanged }
