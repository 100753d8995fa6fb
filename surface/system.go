// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "github.com/gogpu/verve/param"

// System is one visualization program. Implementations own their
// drawing resources for the life of the registration and must survive
// any number of SetActive toggles without reallocating them.
//
// UpdateParams is called once per engine tick while the system is
// active. Implementations must not retain pointers into the engine; the
// frame is a self-contained value. A System's methods are never called
// concurrently with each other.
type System interface {
	// Name identifies the system within its canvas group.
	Name() string

	// SetActive switches parameter delivery and drawing on or off.
	// Implementations must treat this as a visibility toggle, not a
	// lifecycle edge: no allocation, no teardown.
	SetActive(active bool)

	// UpdateParams delivers the per-tick parameter snapshot.
	UpdateParams(frame param.Frame)

	// Dispose releases the system's resources. The registry never
	// calls Dispose during a switch; only engine shutdown does.
	Dispose()
}
