// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface tracks the render targets and visualization systems a
// verve engine broadcasts parameters to.
//
// # Targets
//
// A target is one named drawing destination (a canvas) with a priority
// and an estimated per-frame cost. The engine walks targets in
// descending priority order each tick, so a hero canvas updates before
// background accents. Deactivated targets are skipped but keep their
// registration; toggling a target on and off allocates nothing.
//
// # Systems
//
// A System is a complete visualization program (a particle lattice, a
// volumetric field, a faceted shard cloud) bound to a named canvas
// group. Each group keeps every registered system resident and exactly
// one of them active. Switching the active system is a constant-time
// pair of activation toggles:
//
//	prev, err := reg.ActivateSystem("hero", "holographic")
//
// Nothing is constructed, destroyed or reallocated on a switch, which is
// what makes section-driven system changes cheap enough to run
// mid-scroll. Inactive systems stop receiving parameter updates but
// retain all of their resources.
//
// The registry is safe for concurrent use. It owns no GPU resources
// itself; disposing the systems it holds is the engine's shutdown job.
package surface
