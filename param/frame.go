// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package param

import "time"

// Frame is the per-tick snapshot broadcast to render systems and style
// surfaces. It is a plain value: consumers may keep it across frames and
// compare sequence numbers to detect gaps.
type Frame struct {
	// Seq increments by one per orchestrator tick.
	Seq uint64

	// At is the tick timestamp the frame was produced with.
	At time.Time

	// Section is the id of the active section profile, or "" before the
	// first transition.
	Section string

	// System is the name of the visualization system the section
	// selected, or "" before the first transition.
	System string

	// Current is the smoothed parameter vector, already clamped.
	Current Vector

	// Target is the raw fused target the current vector is easing
	// toward. Mostly useful for instrumentation.
	Target Vector

	// Multipliers are the interaction scalars used for this tick.
	Multipliers Multipliers

	// ScrollProgress is the page scroll position in [0, 1].
	ScrollProgress float64

	// Energy is the smoothed composite interaction energy in [0, 1].
	Energy float64

	// Quality is the governor's current tier.
	Quality QualityLevel

	// PixelRatioScale and ParticleScale are Quality's scales, copied in
	// so consumers need not re-derive them.
	PixelRatioScale float64
	ParticleScale   float64
}
