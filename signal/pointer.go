// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package signal

import (
	"math"
	"time"
)

// PointerTracker derives speed and energy from successive pointer
// positions. The zero value is ready to use.
type PointerTracker struct {
	lastX, lastY float64
	lastAt       time.Time
	primed       bool
}

// Observe records a pointer position in pixels and returns the derived
// sample. The first observation, and any observation that does not
// advance the clock, reports zero speed.
func (p *PointerTracker) Observe(x, y float64, at time.Time) Sample {
	s := Sample{Kind: KindPointer, X: x, Y: y, At: at}

	if p.primed {
		dt := at.Sub(p.lastAt).Seconds()
		if dt > 0 {
			dx := x - p.lastX
			dy := y - p.lastY
			s.Value = math.Hypot(dx, dy) / dt
			s.Energy = normEnergy(s.Value, PointerFullSpeed)
		}
	}

	p.lastX, p.lastY = x, y
	p.lastAt = at
	p.primed = true
	return s
}

// Reset forgets the previous position, so the next observation reports
// zero speed. Hosts call this when the pointer leaves the window to
// avoid a huge synthetic delta on re-entry.
func (p *PointerTracker) Reset() {
	p.primed = false
}
