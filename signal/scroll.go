// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package signal

import (
	"math"
	"time"
)

// ScrollTracker derives progress, velocity and energy from successive
// scroll offsets. The zero value is ready to use.
type ScrollTracker struct {
	lastOffset float64
	lastAt     time.Time
	primed     bool
}

// Observe records the current scroll offset and the maximum scrollable
// extent, both in pixels, and returns the derived sample. Progress is
// offset/max clamped to [0, 1]; an unscrollable page (max <= 0) reports
// progress 0. Velocity is the absolute offset delta over elapsed time;
// the first observation reports zero velocity.
func (t *ScrollTracker) Observe(offset, max float64, at time.Time) Sample {
	s := Sample{Kind: KindScroll, At: at}

	if max > 0 {
		s.Value = offset / max
		if s.Value < 0 {
			s.Value = 0
		} else if s.Value > 1 {
			s.Value = 1
		}
	}

	if t.primed {
		dt := at.Sub(t.lastAt).Seconds()
		if dt > 0 {
			s.X = math.Abs(offset-t.lastOffset) / dt
			s.Energy = normEnergy(s.X, ScrollFullVelocity)
		}
	}

	t.lastOffset = offset
	t.lastAt = at
	t.primed = true
	return s
}
