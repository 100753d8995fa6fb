// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package signal

import "time"

// Normalization anchors for the energy field. A signal at or above its
// anchor maps to energy 1; below it scales linearly.
const (
	// PointerFullSpeed is the pointer speed, in pixels per second, that
	// saturates pointer energy.
	PointerFullSpeed = 1500.0

	// ScrollFullVelocity is the scroll speed, in pixels per second,
	// that saturates scroll energy.
	ScrollFullVelocity = 3000.0

	// HoverFullCount is the number of simultaneously hovered elements
	// that saturates hover energy.
	HoverFullCount = 3
)

// Sample is one normalized interaction reading. The payload fields are
// kind-specific:
//
//	KindPointer     X, Y = position px     Value = speed px/s
//	KindScroll      X = velocity px/s      Value = progress [0,1]
//	KindHover       Target = element id    Value = hover count
//	KindVisibility  Target = section id    Value = ratio [0,1]
//	KindAudio       X = bass, Y = mid      Value = treble, all [0,1]
//	KindClock       Value = diurnal factor [0,1]
//
// Energy is the reading normalized to [0, 1] for fusion into the
// composite user-energy multiplier. Kinds that do not express
// interaction intensity (visibility, clock) carry zero energy.
type Sample struct {
	Kind   Kind
	Target string
	X      float64
	Y      float64
	Value  float64
	Energy float64
	At     time.Time
}

func normEnergy(v, full float64) float64 {
	if full <= 0 || v <= 0 {
		return 0
	}
	if v >= full {
		return 1
	}
	return v / full
}
