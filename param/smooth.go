// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package param

import (
	"math"
	"time"
)

// Smoothing time constants. Tau is the first-order lag for most
// channels; rotations use a shorter constant so camera-like motion stays
// responsive while color and density glide.
const (
	// Tau is the default exponential smoothing time constant. After one
	// Tau the current vector has covered about 63% of the distance to
	// the target, after three about 95%.
	Tau = 220 * time.Millisecond

	// RotTau is the smoothing constant for the 4D rotation planes.
	RotTau = 90 * time.Millisecond

	// MaxStep caps the Δt used for one smoothing step. Ticks delayed
	// longer than this (background tab, debugger pause) ease over a few
	// frames instead of snapping the full distance at once.
	MaxStep = 100 * time.Millisecond
)

// SmoothFactor converts an elapsed duration and a time constant into a
// per-step interpolation factor in [0, 1] using 1 - e^(-Δt/τ). The same
// wall-clock interval yields the same total convergence whether it is
// covered by one slow frame or many fast ones.
func SmoothFactor(dt, tau time.Duration) float64 {
	if dt <= 0 {
		return 0
	}
	if tau <= 0 {
		return 1
	}
	return 1 - math.Exp(-dt.Seconds()/tau.Seconds())
}

// ClampStep limits dt to MaxStep. Negative intervals (clock steps
// backwards) collapse to zero.
func ClampStep(dt time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if dt > MaxStep {
		return MaxStep
	}
	return dt
}

// Approach eases current toward target by one step of dt and returns the
// new current vector. dt is clamped to MaxStep first. Hue travels along
// the shortest arc; the rotation planes use RotTau, everything else Tau.
func Approach(current, target Vector, dt time.Duration) Vector {
	return ApproachWith(current, target, dt, Tau, RotTau)
}

// ApproachWith is Approach with explicit time constants, for hosts that
// tune easing. Non-positive constants converge in a single step.
func ApproachWith(current, target Vector, dt time.Duration, tau, rotTau time.Duration) Vector {
	dt = ClampStep(dt)
	k := SmoothFactor(dt, tau)
	kr := SmoothFactor(dt, rotTau)

	current.Intensity = lerp(current.Intensity, target.Intensity, k)
	current.Chaos = lerp(current.Chaos, target.Chaos, k)
	current.Speed = lerp(current.Speed, target.Speed, k)
	current.Hue = WrapHue(current.Hue + HueDistance(current.Hue, target.Hue)*k)
	current.RGBOffset = lerp(current.RGBOffset, target.RGBOffset, k)
	current.Moire = lerp(current.Moire, target.Moire, k)
	current.GridDensity = lerp(current.GridDensity, target.GridDensity, k)
	current.Morph = lerp(current.Morph, target.Morph, k)
	current.RotXW = lerp(current.RotXW, target.RotXW, kr)
	current.RotYW = lerp(current.RotYW, target.RotYW, kr)
	current.RotZW = lerp(current.RotZW, target.RotZW, kr)
	return current
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
