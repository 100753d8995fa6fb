// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package param

import "math"

// Channel bounds. The orchestrator clamps every target vector to these
// ranges after multiplier application, so renderers can treat them as
// hard guarantees.
const (
	// IntensityMax allows headroom above 1.0 so interaction bursts can
	// overdrive brightness before the renderer's tonemap flattens out.
	IntensityMin = 0.0
	IntensityMax = 1.8

	// Chaos is a blend weight between ordered and turbulent variants of
	// a system's geometry.
	ChaosMin = 0.0
	ChaosMax = 1.0

	// Speed scales animation clocks. The lower bound keeps motion alive
	// even in the calmest profile; fully frozen surfaces read as broken.
	SpeedMin = 0.05
	SpeedMax = 3.0

	// Hue is in degrees and wraps rather than clamps.
	HueMin = 0.0
	HueMax = 360.0

	// RGBOffset is the chromatic aberration distance in source pixels.
	RGBOffsetMin = 0.0
	RGBOffsetMax = 2.0

	// Moire is the interference-pattern strength.
	MoireMin = 0.0
	MoireMax = 1.0

	// GridDensity is the lattice subdivision count per axis.
	GridDensityMin = 1.0
	GridDensityMax = 64.0

	// Morph interpolates between a system's base and alternate shapes;
	// values above 1 extrapolate past the alternate.
	MorphMin = 0.0
	MorphMax = 2.0

	// Rotation planes are radians in the XW, YW and ZW hyperplanes.
	RotMin = -math.Pi
	RotMax = math.Pi
)

// Vector is one point in the visual parameter plane. The zero value is a
// valid (dark, static) vector; most callers start from a section
// profile's base vector instead.
type Vector struct {
	// Intensity is the overall energy and brightness drive.
	Intensity float64
	// Chaos blends ordered geometry toward turbulence.
	Chaos float64
	// Speed scales the renderer's animation clock.
	Speed float64
	// Hue is the base hue angle in degrees, wrapped to [0, 360).
	Hue float64
	// RGBOffset is the chromatic aberration distance.
	RGBOffset float64
	// Moire is the interference-pattern strength.
	Moire float64
	// GridDensity is the lattice subdivision count.
	GridDensity float64
	// Morph is the shape interpolation factor.
	Morph float64
	// RotXW, RotYW and RotZW are 4D rotation angles in radians.
	RotXW float64
	RotYW float64
	RotZW float64
}

// Clamped returns v with every channel forced into its documented range.
// Hue wraps; all other channels saturate.
func (v Vector) Clamped() Vector {
	v.Intensity = clamp(v.Intensity, IntensityMin, IntensityMax)
	v.Chaos = clamp(v.Chaos, ChaosMin, ChaosMax)
	v.Speed = clamp(v.Speed, SpeedMin, SpeedMax)
	v.Hue = WrapHue(v.Hue)
	v.RGBOffset = clamp(v.RGBOffset, RGBOffsetMin, RGBOffsetMax)
	v.Moire = clamp(v.Moire, MoireMin, MoireMax)
	v.GridDensity = clamp(v.GridDensity, GridDensityMin, GridDensityMax)
	v.Morph = clamp(v.Morph, MorphMin, MorphMax)
	v.RotXW = clamp(v.RotXW, RotMin, RotMax)
	v.RotYW = clamp(v.RotYW, RotMin, RotMax)
	v.RotZW = clamp(v.RotZW, RotMin, RotMax)
	return v
}

// Scaled returns v with the energy-coupled channels (intensity, chaos,
// speed, moiré, rgb offset) multiplied by f. Hue, grid density, morph and
// the rotation planes are positional rather than energetic and are left
// untouched. The result is not clamped.
func (v Vector) Scaled(f float64) Vector {
	v.Intensity *= f
	v.Chaos *= f
	v.Speed *= f
	v.Moire *= f
	v.RGBOffset *= f
	return v
}

// Approx reports whether every channel of v is within eps of the
// corresponding channel of o. Hue is compared along the shortest arc.
func (v Vector) Approx(o Vector, eps float64) bool {
	return math.Abs(v.Intensity-o.Intensity) <= eps &&
		math.Abs(v.Chaos-o.Chaos) <= eps &&
		math.Abs(v.Speed-o.Speed) <= eps &&
		math.Abs(HueDistance(v.Hue, o.Hue)) <= eps &&
		math.Abs(v.RGBOffset-o.RGBOffset) <= eps &&
		math.Abs(v.Moire-o.Moire) <= eps &&
		math.Abs(v.GridDensity-o.GridDensity) <= eps &&
		math.Abs(v.Morph-o.Morph) <= eps &&
		math.Abs(v.RotXW-o.RotXW) <= eps &&
		math.Abs(v.RotYW-o.RotYW) <= eps &&
		math.Abs(v.RotZW-o.RotZW) <= eps
}

// WrapHue normalizes a hue angle in degrees to [0, 360).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// HueDistance returns the signed shortest angular distance in degrees
// from hue a to hue b, in (-180, 180].
func HueDistance(a, b float64) float64 {
	d := WrapHue(b) - WrapHue(a)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
