// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package param

// Multiplier bounds. Each interaction scalar is confined to its own
// band so no single signal can dominate the fused product: even with
// every multiplier pegged, the combined scale stays inside roughly
// [0.38, 5.3] and the subsequent channel clamp absorbs the rest.
const (
	MouseActivityMin = 0.80
	MouseActivityMax = 1.50

	ScrollVelocityMin = 0.90
	ScrollVelocityMax = 1.40

	CardHoverMin = 1.00
	CardHoverMax = 1.35

	TimeOfDayMin = 0.85
	TimeOfDayMax = 1.15

	UserEnergyMin = 0.70
	UserEnergyMax = 1.60
)

// Multipliers are the five bounded scalars the orchestrator derives from
// live interaction signals each frame. They multiply the active section
// profile's base vector to produce the target vector.
type Multipliers struct {
	// MouseActivity rises with recent pointer velocity and decays
	// toward its floor when the pointer rests.
	MouseActivity float64
	// ScrollVelocity rises with recent scroll speed.
	ScrollVelocity float64
	// CardHover is 1 with nothing hovered and grows with the number of
	// simultaneously hovered interactive elements.
	CardHover float64
	// TimeOfDay drifts on a slow diurnal curve, dimming overnight.
	TimeOfDay float64
	// UserEnergy is the smoothed composite of all interaction energy.
	UserEnergy float64
}

// Neutral returns the identity multipliers: every scalar 1, so the
// target vector equals the profile's base vector exactly.
func Neutral() Multipliers {
	return Multipliers{
		MouseActivity:  1,
		ScrollVelocity: 1,
		CardHover:      1,
		TimeOfDay:      1,
		UserEnergy:     1,
	}
}

// Clamped returns m with every scalar forced into its documented band.
func (m Multipliers) Clamped() Multipliers {
	m.MouseActivity = clamp(m.MouseActivity, MouseActivityMin, MouseActivityMax)
	m.ScrollVelocity = clamp(m.ScrollVelocity, ScrollVelocityMin, ScrollVelocityMax)
	m.CardHover = clamp(m.CardHover, CardHoverMin, CardHoverMax)
	m.TimeOfDay = clamp(m.TimeOfDay, TimeOfDayMin, TimeOfDayMax)
	m.UserEnergy = clamp(m.UserEnergy, UserEnergyMin, UserEnergyMax)
	return m
}

// Product returns the combined scale applied to energy-coupled channels.
func (m Multipliers) Product() float64 {
	return m.MouseActivity * m.ScrollVelocity * m.CardHover * m.TimeOfDay * m.UserEnergy
}
