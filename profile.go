package verve

import "github.com/gogpu/verve/param"

// Visualization system names the default profiles select between.
// Systems are opaque to the engine; these names only have to match the
// names the host registered its surface.System implementations under.
const (
	SystemQuantum     = "quantum"
	SystemHolographic = "holographic"
	SystemFaceted     = "faceted"
)

// DefaultSection is the profile adopted when the engine starts or when
// the very first transition names an unknown section.
const DefaultSection = "home"

// SectionProfile is the authored baseline for one logical page section:
// a base parameter vector plus the visualization system the section
// wants active. Profiles are immutable configuration; the orchestrator
// copies the base vector on every transition and never writes back.
type SectionProfile struct {
	// System names the renderer family this section activates.
	System string

	// Base is the target vector before interaction multipliers.
	Base param.Vector
}

// DefaultProfiles returns the built-in six-section profile set. Hosts
// with their own page structure pass a replacement via WithProfiles or
// load one from TOML with the config package.
func DefaultProfiles() map[string]SectionProfile {
	return map[string]SectionProfile{
		"home": {
			System: SystemQuantum,
			Base: param.Vector{
				Intensity:   0.60,
				Chaos:       0.20,
				Speed:       1.00,
				Hue:         200,
				RGBOffset:   0.30,
				Moire:       0.10,
				GridDensity: 12,
				Morph:       0.50,
			},
		},
		"technology": {
			System: SystemFaceted,
			Base: param.Vector{
				Intensity:   0.70,
				Chaos:       0.10,
				Speed:       0.80,
				Hue:         120,
				RGBOffset:   0.20,
				Moire:       0.05,
				GridDensity: 24,
				Morph:       0.20,
			},
		},
		"portfolio": {
			System: SystemHolographic,
			Base: param.Vector{
				Intensity:   0.85,
				Chaos:       0.45,
				Speed:       1.30,
				Hue:         320,
				RGBOffset:   0.60,
				Moire:       0.35,
				GridDensity: 16,
				Morph:       0.90,
			},
		},
		"research": {
			System: SystemQuantum,
			Base: param.Vector{
				Intensity:   0.50,
				Chaos:       0.30,
				Speed:       0.70,
				Hue:         260,
				RGBOffset:   0.25,
				Moire:       0.15,
				GridDensity: 32,
				Morph:       0.40,
			},
		},
		"about": {
			System: SystemFaceted,
			Base: param.Vector{
				Intensity:   0.45,
				Chaos:       0.08,
				Speed:       0.60,
				Hue:         40,
				RGBOffset:   0.10,
				Moire:       0.05,
				GridDensity: 8,
				Morph:       0.30,
			},
		},
		"contact": {
			System: SystemHolographic,
			Base: param.Vector{
				Intensity:   0.65,
				Chaos:       0.25,
				Speed:       0.90,
				Hue:         180,
				RGBOffset:   0.40,
				Moire:       0.20,
				GridDensity: 10,
				Morph:       0.60,
			},
		},
	}
}
