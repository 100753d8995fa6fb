// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package param

import "fmt"

// QualityLevel selects one of the discrete rendering quality tiers the
// governor steps between. Tiers trade resolution and particle counts for
// frame rate; there are deliberately only three so oscillation between
// neighboring tiers stays visible and debuggable.
type QualityLevel int

const (
	// QualityLow renders at half resolution with sparse particles.
	QualityLow QualityLevel = iota

	// QualityMedium renders at three-quarter resolution.
	QualityMedium

	// QualityHigh is full resolution and full particle density.
	QualityHigh
)

// String returns a human-readable name for the quality level.
func (q QualityLevel) String() string {
	switch q {
	case QualityLow:
		return "low"
	case QualityMedium:
		return "medium"
	case QualityHigh:
		return "high"
	default:
		return fmt.Sprintf("QualityLevel(%d)", int(q))
	}
}

// ParseQualityLevel converts a configuration string into a QualityLevel.
func ParseQualityLevel(s string) (QualityLevel, error) {
	switch s {
	case "low":
		return QualityLow, nil
	case "medium":
		return QualityMedium, nil
	case "high":
		return QualityHigh, nil
	default:
		return QualityHigh, fmt.Errorf("param: unknown quality level %q", s)
	}
}

// PixelRatioScale returns the factor applied to the device pixel ratio
// when sizing canvas backing stores at this level.
func (q QualityLevel) PixelRatioScale() float64 {
	switch q {
	case QualityLow:
		return 0.5
	case QualityMedium:
		return 0.75
	default:
		return 1.0
	}
}

// ParticleScale returns the factor applied to particle and instance
// counts at this level.
func (q QualityLevel) ParticleScale() float64 {
	switch q {
	case QualityLow:
		return 0.35
	case QualityMedium:
		return 0.7
	default:
		return 1.0
	}
}

// Lower returns the next tier down, or the level itself if already at
// QualityLow.
func (q QualityLevel) Lower() QualityLevel {
	if q <= QualityLow {
		return QualityLow
	}
	return q - 1
}

// Higher returns the next tier up, or the level itself if already at
// QualityHigh.
func (q QualityLevel) Higher() QualityLevel {
	if q >= QualityHigh {
		return QualityHigh
	}
	return q + 1
}
