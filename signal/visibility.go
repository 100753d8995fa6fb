// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package signal

import (
	"sort"
	"time"
)

// DominanceThreshold is the minimum intersection ratio a section needs
// before it can be reported as dominant. Slightly above one half, so
// two half-visible sections during a scroll never both qualify.
const DominanceThreshold = 0.55

// VisibilityTracker keeps the latest viewport intersection ratio per
// section and answers which section, if any, currently dominates the
// viewport.
type VisibilityTracker struct {
	ratios map[string]float64
}

// Observe records a section's intersection ratio in [0, 1] and returns
// the sample. Out-of-range ratios are clamped.
func (v *VisibilityTracker) Observe(section string, ratio float64, at time.Time) Sample {
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}
	if v.ratios == nil {
		v.ratios = make(map[string]float64)
	}
	v.ratios[section] = ratio
	return Sample{Kind: KindVisibility, Target: section, Value: ratio, At: at}
}

// Dominant returns the section with the highest ratio at or above
// DominanceThreshold. Ties resolve to the lexicographically smallest id
// so the answer is deterministic. ok is false when no section qualifies.
func (v *VisibilityTracker) Dominant() (section string, ratio float64, ok bool) {
	ids := make([]string, 0, len(v.ratios))
	for id := range v.ratios {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		r := v.ratios[id]
		if r >= DominanceThreshold && r > ratio {
			section, ratio, ok = id, r, true
		}
	}
	return section, ratio, ok
}

// Ratio returns the last observed ratio for a section.
func (v *VisibilityTracker) Ratio(section string) float64 {
	return v.ratios[section]
}
