// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package signal

import "time"

// Band weights for the composite audio energy. Bass carries most of the
// perceptual weight for reactive visuals.
const (
	bassWeight   = 0.5
	midWeight    = 0.3
	trebleWeight = 0.2
)

// SpectrumAnalyzer folds a frequency spectrum into three normalized
// bands. Bin amplitudes are expected in [0, 1]; the band split follows
// the usual analyser convention of bass in the bottom eighth of bins,
// mids up to the midpoint, treble above.
type SpectrumAnalyzer struct{}

// Observe folds one spectrum reading into an audio sample with X = bass,
// Y = mid, Value = treble. An empty spectrum yields an all-zero sample,
// which downstream fusion treats as "no audio" rather than silence.
func (SpectrumAnalyzer) Observe(bins []float64, at time.Time) Sample {
	s := Sample{Kind: KindAudio, At: at}
	if len(bins) == 0 {
		return s
	}

	bassEnd := len(bins) / 8
	if bassEnd < 1 {
		bassEnd = 1
	}
	midEnd := len(bins) / 2
	if midEnd <= bassEnd {
		midEnd = bassEnd + 1
		if midEnd > len(bins) {
			midEnd = len(bins)
		}
	}

	s.X = bandMean(bins[:bassEnd])
	s.Y = bandMean(bins[bassEnd:midEnd])
	s.Value = bandMean(bins[midEnd:])
	s.Energy = clamp01(bassWeight*s.X + midWeight*s.Y + trebleWeight*s.Value)
	return s
}

func bandMean(bins []float64) float64 {
	if len(bins) == 0 {
		return 0
	}
	var sum float64
	for _, b := range bins {
		sum += clamp01(b)
	}
	return sum / float64(len(bins))
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
