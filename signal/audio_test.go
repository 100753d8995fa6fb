// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package signal

import (
	"math"
	"testing"
	"time"
)

// TestSpectrumAnalyzerBands verifies the bass/mid/treble split and the
// weighted composite energy.
func TestSpectrumAnalyzerBands(t *testing.T) {
	var a SpectrumAnalyzer

	// 16 bins: bass = bins 0-1, mid = 2-7, treble = 8-15.
	bins := make([]float64, 16)
	for i := 0; i < 2; i++ {
		bins[i] = 1.0
	}
	for i := 2; i < 8; i++ {
		bins[i] = 0.5
	}
	for i := 8; i < 16; i++ {
		bins[i] = 0.25
	}

	s := a.Observe(bins, t0)
	if math.Abs(s.X-1.0) > 1e-10 {
		t.Errorf("bass = %v, want 1", s.X)
	}
	if math.Abs(s.Y-0.5) > 1e-10 {
		t.Errorf("mid = %v, want 0.5", s.Y)
	}
	if math.Abs(s.Value-0.25) > 1e-10 {
		t.Errorf("treble = %v, want 0.25", s.Value)
	}

	want := 0.5*1.0 + 0.3*0.5 + 0.2*0.25
	if math.Abs(s.Energy-want) > 1e-10 {
		t.Errorf("energy = %v, want %v", s.Energy, want)
	}
}

// TestSpectrumAnalyzerEmpty verifies that no spectrum means an all-zero
// sample rather than a panic.
func TestSpectrumAnalyzerEmpty(t *testing.T) {
	var a SpectrumAnalyzer
	s := a.Observe(nil, t0)
	if s.X != 0 || s.Y != 0 || s.Value != 0 || s.Energy != 0 {
		t.Errorf("empty spectrum sample = %+v, want zero bands", s)
	}
}

// TestSpectrumAnalyzerTinySpectrum verifies band splitting never indexes
// out of range for degenerate bin counts.
func TestSpectrumAnalyzerTinySpectrum(t *testing.T) {
	var a SpectrumAnalyzer
	for _, n := range []int{1, 2, 3} {
		bins := make([]float64, n)
		for i := range bins {
			bins[i] = 0.5
		}
		s := a.Observe(bins, t0)
		if s.Energy < 0 || s.Energy > 1 {
			t.Errorf("%d bins: energy = %v out of range", n, s.Energy)
		}
	}
}

// TestSpectrumAnalyzerClampsBins verifies hot bins cannot push a band
// above 1.
func TestSpectrumAnalyzerClampsBins(t *testing.T) {
	var a SpectrumAnalyzer
	bins := []float64{4, 4, 4, 4, 4, 4, 4, 4}
	s := a.Observe(bins, t0)
	if s.X > 1 || s.Y > 1 || s.Value > 1 || s.Energy > 1 {
		t.Errorf("bands exceeded 1: %+v", s)
	}
}

// TestDiurnalFactor verifies the trough, the peak and the range.
func TestDiurnalFactor(t *testing.T) {
	trough := time.Date(2026, 3, 14, 3, 0, 0, 0, time.UTC)
	if got := DiurnalFactor(trough); math.Abs(got) > 1e-10 {
		t.Errorf("DiurnalFactor(03:00) = %v, want 0", got)
	}

	peak := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	if got := DiurnalFactor(peak); math.Abs(got-1) > 1e-10 {
		t.Errorf("DiurnalFactor(15:00) = %v, want 1", got)
	}

	for h := 0; h < 24; h++ {
		got := DiurnalFactor(time.Date(2026, 3, 14, h, 30, 0, 0, time.UTC))
		if got < 0 || got > 1 {
			t.Errorf("DiurnalFactor(%02d:30) = %v out of [0,1]", h, got)
		}
	}
}

// TestClockSampleEnvelope verifies clock samples carry no interaction
// energy.
func TestClockSampleEnvelope(t *testing.T) {
	s := ClockSample(t0)
	if s.Kind != KindClock {
		t.Errorf("kind = %v, want clock", s.Kind)
	}
	if s.Energy != 0 {
		t.Errorf("clock energy = %v, want 0", s.Energy)
	}
}

// TestKindString verifies the kind names used in logs.
func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindPointer, "pointer"},
		{KindScroll, "scroll"},
		{KindHover, "hover"},
		{KindVisibility, "visibility"},
		{KindAudio, "audio"},
		{KindClock, "clock"},
		{Kind(200), "Kind(200)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind.String() = %q, want %q", got, tt.want)
		}
	}
}
