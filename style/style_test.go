// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package style

import (
	"sync"
	"testing"

	"github.com/gogpu/verve/param"
)

func TestVarMapSetGet(t *testing.T) {
	m := NewVarMap()
	m.SetVar("--verve-intensity", "0.812")

	got, ok := m.Get("--verve-intensity")
	if !ok {
		t.Fatal("Get() did not find the variable")
	}
	if got != "0.812" {
		t.Errorf("Get() = %q, want %q", got, "0.812")
	}
	if _, ok := m.Get("--verve-missing"); ok {
		t.Error("Get(missing) should report not found")
	}
}

func TestVarMapSnapshotIsCopy(t *testing.T) {
	m := NewVarMap()
	m.SetVar("a", "1")

	snap := m.Snapshot()
	snap["a"] = "changed"

	if got, _ := m.Get("a"); got != "1" {
		t.Errorf("mutating a snapshot changed the map: got %q", got)
	}
}

func TestPushChannels(t *testing.T) {
	m := NewVarMap()
	f := param.Frame{
		Section: "home",
		System:  "quantum",
		Current: param.Vector{
			Intensity: 0.8126,
			Hue:       210,
			Speed:     1.5,
		},
		Multipliers:    param.Neutral(),
		ScrollProgress: 0.25,
	}

	Push(m, f)

	tests := []struct {
		name, want string
	}{
		{"--verve-intensity", "0.813"},
		{"--verve-hue", "210.000"},
		{"--verve-speed", "1.500"},
		{"--verve-chaos", "0.000"},
		{"--verve-mouse-activity", "1.000"},
		{"--verve-user-energy", "1.000"},
		{"--verve-scroll-progress", "0.250"},
		{"--verve-section", "home"},
		{"--verve-system", "quantum"},
	}
	for _, tt := range tests {
		got, ok := m.Get(tt.name)
		if !ok {
			t.Errorf("Push() did not set %s", tt.name)
			continue
		}
		if got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestPushVariableCount(t *testing.T) {
	m := NewVarMap()
	Push(m, param.Frame{})

	// 11 channels + 5 multipliers + scroll progress + section + system.
	if m.Len() != 19 {
		t.Errorf("Push() set %d variables, want 19", m.Len())
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.000"},
		{0.8126, "0.813"},
		{-1.5, "-1.500"},
		{360, "360.000"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestVarMapConcurrent(t *testing.T) {
	m := NewVarMap()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				Push(m, param.Frame{Multipliers: param.Neutral()})
				m.Snapshot()
			}
		}()
	}
	wg.Wait()

	if m.Len() != 19 {
		t.Errorf("after concurrent pushes Len() = %d, want 19", m.Len())
	}
}
