// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"

	"github.com/gogpu/verve/param"
)

// stubSystem records lifecycle calls for registry tests.
type stubSystem struct {
	name      string
	active    bool
	activates int
	frames    int
	disposed  bool
}

func (s *stubSystem) Name() string { return s.name }

func (s *stubSystem) SetActive(active bool) {
	s.active = active
	s.activates++
}

func (s *stubSystem) UpdateParams(param.Frame) { s.frames++ }

func (s *stubSystem) Dispose() { s.disposed = true }

// TestRegistryTargets tests target registration, update and stable
// ordering.
func TestRegistryTargets(t *testing.T) {
	r := NewRegistry()

	r.AddTarget("accent", 10, 0.2)
	r.AddTarget("hero", 100, 1.0)
	r.AddTarget("background", 50, 0.5)
	r.AddTarget("aurora", 50, 0.4)

	got := r.Targets()
	wantOrder := []string{"hero", "aurora", "background", "accent"}
	if len(got) != len(wantOrder) {
		t.Fatalf("Targets() len = %d, want %d", len(got), len(wantOrder))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("Targets()[%d] = %s, want %s", i, got[i].ID, id)
		}
	}

	e, ok := r.Target("hero")
	if !ok {
		t.Fatal("registered target not found")
	}
	if !e.Active {
		t.Error("new target should start active")
	}
	if e.CostEstimate != 1.0 {
		t.Errorf("CostEstimate = %v, want 1.0", e.CostEstimate)
	}
}

// TestRegistryReAddPreservesActivation tests that re-adding a target
// updates priority without resurrecting a deactivated target.
func TestRegistryReAddPreservesActivation(t *testing.T) {
	r := NewRegistry()

	r.AddTarget("hero", 100, 1.0)
	r.SetActive("hero", false)
	r.AddTarget("hero", 90, 0.8)

	e, _ := r.Target("hero")
	if e.Active {
		t.Error("re-add resurrected a deactivated target")
	}
	if e.Priority != 90 {
		t.Errorf("Priority = %d, want 90", e.Priority)
	}
}

// TestRegistryActiveTargets tests activation filtering and cost
// accounting.
func TestRegistryActiveTargets(t *testing.T) {
	r := NewRegistry()

	r.AddTarget("hero", 100, 1.0)
	r.AddTarget("background", 50, 0.5)
	r.AddTarget("accent", 10, 0.25)

	if !r.SetActive("background", false) {
		t.Fatal("SetActive on known target reported unknown")
	}
	if r.SetActive("ghost", true) {
		t.Error("SetActive on unknown target reported known")
	}

	active := r.ActiveTargets()
	if len(active) != 2 {
		t.Fatalf("ActiveTargets() len = %d, want 2", len(active))
	}
	if active[0].ID != "hero" || active[1].ID != "accent" {
		t.Errorf("ActiveTargets() order = %s, %s", active[0].ID, active[1].ID)
	}

	if cost := r.TotalActiveCost(); cost != 1.25 {
		t.Errorf("TotalActiveCost() = %v, want 1.25", cost)
	}

	r.RemoveTarget("accent")
	if _, ok := r.Target("accent"); ok {
		t.Error("target still present after RemoveTarget")
	}
}

// TestRegistryAddSystem tests that the first system in a group becomes
// active and later ones join deactivated.
func TestRegistryAddSystem(t *testing.T) {
	r := NewRegistry()

	first := &stubSystem{name: "quantum"}
	second := &stubSystem{name: "holographic"}

	if err := r.AddSystem("hero", first); err != nil {
		t.Fatalf("AddSystem(quantum): %v", err)
	}
	if err := r.AddSystem("hero", second); err != nil {
		t.Fatalf("AddSystem(holographic): %v", err)
	}

	if !first.active {
		t.Error("first system should be activated on registration")
	}
	if second.active {
		t.Error("second system should join deactivated")
	}

	sys, ok := r.ActiveSystem("hero")
	if !ok || sys.Name() != "quantum" {
		t.Errorf("ActiveSystem() = %v, %v, want quantum", sys, ok)
	}

	if err := r.AddSystem("hero", &stubSystem{name: "quantum"}); err == nil {
		t.Error("duplicate AddSystem succeeded, want error")
	} else {
		var exists *SystemExistsError
		if !errors.As(err, &exists) {
			t.Errorf("duplicate AddSystem error = %T, want *SystemExistsError", err)
		}
	}

	if err := r.AddSystem("hero", nil); !errors.Is(err, ErrNilSystem) {
		t.Errorf("AddSystem(nil) error = %v, want ErrNilSystem", err)
	}
}

// TestRegistryActivateSystem tests hot switching: activation toggles
// only, never disposal.
func TestRegistryActivateSystem(t *testing.T) {
	r := NewRegistry()

	quantum := &stubSystem{name: "quantum"}
	holo := &stubSystem{name: "holographic"}
	r.AddSystem("hero", quantum)
	r.AddSystem("hero", holo)

	prev, err := r.ActivateSystem("hero", "holographic")
	if err != nil {
		t.Fatalf("ActivateSystem: %v", err)
	}
	if prev != "quantum" {
		t.Errorf("prev = %s, want quantum", prev)
	}
	if quantum.active || !holo.active {
		t.Errorf("activation flags: quantum = %v holo = %v", quantum.active, holo.active)
	}
	if quantum.disposed || holo.disposed {
		t.Error("switch disposed a system")
	}

	// Switching to the already-active system must not re-toggle.
	toggles := holo.activates
	prev, err = r.ActivateSystem("hero", "holographic")
	if err != nil {
		t.Fatalf("idempotent ActivateSystem: %v", err)
	}
	if prev != "holographic" {
		t.Errorf("idempotent prev = %s, want holographic", prev)
	}
	if holo.activates != toggles {
		t.Error("idempotent switch re-toggled the active system")
	}
}

// TestRegistryActivateSystemErrors tests the typed errors for unknown
// groups and systems.
func TestRegistryActivateSystemErrors(t *testing.T) {
	r := NewRegistry()
	r.AddSystem("hero", &stubSystem{name: "quantum"})

	_, err := r.ActivateSystem("sidebar", "quantum")
	var groupErr *GroupNotFoundError
	if !errors.As(err, &groupErr) {
		t.Errorf("unknown group error = %T, want *GroupNotFoundError", err)
	}

	_, err = r.ActivateSystem("hero", "faceted")
	var sysErr *SystemNotFoundError
	if !errors.As(err, &sysErr) {
		t.Errorf("unknown system error = %T, want *SystemNotFoundError", err)
	}
	if err != nil && err.Error() != "surface: system not found: hero/faceted" {
		t.Errorf("error text = %q", err.Error())
	}
}

// TestRegistryActiveSystems tests stable cross-group broadcast order.
func TestRegistryActiveSystems(t *testing.T) {
	r := NewRegistry()

	r.AddSystem("hero", &stubSystem{name: "quantum"})
	r.AddSystem("accent", &stubSystem{name: "faceted"})
	r.AddSystem("background", &stubSystem{name: "holographic"})

	got := r.ActiveSystems()
	wantNames := []string{"faceted", "holographic", "quantum"}
	if len(got) != len(wantNames) {
		t.Fatalf("ActiveSystems() len = %d, want %d", len(got), len(wantNames))
	}
	for i, want := range wantNames {
		if got[i].Name() != want {
			t.Errorf("ActiveSystems()[%d] = %s, want %s", i, got[i].Name(), want)
		}
	}
}

// TestRegistryDisposeAll tests that shutdown disposes every resident
// system, active or not.
func TestRegistryDisposeAll(t *testing.T) {
	r := NewRegistry()

	quantum := &stubSystem{name: "quantum"}
	holo := &stubSystem{name: "holographic"}
	r.AddSystem("hero", quantum)
	r.AddSystem("hero", holo)
	r.AddTarget("hero", 100, 1.0)

	r.DisposeAll()

	if !quantum.disposed || !holo.disposed {
		t.Error("DisposeAll left systems undisposed")
	}
	if len(r.Groups()) != 0 {
		t.Error("groups survive DisposeAll")
	}
	if len(r.Targets()) != 0 {
		t.Error("targets survive DisposeAll")
	}
}

// TestRegistrySystemsOrder tests registration-order listing.
func TestRegistrySystemsOrder(t *testing.T) {
	r := NewRegistry()

	r.AddSystem("hero", &stubSystem{name: "quantum"})
	r.AddSystem("hero", &stubSystem{name: "holographic"})
	r.AddSystem("hero", &stubSystem{name: "faceted"})

	got := r.Systems("hero")
	want := []string{"quantum", "holographic", "faceted"}
	if len(got) != len(want) {
		t.Fatalf("Systems() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Systems()[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if r.Systems("ghost") != nil {
		t.Error("Systems() on unknown group should be nil")
	}
}
