package backend

import (
	"errors"
	"testing"

	"github.com/gogpu/verve/render"
)

// stubProvider is a minimal SurfaceProvider for registry tests.
type stubProvider struct {
	name      string
	available bool
}

func (p *stubProvider) Name() string    { return p.name }
func (p *stubProvider) Available() bool { return p.available }

func (p *stubProvider) CreateCanvas(_ string, _ render.CanvasOptions) (render.Canvas, error) {
	return nil, nil
}

func (p *stubProvider) GetCanvas(_ string) (render.Canvas, bool) { return nil, false }
func (p *stubProvider) DestroyCanvas(_ string) error             { return nil }
func (p *stubProvider) Capabilities() *render.Capabilities       { return nil }

func registerStub(t *testing.T, name string, available bool) *stubProvider {
	t.Helper()
	p := &stubProvider{name: name, available: available}
	Register(name, func() render.SurfaceProvider { return p })
	t.Cleanup(func() { Unregister(name) })
	return p
}

func TestRegisterAndGet(t *testing.T) {
	registerStub(t, "stub", true)

	if !IsRegistered("stub") {
		t.Fatal("stub should be registered")
	}
	p := Get("stub")
	if p == nil {
		t.Fatal("Get(stub) returned nil")
	}
	if p.Name() != "stub" {
		t.Errorf("Get(stub).Name() = %q, want %q", p.Name(), "stub")
	}
}

func TestGetUnregistered(t *testing.T) {
	if p := Get("nonexistent"); p != nil {
		t.Error("Get(nonexistent) should return nil")
	}
}

func TestUnregister(t *testing.T) {
	registerStub(t, "stub-gone", true)

	Unregister("stub-gone")

	if IsRegistered("stub-gone") {
		t.Error("stub-gone should be unregistered")
	}
}

func TestRegistered(t *testing.T) {
	registerStub(t, "stub-a", true)
	registerStub(t, "stub-b", false)

	names := Registered()
	found := map[string]bool{}
	for _, name := range names {
		found[name] = true
	}
	if !found["stub-a"] || !found["stub-b"] {
		t.Errorf("Registered() = %v, want both stub-a and stub-b", names)
	}
}

func TestAvailableProbes(t *testing.T) {
	registerStub(t, "stub-up", true)
	registerStub(t, "stub-down", false)

	names := Available()
	for _, name := range names {
		if name == "stub-down" {
			t.Error("Available() should not include an unusable provider")
		}
	}
	found := false
	for _, name := range names {
		if name == "stub-up" {
			found = true
		}
	}
	if !found {
		t.Errorf("Available() = %v, want stub-up included", names)
	}
}

func TestDefaultPriority(t *testing.T) {
	registerStub(t, ProviderSoft, true)
	registerStub(t, ProviderWGPU, true)

	p := Default()
	if p == nil {
		t.Fatal("Default() returned nil")
	}
	if p.Name() != ProviderWGPU {
		t.Errorf("Default().Name() = %q, want %q (higher priority)", p.Name(), ProviderWGPU)
	}
}

func TestDefaultSkipsUnavailable(t *testing.T) {
	registerStub(t, ProviderWGPU, false)
	registerStub(t, ProviderSoft, true)

	p := Default()
	if p == nil {
		t.Fatal("Default() returned nil")
	}
	if p.Name() != ProviderSoft {
		t.Errorf("Default().Name() = %q, want %q (wgpu probes unusable)", p.Name(), ProviderSoft)
	}
}

func TestDefaultEmpty(t *testing.T) {
	if p := Default(); p != nil {
		t.Errorf("Default() with empty registry = %v, want nil", p.Name())
	}
}

func TestMustDefault(t *testing.T) {
	registerStub(t, ProviderSoft, true)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustDefault() panicked: %v", r)
		}
	}()
	if p := MustDefault(); p == nil {
		t.Error("MustDefault() returned nil")
	}
}

func TestMustDefaultPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustDefault() with empty registry should panic")
		}
	}()
	MustDefault()
}

func TestSelectByName(t *testing.T) {
	registerStub(t, "stub-sel", true)

	p, err := Select("stub-sel")
	if err != nil {
		t.Fatalf("Select(stub-sel) error = %v", err)
	}
	if p.Name() != "stub-sel" {
		t.Errorf("Select(stub-sel).Name() = %q, want %q", p.Name(), "stub-sel")
	}
}

func TestSelectAuto(t *testing.T) {
	registerStub(t, ProviderSoft, true)

	for _, name := range []string{"", "auto"} {
		p, err := Select(name)
		if err != nil {
			t.Fatalf("Select(%q) error = %v", name, err)
		}
		if p == nil {
			t.Fatalf("Select(%q) returned nil provider", name)
		}
	}
}

func TestSelectMissing(t *testing.T) {
	_, err := Select("nonexistent")
	if !errors.Is(err, ErrProviderNotAvailable) {
		t.Errorf("Select(nonexistent) error = %v, want ErrProviderNotAvailable", err)
	}
}

func TestSelectUnavailable(t *testing.T) {
	registerStub(t, "stub-dead", false)

	_, err := Select("stub-dead")
	if !errors.Is(err, ErrProviderNotAvailable) {
		t.Errorf("Select(stub-dead) error = %v, want ErrProviderNotAvailable", err)
	}
}
