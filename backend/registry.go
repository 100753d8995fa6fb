package backend

import (
	"fmt"
	"sync"

	"github.com/gogpu/verve/render"
)

// ProviderFactory creates (or returns a shared) surface provider.
// Provider packages register factories from init(); factories that
// return a process-wide singleton keep probe results cached across
// registry calls.
type ProviderFactory func() render.SurfaceProvider

// registry holds registered providers.
var (
	registryMu sync.RWMutex
	providers  = make(map[string]ProviderFactory)
	// Priority order for provider selection (first available wins).
	// WGPU > Ebiten > Soft (WGPU is fastest, Soft is the fallback).
	providerPriority = []string{ProviderWGPU, ProviderEbiten, ProviderSoft}
)

// Register registers a provider factory with the given name.
// This is typically called from init() functions in provider packages.
// If a provider with the same name is already registered, it will be replaced.
func Register(name string, factory ProviderFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	providers[name] = factory
}

// Unregister removes a provider from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(providers, name)
}

// Registered returns a list of registered provider names.
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a provider with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := providers[name]
	return ok
}

// Available returns the names of registered providers whose backend
// probes as usable on this machine, best first.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var names []string
	seen := make(map[string]bool)
	for _, name := range providerPriority {
		if factory, ok := providers[name]; ok {
			seen[name] = true
			if p := factory(); p != nil && p.Available() {
				names = append(names, name)
			}
		}
	}
	for name, factory := range providers {
		if seen[name] {
			continue
		}
		if p := factory(); p != nil && p.Available() {
			names = append(names, name)
		}
	}
	return names
}

// Get returns a provider instance by name.
// Returns nil if the provider is not registered.
func Get(name string) render.SurfaceProvider {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := providers[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available provider based on priority.
// Each candidate is probed via Available() before it is chosen.
// Returns nil if no provider is usable.
func Default() render.SurfaceProvider {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range providerPriority {
		if factory, ok := providers[name]; ok {
			if p := factory(); p != nil && p.Available() {
				return p
			}
		}
	}

	// Fallback: first registered provider that probes as usable.
	for _, factory := range providers {
		if p := factory(); p != nil && p.Available() {
			return p
		}
	}

	return nil
}

// MustDefault returns the default provider or panics.
func MustDefault() render.SurfaceProvider {
	p := Default()
	if p == nil {
		panic("backend: no provider available")
	}
	return p
}

// Select returns the provider with the given name, or the best
// available provider when name is empty or "auto". This is the entry
// point used by engine configuration.
func Select(name string) (render.SurfaceProvider, error) {
	if name == "" || name == "auto" {
		p := Default()
		if p == nil {
			return nil, ErrProviderNotAvailable
		}
		return p, nil
	}

	p := Get(name)
	if p == nil {
		return nil, fmt.Errorf("backend: %q: %w", name, ErrProviderNotAvailable)
	}
	if !p.Available() {
		return nil, fmt.Errorf("backend: %q: %w", name, ErrProviderNotAvailable)
	}
	return p, nil
}
