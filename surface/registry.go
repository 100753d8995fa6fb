// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"sort"
	"sync"
)

// Entry describes one registered render target.
type Entry struct {
	// ID is the unique identifier for this target.
	ID string

	// Priority determines per-tick visit order (higher = earlier).
	// Conventional priorities:
	//   - 100: hero/foreground canvases
	//   - 50: section backgrounds
	//   - 10: decorative accents
	Priority int

	// Active reports whether the target currently receives updates.
	Active bool

	// CostEstimate is the target's relative per-frame cost, used by the
	// quality governor to weigh total active load. Unitless; 1.0 is a
	// full-screen canvas at full resolution.
	CostEstimate float64
}

// group holds one canvas group's resident systems.
type group struct {
	systems map[string]System
	order   []string
	active  string
}

// Registry tracks render targets and visualization systems. Targets and
// groups are independent namespaces: a target is a drawing destination,
// a group is a slot that exactly one resident System renders into.
//
// All methods are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	targets map[string]*Entry
	groups  map[string]*group
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		targets: make(map[string]*Entry),
		groups:  make(map[string]*group),
	}
}

// AddTarget registers a render target. Re-adding an existing id updates
// its priority and cost but preserves its activation state.
func (r *Registry) AddTarget(id string, priority int, cost float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.targets[id]; ok {
		prev.Priority = priority
		prev.CostEstimate = cost
		return
	}
	r.targets[id] = &Entry{ID: id, Priority: priority, Active: true, CostEstimate: cost}
}

// RemoveTarget drops a target. Removing an unknown id is a no-op.
func (r *Registry) RemoveTarget(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.targets, id)
}

// SetActive toggles a target's update delivery. It reports whether the
// target was known.
func (r *Registry) SetActive(id string, active bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.targets[id]
	if !ok {
		return false
	}
	e.Active = active
	return true
}

// Target returns a copy of a target's entry.
func (r *Registry) Target(id string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.targets[id]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Targets returns copies of all entries ordered by descending priority,
// ties broken by id, so iteration order is stable across ticks.
func (r *Registry) Targets() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedTargets(false)
}

// ActiveTargets returns the active entries in the same stable order as
// Targets.
func (r *Registry) ActiveTargets() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedTargets(true)
}

// TotalActiveCost sums the cost estimates of active targets.
func (r *Registry) TotalActiveCost() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sum float64
	for _, e := range r.targets {
		if e.Active {
			sum += e.CostEstimate
		}
	}
	return sum
}

// sortedTargets returns entry copies by descending priority then id.
// Must be called with the lock held.
func (r *Registry) sortedTargets(onlyActive bool) []Entry {
	if len(r.targets) == 0 {
		return nil
	}

	out := make([]Entry, 0, len(r.targets))
	for _, e := range r.targets {
		if onlyActive && !e.Active {
			continue
		}
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// AddSystem registers a resident system in a canvas group, creating the
// group on first use. The first system added to a group becomes its
// active system.
func (r *Registry) AddSystem(groupName string, sys System) error {
	if sys == nil {
		return ErrNilSystem
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.groups[groupName]
	if !ok {
		g = &group{systems: make(map[string]System)}
		r.groups[groupName] = g
	}

	name := sys.Name()
	if _, exists := g.systems[name]; exists {
		return &SystemExistsError{Group: groupName, Name: name}
	}
	g.systems[name] = sys
	g.order = append(g.order, name)

	if g.active == "" {
		g.active = name
		sys.SetActive(true)
	} else {
		sys.SetActive(false)
	}
	return nil
}

// ActivateSystem makes name the group's active system and returns the
// previously active system's name. The previous system is deactivated,
// not disposed; both keep their resources. Activating the already
// active system is a no-op.
func (r *Registry) ActivateSystem(groupName, name string) (prev string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.groups[groupName]
	if !ok {
		return "", &GroupNotFoundError{Group: groupName}
	}
	next, ok := g.systems[name]
	if !ok {
		return "", &SystemNotFoundError{Group: groupName, Name: name}
	}

	prev = g.active
	if prev == name {
		return prev, nil
	}
	if cur, ok := g.systems[prev]; ok {
		cur.SetActive(false)
	}
	next.SetActive(true)
	g.active = name
	return prev, nil
}

// ActiveSystem returns a group's active system.
func (r *Registry) ActiveSystem(groupName string) (System, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.groups[groupName]
	if !ok || g.active == "" {
		return nil, false
	}
	sys, ok := g.systems[g.active]
	return sys, ok
}

// ActiveSystems returns every group's active system, ordered by group
// name so broadcast order is stable.
func (r *Registry) ActiveSystems() []System {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.groups))
	for name := range r.groups {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]System, 0, len(names))
	for _, name := range names {
		g := r.groups[name]
		if sys, ok := g.systems[g.active]; ok {
			out = append(out, sys)
		}
	}
	return out
}

// Systems returns a group's system names in registration order.
func (r *Registry) Systems(groupName string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.groups[groupName]
	if !ok {
		return nil
	}
	out := make([]string, len(g.order))
	copy(out, g.order)
	return out
}

// Groups returns the group names in sorted order.
func (r *Registry) Groups() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.groups))
	for name := range r.groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DisposeAll disposes every resident system in every group, in stable
// order, and clears the registry. Targets are cleared too.
func (r *Registry) DisposeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.groups))
	for name := range r.groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		g := r.groups[name]
		for _, sysName := range g.order {
			g.systems[sysName].Dispose()
		}
	}
	r.groups = make(map[string]*group)
	r.targets = make(map[string]*Entry)
}

// Errors.
var (
	// ErrNilSystem is returned when a nil System is registered.
	ErrNilSystem = errors.New("surface: nil system")
)

// GroupNotFoundError indicates an operation on an unknown canvas group.
type GroupNotFoundError struct {
	Group string
}

func (e *GroupNotFoundError) Error() string {
	return "surface: canvas group not found: " + e.Group
}

// SystemNotFoundError indicates a named system is not registered in the
// group.
type SystemNotFoundError struct {
	Group string
	Name  string
}

func (e *SystemNotFoundError) Error() string {
	return "surface: system not found: " + e.Group + "/" + e.Name
}

// SystemExistsError indicates a system name is already registered in
// the group.
type SystemExistsError struct {
	Group string
	Name  string
}

func (e *SystemExistsError) Error() string {
	return "surface: system already registered: " + e.Group + "/" + e.Name
}
