// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package style broadcasts parameter frames as string-keyed variables.
//
// The engine pushes every frame to registered Surfaces so late-bound
// consumers (a CSS bridge, a web host, an overlay) can bind visuals to
// the same parameter plane the renderers use, without importing any
// renderer code. Variables are plain strings; numeric channels are
// fixed to three decimals so diffing sinks stay quiet while parameters
// are stable.
package style

import (
	"strconv"
	"sync"

	"github.com/gogpu/verve/param"
)

// Prefix is prepended to every variable name Push emits.
const Prefix = "--verve-"

// Surface receives string-keyed style variables. Implementations bind
// them wherever they take effect: a DOM bridge sets CSS custom
// properties, a web host serializes them, a test records them.
type Surface interface {
	SetVar(name, value string)
}

// VarMap is a concurrency-safe recording Surface. It doubles as a
// snapshot container for polling consumers.
type VarMap struct {
	mu   sync.RWMutex
	vars map[string]string
}

var _ Surface = (*VarMap)(nil)

// NewVarMap returns an empty VarMap.
func NewVarMap() *VarMap {
	return &VarMap{vars: make(map[string]string)}
}

// SetVar stores one variable.
func (m *VarMap) SetVar(name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vars[name] = value
}

// Get returns a stored variable.
func (m *VarMap) Get(name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vars[name]
	return v, ok
}

// Len returns the number of stored variables.
func (m *VarMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.vars)
}

// Snapshot returns a copy of all variables.
func (m *VarMap) Snapshot() map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(m.vars))
	for k, v := range m.vars {
		out[k] = v
	}
	return out
}

// Push writes the frame's smoothed channels, interaction multipliers
// and navigation context to s, each under Prefix.
func Push(s Surface, f param.Frame) {
	v := f.Current
	setFloat(s, "intensity", v.Intensity)
	setFloat(s, "chaos", v.Chaos)
	setFloat(s, "speed", v.Speed)
	setFloat(s, "hue", v.Hue)
	setFloat(s, "rgb-offset", v.RGBOffset)
	setFloat(s, "moire", v.Moire)
	setFloat(s, "grid-density", v.GridDensity)
	setFloat(s, "morph", v.Morph)
	setFloat(s, "rot-xw", v.RotXW)
	setFloat(s, "rot-yw", v.RotYW)
	setFloat(s, "rot-zw", v.RotZW)

	m := f.Multipliers
	setFloat(s, "mouse-activity", m.MouseActivity)
	setFloat(s, "scroll-velocity", m.ScrollVelocity)
	setFloat(s, "card-hover", m.CardHover)
	setFloat(s, "time-of-day", m.TimeOfDay)
	setFloat(s, "user-energy", m.UserEnergy)

	setFloat(s, "scroll-progress", f.ScrollProgress)
	s.SetVar(Prefix+"section", f.Section)
	s.SetVar(Prefix+"system", f.System)
}

func setFloat(s Surface, name string, v float64) {
	s.SetVar(Prefix+name, FormatFloat(v))
}

// FormatFloat renders a channel value the way Push does.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
