// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads engine tuning and section profiles from TOML.
//
// The file format mirrors the engine's option surface: one [engine]
// table, one [recovery] table and a [sections.<id>] table per section
// profile. Everything is optional; absent values keep the engine's
// built-in defaults.
//
//	[engine]
//	backend = "wgpu"
//	target_fps = 60
//	idle_after_seconds = 30
//
//	[sections.home]
//	system = "quantum"
//	intensity = 0.6
//	hue = 200
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/verve"
	"github.com/gogpu/verve/param"
)

// Config is the decoded TOML document.
type Config struct {
	Engine   EngineConfig             `toml:"engine"`
	Recovery RecoveryConfig           `toml:"recovery"`
	Sections map[string]SectionConfig `toml:"sections"`
}

// EngineConfig tunes the frame loop and signal fusion.
type EngineConfig struct {
	// Backend selects a provider by name; empty auto-selects.
	Backend string `toml:"backend"`

	// TargetFPS is the loop rate and the governor's reference.
	TargetFPS float64 `toml:"target_fps"`

	// ReducedMotion disables the frame loop entirely.
	ReducedMotion bool `toml:"reduced_motion"`

	// IdleAfterSeconds is the attract-mode onset delay; 0 keeps the
	// default, negative disables attract mode.
	IdleAfterSeconds float64 `toml:"idle_after_seconds"`
}

// RecoveryConfig tunes the context restoration state machine.
type RecoveryConfig struct {
	// MaxAttempts is the per-episode restoration budget.
	MaxAttempts int `toml:"max_attempts"`

	// BackoffMillis is the delay before each restoration attempt.
	BackoffMillis int `toml:"backoff_millis"`
}

// SectionConfig is one authored section profile. Channel fields map
// directly onto param.Vector; rotation planes default to zero and are
// rarely authored since they track the pointer at runtime.
type SectionConfig struct {
	System      string  `toml:"system"`
	Intensity   float64 `toml:"intensity"`
	Chaos       float64 `toml:"chaos"`
	Speed       float64 `toml:"speed"`
	Hue         float64 `toml:"hue"`
	RGBOffset   float64 `toml:"rgb_offset"`
	Moire       float64 `toml:"moire"`
	GridDensity float64 `toml:"grid_density"`
	Morph       float64 `toml:"morph"`
	RotXW       float64 `toml:"rot_xw"`
	RotYW       float64 `toml:"rot_yw"`
	RotZW       float64 `toml:"rot_zw"`
}

// Load reads and validates a TOML file.
func Load(path string) (Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Parse decodes and validates TOML from a string.
func Parse(data string) (Config, error) {
	var c Config
	if _, err := toml.Decode(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks cross-field constraints. Channel values are not
// range-checked here; the orchestrator clamps every tick, so an
// out-of-range authored value degrades instead of failing startup.
func (c Config) Validate() error {
	if c.Engine.TargetFPS < 0 {
		return fmt.Errorf("config: engine.target_fps must not be negative, got %v", c.Engine.TargetFPS)
	}
	if c.Recovery.MaxAttempts < 0 {
		return fmt.Errorf("config: recovery.max_attempts must not be negative, got %d", c.Recovery.MaxAttempts)
	}
	if c.Recovery.BackoffMillis < 0 {
		return fmt.Errorf("config: recovery.backoff_millis must not be negative, got %d", c.Recovery.BackoffMillis)
	}
	for id, s := range c.Sections {
		if s.System == "" {
			return fmt.Errorf("config: section %q has no system", id)
		}
	}
	return nil
}

// Profiles converts the authored sections into engine profiles. An
// empty section table returns nil so the engine keeps its defaults.
func (c Config) Profiles() map[string]verve.SectionProfile {
	if len(c.Sections) == 0 {
		return nil
	}
	out := make(map[string]verve.SectionProfile, len(c.Sections))
	for id, s := range c.Sections {
		out[id] = verve.SectionProfile{
			System: s.System,
			Base: param.Vector{
				Intensity:   s.Intensity,
				Chaos:       s.Chaos,
				Speed:       s.Speed,
				Hue:         s.Hue,
				RGBOffset:   s.RGBOffset,
				Moire:       s.Moire,
				GridDensity: s.GridDensity,
				Morph:       s.Morph,
				RotXW:       s.RotXW,
				RotYW:       s.RotYW,
				RotZW:       s.RotZW,
			},
		}
	}
	return out
}

// Options expands the config into engine options, ready to append
// host-specific ones after.
func (c Config) Options() []verve.Option {
	var opts []verve.Option
	if p := c.Profiles(); p != nil {
		opts = append(opts, verve.WithProfiles(p))
	}
	if c.Engine.Backend != "" {
		opts = append(opts, verve.WithBackend(c.Engine.Backend))
	}
	if c.Engine.TargetFPS > 0 {
		opts = append(opts, verve.WithTargetFPS(c.Engine.TargetFPS))
	}
	if c.Engine.ReducedMotion {
		opts = append(opts, verve.WithReducedMotion(true))
	}
	if c.Engine.IdleAfterSeconds > 0 {
		opts = append(opts, verve.WithIdleAfter(time.Duration(c.Engine.IdleAfterSeconds*float64(time.Second))))
	} else if c.Engine.IdleAfterSeconds < 0 {
		opts = append(opts, verve.WithIdleAfter(0))
	}
	if c.Recovery.MaxAttempts > 0 {
		opts = append(opts, verve.WithMaxRestoreAttempts(c.Recovery.MaxAttempts))
	}
	if c.Recovery.BackoffMillis > 0 {
		opts = append(opts, verve.WithRestoreBackoff(time.Duration(c.Recovery.BackoffMillis)*time.Millisecond))
	}
	return opts
}
