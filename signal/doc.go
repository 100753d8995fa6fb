// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package signal turns raw host input into normalized interaction
// samples for the verve orchestrator.
//
// A host (an ebiten window, a headless driver, a test) owns the actual
// input sources and feeds them into small stateful trackers:
//
//	PointerTracker     position deltas  → speed and energy
//	ScrollTracker      offset deltas    → progress, velocity, energy
//	HoverSet           enter/leave      → hover count and energy
//	VisibilityTracker  section ratios   → dominant section
//	SpectrumAnalyzer   frequency bins   → bass/mid/treble bands
//	Clock              wall time        → diurnal factor
//
// Each tracker emits Sample values: a uniform envelope of kind, a small
// kind-specific payload, a normalized energy in [0, 1] and a timestamp.
// Samples are plain values and safe to copy across goroutines; the
// trackers themselves are not synchronized and expect to be driven from
// a single host goroutine.
//
// Timestamps are always caller-supplied rather than read from the wall
// clock so replay and tests stay deterministic.
package signal
