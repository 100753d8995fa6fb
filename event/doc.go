// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package event carries the verve engine's discrete notifications:
// section transitions, system switches, context lifecycle changes and
// quality adjustments.
//
// Events flow through a Bus with per-subscriber buffered channels.
// Publishing never blocks: a subscriber whose buffer is full loses the
// event and its drop counter increments. The engine's frame loop must
// keep its cadence even when a slow consumer (a TUI, a network
// forwarder) falls behind; consumers that need every event size their
// buffers accordingly and watch their Stats.
//
// Each event carries a unique id, a kind tag and a typed payload. The
// payload types form a closed set; switch on Event.Kind or
// type-switch on Event.Payload, whichever reads better at the call
// site.
package event
