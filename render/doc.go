// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render manages rendering context lifecycles and the provider
// abstraction verve draws through.
//
// # Key Principle
//
// Context loss is weather, not catastrophe. Every GPU-facing resource
// in verve is reachable from a Context that expects to lose its backend
// and treats recovery as a normal code path. Hosts report loss; the
// engine schedules bounded, backed-off restoration; consumers rebuild
// through replayed callbacks.
//
// # Core Interfaces
//
//   - SurfaceProvider: creates and destroys canvases on one backend
//   - Canvas: one provider-owned drawing destination
//   - DeviceHandle: GPU device access shared in by the host
//   - RestoreFunc: one consumer's rebuild step after restoration
//
// # Lifecycle
//
//	┌──────────┐  NotifyLost   ┌──────────────────────────┐
//	│   host   │ ─────────────▶│  Context state machine   │
//	└──────────┘               │ Live ▸ Lost ▸ Recovering │
//	                           │        ▾         ▾       │
//	                           │      Live      Dead      │
//	                           └────────────┬─────────────┘
//	                                        │ restore hook
//	                           ┌────────────▼─────────────┐
//	                           │     SurfaceProvider      │
//	                           │ CreateCanvas / Destroy   │
//	                           └──────────────────────────┘
//
// On loss the context waits one fixed backoff, then retries through the
// restore hook up to the attempt budget. A successful attempt replays
// every registered RestoreFunc in registration order — each consumer
// rebuilds its own textures and pipelines — and stamps a fresh
// incarnation id. Consumers cache the incarnation alongside any
// per-context resource and rebuild when it changes.
//
// Failures are contained at every level: a failing restore callback
// does not stop the others, a panicking draw call inside SafeExecute
// becomes an error, and an exhausted budget parks the context in the
// terminal dead state. The engine then falls the canvas group back to
// the software gradient rather than leaving a hole in the page.
//
// # Device Sharing
//
// DeviceHandle (an alias for gpucontext.DeviceProvider) lets a host
// that already owns a GPU device share it with the wgpu provider. The
// provider never creates a device when a handle is supplied.
//
// # Thread Safety
//
// Context methods are serialized internally and may be called from any
// goroutine. Providers document their own constraints; the engine
// drives them from its tick goroutine only.
package render
