// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// SurfaceProvider creates and destroys canvases on one rendering
// backend. Providers register themselves with the backend registry;
// the engine selects one at startup and keeps it for the process
// lifetime, recreating canvases through it after context loss.
//
// Implementations must be safe for use from the engine goroutine plus
// whatever goroutine their own backend calls back on.
type SurfaceProvider interface {
	// Name identifies the provider ("wgpu", "ebiten", "soft").
	Name() string

	// Available probes whether the backend can run on this machine.
	// Called before any canvas is created; expensive probes should
	// cache their result.
	Available() bool

	// CreateCanvas allocates a canvas. Creating an id that already
	// exists destroys the old canvas first, which is exactly what a
	// restoration attempt wants.
	CreateCanvas(id string, opts CanvasOptions) (Canvas, error)

	// GetCanvas returns a previously created canvas.
	GetCanvas(id string) (Canvas, bool)

	// DestroyCanvas releases one canvas. Destroying an unknown id
	// returns nil; restoration paths double-destroy freely.
	DestroyCanvas(id string) error

	// Capabilities describes the backend's limits. May be nil until
	// the first canvas forces device acquisition.
	Capabilities() *Capabilities
}
