// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gputypes"

// Canvas is one provider-owned drawing destination. Concrete canvases
// expose their backing store through provider-specific accessors (a
// texture, an image buffer); the engine itself only needs identity and
// geometry.
type Canvas interface {
	// ID returns the canvas identifier, unique per provider.
	ID() string

	// Size returns the backing store dimensions in pixels, after the
	// pixel ratio is applied.
	Size() (width, height int)
}

// CanvasOptions describe a canvas to create.
type CanvasOptions struct {
	// Width and Height are the logical (CSS-pixel) dimensions.
	Width  int
	Height int

	// PixelRatio scales logical dimensions to backing-store pixels.
	// Zero means 1. The quality governor multiplies this by the active
	// tier's pixel-ratio scale before canvases are (re)created.
	PixelRatio float64

	// Format is the desired texture format. TextureFormatUndefined
	// lets the provider pick its preferred format.
	Format gputypes.TextureFormat

	// Label is an optional debug label passed through to the backend.
	Label string
}

// BackingSize returns the pixel dimensions of the canvas backing store
// for these options.
func (o CanvasOptions) BackingSize() (width, height int) {
	ratio := o.PixelRatio
	if ratio <= 0 {
		ratio = 1
	}
	w := int(float64(o.Width)*ratio + 0.5)
	h := int(float64(o.Height)*ratio + 0.5)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
