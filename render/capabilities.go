// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/gputypes"

// Capabilities describes what a provider's device can do. The engine
// uses them to size canvases and the governor to pick a starting
// quality tier; systems may inspect them to select shader variants.
type Capabilities struct {
	// MaxTextureSize is the maximum texture dimension supported.
	MaxTextureSize uint32

	// MaxBindGroups is the maximum number of bind groups.
	MaxBindGroups uint32

	// SupportsCompute indicates compute shader support.
	SupportsCompute bool

	// SupportsStorageTextures indicates storage texture support.
	SupportsStorageTextures bool

	// VendorName and DeviceName identify the adapter, for logs.
	VendorName string
	DeviceName string

	// PreferredFormat is the format canvases default to.
	PreferredFormat gputypes.TextureFormat
}

// ClampCanvasSize shrinks a requested backing size to the device's
// texture limit, preserving aspect ratio.
func (c *Capabilities) ClampCanvasSize(width, height int) (int, int) {
	if c == nil || c.MaxTextureSize == 0 {
		return width, height
	}
	max := int(c.MaxTextureSize)
	if width <= max && height <= max {
		return width, height
	}
	scale := float64(max) / float64(width)
	if height > width {
		scale = float64(max) / float64(height)
	}
	w := int(float64(width) * scale)
	h := int(float64(height) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
