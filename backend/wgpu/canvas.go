// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wgpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/verve/render"
)

// Canvas is a texture-backed canvas. The texture doubles as the color
// attachment for whichever visualization system is active; systems are
// switched without touching it.
type Canvas struct {
	id     string
	width  int
	height int
	format gputypes.TextureFormat

	tex  hal.Texture
	view hal.TextureView
}

// Canvas is also a render.Texture: backend-agnostic systems size their
// passes from it without importing this package.
var _ render.Texture = (*Canvas)(nil)

// ID returns the canvas identifier.
func (c *Canvas) ID() string { return c.id }

// Size returns the backing texture dimensions in pixels.
func (c *Canvas) Size() (width, height int) { return c.width, c.height }

// Width returns the backing width in pixels.
func (c *Canvas) Width() uint32 { return uint32(c.width) }

// Height returns the backing height in pixels.
func (c *Canvas) Height() uint32 { return uint32(c.height) }

// Format returns the texture format the canvas was created with.
func (c *Canvas) Format() gputypes.TextureFormat { return c.format }

// Texture exposes the backing texture for render passes.
func (c *Canvas) Texture() hal.Texture { return c.tex }

// View exposes the default full-texture view.
func (c *Canvas) View() hal.TextureView { return c.view }

// destroy releases the texture and view. Safe to call twice.
func (c *Canvas) destroy(device hal.Device) {
	if device == nil {
		return
	}
	if c.view != nil {
		device.DestroyTextureView(c.view)
		c.view = nil
	}
	if c.tex != nil {
		device.DestroyTexture(c.tex)
		c.tex = nil
	}
}
