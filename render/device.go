// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle is how a host that already owns a GPU device shares it
// with a surface provider. A gogpu application, a game engine, or any
// other gpucontext ecosystem host passes its handle to the wgpu
// provider, which then creates canvas textures on the shared device
// instead of acquiring its own. Providers given no handle acquire a
// standalone device lazily on first canvas creation.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider so existing
// hosts plug in without an adapter type.
type DeviceHandle = gpucontext.DeviceProvider

// TextureDescriptor describes a canvas backing texture. Providers
// lower it to their backend's native descriptor at creation time.
type TextureDescriptor struct {
	// Label is an optional debug label.
	Label string

	// Width and Height are the backing-store dimensions in pixels,
	// after pixel-ratio and quality scaling.
	Width  uint32
	Height uint32

	// Depth is the array layer count. Canvas textures use 1.
	Depth uint32

	// MipLevelCount is the number of mip levels. Canvas textures are
	// sampled at native size only, so this is 1.
	MipLevelCount uint32

	// SampleCount is the multisample count. 1 means no MSAA.
	SampleCount uint32

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// Usage declares how the texture will be bound.
	Usage TextureUsage
}

// TextureUsage declares how a canvas texture may be bound. Flags
// combine with bitwise OR.
type TextureUsage uint32

const (
	// TextureUsageCopySrc allows reading the texture back.
	TextureUsageCopySrc TextureUsage = 1 << iota

	// TextureUsageCopyDst allows uploads into the texture.
	TextureUsageCopyDst

	// TextureUsageTextureBinding allows sampling in shaders.
	TextureUsageTextureBinding

	// TextureUsageStorageBinding allows compute-shader writes.
	TextureUsageStorageBinding

	// TextureUsageRenderAttachment allows use as a color attachment.
	TextureUsageRenderAttachment
)

// DefaultTextureDescriptor fills a descriptor the way canvas backing
// stores want it: single layer, no mips, no MSAA, sampleable and
// attachable. Callers set further usage bits as needed.
func DefaultTextureDescriptor(width, height uint32, format gputypes.TextureFormat) TextureDescriptor {
	return TextureDescriptor{
		Width:         width,
		Height:        height,
		Depth:         1,
		MipLevelCount: 1,
		SampleCount:   1,
		Format:        format,
		Usage:         TextureUsageTextureBinding | TextureUsageRenderAttachment,
	}
}

// Texture is the read side of a canvas backing texture. GPU-backed
// canvases satisfy it, letting visualization systems size their passes
// without importing a concrete provider package.
type Texture interface {
	// Width returns the backing width in pixels.
	Width() uint32

	// Height returns the backing height in pixels.
	Height() uint32

	// Format returns the texture pixel format.
	Format() gputypes.TextureFormat
}

// NullDeviceHandle is the degenerate DeviceHandle for hosts running
// CPU-only. Providers treat it like any handle that cannot surface a
// usable device.
type NullDeviceHandle struct{}

// Device returns nil; there is no device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil; there is no queue.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil; there is no adapter.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// SurfaceFormat returns the undefined format.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// AdapterInfo returns the unknown adapter; there is no adapter.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

var _ DeviceHandle = NullDeviceHandle{}
