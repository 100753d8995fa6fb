// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// TestNullDeviceHandle verifies the CPU-only handle surfaces nothing
// and still satisfies the gpucontext provider contract.
func TestNullDeviceHandle(t *testing.T) {
	var h DeviceHandle = NullDeviceHandle{}

	if h.Device() != nil || h.Queue() != nil || h.Adapter() != nil {
		t.Error("NullDeviceHandle surfaced a non-nil device component")
	}
	if got := h.SurfaceFormat(); got != gputypes.TextureFormatUndefined {
		t.Errorf("SurfaceFormat() = %v, want Undefined", got)
	}

	// Alias check: usable anywhere a gpucontext provider is expected.
	var _ gpucontext.DeviceProvider = h
}

// TestDefaultTextureDescriptor verifies the canvas-backing defaults:
// single layer, no mips, no MSAA, sampleable and attachable.
func TestDefaultTextureDescriptor(t *testing.T) {
	d := DefaultTextureDescriptor(1280, 720, gputypes.TextureFormatBGRA8Unorm)

	if d.Width != 1280 || d.Height != 720 {
		t.Errorf("size = %dx%d, want 1280x720", d.Width, d.Height)
	}
	if d.Depth != 1 || d.MipLevelCount != 1 || d.SampleCount != 1 {
		t.Errorf("layers/mips/samples = %d/%d/%d, want 1/1/1",
			d.Depth, d.MipLevelCount, d.SampleCount)
	}
	if d.Format != gputypes.TextureFormatBGRA8Unorm {
		t.Errorf("Format = %v, want BGRA8Unorm", d.Format)
	}
	if want := TextureUsageTextureBinding | TextureUsageRenderAttachment; d.Usage != want {
		t.Errorf("Usage = %b, want %b", d.Usage, want)
	}
}

// TestTextureUsageFlags verifies the flags are distinct bits that
// combine and test independently.
func TestTextureUsageFlags(t *testing.T) {
	all := []TextureUsage{
		TextureUsageCopySrc,
		TextureUsageCopyDst,
		TextureUsageTextureBinding,
		TextureUsageStorageBinding,
		TextureUsageRenderAttachment,
	}

	var combined TextureUsage
	for _, f := range all {
		if combined&f != 0 {
			t.Errorf("flag %b overlaps earlier flags", f)
		}
		combined |= f
	}

	readback := TextureUsageCopySrc | TextureUsageRenderAttachment
	if readback&TextureUsageCopySrc == 0 || readback&TextureUsageRenderAttachment == 0 {
		t.Error("combined usage lost a flag")
	}
	if readback&TextureUsageStorageBinding != 0 {
		t.Error("combined usage gained a flag it was not given")
	}
}

func TestCanvasOptionsBackingSize(t *testing.T) {
	tests := []struct {
		name         string
		opts         CanvasOptions
		wantW, wantH int
	}{
		{"unit ratio", CanvasOptions{Width: 800, Height: 600, PixelRatio: 1}, 800, 600},
		{"zero ratio defaults to 1", CanvasOptions{Width: 800, Height: 600}, 800, 600},
		{"retina", CanvasOptions{Width: 800, Height: 600, PixelRatio: 2}, 1600, 1200},
		{"governed half ratio", CanvasOptions{Width: 801, Height: 601, PixelRatio: 0.5}, 401, 301},
		{"degenerate floor", CanvasOptions{Width: 1, Height: 1, PixelRatio: 0.1}, 1, 1},
	}
	for _, tt := range tests {
		w, h := tt.opts.BackingSize()
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("%s: BackingSize() = %dx%d, want %dx%d",
				tt.name, w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestCapabilitiesClampCanvasSize(t *testing.T) {
	caps := &Capabilities{MaxTextureSize: 4096}

	w, h := caps.ClampCanvasSize(1920, 1080)
	if w != 1920 || h != 1080 {
		t.Errorf("in-limit size changed: %dx%d", w, h)
	}

	w, h = caps.ClampCanvasSize(8192, 4096)
	if w != 4096 || h != 2048 {
		t.Errorf("ClampCanvasSize(8192, 4096) = %dx%d, want 4096x2048", w, h)
	}

	w, h = caps.ClampCanvasSize(4096, 8192)
	if w != 2048 || h != 4096 {
		t.Errorf("ClampCanvasSize(4096, 8192) = %dx%d, want 2048x4096", w, h)
	}

	// Nil capabilities and zero limit pass sizes through.
	var none *Capabilities
	if w, h = none.ClampCanvasSize(9999, 9999); w != 9999 || h != 9999 {
		t.Errorf("nil caps clamped to %dx%d", w, h)
	}
}
