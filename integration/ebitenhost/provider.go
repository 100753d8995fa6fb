// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenhost

import (
	"errors"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/verve/backend"
	"github.com/gogpu/verve/render"
)

// Common errors returned by the provider.
var (
	// ErrInvalidDimensions is returned when a canvas width or height
	// is not positive.
	ErrInvalidDimensions = errors.New("ebitenhost: invalid dimensions")
)

// maxImageSize is ebiten's documented maximum image dimension.
const maxImageSize = 4096

func init() {
	backend.Register(backend.ProviderEbiten, func() render.SurfaceProvider {
		return Shared()
	})
}

var (
	sharedOnce sync.Once
	shared     *Provider
)

// Shared returns the process-wide provider instance, so canvases
// survive repeated registry lookups.
func Shared() *Provider {
	sharedOnce.Do(func() {
		shared = New()
	})
	return shared
}

// Provider implements render.SurfaceProvider on top of *ebiten.Image
// backing stores. Images are allocated lazily by ebiten itself; the
// provider is usable before and after RunGame starts.
type Provider struct {
	mu       sync.RWMutex
	canvases map[string]*Canvas
}

var _ render.SurfaceProvider = (*Provider)(nil)

// New creates an empty provider. Most callers want Shared.
func New() *Provider {
	return &Provider{canvases: make(map[string]*Canvas)}
}

// Name implements render.SurfaceProvider.
func (p *Provider) Name() string { return backend.ProviderEbiten }

// Available implements render.SurfaceProvider. The provider is only
// useful inside a running game loop, but allocation works anywhere
// ebiten itself runs.
func (p *Provider) Available() bool { return true }

// CreateCanvas implements render.SurfaceProvider. Creating an existing
// id deallocates the old image first, which is what restoration wants.
func (p *Provider) CreateCanvas(id string, opts render.CanvasOptions) (render.Canvas, error) {
	w, h := opts.BackingSize()
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidDimensions
	}
	if w > maxImageSize {
		w = maxImageSize
	}
	if h > maxImageSize {
		h = maxImageSize
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if old, ok := p.canvases[id]; ok {
		old.img.Deallocate()
	}
	c := &Canvas{id: id, img: ebiten.NewImage(w, h), w: w, h: h}
	p.canvases[id] = c
	return c, nil
}

// GetCanvas implements render.SurfaceProvider.
func (p *Provider) GetCanvas(id string) (render.Canvas, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c, ok := p.canvases[id]
	if !ok {
		return nil, false
	}
	return c, true
}

// DestroyCanvas implements render.SurfaceProvider.
func (p *Provider) DestroyCanvas(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.canvases[id]; ok {
		c.img.Deallocate()
		delete(p.canvases, id)
	}
	return nil
}

// Capabilities implements render.SurfaceProvider.
func (p *Provider) Capabilities() *render.Capabilities {
	return &render.Capabilities{
		MaxTextureSize: maxImageSize,
		DeviceName:     "ebiten",
	}
}

// Canvas is one ebiten-backed drawing destination.
type Canvas struct {
	id   string
	img  *ebiten.Image
	w, h int
}

var _ render.Canvas = (*Canvas)(nil)

// ID implements render.Canvas.
func (c *Canvas) ID() string { return c.id }

// Size implements render.Canvas.
func (c *Canvas) Size() (width, height int) { return c.w, c.h }

// Image returns the backing image for systems to draw into. The image
// changes identity after a context restoration; systems should re-read
// it each frame rather than caching it.
func (c *Canvas) Image() *ebiten.Image { return c.img }
