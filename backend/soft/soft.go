// Package soft provides a CPU surface provider.
//
// Canvases are plain RGBA images. The provider exists so the engine
// always has somewhere to draw: it is registered unconditionally,
// probes as available on every machine, and is the fallback target
// when a GPU context dies for good.
package soft

import (
	"image"
	"image/color"
	"math"
	"sync"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/verve/backend"
	"github.com/gogpu/verve/param"
	"github.com/gogpu/verve/render"
)

func init() {
	backend.Register(backend.ProviderSoft, func() render.SurfaceProvider {
		return Shared()
	})
}

var (
	sharedOnce sync.Once
	shared     *Provider
)

// Shared returns the process-wide provider instance. The registry
// factory uses it so canvases survive repeated registry lookups.
func Shared() *Provider {
	sharedOnce.Do(func() {
		shared = New()
	})
	return shared
}

// Provider implements render.SurfaceProvider on top of image.RGBA
// backing stores.
type Provider struct {
	mu       sync.RWMutex
	canvases map[string]*Canvas
}

var _ render.SurfaceProvider = (*Provider)(nil)

// New creates an empty provider. Most callers want Shared() instead.
func New() *Provider {
	return &Provider{
		canvases: make(map[string]*Canvas),
	}
}

// Name identifies the provider.
func (p *Provider) Name() string { return backend.ProviderSoft }

// Available always reports true; the CPU path has no hardware to probe.
func (p *Provider) Available() bool { return true }

// CreateCanvas allocates an RGBA image sized per opts. An existing
// canvas with the same id is replaced.
func (p *Provider) CreateCanvas(id string, opts render.CanvasOptions) (render.Canvas, error) {
	w, h := opts.BackingSize()

	p.mu.Lock()
	defer p.mu.Unlock()

	c := &Canvas{
		id:  id,
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
	}
	p.canvases[id] = c
	return c, nil
}

// GetCanvas returns a previously created canvas.
func (p *Provider) GetCanvas(id string) (render.Canvas, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	c, ok := p.canvases[id]
	if !ok {
		return nil, false
	}
	return c, true
}

// DestroyCanvas drops a canvas. Unknown ids are ignored.
func (p *Provider) DestroyCanvas(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.canvases, id)
	return nil
}

// Capabilities describes the CPU path. The texture limit is a memory
// guard, not a hardware one.
func (p *Provider) Capabilities() *render.Capabilities {
	return &render.Capabilities{
		MaxTextureSize:  16384,
		MaxBindGroups:   0,
		SupportsCompute: false,
		DeviceName:      "soft",
		PreferredFormat: gputypes.TextureFormatRGBA8Unorm,
	}
}

// Reset destroys all canvases. Useful in tests.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.canvases = make(map[string]*Canvas)
}

// Canvas is a CPU-backed canvas.
type Canvas struct {
	id  string
	img *image.RGBA
}

var _ render.Canvas = (*Canvas)(nil)

// ID returns the canvas identifier.
func (c *Canvas) ID() string { return c.id }

// Size returns the backing image dimensions in pixels.
func (c *Canvas) Size() (width, height int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image exposes the backing store for hosts that blit it to a window
// or encode it to a file.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Paint fills the canvas with a vertical gradient from top to bottom.
// A 1x2 source image scaled with bilinear interpolation does the blend.
func (c *Canvas) Paint(top, bottom color.RGBA) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 2))
	src.SetRGBA(0, 0, top)
	src.SetRGBA(0, 1, bottom)
	xdraw.BiLinear.Scale(c.img, c.img.Bounds(), src, src.Bounds(), xdraw.Src, nil)
}

// PaintVector paints the fallback gradient for a parameter vector: the
// hue picks the palette, intensity sets how far the top stop rises out
// of the dark floor, and the bottom stop shifts hue slightly so the
// gradient reads as depth rather than a flat tint.
func (c *Canvas) PaintVector(v param.Vector) {
	v = v.Clamped()
	lift := v.Intensity / param.IntensityMax
	top := hsl(v.Hue, 0.65, 0.12+0.38*lift)
	bottom := hsl(v.Hue+40, 0.70, 0.04+0.10*lift)
	c.Paint(top, bottom)
}

// hsl converts hue [0, 360), saturation [0, 1] and lightness [0, 1] to
// an opaque RGBA color.
func hsl(h, s, l float64) color.RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	h /= 360

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h*6, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 1.0/6:
		r, g, b = c, x, 0
	case h < 2.0/6:
		r, g, b = x, c, 0
	case h < 3.0/6:
		r, g, b = 0, c, x
	case h < 4.0/6:
		r, g, b = 0, x, c
	case h < 5.0/6:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.RGBA{
		R: uint8(clamp255((r + m) * 255)),
		G: uint8(clamp255((g + m) * 255)),
		B: uint8(clamp255((b + m) * 255)),
		A: 255,
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
