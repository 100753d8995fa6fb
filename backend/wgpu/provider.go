//go:build !nogpu

package wgpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/verve/backend"
	"github.com/gogpu/verve/render"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"
)

func init() {
	backend.Register(backend.ProviderWGPU, func() render.SurfaceProvider {
		return Shared()
	})
}

var (
	sharedOnce sync.Once
	shared     *Provider
)

// Shared returns the process-wide provider instance. The registry
// factory uses it so the device probe runs at most once.
func Shared() *Provider {
	sharedOnce.Do(func() {
		shared = New()
	})
	return shared
}

// WebGPU guaranteed minimums, reported until real adapter limits are
// queryable through the HAL.
const (
	defaultMaxTextureDim = 8192
	defaultMaxBindGroups = 4
)

var errDeviceUnavailable = errors.New("wgpu: device unavailable")

// Provider implements render.SurfaceProvider on gogpu/wgpu. The device
// is acquired lazily on the first probe and kept for the process
// lifetime. Context loss is handled above this layer by recreating
// canvases, never the device.
type Provider struct {
	mu sync.Mutex

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	canvases map[string]*Canvas
	effects  map[string]*Effect
	caps     *render.Capabilities

	probed         bool
	probeErr       error
	gpuReady       bool
	externalDevice bool // true when using a shared device (don't destroy on Close)
}

var _ render.SurfaceProvider = (*Provider)(nil)

// New creates a provider with no device. The device is acquired on the
// first Available or CreateCanvas call. Most callers want Shared().
func New() *Provider {
	return &Provider{
		canvases: make(map[string]*Canvas),
		effects:  make(map[string]*Effect),
	}
}

// NewWithDevice wraps an externally owned device and queue. The
// provider will not destroy them on Close. Used by hosts that already
// drive a wgpu device, and by tests with the noop HAL.
func NewWithDevice(device hal.Device, queue hal.Queue) *Provider {
	p := New()
	p.device = device
	p.queue = queue
	p.probed = true
	p.externalDevice = true
	if device != nil && queue != nil {
		p.gpuReady = true
		p.caps = defaultCapabilities("external")
	} else {
		p.probeErr = errDeviceUnavailable
	}
	return p
}

// NewWithDeviceHandle wraps a device shared by a gpucontext-ecosystem
// host (a gogpu app or similar). The handle must expose the underlying
// HAL device and queue through HalDevice/HalQueue accessors, which
// gogpu hosts do. The handle's surface format, when defined, becomes
// the preferred canvas format so canvases composite without conversion.
func NewWithDeviceHandle(handle render.DeviceHandle) (*Provider, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := handle.(halProvider)
	if !ok {
		return nil, fmt.Errorf("wgpu: device handle does not expose HAL types: %w", errDeviceUnavailable)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("wgpu: device handle HalDevice is not hal.Device: %w", errDeviceUnavailable)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("wgpu: device handle HalQueue is not hal.Queue: %w", errDeviceUnavailable)
	}

	p := NewWithDevice(device, queue)
	if f := handle.SurfaceFormat(); f != gputypes.TextureFormatUndefined {
		p.caps.PreferredFormat = f
	}
	return p, nil
}

// Name identifies the provider.
func (p *Provider) Name() string { return backend.ProviderWGPU }

// Available reports whether a GPU device could be acquired. The first
// call performs the acquisition; the result is cached either way.
func (p *Provider) Available() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ensureDeviceLocked() == nil
}

// Device exposes the HAL device for hosts that dispatch work directly.
// Nil until the first successful probe.
func (p *Provider) Device() hal.Device {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.device
}

// Queue exposes the HAL queue. Nil until the first successful probe.
func (p *Provider) Queue() hal.Queue {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue
}

// ensureDeviceLocked acquires a standalone Vulkan device on first use.
// p.mu must be held.
func (p *Provider) ensureDeviceLocked() error {
	if p.gpuReady {
		return nil
	}
	if p.probed {
		return p.probeErr
	}
	p.probed = true
	p.probeErr = p.acquireLocked()
	return p.probeErr
}

func (p *Provider) acquireLocked() error {
	halBackend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("wgpu: vulkan backend not available: %w", errDeviceUnavailable)
	}
	instance, err := halBackend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("wgpu: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return fmt.Errorf("wgpu: no GPU adapters found: %w", errDeviceUnavailable)
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return fmt.Errorf("wgpu: open device: %w", err)
	}

	p.instance = instance
	p.device = openDev.Device
	p.queue = openDev.Queue
	p.caps = defaultCapabilities(selected.Info.Name)
	p.gpuReady = true
	return nil
}

// halTextureDescriptor lowers a render descriptor to the HAL's.
func halTextureDescriptor(d render.TextureDescriptor) *hal.TextureDescriptor {
	return &hal.TextureDescriptor{
		Label:         d.Label,
		Size:          hal.Extent3D{Width: d.Width, Height: d.Height, DepthOrArrayLayers: d.Depth},
		MipLevelCount: d.MipLevelCount,
		SampleCount:   d.SampleCount,
		Dimension:     gputypes.TextureDimension2D,
		Format:        d.Format,
		Usage:         halTextureUsage(d.Usage),
	}
}

// halTextureUsage maps render usage flags onto gputypes flags.
func halTextureUsage(u render.TextureUsage) gputypes.TextureUsage {
	var out gputypes.TextureUsage
	if u&render.TextureUsageCopySrc != 0 {
		out |= gputypes.TextureUsageCopySrc
	}
	if u&render.TextureUsageCopyDst != 0 {
		out |= gputypes.TextureUsageCopyDst
	}
	if u&render.TextureUsageTextureBinding != 0 {
		out |= gputypes.TextureUsageTextureBinding
	}
	if u&render.TextureUsageStorageBinding != 0 {
		out |= gputypes.TextureUsageStorageBinding
	}
	if u&render.TextureUsageRenderAttachment != 0 {
		out |= gputypes.TextureUsageRenderAttachment
	}
	return out
}

func defaultCapabilities(deviceName string) *render.Capabilities {
	return &render.Capabilities{
		MaxTextureSize:          defaultMaxTextureDim,
		MaxBindGroups:           defaultMaxBindGroups,
		SupportsCompute:         true,
		SupportsStorageTextures: true,
		DeviceName:              deviceName,
		PreferredFormat:         gputypes.TextureFormatBGRA8Unorm,
	}
}

// CreateCanvas allocates a texture-backed canvas. An existing canvas
// with the same id is destroyed first, which is what restoration
// attempts rely on.
func (p *Provider) CreateCanvas(id string, opts render.CanvasOptions) (render.Canvas, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureDeviceLocked(); err != nil {
		return nil, err
	}

	if old, ok := p.canvases[id]; ok {
		old.destroy(p.device)
		delete(p.canvases, id)
	}

	w, h := opts.BackingSize()
	w, h = p.caps.ClampCanvasSize(w, h)

	format := opts.Format
	if format == gputypes.TextureFormatUndefined {
		format = p.caps.PreferredFormat
	}

	desc := render.DefaultTextureDescriptor(uint32(w), uint32(h), format)
	desc.Label = opts.Label
	if desc.Label == "" {
		desc.Label = id
	}
	desc.Usage |= render.TextureUsageCopySrc // fallback readback path

	tex, err := p.device.CreateTexture(halTextureDescriptor(desc))
	if err != nil {
		return nil, fmt.Errorf("wgpu: create canvas texture: %w", err)
	}

	view, err := p.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: desc.Label + "_view",
	})
	if err != nil {
		p.device.DestroyTexture(tex)
		return nil, fmt.Errorf("wgpu: create canvas view: %w", err)
	}

	c := &Canvas{id: id, width: w, height: h, format: format, tex: tex, view: view}
	p.canvases[id] = c
	return c, nil
}

// GetCanvas returns a previously created canvas.
func (p *Provider) GetCanvas(id string) (render.Canvas, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c, ok := p.canvases[id]
	if !ok {
		return nil, false
	}
	return c, true
}

// DestroyCanvas releases one canvas. Unknown ids are ignored.
func (p *Provider) DestroyCanvas(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.canvases[id]; ok {
		c.destroy(p.device)
		delete(p.canvases, id)
	}
	return nil
}

// Capabilities returns the device capabilities, or nil before the
// first successful probe.
func (p *Provider) Capabilities() *render.Capabilities {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.caps
}

// CompileEffect compiles WGSL source into a cached compute effect. An
// existing effect with the same name is destroyed and replaced.
func (p *Provider) CompileEffect(name, source, entryPoint string) (*Effect, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureDeviceLocked(); err != nil {
		return nil, err
	}

	if old, ok := p.effects[name]; ok {
		old.Destroy(p.device)
		delete(p.effects, name)
	}

	e, err := newEffect(p.device, name, source, entryPoint)
	if err != nil {
		return nil, err
	}
	p.effects[name] = e
	return e, nil
}

// Effect returns a compiled effect by name.
func (p *Provider) Effect(name string) (*Effect, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.effects[name]
	return e, ok
}

// CompileParticleKernels compiles the embedded particle shader's seed
// and advect entry points under the given name prefix.
func (p *Provider) CompileParticleKernels(prefix string) (seed, advect *Effect, err error) {
	seed, err = p.CompileEffect(prefix+"_seed", particlesWGSL, EntrySeed)
	if err != nil {
		return nil, nil, err
	}
	advect, err = p.CompileEffect(prefix+"_advect", particlesWGSL, EntryAdvect)
	if err != nil {
		p.mu.Lock()
		if e, ok := p.effects[prefix+"_seed"]; ok {
			e.Destroy(p.device)
			delete(p.effects, prefix+"_seed")
		}
		p.mu.Unlock()
		return nil, nil, err
	}
	return seed, advect, nil
}

// Close releases every canvas and effect, then the device and instance
// if the provider owns them. A closed provider probes again on the
// next Available call.
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for id, c := range p.canvases {
		c.destroy(p.device)
		delete(p.canvases, id)
	}
	for name, e := range p.effects {
		e.Destroy(p.device)
		delete(p.effects, name)
	}

	if !p.externalDevice {
		if p.device != nil {
			p.device.Destroy()
		}
		if p.instance != nil {
			p.instance.Destroy()
		}
	}
	p.instance = nil
	p.device = nil
	p.queue = nil
	p.caps = nil
	p.gpuReady = false
	p.probed = false
	p.probeErr = nil
	p.externalDevice = false
}
