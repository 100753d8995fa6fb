package verve

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gogpu/verve/backend"
	"github.com/gogpu/verve/event"
	"github.com/gogpu/verve/param"
	"github.com/gogpu/verve/render"
	"github.com/gogpu/verve/signal"
	"github.com/gogpu/verve/style"
	"github.com/gogpu/verve/surface"

	// The soft backend is the unconditional fallback target.
	"github.com/gogpu/verve/backend/soft"
)

// maxInbox bounds the sample inbox. Hosts delivering faster than the
// frame loop drains lose the oldest samples first; interaction signals
// are ephemeral, so dropping stale ones is the right failure.
const maxInbox = 256

// Engine errors.
var (
	// ErrEngineClosed is returned by surface operations after Close.
	ErrEngineClosed = errors.New("verve: engine closed")
)

// SurfaceOptions describe one render surface to create.
type SurfaceOptions struct {
	// Canvas is passed to the surface provider.
	Canvas render.CanvasOptions

	// Priority orders the surface in per-frame iteration; higher draws
	// earlier.
	Priority int

	// Cost is the host's relative per-frame cost estimate, summed by
	// the registry for introspection.
	Cost float64
}

// Engine is the explicit root object tying the orchestrator, the
// surface registry, the context lifecycle and the quality governor
// together. Construct one per page session with New and drive it from
// a single goroutine via Step or Run; Deliver is the only method safe
// to call from other goroutines.
type Engine struct {
	logger   *slog.Logger
	provider render.SurfaceProvider
	registry *surface.Registry
	bus      *event.Bus
	ownBus   bool
	styles   []style.Surface
	orch     *Orchestrator
	governor *Governor

	targetFPS     float64
	reducedMotion bool
	fallback      bool
	now           func() time.Time

	maxAttempts    int
	restoreBackoff time.Duration

	inboxMu sync.Mutex
	inbox   []signal.Sample

	contexts map[string]*render.Context
	canvases map[string]render.Canvas

	snapMu sync.RWMutex
	snap   param.Frame

	lastTick time.Time
	painted  bool
	closed   bool
}

// New constructs an engine. It never fails: a machine without a usable
// backend gets an engine in permanent fallback mode that paints each
// surface once with a static gradient and schedules no frames.
func New(opts ...Option) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = Logger()
	}

	e := &Engine{
		logger:         logger,
		registry:       surface.NewRegistry(),
		bus:            o.bus,
		styles:         o.styles,
		targetFPS:      o.targetFPS,
		reducedMotion:  o.reducedMotion,
		now:            o.now,
		maxAttempts:    o.maxAttempts,
		restoreBackoff: o.restoreBackoff,
		contexts:       make(map[string]*render.Context),
		canvases:       make(map[string]render.Canvas),
	}
	if e.bus == nil {
		e.bus = event.NewBus()
		e.ownBus = true
	}

	e.provider = e.pickProvider(o)
	if e.provider == nil {
		// Capability check failed once, for good: park in fallback on
		// the soft provider so surfaces still get their one gradient.
		e.fallback = true
		e.provider = soft.Shared()
		logger.Warn("verve: no rendering backend available, falling back to static gradient")
	}

	e.orch = NewOrchestrator(o.profiles)
	e.orch.SetLogger(logger)
	e.orch.SetEmitter(e.emit)
	e.orch.SetSwitchFunc(e.switchSystem)
	if o.viewW > 0 && o.viewH > 0 {
		e.orch.SetViewport(o.viewW, o.viewH)
	}
	if o.idleAfterSet {
		e.orch.SetIdleAfter(o.idleAfter)
	}
	if o.tau > 0 || o.rotTau > 0 {
		e.orch.SetSmoothing(o.tau, o.rotTau)
	}

	e.governor = o.governor
	if e.governor == nil {
		e.governor = NewGovernor(o.targetFPS)
	}
	e.governor.SetLogger(logger)
	e.governor.SetEmitter(e.emit)

	return e
}

func (e *Engine) pickProvider(o engineOptions) render.SurfaceProvider {
	if o.provider != nil {
		if o.provider.Available() {
			return o.provider
		}
		e.logger.Warn("verve: injected provider unavailable",
			"provider", o.provider.Name())
		return nil
	}
	if o.backendName != "" {
		p, err := backend.Select(o.backendName)
		if err != nil {
			e.logger.Warn("verve: requested backend unavailable",
				"backend", o.backendName, "err", err)
			return nil
		}
		return p
	}
	return backend.Default()
}

func (e *Engine) emit(p event.Payload) {
	e.bus.Publish(event.New(e.now(), p))
}

// switchSystem is the renderer-side half of a system switch: every
// canvas group that registered the named system activates it. Groups
// without the system keep their current one; a name no group knows is
// logged and absorbed.
func (e *Engine) switchSystem(name string) {
	found := false
	for _, group := range e.registry.Groups() {
		prev, err := e.registry.ActivateSystem(group, name)
		if err != nil {
			continue
		}
		found = true
		if prev != name {
			e.emit(event.SystemSwitched{Group: group, Prev: prev, Next: name})
		}
	}
	if !found && len(e.registry.Groups()) > 0 {
		e.logger.Warn("verve: unknown system", "system", name)
	}
}

// Bus returns the engine's event bus. Subscribe for section
// transitions, context lifecycle incidents and quality changes.
func (e *Engine) Bus() *event.Bus { return e.bus }

// Registry returns the surface registry.
func (e *Engine) Registry() *surface.Registry { return e.registry }

// Provider returns the active surface provider.
func (e *Engine) Provider() render.SurfaceProvider { return e.provider }

// Fallback reports whether the engine is in permanent static-gradient
// fallback mode.
func (e *Engine) Fallback() bool { return e.fallback }

// CreateSurface creates a canvas on the active provider, registers it
// as a render target and wraps it in a lifecycle context whose restore
// hook recreates the canvas through the provider.
func (e *Engine) CreateSurface(id string, opts SurfaceOptions) (render.Canvas, *render.Context, error) {
	if e.closed {
		return nil, nil, ErrEngineClosed
	}

	canvas, err := e.provider.CreateCanvas(id, opts.Canvas)
	if err != nil {
		return nil, nil, err
	}

	ctxOpts := []render.ContextOption{
		render.WithEmitter(e.emit),
		render.WithContextLogger(e.logger),
		render.WithRestoreHook(func() error {
			c, err := e.provider.CreateCanvas(id, opts.Canvas)
			if err != nil {
				return err
			}
			e.canvases[id] = c
			return nil
		}),
	}
	if e.maxAttempts > 0 {
		ctxOpts = append(ctxOpts, render.WithMaxAttempts(e.maxAttempts))
	}
	if e.restoreBackoff > 0 {
		ctxOpts = append(ctxOpts, render.WithBackoff(e.restoreBackoff))
	}

	ctx := render.NewContext(id, ctxOpts...)
	e.contexts[id] = ctx
	e.canvases[id] = canvas
	e.registry.AddTarget(id, opts.Priority, opts.Cost)

	e.logger.Info("verve: surface created", "surface", id,
		"provider", e.provider.Name())
	return canvas, ctx, nil
}

// DestroySurface tears one surface down: context dead, target removed,
// canvas released. Unknown ids are no-ops.
func (e *Engine) DestroySurface(id string) {
	if ctx, ok := e.contexts[id]; ok {
		ctx.Destroy()
		delete(e.contexts, id)
	}
	delete(e.canvases, id)
	e.registry.RemoveTarget(id)
	if err := e.provider.DestroyCanvas(id); err != nil {
		e.logger.Warn("verve: canvas destroy failed", "surface", id, "err", err)
	}
}

// Context returns the lifecycle context for a surface.
func (e *Engine) Context(id string) (*render.Context, bool) {
	ctx, ok := e.contexts[id]
	return ctx, ok
}

// Canvas returns the current canvas for a surface. The canvas changes
// identity after a successful context restoration; callers that cache
// it should compare the context's incarnation.
func (e *Engine) Canvas(id string) (render.Canvas, bool) {
	c, ok := e.canvases[id]
	return c, ok
}

// RegisterSystem adds a visualization system to a canvas group. The
// first system in a group becomes active immediately.
func (e *Engine) RegisterSystem(group string, sys surface.System) error {
	return e.registry.AddSystem(group, sys)
}

// TransitionToSection adopts the named section profile. Unknown ids
// are absorbed per the orchestrator's rules.
func (e *Engine) TransitionToSection(id string) {
	e.orch.TransitionToSection(id)
}

// SwitchSystem activates the named visualization system, independent of
// any section transition.
func (e *Engine) SwitchSystem(name string) {
	e.orch.SwitchSystem(name)
}

// Orchestrator exposes the signal-fusion core, mainly for tests and
// instrumentation.
func (e *Engine) Orchestrator() *Orchestrator { return e.orch }

// Governor exposes the quality governor.
func (e *Engine) Governor() *Governor { return e.governor }

// Deliver queues a sample for the next frame. Safe from any goroutine;
// the frame loop drains the inbox at the start of each Step. When the
// inbox is full the oldest sample is dropped.
func (e *Engine) Deliver(s signal.Sample) {
	e.inboxMu.Lock()
	defer e.inboxMu.Unlock()
	if len(e.inbox) >= maxInbox {
		e.inbox = e.inbox[1:]
	}
	e.inbox = append(e.inbox, s)
}

func (e *Engine) drainInbox() []signal.Sample {
	e.inboxMu.Lock()
	defer e.inboxMu.Unlock()
	if len(e.inbox) == 0 {
		return nil
	}
	batch := e.inbox
	e.inbox = nil
	return batch
}

// Step runs one frame: drain samples, advance the orchestrator, tick
// every lifecycle context, broadcast the frame, record the governor.
// In fallback or reduced-motion mode Step paints the static gradient
// once and otherwise does nothing.
func (e *Engine) Step(now time.Time) {
	if e.closed {
		return
	}
	if e.fallback || e.reducedMotion {
		e.paintFallbackOnce()
		return
	}

	for _, s := range e.drainInbox() {
		e.orch.OnSample(s)
	}

	var dt time.Duration
	if !e.lastTick.IsZero() {
		dt = now.Sub(e.lastTick)
	}
	e.lastTick = now

	e.orch.SetQuality(e.governor.Record(now))
	frame := e.orch.Tick(now, dt)

	for _, ctx := range e.contexts {
		ctx.Tick(now)
	}

	// Dual broadcast: typed pushes to the active systems, string-keyed
	// variables to the style sinks.
	for _, sys := range e.registry.ActiveSystems() {
		sys.UpdateParams(frame)
	}
	for _, s := range e.styles {
		style.Push(s, frame)
	}

	e.snapMu.Lock()
	e.snap = frame
	e.snapMu.Unlock()
}

// paintFallbackOnce paints every canvas that can take a vector with the
// default profile's base, exactly once per engine lifetime.
func (e *Engine) paintFallbackOnce() {
	if e.painted {
		return
	}
	e.painted = true

	base := e.orch.profiles[DefaultSection].Base
	for id, c := range e.canvases {
		if p, ok := c.(interface{ PaintVector(param.Vector) }); ok {
			p.PaintVector(base)
			e.logger.Info("verve: fallback gradient painted", "surface", id)
		}
	}
}

// Run drives Step at the target frame rate until ctx is cancelled. In
// fallback or reduced-motion mode it paints once and returns
// immediately.
func (e *Engine) Run(ctx context.Context) error {
	if e.fallback || e.reducedMotion {
		e.paintFallbackOnce()
		return nil
	}

	interval := time.Duration(float64(time.Second) / e.targetFPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t := <-ticker.C:
			e.Step(t)
		}
	}
}

// Snapshot returns the last broadcast frame. Safe from any goroutine.
func (e *Engine) Snapshot() param.Frame {
	e.snapMu.RLock()
	defer e.snapMu.RUnlock()
	return e.snap
}

// Close disposes every system, kills every context and releases every
// canvas. The engine is unusable afterwards. Only a bus the engine
// created itself is closed.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true

	e.registry.DisposeAll()
	for id, ctx := range e.contexts {
		ctx.Destroy()
		if err := e.provider.DestroyCanvas(id); err != nil {
			e.logger.Warn("verve: canvas destroy failed", "surface", id, "err", err)
		}
	}
	e.contexts = nil
	e.canvases = nil

	if e.ownBus {
		e.bus.Close()
	}
}
