package verve

import (
	"log/slog"
	"time"

	"github.com/gogpu/verve/event"
	"github.com/gogpu/verve/render"
	"github.com/gogpu/verve/style"
)

// Option configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Default: auto-selected backend, built-in profiles
//	eng := verve.New()
//
//	// Headless test engine with an injected clock
//	eng := verve.New(
//	    verve.WithBackend("soft"),
//	    verve.WithClock(fakeClock.Now),
//	)
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	profiles       map[string]SectionProfile
	provider       render.SurfaceProvider
	backendName    string
	bus            *event.Bus
	styles         []style.Surface
	targetFPS      float64
	reducedMotion  bool
	now            func() time.Time
	logger         *slog.Logger
	idleAfter      time.Duration
	idleAfterSet   bool
	maxAttempts    int
	restoreBackoff time.Duration
	viewW, viewH   float64
	tau, rotTau    time.Duration
	governor       *Governor
}

// defaultEngineOptions returns the default engine options.
func defaultEngineOptions() engineOptions {
	return engineOptions{
		targetFPS: DefaultTargetFPS,
		now:       time.Now,
	}
}

// WithProfiles replaces the built-in section profile set.
func WithProfiles(profiles map[string]SectionProfile) Option {
	return func(o *engineOptions) {
		o.profiles = profiles
	}
}

// WithProvider injects a concrete surface provider, bypassing backend
// registry selection. Use this to share a provider with a host
// application or to inject a fake in tests.
func WithProvider(p render.SurfaceProvider) Option {
	return func(o *engineOptions) {
		o.provider = p
	}
}

// WithBackend selects a registered backend by name ("wgpu", "ebiten",
// "soft"). Without it the engine takes the highest-priority available
// backend. A name that is not registered or not available puts the
// engine into static-gradient fallback mode; it does not fail.
func WithBackend(name string) Option {
	return func(o *engineOptions) {
		o.backendName = name
	}
}

// WithBus injects an externally owned event bus. The engine publishes
// to it but will not close it on Close.
func WithBus(b *event.Bus) Option {
	return func(o *engineOptions) {
		o.bus = b
	}
}

// WithStyleSurface adds a string-keyed variable sink that receives
// every broadcast frame. May be given multiple times.
func WithStyleSurface(s style.Surface) Option {
	return func(o *engineOptions) {
		if s != nil {
			o.styles = append(o.styles, s)
		}
	}
}

// WithTargetFPS sets the frame rate Run schedules at and the governor
// steers toward. Non-positive values keep the default.
func WithTargetFPS(fps float64) Option {
	return func(o *engineOptions) {
		if fps > 0 {
			o.targetFPS = fps
		}
	}
}

// WithReducedMotion disables the frame loop entirely: Run returns after
// the initial paint and Step does nothing. For hosts honoring a reduced
// motion preference.
func WithReducedMotion(reduced bool) Option {
	return func(o *engineOptions) {
		o.reducedMotion = reduced
	}
}

// WithClock injects the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(o *engineOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the engine's logger, overriding the package-level
// logger for this engine and its sub-components.
func WithLogger(l *slog.Logger) Option {
	return func(o *engineOptions) {
		o.logger = l
	}
}

// WithIdleAfter overrides the attract-mode onset delay. Zero disables
// attract mode.
func WithIdleAfter(d time.Duration) Option {
	return func(o *engineOptions) {
		o.idleAfter = d
		o.idleAfterSet = true
	}
}

// WithMaxRestoreAttempts sets the per-episode context restoration
// budget for surfaces the engine creates.
func WithMaxRestoreAttempts(n int) Option {
	return func(o *engineOptions) {
		o.maxAttempts = n
	}
}

// WithRestoreBackoff sets the delay before each context restoration
// attempt for surfaces the engine creates.
func WithRestoreBackoff(d time.Duration) Option {
	return func(o *engineOptions) {
		o.restoreBackoff = d
	}
}

// WithViewport reports the host viewport in pixels, used to normalize
// pointer positions.
func WithViewport(w, h float64) Option {
	return func(o *engineOptions) {
		o.viewW, o.viewH = w, h
	}
}

// WithSmoothing overrides the easing time constants: tau for most
// channels, rotTau for the 4D rotation planes. Non-positive values keep
// the defaults (param.Tau, param.RotTau).
func WithSmoothing(tau, rotTau time.Duration) Option {
	return func(o *engineOptions) {
		o.tau, o.rotTau = tau, rotTau
	}
}

// WithGovernor injects a pre-built quality governor, replacing the one
// the engine would construct from the target FPS.
func WithGovernor(g *Governor) Option {
	return func(o *engineOptions) {
		o.governor = g
	}
}
