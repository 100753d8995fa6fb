package verve

import (
	"log/slog"
	"time"

	"github.com/gogpu/verve/event"
	"github.com/gogpu/verve/internal/fps"
	"github.com/gogpu/verve/param"
)

// Governor tuning.
const (
	// DefaultTargetFPS is the frame rate the governor steers toward.
	DefaultTargetFPS = 60.0

	// stepDownRatio and stepUpRatio gate tier changes relative to the
	// target rate. The dead band between them is the hysteresis that
	// keeps neighboring tiers from oscillating.
	stepDownRatio = 0.80
	stepUpRatio   = 0.95
)

// Governor steps the quality tier against realized frame rate. It
// averages over a rolling window of one-second buckets and acts only on
// a full window, then resets it, so a tier change cannot be followed by
// another until a whole window of evidence has accumulated — the window
// is the debounce.
//
// Not synchronized; the engine records from its tick goroutine only.
type Governor struct {
	logger    *slog.Logger
	emit      func(event.Payload)
	window    *fps.Window
	targetFPS float64
	level     param.QualityLevel
}

// NewGovernor returns a governor starting at QualityHigh. Non-positive
// targetFPS selects DefaultTargetFPS.
func NewGovernor(targetFPS float64) *Governor {
	if targetFPS <= 0 {
		targetFPS = DefaultTargetFPS
	}
	return &Governor{
		logger:    Logger(),
		window:    fps.NewWindow(fps.DefaultWindow),
		targetFPS: targetFPS,
		level:     param.QualityHigh,
	}
}

// SetLogger replaces the governor's logger. Nil restores the
// package-level logger.
func (g *Governor) SetLogger(l *slog.Logger) {
	if l == nil {
		l = Logger()
	}
	g.logger = l
}

// SetEmitter wires tier-change payloads to a sink.
func (g *Governor) SetEmitter(emit func(event.Payload)) { g.emit = emit }

// Level returns the current quality tier.
func (g *Governor) Level() param.QualityLevel { return g.level }

// Record counts one rendered frame and returns the tier to apply from
// the next frame on. The tier moves at most one discrete step per full
// window: down when the window average falls below stepDownRatio of the
// target rate, up when it clears stepUpRatio of it.
func (g *Governor) Record(now time.Time) param.QualityLevel {
	g.window.Record(now)
	if !g.window.Full() {
		return g.level
	}

	avg, ok := g.window.Average()
	if !ok {
		return g.level
	}

	next := g.level
	switch {
	case avg < g.targetFPS*stepDownRatio:
		next = g.level.Lower()
	case avg > g.targetFPS*stepUpRatio:
		next = g.level.Higher()
	}
	if next == g.level {
		// Inside the dead band: keep the window rolling so a later
		// drop is judged against fresh seconds.
		return g.level
	}

	prev := g.level
	g.level = next
	g.window.Reset()

	g.logger.Info("verve: quality tier changed",
		"prev", prev, "next", next, "avg_fps", avg)
	if g.emit != nil {
		g.emit(event.QualityChanged{Prev: prev, Next: next, AvgFPS: avg})
	}
	return g.level
}
