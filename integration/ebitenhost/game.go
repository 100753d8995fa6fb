// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenhost

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/verve"
	"github.com/gogpu/verve/param"
	"github.com/gogpu/verve/signal"
)

// wheelStep converts one wheel notch into scroll pixels, matching
// typical desktop line scrolling.
const wheelStep = 120.0

// defaultPageHeight is the virtual scrollable extent in pixels. Scroll
// progress is the wheel-accumulated offset over this height.
const defaultPageHeight = 4000.0

// clockInterval is how often the diurnal clock sample is refreshed.
const clockInterval = time.Minute

// Game adapts a verve engine to ebiten.Game. Update forwards input
// samples and steps the engine; Draw composites the active render
// targets onto the screen in priority order, skipping any whose
// lifecycle context is not live.
type Game struct {
	eng     *verve.Engine
	w, h    int
	pointer signal.PointerTracker
	scroll  signal.ScrollTracker

	scrollOffset float64
	pageHeight   float64
	lastClock    time.Time

	// OnUpdate, when set, runs after input forwarding and before the
	// engine step each frame. Hosts hook navigation keys here.
	OnUpdate func(now time.Time)

	// Overlay, when set, draws on top of the composited targets.
	Overlay func(screen *ebiten.Image, frame param.Frame)
}

// NewGame wraps an engine for ebiten.RunGame at the given logical size.
// The engine's pointer normalization viewport is set to match.
func NewGame(eng *verve.Engine, width, height int) *Game {
	eng.Orchestrator().SetViewport(float64(width), float64(height))
	return &Game{
		eng:        eng,
		w:          width,
		h:          height,
		pageHeight: defaultPageHeight,
	}
}

// SetPageHeight overrides the virtual scroll extent. Non-positive
// values are ignored.
func (g *Game) SetPageHeight(px float64) {
	if px > 0 {
		g.pageHeight = px
	}
}

// Engine returns the wrapped engine.
func (g *Game) Engine() *verve.Engine { return g.eng }

// Update implements ebiten.Game: forward input, step the engine once.
func (g *Game) Update() error {
	now := time.Now()

	x, y := ebiten.CursorPosition()
	g.eng.Deliver(g.pointer.Observe(float64(x), float64(y), now))

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.scrollOffset -= wy * wheelStep
		if g.scrollOffset < 0 {
			g.scrollOffset = 0
		}
		if g.scrollOffset > g.pageHeight {
			g.scrollOffset = g.pageHeight
		}
		g.eng.Deliver(g.scroll.Observe(g.scrollOffset, g.pageHeight, now))
	}

	if now.Sub(g.lastClock) >= clockInterval {
		g.lastClock = now
		g.eng.Deliver(signal.ClockSample(now))
	}

	if g.OnUpdate != nil {
		g.OnUpdate(now)
	}

	g.eng.Step(now)
	return nil
}

// Draw implements ebiten.Game. Targets composite in registry priority
// order; every draw goes through the surface's lifecycle context, so a
// lost context simply skips its layer.
func (g *Game) Draw(screen *ebiten.Image) {
	for _, entry := range g.eng.Registry().ActiveTargets() {
		canvas, ok := g.eng.Canvas(entry.ID)
		if !ok {
			continue
		}
		ec, ok := canvas.(*Canvas)
		if !ok {
			continue
		}
		ctx, ok := g.eng.Context(entry.ID)
		if !ok {
			continue
		}
		_ = ctx.SafeExecute(func() error {
			screen.DrawImage(ec.Image(), nil)
			return nil
		})
	}

	if g.Overlay != nil {
		g.Overlay(screen, g.eng.Snapshot())
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
