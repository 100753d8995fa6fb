// Package verve orchestrates real-time visual parameters for GPU
// render surfaces.
//
// # Overview
//
// verve is the engine behind interactive generative-art pages: it fuses
// noisy interaction signals (pointer motion, scroll, hover, section
// visibility, audio spectrum, wall clock) into a single smoothly
// interpolated parameter vector, broadcasts that vector to every active
// render surface once per frame, survives GPU context loss with bounded
// recovery, and steps rendering quality down under frame-budget
// pressure.
//
// # Quick Start
//
//	import "github.com/gogpu/verve"
//
//	eng := verve.New()
//	defer eng.Close()
//
//	_, _, err := eng.CreateSurface("hero", verve.SurfaceOptions{
//	    Canvas:   render.CanvasOptions{Width: 1280, Height: 720},
//	    Priority: 10,
//	})
//	eng.TransitionToSection("home")
//	eng.Run(ctx)
//
// # Architecture
//
// The engine owns four collaborating parts:
//
//   - the Orchestrator fuses signal samples into bounded multipliers and
//     eases the live parameter vector toward each section's target
//   - the surface Registry tracks render targets and visualization
//     systems, with exactly one system active per canvas group
//   - one render.Context per canvas walks the Live/Lost/Recovering/Dead
//     lifecycle with a bounded restoration budget
//   - the Governor watches realized frame rate and steps the quality
//     tier so slow machines degrade resolution instead of dropping
//     frames
//
// Everything runs on the single goroutine that calls Step (or Run);
// samplers deliver from any goroutine through a mutex-guarded inbox.
//
// # Failure Policy
//
// verve is decorative infrastructure. Nothing in the engine panics
// across a component boundary and no per-frame path returns an error to
// the host: unknown section ids and system names are logged and
// ignored, a dead GPU context parks its canvas inert, and a machine
// with no usable backend falls back to a single static gradient paint.
package verve

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
