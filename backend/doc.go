// Package backend provides a pluggable surface-provider abstraction.
//
// The backend package lets the engine create render canvases without
// knowing which rendering stack backs them. Providers wrap a concrete
// stack (gogpu/wgpu, an Ebitengine game loop, or a plain CPU image)
// behind render.SurfaceProvider and register themselves here.
//
// # Provider Registration
//
// Providers are registered via init() functions and selected at
// runtime. Importing a provider package is enough to register it:
//
//	import (
//		_ "github.com/gogpu/verve/backend/soft"
//		_ "github.com/gogpu/verve/backend/wgpu"
//	)
//
// # Provider Selection
//
// Use Default() to get the best available provider, or Get() to
// request a specific provider by name:
//
//	// Best available (probes each candidate in priority order).
//	p := backend.Default()
//
//	// Or request a specific provider.
//	p := backend.Get(backend.ProviderSoft)
//
// Select() resolves a configured provider name, treating "" and
// "auto" as Default():
//
//	p, err := backend.Select(cfg.Provider)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Available Providers
//
// - "wgpu": GPU canvases via gogpu/wgpu (requires a usable adapter)
// - "ebiten": canvases hosted by an Ebitengine game (see integration/ebitenhost)
// - "soft": CPU-backed image canvases (always available)
package backend
