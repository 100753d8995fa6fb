// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitenhost runs a verve engine inside an Ebitengine game
// loop.
//
// It contributes two pieces:
//
//   - a surface provider whose canvases are *ebiten.Image, registered
//     with the backend registry under "ebiten"
//   - a Game adapter that forwards pointer, wheel and clock input to
//     the engine, steps it once per update and composites the active
//     render targets onto the screen
//
// Ebiten's Update/Draw cycle is the frame scheduler: the host calls
// Engine.Step from Update, so Engine.Run is not used in this mode.
//
//	eng := verve.New(verve.WithBackend("ebiten"))
//	game := ebitenhost.NewGame(eng, 1280, 720)
//	ebiten.SetWindowSize(1280, 720)
//	if err := ebiten.RunGame(game); err != nil { ... }
package ebitenhost
