package backend

import (
	"errors"
)

// Provider names used for registration and selection.
const (
	// ProviderWGPU is the GPU provider built on gogpu/wgpu.
	ProviderWGPU = "wgpu"
	// ProviderEbiten is the provider hosted inside an Ebitengine game loop.
	ProviderEbiten = "ebiten"
	// ProviderSoft is the CPU fallback provider (always available).
	ProviderSoft = "soft"
)

// Common provider errors.
var (
	// ErrProviderNotAvailable is returned when a requested provider is
	// not registered, or when no registered provider can run on this
	// machine.
	ErrProviderNotAvailable = errors.New("backend: provider not available")
)
