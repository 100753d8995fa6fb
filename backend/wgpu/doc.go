// Package wgpu provides a GPU surface provider built on gogpu/wgpu.
//
// Canvases are backed by device textures and survive visualization
// system switches untouched. The device itself is acquired once,
// lazily, on the first availability probe; recovering from context
// loss means recreating canvases through the same provider, never
// reopening the device.
//
// # Registration
//
// Importing the package registers the provider:
//
//	import _ "github.com/gogpu/verve/backend/wgpu"
//
// Builds with the nogpu tag compile the data types but skip the
// registration and the Vulkan backend import, so headless CI never
// touches a driver.
//
// # Effects
//
// Compute kernels are compiled from WGSL through naga and cached by
// name. The embedded particle shader ships with seed and advect entry
// points; systems may compile their own sources through CompileEffect.
package wgpu
