// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package param defines the visual parameter plane shared by the verve
// orchestrator, render systems, and style consumers.
//
// The central type is Vector: eleven numeric channels (intensity, chaos,
// speed, hue, rgb offset, moiré strength, grid density, morph factor and
// three 4D rotation planes) that together describe the appearance of a
// generative-art surface at one instant. The orchestrator maintains two
// vectors — a target recomputed every frame from the active section
// profile and the interaction multipliers, and a current vector that is
// exponentially eased toward the target and broadcast to renderers.
//
// Every channel has a documented numeric range. Clamped is applied to the
// target each frame so that compounding multiplier products can never
// drift a channel out of range; renderers may rely on the bounds without
// re-validating.
//
// Multipliers are the five bounded interaction scalars derived from the
// signal samplers. Their ranges guarantee that a single runaway input
// (say, a scroll storm) cannot starve the other signals' influence.
//
// Frame is the per-tick broadcast snapshot: the current vector plus the
// multipliers, section context and quality scales, stamped with a
// sequence number. Frames are values; consumers may retain them freely.
package param
