// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package signal

import "time"

// HoverSet tracks which interactive elements are currently hovered.
// Entering an element twice without leaving is idempotent, and leaving
// an element that was never entered is a no-op, so unbalanced host
// events cannot drive the count negative or unbounded.
type HoverSet struct {
	active map[string]struct{}
}

// Enter marks id as hovered and returns the updated sample.
func (h *HoverSet) Enter(id string, at time.Time) Sample {
	if h.active == nil {
		h.active = make(map[string]struct{})
	}
	h.active[id] = struct{}{}
	return h.sample(id, at)
}

// Leave clears id's hover state and returns the updated sample.
func (h *HoverSet) Leave(id string, at time.Time) Sample {
	delete(h.active, id)
	return h.sample(id, at)
}

// Count returns the number of currently hovered elements.
func (h *HoverSet) Count() int {
	return len(h.active)
}

// Clear drops all hover state, as when the pointer leaves the window.
func (h *HoverSet) Clear() {
	h.active = nil
}

func (h *HoverSet) sample(id string, at time.Time) Sample {
	n := float64(len(h.active))
	return Sample{
		Kind:   KindHover,
		Target: id,
		Value:  n,
		Energy: normEnergy(n, HoverFullCount),
		At:     at,
	}
}
