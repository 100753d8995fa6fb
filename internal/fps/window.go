// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fps maintains a rolling frame-rate window over fixed
// one-second buckets. The quality governor reads the window average;
// keeping whole seconds rather than raw frame times makes the average
// insensitive to single-frame spikes and cheap to maintain.
package fps

import (
	"math"
	"time"
)

// DefaultWindow is the number of one-second buckets kept.
const DefaultWindow = 10

// Window counts frames into one-second buckets and reports statistics
// over the most recent completed buckets. It is not synchronized; the
// engine records from its tick goroutine only.
type Window struct {
	buckets  []float64
	next     int
	filled   int
	cur      float64
	curStart time.Time
	primed   bool
}

// NewWindow returns a window of n one-second buckets. n <= 0 selects
// DefaultWindow.
func NewWindow(n int) *Window {
	if n <= 0 {
		n = DefaultWindow
	}
	return &Window{buckets: make([]float64, n)}
}

// Record counts one rendered frame at the given instant, closing any
// seconds that have fully elapsed since the previous call. A stall
// longer than a second contributes empty buckets for the skipped
// seconds, so the average honestly reflects the outage.
func (w *Window) Record(at time.Time) {
	if !w.primed {
		w.primed = true
		w.curStart = at
		w.cur = 1
		return
	}

	// Clock going backwards: fold into the open bucket.
	if at.Before(w.curStart) {
		w.cur++
		return
	}

	for at.Sub(w.curStart) >= time.Second {
		w.push(w.cur)
		w.cur = 0
		w.curStart = w.curStart.Add(time.Second)

		// A very long stall fills the whole ring with zeros; skip
		// ahead rather than looping once per silent second.
		if gap := at.Sub(w.curStart); gap >= time.Duration(len(w.buckets)+1)*time.Second {
			for i := range w.buckets {
				w.buckets[i] = 0
			}
			w.filled = len(w.buckets)
			w.next = 0
			w.curStart = at.Truncate(time.Second)
			break
		}
	}
	w.cur++
}

func (w *Window) push(v float64) {
	w.buckets[w.next] = v
	w.next = (w.next + 1) % len(w.buckets)
	if w.filled < len(w.buckets) {
		w.filled++
	}
}

// Full reports whether every bucket has completed at least once since
// the last Reset. Governors wait for a full window before acting.
func (w *Window) Full() bool {
	return w.filled == len(w.buckets)
}

// Filled returns the number of completed buckets, at most the window
// size.
func (w *Window) Filled() int {
	return w.filled
}

// Average returns the mean frames per second over the completed
// buckets. ok is false while no bucket has completed yet.
func (w *Window) Average() (avg float64, ok bool) {
	if w.filled == 0 {
		return 0, false
	}
	var sum float64
	for i := 0; i < w.filled; i++ {
		sum += w.buckets[i]
	}
	return sum / float64(w.filled), true
}

// StdDev returns the population standard deviation of the completed
// buckets' frame counts. Useful as a jitter indicator.
func (w *Window) StdDev() float64 {
	avg, ok := w.Average()
	if !ok {
		return 0
	}
	var sum float64
	for i := 0; i < w.filled; i++ {
		d := w.buckets[i] - avg
		sum += d * d
	}
	return math.Sqrt(sum / float64(w.filled))
}

// Buckets returns a copy of the completed buckets, oldest first.
func (w *Window) Buckets() []float64 {
	out := make([]float64, 0, w.filled)
	if w.filled < len(w.buckets) {
		out = append(out, w.buckets[:w.filled]...)
		return out
	}
	out = append(out, w.buckets[w.next:]...)
	out = append(out, w.buckets[:w.next]...)
	return out
}

// Reset clears all buckets and the open second. The window must refill
// before Full reports true again.
func (w *Window) Reset() {
	for i := range w.buckets {
		w.buckets[i] = 0
	}
	w.next = 0
	w.filled = 0
	w.cur = 0
	w.primed = false
}
