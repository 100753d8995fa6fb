// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gogpu/verve/event"
)

// Restoration defaults.
const (
	// DefaultMaxAttempts is the restoration budget per loss episode.
	DefaultMaxAttempts = 3

	// DefaultBackoff is the fixed delay before each restoration
	// attempt.
	DefaultBackoff = 500 * time.Millisecond
)

// Context errors.
var (
	// ErrNotLive is returned by SafeExecute while the context is lost,
	// recovering or dead. Callers treat it as "skip this frame".
	ErrNotLive = errors.New("render: context not live")
)

// OpPanicError wraps a panic captured by SafeExecute.
type OpPanicError struct {
	Value any
}

func (e *OpPanicError) Error() string {
	return fmt.Sprintf("render: operation panicked: %v", e.Value)
}

// RestoreFunc re-creates one consumer's GPU-dependent resources after a
// context restoration. Returning an error marks that consumer's replay
// as failed but never aborts the restoration or the other replays.
type RestoreFunc func() error

type restoreEntry struct {
	id int
	fn RestoreFunc
}

// Context tracks one rendering context through loss and restoration.
//
// The host reports loss with NotifyLost (or restoration with
// NotifyRestored, where the platform restores contexts itself). The
// engine drives Tick once per frame; Tick schedules and executes
// restoration attempts against the configured restore hook. All state
// transitions are serialized by an internal mutex, so notifications may
// arrive from any goroutine.
type Context struct {
	mu sync.Mutex

	id          string
	state       State
	attempts    int
	retryAt     time.Time
	incarnation string

	restoreFns []restoreEntry
	nextFnID   int

	restoreHook func() error
	emit        func(event.Payload)
	logger      *slog.Logger

	maxAttempts int
	backoff     time.Duration
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithMaxAttempts sets the restoration budget per loss episode.
// Non-positive values keep the default.
func WithMaxAttempts(n int) ContextOption {
	return func(c *Context) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithBackoff sets the fixed delay before each restoration attempt.
// Non-positive values keep the default.
func WithBackoff(d time.Duration) ContextOption {
	return func(c *Context) {
		if d > 0 {
			c.backoff = d
		}
	}
}

// WithRestoreHook sets the function that reacquires the underlying
// context resources (device, canvas backing) during a restoration
// attempt. Without a hook, attempts only replay consumer callbacks.
func WithRestoreHook(fn func() error) ContextOption {
	return func(c *Context) { c.restoreHook = fn }
}

// WithEmitter sets the sink for lifecycle event payloads. The engine
// wires this to its event bus; payloads are emitted while holding no
// locks beyond the context's own.
func WithEmitter(emit func(event.Payload)) ContextOption {
	return func(c *Context) { c.emit = emit }
}

// WithContextLogger sets the context's logger.
func WithContextLogger(l *slog.Logger) ContextOption {
	return func(c *Context) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewContext returns a live context with a fresh incarnation id.
func NewContext(id string, opts ...ContextOption) *Context {
	c := &Context{
		id:          id,
		state:       StateLive,
		incarnation: uuid.NewString(),
		logger:      slog.New(slog.DiscardHandler),
		maxAttempts: DefaultMaxAttempts,
		backoff:     DefaultBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ID returns the context's identifier.
func (c *Context) ID() string { return c.id }

// State returns the current lifecycle state.
func (c *Context) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Incarnation returns the current context generation. The value changes
// on every successful restoration; consumers compare it to invalidate
// cached per-context resources.
func (c *Context) Incarnation() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.incarnation
}

// Attempts returns the number of restoration attempts made in the
// current loss episode.
func (c *Context) Attempts() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attempts
}

// NotifyLost records a context loss. Only a live context transitions;
// repeated notifications during an episode are ignored, so event
// consumers see exactly one ContextLost per episode.
func (c *Context) NotifyLost() {
	c.mu.Lock()
	if c.state != StateLive {
		c.mu.Unlock()
		return
	}
	c.state = StateLost
	c.attempts = 0
	emit := c.emit
	c.mu.Unlock()

	c.logger.Warn("render: context lost", "context", c.id)
	if emit != nil {
		emit(event.ContextLost{ContextID: c.id})
	}
}

// NotifyRestored records an externally driven restoration, for hosts
// whose platform restores contexts itself. Consumer callbacks are
// replayed in registration order before the context reports live again.
// Live and dead contexts ignore the notification.
func (c *Context) NotifyRestored() {
	c.mu.Lock()
	if c.state != StateLost && c.state != StateRecovering {
		c.mu.Unlock()
		return
	}
	attempt := c.attempts
	c.finishRestoreLocked()
	emit := c.emit
	incarnation := c.incarnation
	c.mu.Unlock()

	c.logger.Info("render: context restored externally", "context", c.id)
	if emit != nil {
		emit(event.ContextRestored{ContextID: c.id, Attempt: attempt, Incarnation: incarnation})
	}
}

// Tick advances the restoration schedule. The engine calls it once per
// frame with its tick timestamp; a context that is live or dead returns
// immediately.
func (c *Context) Tick(now time.Time) {
	c.mu.Lock()

	switch c.state {
	case StateLive, StateDead:
		c.mu.Unlock()
		return

	case StateLost:
		c.state = StateRecovering
		c.retryAt = now.Add(c.backoff)
		c.mu.Unlock()
		c.logger.Info("render: restoration scheduled",
			"context", c.id, "backoff", c.backoff)
		return

	case StateRecovering:
		if now.Before(c.retryAt) {
			c.mu.Unlock()
			return
		}
		c.attempts++
		attempt := c.attempts
		hook := c.restoreHook
		c.mu.Unlock()

		c.logger.Info("render: restoration attempt",
			"context", c.id, "attempt", attempt, "max", c.maxAttempts)

		var err error
		if hook != nil {
			err = safeCall(hook)
		}
		if err != nil {
			c.failAttempt(now, attempt, err)
			return
		}
		c.succeedAttempt(attempt)
		return
	}
	c.mu.Unlock()
}

func (c *Context) failAttempt(now time.Time, attempt int, err error) {
	c.mu.Lock()
	if c.state != StateRecovering {
		// Destroyed or externally restored while the hook ran.
		c.mu.Unlock()
		return
	}
	if attempt >= c.maxAttempts {
		c.state = StateDead
		emit := c.emit
		c.mu.Unlock()

		c.logger.Error("render: restoration budget exhausted",
			"context", c.id, "attempts", attempt, "err", err)
		if emit != nil {
			emit(event.ContextFailed{ContextID: c.id, Attempts: attempt})
		}
		return
	}
	c.retryAt = now.Add(c.backoff)
	c.mu.Unlock()

	c.logger.Warn("render: restoration attempt failed",
		"context", c.id, "attempt", attempt, "err", err)
}

func (c *Context) succeedAttempt(attempt int) {
	c.mu.Lock()
	if c.state != StateRecovering {
		c.mu.Unlock()
		return
	}
	c.finishRestoreLocked()
	emit := c.emit
	incarnation := c.incarnation
	c.mu.Unlock()

	c.logger.Info("render: context restored",
		"context", c.id, "attempt", attempt)
	if emit != nil {
		emit(event.ContextRestored{ContextID: c.id, Attempt: attempt, Incarnation: incarnation})
	}
}

// finishRestoreLocked replays consumer callbacks and returns the context
// to live. Callback failures are isolated: each is logged and the rest
// still run. Must be called with the mutex held.
func (c *Context) finishRestoreLocked() {
	for _, entry := range c.restoreFns {
		if err := safeCall(entry.fn); err != nil {
			c.logger.Error("render: restore callback failed",
				"context", c.id, "callback", entry.id, "err", err)
		}
	}
	c.state = StateLive
	c.attempts = 0
	c.incarnation = uuid.NewString()
}

// RegisterRestoreFunc adds a callback replayed on every restoration, in
// registration order. The returned function deregisters it.
func (c *Context) RegisterRestoreFunc(fn RestoreFunc) (remove func()) {
	if fn == nil {
		return func() {}
	}

	c.mu.Lock()
	id := c.nextFnID
	c.nextFnID++
	c.restoreFns = append(c.restoreFns, restoreEntry{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, entry := range c.restoreFns {
			if entry.id == id {
				c.restoreFns = append(c.restoreFns[:i], c.restoreFns[i+1:]...)
				return
			}
		}
	}
}

// SafeExecute runs op only while the context is live. Panics inside op
// are captured, logged and returned as *OpPanicError, so one bad draw
// call cannot take down the frame loop. While not live it returns
// ErrNotLive without running op.
func (c *Context) SafeExecute(op func() error) error {
	c.mu.Lock()
	live := c.state == StateLive
	c.mu.Unlock()

	if !live {
		return ErrNotLive
	}
	err := safeCall(op)
	var panicked *OpPanicError
	if errors.As(err, &panicked) {
		c.logger.Error("render: operation panicked",
			"context", c.id, "panic", panicked.Value)
	}
	return err
}

// Destroy marks the context dead without emitting failure events.
// Deliberate shutdown is not a lifecycle incident.
func (c *Context) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = StateDead
}

// safeCall invokes fn, converting a panic into *OpPanicError.
func safeCall(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &OpPanicError{Value: r}
		}
	}()
	return fn()
}
