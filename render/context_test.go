// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"
	"time"

	"github.com/gogpu/verve/event"
)

var t0 = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// recorder captures emitted lifecycle payloads.
type recorder struct {
	payloads []event.Payload
}

func (r *recorder) emit(p event.Payload) {
	r.payloads = append(r.payloads, p)
}

func (r *recorder) kinds() []event.Kind {
	out := make([]event.Kind, len(r.payloads))
	for i, p := range r.payloads {
		out[i] = p.EventKind()
	}
	return out
}

// TestContextStartsLive verifies the initial state and incarnation.
func TestContextStartsLive(t *testing.T) {
	c := NewContext("main")
	if got := c.State(); got != StateLive {
		t.Errorf("State() = %v, want live", got)
	}
	if c.Incarnation() == "" {
		t.Error("new context has empty incarnation")
	}
	if c.Attempts() != 0 {
		t.Errorf("Attempts() = %d, want 0", c.Attempts())
	}
}

// TestContextNotifyLost verifies the Live→Lost edge emits exactly one
// event per episode.
func TestContextNotifyLost(t *testing.T) {
	var rec recorder
	c := NewContext("main", WithEmitter(rec.emit))

	c.NotifyLost()
	if got := c.State(); got != StateLost {
		t.Fatalf("State() = %v, want lost", got)
	}

	// Repeated loss notifications within an episode are ignored.
	c.NotifyLost()
	c.NotifyLost()

	if len(rec.payloads) != 1 {
		t.Fatalf("emitted %d events, want 1", len(rec.payloads))
	}
	lost, ok := rec.payloads[0].(event.ContextLost)
	if !ok || lost.ContextID != "main" {
		t.Errorf("payload = %+v, want ContextLost{main}", rec.payloads[0])
	}
}

// TestContextRestorationSuccess verifies the full loss→recovery loop:
// backoff honored, hook called, callbacks replayed, incarnation
// changed.
func TestContextRestorationSuccess(t *testing.T) {
	var rec recorder
	hookCalls := 0
	c := NewContext("main",
		WithEmitter(rec.emit),
		WithRestoreHook(func() error { hookCalls++; return nil }),
	)
	before := c.Incarnation()

	var replayed []string
	c.RegisterRestoreFunc(func() error { replayed = append(replayed, "a"); return nil })
	c.RegisterRestoreFunc(func() error { replayed = append(replayed, "b"); return nil })

	c.NotifyLost()

	// First tick schedules, does not attempt.
	c.Tick(t0)
	if got := c.State(); got != StateRecovering {
		t.Fatalf("State() after scheduling tick = %v, want recovering", got)
	}
	if hookCalls != 0 {
		t.Fatal("hook ran before backoff elapsed")
	}

	// Still inside the backoff window.
	c.Tick(t0.Add(499 * time.Millisecond))
	if hookCalls != 0 {
		t.Fatal("hook ran inside backoff window")
	}

	// Backoff elapsed: attempt runs and succeeds.
	c.Tick(t0.Add(DefaultBackoff))
	if got := c.State(); got != StateLive {
		t.Fatalf("State() after successful attempt = %v, want live", got)
	}
	if hookCalls != 1 {
		t.Errorf("hook calls = %d, want 1", hookCalls)
	}
	if len(replayed) != 2 || replayed[0] != "a" || replayed[1] != "b" {
		t.Errorf("replay order = %v, want [a b]", replayed)
	}
	if c.Incarnation() == before {
		t.Error("incarnation unchanged after restoration")
	}
	if c.Attempts() != 0 {
		t.Errorf("Attempts() = %d after success, want 0", c.Attempts())
	}

	wantKinds := []event.Kind{event.KindContextLost, event.KindContextRestored}
	got := rec.kinds()
	if len(got) != len(wantKinds) || got[0] != wantKinds[0] || got[1] != wantKinds[1] {
		t.Fatalf("event kinds = %v, want %v", got, wantKinds)
	}
	restored := rec.payloads[1].(event.ContextRestored)
	if restored.Attempt != 1 {
		t.Errorf("restored attempt = %d, want 1", restored.Attempt)
	}
	if restored.Incarnation != c.Incarnation() {
		t.Error("restored incarnation does not match context")
	}
}

// TestContextRestorationBudget verifies that attempts stop at the
// budget and the context dies with a ContextFailed event.
func TestContextRestorationBudget(t *testing.T) {
	var rec recorder
	hookCalls := 0
	c := NewContext("main",
		WithEmitter(rec.emit),
		WithRestoreHook(func() error { hookCalls++; return errors.New("device gone") }),
		WithBackoff(100*time.Millisecond),
	)

	c.NotifyLost()
	now := t0
	c.Tick(now) // schedule

	// Drive well past the budget; attempts must stop at 3.
	for i := 0; i < 10; i++ {
		now = now.Add(100 * time.Millisecond)
		c.Tick(now)
	}

	if hookCalls != DefaultMaxAttempts {
		t.Errorf("hook calls = %d, want %d", hookCalls, DefaultMaxAttempts)
	}
	if got := c.State(); got != StateDead {
		t.Fatalf("State() = %v, want dead", got)
	}

	wantKinds := []event.Kind{event.KindContextLost, event.KindContextFailed}
	got := rec.kinds()
	if len(got) != 2 || got[1] != wantKinds[1] {
		t.Fatalf("event kinds = %v, want %v", got, wantKinds)
	}
	failed := rec.payloads[1].(event.ContextFailed)
	if failed.Attempts != DefaultMaxAttempts {
		t.Errorf("failed attempts = %d, want %d", failed.Attempts, DefaultMaxAttempts)
	}

	// Dead is terminal: further notifications and ticks are no-ops.
	c.NotifyLost()
	c.NotifyRestored()
	c.Tick(now.Add(time.Hour))
	if got := c.State(); got != StateDead {
		t.Errorf("State() after post-death activity = %v, want dead", got)
	}
	if len(rec.payloads) != 2 {
		t.Errorf("post-death events emitted: %v", rec.kinds())
	}
}

// TestContextRetryAfterFailure verifies a failed attempt reschedules
// and a later attempt can succeed.
func TestContextRetryAfterFailure(t *testing.T) {
	var rec recorder
	hookCalls := 0
	c := NewContext("main",
		WithEmitter(rec.emit),
		WithRestoreHook(func() error {
			hookCalls++
			if hookCalls < 2 {
				return errors.New("still gone")
			}
			return nil
		}),
		WithBackoff(50*time.Millisecond),
	)

	c.NotifyLost()
	c.Tick(t0)
	c.Tick(t0.Add(50 * time.Millisecond))  // attempt 1 fails
	c.Tick(t0.Add(60 * time.Millisecond))  // inside new backoff, no attempt
	c.Tick(t0.Add(100 * time.Millisecond)) // attempt 2 succeeds

	if hookCalls != 2 {
		t.Errorf("hook calls = %d, want 2", hookCalls)
	}
	if got := c.State(); got != StateLive {
		t.Fatalf("State() = %v, want live", got)
	}
	restored := rec.payloads[len(rec.payloads)-1].(event.ContextRestored)
	if restored.Attempt != 2 {
		t.Errorf("restored attempt = %d, want 2", restored.Attempt)
	}
}

// TestContextReplayIsolation verifies a failing restore callback does
// not prevent the others from running or the restoration from
// completing.
func TestContextReplayIsolation(t *testing.T) {
	c := NewContext("main",
		WithRestoreHook(func() error { return nil }),
	)

	var replayed []string
	c.RegisterRestoreFunc(func() error { replayed = append(replayed, "first"); return nil })
	c.RegisterRestoreFunc(func() error { return errors.New("texture alloc failed") })
	c.RegisterRestoreFunc(func() error { panic("shader compile blew up") })
	c.RegisterRestoreFunc(func() error { replayed = append(replayed, "last"); return nil })

	c.NotifyLost()
	c.Tick(t0)
	c.Tick(t0.Add(DefaultBackoff))

	if got := c.State(); got != StateLive {
		t.Fatalf("State() = %v, want live despite callback failures", got)
	}
	if len(replayed) != 2 || replayed[0] != "first" || replayed[1] != "last" {
		t.Errorf("replayed = %v, want [first last]", replayed)
	}
}

// TestContextDeregisterRestoreFunc verifies removed callbacks are not
// replayed and removal is idempotent.
func TestContextDeregisterRestoreFunc(t *testing.T) {
	c := NewContext("main", WithRestoreHook(func() error { return nil }))

	var replayed []string
	c.RegisterRestoreFunc(func() error { replayed = append(replayed, "keep"); return nil })
	remove := c.RegisterRestoreFunc(func() error { replayed = append(replayed, "drop"); return nil })
	remove()
	remove()

	c.NotifyLost()
	c.Tick(t0)
	c.Tick(t0.Add(DefaultBackoff))

	if len(replayed) != 1 || replayed[0] != "keep" {
		t.Errorf("replayed = %v, want [keep]", replayed)
	}
}

// TestContextNotifyRestored verifies the externally driven restoration
// path used on platforms that restore contexts themselves.
func TestContextNotifyRestored(t *testing.T) {
	var rec recorder
	c := NewContext("main", WithEmitter(rec.emit))
	before := c.Incarnation()

	// Live context ignores stray restored notifications.
	c.NotifyRestored()
	if len(rec.payloads) != 0 {
		t.Fatalf("restored-on-live emitted %v", rec.kinds())
	}

	var replayed int
	c.RegisterRestoreFunc(func() error { replayed++; return nil })

	c.NotifyLost()
	c.NotifyRestored()

	if got := c.State(); got != StateLive {
		t.Fatalf("State() = %v, want live", got)
	}
	if replayed != 1 {
		t.Errorf("replayed %d times, want 1", replayed)
	}
	if c.Incarnation() == before {
		t.Error("incarnation unchanged after external restoration")
	}
}

// TestContextSafeExecute verifies the fail-open execution wrapper.
func TestContextSafeExecute(t *testing.T) {
	c := NewContext("main")

	ran := false
	if err := c.SafeExecute(func() error { ran = true; return nil }); err != nil {
		t.Errorf("SafeExecute on live context: %v", err)
	}
	if !ran {
		t.Fatal("operation did not run on live context")
	}

	wantErr := errors.New("draw failed")
	if err := c.SafeExecute(func() error { return wantErr }); !errors.Is(err, wantErr) {
		t.Errorf("SafeExecute error = %v, want %v", err, wantErr)
	}

	// Panics become errors instead of unwinding the frame loop.
	err := c.SafeExecute(func() error { panic("buffer mapped while in use") })
	var panicked *OpPanicError
	if !errors.As(err, &panicked) {
		t.Fatalf("SafeExecute panic error = %v, want *OpPanicError", err)
	}
	if panicked.Value != "buffer mapped while in use" {
		t.Errorf("panic value = %v", panicked.Value)
	}

	// Lost context skips the operation entirely.
	c.NotifyLost()
	ran = false
	if err := c.SafeExecute(func() error { ran = true; return nil }); !errors.Is(err, ErrNotLive) {
		t.Errorf("SafeExecute on lost context = %v, want ErrNotLive", err)
	}
	if ran {
		t.Error("operation ran on lost context")
	}
}

// TestContextDestroy verifies deliberate shutdown is terminal and
// silent.
func TestContextDestroy(t *testing.T) {
	var rec recorder
	c := NewContext("main", WithEmitter(rec.emit))

	c.Destroy()
	if got := c.State(); got != StateDead {
		t.Fatalf("State() = %v, want dead", got)
	}
	if len(rec.payloads) != 0 {
		t.Errorf("Destroy emitted events: %v", rec.kinds())
	}
	if err := c.SafeExecute(func() error { return nil }); !errors.Is(err, ErrNotLive) {
		t.Errorf("SafeExecute on destroyed context = %v, want ErrNotLive", err)
	}
}

// TestStateString verifies state names used in logs.
func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateLive, "live"},
		{StateLost, "lost"},
		{StateRecovering, "recovering"},
		{StateDead, "dead"},
		{State(9), "State(9)"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State.String() = %q, want %q", got, tt.want)
		}
	}
}
