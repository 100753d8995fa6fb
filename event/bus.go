// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package event

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// Bus errors.
var (
	// ErrBusClosed is returned by operations on a closed bus.
	ErrBusClosed = errors.New("event: bus closed")

	// ErrSubscriberExists is returned when a subscriber id is already
	// registered.
	ErrSubscriberExists = errors.New("event: subscriber exists")

	// ErrSubscriberNotFound is returned for operations on an unknown
	// subscriber id.
	ErrSubscriberNotFound = errors.New("event: subscriber not found")
)

// DefaultBuffer is the subscription buffer used when Subscribe is given
// a non-positive size.
const DefaultBuffer = 64

// Stats counts a subscriber's delivery outcomes.
type Stats struct {
	Sent    uint64
	Dropped uint64
}

type subscriber struct {
	ch      chan Event
	sent    atomic.Uint64
	dropped atomic.Uint64
}

// Bus fans events out to subscribers without ever blocking the
// publisher. The zero value is not usable; construct with NewBus.
type Bus struct {
	mu     sync.RWMutex
	subs   map[string]*subscriber
	closed bool
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]*subscriber)}
}

// Subscribe registers a consumer and returns its receive channel. The
// channel is closed when the subscriber is removed or the bus closes.
// buffer <= 0 selects DefaultBuffer.
func (b *Bus) Subscribe(id string, buffer int) (<-chan Event, error) {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrBusClosed
	}
	if _, ok := b.subs[id]; ok {
		return nil, fmt.Errorf("%w: %q", ErrSubscriberExists, id)
	}

	sub := &subscriber{ch: make(chan Event, buffer)}
	b.subs[id] = sub
	return sub.ch, nil
}

// Unsubscribe removes a consumer and closes its channel.
func (b *Bus) Unsubscribe(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub, ok := b.subs[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrSubscriberNotFound, id)
	}
	delete(b.subs, id)
	close(sub.ch)
	return nil
}

// Publish delivers e to every subscriber whose buffer has room and
// counts a drop for every subscriber whose buffer is full. It never
// blocks. Publishing on a closed bus is a no-op.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}
	for _, sub := range b.subs {
		select {
		case sub.ch <- e:
			sub.sent.Add(1)
		default:
			sub.dropped.Add(1)
		}
	}
}

// Stats reports a subscriber's delivery counters.
func (b *Bus) Stats(id string) (Stats, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	sub, ok := b.subs[id]
	if !ok {
		return Stats{}, fmt.Errorf("%w: %q", ErrSubscriberNotFound, id)
	}
	return Stats{Sent: sub.sent.Load(), Dropped: sub.dropped.Load()}, nil
}

// Close closes every subscriber channel and rejects further use. Close
// is idempotent.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, sub := range b.subs {
		delete(b.subs, id)
		close(sub.ch)
	}
}
