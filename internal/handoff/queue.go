// Package handoff provides the bounded FIFO used to pass placements from the
// dispatch role to the pickup role.
package handoff

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned when pushing to a closed queue.
var ErrClosed = errors.New("handoff queue closed")

// Queue is a bounded multi-producer FIFO. Push blocks while the queue is full.
// Close is a one-way idempotent signal; consumers drain remaining items and
// then observe end of stream.
type Queue[T any] struct {
	mu     sync.RWMutex
	items  chan T
	done   chan struct{}
	once   sync.Once
	closed bool
}

// New creates a queue holding at most capacity items. A non-positive
// capacity is raised to one.
func New[T any](capacity int) *Queue[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Queue[T]{items: make(chan T, capacity), done: make(chan struct{})}
}

// Push enqueues v, blocking until there is room, the queue is closed or ctx
// is done.
func (q *Queue[T]) Push(ctx context.Context, v T) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return ErrClosed
	}
	select {
	case q.items <- v:
		return nil
	case <-q.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pop dequeues the next item. ok is false once the queue is closed and
// drained, or when ctx is done.
func (q *Queue[T]) Pop(ctx context.Context) (v T, ok bool) {
	select {
	case v, ok = <-q.items:
		return v, ok
	case <-ctx.Done():
		var zero T
		return zero, false
	}
}

// Len returns the number of buffered items.
func (q *Queue[T]) Len() int { return len(q.items) }

// Cap returns the queue capacity.
func (q *Queue[T]) Cap() int { return cap(q.items) }

// Close marks the queue closed. Blocked producers return ErrClosed. Calling
// Close more than once is safe.
func (q *Queue[T]) Close() {
	q.once.Do(func() {
		close(q.done)
		q.mu.Lock()
		q.closed = true
		close(q.items)
		q.mu.Unlock()
	})
}
