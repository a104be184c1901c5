// File: queue/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Queue[T] is a thin wrapper over ring.Ring[T] implementing api.Queue,
// adding construction options and optional operation tracing.

package queue

import (
	"github.com/momentics/cirq/api"
	"github.com/momentics/cirq/internal/ring"
)

// Ensure compile-time compliance.
var _ api.Queue[any] = (*Queue[any])(nil)

// Queue is a fixed-capacity FIFO over items of type T.
type Queue[T any] struct {
	*ring.Ring[T]
	tracer api.Tracer
}

// New creates a queue with the given slot capacity.
// Returns api.ErrInvalidCapacity for capacity < 1.
func New[T any](capacity int, opts ...Option) (*Queue[T], error) {
	cfg := buildConfig(opts)
	r, err := ring.NewRing[T](capacity)
	if err != nil {
		return nil, err
	}
	r.SetFullOverwrite(cfg.overwrite)
	return &Queue[T]{Ring: r, tracer: cfg.tracer}, nil
}

// trace emits one probe when a tracer is installed. The fields map is
// only built on the traced path, keeping untraced ops allocation-free.
func (q *Queue[T]) trace(op string, ok bool) {
	if q.tracer == nil {
		return
	}
	fields := q.Snapshot()
	fields["ok"] = ok
	q.tracer.Trace(op, fields)
}

// Push inserts an item; see api.Queue.
func (q *Queue[T]) Push(item T) bool {
	ok := q.Ring.Push(item)
	q.trace("push", ok)
	return ok
}

// Pop removes and returns the oldest item; see api.Queue.
func (q *Queue[T]) Pop() (T, bool) {
	item, ok := q.Ring.Pop()
	q.trace("pop", ok)
	return item, ok
}

// Peek returns the oldest item without removing it; see api.Queue.
func (q *Queue[T]) Peek() (T, bool) {
	item, ok := q.Ring.Peek()
	q.trace("peek", ok)
	return item, ok
}

// Clear logically empties the queue.
func (q *Queue[T]) Clear() {
	q.Ring.Clear()
	q.trace("clear", true)
}
