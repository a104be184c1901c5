// File: internal/ring/ring.go
// Package ring implements the fixed-capacity FIFO containers.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring is a bounded circular buffer over a typed slice, addressed by
// put/take indices advanced modulo capacity. It carries no locks or
// atomics: single-producer/single-consumer use across goroutines
// requires external serialization by the caller.

package ring

import (
	"github.com/momentics/cirq/api"
)

// Ensure compile-time interface compliance.
var _ api.Queue[any] = (*Ring[any])(nil)

// Ring is a fixed-capacity FIFO over items of type T.
//
// Invariants: 0 <= count <= capacity; put and take are always valid slot
// indices; exactly count slots starting at take (walking forward
// circularly) hold live items in FIFO order.
type Ring[T any] struct {
	data      []T
	count     int
	put       int // slot the next Push writes
	take      int // slot the next Pop or Peek reads
	overwrite bool
}

// NewRing allocates a ring with the given slot capacity.
// Capacity below 1 is rejected with api.ErrInvalidCapacity.
func NewRing[T any](capacity int) (*Ring[T], error) {
	if capacity < 1 {
		return nil, api.NewError(api.ErrCodeInvalidCapacity,
			"ring: invalid capacity", map[string]any{"capacity": capacity})
	}
	return &Ring[T]{data: make([]T, capacity)}, nil
}

// Push inserts item at the tail. When full it either rejects (returns
// false, no mutation) or, with overwrite enabled, discards the oldest
// item through the pop path and inserts anyway.
func (r *Ring[T]) Push(item T) bool {
	if r.count == len(r.data) {
		if !r.overwrite {
			return false
		}
		// Evict the oldest item; its slot is the one about to be written.
		r.take = (r.take + 1) % len(r.data)
		r.count--
	}
	r.data[r.put] = item
	r.put = (r.put + 1) % len(r.data)
	r.count++
	return true
}

// Pop removes and returns the oldest item; ok is false when empty.
func (r *Ring[T]) Pop() (item T, ok bool) {
	if r.count == 0 {
		return item, false
	}
	item = r.data[r.take]
	var zero T
	r.data[r.take] = zero // drop the reference so the GC can collect it
	r.take = (r.take + 1) % len(r.data)
	r.count--
	return item, true
}

// Peek returns the oldest item without removing it; ok is false when empty.
func (r *Ring[T]) Peek() (item T, ok bool) {
	if r.count == 0 {
		return item, false
	}
	return r.data[r.take], true
}

// Clear logically empties the ring. Idempotent.
func (r *Ring[T]) Clear() {
	var zero T
	for i := range r.data {
		r.data[i] = zero
	}
	r.count, r.put, r.take = 0, 0, 0
}

// Len returns the number of items currently stored.
func (r *Ring[T]) Len() int {
	return r.count
}

// Cap returns the fixed slot capacity.
func (r *Ring[T]) Cap() int {
	return len(r.data)
}

// IsEmpty reports whether no items are stored.
func (r *Ring[T]) IsEmpty() bool {
	return r.count == 0
}

// IsFull reports whether every slot is occupied.
func (r *Ring[T]) IsFull() bool {
	return r.count == len(r.data)
}

// SetFullOverwrite selects the full-ring policy for subsequent pushes.
func (r *Ring[T]) SetFullOverwrite(enabled bool) {
	r.overwrite = enabled
}

// Snapshot returns bookkeeping state for debug probes.
func (r *Ring[T]) Snapshot() map[string]any {
	return map[string]any{
		"len":  r.count,
		"cap":  len(r.data),
		"put":  r.put,
		"take": r.take,
	}
}
