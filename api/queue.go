// Package api
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity FIFO queue contract.

package api

// Queue is a bounded FIFO container over uniform items.
//
// Implementations are not synchronized: a producer and a consumer running
// in different goroutines must be serialized by the caller (mutex, channel
// hand-off, or confinement to one goroutine). Every operation completes in
// constant time and never blocks.
type Queue[T any] interface {
	// Push inserts an item at the tail.
	// Returns false when the queue is full and overwrite mode is off;
	// with overwrite mode on it evicts the oldest item and returns true.
	Push(item T) bool

	// Pop removes and returns the oldest item; ok is false when empty.
	Pop() (item T, ok bool)

	// Peek returns the oldest item without removing it; ok is false when empty.
	Peek() (item T, ok bool)

	// Clear logically empties the queue. Idempotent.
	Clear()

	// Len returns the current number of items.
	Len() int

	// Cap returns the fixed slot capacity.
	Cap() int

	// IsEmpty reports whether no items are stored.
	IsEmpty() bool

	// IsFull reports whether every slot is occupied.
	IsFull() bool

	// SetFullOverwrite selects the full-queue policy for subsequent pushes:
	// true evicts the oldest item to make room, false rejects the push.
	SetFullOverwrite(enabled bool)
}
