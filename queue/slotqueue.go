// File: queue/slotqueue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SlotQueue wraps ring.SlotRing: fixed-size byte records in one
// contiguous arena, copy-in/copy-out, optional off-heap backing.

package queue

import (
	"github.com/momentics/cirq/api"
	"github.com/momentics/cirq/internal/ring"
)

// SlotQueue is a fixed-capacity FIFO over uniform byte records.
type SlotQueue struct {
	*ring.SlotRing
	tracer api.Tracer
}

// NewSlots creates a queue of capacity slots, each itemSize bytes.
// Returns api.ErrInvalidCapacity or api.ErrInvalidItemSize on bad
// dimensions, api.ErrAllocationFailure when storage cannot be acquired.
func NewSlots(capacity, itemSize int, opts ...Option) (*SlotQueue, error) {
	cfg := buildConfig(opts)
	r, err := ring.NewSlotRing(capacity, itemSize, cfg.offHeap)
	if err != nil {
		return nil, err
	}
	r.SetFullOverwrite(cfg.overwrite)
	return &SlotQueue{SlotRing: r, tracer: cfg.tracer}, nil
}

func (q *SlotQueue) trace(op string, ok bool) {
	if q.tracer == nil {
		return
	}
	fields := q.Snapshot()
	fields["ok"] = ok
	q.tracer.Trace(op, fields)
}

// Push copies item into the tail slot; see ring.SlotRing.Push.
func (q *SlotQueue) Push(item []byte) bool {
	ok := q.SlotRing.Push(item)
	q.trace("push", ok)
	return ok
}

// Pop copies the oldest record into dst and removes it.
func (q *SlotQueue) Pop(dst []byte) bool {
	ok := q.SlotRing.Pop(dst)
	q.trace("pop", ok)
	return ok
}

// Peek copies the oldest record into dst without removing it.
func (q *SlotQueue) Peek(dst []byte) bool {
	ok := q.SlotRing.Peek(dst)
	q.trace("peek", ok)
	return ok
}

// Clear logically empties the queue.
func (q *SlotQueue) Clear() {
	q.SlotRing.Clear()
	q.trace("clear", true)
}
