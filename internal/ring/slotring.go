// File: internal/ring/slotring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SlotRing is the untyped variant of Ring: capacity uniform byte slots
// carved out of one contiguous arena, with copy-in/copy-out semantics.
// Intended for fixed-size binary records where the item layout is not a
// Go type (sensor samples, wire frames, packed structs).

package ring

import (
	"github.com/momentics/cirq/api"
	"github.com/momentics/cirq/internal/storage"
)

// SlotRing is a fixed-capacity FIFO over uniform byte slots.
//
// Same bookkeeping invariants as Ring. Stored bytes are never zeroed:
// Clear resets indices only, and stale bytes are unreachable because
// reads stay within the live range.
type SlotRing struct {
	arena     *storage.Arena
	buf       []byte
	capacity  int
	itemSize  int
	count     int
	put       int
	take      int
	overwrite bool
	closed    bool
}

// NewSlotRing allocates capacity slots of itemSize bytes each from a
// single arena. offHeap selects the platform allocator when available.
func NewSlotRing(capacity, itemSize int, offHeap bool) (*SlotRing, error) {
	if capacity < 1 {
		return nil, api.NewError(api.ErrCodeInvalidCapacity,
			"ring: invalid capacity", map[string]any{"capacity": capacity})
	}
	if itemSize < 1 {
		return nil, api.NewError(api.ErrCodeInvalidItemSize,
			"ring: invalid item size", map[string]any{"itemSize": itemSize})
	}
	arena, err := storage.New(capacity*itemSize, offHeap)
	if err != nil {
		return nil, err
	}
	return &SlotRing{
		arena:    arena,
		buf:      arena.Bytes(),
		capacity: capacity,
		itemSize: itemSize,
	}, nil
}

// slot returns the byte range of slot i.
func (r *SlotRing) slot(i int) []byte {
	off := i * r.itemSize
	return r.buf[off : off+r.itemSize]
}

// Push copies item into the tail slot. item must be exactly ItemSize
// bytes; anything else is a contract breach and panics.
// Returns false when full with overwrite off, or after Close.
func (r *SlotRing) Push(item []byte) bool {
	if len(item) != r.itemSize {
		panic(api.NewError(api.ErrCodeSizeMismatch, "ring: push item length mismatch",
			map[string]any{"got": len(item), "want": r.itemSize}))
	}
	if r.closed {
		return false
	}
	if r.count == r.capacity {
		if !r.overwrite {
			return false
		}
		// Evict the oldest record. Its bytes need no copy-out: the slot
		// being freed is exactly the one the insert below overwrites.
		r.take = (r.take + 1) % r.capacity
		r.count--
	}
	copy(r.slot(r.put), item)
	r.put = (r.put + 1) % r.capacity
	r.count++
	return true
}

// Pop copies the oldest record into dst and removes it. dst must be
// exactly ItemSize bytes. Returns false (no copy, no mutation) when
// empty or closed.
func (r *SlotRing) Pop(dst []byte) bool {
	if !r.Peek(dst) {
		return false
	}
	r.take = (r.take + 1) % r.capacity
	r.count--
	return true
}

// Peek copies the oldest record into dst without removing it. dst must
// be exactly ItemSize bytes. Returns false when empty or closed.
func (r *SlotRing) Peek(dst []byte) bool {
	if len(dst) != r.itemSize {
		panic(api.NewError(api.ErrCodeSizeMismatch, "ring: destination length mismatch",
			map[string]any{"got": len(dst), "want": r.itemSize}))
	}
	if r.closed || r.count == 0 {
		return false
	}
	copy(dst, r.slot(r.take))
	return true
}

// PopValue removes the oldest record and returns it as a fresh slice.
// Allocates per call; use Pop with a pooled buffer on hot paths.
func (r *SlotRing) PopValue() ([]byte, bool) {
	if r.closed || r.count == 0 {
		return nil, false
	}
	out := make([]byte, r.itemSize)
	r.Pop(out)
	return out, true
}

// Clear logically empties the ring without touching stored bytes.
// Idempotent.
func (r *SlotRing) Clear() {
	r.count, r.put, r.take = 0, 0, 0
}

// Close releases the arena. The first call does the work; later calls
// return nil. A closed ring rejects all pushes and reports empty.
func (r *SlotRing) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.buf = nil
	r.count, r.put, r.take = 0, 0, 0
	return r.arena.Release()
}

// Len returns the number of records currently stored.
func (r *SlotRing) Len() int {
	return r.count
}

// Cap returns the fixed slot capacity.
func (r *SlotRing) Cap() int {
	return r.capacity
}

// ItemSize returns the byte size of one slot.
func (r *SlotRing) ItemSize() int {
	return r.itemSize
}

// IsEmpty reports whether no records are stored.
func (r *SlotRing) IsEmpty() bool {
	return r.count == 0
}

// IsFull reports whether every slot is occupied.
func (r *SlotRing) IsFull() bool {
	return !r.closed && r.count == r.capacity
}

// OffHeap reports whether storage is mmap-backed.
func (r *SlotRing) OffHeap() bool {
	return r.arena.Mapped()
}

// SetFullOverwrite selects the full-ring policy for subsequent pushes.
func (r *SlotRing) SetFullOverwrite(enabled bool) {
	r.overwrite = enabled
}

// Snapshot returns bookkeeping state for debug probes.
func (r *SlotRing) Snapshot() map[string]any {
	return map[string]any{
		"len":      r.count,
		"cap":      r.capacity,
		"itemSize": r.itemSize,
		"put":      r.put,
		"take":     r.take,
	}
}
