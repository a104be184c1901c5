// File: internal/storage/arena.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Arena is a single contiguous allocation acquired once at construction
// and released exactly once. Platform-specific off-heap paths live in
// separate files (arena_linux.go, arena_stub.go) guarded by build tags.

package storage

import "github.com/momentics/cirq/api"

// Arena owns one contiguous byte region for the lifetime of its holder.
type Arena struct {
	data     []byte
	mapped   bool // true when backed by mmap, not the Go heap
	released bool
}

// New acquires an arena of exactly size bytes. When offHeap is true the
// platform allocator is tried first (mmap on Linux), falling back to the
// Go heap; otherwise the region is heap-allocated directly.
func New(size int, offHeap bool) (*Arena, error) {
	if size <= 0 {
		return nil, api.NewError(api.ErrCodeAllocation, "storage: non-positive arena size", map[string]any{"size": size})
	}
	if offHeap {
		if data, ok := platformAlloc(size); ok {
			return &Arena{data: data, mapped: true}, nil
		}
	}
	return &Arena{data: make([]byte, size)}, nil
}

// Bytes returns the backing region. The slice is valid until Release.
func (a *Arena) Bytes() []byte {
	return a.data
}

// Size returns the region length in bytes.
func (a *Arena) Size() int {
	return len(a.data)
}

// Mapped reports whether the region is mmap-backed.
func (a *Arena) Mapped() bool {
	return a.mapped
}

// Release returns the region to the OS (mapped) or the GC (heap).
// Safe to call more than once; only the first call does work.
func (a *Arena) Release() error {
	if a.released {
		return nil
	}
	a.released = true
	var err error
	if a.mapped {
		err = platformRelease(a.data)
	}
	a.data = nil
	return err
}
