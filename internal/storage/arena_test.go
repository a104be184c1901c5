// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// arena_test.go — Arena acquisition and release semantics.
package storage

import "testing"

// TestArenaHeap checks the portable heap path.
func TestArenaHeap(t *testing.T) {
	a, err := New(4096, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if a.Size() != 4096 || len(a.Bytes()) != 4096 {
		t.Fatalf("Size = %d, len = %d, want 4096", a.Size(), len(a.Bytes()))
	}
	if a.Mapped() {
		t.Error("heap arena must not report mapped")
	}
	if err := a.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
}

// TestArenaReleaseIdempotent verifies release happens exactly once.
func TestArenaReleaseIdempotent(t *testing.T) {
	a, err := New(128, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := a.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := a.Release(); err != nil {
			t.Fatalf("repeat Release #%d: %v", i, err)
		}
	}
	if a.Bytes() != nil {
		t.Error("Bytes must be nil after Release")
	}
}

// TestArenaInvalidSize rejects non-positive sizes.
func TestArenaInvalidSize(t *testing.T) {
	for _, sz := range []int{0, -1} {
		if _, err := New(sz, false); err == nil {
			t.Errorf("size %d: expected error", sz)
		}
	}
}

// TestArenaOffHeapWritable writes through the whole off-heap region.
// On platforms without an mmap path this degrades to the heap.
func TestArenaOffHeapWritable(t *testing.T) {
	a, err := New(1<<16, true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Release()
	b := a.Bytes()
	for i := range b {
		b[i] = byte(i)
	}
	for i := range b {
		if b[i] != byte(i) {
			t.Fatalf("offset %d: readback mismatch", i)
		}
	}
}
