// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// itempool_test.go — size discipline of the fixed-size buffer pool.
package pool_test

import (
	"testing"

	"github.com/momentics/cirq/pool"
)

func TestItemPoolServesFixedSize(t *testing.T) {
	p := pool.NewItemPool(48)
	if p.ItemSize() != 48 {
		t.Fatalf("ItemSize = %d, want 48", p.ItemSize())
	}
	for i := 0; i < 100; i++ {
		buf := p.Get()
		if len(buf) != 48 {
			t.Fatalf("Get #%d: len %d, want 48", i, len(buf))
		}
		p.Put(buf)
	}
}

func TestItemPoolDropsWrongSize(t *testing.T) {
	p := pool.NewItemPool(16)
	p.Put(make([]byte, 8)) // must not poison the pool
	p.Put(nil)
	if got := len(p.Get()); got != 16 {
		t.Fatalf("Get after bad Put: len %d, want 16", got)
	}
}

func TestItemPoolMinimumSize(t *testing.T) {
	p := pool.NewItemPool(0)
	if p.ItemSize() != 1 {
		t.Fatalf("ItemSize = %d, want 1", p.ItemSize())
	}
}
