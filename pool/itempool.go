// File: pool/itempool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "sync"

// ItemPool hands out byte buffers of one fixed size, matching the slot
// size of the queue they drain. Buffers of any other length handed to
// Put are dropped rather than pooled.
type ItemPool struct {
	size int
	pool *sync.Pool
}

// NewItemPool creates a pool of itemSize-byte buffers. Sizes below 1
// default to 1.
func NewItemPool(itemSize int) *ItemPool {
	if itemSize < 1 {
		itemSize = 1
	}
	return &ItemPool{
		size: itemSize,
		pool: &sync.Pool{New: func() any { return make([]byte, itemSize) }},
	}
}

// Get returns a buffer of exactly the pool's item size.
func (p *ItemPool) Get() []byte {
	return p.pool.Get().([]byte)
}

// Put returns a buffer for reuse. Wrong-size buffers are discarded so a
// misuse cannot poison later Get calls.
func (p *ItemPool) Put(buf []byte) {
	if len(buf) != p.size {
		return
	}
	p.pool.Put(buf)
}

// ItemSize returns the fixed buffer length served by this pool.
func (p *ItemPool) ItemSize() int {
	return p.size
}
