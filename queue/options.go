// File: queue/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Construction options. Defaults: reject pushes when full, no tracing,
// heap-backed storage.

package queue

import "github.com/momentics/cirq/api"

type config struct {
	overwrite bool
	offHeap   bool
	tracer    api.Tracer
}

// Option customizes queue construction.
type Option func(*config)

// WithOverwriteOnFull makes a full queue evict its oldest item on Push
// instead of rejecting the new one.
func WithOverwriteOnFull() Option {
	return func(c *config) { c.overwrite = true }
}

// WithTracer installs a debug probe invoked once per operation.
func WithTracer(t api.Tracer) Option {
	return func(c *config) { c.tracer = t }
}

// WithOffHeap requests mmap-backed storage where the platform supports
// it (Linux), falling back to the heap otherwise. Only meaningful for
// NewSlots; New ignores it.
func WithOffHeap() Option {
	return func(c *config) { c.offHeap = true }
}

func buildConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
