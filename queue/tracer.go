// File: queue/tracer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// slog adapter for the api.Tracer probe, the Go analogue of the
// compiled-out serial debug prints in embedded queue implementations.

package queue

import (
	"log/slog"

	"github.com/momentics/cirq/api"
)

// slogTracer logs one Debug record per probe.
type slogTracer struct {
	log *slog.Logger
}

// SlogTracer adapts a slog.Logger as an api.Tracer. Probes are emitted
// at Debug level; a nil logger uses slog.Default.
func SlogTracer(log *slog.Logger) api.Tracer {
	if log == nil {
		log = slog.Default()
	}
	return &slogTracer{log: log}
}

// Trace implements api.Tracer.
func (t *slogTracer) Trace(op string, fields map[string]any) {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	t.log.Debug("queue "+op, args...)
}
