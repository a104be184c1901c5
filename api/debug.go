// Package api
// Author: momentics
//
// Live debug probe support for queue instrumentation.

package api

// Tracer receives one probe call per traced queue operation.
//
// Implementations must be cheap: the queue invokes Trace synchronously on
// the hot path whenever a tracer is installed. The fields map carries
// bookkeeping state (len, cap, indices) at the time of the call.
type Tracer interface {
	// Trace records a single operation probe.
	Trace(op string, fields map[string]any)
}

// NopTracer discards all probes.
type NopTracer struct{}

// Trace implements Tracer.
func (NopTracer) Trace(string, map[string]any) {}
