// Package pool
// Author: momentics <momentics@gmail.com>
//
// Reusable fixed-size scratch buffers for draining SlotQueue instances
// without per-iteration allocation. See itempool.go.
package pool
