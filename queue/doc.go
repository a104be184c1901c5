// Package queue
// Author: momentics <momentics@gmail.com>
//
// Public surface of the cirq library: fixed-capacity FIFO queues for
// short-term buffering of uniform records between a producer and a
// consumer, with bounded memory and no steady-state allocation.
// Queue[T] stores typed items; SlotQueue stores fixed-size byte records
// in one contiguous arena. Neither is synchronized: concurrent use
// requires external mutual exclusion supplied by the caller.
// See ../internal/ring for the index arithmetic.
package queue
