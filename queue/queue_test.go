// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// queue_test.go — Behavioral suite for the public generic queue.
package queue_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/cirq/api"
	"github.com/momentics/cirq/queue"
)

func TestNewValidatesCapacity(t *testing.T) {
	q, err := queue.New[int](0)
	require.Error(t, err)
	assert.Nil(t, q)
	assert.True(t, errors.Is(err, api.ErrInvalidCapacity))

	q, err = queue.New[int](1)
	require.NoError(t, err)
	assert.Equal(t, 1, q.Cap())
}

func TestPushPopOrdering(t *testing.T) {
	q, err := queue.New[string](3)
	require.NoError(t, err)

	assert.True(t, q.IsEmpty())
	assert.False(t, q.IsFull())

	require.True(t, q.Push("first"))
	require.True(t, q.Push("second"))
	require.True(t, q.Push("third"))
	assert.True(t, q.IsFull())
	assert.False(t, q.Push("fourth"), "default policy rejects when full")

	for _, want := range []string{"first", "second", "third"} {
		got, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := q.Pop()
	assert.False(t, ok, "drained queue reports no value")
}

func TestCountBalance(t *testing.T) {
	const c = 8
	q, err := queue.New[int](c)
	require.NoError(t, err)

	pushes, pops := 0, 0
	for i := 0; i < 100; i++ {
		if i%3 != 2 {
			if q.Push(i) {
				pushes++
			}
		} else {
			if _, ok := q.Pop(); ok {
				pops++
			}
		}
		require.Equal(t, pushes-pops, q.Len())
		require.GreaterOrEqual(t, q.Len(), 0)
		require.LessOrEqual(t, q.Len(), c)
	}
}

func TestOverwriteOption(t *testing.T) {
	q, err := queue.New[int](6, queue.WithOverwriteOnFull())
	require.NoError(t, err)

	for i := 0; i <= 8; i++ {
		require.True(t, q.Push(i), "push %d must succeed in overwrite mode", i)
	}
	var drained []int
	for {
		v, ok := q.Pop()
		if !ok {
			break
		}
		drained = append(drained, v)
	}
	assert.Equal(t, []int{3, 4, 5, 6, 7, 8}, drained)
	assert.True(t, q.IsEmpty())
}

func TestSetFullOverwriteTakesEffectOnNextPush(t *testing.T) {
	q, err := queue.New[int](2)
	require.NoError(t, err)

	require.True(t, q.Push(1))
	require.True(t, q.Push(2))
	assert.False(t, q.Push(3))

	q.SetFullOverwrite(true)
	assert.True(t, q.Push(3))

	q.SetFullOverwrite(false)
	assert.False(t, q.Push(4))

	got, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 2, got, "oldest item was evicted by the overwrite push")
}

func TestPeekDoesNotConsume(t *testing.T) {
	q, err := queue.New[int](4)
	require.NoError(t, err)

	_, ok := q.Peek()
	assert.False(t, ok)

	q.Push(10)
	q.Push(20)
	for i := 0; i < 3; i++ {
		v, ok := q.Peek()
		require.True(t, ok)
		assert.Equal(t, 10, v)
		assert.Equal(t, 2, q.Len())
	}
	v, _ := q.Pop()
	assert.Equal(t, 10, v)
}

func TestClearResets(t *testing.T) {
	q, err := queue.New[int](4)
	require.NoError(t, err)
	q.Push(1)
	q.Push(2)

	q.Clear()
	assert.True(t, q.IsEmpty())
	q.Clear()
	assert.True(t, q.IsEmpty(), "Clear is idempotent")

	require.True(t, q.Push(9))
	v, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 9, v)
}

// recordingTracer captures probes for assertions.
type recordingTracer struct {
	ops []string
	len []int
}

func (r *recordingTracer) Trace(op string, fields map[string]any) {
	r.ops = append(r.ops, op)
	if n, ok := fields["len"].(int); ok {
		r.len = append(r.len, n)
	}
}

func TestTracerReceivesProbes(t *testing.T) {
	tr := &recordingTracer{}
	q, err := queue.New[int](2, queue.WithTracer(tr))
	require.NoError(t, err)

	q.Push(1)
	q.Peek()
	q.Pop()
	q.Clear()

	assert.Equal(t, []string{"push", "peek", "pop", "clear"}, tr.ops)
	assert.Equal(t, []int{1, 1, 0, 0}, tr.len)
}
