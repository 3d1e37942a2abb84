package handoff

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFOOrder(t *testing.T) {
	q := New[int](8)
	for i := 0; i < 5; i++ {
		q.Put(i)
	}
	for i := 0; i < 5; i++ {
		v, ok := q.Get(time.Second)
		require.True(t, ok)
		assert.Equal(t, i, v)
		q.TaskDone()
	}
}

func TestGetTimesOutWhenEmpty(t *testing.T) {
	q := New[string](1)
	_, ok := q.Get(10 * time.Millisecond)
	assert.False(t, ok)
}

func TestPutFrontIsRetriedFirst(t *testing.T) {
	q := New[string](8)
	q.Put("second")
	q.PutFront("first")

	v, ok := q.Get(time.Second)
	require.True(t, ok)
	assert.Equal(t, "first", v)
	q.TaskDone()

	v, ok = q.Get(time.Second)
	require.True(t, ok)
	assert.Equal(t, "second", v)
	q.TaskDone()
}

func TestPutBlocksWhenFull(t *testing.T) {
	q := New[int](1)
	q.Put(1)

	unblocked := make(chan struct{})
	go func() {
		q.Put(2) // blocks until the consumer drains one slot
		close(unblocked)
	}()

	select {
	case <-unblocked:
		t.Fatal("Put returned while the queue was full")
	case <-time.After(20 * time.Millisecond):
	}

	_, ok := q.Get(time.Second)
	require.True(t, ok)
	q.TaskDone()

	select {
	case <-unblocked:
	case <-time.After(time.Second):
		t.Fatal("Put did not unblock after a slot freed up")
	}
	_, ok = q.Get(time.Second)
	require.True(t, ok)
	q.TaskDone()
}

func TestJoinWaitsForDrain(t *testing.T) {
	q := New[int](8)
	for i := 0; i < 4; i++ {
		q.Put(i)
	}

	var processed int
	var mu sync.Mutex
	done := make(chan struct{})
	go func() {
		for {
			v, ok := q.Get(10 * time.Millisecond)
			if !ok {
				return
			}
			mu.Lock()
			processed += v
			mu.Unlock()
			q.TaskDone()
		}
	}()
	go func() {
		q.Join()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Join did not return after the queue drained")
	}
	assert.True(t, q.Empty())
	mu.Lock()
	assert.Equal(t, 0+1+2+3, processed)
	mu.Unlock()
}
