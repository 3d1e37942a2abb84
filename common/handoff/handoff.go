// Package handoff provides the bounded queue between the blocking
// scraper worker and the async publisher. Enqueue blocks when the
// buffer is full, which is the backpressure path from publisher to
// fetcher; Join waits for every dequeued item to be marked done so
// shutdown can drain before the broker channel closes.
package handoff

import (
	"sync"
	"time"
)

// Queue is a bounded FIFO with task accounting. One producer
// goroutine, one consumer goroutine is the intended shape.
type Queue[T any] struct {
	ch chan T

	mu   sync.Mutex
	head []T // items returned to the front after a failed publish

	tasks sync.WaitGroup
}

// New builds a queue with the given capacity.
func New[T any](capacity int) *Queue[T] {
	return &Queue[T]{ch: make(chan T, capacity)}
}

// Put enqueues v, blocking while the buffer is full.
func (q *Queue[T]) Put(v T) {
	q.tasks.Add(1)
	q.ch <- v
}

// PutFront returns v to the head of the queue so it is retried before
// anything newer. Best-effort: the head buffer is unbounded.
func (q *Queue[T]) PutFront(v T) {
	q.tasks.Add(1)
	q.mu.Lock()
	q.head = append(q.head, v)
	q.mu.Unlock()
}

// Get dequeues the next item, waiting up to timeout. ok is false on
// timeout.
func (q *Queue[T]) Get(timeout time.Duration) (T, bool) {
	q.mu.Lock()
	if n := len(q.head); n > 0 {
		v := q.head[n-1]
		q.head = q.head[:n-1]
		q.mu.Unlock()
		return v, true
	}
	q.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case v := <-q.ch:
		return v, true
	case <-timer.C:
		var zero T
		return zero, false
	}
}

// TaskDone marks one dequeued item as fully processed. Every Get that
// returned ok must be paired with exactly one TaskDone (a re-enqueue
// via PutFront counts as a new task).
func (q *Queue[T]) TaskDone() {
	q.tasks.Done()
}

// Join blocks until every enqueued item has been processed. Call after
// production has stopped.
func (q *Queue[T]) Join() {
	q.tasks.Wait()
}

// Empty reports whether nothing is buffered.
func (q *Queue[T]) Empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.head) == 0 && len(q.ch) == 0
}
