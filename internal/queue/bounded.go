package queue

import (
	"context"
	"sync"
	"time"
)

// BoundedQueue is a fixed-capacity blocking FIFO guarded by one mutex and
// one condition variable.
//
// The zero value is not ready for use; construct via New.
type BoundedQueue[T any] struct {
	mu   sync.Mutex
	cond *sync.Cond
	ring ring[T]
}

// New creates a BoundedQueue holding at most capacity items.
// Returns ErrInvalidCapacity if capacity <= 0.
func New[T any](capacity int) (*BoundedQueue[T], error) {
	if capacity <= 0 {
		return nil, invalidCapacity(capacity)
	}
	q := &BoundedQueue[T]{ring: newRing[T](capacity)}
	q.cond = sync.NewCond(&q.mu)
	return q, nil
}

// Put appends v to the tail, blocking while the queue is full.
func (q *BoundedQueue[T]) Put(v T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.ring.full() {
		q.cond.Wait()
	}
	q.ring.push(v)
	q.cond.Broadcast()
}

// Take removes and returns the head, blocking while the queue is empty.
func (q *BoundedQueue[T]) Take() T {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.ring.empty() {
		q.cond.Wait()
	}
	v := q.ring.pop()
	q.cond.Broadcast()
	return v
}

// PutContext appends v, blocking while the queue is full or until ctx is
// done. If space is available immediately, v is added even when ctx is
// already done.
func (q *BoundedQueue[T]) PutContext(ctx context.Context, v T) error {
	if ctx == nil {
		ctx = context.Background()
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.ring.full() {
		stop := q.wakeOnDone(ctx)
		defer stop()
		for q.ring.full() {
			if err := ctx.Err(); err != nil {
				return err
			}
			q.cond.Wait()
		}
	}
	q.ring.push(v)
	q.cond.Broadcast()
	return nil
}

// TakeContext removes and returns the head, blocking while the queue is
// empty or until ctx is done. On cancellation it returns the zero value and
// ctx.Err().
func (q *BoundedQueue[T]) TakeContext(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.ring.empty() {
		stop := q.wakeOnDone(ctx)
		defer stop()
		for q.ring.empty() {
			if err := ctx.Err(); err != nil {
				var zero T
				return zero, err
			}
			q.cond.Wait()
		}
	}
	v := q.ring.pop()
	q.cond.Broadcast()
	return v, nil
}

// PutTimeout is PutContext with a deadline of d from now.
// Returns ErrTimeout if no space frees up in time.
func (q *BoundedQueue[T]) PutTimeout(v T, d time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	return timeoutErr(q.PutContext(ctx, v))
}

// TakeTimeout is TakeContext with a deadline of d from now.
// Returns ErrTimeout if no item arrives in time.
func (q *BoundedQueue[T]) TakeTimeout(d time.Duration) (T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	v, err := q.TakeContext(ctx)
	return v, timeoutErr(err)
}

// TryPut appends v without blocking.
// Returns false if the queue is full.
func (q *BoundedQueue[T]) TryPut(v T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.ring.full() {
		return false
	}
	q.ring.push(v)
	q.cond.Broadcast()
	return true
}

// TryTake removes and returns the head without blocking.
// Returns false if the queue is empty.
func (q *BoundedQueue[T]) TryTake() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.ring.empty() {
		var zero T
		return zero, false
	}
	v := q.ring.pop()
	q.cond.Broadcast()
	return v, true
}

// Len returns the current number of items in the queue.
func (q *BoundedQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.len()
}

// Cap returns the capacity of the queue.
func (q *BoundedQueue[T]) Cap() int {
	return q.ring.cap()
}

// wakeOnDone broadcasts on the condition once ctx is done so that waiters
// blocked in Wait re-check ctx.Err(). The broadcast takes the mutex, so it
// cannot slip in between a waiter's ctx check and its call to Wait.
func (q *BoundedQueue[T]) wakeOnDone(ctx context.Context) (stop func() bool) {
	return context.AfterFunc(ctx, func() {
		q.mu.Lock()
		q.cond.Broadcast()
		q.mu.Unlock()
	})
}
