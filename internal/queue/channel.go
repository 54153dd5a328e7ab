package queue

import (
	"context"
	"time"
)

// ChannelQueue wraps a buffered channel as a Queue.
//
// This is the standard library approach. The channel buffer is the ring,
// and the runtime parks senders while it is full and receivers while it is
// empty. The channel is never closed; end of stream is signalled in-band.
type ChannelQueue[T any] struct {
	ch chan T
}

// NewChannel creates a ChannelQueue holding at most capacity items.
// Returns ErrInvalidCapacity if capacity <= 0 (an unbuffered channel would
// hold nothing).
func NewChannel[T any](capacity int) (*ChannelQueue[T], error) {
	if capacity <= 0 {
		return nil, invalidCapacity(capacity)
	}
	return &ChannelQueue[T]{
		ch: make(chan T, capacity),
	}, nil
}

// Put appends v, blocking while the queue is full.
func (q *ChannelQueue[T]) Put(v T) {
	q.ch <- v
}

// Take removes and returns the head, blocking while the queue is empty.
func (q *ChannelQueue[T]) Take() T {
	return <-q.ch
}

// PutContext appends v, blocking while full or until ctx is done.
func (q *ChannelQueue[T]) PutContext(ctx context.Context, v T) error {
	if ctx == nil {
		ctx = context.Background()
	}
	// Prefer the send when both are ready, matching BoundedQueue.
	select {
	case q.ch <- v:
		return nil
	default:
	}
	select {
	case q.ch <- v:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TakeContext removes and returns the head, blocking while empty or until
// ctx is done.
func (q *ChannelQueue[T]) TakeContext(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case v := <-q.ch:
		return v, nil
	default:
	}
	select {
	case v := <-q.ch:
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// PutTimeout appends v, giving up with ErrTimeout after d.
func (q *ChannelQueue[T]) PutTimeout(v T, d time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	return timeoutErr(q.PutContext(ctx, v))
}

// TakeTimeout removes the head, giving up with ErrTimeout after d.
func (q *ChannelQueue[T]) TakeTimeout(d time.Duration) (T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), d)
	defer cancel()
	v, err := q.TakeContext(ctx)
	return v, timeoutErr(err)
}

// TryPut adds an item to the queue.
// Returns false if the queue is full (non-blocking).
func (q *ChannelQueue[T]) TryPut(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

// TryTake removes and returns an item from the queue.
// Returns false if the queue is empty (non-blocking).
func (q *ChannelQueue[T]) TryTake() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Len returns the current number of items in the queue.
func (q *ChannelQueue[T]) Len() int {
	return len(q.ch)
}

// Cap returns the capacity of the queue.
func (q *ChannelQueue[T]) Cap() int {
	return cap(q.ch)
}
