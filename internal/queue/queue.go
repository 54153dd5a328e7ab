// Package queue provides bounded blocking FIFO queues for coordinating
// producer and consumer goroutines.
//
// This package offers two implementations of the Queue interface:
//   - BoundedQueue: mutex + sync.Cond over a fixed-size ring
//   - ChannelQueue: buffered channel of the same capacity
//
// Both hold at most Cap() items and preserve FIFO order. Put blocks while
// the queue is full, Take blocks while it is empty.
//
// # Waiting
//
// BoundedQueue guards its ring with a single mutex and a single condition
// variable that stands for both "not full" and "not empty". Every successful
// mutation broadcasts to all waiters, and every waiter re-checks its own
// condition in a loop, so mixed put/take waiters can never miss a wakeup.
//
// Context and timeout variants give up without touching the queue:
//   - PutContext / TakeContext return ctx.Err()
//   - PutTimeout / TakeTimeout return ErrTimeout
//
// All methods are safe for concurrent use. With a single producer and a
// single consumer, items come out in exactly the order they went in. With
// several producers, each item is delivered exactly once but relative order
// across producers is undefined.
package queue

import (
	"context"
	"time"
)

// Queue is a bounded, blocking FIFO queue.
type Queue[T any] interface {
	// Put appends v to the tail, blocking while the queue is full.
	Put(v T)

	// Take removes and returns the head, blocking while the queue is empty.
	Take() T

	// PutContext is Put bounded by ctx.
	// Returns ctx.Err() if ctx is done before space is available.
	PutContext(ctx context.Context, v T) error

	// TakeContext is Take bounded by ctx.
	// Returns ctx.Err() if ctx is done before an item is available.
	TakeContext(ctx context.Context) (T, error)

	// PutTimeout is Put bounded by d. Returns ErrTimeout on expiry.
	PutTimeout(v T, d time.Duration) error

	// TakeTimeout is Take bounded by d. Returns ErrTimeout on expiry.
	TakeTimeout(d time.Duration) (T, error)

	// TryPut appends v without blocking.
	// Returns false if the queue is full.
	TryPut(v T) bool

	// TryTake removes the head without blocking.
	// Returns false if the queue is empty.
	TryTake() (T, bool)

	// Len returns the number of queued items.
	Len() int

	// Cap returns the fixed capacity.
	Cap() int
}

// Kind selects a Queue implementation.
type Kind string

const (
	// KindCond selects BoundedQueue.
	KindCond Kind = "cond"
	// KindChannel selects ChannelQueue.
	KindChannel Kind = "channel"
)

// NewKind creates a Queue of the given kind and capacity.
func NewKind[T any](kind Kind, capacity int) (Queue[T], error) {
	// Check explicitly so a failed constructor never yields a typed nil.
	switch kind {
	case KindCond, "":
		q, err := New[T](capacity)
		if err != nil {
			return nil, err
		}
		return q, nil
	case KindChannel:
		q, err := NewChannel[T](capacity)
		if err != nil {
			return nil, err
		}
		return q, nil
	default:
		return nil, &KindError{Kind: kind}
	}
}

// ParseKind converts s to a Kind, rejecting unknown names.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindCond, KindChannel:
		return k, nil
	default:
		return "", &KindError{Kind: k}
	}
}
