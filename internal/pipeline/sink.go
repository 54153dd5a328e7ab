package pipeline

import "slices"

// Sink receives the values delivered by the consumer, in arrival order.
//
// A Sink is called only from the consumer goroutine, so implementations need
// no locking. Returning an error stops the run.
type Sink[T any] interface {
	Put(v T) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc[T any] func(v T) error

// Put calls f(v).
func (f SinkFunc[T]) Put(v T) error {
	return f(v)
}

// SliceSink appends every delivered value to a slice.
//
// It is not synchronized: read it only after the run has been joined
// (Run.Wait or Pipeline.Run returned).
type SliceSink[T any] struct {
	items []T
}

// NewSliceSink creates a SliceSink with room for sizeHint values.
func NewSliceSink[T any](sizeHint int) *SliceSink[T] {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &SliceSink[T]{items: make([]T, 0, sizeHint)}
}

// Put appends v.
func (s *SliceSink[T]) Put(v T) error {
	s.items = append(s.items, v)
	return nil
}

// Items returns the collected values in arrival order. The slice shares
// its elements with the sink but has no spare capacity, so appending to it
// never writes into the sink's storage.
func (s *SliceSink[T]) Items() []T {
	return slices.Clip(s.items)
}

// Len returns the number of collected values.
func (s *SliceSink[T]) Len() int {
	return len(s.items)
}
