package pipeline

// Item is the unit carried by the queue: either a payload value or the
// end-of-stream marker.
//
// The zero Item is a payload holding the zero value of T; the marker can
// only be made with EndOfStream.
type Item[T any] struct {
	value T
	end   bool
}

// Payload wraps v as a data item.
func Payload[T any](v T) Item[T] {
	return Item[T]{value: v}
}

// EndOfStream returns the end-of-stream marker.
func EndOfStream[T any]() Item[T] {
	return Item[T]{end: true}
}

// IsEnd reports whether it is the end-of-stream marker.
func (it Item[T]) IsEnd() bool {
	return it.end
}

// Value returns the payload. ok is false for the end-of-stream marker.
func (it Item[T]) Value() (v T, ok bool) {
	if it.end {
		return v, false
	}
	return it.value, true
}
