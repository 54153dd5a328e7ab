package queue

// ring is fixed-capacity FIFO storage for BoundedQueue.
//
// It is not safe for concurrent use; BoundedQueue holds its mutex around
// every call. head and tail are monotonic counters, so len is head-tail and
// slots are addressed modulo the capacity.
type ring[T any] struct {
	buf  []T
	head uint64 // next slot to write
	tail uint64 // next slot to read
}

func newRing[T any](capacity int) ring[T] {
	return ring[T]{buf: make([]T, capacity)}
}

func (r *ring[T]) len() int {
	return int(r.head - r.tail)
}

func (r *ring[T]) cap() int {
	return len(r.buf)
}

func (r *ring[T]) full() bool {
	return r.head-r.tail >= uint64(len(r.buf))
}

func (r *ring[T]) empty() bool {
	return r.head == r.tail
}

// push writes v at the tail. The caller checks full first.
func (r *ring[T]) push(v T) {
	r.buf[r.head%uint64(len(r.buf))] = v
	r.head++
}

// pop removes the head. The caller checks empty first.
// The vacated slot is zeroed so the ring does not pin the value.
func (r *ring[T]) pop() T {
	i := r.tail % uint64(len(r.buf))
	v := r.buf[i]
	var zero T
	r.buf[i] = zero
	r.tail++
	return v
}
