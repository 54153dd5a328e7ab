package queue

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned by constructors when capacity <= 0.
	ErrInvalidCapacity = errors.New("queue: capacity must be positive")

	// ErrTimeout is returned by PutTimeout and TakeTimeout when the wait
	// expires. The queue is unchanged.
	ErrTimeout = errors.New("queue: timed out")
)

// KindError reports an unknown queue kind.
type KindError struct {
	Kind Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("queue: unknown kind %q (want %q or %q)", e.Kind, KindCond, KindChannel)
}

// IsContextError reports whether err is context.Canceled or
// context.DeadlineExceeded.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func invalidCapacity(capacity int) error {
	return fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
}

// timeoutErr maps the deadline of an internal timeout context to ErrTimeout.
func timeoutErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}
