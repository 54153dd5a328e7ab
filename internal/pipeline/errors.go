package pipeline

import (
	"errors"
	"fmt"
)

var (
	// ErrWorkerPanic wraps a panic recovered from the producer, the
	// consumer or the sink.
	ErrWorkerPanic = errors.New("pipeline: worker panicked")

	// ErrNilSink is returned when a run is started without a sink.
	ErrNilSink = errors.New("pipeline: nil sink")
)

// recoverWorker turns a panic in a worker goroutine into an error, so the
// run is cancelled instead of the process crashing with the other worker
// still parked on the queue. It must be deferred directly.
func recoverWorker(role string, err *error) {
	if v := recover(); v != nil {
		*err = fmt.Errorf("%w: %s: %v", ErrWorkerPanic, role, v)
	}
}
