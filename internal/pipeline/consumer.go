package pipeline

import (
	"context"
	"fmt"

	"github.com/jeffery-lai/intuit-build-challenge/internal/logging"
	"github.com/jeffery-lai/intuit-build-challenge/internal/progress"
	"github.com/jeffery-lai/intuit-build-challenge/internal/queue"
)

// Consume takes items from q and hands each payload to sink, in arrival
// order, until it takes the EndOfStream marker. The marker is never passed
// to sink. It returns the number of payloads delivered.
//
// The only normal exit is the marker. Consume also returns early, with an
// error, if ctx ends or sink fails.
func Consume[T any](ctx context.Context, q queue.Queue[Item[T]], sink Sink[T]) (int, error) {
	return consume(ctx, q, sink, nil)
}

func consume[T any](ctx context.Context, q queue.Queue[Item[T]], sink Sink[T], rep *progress.Reporter) (int, error) {
	log := logging.WithFields(ctx, "role", "consumer")
	n := 0

	for {
		if err := ctx.Err(); err != nil {
			return n, fmt.Errorf("consume after %d items: %w", n, err)
		}
		it, err := q.TakeContext(ctx)
		if err != nil {
			return n, fmt.Errorf("consume after %d items: %w", n, err)
		}

		v, ok := it.Value()
		if !ok {
			log.Debug("consumer received end of stream", "items", n)
			return n, nil
		}
		if err := sink.Put(v); err != nil {
			return n, fmt.Errorf("sink item %d: %w", n, err)
		}
		n++
		rep.Add(1)
	}
}
