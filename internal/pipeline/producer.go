package pipeline

import (
	"context"
	"fmt"
	"iter"

	"github.com/jeffery-lai/intuit-build-challenge/internal/logging"
	"github.com/jeffery-lai/intuit-build-challenge/internal/queue"
)

// Produce puts every value of src into q, in order, followed by exactly one
// EndOfStream marker. It returns the number of payloads put.
//
// A nil src is an empty sequence: only the marker is sent. If ctx ends
// first, Produce stops without sending the marker and returns the context
// error; the consumer must then be stopped through the same context.
func Produce[T any](ctx context.Context, q queue.Queue[Item[T]], src iter.Seq[T]) (int, error) {
	log := logging.WithFields(ctx, "role", "producer")
	n := 0

	if src != nil {
		for v := range src {
			if err := ctx.Err(); err != nil {
				return n, fmt.Errorf("produce item %d: %w", n, err)
			}
			if err := q.PutContext(ctx, Payload(v)); err != nil {
				return n, fmt.Errorf("produce item %d: %w", n, err)
			}
			n++
			log.Debug("producer put item", "seq", n)
		}
	}

	if err := q.PutContext(ctx, EndOfStream[T]()); err != nil {
		return n, fmt.Errorf("produce end of stream: %w", err)
	}
	log.Debug("producer sent end of stream", "items", n)
	return n, nil
}
