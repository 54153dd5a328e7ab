package pipeline

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jeffery-lai/intuit-build-challenge/internal/cancel"
	"github.com/jeffery-lai/intuit-build-challenge/internal/logging"
	"github.com/jeffery-lai/intuit-build-challenge/internal/progress"
	"github.com/jeffery-lai/intuit-build-challenge/internal/queue"
)

// DefaultCapacity is the queue capacity used when WithCapacity is not given.
const DefaultCapacity = 10

// options holds the configuration for a Pipeline.
type options struct {
	capacity         int
	kind             queue.Kind
	logger           *slog.Logger
	progressInterval time.Duration
	progressEvery    int
}

// Option is a function that configures a Pipeline's options.
type Option func(*options)

// WithCapacity sets the bounded queue capacity. Must be positive.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithQueueKind selects the queue implementation. The default is
// queue.KindCond.
func WithQueueKind(kind queue.Kind) Option {
	return func(o *options) {
		o.kind = kind
	}
}

// WithLogger sets the logger for run events. The default is the logger in
// the run context (logging.FromContext).
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithProgress logs consumer progress every interval, reading the clock
// only every `every` items. A zero interval disables progress logging.
func WithProgress(interval time.Duration, every int) Option {
	return func(o *options) {
		o.progressInterval = interval
		o.progressEvery = every
	}
}

// Pipeline runs one producer and one consumer over a fresh bounded queue per
// run. A Pipeline holds only configuration and may start any number of runs.
type Pipeline[T any] struct {
	opts options
}

// New creates a Pipeline.
// Returns an error wrapping queue.ErrInvalidCapacity if the capacity is not
// positive, or a *queue.KindError for an unknown queue kind.
func New[T any](opts ...Option) (*Pipeline[T], error) {
	o := options{
		capacity:      DefaultCapacity,
		kind:          queue.KindCond,
		progressEvery: 1,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.capacity <= 0 {
		return nil, fmt.Errorf("pipeline: %w: got %d", queue.ErrInvalidCapacity, o.capacity)
	}
	kind, err := queue.ParseKind(string(o.kind))
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	o.kind = kind

	return &Pipeline[T]{opts: o}, nil
}

// Result describes a finished run.
type Result struct {
	RunID    uuid.UUID
	Produced int
	Consumed int
	Elapsed  time.Duration
}

// Run is a started pipeline run.
type Run[T any] struct {
	id       uuid.UUID
	canceler cancel.Canceler
	done     chan struct{}

	// Written by the workers, read only after done is closed.
	produced int
	consumed int

	result Result
	err    error
}

// Start launches the producer and the consumer on their own goroutines and
// returns immediately. sink is owned by the consumer until Wait returns.
func (p *Pipeline[T]) Start(ctx context.Context, src iter.Seq[T], sink Sink[T]) *Run[T] {
	if ctx == nil {
		ctx = context.Background()
	}
	r := &Run[T]{
		id:       uuid.New(),
		canceler: cancel.NewContext(ctx),
		done:     make(chan struct{}),
	}

	logger := p.opts.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	logger = logger.With("run_id", r.id.String())
	runCtx := logging.WithContext(r.canceler.Context(), logger)

	if sink == nil {
		r.finish(time.Now(), ErrNilSink, logger)
		return r
	}

	// Options were validated by New, so this cannot fail.
	q, err := queue.NewKind[Item[T]](p.opts.kind, p.opts.capacity)
	if err != nil {
		r.finish(time.Now(), err, logger)
		return r
	}

	start := time.Now()
	logger.Info("pipeline started",
		"capacity", p.opts.capacity,
		"queue", string(p.opts.kind),
	)

	g, gctx := errgroup.WithContext(runCtx)

	g.Go(func() (err error) {
		defer recoverWorker("producer", &err)
		r.produced, err = Produce(gctx, q, src)
		return err
	})

	g.Go(func() (err error) {
		defer recoverWorker("consumer", &err)
		var rep *progress.Reporter
		if p.opts.progressInterval > 0 {
			rep = progress.NewReporter(logger, progress.NewTrigger(p.opts.progressInterval, p.opts.progressEvery))
			defer rep.Stop()
		}
		r.consumed, err = consume(gctx, q, sink, rep)
		return err
	})

	go func() {
		r.finish(start, g.Wait(), logger)
	}()

	return r
}

// finish records the outcome, releases the canceler and unblocks Wait.
func (r *Run[T]) finish(start time.Time, err error, logger *slog.Logger) {
	// A caller abort surfaces as a context error from whichever worker
	// noticed first; report the cause instead.
	if err != nil && errors.Is(err, context.Canceled) {
		if cause := r.canceler.Err(); cause != nil && !errors.Is(cause, context.Canceled) {
			err = fmt.Errorf("pipeline cancelled: %w", cause)
		}
	}
	r.canceler.Cancel(nil)

	r.result = Result{
		RunID:    r.id,
		Produced: r.produced,
		Consumed: r.consumed,
		Elapsed:  time.Since(start),
	}
	r.err = err

	if err != nil {
		logger.Error("pipeline failed",
			"err", err,
			"produced", r.result.Produced,
			"consumed", r.result.Consumed,
		)
	} else {
		logger.Info("pipeline finished",
			"items", r.result.Consumed,
			"elapsed", r.result.Elapsed.Round(time.Microsecond),
		)
	}
	close(r.done)
}

// ID returns the run identifier, also logged as run_id.
func (r *Run[T]) ID() uuid.UUID {
	return r.id
}

// Cancel aborts the run. cause is returned (wrapped) by Wait; nil means
// context.Canceled. Cancelling a finished run has no effect.
func (r *Run[T]) Cancel(cause error) {
	r.canceler.Cancel(cause)
}

// Done reports whether both workers have finished.
func (r *Run[T]) Done() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Wait blocks until both workers have finished and returns the result and
// the first worker failure. After Wait returns the sink may be read.
func (r *Run[T]) Wait() (Result, error) {
	<-r.done
	return r.result, r.err
}

// Run is Start followed by Wait.
func (p *Pipeline[T]) Run(ctx context.Context, src iter.Seq[T], sink Sink[T]) (Result, error) {
	return p.Start(ctx, src, sink).Wait()
}

// Collect moves src through a pipeline with the given capacity and returns
// the delivered values.
func Collect[T any](ctx context.Context, capacity int, src []T) ([]T, error) {
	p, err := New[T](WithCapacity(capacity))
	if err != nil {
		return nil, err
	}
	sink := NewSliceSink[T](len(src))
	if _, err := p.Run(ctx, slices.Values(src), sink); err != nil {
		return nil, err
	}
	return sink.Items(), nil
}
