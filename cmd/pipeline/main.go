// Command pipeline moves the integers 0..n-1 from a producer to a consumer
// through a bounded blocking queue and prints what the consumer received.
//
// Settings come from PIPELINE_* and LOG_* environment variables (or a .env
// file); flags override them.
//
// Usage:
//
//	go run ./cmd/pipeline -n 10 -capacity 3
//	go run ./cmd/pipeline -n 1000000 -queue channel -progress 100ms -quiet
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"iter"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jeffery-lai/intuit-build-challenge/internal/config"
	"github.com/jeffery-lai/intuit-build-challenge/internal/logging"
	"github.com/jeffery-lai/intuit-build-challenge/internal/pipeline"
	"github.com/jeffery-lai/intuit-build-challenge/internal/queue"
)

func main() {
	if err := run(); err != nil {
		slog.Error("pipeline command failed", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flag.IntVar(&cfg.Pipeline.Items, "n", cfg.Pipeline.Items, "number of items to produce")
	flag.IntVar(&cfg.Pipeline.Capacity, "capacity", cfg.Pipeline.Capacity, "queue capacity")
	flag.StringVar(&cfg.Pipeline.Queue, "queue", cfg.Pipeline.Queue, "queue implementation: cond or channel")
	flag.DurationVar(&cfg.Pipeline.Timeout, "timeout", cfg.Pipeline.Timeout, "abort the run after this long (0 = no limit)")
	flag.DurationVar(&cfg.Pipeline.ProgressInterval, "progress", cfg.Pipeline.ProgressInterval, "progress log interval (0 = off)")
	flag.IntVar(&cfg.Pipeline.ProgressEvery, "progress-every", cfg.Pipeline.ProgressEvery, "check the progress clock every N items")
	flag.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "log level: debug, info, warn, error")
	flag.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "log format: text, json")
	quiet := flag.Bool("quiet", false, "print only the summary, not the received items")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return err
	}
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.Pipeline.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Pipeline.Timeout)
		defer cancel()
	}

	p, err := pipeline.New[int](
		pipeline.WithCapacity(cfg.Pipeline.Capacity),
		pipeline.WithQueueKind(queue.Kind(cfg.Pipeline.Queue)),
		pipeline.WithProgress(cfg.Pipeline.ProgressInterval, cfg.Pipeline.ProgressEvery),
	)
	if err != nil {
		return err
	}

	sink := pipeline.NewSliceSink[int](cfg.Pipeline.Items)
	res, err := p.Run(ctx, sequence(cfg.Pipeline.Items), sink)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("run %s exceeded %v after %d items: %w", res.RunID, cfg.Pipeline.Timeout, res.Consumed, err)
		}
		return fmt.Errorf("run %s: %w", res.RunID, err)
	}

	if !*quiet {
		fmt.Printf("Received: %v\n", sink.Items())
	}
	fmt.Printf("Run %s: %d produced, %d consumed in %v (capacity=%d, queue=%s)\n",
		res.RunID, res.Produced, res.Consumed, res.Elapsed, cfg.Pipeline.Capacity, cfg.Pipeline.Queue)
	return nil
}

// sequence yields 0..n-1.
func sequence(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
