// Command queuebench compares queue implementations in a two-goroutine
// producer/consumer hand-off.
//
// Usage:
//
//	go run ./cmd/queuebench -n 10000000 -size 1024
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	ring "github.com/randomizedcoder/go-lock-free-ring"

	"github.com/jeffery-lai/intuit-build-challenge/internal/queue"
)

func main() {
	iterations := flag.Int("n", 10_000_000, "number of items to hand off")
	size := flag.Int("size", 1024, "queue size")
	flag.Parse()

	if *iterations <= 0 {
		fmt.Fprintln(os.Stderr, "queuebench: -n must be positive")
		os.Exit(2)
	}

	fmt.Printf("Benchmarking SPSC hand-off (%d items, size=%d)\n", *iterations, *size)
	fmt.Println("─────────────────────────────────────────────────")

	cond, err := queue.New[int](*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "queuebench: %v\n", err)
		os.Exit(2)
	}
	condDur := handOff(cond, *iterations)

	ch, err := queue.NewChannel[int](*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "queuebench: %v\n", err)
		os.Exit(2)
	}
	chDur := handOff(ch, *iterations)

	r, err := ring.NewShardedRing(uint64(*size), 1)
	if err != nil {
		fmt.Fprintf(os.Stderr, "queuebench: lock-free ring: %v\n", err)
		os.Exit(2)
	}
	ringDur := handOffRing(r, *iterations)

	// Results
	condPerOp := perOp(condDur, *iterations)
	chPerOp := perOp(chDur, *iterations)
	ringPerOp := perOp(ringDur, *iterations)

	fmt.Printf("\nResults (put + take per item, producer and consumer on separate goroutines):\n")
	fmt.Printf("  BoundedQueue (cond):  %v (%.2f ns/op)\n", condDur, condPerOp)
	fmt.Printf("  ChannelQueue:         %v (%.2f ns/op)\n", chDur, chPerOp)
	fmt.Printf("  ShardedRing:          %v (%.2f ns/op)\n", ringDur, ringPerOp)

	if condPerOp < chPerOp {
		fmt.Printf("\n  cond vs channel:  %.2fx (BoundedQueue faster)\n", chPerOp/condPerOp)
	} else {
		fmt.Printf("\n  cond vs channel:  %.2fx (ChannelQueue faster)\n", condPerOp/chPerOp)
	}

	// Extrapolate to ops/second
	fmt.Printf("\nThroughput:\n")
	fmt.Printf("  BoundedQueue (cond):  %.2f M items/sec\n", 1000/condPerOp)
	fmt.Printf("  ChannelQueue:         %.2f M items/sec\n", 1000/chPerOp)
	fmt.Printf("  ShardedRing:          %.2f M items/sec\n", 1000/ringPerOp)
}

// handOff puts n items into q from one goroutine while this goroutine takes
// them, and returns the wall time.
func handOff(q queue.Queue[int], n int) time.Duration {
	start := time.Now()
	go func() {
		for i := 0; i < n; i++ {
			q.Put(i)
		}
	}()
	for i := 0; i < n; i++ {
		q.Take()
	}
	return time.Since(start)
}

// handOffRing is handOff for the lock-free ring. The ring never blocks, so
// both sides spin: the producer on Write, the consumer on TryRead.
func handOffRing(r *ring.ShardedRing, n int) time.Duration {
	start := time.Now()
	go func() {
		for i := 0; i < n; i++ {
			for !r.Write(0, i) {
			}
		}
	}()
	for got := 0; got < n; {
		if _, ok := r.TryRead(); ok {
			got++
		}
	}
	return time.Since(start)
}

func perOp(d time.Duration, n int) float64 {
	return float64(d.Nanoseconds()) / float64(n)
}
