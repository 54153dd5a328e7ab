package queue_test

import (
	"context"
	"testing"

	"github.com/jeffery-lai/intuit-build-challenge/internal/queue"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var sinkInt int
var sinkBool bool

func mustNew(b *testing.B, kind queue.Kind, capacity int) queue.Queue[int] {
	b.Helper()
	q, err := queue.NewKind[int](kind, capacity)
	if err != nil {
		b.Fatal(err)
	}
	return q
}

// Single goroutine: uncontended lock and channel costs.

func BenchmarkQueue_Cond_PutTake(b *testing.B) {
	q := mustNew(b, queue.KindCond, 1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		q.Put(i)
		val = q.Take()
	}
	sinkInt = val
}

func BenchmarkQueue_Channel_PutTake(b *testing.B) {
	q := mustNew(b, queue.KindChannel, 1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		q.Put(i)
		val = q.Take()
	}
	sinkInt = val
}

func BenchmarkQueue_Cond_TryPutTryTake(b *testing.B) {
	q := mustNew(b, queue.KindCond, 1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		q.TryPut(i)
		val, ok = q.TryTake()
	}
	sinkInt = val
	sinkBool = ok
}

func BenchmarkQueue_Cond_PutTakeContext(b *testing.B) {
	q := mustNew(b, queue.KindCond, 1024)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		_ = q.PutContext(ctx, i)
		val, _ = q.TakeContext(ctx)
	}
	sinkInt = val
}

// Two goroutines: one producer, one consumer, blocking on both ends.

func benchmarkSPSC(b *testing.B, kind queue.Kind, capacity int) {
	q := mustNew(b, kind, capacity)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for i := 0; i < b.N; i++ {
			sinkInt = q.Take()
		}
	}()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Put(i)
	}
	<-done
}

func BenchmarkQueue_Cond_SPSC_Size1(b *testing.B)       { benchmarkSPSC(b, queue.KindCond, 1) }
func BenchmarkQueue_Channel_SPSC_Size1(b *testing.B)    { benchmarkSPSC(b, queue.KindChannel, 1) }
func BenchmarkQueue_Cond_SPSC_Size64(b *testing.B)      { benchmarkSPSC(b, queue.KindCond, 64) }
func BenchmarkQueue_Channel_SPSC_Size64(b *testing.B)   { benchmarkSPSC(b, queue.KindChannel, 64) }
func BenchmarkQueue_Cond_SPSC_Size1024(b *testing.B)    { benchmarkSPSC(b, queue.KindCond, 1024) }
func BenchmarkQueue_Channel_SPSC_Size1024(b *testing.B) { benchmarkSPSC(b, queue.KindChannel, 1024) }
