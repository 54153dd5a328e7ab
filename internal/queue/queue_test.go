package queue_test

import (
	"runtime"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/jeffery-lai/intuit-build-challenge/internal/queue"
)

func TestBoundedQueue_Wraparound(t *testing.T) {
	q, err := queue.New[int](3)
	if err != nil {
		t.Fatal(err)
	}

	// Cycle through the ring several times to cross the slot boundary.
	next := 0
	for round := 0; round < 5; round++ {
		q.Put(next)
		q.Put(next + 1)
		for i := 0; i < 2; i++ {
			got := q.Take()
			if got != next {
				t.Fatalf("round %d: FIFO violation: expected %d, got %d", round, next, got)
			}
			next++
		}
	}
	if q.Len() != 0 {
		t.Errorf("expected Len() = 0, got %d", q.Len())
	}
}

// TestBoundedQueue_OnePutWakesOneTaker parks two consumers on an empty
// queue; a single Put must satisfy exactly one of them while the other
// re-blocks.
func TestBoundedQueue_OnePutWakesOneTaker(t *testing.T) {
	q, err := queue.New[int](1)
	if err != nil {
		t.Fatal(err)
	}

	got := make(chan int, 2)
	for i := 0; i < 2; i++ {
		go func() {
			got <- q.Take()
		}()
	}
	time.Sleep(20 * time.Millisecond)

	q.Put(42)

	select {
	case v := <-got:
		if v != 42 {
			t.Fatalf("Take() = %d, want 42", v)
		}
	case <-time.After(time.Second):
		t.Fatal("no consumer woke after Put")
	}

	select {
	case v := <-got:
		t.Fatalf("second consumer returned %d without a second Put", v)
	case <-time.After(blockWindow):
	}

	q.Put(43)
	select {
	case v := <-got:
		if v != 43 {
			t.Errorf("Take() = %d, want 43", v)
		}
	case <-time.After(time.Second):
		t.Fatal("second consumer did not wake after second Put")
	}
}

// TestBoundedQueue_SPSC moves many items through a small queue with one
// producer and one consumer and checks order end to end.
func TestBoundedQueue_SPSC(t *testing.T) {
	q, err := queue.New[int](64)
	if err != nil {
		t.Fatal(err)
	}
	count := 10000
	done := make(chan struct{})

	// Producer (single goroutine)
	go func() {
		defer close(done)
		for i := 0; i < count; i++ {
			q.Put(i)
		}
	}()

	// Consumer (this test's main goroutine)
	for expected := 0; expected < count; expected++ {
		if got := q.Take(); got != expected {
			t.Fatalf("FIFO violation: expected %d, got %d", expected, got)
		}
	}

	<-done
	if q.Len() != 0 {
		t.Errorf("expected Len() = 0, got %d", q.Len())
	}
}

// TestBoundedQueue_MPMC checks exactly-once delivery with several producers
// and consumers sharing one queue.
func TestBoundedQueue_MPMC(t *testing.T) {
	q, err := queue.New[int](4)
	if err != nil {
		t.Fatal(err)
	}
	workers := runtime.GOMAXPROCS(0)
	if workers < 2 {
		workers = 2
	}
	perProducer := 500
	total := workers * perProducer

	var producers sync.WaitGroup
	for p := 0; p < workers; p++ {
		producers.Add(1)
		go func(p int) {
			defer producers.Done()
			for i := 0; i < perProducer; i++ {
				q.Put(p*perProducer + i)
			}
		}(p)
	}

	results := make(chan int, total)
	var consumers sync.WaitGroup
	for c := 0; c < workers; c++ {
		consumers.Add(1)
		go func() {
			defer consumers.Done()
			for {
				v, err := q.TakeTimeout(200 * time.Millisecond)
				if err != nil {
					return
				}
				results <- v
			}
		}()
	}

	producers.Wait()
	consumers.Wait()
	close(results)

	got := make([]int, 0, total)
	for v := range results {
		got = append(got, v)
	}
	sort.Ints(got)
	if len(got) != total {
		t.Fatalf("delivered %d items, want %d", len(got), total)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("missing or duplicate value: got[%d]=%d", i, v)
		}
	}
}

// TestBoundedQueue_CapacityInvariant samples Len while producers and
// consumers race; it must never leave [0, Cap].
func TestBoundedQueue_CapacityInvariant(t *testing.T) {
	q, err := queue.New[int](2)
	if err != nil {
		t.Fatal(err)
	}
	stop := make(chan struct{})
	var wg sync.WaitGroup

	for i := 0; i < 2; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					q.TryPut(1)
				}
			}
		}()
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					q.TryTake()
				}
			}
		}()
	}

	for i := 0; i < 10000; i++ {
		if n := q.Len(); n < 0 || n > q.Cap() {
			t.Errorf("Len() = %d outside [0, %d]", n, q.Cap())
			break
		}
	}
	close(stop)
	wg.Wait()
}
