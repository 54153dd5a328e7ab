// Package pipeline moves a finite sequence from a producer goroutine to a
// consumer goroutine through a bounded blocking queue.
//
// The producer puts every source value, then exactly one end-of-stream
// marker. The consumer takes values and hands them to a Sink until it sees
// the marker, which it never forwards. The marker is a variant of Item, not
// a reserved value, so no payload can be mistaken for it:
//
//	Payload(v)     // a value from the source
//	EndOfStream()  // the end of the stream
//
// A Pipeline wires both workers to one queue and joins them:
//
//	p, err := pipeline.New[int](pipeline.WithCapacity(3))
//	if err != nil { ... }
//	sink := pipeline.NewSliceSink[int](0)
//	res, err := p.Run(ctx, slices.Values(src), sink)
//	// sink.Items() is safe to read here
//
// If either worker fails (an error or a panic), the run is cancelled so the
// other side does not stay blocked on the queue, and the first failure is
// returned from Wait.
package pipeline
