package cancel

import "context"

// ContextCanceler wraps a cancel-cause context.
//
// Done performs a non-blocking select on ctx.Done(), cheap enough to call
// once per item in a worker loop.
type ContextCanceler struct {
	ctx    context.Context
	cancel context.CancelCauseFunc
}

// NewContext creates a ContextCanceler derived from parent.
// Cancelling the parent also cancels the ContextCanceler.
func NewContext(parent context.Context) *ContextCanceler {
	ctx, cancel := context.WithCancelCause(parent)
	return &ContextCanceler{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Done returns true if the context has been cancelled.
func (c *ContextCanceler) Done() bool {
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}

// Cancel cancels the context, recording cause.
// Safe to call multiple times; only the first cause is kept.
func (c *ContextCanceler) Cancel(cause error) {
	c.cancel(cause)
}

// Err returns the cancellation cause, or nil while still running.
func (c *ContextCanceler) Err() error {
	if !c.Done() {
		return nil
	}
	return context.Cause(c.ctx)
}

// Context returns the run context. Blocking queue calls take it so a
// Cancel wakes them.
func (c *ContextCanceler) Context() context.Context {
	return c.ctx
}
