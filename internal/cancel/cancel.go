// Package cancel provides the cancellation signal shared by the workers of
// a pipeline run.
//
// A Canceler is handed to blocking calls as a context (Context). Cancel
// records a cause, so whoever joins the run can tell a caller abort apart
// from a worker fault. ContextCanceler also offers Done, a non-blocking poll
// for loops that do not block on the context.
package cancel

import "context"

// Canceler is the run-abort signal the pipeline driver holds.
//
// Implementations must be safe for concurrent use: Cancel may race with Err
// and with waiters on Context().Done().
type Canceler interface {
	// Cancel triggers cancellation with the given cause.
	// A nil cause means context.Canceled. Only the first call counts.
	Cancel(cause error)

	// Err returns nil until cancellation, then the cause passed to the
	// first Cancel (or the parent's error if the parent ended first).
	Err() error

	// Context returns a context that is done once cancellation happened.
	Context() context.Context
}
