package progress

import (
	"log/slog"
	"time"
)

// Reporter counts delivered items and logs a progress line whenever its
// trigger says one is due.
//
// A nil *Reporter is valid and does nothing, so callers can leave progress
// reporting off without branching.
type Reporter struct {
	trigger Trigger
	logger  *slog.Logger
	start   time.Time
	count   int
	lines   int
}

// NewReporter creates a Reporter that logs to logger whenever trigger is due.
// A nil logger uses slog.Default().
func NewReporter(logger *slog.Logger, trigger Trigger) *Reporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{
		trigger: trigger,
		logger:  logger,
		start:   time.Now(),
	}
}

// Add records n more delivered items and logs if a line is due.
func (r *Reporter) Add(n int) {
	if r == nil {
		return
	}
	r.count += n
	if !r.trigger.Due() {
		return
	}
	r.lines++

	elapsed := time.Since(r.start)
	rate := 0.0
	if elapsed > 0 {
		rate = float64(r.count) / elapsed.Seconds()
	}
	r.logger.Info("pipeline progress",
		"items", r.count,
		"elapsed", elapsed.Round(time.Millisecond),
		"items_per_sec", int64(rate),
	)
}

// Count returns the number of items recorded so far.
func (r *Reporter) Count() int {
	if r == nil {
		return 0
	}
	return r.count
}

// Lines returns how many progress lines have been logged.
func (r *Reporter) Lines() int {
	if r == nil {
		return 0
	}
	return r.lines
}

// Stop releases the trigger.
func (r *Reporter) Stop() {
	if r == nil {
		return
	}
	r.trigger.Stop()
}
