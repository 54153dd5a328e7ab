// Package progress reports how far a pipeline run has got.
//
// A Reporter counts items as the consumer delivers them and logs a line
// whenever its Trigger says one is due. The consumer calls the reporter once
// per item, so triggers are checked on the hot path and must not block.
//
// Triggers and Reporters belong to a single goroutine.
package progress

import "time"

// Trigger decides when the next progress line is due.
type Trigger interface {
	// Due is called once per delivered item and reports whether a progress
	// line should be logged now. It never blocks.
	Due() bool

	// Stop releases the trigger's timer, if any.
	Stop()
}

// IntervalTrigger fires at most once per interval, driven by a time.Ticker.
type IntervalTrigger struct {
	t        *time.Ticker
	interval time.Duration
}

// NewIntervalTrigger panics if interval is not positive, like time.NewTicker.
func NewIntervalTrigger(interval time.Duration) *IntervalTrigger {
	return &IntervalTrigger{t: time.NewTicker(interval), interval: interval}
}

func (it *IntervalTrigger) Due() bool {
	select {
	case <-it.t.C:
		return true
	default:
		return false
	}
}

func (it *IntervalTrigger) Stop() { it.t.Stop() }

// Interval returns the configured interval.
func (it *IntervalTrigger) Interval() time.Duration { return it.interval }

// SampledTrigger reads the clock only on every Nth item. With sample=1000
// and interval=1s a fast consumer pays one time.Now per thousand items, and
// a line is due at the first sampled item after a second has passed.
type SampledTrigger struct {
	interval time.Duration
	sample   int
	seen     int
	last     time.Time
}

// NewSampledTrigger treats sample < 1 as 1.
func NewSampledTrigger(interval time.Duration, sample int) *SampledTrigger {
	return &SampledTrigger{
		interval: interval,
		sample:   max(sample, 1),
		last:     time.Now(),
	}
}

func (st *SampledTrigger) Due() bool {
	st.seen++
	if st.seen < st.sample {
		return false
	}
	st.seen = 0

	now := time.Now()
	if now.Sub(st.last) < st.interval {
		return false
	}
	st.last = now
	return true
}

func (st *SampledTrigger) Stop() {}

// Sample returns how many items pass between clock reads.
func (st *SampledTrigger) Sample() int { return st.sample }

// NewTrigger returns a SampledTrigger when sample > 1 and an IntervalTrigger
// otherwise.
func NewTrigger(interval time.Duration, sample int) Trigger {
	if sample > 1 {
		return NewSampledTrigger(interval, sample)
	}
	return NewIntervalTrigger(interval)
}
