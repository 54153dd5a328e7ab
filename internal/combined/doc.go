// Package combined holds benchmarks that drive several components together:
// the bounded queues under a producer and a consumer goroutine, the full
// pipeline driver, and an external lock-free ring as a throughput baseline.
//
// These numbers include the hand-off and wake-up cost between goroutines,
// which the per-package micro-benchmarks in internal/queue do not capture.
package combined
