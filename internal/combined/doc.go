// Package combined provides producer/consumer pipeline benchmarks that run
// the queue implementations under real goroutine contention.
//
// Unlike the single-goroutine micro-benchmarks in package queue, these
// measure parking and wake-up costs: producers block when the queue is
// full and consumers block when it is empty.
package combined
