// Package queue provides bounded, blocking FIFO queues safe for any number
// of producer and consumer goroutines.
//
// This package offers two implementations of the Queue interface:
//   - Blocking: a monitor (one mutex, two condition variables) over a
//     fixed-capacity buffer
//   - Channel: the same contract expressed as a buffered channel
//
// # Blocking semantics
//
// Push parks the caller while the queue holds Size() items and Pop parks
// the caller while it holds none. Parked goroutines do not spin; they are
// woken when another goroutine makes room or adds an item. No ordering is
// promised among goroutines parked on the same condition, but items always
// leave in the order they entered.
//
// # Cancellation
//
// Both implementations also satisfy Cancellable. PushContext and PopContext
// give up when their context is done and return an error matching
// ErrCancelled. A cancelled call has no effect on the queue.
//
// # Lifetime
//
// A queue must outlive every goroutine that can call into it. Dropping the
// last reference while goroutines are parked in Push or Pop leaks those
// goroutines.
package queue

import "context"

// Queue is a bounded FIFO queue with blocking Push and Pop.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type Queue[T any] interface {
	// Push appends item to the tail, blocking while the queue is full.
	Push(item T)

	// Pop removes and returns the head item, blocking while the queue is empty.
	Pop() T

	// Count returns the number of items currently held.
	Count() int

	// Size returns the fixed capacity.
	Size() int
}

// Cancellable extends Queue with context-aware and non-blocking variants.
type Cancellable[T any] interface {
	Queue[T]

	// PushContext is Push that gives up when ctx is done.
	// On cancellation the item is not enqueued.
	PushContext(ctx context.Context, item T) error

	// PopContext is Pop that gives up when ctx is done.
	// On cancellation no item is removed.
	PopContext(ctx context.Context) (T, error)

	// TryPush appends item only if there is room.
	// Returns false if the queue is full.
	TryPush(item T) bool

	// TryPop removes the head item only if there is one.
	// Returns false if the queue is empty.
	TryPop() (T, bool)
}
