package queue

import "context"

var (
	_ Queue[int]       = (*Channel[int])(nil)
	_ Cancellable[int] = (*Channel[int])(nil)
)

// Channel is a bounded FIFO queue backed by a buffered channel.
//
// The Go runtime provides the locking, the parking and the FIFO ordering;
// Push is a send, Pop is a receive. Count and Size map to len and cap.
type Channel[T any] struct {
	ch chan T
}

// NewChannel creates a Channel with room for capacity items.
// Returns an error matching ErrInvalidArgument if capacity < 1.
func NewChannel[T any](capacity int) (*Channel[T], error) {
	if capacity <= 0 {
		return nil, invalidCapacity(capacity)
	}
	return &Channel[T]{
		ch: make(chan T, capacity),
	}, nil
}

// Push adds an item to the queue, blocking while it is full.
func (q *Channel[T]) Push(v T) {
	q.ch <- v
}

// Pop removes and returns an item, blocking while the queue is empty.
func (q *Channel[T]) Pop() T {
	return <-q.ch
}

// PushContext adds an item unless ctx ends first.
// When both are ready, the send wins.
func (q *Channel[T]) PushContext(ctx context.Context, v T) error {
	select {
	case q.ch <- v:
		return nil
	default:
	}

	select {
	case q.ch <- v:
		return nil
	case <-ctx.Done():
		return cancelled(ctx)
	}
}

// PopContext removes an item unless ctx ends first.
// When both are ready, the receive wins.
func (q *Channel[T]) PopContext(ctx context.Context) (T, error) {
	select {
	case v := <-q.ch:
		return v, nil
	default:
	}

	select {
	case v := <-q.ch:
		return v, nil
	case <-ctx.Done():
		var zero T
		return zero, cancelled(ctx)
	}
}

// TryPush adds an item to the queue.
// Returns false if the queue is full (non-blocking).
func (q *Channel[T]) TryPush(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

// TryPop removes and returns an item from the queue.
// Returns false if the queue is empty (non-blocking).
func (q *Channel[T]) TryPop() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Count returns the channel's instantaneous length. It is not taken under
// a lock shared with Push and Pop, so it may be stale by the time it returns.
func (q *Channel[T]) Count() int {
	return len(q.ch)
}

// Size returns the capacity of the queue.
func (q *Channel[T]) Size() int {
	return cap(q.ch)
}
