package queue

import (
	"context"
	"sync"
)

// Compile-time interface compliance.
var (
	_ Queue[int]       = (*Blocking[int])(nil)
	_ Cancellable[int] = (*Blocking[int])(nil)
)

// Blocking is a bounded FIFO queue built as a monitor: one mutex guards the
// buffer, and two condition variables park producers while the queue is
// full and consumers while it is empty.
//
// Every wait re-checks its predicate after waking. A wake-up only means the
// condition held at some point; another goroutine may have claimed the slot
// or item before this one reacquired the lock.
type Blocking[T any] struct {
	mu       sync.Mutex
	notFull  *sync.Cond // signalled after every removal
	notEmpty *sync.Cond // signalled after every insertion
	buf      buffer[T]
	capacity int // immutable
}

// New creates a Blocking queue holding at most capacity items.
// Returns an error matching ErrInvalidArgument if capacity < 1.
func New[T any](capacity int, opts ...Option) (*Blocking[T], error) {
	if capacity <= 0 {
		return nil, invalidCapacity(capacity)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	q := &Blocking[T]{capacity: capacity}
	if o.lazy {
		q.buf = newLazyBuffer[T]()
	} else {
		q.buf = newRingBuffer[T](capacity)
	}
	q.notFull = sync.NewCond(&q.mu)
	q.notEmpty = sync.NewCond(&q.mu)

	return q, nil
}

// Push appends item to the tail of the queue.
// It blocks while the queue is full.
func (q *Blocking[T]) Push(item T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.full() {
		q.notFull.Wait()
	}
	q.put(item)
}

// Pop removes and returns the head of the queue.
// It blocks while the queue is empty.
func (q *Blocking[T]) Pop() T {
	q.mu.Lock()
	defer q.mu.Unlock()

	for q.empty() {
		q.notEmpty.Wait()
	}
	return q.take()
}

// PushContext is Push bounded by ctx.
//
// If there is room on entry the item is enqueued even when ctx is already
// done. Otherwise the call waits until there is room or ctx ends; in the
// latter case it returns an error matching ErrCancelled and the queue is
// left untouched.
func (q *Blocking[T]) PushContext(ctx context.Context, item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.full() {
		if err := q.wait(ctx, q.notFull, q.full); err != nil {
			return err
		}
	}
	q.put(item)
	return nil
}

// PopContext is Pop bounded by ctx.
// Cancellation follows the same rules as PushContext.
func (q *Blocking[T]) PopContext(ctx context.Context) (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.empty() {
		if err := q.wait(ctx, q.notEmpty, q.empty); err != nil {
			var zero T
			return zero, err
		}
	}
	return q.take(), nil
}

// TryPush appends item if the queue has room.
// Returns false, without blocking, if the queue is full.
func (q *Blocking[T]) TryPush(item T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.full() {
		return false
	}
	q.put(item)
	return true
}

// TryPop removes the head item if there is one.
// Returns false, without blocking, if the queue is empty.
func (q *Blocking[T]) TryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.empty() {
		var zero T
		return zero, false
	}
	return q.take(), true
}

// Count returns the number of items in the queue.
// The read is taken under the queue lock, so it is never torn.
func (q *Blocking[T]) Count() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.buf.len()
}

// Size returns the capacity the queue was created with.
func (q *Blocking[T]) Size() int {
	return q.capacity
}

// The helpers below must be called with q.mu held.

func (q *Blocking[T]) full() bool  { return q.buf.len() == q.capacity }
func (q *Blocking[T]) empty() bool { return q.buf.len() == 0 }

func (q *Blocking[T]) put(item T) {
	q.buf.push(item)
	q.notEmpty.Signal()
}

func (q *Blocking[T]) take() T {
	item := q.buf.pop()
	q.notFull.Signal()
	return item
}

// wait parks on c until blocked reports false or ctx is done.
//
// The predicate is checked before ctx, so a goroutine only gives up while
// it still cannot proceed. It therefore never swallows a Signal that would
// have let it, or another waiter, make progress.
func (q *Blocking[T]) wait(ctx context.Context, c *sync.Cond, blocked func() bool) error {
	// sync.Cond cannot select on a channel: wake every waiter on c when ctx
	// ends and let each one re-evaluate.
	stop := context.AfterFunc(ctx, func() {
		q.mu.Lock()
		c.Broadcast()
		q.mu.Unlock()
	})
	defer stop()

	for blocked() {
		if ctx.Err() != nil {
			return cancelled(ctx)
		}
		c.Wait()
	}
	return nil
}
