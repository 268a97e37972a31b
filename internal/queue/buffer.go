package queue

import (
	eq "github.com/eapache/queue"
)

// buffer is the FIFO storage behind Blocking.
// Implementations are not goroutine-safe.
type buffer[T any] interface {
	push(v T)
	pop() T
	len() int
}

var (
	_ buffer[int] = (*ringBuffer[int])(nil)
	_ buffer[int] = (*lazyBuffer[int])(nil)
)

// lazyBuffer grows and shrinks with its contents instead of reserving
// every slot at construction. The capacity bound lives in Blocking.
type lazyBuffer[T any] struct {
	q *eq.Queue
}

func newLazyBuffer[T any]() *lazyBuffer[T] {
	return &lazyBuffer[T]{q: eq.New()}
}

func (b *lazyBuffer[T]) push(v T) {
	b.q.Add(v)
}

func (b *lazyBuffer[T]) pop() T {
	// A nil interface stored for an interface-typed T comes back as nil;
	// the comma-ok form turns it into the zero T instead of panicking.
	v, _ := b.q.Remove().(T)
	return v
}

func (b *lazyBuffer[T]) len() int {
	return b.q.Length()
}
