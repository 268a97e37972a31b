package queue

// ringBuffer is a fixed-size circular buffer.
//
// It is NOT safe for concurrent use. Blocking holds its mutex around
// every call, and never pushes into a full ring or pops from an empty one.
type ringBuffer[T any] struct {
	buf   []T
	head  int // index of the oldest item
	count int
}

// newRingBuffer allocates all size slots up front.
// Unlike a lock-free ring there is no power-of-two rounding: the ring
// holds exactly size items.
func newRingBuffer[T any](size int) *ringBuffer[T] {
	return &ringBuffer[T]{
		buf: make([]T, size),
	}
}

func (r *ringBuffer[T]) push(v T) {
	tail := r.head + r.count
	if tail >= len(r.buf) {
		tail -= len(r.buf)
	}
	r.buf[tail] = v
	r.count++
}

func (r *ringBuffer[T]) pop() T {
	var zero T

	v := r.buf[r.head]
	// Drop the reference so the consumer is the only owner.
	r.buf[r.head] = zero

	r.head++
	if r.head == len(r.buf) {
		r.head = 0
	}
	r.count--

	return v
}

func (r *ringBuffer[T]) len() int {
	return r.count
}
