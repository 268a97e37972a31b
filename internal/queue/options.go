package queue

// Option customizes a Blocking queue at construction.
type Option func(*options)

type options struct {
	lazy bool
}

// WithLazyBuffer backs the queue with a growable ring that allocates as
// items arrive, rather than reserving capacity slots up front.
// Prefer it for large capacities that are rarely reached.
func WithLazyBuffer() Option {
	return func(o *options) {
		o.lazy = true
	}
}
