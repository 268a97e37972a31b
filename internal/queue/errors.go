package queue

import (
	"context"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned by constructors given a capacity below 1.
	ErrInvalidArgument = errors.New("queue: invalid argument")

	// ErrCancelled is matched by errors returned from PushContext and
	// PopContext when the context ends before the operation could proceed.
	ErrCancelled = errors.New("queue: operation cancelled")
)

func invalidCapacity(capacity int) error {
	return errors.Wrapf(ErrInvalidArgument, "capacity must be positive, got %d", capacity)
}

// cancelledError reports ErrCancelled and unwraps to the context's cause.
type cancelledError struct {
	cause error
}

func cancelled(ctx context.Context) error {
	return &cancelledError{cause: context.Cause(ctx)}
}

func (e *cancelledError) Error() string {
	return ErrCancelled.Error() + ": " + e.cause.Error()
}

func (e *cancelledError) Is(target error) bool { return target == ErrCancelled }

func (e *cancelledError) Unwrap() error { return e.cause }
