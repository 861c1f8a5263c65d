package cheb

import (
	"errors"
	"fmt"

	"github.com/nativebind/nativebind-go/internal/backend"
)

var (
	// ErrNotBuilt indicates the binary was built without the native backend.
	ErrNotBuilt = errors.New("cheb: native backend not built")

	// ErrAllocation indicates the native allocator could not satisfy Alloc.
	ErrAllocation = errors.New("cheb: native allocation failed")

	// ErrInvalidOrder indicates a negative series order.
	ErrInvalidOrder = errors.New("cheb: invalid order")

	// ErrInvalidInterval indicates an interval that is empty, reversed or
	// not finite.
	ErrInvalidInterval = errors.New("cheb: invalid interval")

	// ErrNilFunc indicates Init was called without a function.
	ErrNilFunc = errors.New("cheb: nil function")

	// ErrAborted indicates sampling stopped without a reported cause.
	ErrAborted = errors.New("cheb: sampling aborted")
)

// Contract violation causes. These are carried by *ContractViolation panics,
// never returned.
var (
	ErrReleased       = errors.New("cheb: series already released")
	ErrNotInitialized = errors.New("cheb: series not initialized")
	ErrConcurrentUse  = errors.New("cheb: concurrent use of series")
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cheb.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CallbackError reports an error returned by the sampled function. X is the
// sample coordinate that failed.
type CallbackError struct {
	X   float64
	Err error
}

func (e *CallbackError) Error() string {
	return fmt.Sprintf("callback failed at x=%g: %v", e.X, e.Err)
}

func (e *CallbackError) Unwrap() error {
	return e.Err
}

// ContractViolation is the panic value used when a Series is misused.
type ContractViolation struct {
	Op  string
	Err error
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("cheb: contract violation in %s: %v", e.Op, e.Err)
}

func (e *ContractViolation) Unwrap() error {
	return e.Err
}

func violate(op string, err error) {
	panic(&ContractViolation{Op: op, Err: err})
}

// remapError converts backend errors to package errors.
func remapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *backend.SampleError
	switch {
	case errors.As(err, &se):
		err = &CallbackError{X: se.X, Err: se.Err}
	case errors.Is(err, backend.ErrNotBuilt):
		err = ErrNotBuilt
	case errors.Is(err, backend.ErrNoMemory):
		err = ErrAllocation
	case errors.Is(err, backend.ErrAborted):
		err = ErrAborted
	}
	return &Error{Op: op, Err: err}
}
