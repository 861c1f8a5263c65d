package backend

import (
	"errors"
	"fmt"
	"sync/atomic"
	"unsafe"
)

// Series is an opaque pointer to a native series. It is never dereferenced
// outside this package.
type Series = unsafe.Pointer

var (
	// ErrNotBuilt reports that the native bindings were not linked into the
	// current binary.
	ErrNotBuilt = errors.New("nativebind/internal/backend: native bindings not built")

	// ErrNoMemory is returned when the native allocator fails.
	ErrNoMemory = errors.New("native allocation failed")

	// ErrInvalidArgument is returned when the native layer rejects its
	// arguments.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAborted is returned when sampling stopped without a recorded
	// callback error.
	ErrAborted = errors.New("sampling aborted")
)

// SampleError records the first callback failure during sampling.
type SampleError struct {
	X   float64
	Err error
}

func (e *SampleError) Error() string {
	return fmt.Sprintf("sample at x=%g: %v", e.X, e.Err)
}

func (e *SampleError) Unwrap() error { return e.Err }

var live atomic.Int64

// Live reports how many native series are currently allocated.
func Live() int64 { return live.Load() }
