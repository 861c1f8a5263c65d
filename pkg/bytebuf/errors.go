package bytebuf

import "errors"

var (
	// ErrLength indicates a buffer whose length does not fit the guest's
	// 32-bit address space.
	ErrLength = errors.New("bytebuf: length is not a uint32")

	// ErrMemoryLimit indicates the guest memory could not grow to hold the
	// buffer.
	ErrMemoryLimit = errors.New("bytebuf: guest memory limit exceeded")

	// ErrClosed indicates use of a closed Sandbox.
	ErrClosed = errors.New("bytebuf: sandbox closed")
)
