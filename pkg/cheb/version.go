package cheb

import "github.com/nativebind/nativebind-go/internal/backend"

// Version is populated at build time via ldflags.
var Version = "v0.0.0-in-progress"

// Backend names the native series implementation linked into the binary:
// "bundled", "gsl", or "none" when built without cgo.
func Backend() string {
	return backend.Name
}

// LiveHandles reports how many native series are allocated and not yet
// released, across the whole process.
func LiveHandles() int64 {
	return backend.Live()
}
