//go:build cgo && !gsl

package backend

/*
#cgo CFLAGS: -O2 -std=c99 -I${SRCDIR}
#cgo LDFLAGS: -lm
*/
import "C"

// Name identifies the native series implementation linked into the binary.
const Name = "bundled"
