//go:build cgo && gsl

package backend

/*
#cgo CFLAGS: -O2 -std=c99 -I${SRCDIR}
#cgo linux CFLAGS: -I/usr/local/include
#cgo darwin CFLAGS: -I/opt/homebrew/include -I/usr/local/include
#cgo linux LDFLAGS: -L/usr/local/lib
#cgo darwin LDFLAGS: -L/opt/homebrew/lib -L/usr/local/lib
#cgo LDFLAGS: -lgsl -lgslcblas -lm
*/
import "C"

// Name identifies the native series implementation linked into the binary.
const Name = "gsl"
