//go:build cgo

package backend

/*
#include "cheb.h"
*/
import "C"

import (
	"math"
	"unsafe"
)

// sampler is the managed side of one SeriesInit call.
type sampler struct {
	fn    func(float64) (float64, error)
	calls int

	// first failure, if any
	err      error
	errX     float64
	panicked bool
	panicVal any
}

func (s *sampler) failed() bool { return s.err != nil || s.panicked }

// nbGoSample is the native-to-Go trampoline. It must never let a panic
// unwind into C: failures are recorded on the sampler, the context cell is
// flagged as aborted and NaN is handed back to the native loop.
//
//export nbGoSample
func nbGoSample(x C.double, params unsafe.Pointer) (out C.double) {
	cell := (*C.nb_go_ctx)(params)
	if cell == nil {
		return C.double(math.NaN())
	}
	v, ok := get(handle(uintptr(cell.handle)))
	if !ok {
		cell.aborted = 1
		return C.double(math.NaN())
	}
	s, ok := v.(*sampler)
	if !ok {
		cell.aborted = 1
		return C.double(math.NaN())
	}
	if cell.aborted != 0 || s.failed() {
		return C.double(math.NaN())
	}

	defer func() {
		if r := recover(); r != nil {
			s.panicked = true
			s.panicVal = r
			cell.aborted = 1
			out = C.double(math.NaN())
		}
	}()

	s.calls++
	y, err := s.fn(float64(x))
	if err != nil {
		s.err = err
		s.errX = float64(x)
		cell.aborted = 1
		return C.double(math.NaN())
	}
	return C.double(y)
}
