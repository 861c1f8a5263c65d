//go:build cgo

package backend

/*
#include "cheb.h"
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// SeriesAlloc allocates a native series with order+1 coefficients.
//
// The caller MUST call SeriesFree for every successful allocation.
func SeriesAlloc(order int) (Series, error) {
	if order < 0 {
		return nil, ErrInvalidArgument
	}
	cs := C.nb_cheb_alloc(C.size_t(order))
	if cs == nil {
		return nil, ErrNoMemory
	}
	live.Add(1)
	return Series(cs), nil
}

// SeriesFree releases a native series. It is safe to call with nil.
func SeriesFree(s Series) {
	if s == nil {
		return
	}
	C.nb_cheb_free((*C.nb_cheb_series)(s))
	live.Add(-1)
}

// SeriesInit fits s to fn over [a, b] and returns how many times fn was
// invoked.
//
// fn is registered for the duration of the call only. The first error
// returned by fn aborts sampling and is reported as a *SampleError. A panic
// raised by fn is recovered in the trampoline and re-raised here once the
// native call has returned.
func SeriesInit(s Series, fn func(float64) (float64, error), a, b float64) (int, error) {
	if s == nil || fn == nil {
		return 0, ErrInvalidArgument
	}

	smp := &sampler{fn: fn}
	h, key := put(smp)
	defer del(h)

	cell := C.nb_go_ctx_new(C.uintptr_t(key))
	if cell == nil {
		return 0, ErrNoMemory
	}
	defer C.nb_go_ctx_free(cell)

	rc := C.nb_cheb_init_go((*C.nb_cheb_series)(s), cell, C.double(a), C.double(b))
	if smp.panicked {
		panic(smp.panicVal)
	}

	switch rc {
	case C.NB_OK:
		return smp.calls, nil
	case C.NB_EABORT:
		if smp.err != nil {
			return smp.calls, &SampleError{X: smp.errX, Err: smp.err}
		}
		return smp.calls, ErrAborted
	case C.NB_EINVAL:
		return smp.calls, ErrInvalidArgument
	case C.NB_ENOMEM:
		return smp.calls, ErrNoMemory
	default:
		return smp.calls, fmt.Errorf("nb_cheb_init failed with code %d", int(rc))
	}
}

// SeriesEval evaluates s at x using every coefficient.
func SeriesEval(s Series, x float64) float64 {
	return float64(C.nb_cheb_eval((*C.nb_cheb_series)(s), C.double(x)))
}

// SeriesEvalN evaluates s at x using the coefficients up to order n.
func SeriesEvalN(s Series, n int, x float64) float64 {
	if n < 0 {
		n = 0
	}
	return float64(C.nb_cheb_eval_n((*C.nb_cheb_series)(s), C.size_t(n), C.double(x)))
}

// SeriesOrder returns the order the series was allocated with.
func SeriesOrder(s Series) int {
	return int(C.nb_cheb_order((*C.nb_cheb_series)(s)))
}

// SeriesCoeffs copies the coefficients out of native memory.
func SeriesCoeffs(s Series) []float64 {
	cs := (*C.nb_cheb_series)(s)
	n := int(C.nb_cheb_order(cs)) + 1
	src := unsafe.Slice((*float64)(unsafe.Pointer(C.nb_cheb_coeffs(cs))), n)
	out := make([]float64, n)
	copy(out, src)
	return out
}
