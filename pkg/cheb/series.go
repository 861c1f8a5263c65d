package cheb

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync/atomic"

	"github.com/nativebind/nativebind-go/internal/backend"
	"github.com/nativebind/nativebind-go/pkg/logging"
)

// Func is a function of one variable sampled by Init.
type Func func(x float64) float64

// FuncE is a function of one variable that may fail. The first error aborts
// sampling.
type FuncE func(x float64) (float64, error)

type state uint8

const (
	stateAllocated state = iota + 1
	stateInitialized
	stateReleased
)

// noCopy makes go vet's copylocks check flag copies of a Series.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Series is an opaque handle to a native Chebyshev series. The native
// storage is exclusively owned by the Series; do not copy it.
type Series struct {
	_ noCopy

	ptr   backend.Series
	order int
	a, b  float64
	state state
	busy  atomic.Bool
	log   logging.Logger
}

// Alloc reserves a native series with order+1 coefficients. The series must
// be fitted with Init before it can be evaluated and should be released with
// Free. A finalizer releases series that become unreachable without Free,
// but callers should not rely on it.
func Alloc(order int, opts ...Option) (*Series, error) {
	if order < 0 {
		return nil, &Error{Op: "alloc", Err: fmt.Errorf("%w: %d", ErrInvalidOrder, order)}
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ptr, err := backend.SeriesAlloc(order)
	if err != nil {
		return nil, remapError("alloc", err)
	}

	s := &Series{
		ptr:   ptr,
		order: order,
		state: stateAllocated,
		log:   o.logger.With("order", order),
	}
	runtime.SetFinalizer(s, (*Series).finalize)
	s.log.Debug(context.Background(), "series allocated", "backend", backend.Name)
	return s, nil
}

// Init fits the series to f over [a, b]. See InitE.
func (s *Series) Init(f Func, a, b float64) error {
	var fe FuncE
	if f != nil {
		fe = func(x float64) (float64, error) { return f(x), nil }
	}
	return s.initE("init", fe, a, b)
}

// InitE fits the series to f over [a, b], replacing any previous fit.
//
// f is called exactly Order()+1 times, synchronously and one call at a time,
// at the Chebyshev nodes of [a, b]. It must not retain or use the series. If
// f returns an error, sampling stops, Init returns an *Error wrapping a
// *CallbackError, and the series is left uninitialized. If f panics, the
// panic is re-raised from InitE with the same effect on the series.
func (s *Series) InitE(f FuncE, a, b float64) error {
	return s.initE("init", f, a, b)
}

func (s *Series) initE(op string, f FuncE, a, b float64) error {
	s.enter(op)
	defer s.leave()

	if f == nil {
		return &Error{Op: op, Err: ErrNilFunc}
	}
	if !(a < b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return &Error{Op: op, Err: fmt.Errorf("%w: [%g, %g]", ErrInvalidInterval, a, b)}
	}

	fitted := false
	defer func() {
		if !fitted {
			s.state = stateAllocated
		}
	}()

	calls, err := backend.SeriesInit(s.ptr, f, a, b)
	runtime.KeepAlive(s)
	if err != nil {
		s.log.Debug(context.Background(), "series fit aborted", "samples", calls, "error", err)
		return remapError(op, err)
	}

	fitted = true
	s.a, s.b = a, b
	s.state = stateInitialized
	s.log.Debug(context.Background(), "series fitted", "a", a, "b", b, "samples", calls)
	return nil
}

// Eval returns the series approximation at x. Points outside the fitted
// interval are extrapolated. Eval panics if the series has not been fitted.
func (s *Series) Eval(x float64) float64 {
	s.enter("eval")
	defer s.leave()
	s.requireInitialized("eval")

	y := backend.SeriesEval(s.ptr, x)
	runtime.KeepAlive(s)
	return y
}

// EvalN evaluates the series at x using only the terms up to order n.
// n larger than Order() is clamped.
func (s *Series) EvalN(n int, x float64) float64 {
	s.enter("eval_n")
	defer s.leave()
	s.requireInitialized("eval_n")

	y := backend.SeriesEvalN(s.ptr, n, x)
	runtime.KeepAlive(s)
	return y
}

// Coefficients copies the fitted coefficients out of native memory.
func (s *Series) Coefficients() Coefficients {
	s.enter("coefficients")
	defer s.leave()
	s.requireInitialized("coefficients")

	c := Coefficients{A: s.a, B: s.b, C: backend.SeriesCoeffs(s.ptr)}
	runtime.KeepAlive(s)
	return c
}

// Order returns the order the series was allocated with.
func (s *Series) Order() int {
	if s == nil {
		return 0
	}
	return s.order
}

// Interval returns the interval of the most recent fit.
func (s *Series) Interval() (a, b float64) {
	if s == nil {
		return 0, 0
	}
	return s.a, s.b
}

// Initialized reports whether the series holds a fit.
func (s *Series) Initialized() bool {
	return s != nil && s.state == stateInitialized
}

// Released reports whether Free has been called.
func (s *Series) Released() bool {
	return s == nil || s.state == stateReleased
}

// Free releases the native series. Any further use of s, including a second
// Free, panics.
func (s *Series) Free() {
	s.enter("free")
	defer s.leave()

	s.release()
	runtime.SetFinalizer(s, nil)
	s.log.Debug(context.Background(), "series released")
}

func (s *Series) release() {
	backend.SeriesFree(s.ptr)
	s.ptr = nil
	s.state = stateReleased
}

func (s *Series) finalize() {
	if s.state == stateReleased {
		return
	}
	s.log.Warn(context.Background(), "series reclaimed by finalizer; call Free")
	s.release()
}

// enter marks the series busy for the duration of op.
func (s *Series) enter(op string) {
	if s == nil {
		violate(op, ErrReleased)
	}
	if !s.busy.CompareAndSwap(false, true) {
		violate(op, ErrConcurrentUse)
	}
	if s.state == stateReleased {
		s.busy.Store(false)
		violate(op, ErrReleased)
	}
}

func (s *Series) leave() {
	s.busy.Store(false)
}

func (s *Series) requireInitialized(op string) {
	if s.state != stateInitialized {
		violate(op, ErrNotInitialized)
	}
}
