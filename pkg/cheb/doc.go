// Package cheb wraps a native Chebyshev series behind an opaque handle.
//
// A Series follows a strict lifecycle:
//
//	Alloc → Init (any number of times) → Eval … → Free
//
// Alloc reserves native storage for order+1 coefficients. Init fits the
// series to a Go function over [a, b]; the native layer samples the function
// through a trampoline exactly order+1 times, synchronously, before Init
// returns. Eval evaluates the most recent fit. Free releases the native
// storage.
//
// The usual pattern is scoped acquisition:
//
//	err := cheb.With(40, func(s *cheb.Series) error {
//	    if err := s.Init(math.Cos, 0, math.Pi); err != nil {
//	        return err
//	    }
//	    fmt.Println(s.Eval(1))
//	    return nil
//	})
//
// # Errors and contract violations
//
// Recoverable failures are returned as errors: allocation failure
// (ErrAllocation), invalid arguments, and failures raised by the sampled
// function (CallbackError). Misuse of a handle, such as evaluating before the
// first fit, using it after Free, freeing it twice, or using it from two
// goroutines at once, is a programmer error and panics with a
// *ContractViolation.
//
// A panic raised by the sampled function aborts sampling and is re-raised
// from Init. After any aborted fit the series is left allocated but
// uninitialized; it can be refitted or freed.
//
// # Threading
//
// A Series is not safe for concurrent use. Concurrent or reentrant use is
// detected on a best-effort basis and reported as a contract violation.
package cheb
