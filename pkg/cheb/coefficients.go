package cheb

import (
	"fmt"
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Coefficients is a value snapshot of a fitted series. It is independent of
// any native handle and can be evaluated after the series is freed.
type Coefficients struct {
	A, B float64   // fitted interval
	C    []float64 // C[0..order]
}

// Order returns the highest coefficient index, or -1 for an empty snapshot.
func (c Coefficients) Order() int {
	return len(c.C) - 1
}

// Eval evaluates the snapshot at x.
func (c Coefficients) Eval(x float64) float64 {
	return c.EvalN(c.Order(), x)
}

// EvalN evaluates the snapshot at x using the terms up to order n, with the
// Clenshaw recurrence.
func (c Coefficients) EvalN(n int, x float64) float64 {
	if len(c.C) == 0 {
		return 0
	}
	n = min(max(n, 0), c.Order())

	y := (2*x - c.A - c.B) / (c.B - c.A)
	y2 := 2 * y
	var d1, d2 float64
	for j := n; j >= 1; j-- {
		d1, d2 = y2*d1-d2+c.C[j], d1
	}
	return y*d1 - d2 + 0.5*c.C[0]
}

// FitCoefficients fits f over [a, b] in Go, without touching the native
// backend. It samples f at the same order+1 Chebyshev nodes as Series.Init,
// so both produce the same coefficients up to rounding.
func FitCoefficients(f Func, order int, a, b float64) (Coefficients, error) {
	const op = "fit"
	if f == nil {
		return Coefficients{}, &Error{Op: op, Err: ErrNilFunc}
	}
	if order < 0 {
		return Coefficients{}, &Error{Op: op, Err: fmt.Errorf("%w: %d", ErrInvalidOrder, order)}
	}
	if !(a < b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return Coefficients{}, &Error{Op: op, Err: fmt.Errorf("%w: [%g, %g]", ErrInvalidInterval, a, b)}
	}

	n := order + 1
	bma := 0.5 * (b - a)
	bpa := 0.5 * (b + a)

	samples := make([]float64, n)
	for k := range samples {
		y := math.Cos(math.Pi * (float64(k) + 0.5) / float64(n))
		samples[k] = f(y*bma + bpa)
	}

	c := make([]float64, n)
	basis := make([]float64, n)
	terms := make([]float64, n)
	for j := range c {
		for k := range basis {
			basis[k] = math.Cos(math.Pi * float64(j) * (float64(k) + 0.5) / float64(n))
		}
		vecmath.MulBlock(terms, samples, basis)
		var sum float64
		for _, t := range terms {
			sum += t
		}
		c[j] = 2 * sum / float64(n)
	}
	return Coefficients{A: a, B: b, C: c}, nil
}
