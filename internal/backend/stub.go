//go:build !cgo

package backend

// Stub implementations for non-cgo builds. The series functions return
// ErrNotBuilt; Reverse falls back to Go.

// Name identifies the native series implementation linked into the binary.
const Name = "none"

func SeriesAlloc(int) (Series, error) { return nil, ErrNotBuilt }

func SeriesFree(Series) {}

func SeriesInit(Series, func(float64) (float64, error), float64, float64) (int, error) {
	return 0, ErrNotBuilt
}

func SeriesEval(Series, float64) float64 { return 0 }

func SeriesEvalN(Series, int, float64) float64 { return 0 }

func SeriesOrder(Series) int { return 0 }

func SeriesCoeffs(Series) []float64 { return nil }

// Reverse reverses buf in place.
func Reverse(buf []byte) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
