//go:build cgo

package backend

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allocSeries(t *testing.T, order int) Series {
	t.Helper()
	s, err := SeriesAlloc(order)
	require.NoError(t, err)
	t.Cleanup(func() { SeriesFree(s) })
	return s
}

func TestSeriesAllocTracksLive(t *testing.T) {
	before := Live()
	s, err := SeriesAlloc(12)
	require.NoError(t, err)
	assert.Equal(t, before+1, Live())
	assert.Equal(t, 12, SeriesOrder(s))
	SeriesFree(s)
	assert.Equal(t, before, Live())
}

func TestSeriesAllocRejectsNegativeOrder(t *testing.T) {
	_, err := SeriesAlloc(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSeriesAllocOverflow(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("requires 64-bit int")
	}
	before := Live()
	shift := 62
	s, err := SeriesAlloc(1 << shift)
	assert.True(t, s == nil, "no series on allocation failure")
	assert.ErrorIs(t, err, ErrNoMemory)
	assert.Equal(t, before, Live())
}

func TestSeriesInitSamplesOncePerNode(t *testing.T) {
	const order = 9
	s := allocSeries(t, order)

	var xs []float64
	calls, err := SeriesInit(s, func(x float64) (float64, error) {
		xs = append(xs, x)
		return x * x, nil
	}, -2, 3)
	require.NoError(t, err)
	assert.Equal(t, order+1, calls)
	assert.Len(t, xs, order+1)
	for _, x := range xs {
		assert.True(t, x > -2 && x < 3, "node %g outside interval", x)
	}
	assert.Zero(t, Pending())
	assert.InDelta(t, 1.5*1.5, SeriesEval(s, 1.5), 1e-12)
}

func TestSeriesInitStopsOnCallbackError(t *testing.T) {
	s := allocSeries(t, 20)
	boom := errors.New("boom")

	n := 0
	calls, err := SeriesInit(s, func(x float64) (float64, error) {
		n++
		if n == 3 {
			return 0, boom
		}
		return x, nil
	}, 0, 1)

	var se *SampleError
	require.ErrorAs(t, err, &se)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, n)
	assert.Zero(t, Pending())
}

func TestSeriesInitRepanicsAfterNativeReturn(t *testing.T) {
	s := allocSeries(t, 4)

	assert.PanicsWithValue(t, "sample failed", func() {
		_, _ = SeriesInit(s, func(float64) (float64, error) {
			panic("sample failed")
		}, 0, 1)
	})
	assert.Zero(t, Pending())
}

func TestSeriesInitRejectsEmptyInterval(t *testing.T) {
	s := allocSeries(t, 4)
	called := false
	_, err := SeriesInit(s, func(x float64) (float64, error) {
		called = true
		return x, nil
	}, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.False(t, called)
}

func TestSeriesCoeffsAndEvalN(t *testing.T) {
	s := allocSeries(t, 6)
	_, err := SeriesInit(s, func(x float64) (float64, error) { return math.Exp(x), nil }, -1, 1)
	require.NoError(t, err)

	c := SeriesCoeffs(s)
	require.Len(t, c, 7)
	assert.Equal(t, SeriesEval(s, 0.25), SeriesEvalN(s, 6, 0.25))
	assert.Equal(t, SeriesEval(s, 0.25), SeriesEvalN(s, 100, 0.25))
	assert.InDelta(t, c[0]/2, SeriesEvalN(s, 0, 0.25), 1e-15)
}
