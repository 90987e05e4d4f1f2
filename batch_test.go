package spline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/interp"

	"github.com/tphakala/go-spline/internal/testutil"
)

func TestEvaluate_MatchesValue(t *testing.T) {
	for _, d := range allDegrees {
		t.Run(d.String(), func(t *testing.T) {
			s := newSquares(9, d)
			ref := newSquares(9, d)
			xs := testutil.Linspace(-1.0, 9.0, 73)

			out := s.Evaluate(nil, xs)
			require.Len(t, out, len(xs))
			for i, x := range xs {
				assert.Equal(t, ref.Value(x), out[i], "x=%v", x)
			}
		})
	}
}

func TestEvaluate_ReusesDst(t *testing.T) {
	s := newSquares(4, Linear)
	xs := []float64{0.5, 1.5, 2.5}

	dst := make([]float64, 8)
	out := s.Evaluate(dst, xs)
	assert.Len(t, out, 3)
	assert.Same(t, &dst[0], &out[0])
	assert.Equal(t, []float64{0.5, 2.5, 6.5}, out)

	small := make([]float64, 1)
	out = s.Evaluate(small, xs)
	assert.Len(t, out, 3)
	assert.Equal(t, 0.0, small[0], "too-small dst is left untouched")
}

func TestEvaluate_Empty(t *testing.T) {
	s := newSquares(4, Linear)
	assert.Empty(t, s.Evaluate(nil, nil))
}

func TestSample(t *testing.T) {
	s := newSquares(4, Linear)

	xs, ys, err := s.Sample(0, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2, 2.5, 3}, xs)
	assert.Equal(t, []float64{0, 0.5, 1, 2.5, 4, 6.5, 9}, ys)
}

func TestSample_BeyondKnotsClamps(t *testing.T) {
	s := newSquares(3, CatmullRom)

	_, ys, err := s.Sample(-4, 6, 11)
	require.NoError(t, err)
	assert.Equal(t, 0.0, ys[0])
	assert.Equal(t, 4.0, ys[len(ys)-1])
	testutil.AssertNoNaNOrInf(t, ys)
}

func TestSample_InvalidCount(t *testing.T) {
	s := newSquares(3, Linear)
	for _, n := range []int{-1, 0, 1} {
		_, _, err := s.Sample(0, 1, n)
		assert.ErrorIs(t, err, ErrInvalidSampleCount, "n=%d", n)
	}

	_, err := s.SampleInterleaved(0, 1, 1)
	assert.ErrorIs(t, err, ErrInvalidSampleCount)
}

func TestSampleInterleaved(t *testing.T) {
	x := []float32{0, 1, 2}
	y := []float32{0, 10, 0}
	s := NewWithPoints(x, y, 3, Linear)

	out, err := s.SampleInterleaved(0, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 0.5, 5, 1, 10, 1.5, 5, 2, 0}, out)
}

func TestSample_Monotonic(t *testing.T) {
	// A Hermite spline with non-negative tangents through increasing data
	// stays monotone when the tangents respect the secant slopes.
	x := []float64{0, 1, 2, 4}
	y := []float64{0, 1, 1.5, 4}
	m := []float64{1, 0.75, 0.5, 1}
	s := NewHermite(x, y, m, len(x))

	_, ys, err := s.Sample(0, 4, 161)
	require.NoError(t, err)
	testutil.AssertMonotonic(t, ys)
	testutil.AssertAllInRange(t, ys, 0, 4)
}

// =============================================================================
// Reference comparisons against gonum/interp
// =============================================================================

func TestLinear_MatchesGonumPiecewiseLinear(t *testing.T) {
	x := []float64{-3, -1, 0, 2.5, 4, 8}
	y := []float64{1, -2, 0.5, 3, 3, -1}

	var pl interp.PiecewiseLinear
	require.NoError(t, pl.Fit(x, y))
	s := NewWithPoints(x, y, len(x), Linear)

	for _, q := range testutil.Linspace(-5.0, 10.0, 151) {
		assert.InDelta(t, pl.Predict(q), s.Value(q), testutil.DefaultTolerance, "x=%v", q)
	}
}

func TestHermite_MatchesGonumPiecewiseCubic(t *testing.T) {
	x := []float64{0, 0.5, 2, 3, 5}
	y := []float64{1, 2, -1, 0, 4}
	m := []float64{0, 1, -2, 3, 0.5}

	var pc interp.PiecewiseCubic
	pc.FitWithDerivatives(x, y, m)
	s := NewHermite(x, y, m, len(x))

	for _, q := range testutil.Linspace(-1.0, 6.0, 141) {
		assert.InDelta(t, pc.Predict(q), s.Value(q), 1e-9, "x=%v", q)
	}
}

func TestCatmullRom_MatchesGonumOnInteriorSegments(t *testing.T) {
	n := 12
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range n {
		x[i] = float64(i) * 0.5
		y[i] = math.Sin(x[i])
	}

	// Build the Catmull-Rom tangents explicitly and let gonum evaluate the
	// same Hermite segments.
	m := make([]float64, n)
	for i := 1; i < n-1; i++ {
		m[i] = (y[i+1] - y[i-1]) / (x[i+1] - x[i-1])
	}
	var pc interp.PiecewiseCubic
	pc.FitWithDerivatives(x, y, m)

	s := NewWithPoints(x, y, n, CatmullRom)
	for _, q := range testutil.Linspace(x[1], x[n-2], 200) {
		assert.InDelta(t, pc.Predict(q), s.Value(q), 1e-9, "x=%v", q)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	s := newSquares(128, CatmullRom)
	xs := testutil.Linspace(0.0, 127.0, 8192)
	dst := make([]float64, len(xs))

	b.ReportAllocs()
	for b.Loop() {
		dst = s.Evaluate(dst, xs)
	}
}
