package spline

import (
	"gonum.org/v1/gonum/floats"

	"github.com/tphakala/go-spline/internal/simdops"
)

// Interpolator is the evaluation surface shared by spline kernels.
type Interpolator[F Float] interface {
	// Value returns the interpolated value at x.
	Value(x F) F

	// Evaluate evaluates the interpolant at every element of xs.
	Evaluate(dst, xs []F) []F
}

var (
	_ Interpolator[float32] = (*Spline[float32])(nil)
	_ Interpolator[float64] = (*Spline[float64])(nil)
)

// Evaluate computes Value for every element of xs. The results are written
// to dst if it has room for len(xs) values and to a new slice otherwise;
// the filled slice is returned either way.
//
// Ascending xs keep the search cursor next to the answer, making each
// lookup O(1) amortized.
func (s *Spline[F]) Evaluate(dst, xs []F) []F {
	if len(dst) < len(xs) {
		dst = make([]F, len(xs))
	}
	dst = dst[:len(xs)]
	for i, x := range xs {
		dst[i] = s.Value(x)
	}
	return dst
}

// Sample evaluates the spline on n evenly spaced points spanning [x0, x1],
// both ends included. It returns the grid and the values on it.
func (s *Spline[F]) Sample(x0, x1 F, n int) (xs, ys []F, err error) {
	if n < minSampleCount {
		return nil, nil, ErrInvalidSampleCount
	}

	// The grid is spanned in float64 so float32 grids land on the same
	// points as float64 ones up to the final rounding.
	grid := floats.Span(make([]float64, n), float64(x0), float64(x1))
	xs = make([]F, n)
	for i, g := range grid {
		xs[i] = F(g)
	}

	return xs, s.Evaluate(nil, xs), nil
}

// SampleInterleaved is like Sample but returns the grid and values as
// interleaved pairs: [x0, y0, x1, y1, ...].
func (s *Spline[F]) SampleInterleaved(x0, x1 F, n int) ([]F, error) {
	xs, ys, err := s.Sample(x0, x1, n)
	if err != nil {
		return nil, err
	}

	out := make([]F, n*interleaveStride)
	simdops.For[F]().Interleave2(out, xs, ys)
	return out, nil
}
