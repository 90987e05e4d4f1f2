package spline

import (
	"fmt"
	"math"

	"github.com/tphakala/go-spline/internal/mathutil"
	"github.com/tphakala/go-spline/internal/simdops"
)

// Float is the type constraint for supported scalar types.
type Float = simdops.Float

// Spline evaluates a one-dimensional interpolant over caller-owned knots.
//
// The x, y and tangent slices are borrowed, not copied: they must stay
// valid and unmodified while the Spline is in use. Knot x values are
// expected to be non-decreasing; this is not checked on the evaluation
// path (see [Config.Validate] for a checked constructor).
//
// A Spline is not safe for concurrent use. Value records the last segment
// it used as a search hint; use [Spline.Clone] to give each goroutine its
// own evaluator over the same knots.
type Spline[F Float] struct {
	x, y, m []F
	degree  Degree
	length  int

	// cursor is the segment index of the last evaluation. It only decides
	// where the next search starts and never affects the result.
	cursor int
}

// New creates an evaluator with no bound knots.
// Points must be bound with SetPoints before calling Value.
func New[F Float]() *Spline[F] {
	return &Spline[F]{degree: Linear}
}

// NewWithPoints creates an evaluator over the first n knots of x and y
// using the given degree.
func NewWithPoints[F Float](x, y []F, n int, degree Degree) *Spline[F] {
	s := &Spline[F]{}
	s.SetPoints(x, y, n)
	s.SetDegree(degree)
	return s
}

// NewHermite creates an evaluator over the first n knots of x and y with
// tangents m. The degree is set to [Hermite].
func NewHermite[F Float](x, y, m []F, n int) *Spline[F] {
	s := &Spline[F]{}
	s.SetPointsWithTangents(x, y, m, n)
	s.SetDegree(Hermite)
	return s
}

// SetPoints rebinds the knots to the first n elements of x and y.
// Tangents and degree are left unchanged.
// It panics if n exceeds the length of either slice.
func (s *Spline[F]) SetPoints(x, y []F, n int) {
	s.x = x[:n]
	s.y = y[:n]
	s.length = n
}

// SetPointsWithTangents rebinds knots and tangents to the first n elements
// of x, y and m. Unlike [NewHermite] it does not change the degree; call
// SetDegree(Hermite) to use the tangents.
// It panics if n exceeds the length of any slice.
func (s *Spline[F]) SetPointsWithTangents(x, y, m []F, n int) {
	s.x = x[:n]
	s.y = y[:n]
	s.m = m[:n]
	s.length = n
}

// SetDegree selects the kernel used by subsequent evaluations.
func (s *Spline[F]) SetDegree(degree Degree) {
	s.degree = degree
}

// Degree returns the current kernel selection.
func (s *Spline[F]) Degree() Degree {
	return s.degree
}

// Len returns the number of bound knots.
func (s *Spline[F]) Len() int {
	return s.length
}

// Points returns the bound knot views. m is nil if no tangents were bound.
// The returned slices alias the caller's storage.
func (s *Spline[F]) Points() (x, y, m []F) {
	return s.x, s.y, s.m
}

// Reset moves the search cursor back to the first segment.
func (s *Spline[F]) Reset() {
	s.cursor = 0
}

// Clone returns an evaluator sharing the same knots, tangents and degree
// with its own search cursor.
func (s *Spline[F]) Clone() *Spline[F] {
	c := *s
	return &c
}

// Value returns the interpolated value at x.
//
// Queries below the first knot return the first y and queries above the
// last knot return the last y; there is no extrapolation. A query equal to
// a knot's x returns that knot's y exactly. A NaN query returns NaN.
//
// Value panics if no knot or segment matches an in-range x. That requires
// malformed knots, such as a NaN x coordinate.
func (s *Spline[F]) Value(x F) F {
	last := s.length - 1
	if x < s.x[0] {
		return s.y[0]
	}
	if x > s.x[last] {
		return s.y[last]
	}

	for k := range s.length {
		i := (k + s.cursor) % s.length

		if s.x[i] == x {
			s.cursor = i
			return s.y[i]
		}
		if i < last && s.x[i] < x && x < s.x[i+1] {
			s.cursor = i
			return s.calc(x, i)
		}
	}

	if math.IsNaN(float64(x)) {
		return x
	}
	panic(fmt.Sprintf("spline: no segment brackets x=%v (malformed knots)", x))
}

// calc evaluates the selected kernel on segment i, which brackets x.
func (s *Spline[F]) calc(x F, i int) F {
	switch s.degree {
	case Step:
		return s.y[i]

	case Linear:
		return mathutil.Lerp(x, s.x[i], s.x[i+1], s.y[i], s.y[i+1])

	case Hermite:
		t := (x - s.x[i]) / (s.x[i+1] - s.x[i])
		return mathutil.Hermite(t, s.y[i], s.y[i+1], s.m[i], s.m[i+1], s.x[i], s.x[i+1])

	case CatmullRom:
		// Edge segments lack an outer neighbour for the tangent, so they
		// hold the value of the adjacent interior knot.
		if i == 0 {
			return s.y[1]
		}
		if i == s.length-catmullEdgeOffset {
			return s.y[s.length-catmullEdgeOffset]
		}
		t := (x - s.x[i]) / (s.x[i+1] - s.x[i])
		return mathutil.Hermite(t, s.y[i], s.y[i+1], s.tangent(i), s.tangent(i+1), s.x[i], s.x[i+1])

	default:
		panic(fmt.Sprintf("spline: unsupported degree %v", s.degree))
	}
}

// tangent returns the Catmull-Rom tangent at interior knot i.
func (s *Spline[F]) tangent(i int) F {
	return mathutil.CatmullTangent(s.x[i-1], s.x[i+1], s.y[i-1], s.y[i+1])
}
