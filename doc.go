// Package spline provides one-dimensional interpolation over sampled points
// in pure Go.
//
// A [Spline] borrows caller-owned knot slices (x, y and optionally tangents)
// and evaluates an interpolated value at any query x. It is generic over
// float32 and float64, and all kernel arithmetic runs in the instantiated
// precision.
//
// # Features
//
//   - Four kernels: [Step], [Linear], [Hermite] and [CatmullRom]
//   - Constant clamping outside the knot range (no extrapolation)
//   - Exact knot reproduction: querying a knot's x returns its y unchanged
//   - Locality-aware segment search that makes ascending sweeps O(1) amortized
//   - Batch evaluation and uniform sampling with SIMD interleaving via
//     github.com/tphakala/simd
//   - Zero-copy: knots are borrowed, not copied
//
// # Quick Start
//
// Evaluate a linear interpolant:
//
//	x := []float64{0, 1, 2}
//	y := []float64{0, 10, 0}
//	s := spline.NewWithPoints(x, y, len(x), spline.Linear)
//	v := s.Value(0.5) // 5
//
// Use supplied tangents with cubic Hermite interpolation:
//
//	m := []float64{0, 0, 0}
//	h := spline.NewHermite(x, y, m, len(x))
//	v = h.Value(0.5)
//
// For validated input, build from a [Config]:
//
//	s, err := spline.NewFromConfig(&spline.Config[float64]{
//	    X:      x,
//	    Y:      y,
//	    Degree: spline.CatmullRom,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Kernels
//
//   - [Step]: zero-order hold, the left knot's value across each segment.
//   - [Linear]: straight line between the segment's knots. Zero-width
//     segments return the left value.
//   - [Hermite]: cubic Hermite using the tangents bound with
//     [NewHermite] or [Spline.SetPointsWithTangents].
//   - [CatmullRom]: cubic Hermite with centered-difference tangents
//     computed from neighbouring knots. The first and last segments have no
//     outer neighbour and hold the adjacent interior knot's value.
//
// The numeric degree values (0, 1, 10, 11) are stable for use in
// serialized configuration; [Degree] also marshals to and from text.
//
// # Preconditions
//
// The evaluation path does not validate its inputs. Callers must supply at
// least two knots with non-decreasing x, and one tangent per knot for
// [Hermite]. Binding fewer elements than the requested count panics, and
// evaluating unsorted knots panics when no segment brackets the query.
// [NewFromConfig] checks every precondition and reports [ErrInvalidConfig].
//
// # Thread Safety
//
// A [Spline] is not safe for concurrent use: [Spline.Value] updates the
// search cursor on every call. The cursor never affects results, so
// evaluators can be cloned with [Spline.Clone] and used one per goroutine
// over the same read-only knots.
package spline
