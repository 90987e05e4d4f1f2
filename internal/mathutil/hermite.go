// Package mathutil provides the scalar kernels used by the spline evaluator.
//
// Every function is generic over [simdops.Float] and evaluates entirely in
// the instantiated precision, so float32 splines never round-trip through
// float64 arithmetic.
package mathutil

import "github.com/tphakala/go-spline/internal/simdops"

// H00 is the Hermite basis function weighting the start value: 2t³ - 3t² + 1.
func H00[F simdops.Float](t F) F {
	t2 := t * t
	return hermiteCubeCoeff2*t2*t - hermiteSquareCoeff3*t2 + 1
}

// H10 is the Hermite basis function weighting the start tangent: t³ - 2t² + t.
func H10[F simdops.Float](t F) F {
	t2 := t * t
	return t2*t - hermiteSquareCoeff2*t2 + t
}

// H01 is the Hermite basis function weighting the end value: 3t² - 2t³.
func H01[F simdops.Float](t F) F {
	t2 := t * t
	return hermiteSquareCoeff3*t2 - hermiteCubeCoeff2*t2*t
}

// H11 is the Hermite basis function weighting the end tangent: t³ - t².
func H11[F simdops.Float](t F) F {
	t2 := t * t
	return t2*t - t2
}

// Hermite evaluates the cubic Hermite polynomial on the segment [x0, x1]
// at normalized position t ∈ [0, 1]. p0 and p1 are the endpoint values,
// m0 and m1 the endpoint tangents in units of y per x; the tangents are
// scaled by the segment width before weighting.
func Hermite[F simdops.Float](t, p0, p1, m0, m1, x0, x1 F) F {
	w := x1 - x0
	return H00(t)*p0 + H10(t)*w*m0 + H01(t)*p1 + H11(t)*w*m1
}

// Lerp linearly blends y0 and y1 at position x on the segment [x0, x1].
// A zero-width segment returns y0.
func Lerp[F simdops.Float](x, x0, x1, y0, y1 F) F {
	if x0 == x1 {
		return y0
	}
	return y0 + (y1-y0)*(x-x0)/(x1-x0)
}

// CatmullTangent returns the centered finite-difference slope between the
// neighbours of a knot, (yNext - yPrev) / (xNext - xPrev).
// Coincident neighbour coordinates yield a zero tangent.
func CatmullTangent[F simdops.Float](xPrev, xNext, yPrev, yNext F) F {
	if xNext == xPrev {
		return 0
	}
	return (yNext - yPrev) / (xNext - xPrev)
}
