package spline

import (
	"errors"
	"fmt"
	"math"
)

// Common errors returned by the spline package.
var (
	// ErrInvalidConfig indicates invalid knots or kernel selection.
	ErrInvalidConfig = errors.New("invalid spline configuration")

	// ErrInvalidSampleCount indicates a sampling grid with fewer than two points.
	ErrInvalidSampleCount = errors.New("sample count must be at least 2")
)

// Config describes a spline whose preconditions are checked up front.
//
// The slices are borrowed by the resulting [Spline] exactly as with
// [NewWithPoints]; Config does not copy them.
type Config[F Float] struct {
	// X holds the knot coordinates in non-decreasing order.
	X []F

	// Y holds the knot values. Must have the same length as X.
	Y []F

	// Tangents holds one slope per knot. Required for Hermite, optional
	// otherwise (it is still bound, so a later SetDegree(Hermite) works).
	Tangents []F

	// Degree selects the interpolation kernel.
	Degree Degree
}

// Validate checks if the configuration is valid.
func (c *Config[F]) Validate() error {
	if len(c.X) < MinPoints {
		return fmt.Errorf("%w: need at least %d knots, got %d", ErrInvalidConfig, MinPoints, len(c.X))
	}

	if len(c.X) != len(c.Y) {
		return fmt.Errorf("%w: x has %d values but y has %d", ErrInvalidConfig, len(c.X), len(c.Y))
	}

	if !c.Degree.Valid() {
		return fmt.Errorf("%w: unknown degree %d", ErrInvalidConfig, int(c.Degree))
	}

	if c.Degree == Hermite && len(c.Tangents) != len(c.X) {
		return fmt.Errorf("%w: hermite needs %d tangents, got %d", ErrInvalidConfig, len(c.X), len(c.Tangents))
	}

	if c.Tangents != nil && len(c.Tangents) != len(c.X) {
		return fmt.Errorf("%w: %d tangents for %d knots", ErrInvalidConfig, len(c.Tangents), len(c.X))
	}

	for i, x := range c.X {
		if math.IsNaN(float64(x)) {
			return fmt.Errorf("%w: x[%d] is NaN", ErrInvalidConfig, i)
		}
		if i > 0 && x < c.X[i-1] {
			return fmt.Errorf("%w: x not sorted at index %d (%v < %v)", ErrInvalidConfig, i, x, c.X[i-1])
		}
	}

	return nil
}

// NewFromConfig validates cfg and creates the corresponding spline.
func NewFromConfig[F Float](cfg *Config[F]) (*Spline[F], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := New[F]()
	n := len(cfg.X)
	if cfg.Tangents != nil {
		s.SetPointsWithTangents(cfg.X, cfg.Y, cfg.Tangents, n)
	} else {
		s.SetPoints(cfg.X, cfg.Y, n)
	}
	s.SetDegree(cfg.Degree)
	return s, nil
}
