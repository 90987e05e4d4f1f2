package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	spline "github.com/tphakala/go-spline"
)

// Float constraint for generic evaluation.
type Float interface {
	float32 | float64
}

// errNoReference is returned when gonum has no equivalent of a kernel.
var errNoReference = errors.New("no gonum reference for degree")

// knotSet holds the parsed command-line knots.
type knotSet struct {
	x, y, m []float64
}

// parseFloatList parses a comma-separated list of numbers.
// An empty string yields a nil slice.
func parseFloatList(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, listSeparator)
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q at position %d: %w", f, i, err)
		}
		values[i] = v
	}
	return values, nil
}

// parseKnots parses the -x, -y and -m flag values.
func parseKnots(xFlag, yFlag, mFlag string) (*knotSet, error) {
	x, err := parseFloatList(xFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to parse -x: %w", err)
	}
	y, err := parseFloatList(yFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to parse -y: %w", err)
	}
	m, err := parseFloatList(mFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to parse -m: %w", err)
	}
	return &knotSet{x: x, y: y, m: m}, nil
}

// gridBounds returns the sampling range. Each end defaults to the matching
// outer knot unless its flag (-from or -to) was set explicitly in fs.
func gridBounds(fs *flag.FlagSet, k *knotSet, from, to float64) (lo, hi float64) {
	lo, hi = k.x[0], k.x[len(k.x)-1]
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case fromFlagName:
			lo = from
		case toFlagName:
			hi = to
		}
	})
	return lo, hi
}

// convertSlice converts float64 values to F.
func convertSlice[F Float](in []float64) []F {
	if in == nil {
		return nil
	}
	out := make([]F, len(in))
	for i, v := range in {
		out[i] = F(v)
	}
	return out
}

// widenSlice converts F values to float64.
func widenSlice[F Float](in []F) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[i] = float64(v)
	}
	return out
}

// buildSpline creates a validated spline over the knots in precision F.
func buildSpline[F Float](k *knotSet, degree spline.Degree) (*spline.Spline[F], error) {
	s, err := spline.NewFromConfig(&spline.Config[F]{
		X:        convertSlice[F](k.x),
		Y:        convertSlice[F](k.y),
		Tangents: convertSlice[F](k.m),
		Degree:   degree,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create spline: %w", err)
	}
	return s, nil
}

// evaluateGeneric evaluates the spline in precision F, either at the given
// query points or on a uniform grid over [from, to].
func evaluateGeneric[F Float](k *knotSet, degree spline.Degree, at []float64, from, to float64, samples int) (xs, ys []float64, err error) {
	s, err := buildSpline[F](k, degree)
	if err != nil {
		return nil, nil, err
	}

	if len(at) >= minQueryPoints {
		return at, widenSlice(s.Evaluate(nil, convertSlice[F](at))), nil
	}

	gx, gy, err := s.Sample(F(from), F(to), samples)
	if err != nil {
		return nil, nil, err
	}
	return widenSlice(gx), widenSlice(gy), nil
}

// interleavedGeneric samples the spline in precision F as interleaved pairs.
func interleavedGeneric[F Float](k *knotSet, degree spline.Degree, from, to float64, samples int) ([]float64, error) {
	s, err := buildSpline[F](k, degree)
	if err != nil {
		return nil, err
	}
	pairs, err := s.SampleInterleaved(F(from), F(to), samples)
	if err != nil {
		return nil, err
	}
	return widenSlice(pairs), nil
}

// referencePredictor returns a gonum interpolator equivalent to degree on
// the knots, and the x range over which the two are expected to agree.
func referencePredictor(k *knotSet, degree spline.Degree) (interp.Predictor, float64, float64, error) {
	n := len(k.x)
	if n < spline.MinPoints || len(k.y) != n {
		return nil, 0, 0, fmt.Errorf("gonum reference needs at least %d matching x/y values", spline.MinPoints)
	}
	for i := 1; i < n; i++ {
		if k.x[i] <= k.x[i-1] {
			return nil, 0, 0, fmt.Errorf("gonum reference requires strictly increasing x (index %d)", i)
		}
	}

	switch degree {
	case spline.Linear:
		var pl interp.PiecewiseLinear
		if err := pl.Fit(k.x, k.y); err != nil {
			return nil, 0, 0, fmt.Errorf("failed to fit reference: %w", err)
		}
		return &pl, math.Inf(-1), math.Inf(1), nil

	case spline.Hermite:
		if len(k.m) != n {
			return nil, 0, 0, fmt.Errorf("hermite reference needs %d tangents, got %d", n, len(k.m))
		}
		var pc interp.PiecewiseCubic
		pc.FitWithDerivatives(k.x, k.y, k.m)
		return &pc, math.Inf(-1), math.Inf(1), nil

	case spline.CatmullRom:
		// The edge segments hold a constant, so only interior segments
		// have a cubic counterpart.
		m := make([]float64, n)
		for i := 1; i < n-1; i++ {
			m[i] = (k.y[i+1] - k.y[i-1]) / (k.x[i+1] - k.x[i-1])
		}
		var pc interp.PiecewiseCubic
		pc.FitWithDerivatives(k.x, k.y, m)
		if n < minCatmullKnots {
			return &pc, k.x[1], k.x[1], nil
		}
		return &pc, k.x[1], k.x[n-2], nil

	default:
		return nil, 0, 0, fmt.Errorf("%w %v", errNoReference, degree)
	}
}

// compareWithGonum returns the maximum absolute deviation between ys and the
// gonum reference at xs, and the number of points compared.
func compareWithGonum(k *knotSet, degree spline.Degree, xs, ys []float64) (maxDev float64, compared int, err error) {
	ref, lo, hi, err := referencePredictor(k, degree)
	if err != nil {
		return 0, 0, err
	}

	var got, want []float64
	for i, x := range xs {
		if x < lo || x > hi {
			continue
		}
		got = append(got, ys[i])
		want = append(want, ref.Predict(x))
	}
	if len(got) == 0 {
		return 0, 0, nil
	}
	return floats.Distance(got, want, math.Inf(1)), len(got), nil
}

// printResults writes one "x y" line per point.
func printResults(w io.Writer, xs, ys []float64) error {
	for i := range xs {
		if _, err := fmt.Fprintf(w, "%.*f\t%.*f\n", valuePrecision, xs[i], valuePrecision, ys[i]); err != nil {
			return err
		}
	}
	return nil
}

// printInterleaved writes interleaved [x0, y0, x1, y1, ...] pairs.
func printInterleaved(w io.Writer, pairs []float64) error {
	for i := 0; i+1 < len(pairs); i += pairStride {
		if _, err := fmt.Fprintf(w, "%.*f\t%.*f\n", valuePrecision, pairs[i], valuePrecision, pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}
