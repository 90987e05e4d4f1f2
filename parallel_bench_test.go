package spline

import (
	"math/rand/v2"
	"testing"
)

// BenchmarkValueAscending benchmarks an upward sweep, where the cursor keeps
// each search at O(1).
func BenchmarkValueAscending(b *testing.B) {
	benchmarkQueryOrder(b, false)
}

// BenchmarkValueScattered benchmarks random queries, the worst case for the
// cursor heuristic.
func BenchmarkValueScattered(b *testing.B) {
	benchmarkQueryOrder(b, true)
}

func benchmarkQueryOrder(b *testing.B, scattered bool) {
	b.Helper()

	const (
		knots   = 1024
		queries = 4096
	)

	x := make([]float64, knots)
	y := make([]float64, knots)
	for i := range knots {
		x[i] = float64(i)
		y[i] = float64(i % 7)
	}
	s := NewWithPoints(x, y, knots, Linear)

	xs := make([]float64, queries)
	for i := range xs {
		xs[i] = float64(i) * (knots - 1) / queries
	}
	if scattered {
		rng := rand.New(rand.NewPCG(1, 2))
		rng.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
	}

	dst := make([]float64, queries)
	b.ReportAllocs()
	for b.Loop() {
		dst = s.Evaluate(dst, xs)
	}
}
