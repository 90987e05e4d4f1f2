package spline

import (
	"math"
	"sync"
	"testing"
)

// TestCloneParallel tests that per-goroutine clones over shared knots produce
// the same results as a single sequential evaluator.
func TestCloneParallel(t *testing.T) {
	const (
		knots      = 64
		goroutines = 8
		queries    = 2000
	)

	x := make([]float64, knots)
	y := make([]float64, knots)
	for i := range knots {
		x[i] = float64(i) * 0.25
		y[i] = math.Sin(x[i])
	}
	base := NewWithPoints(x, y, knots, CatmullRom)

	xs := make([]float64, queries)
	for i := range xs {
		// Scattered queries so each clone's cursor wanders.
		xs[i] = math.Mod(float64(i)*7.31, x[knots-1]+1) - 0.5
	}
	want := base.Clone().Evaluate(nil, xs)

	results := make([][]float64, goroutines)
	var wg sync.WaitGroup
	for g := range goroutines {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = base.Clone().Evaluate(nil, xs)
		}(g)
	}
	wg.Wait()

	for g, got := range results {
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("goroutine %d: x=%v got %v, want %v", g, xs[i], got[i], want[i])
			}
		}
	}
}
