package spline

// Knot count limits
const (
	// MinPoints is the smallest knot count that defines a segment.
	MinPoints = 2

	// minSampleCount is the smallest grid Sample can span [x0, x1] with.
	minSampleCount = 2
)

// Kernel constants
const (
	// catmullEdgeOffset locates the last segment (n-2) and the last
	// interior knot it holds.
	catmullEdgeOffset = 2

	// interleaveStride is the number of values per (x, y) pair.
	interleaveStride = 2
)
