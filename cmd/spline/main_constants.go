package main

// Default command-line flag values
const (
	defaultDegree  = "linear"
	defaultSamples = 11 // Grid points when -at is not given

	fromFlagName = "from"
	toFlagName   = "to"
)

// Output formatting
const (
	valuePrecision = 6 // Decimal places for printed values
	listSeparator  = ","
)

// Demo data sets
const (
	demoSamples = 9
	demoFrom    = -0.5
	demoTo      = 3.5
)

// Command-line argument limits
const (
	minQueryPoints = 1
	pairStride     = 2 // Values per (x, y) pair in interleaved output

	// Smallest knot count with an interior Catmull-Rom segment
	minCatmullKnots = 4
)
