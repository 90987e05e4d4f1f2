// Command spline evaluates a one-dimensional spline given on the command line.
//
// Usage:
//
//	spline -x 0,1,2,3 -y 0,1,4,9 -at 0.5,1.5,2.5
//	spline -x 0,1,2,3 -y 0,1,4,9 -degree catmull-rom -from 0 -to 3 -samples 31
//	spline -x 0,1,2 -y 0,1,4 -m 0,2,4 -degree hermite -compare
//	spline -demo
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	spline "github.com/tphakala/go-spline"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Command-line flags
	var (
		xFlag       = flag.String("x", "", "Comma-separated knot x coordinates (non-decreasing)")
		yFlag       = flag.String("y", "", "Comma-separated knot values")
		mFlag       = flag.String("m", "", "Comma-separated knot tangents (required for hermite)")
		degreeFlag  = flag.String("degree", defaultDegree, "Kernel: step, linear, hermite, catmull-rom (or 0, 1, 10, 11)")
		atFlag      = flag.String("at", "", "Comma-separated query points (overrides -from/-to/-samples)")
		from        = flag.Float64(fromFlagName, 0, "Grid start (defaults to the first knot)")
		to          = flag.Float64(toFlagName, 0, "Grid end (defaults to the last knot)")
		samples     = flag.Int("samples", defaultSamples, "Number of grid points")
		interleaved = flag.Bool("interleaved", false, "Sample the grid as interleaved x/y pairs")
		compare     = flag.Bool("compare", false, "Report the deviation from gonum's equivalent interpolator")
		fast        = flag.Bool("fast", false, "Evaluate in float32 precision")
		demo        = flag.Bool("demo", false, "Run a demonstration")
	)
	flag.Parse()

	if *demo {
		return runDemo()
	}

	degree, err := spline.ParseDegree(*degreeFlag)
	if err != nil {
		return err
	}

	knots, err := parseKnots(*xFlag, *yFlag, *mFlag)
	if err != nil {
		return err
	}
	if len(knots.x) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s -x x0,x1,... -y y0,y1,... [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("no knots given")
	}

	at, err := parseFloatList(*atFlag)
	if err != nil {
		return fmt.Errorf("failed to parse -at: %w", err)
	}

	lo, hi := gridBounds(flag.CommandLine, knots, *from, *to)

	if *interleaved {
		var pairs []float64
		if *fast {
			pairs, err = interleavedGeneric[float32](knots, degree, lo, hi, *samples)
		} else {
			pairs, err = interleavedGeneric[float64](knots, degree, lo, hi, *samples)
		}
		if err != nil {
			return err
		}
		return printInterleaved(os.Stdout, pairs)
	}

	var xs, ys []float64
	if *fast {
		xs, ys, err = evaluateGeneric[float32](knots, degree, at, lo, hi, *samples)
	} else {
		xs, ys, err = evaluateGeneric[float64](knots, degree, at, lo, hi, *samples)
	}
	if err != nil {
		return err
	}

	if err := printResults(os.Stdout, xs, ys); err != nil {
		return err
	}

	if *compare {
		maxDev, compared, err := compareWithGonum(knots, degree, xs, ys)
		if err != nil {
			return err
		}
		fmt.Printf("\nCompared %d points with gonum/interp: max deviation %.3g\n", compared, maxDev)
	}

	return nil
}

func runDemo() error {
	fmt.Println("=== Go Spline Demo ===")

	dataSets := []struct {
		name string
		k    *knotSet
	}{
		{"Parabola y = x²", &knotSet{
			x: []float64{0, 1, 2, 3},
			y: []float64{0, 1, 4, 9},
			m: []float64{0, 2, 4, 6},
		}},
		{"Ramp", &knotSet{
			x: []float64{0, 1, 2, 3},
			y: []float64{0, 10, 10, 0},
			m: []float64{10, 0, 0, -10},
		}},
	}

	degrees := []spline.Degree{spline.Step, spline.Linear, spline.Hermite, spline.CatmullRom}

	for _, ds := range dataSets {
		fmt.Printf("\n%s\n", ds.name)
		fmt.Println("----------------------------")

		for _, d := range degrees {
			xs, ys, err := evaluateGeneric[float64](ds.k, d, nil, demoFrom, demoTo, demoSamples)
			if err != nil {
				return err
			}

			fmt.Printf("%-12s", d)
			for i := range xs {
				fmt.Printf(" %6.2f", ys[i])
			}
			fmt.Println()
		}

		fmt.Printf("%-12s", "x")
		xs, _, err := evaluateGeneric[float64](ds.k, spline.Linear, nil, demoFrom, demoTo, demoSamples)
		if err != nil {
			return err
		}
		for _, x := range xs {
			fmt.Printf(" %6.2f", x)
		}
		fmt.Println()
	}

	fmt.Println("\n=== Demo Complete ===")
	return nil
}
