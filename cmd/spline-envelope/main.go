// Command spline-envelope applies a spline-shaped gain envelope to a WAV file.
//
// Envelope points are given as time:gain pairs, with time in seconds. The
// gain before the first point and after the last point is held constant.
//
// Usage:
//
//	spline-envelope -points "0:0,0.5:1,2:1,3:0" input.wav output.wav
//	spline-envelope -points "0:0,1:1,2:1,3:0" -degree catmull-rom input.wav output.wav
//	spline-envelope -points "0:1,10:0.25" -fast -v input.wav output.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

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
		pointsFlag = flag.String("points", "", "Envelope as comma-separated time:gain pairs (seconds, non-decreasing)")
		degreeFlag = flag.String("degree", defaultDegree, "Kernel: step, linear, catmull-rom (or 0, 1, 11)")
		fast       = flag.Bool("fast", false, "Process in float32 precision")
		verbose    = flag.Bool("v", false, "Verbose output")
	)
	flag.Parse()

	if flag.NArg() < minRequiredArgs || *pointsFlag == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -points t:g,... [options] input.wav output.wav\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		return fmt.Errorf("missing envelope or input/output files")
	}

	inputPath := flag.Arg(0)
	outputPath := flag.Arg(1)

	degree, err := spline.ParseDegree(*degreeFlag)
	if err != nil {
		return err
	}
	if degree == spline.Hermite {
		return fmt.Errorf("degree %v needs explicit tangents, which envelopes do not carry", degree)
	}

	times, gains, err := parseEnvelope(*pointsFlag)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Envelope: %d points, degree %v", len(times), degree)
		if *fast {
			log.Printf("Precision: float32")
		}
	}

	start := time.Now()

	var stats *envelopeStats
	if *fast {
		stats, err = processWAV[float32](inputPath, outputPath, times, gains, degree, *verbose)
	} else {
		stats, err = processWAV[float64](inputPath, outputPath, times, gains, degree, *verbose)
	}
	if err != nil {
		return err
	}

	if *verbose {
		elapsed := time.Since(start)
		duration := float64(stats.frames) / float64(stats.rate)
		log.Printf("Processed %d frames (%.2fs of audio) in %v", stats.frames, duration, elapsed)
		log.Printf("Average gain: %.4f", stats.averageGain)
	}

	return nil
}
