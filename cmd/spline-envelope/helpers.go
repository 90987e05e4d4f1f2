package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	spline "github.com/tphakala/go-spline"
	"github.com/tphakala/go-spline/internal/simdops"
)

// Float constraint for generic processing.
type Float = spline.Float

// wavInputInfo holds validated input file information.
type wavInputInfo struct {
	file         *os.File
	decoder      *wav.Decoder
	rate         int
	channels     int
	bitDepth     int
	totalSamples int64
	format       *audio.Format
}

// parseEnvelope parses "time:gain" pairs separated by commas.
func parseEnvelope(s string) (times, gains []float64, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil, fmt.Errorf("empty envelope")
	}

	for i, pair := range strings.Split(s, pointSeparator) {
		tStr, gStr, ok := strings.Cut(strings.TrimSpace(pair), pairSeparator)
		if !ok {
			return nil, nil, fmt.Errorf("envelope point %d (%q) is not time:gain", i, pair)
		}
		t, err := strconv.ParseFloat(strings.TrimSpace(tStr), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("envelope point %d: invalid time: %w", i, err)
		}
		g, err := strconv.ParseFloat(strings.TrimSpace(gStr), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("envelope point %d: invalid gain: %w", i, err)
		}
		times = append(times, t)
		gains = append(gains, g)
	}
	return times, gains, nil
}

// newEnvelope creates a gain envelope over time in seconds.
func newEnvelope[F Float](times, gains []float64, degree spline.Degree) (*spline.Spline[F], error) {
	x := make([]F, len(times))
	y := make([]F, len(gains))
	for i := range times {
		x[i] = F(times[i])
	}
	for i := range gains {
		y[i] = F(gains[i])
	}

	s, err := spline.NewFromConfig(&spline.Config[F]{X: x, Y: y, Degree: degree})
	if err != nil {
		return nil, fmt.Errorf("invalid envelope: %w", err)
	}
	return s, nil
}

// openWAVInput opens and validates a WAV file, returning format information.
func openWAVInput(path string, verbose bool) (*wavInputInfo, error) {
	// Open input file
	inputFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}

	// Create WAV decoder
	decoder := wav.NewDecoder(inputFile)
	if !decoder.IsValidFile() {
		_ = inputFile.Close()
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	// Read format info
	format := decoder.Format()
	bitDepth := int(decoder.BitDepth)

	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit", format.SampleRate, format.NumChannels, bitDepth)
	}

	// Get total duration for progress reporting
	duration, err := decoder.Duration()
	if err != nil {
		duration = 0
	}
	totalSamples := int64(duration.Seconds() * float64(format.SampleRate))

	return &wavInputInfo{
		file:         inputFile,
		decoder:      decoder,
		rate:         format.SampleRate,
		channels:     format.NumChannels,
		bitDepth:     bitDepth,
		totalSamples: totalSamples,
		format:       format,
	}, nil
}

// Close closes the input file.
func (w *wavInputInfo) Close() error {
	return w.file.Close()
}

// wavOutputWriter wraps the output file and its WAV encoder.
type wavOutputWriter struct {
	file    *os.File
	encoder *wav.Encoder
	format  *audio.Format
}

// createWAVOutput creates output file and encoder.
func createWAVOutput(path string, sampleRate, bitDepth, channels int) (*wavOutputWriter, error) {
	outputFile, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &wavOutputWriter{
		file:    outputFile,
		encoder: wav.NewEncoder(outputFile, sampleRate, bitDepth, channels, wavFormatPCM),
		format:  &audio.Format{SampleRate: sampleRate, NumChannels: channels},
	}, nil
}

// WriteSamples writes interleaved samples to the output file.
func (w *wavOutputWriter) WriteSamples(samples []int, bitDepth int) error {
	return w.encoder.Write(&audio.IntBuffer{
		Format:         w.format,
		Data:           samples,
		SourceBitDepth: bitDepth,
	})
}

// Close finalizes the WAV header and closes the file.
func (w *wavOutputWriter) Close() error {
	if err := w.encoder.Close(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}

// envelopeBuffers holds preallocated per-chunk buffers.
type envelopeBuffers[F Float] struct {
	intBuffer *audio.IntBuffer
	samples   []F
	gains     []F
	invMaxVal F
	maxVal    float64
}

// newEnvelopeBuffers creates and preallocates all processing buffers.
func newEnvelopeBuffers[F Float](channels, bitDepth int, format *audio.Format) *envelopeBuffers[F] {
	maxVal := getMaxValue(bitDepth)
	return &envelopeBuffers[F]{
		intBuffer: &audio.IntBuffer{
			Data:   make([]int, bufferFrames*channels),
			Format: format,
		},
		samples:   make([]F, bufferFrames*channels),
		gains:     make([]F, bufferFrames),
		invMaxVal: F(1.0 / maxVal),
		maxVal:    maxVal,
	}
}

// applyEnvelope multiplies each frame of interleaved data in place by the
// envelope gain at the frame's time. startFrame is the index of the first
// frame in data. It returns the gains applied, one per frame.
func applyEnvelope[F Float](
	env *spline.Spline[F],
	data []int,
	channels, rate int,
	startFrame int64,
	buf *envelopeBuffers[F],
) []F {
	ops := simdops.For[F]()
	frames := len(data) / channels
	samples := buf.samples[:frames*channels]
	gains := buf.gains[:frames]

	// Normalize to [-1.0, 1.0]
	for i := range samples {
		samples[i] = F(data[i])
	}
	ops.Scale(samples, samples, buf.invMaxVal)

	// Frame times increase monotonically, so the envelope search stays O(1).
	invRate := 1.0 / float64(rate)
	for f := range frames {
		t := float64(startFrame+int64(f)) * invRate
		gains[f] = env.Value(F(t))
	}

	// Apply gain, clamp and denormalize. The scale stays in float64 because
	// float32 rounds the 32-bit maximum up past MaxInt32.
	for f := range frames {
		g := gains[f]
		base := f * channels
		for ch := range channels {
			s := samples[base+ch] * g
			if s > 1 {
				s = 1
			} else if s < -1 {
				s = -1
			}
			data[base+ch] = int(float64(s) * buf.maxVal)
		}
	}

	return gains
}

// getMaxValue returns the maximum sample value for the given bit depth.
func getMaxValue(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return maxInt16
	}
}

// envelopeStats summarizes a processed file.
type envelopeStats struct {
	rate        int
	channels    int
	bitDepth    int
	frames      int64
	averageGain float64
}

// progressTracker handles progress reporting.
type progressTracker struct {
	totalSamples int64
	lastProgress int
	verbose      bool
}

// newProgressTracker creates a new progress tracker.
func newProgressTracker(totalSamples int64, verbose bool) *progressTracker {
	return &progressTracker{
		totalSamples: totalSamples,
		verbose:      verbose,
	}
}

// reportIfNeeded reports progress if threshold crossed.
func (p *progressTracker) reportIfNeeded(currentSamples int64) {
	if !p.verbose || p.totalSamples == 0 {
		return
	}

	progress := int(float64(currentSamples) / float64(p.totalSamples) * percentScale)
	if progress >= p.lastProgress+progressInterval {
		log.Printf("Progress: %d%%", progress)
		p.lastProgress = progress
	}
}

// processWAV applies the envelope to inputPath and writes outputPath.
func processWAV[F Float](inputPath, outputPath string, times, gains []float64, degree spline.Degree, verbose bool) (stats *envelopeStats, err error) {
	env, err := newEnvelope[F](times, gains, degree)
	if err != nil {
		return nil, err
	}

	input, err := openWAVInput(inputPath, verbose)
	if err != nil {
		return nil, err
	}
	defer func() { _ = input.Close() }()

	if input.channels < 1 {
		return nil, fmt.Errorf("invalid channel count %d", input.channels)
	}

	output, err := createWAVOutput(outputPath, input.rate, input.bitDepth, input.channels)
	if err != nil {
		return nil, err
	}
	// Close output, capturing close errors on success path (important for WAV header updates)
	defer func() {
		if closeErr := output.Close(); err == nil {
			err = closeErr
		}
	}()

	buffers := newEnvelopeBuffers[F](input.channels, input.bitDepth, input.format)
	stats = &envelopeStats{
		rate:     input.rate,
		channels: input.channels,
		bitDepth: input.bitDepth,
	}
	progress := newProgressTracker(input.totalSamples, verbose)
	ops := simdops.For[F]()
	var gainSum float64

	for {
		n, err := input.decoder.PCMBuffer(buffers.intBuffer)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read audio data: %w", err)
		}
		if n == 0 {
			break
		}

		// Drop any trailing partial frame
		n -= n % input.channels
		data := buffers.intBuffer.Data[:n]

		applied := applyEnvelope(env, data, input.channels, input.rate, stats.frames, buffers)
		gainSum += float64(ops.Sum(applied))
		stats.frames += int64(len(applied))

		if err := output.WriteSamples(data, input.bitDepth); err != nil {
			return nil, fmt.Errorf("failed to write audio data: %w", err)
		}

		progress.reportIfNeeded(stats.frames)

		// Reset buffer
		buffers.intBuffer.Data = buffers.intBuffer.Data[:cap(buffers.intBuffer.Data)]
	}

	if stats.frames > 0 {
		stats.averageGain = gainSum / float64(stats.frames)
	}
	return stats, nil
}
