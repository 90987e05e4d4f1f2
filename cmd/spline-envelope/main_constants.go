package main

const (
	// Buffer size for processing (frames per chunk)
	bufferFrames = 16384

	// Sample format constants
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	// Conversion constants
	maxInt16         = 32767.0
	maxInt24         = 8388607.0
	maxInt32         = 2147483647.0
	progressInterval = 10 // Print progress every N%
	percentScale     = 100

	// WAV audio format code for integer PCM
	wavFormatPCM = 1

	// CLI defaults
	defaultDegree   = "linear"
	minRequiredArgs = 2

	// Envelope syntax: "t0:g0,t1:g1,..."
	pointSeparator = ","
	pairSeparator  = ":"
)
