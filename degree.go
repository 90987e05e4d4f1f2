package spline

import (
	"fmt"
	"strconv"
	"strings"
)

// Degree selects the interpolation kernel used by a [Spline].
//
// The numeric values are stable and safe to persist in configuration.
type Degree int

const (
	// Step holds the left knot's value across the segment (zero-order hold).
	Step Degree = 0

	// Linear blends the two segment endpoints linearly.
	Linear Degree = 1

	// Hermite is cubic Hermite interpolation with caller-supplied tangents.
	Hermite Degree = 10

	// CatmullRom is cubic Hermite interpolation with tangents derived from
	// neighbouring knots (centered finite differences).
	CatmullRom Degree = 11
)

// Degree names used by String, MarshalText and ParseDegree.
const (
	stepName       = "step"
	linearName     = "linear"
	hermiteName    = "hermite"
	catmullRomName = "catmull-rom"
)

// Valid reports whether d names one of the supported kernels.
func (d Degree) Valid() bool {
	switch d {
	case Step, Linear, Hermite, CatmullRom:
		return true
	default:
		return false
	}
}

func (d Degree) String() string {
	switch d {
	case Step:
		return stepName
	case Linear:
		return linearName
	case Hermite:
		return hermiteName
	case CatmullRom:
		return catmullRomName
	default:
		return fmt.Sprintf("Degree(%d)", int(d))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Degree) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: unknown degree %d", ErrInvalidConfig, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Degree) UnmarshalText(text []byte) error {
	parsed, err := ParseDegree(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDegree parses a degree name ("step", "linear", "hermite",
// "catmull-rom") or its numeric code ("0", "1", "10", "11").
// Matching is case-insensitive; "nearest" and "catmull" are accepted as aliases.
func ParseDegree(s string) (Degree, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case stepName, "nearest":
		return Step, nil
	case linearName:
		return Linear, nil
	case hermiteName:
		return Hermite, nil
	case catmullRomName, "catmull", "catmullrom":
		return CatmullRom, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err == nil && Degree(n).Valid() {
		return Degree(n), nil
	}
	return 0, fmt.Errorf("%w: unknown degree %q", ErrInvalidConfig, s)
}
