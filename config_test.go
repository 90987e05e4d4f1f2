package spline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config[float64]
		wantErr string
	}{
		{
			name:   "valid linear",
			config: Config[float64]{X: []float64{0, 1}, Y: []float64{0, 1}, Degree: Linear},
		},
		{
			name:   "valid step with duplicate x",
			config: Config[float64]{X: []float64{0, 1, 1, 2}, Y: []float64{0, 1, 2, 3}, Degree: Step},
		},
		{
			name: "valid hermite",
			config: Config[float64]{
				X: []float64{0, 1}, Y: []float64{0, 1}, Tangents: []float64{1, 1}, Degree: Hermite,
			},
		},
		{
			name:    "too few knots",
			config:  Config[float64]{X: []float64{0}, Y: []float64{0}, Degree: Linear},
			wantErr: "need at least 2 knots",
		},
		{
			name:    "length mismatch",
			config:  Config[float64]{X: []float64{0, 1, 2}, Y: []float64{0, 1}, Degree: Linear},
			wantErr: "x has 3 values but y has 2",
		},
		{
			name:    "unknown degree",
			config:  Config[float64]{X: []float64{0, 1}, Y: []float64{0, 1}, Degree: 4},
			wantErr: "unknown degree 4",
		},
		{
			name:    "hermite without tangents",
			config:  Config[float64]{X: []float64{0, 1}, Y: []float64{0, 1}, Degree: Hermite},
			wantErr: "hermite needs 2 tangents, got 0",
		},
		{
			name: "tangent count mismatch",
			config: Config[float64]{
				X: []float64{0, 1}, Y: []float64{0, 1}, Tangents: []float64{1}, Degree: CatmullRom,
			},
			wantErr: "1 tangents for 2 knots",
		},
		{
			name:    "unsorted",
			config:  Config[float64]{X: []float64{0, 2, 1}, Y: []float64{0, 1, 2}, Degree: Linear},
			wantErr: "x not sorted at index 2",
		},
		{
			name:    "NaN knot",
			config:  Config[float64]{X: []float64{0, math.NaN()}, Y: []float64{0, 1}, Degree: Linear},
			wantErr: "x[1] is NaN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewFromConfig(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{0, 1, 4, 9}

	s, err := NewFromConfig(&Config[float64]{X: x, Y: y, Degree: CatmullRom})
	require.NoError(t, err)
	assert.Equal(t, CatmullRom, s.Degree())
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 4.0, s.tangent(2))

	gx, _, gm := s.Points()
	assert.Same(t, &x[0], &gx[0], "config slices are borrowed")
	assert.Nil(t, gm)
}

func TestNewFromConfig_BindsTangents(t *testing.T) {
	cfg := &Config[float32]{
		X:        []float32{0, 1, 2},
		Y:        []float32{0, 1, 4},
		Tangents: []float32{0, 2, 4},
		Degree:   Linear,
	}
	s, err := NewFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, Linear, s.Degree())
	assert.Equal(t, float32(2.5), s.Value(1.5))

	s.SetDegree(Hermite)
	assert.InDelta(t, 2.25, float64(s.Value(1.5)), 1e-6)
}

func TestNewFromConfig_Invalid(t *testing.T) {
	s, err := NewFromConfig(&Config[float64]{X: []float64{1}, Y: []float64{1}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, s)
}
