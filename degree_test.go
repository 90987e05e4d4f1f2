package spline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDegree_NumericValues pins the values used in persisted configuration.
func TestDegree_NumericValues(t *testing.T) {
	assert.Equal(t, 0, int(Step))
	assert.Equal(t, 1, int(Linear))
	assert.Equal(t, 10, int(Hermite))
	assert.Equal(t, 11, int(CatmullRom))
}

func TestDegree_Valid(t *testing.T) {
	for _, d := range allDegrees {
		assert.True(t, d.Valid(), "%v", d)
	}
	for _, d := range []Degree{-1, 2, 9, 12, 100} {
		assert.False(t, d.Valid(), "%d", int(d))
	}
}

func TestDegree_String(t *testing.T) {
	assert.Equal(t, "step", Step.String())
	assert.Equal(t, "linear", Linear.String())
	assert.Equal(t, "hermite", Hermite.String())
	assert.Equal(t, "catmull-rom", CatmullRom.String())
	assert.Equal(t, "Degree(5)", Degree(5).String())
}

func TestParseDegree(t *testing.T) {
	tests := []struct {
		input    string
		expected Degree
	}{
		{"step", Step},
		{"nearest", Step},
		{"0", Step},
		{"linear", Linear},
		{"LINEAR", Linear},
		{" 1 ", Linear},
		{"hermite", Hermite},
		{"10", Hermite},
		{"catmull-rom", CatmullRom},
		{"catmull", CatmullRom},
		{"CatmullRom", CatmullRom},
		{"11", CatmullRom},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDegree(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseDegree_Invalid(t *testing.T) {
	for _, input := range []string{"", "cubic", "2", "-1", "12", "1.0"} {
		_, err := ParseDegree(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	}
}

func TestDegree_TextRoundTrip(t *testing.T) {
	type settings struct {
		Degree Degree `json:"degree"`
	}

	data, err := json.Marshal(settings{Degree: CatmullRom})
	require.NoError(t, err)
	assert.JSONEq(t, `{"degree":"catmull-rom"}`, string(data))

	var got settings
	require.NoError(t, json.Unmarshal([]byte(`{"degree":"10"}`), &got))
	assert.Equal(t, Hermite, got.Degree)

	err = json.Unmarshal([]byte(`{"degree":"bogus"}`), &got)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestDegree_MarshalInvalid(t *testing.T) {
	_, err := Degree(3).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
