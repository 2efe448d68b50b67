package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBounds(t *testing.T) {
	values := []float64{5, 50, 10, 42}

	out := Normalize(values, false)
	require.Len(t, out, len(values))

	for _, v := range out {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
	// Minimum raw value maps to 0, maximum to 1.
	assert.Equal(t, 0.0, out[0])
	assert.Equal(t, 1.0, out[1])
}

func TestNormalizeReverse(t *testing.T) {
	out := Normalize([]float64{0.1, 0.9, 0.5}, true)
	require.Len(t, out, 3)

	// After inversion the smallest raw value is the strongest signal.
	assert.Equal(t, 1.0, out[0])
	assert.Equal(t, 0.0, out[1])
	assert.InDelta(t, 0.5, out[2], 1e-9)
}

func TestNormalizeDegenerate(t *testing.T) {
	out := Normalize([]float64{3, 3, 3}, false)
	require.Len(t, out, 3)
	for _, v := range out {
		assert.Equal(t, 0.5, v)
	}

	// Inverting a degenerate vector still yields the constant.
	out = Normalize([]float64{3, 3, 3}, true)
	for _, v := range out {
		assert.Equal(t, 0.5, v)
	}
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Nil(t, Normalize(nil, false))
	assert.Nil(t, Normalize([]float64{}, true))
}

func TestNormalizeSingleValue(t *testing.T) {
	out := Normalize([]float64{7}, false)
	require.Len(t, out, 1)
	assert.Equal(t, 0.5, out[0])
}
