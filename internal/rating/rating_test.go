package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoundsOf(t *testing.T) {
	assert.Equal(t, Bounds{}, BoundsOf(nil))
	assert.Equal(t, Bounds{Min: -3, Max: 12}, BoundsOf([]int{4, -3, 12, 0}))
	assert.Equal(t, Bounds{Min: 5, Max: 5}, BoundsOf([]int{5}))
}

func TestLinear_Rate(t *testing.T) {
	scale := Linear{Bounds: Bounds{Min: 2, Max: 42}}

	testCases := []struct {
		name     string
		signal   int
		expected int
	}{
		{name: "minimum maps to worst", signal: 2, expected: Worst},
		{name: "maximum maps to best", signal: 42, expected: Best},
		{name: "midpoint maps to zero", signal: 22, expected: 0},
		{name: "quarter", signal: 12, expected: -5},
		{name: "below range clamps", signal: -100, expected: Worst},
		{name: "above range clamps", signal: 1000, expected: Best},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, scale.Rate(tc.signal))
		})
	}
}

func TestLinear_DegenerateRange(t *testing.T) {
	for _, shared := range []int{0, 7, -4} {
		scale := Linear{Bounds: Bounds{Min: shared, Max: shared}}
		assert.Equal(t, 0, scale.Rate(shared))
		assert.Equal(t, 0, scale.Rate(shared+100))
	}
}

func TestLinear_RoundsHalfToEven(t *testing.T) {
	// Range of 40 gives half steps: signal 1 -> -9.5, signal 3 -> -8.5.
	scale := Linear{Bounds: Bounds{Min: 0, Max: 40}}
	assert.Equal(t, -10, scale.Rate(1))
	assert.Equal(t, -8, scale.Rate(3))
}

func TestSignedClamp_Rate(t *testing.T) {
	var scale SignedClamp
	assert.Equal(t, 3, scale.Rate(3))
	assert.Equal(t, -2, scale.Rate(-2))
	assert.Equal(t, Best, scale.Rate(57))
	assert.Equal(t, Worst, scale.Rate(-11))
}

func TestForVariant(t *testing.T) {
	scale, ok := ForVariant(VariantLinearRescale, []int{0, 10})
	require.True(t, ok)
	assert.Equal(t, Linear{Bounds: Bounds{Min: 0, Max: 10}}, scale)

	scale, ok = ForVariant(VariantSignedClamp, []int{0, 10})
	require.True(t, ok)
	assert.Equal(t, SignedClamp{}, scale)

	_, ok = ForVariant("log_scale", nil)
	assert.False(t, ok)
}
