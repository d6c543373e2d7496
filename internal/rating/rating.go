// Package rating maps engagement signals onto the fixed [-10, 10] scale used
// by exported Rating nodes.
package rating

import "math"

// Bounds of the rating scale.
const (
	Worst = -10
	Best  = 10
)

// Variant names accepted in exporter profiles.
const (
	VariantLinearRescale = "linear_rescale"
	VariantSignedClamp   = "signed_clamp"
)

// Scale converts one record's engagement signal into a rating.
type Scale interface {
	Rate(signal int) int
}

// Bounds holds the batch-wide minimum and maximum engagement.
type Bounds struct {
	Min int
	Max int
}

// BoundsOf returns the min/max of values. An empty slice yields zero bounds.
func BoundsOf(values []int) Bounds {
	if len(values) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: values[0], Max: values[0]}
	for _, v := range values[1:] {
		b.Min = min(b.Min, v)
		b.Max = max(b.Max, v)
	}
	return b
}

// Linear remaps [Min, Max] linearly onto [Worst, Best].
type Linear struct {
	Bounds Bounds
}

// Rate implements Scale. A degenerate range (Min == Max) rates everything 0.
// Halfway values round to the nearest even integer.
func (l Linear) Rate(signal int) int {
	lo, hi := l.Bounds.Min, l.Bounds.Max
	if lo == hi {
		return 0
	}
	scaled := float64(Worst) + float64(signal-lo)*float64(Best-Worst)/float64(hi-lo)
	return Clamp(int(math.RoundToEven(scaled)))
}

// SignedClamp uses the signal as-is, clamped to the scale.
type SignedClamp struct{}

// Rate implements Scale.
func (SignedClamp) Rate(signal int) int {
	return Clamp(signal)
}

// Clamp limits v to [Worst, Best].
func Clamp(v int) int {
	return max(Worst, min(Best, v))
}

// ForVariant returns the Scale for a profile variant name; engagement values
// are only consulted by the linear variant. It reports false for unknown names.
func ForVariant(variant string, engagement []int) (Scale, bool) {
	switch variant {
	case VariantLinearRescale:
		return Linear{Bounds: BoundsOf(engagement)}, true
	case VariantSignedClamp:
		return SignedClamp{}, true
	default:
		return nil, false
	}
}
