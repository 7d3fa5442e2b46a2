package motion

import (
	"errors"
	"fmt"
)

var (
	ErrNoStops        = errors.New("keyframes need at least one stop")
	ErrLengthMismatch = errors.New("keyframe stops and values differ in length")
	ErrUnorderedStops = errors.New("keyframe stops must increase")
)

// Keyframes is a piecewise-linear curve. Inputs before the first stop hold
// the first value and inputs past the last stop hold the last value.
type Keyframes struct {
	stops  []float64
	values []float64
}

// NewKeyframes validates and builds a curve.
func NewKeyframes(stops, values []float64) (Keyframes, error) {
	if len(stops) == 0 {
		return Keyframes{}, ErrNoStops
	}
	if len(stops) != len(values) {
		return Keyframes{}, fmt.Errorf("%w: %d stops, %d values", ErrLengthMismatch, len(stops), len(values))
	}
	for i := 1; i < len(stops); i++ {
		if stops[i] <= stops[i-1] {
			return Keyframes{}, fmt.Errorf("%w: stop %d (%g) after %g", ErrUnorderedStops, i, stops[i], stops[i-1])
		}
	}
	return Keyframes{
		stops:  append([]float64(nil), stops...),
		values: append([]float64(nil), values...),
	}, nil
}

// MustKeyframes is NewKeyframes for curves fixed at compile time.
func MustKeyframes(stops, values []float64) Keyframes {
	k, err := NewKeyframes(stops, values)
	if err != nil {
		panic(err)
	}
	return k
}

// At evaluates the curve at t.
func (k Keyframes) At(t float64) float64 {
	n := len(k.stops)
	if n == 0 {
		return 0
	}
	if t <= k.stops[0] {
		return k.values[0]
	}
	if t >= k.stops[n-1] {
		return k.values[n-1]
	}
	for i := 1; i < n; i++ {
		if t < k.stops[i] {
			span := k.stops[i] - k.stops[i-1]
			return Lerp(k.values[i-1], k.values[i], (t-k.stops[i-1])/span)
		}
	}
	return k.values[n-1]
}

// Last returns the terminal value of the curve.
func (k Keyframes) Last() float64 {
	if len(k.values) == 0 {
		return 0
	}
	return k.values[len(k.values)-1]
}

// Lerp interpolates between a and b; t=0 gives a, t=1 gives b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 limits v to [0, 1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
