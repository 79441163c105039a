// Package stat provides the small set of order statistics the merge
// engine relies on. All functions skip NaN inputs, matching the
// NaN-as-missing convention used throughout the curve tables.
package stat

import (
	"math"
	"sort"
)

// Valid returns the non-NaN values of the input, in order.
func Valid(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// Median returns the median of the non-NaN values, or NaN when there are
// none.
func Median(values []float64) float64 {
	valid := Valid(values)
	if len(valid) == 0 {
		return math.NaN()
	}
	sort.Float64s(valid)
	mid := len(valid) / 2
	if len(valid)%2 == 1 {
		return valid[mid]
	}
	return (valid[mid-1] + valid[mid]) / 2
}

// Percentile returns the p-th percentile (0-100) of the non-NaN values
// using linear interpolation between closest ranks. Returns NaN when
// there are no valid values.
func Percentile(values []float64, p float64) float64 {
	valid := Valid(values)
	if len(valid) == 0 {
		return math.NaN()
	}
	sort.Float64s(valid)
	if len(valid) == 1 {
		return valid[0]
	}
	rank := p / 100 * float64(len(valid)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return valid[lo]
	}
	frac := rank - float64(lo)
	return valid[lo]*(1-frac) + valid[hi]*frac
}

// Mean returns the arithmetic mean of the non-NaN values, or NaN when
// there are none.
func Mean(values []float64) float64 {
	valid := Valid(values)
	if len(valid) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range valid {
		sum += v
	}
	return sum / float64(len(valid))
}

// Std returns the sample standard deviation of the non-NaN values, or
// NaN when fewer than two are present.
func Std(values []float64) float64 {
	valid := Valid(values)
	if len(valid) < 2 {
		return math.NaN()
	}
	mean := Mean(valid)
	sum := 0.0
	for _, v := range valid {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(valid)-1))
}

// Min returns the smallest non-NaN value, or NaN when there are none.
func Min(values []float64) float64 {
	out := math.NaN()
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(out) || v < out {
			out = v
		}
	}
	return out
}

// Max returns the largest non-NaN value, or NaN when there are none.
func Max(values []float64) float64 {
	out := math.NaN()
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(out) || v > out {
			out = v
		}
	}
	return out
}

// Diffs returns the consecutive differences of the non-NaN values.
func Diffs(values []float64) []float64 {
	valid := Valid(values)
	if len(valid) < 2 {
		return nil
	}
	out := make([]float64, len(valid)-1)
	for i := 1; i < len(valid); i++ {
		out[i-1] = valid[i] - valid[i-1]
	}
	return out
}
