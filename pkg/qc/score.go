// Package qc computes quality metrics for projected curves: the
// composite 0-100 score that drives source ranking, plus descriptive
// statistics and gap detection for whole-table quality reports.
package qc

import (
	"math"

	"github.com/petrolog/wellmerge/internal/stat"
	"github.com/petrolog/wellmerge/pkg/curves"
)

// Weights of the four score components.
const (
	coverageWeight = 40.0
	flatlineWeight = 20.0
	spikeWeight    = 20.0
	rangeWeight    = 20.0
)

// spikeMinPoints is the minimum number of valid points required before
// the spike component is evaluated.
const spikeMinPoints = 10

// Components breaks a composite quality score into its parts.
type Components struct {
	Coverage float64 // 0-40
	Flatline float64 // 0-20
	Spike    float64 // 0-20
	Range    float64 // 0-20
}

// Total returns the composite score, clamped to [0,100].
func (c Components) Total() float64 {
	return math.Min(100, math.Max(0, c.Coverage+c.Flatline+c.Spike+c.Range))
}

// Score computes the composite 0-100 quality score for one projected
// curve. curveType selects the expected physical range check; an
// unrecognized type scores the range component in full. A curve with no
// valid points scores exactly 0.
func Score(values []float64, curveType string) float64 {
	return ScoreComponents(values, curveType).Total()
}

// ScoreComponents computes the individual components of the composite
// score. Every component is evaluated over the valid (non-missing)
// points only.
func ScoreComponents(values []float64, curveType string) Components {
	valid := stat.Valid(values)
	if len(values) == 0 || len(valid) == 0 {
		return Components{}
	}

	return Components{
		Coverage: float64(len(valid)) / float64(len(values)) * coverageWeight,
		Flatline: flatlineScore(valid),
		Spike:    spikeScore(valid),
		Range:    rangeScore(valid, curveType),
	}
}

// flatlineScore penalizes runs of repeated values. Consecutive valid
// differences within tolerance of zero count as flat; the tolerance
// scales with the data range so coded or narrow-range curves are not
// over-penalized.
func flatlineScore(valid []float64) float64 {
	if len(valid) < 2 {
		return flatlineWeight
	}
	dataRange := stat.Max(valid) - stat.Min(valid)
	atol := math.Max(1e-6, dataRange*0.0001)

	flat := 0
	diffs := stat.Diffs(valid)
	for _, d := range diffs {
		if math.Abs(d) <= atol {
			flat++
		}
	}
	ratio := float64(flat) / float64(len(diffs))
	return (1 - ratio) * flatlineWeight
}

// spikeScore penalizes differences far beyond the 99th percentile of
// absolute consecutive differences. Only evaluated with more than 10
// valid points; otherwise full score.
func spikeScore(valid []float64) float64 {
	if len(valid) <= spikeMinPoints {
		return spikeWeight
	}
	diffs := stat.Diffs(valid)
	absDiffs := make([]float64, len(diffs))
	for i, d := range diffs {
		absDiffs[i] = math.Abs(d)
	}
	p99 := stat.Percentile(absDiffs, 99)

	spikes := 0
	for _, d := range absDiffs {
		if d > p99*3 {
			spikes++
		}
	}
	ratio := float64(spikes) / float64(len(absDiffs))
	return (1 - ratio) * spikeWeight
}

// rangeScore measures conformance to the expected physical range for
// the curve type, when one is known.
func rangeScore(valid []float64, curveType string) float64 {
	r, ok := curves.ExpectedRange(curveType)
	if !ok {
		return rangeWeight
	}
	inRange := 0
	for _, v := range valid {
		if v >= r.Min && v <= r.Max {
			inRange++
		}
	}
	return float64(inRange) / float64(len(valid)) * rangeWeight
}
