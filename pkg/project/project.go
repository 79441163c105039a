// Package project resamples normalized curve tables onto the master
// depth grid. Continuous curves are interpolated linearly under a gap
// limit; discrete curves are assigned by nearest neighbor and never
// interpolated.
package project

import (
	"math"
	"sort"

	"github.com/petrolog/wellmerge/pkg/curves"
	"github.com/petrolog/wellmerge/pkg/grid"
)

// DiscreteMaxDistance returns the maximum allowed distance between a
// grid point and the nearest raw sample for a discrete curve: the
// larger of 1.0 and twice the grid step.
func DiscreteMaxDistance(step float64) float64 {
	return math.Max(1.0, 2*step)
}

// Table projects every curve of a normalized table onto the master grid.
// The output table holds the grid as its depth column plus one aligned
// column per input curve.
func Table(t *curves.Table, g *grid.Grid, gapLimit, step float64) *curves.Table {
	out := curves.NewTable()
	gridDepths := make([]float64, len(g.Depths))
	copy(gridDepths, g.Depths)
	_ = out.SetColumn(curves.DepthColumn, gridDepths)

	depths := t.Depths()
	if depths == nil {
		return out
	}

	maxDist := DiscreteMaxDistance(step)

	for _, name := range t.CurveNames() {
		col, _ := t.Column(name)
		x, y := validSamples(depths, col)

		var projected []float64
		switch {
		case len(x) == 0:
			projected = missingColumn(len(g.Depths))
		case curves.IsDiscrete(name):
			projected = nearestNeighbor(g.Depths, x, y, maxDist)
		default:
			projected = linearWithGapLimit(g.Depths, x, y, gapLimit)
		}
		_ = out.SetColumn(name, projected)
	}
	return out
}

// validSamples extracts the (depth, value) pairs where the value is
// present, preserving depth order.
func validSamples(depths, values []float64) (x, y []float64) {
	for i, v := range values {
		if !curves.Missing(v) && !curves.Missing(depths[i]) {
			x = append(x, depths[i])
			y = append(y, v)
		}
	}
	return x, y
}

// linearWithGapLimit performs piecewise-linear interpolation of the raw
// samples (x, y) onto the target depths. A grid point between two raw
// samples is filled only when the bracket spans at most gapLimit; a grid
// point outside the raw span takes the edge value when it lies within
// gapLimit of that edge. A bracket wider than gapLimit leaves every grid
// point inside it missing.
func linearWithGapLimit(targets, x, y []float64, gapLimit float64) []float64 {
	result := missingColumn(len(targets))

	for i, xi := range targets {
		right := sort.SearchFloat64s(x, xi)
		switch {
		case right == 0:
			// Before the first sample
			if math.Abs(xi-x[0]) <= gapLimit {
				result[i] = y[0]
			}
		case right >= len(x):
			// After the last sample
			if math.Abs(xi-x[len(x)-1]) <= gapLimit {
				result[i] = y[len(y)-1]
			}
		default:
			left := right - 1
			if x[right]-x[left] <= gapLimit {
				t := (xi - x[left]) / (x[right] - x[left])
				result[i] = y[left]*(1-t) + y[right]*t
			}
		}
	}
	return result
}

// nearestNeighbor assigns each target depth the value of the closest raw
// sample, leaving the point missing when the closest sample is farther
// than maxDist. Output values are always exact copies of raw samples.
func nearestNeighbor(targets, x, y []float64, maxDist float64) []float64 {
	result := missingColumn(len(targets))

	for i, xi := range targets {
		best := 0
		bestDist := math.Abs(x[0] - xi)
		for j := 1; j < len(x); j++ {
			if d := math.Abs(x[j] - xi); d < bestDist {
				best = j
				bestDist = d
			}
		}
		if bestDist <= maxDist {
			result[i] = y[best]
		}
	}
	return result
}

func missingColumn(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
