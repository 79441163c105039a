// Package grid builds the master depth grid shared by the merged output
// and derives the adaptive interpolation gap limit from actual sample
// spacing.
package grid

import (
	"math"

	"github.com/petrolog/wellmerge/internal/stat"
	"github.com/petrolog/wellmerge/pkg/curves"
	"github.com/petrolog/wellmerge/pkg/errors"
)

// DefaultStep is the default depth step, in feet.
const DefaultStep = 0.5

// MinGapLimit is the floor for the adaptive gap limit, in feet.
const MinGapLimit = 5.0

// Grid is a fixed-step, strictly monotonic depth array spanning the
// union of all input depth ranges, rounded outward to step boundaries.
// Immutable once built.
type Grid struct {
	Min    float64
	Max    float64
	Step   float64
	Depths []float64
}

// NumPoints returns the number of grid points.
func (g *Grid) NumPoints() int {
	return len(g.Depths)
}

// Build computes the master grid from all normalized tables that contain
// at least one row. Returns a GridError wrapping ErrNoDepthData when no
// table contributes usable depth data.
func Build(tables []*curves.Table, step float64) (*Grid, error) {
	if step <= 0 {
		step = DefaultStep
	}

	globalMin := math.NaN()
	globalMax := math.NaN()
	for _, t := range tables {
		depths := t.Depths()
		if len(depths) == 0 {
			continue
		}
		lo, hi := stat.Min(depths), stat.Max(depths)
		if math.IsNaN(lo) || math.IsNaN(hi) {
			continue
		}
		if math.IsNaN(globalMin) || lo < globalMin {
			globalMin = lo
		}
		if math.IsNaN(globalMax) || hi > globalMax {
			globalMax = hi
		}
	}

	if math.IsNaN(globalMin) || math.IsNaN(globalMax) {
		return nil, errors.NewGridError("no table contains depth data", errors.ErrNoDepthData)
	}

	minDepth := math.Floor(globalMin/step) * step
	maxDepth := math.Ceil(globalMax/step) * step

	n := int(math.Round((maxDepth-minDepth)/step)) + 1
	depths := make([]float64, n)
	for i := range depths {
		depths[i] = minDepth + float64(i)*step
	}

	return &Grid{Min: minDepth, Max: maxDepth, Step: step, Depths: depths}, nil
}

// DeriveGapLimit computes the adaptive interpolation gap limit from the
// normalized tables: the larger of MinGapLimit and ten times the median
// of the per-table median depth steps. Tables with fewer than two rows
// contribute nothing; with no contributions the result is MinGapLimit.
func DeriveGapLimit(tables []*curves.Table) float64 {
	var medianSteps []float64
	for _, t := range tables {
		steps := stat.Diffs(t.Depths())
		if len(steps) > 0 {
			medianSteps = append(medianSteps, stat.Median(steps))
		}
	}
	if len(medianSteps) == 0 {
		return MinGapLimit
	}
	return math.Max(MinGapLimit, 10*stat.Median(medianSteps))
}
