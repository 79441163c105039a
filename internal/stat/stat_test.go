package stat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/petrolog/wellmerge/internal/stat"
)

func TestMedian(t *testing.T) {
	nan := math.NaN()

	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"odd", []float64{3, 1, 2}, 2},
		{"even", []float64{1, 2, 3, 4}, 2.5},
		{"single", []float64{7}, 7},
		{"skips nan", []float64{nan, 1, nan, 3}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stat.Median(tt.values))
		})
	}

	assert.True(t, math.IsNaN(stat.Median(nil)))
	assert.True(t, math.IsNaN(stat.Median([]float64{nan})))
}

func TestPercentileLinearInterpolation(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}

	assert.Equal(t, 1.0, stat.Percentile(values, 0))
	assert.Equal(t, 5.0, stat.Percentile(values, 100))
	assert.Equal(t, 3.0, stat.Percentile(values, 50))
	// rank = 0.25*(5-1) = 1.0 exactly
	assert.Equal(t, 2.0, stat.Percentile(values, 25))
	// rank = 0.10*(5-1) = 0.4, between 1 and 2
	assert.InDelta(t, 1.4, stat.Percentile(values, 10), 1e-12)
}

func TestMeanStd(t *testing.T) {
	values := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 5.0, stat.Mean(values), 1e-12)
	// Sample standard deviation
	assert.InDelta(t, 2.13809, stat.Std(values), 1e-4)

	assert.True(t, math.IsNaN(stat.Std([]float64{1})))
}

func TestMinMax(t *testing.T) {
	nan := math.NaN()
	values := []float64{nan, 3, -1, 7, nan}
	assert.Equal(t, -1.0, stat.Min(values))
	assert.Equal(t, 7.0, stat.Max(values))
	assert.True(t, math.IsNaN(stat.Min(nil)))
}

func TestDiffsSkipMissing(t *testing.T) {
	nan := math.NaN()
	assert.Equal(t, []float64{1, 2}, stat.Diffs([]float64{1, 2, nan, 4}))
	assert.Nil(t, stat.Diffs([]float64{1}))
}
