package qc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrolog/wellmerge/pkg/curves"
	"github.com/petrolog/wellmerge/pkg/qc"
)

func TestDescribe(t *testing.T) {
	nan := math.NaN()
	values := []float64{10, 20, 30, 40, nan}

	s := qc.Describe("GR", values)

	assert.Equal(t, "GR", s.Mnemonic)
	assert.Equal(t, 5, s.TotalPoints)
	assert.Equal(t, 4, s.ValidPoints)
	assert.Equal(t, 1, s.NullCount)
	assert.Equal(t, 20.0, s.NullPercentage)
	assert.Equal(t, 10.0, s.Min)
	assert.Equal(t, 40.0, s.Max)
	assert.Equal(t, 25.0, s.Mean)
	assert.Equal(t, 25.0, s.Median)
	assert.Equal(t, 0, s.OutlierCount)
	// 100 - 20*0.5 null penalty
	assert.Equal(t, 90.0, s.QualityScore)
}

func TestDescribeAllMissing(t *testing.T) {
	nan := math.NaN()
	s := qc.Describe("RHOB", []float64{nan, nan})

	assert.Equal(t, 0, s.ValidPoints)
	assert.Equal(t, 100.0, s.NullPercentage)
	assert.True(t, math.IsNaN(s.Mean))
	// Null penalty caps at 40 points.
	assert.Equal(t, 60.0, s.QualityScore)
}

func TestDescribeOutliers(t *testing.T) {
	values := make([]float64, 21)
	for i := range values {
		values[i] = 50
	}
	values[20] = 5000

	s := qc.Describe("GR", values)
	assert.Equal(t, 1, s.OutlierCount)
	assert.Less(t, s.QualityScore, 100.0)
}

func TestGaps(t *testing.T) {
	nan := math.NaN()
	depths := []float64{100, 101, 102, 103, 104, 105, 106}

	t.Run("interior gap", func(t *testing.T) {
		values := []float64{1, nan, nan, nan, 1, 1, 1}
		gaps := qc.Gaps(depths, values, 2)
		require.Len(t, gaps, 1)
		assert.Equal(t, 101.0, gaps[0].Start)
		assert.Equal(t, 103.0, gaps[0].End)
	})

	t.Run("below threshold", func(t *testing.T) {
		values := []float64{1, nan, 1, 1, 1, 1, 1}
		assert.Empty(t, qc.Gaps(depths, values, 2))
	})

	t.Run("trailing gap", func(t *testing.T) {
		values := []float64{1, 1, 1, 1, 1, nan, nan}
		gaps := qc.Gaps(depths, values, 2)
		require.Len(t, gaps, 1)
		assert.Equal(t, 105.0, gaps[0].Start)
		assert.Equal(t, 106.0, gaps[0].End)
	})

	t.Run("length mismatch", func(t *testing.T) {
		assert.Nil(t, qc.Gaps(depths, []float64{1, 2}, 1))
	})
}

func TestSummarize(t *testing.T) {
	nan := math.NaN()
	tbl := curves.NewTable()
	require.NoError(t, tbl.SetColumn(curves.DepthColumn, []float64{100, 100.5, 101, 101.5}))
	require.NoError(t, tbl.SetColumn("GR", []float64{50, 60, 70, 80}))
	require.NoError(t, tbl.SetColumn("RHOB", []float64{2.3, nan, 2.5, 2.4}))

	report := qc.Summarize(tbl, "WELL-A")

	assert.Equal(t, "WELL-A", report.WellName)
	assert.Equal(t, 100.0, report.DepthMin)
	assert.Equal(t, 101.5, report.DepthMax)
	assert.Equal(t, 1.5, report.TotalDepth)
	assert.Equal(t, 0.5, report.Step)
	assert.Equal(t, 4, report.TotalPoints)

	assert.Equal(t, []string{"GR", "RHOB"}, report.Available)
	assert.Equal(t, []string{"NPHI"}, report.Missing)

	require.Contains(t, report.Curves, "GR")
	require.Contains(t, report.Curves, "RHOB")
	assert.Equal(t, 4, report.Curves["GR"].ValidPoints)
	assert.Equal(t, 3, report.Curves["RHOB"].ValidPoints)
	assert.Greater(t, report.OverallScore, 0.0)
}
