package merge_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrolog/wellmerge/pkg/curves"
	"github.com/petrolog/wellmerge/pkg/errors"
	"github.com/petrolog/wellmerge/pkg/merge"
)

// rampSource builds a source whose GR curve equals depth-offset over
// [lo, hi] at the given sample step.
func rampSource(t *testing.T, id, well string, lo, hi, step, offset float64) merge.Source {
	t.Helper()
	var depths, gr []float64
	for d := lo; d <= hi+1e-9; d += step {
		depths = append(depths, d)
		gr = append(gr, d-offset)
	}
	tbl := curves.NewTable()
	require.NoError(t, tbl.SetColumn("DEPT", depths))
	require.NoError(t, tbl.SetColumn("GR", gr))
	return merge.Source{ID: id, Table: tbl, Meta: merge.StaticMetadata{Well: well}}
}

func TestTablesNoSources(t *testing.T) {
	_, _, err := merge.Tables(nil, merge.Options{})
	assert.ErrorIs(t, err, errors.ErrNoSources)
}

func TestTablesSingleSourceBypassesMerge(t *testing.T) {
	src := rampSource(t, "run1.las", "WELL-1", 1000, 1010, 1, 1000)

	merged, report, err := merge.Tables([]merge.Source{src}, merge.Options{Step: 1})
	require.NoError(t, err)

	// The sole table is returned untouched, depth alias included.
	assert.Same(t, src.Table, merged)
	assert.True(t, merged.HasColumn("DEPT"))

	assert.Equal(t, []string{"single source provided, no merge necessary"}, report.Warnings)
	assert.Equal(t, "WELL-1", report.WellName)
	assert.Equal(t, []string{"run1.las"}, report.FilesProcessed)
	assert.Empty(t, report.Curves)
	assert.Equal(t, merge.GridInfo{Step: 1}, report.MasterDepth)
}

func TestTablesTwoSourceMerge(t *testing.T) {
	// Two runs of the same well covering adjacent intervals. With a gap
	// limit of 2 each run extends two grid points past its own span, so
	// both cover 53 of the 101 grid points and the tie keeps the first
	// source as primary.
	a := rampSource(t, "a.las", "WELL-1", 1000, 1050, 1, 1000)
	b := rampSource(t, "b.las", "WELL-1", 1050, 1100, 1, 1000)

	merged, report, err := merge.Tables([]merge.Source{a, b}, merge.Options{Step: 1, GapLimit: 2})
	require.NoError(t, err)

	assert.Equal(t, merge.GridInfo{Min: 1000, Max: 1100, Step: 1, Points: 101}, report.MasterDepth)
	assert.Equal(t, []string{"a.las", "b.las"}, report.FilesProcessed)
	assert.Equal(t, "WELL-1", report.WellName)
	assert.Empty(t, report.Warnings)
	assert.Equal(t, []string{"GR"}, report.CurveOrder)

	gr, ok := merged.Column("GR")
	require.True(t, ok)
	require.Len(t, gr, 101)

	// Primary values are verbatim: interior from a.las, then its edge
	// extension at 1051 and 1052.
	assert.Equal(t, 0.0, gr[0])
	assert.Equal(t, 48.0, gr[48], "secondary overlap never overwrites the primary")
	assert.Equal(t, 50.0, gr[50])
	assert.Equal(t, 50.0, gr[51])
	assert.Equal(t, 50.0, gr[52])

	// Remaining gaps come from b.las.
	assert.Equal(t, 53.0, gr[53])
	assert.Equal(t, 100.0, gr[100])

	prov, ok := report.Curves["GR"]
	require.True(t, ok)
	assert.Equal(t, "a.las", prov.SourceFile)
	assert.Equal(t, 1.0, prov.Coverage, "coverage is post-fill")
	assert.Equal(t, "b.las", prov.GapsFilledFrom)
	assert.Equal(t, 48, prov.GapsCount)
	// QC is the primary's pre-fill score: 53/101 coverage, two flat
	// edge-extension diffs, no spikes, all values in the GR range.
	assert.InDelta(t, 80.2209, prov.QCScore, 1e-3)
}

func TestTablesMultipleWellsWarning(t *testing.T) {
	a := rampSource(t, "a.las", "WELL-1", 1000, 1010, 1, 1000)
	b := rampSource(t, "b.las", "WELL-2", 1000, 1010, 1, 1000)

	_, report, err := merge.Tables([]merge.Source{a, b}, merge.Options{Step: 1})
	require.NoError(t, err)

	require.Len(t, report.Warnings, 1)
	assert.Equal(t, "multiple wells detected: WELL-1, WELL-2", report.Warnings[0])
	assert.Equal(t, "WELL-1", report.WellName, "first well name wins")
}

func TestTablesDropsSourceThatFailsNormalization(t *testing.T) {
	a := rampSource(t, "a.las", "WELL-1", 1000, 1010, 1, 1000)
	b := rampSource(t, "b.las", "WELL-1", 1000, 1010, 1, 1000)

	noDepth := curves.NewTable()
	require.NoError(t, noDepth.SetColumn("GR", []float64{1, 2, 3}))
	bad := merge.Source{ID: "bad.las", Table: noDepth}

	merged, report, err := merge.Tables([]merge.Source{a, bad, b}, merge.Options{Step: 1})
	require.NoError(t, err)
	require.NotNil(t, merged)

	assert.Equal(t, []string{"a.las", "b.las"}, report.FilesProcessed)
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "error normalizing bad.las")
}

func TestTablesNoUsableSources(t *testing.T) {
	noDepth := curves.NewTable()
	require.NoError(t, noDepth.SetColumn("GR", []float64{1, 2}))

	srcs := []merge.Source{
		{ID: "x.las", Table: noDepth},
		{ID: "y.las", Table: noDepth.Clone()},
	}

	_, _, err := merge.Tables(srcs, merge.Options{})
	assert.ErrorIs(t, err, errors.ErrNoUsableSources)
}

func TestTablesAnonymousSourceIDs(t *testing.T) {
	a := rampSource(t, "", "WELL-1", 1000, 1010, 1, 1000)
	b := rampSource(t, "", "WELL-1", 1000, 1010, 1, 1000)

	_, report, err := merge.Tables([]merge.Source{a, b}, merge.Options{Step: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"Source_1", "Source_2"}, report.FilesProcessed)
}

func TestStaticMetadataDefaults(t *testing.T) {
	m := merge.StaticMetadata{}
	assert.Equal(t, merge.DefaultWellName, m.WellName())
	assert.Equal(t, merge.DefaultDepthUnit, m.DepthUnit())
	assert.Equal(t, merge.DefaultNullValue, m.NullValue())

	m = merge.StaticMetadata{Well: "W", Unit: "M", Null: -8888}
	assert.Equal(t, "W", m.WellName())
	assert.Equal(t, "M", m.DepthUnit())
	assert.Equal(t, -8888.0, m.NullValue())
}

func TestRankSources(t *testing.T) {
	nan := math.NaN()

	proj := func(id string, gr []float64) merge.Projected {
		tbl := curves.NewTable()
		require.NoError(t, tbl.SetColumn(curves.DepthColumn, make([]float64, len(gr))))
		require.NoError(t, tbl.SetColumn("GR", gr))
		return merge.Projected{ID: id, Table: tbl}
	}

	t.Run("coverage first", func(t *testing.T) {
		projected := []merge.Projected{
			proj("low", []float64{1, nan, nan, nan}),
			proj("high", []float64{1, 2, 3, nan}),
		}
		scores := merge.Scores{"low": {"GR": 99}, "high": {"GR": 10}}

		r := merge.RankSources("GR", projected, scores)
		require.Len(t, r, 2)
		assert.Equal(t, "high", r[0].Source, "coverage beats QC score")
	})

	t.Run("qc breaks coverage ties", func(t *testing.T) {
		projected := []merge.Projected{
			proj("worse", []float64{1, 2}),
			proj("better", []float64{3, 4}),
		}
		scores := merge.Scores{"worse": {"GR": 40}, "better": {"GR": 90}}

		r := merge.RankSources("GR", projected, scores)
		assert.Equal(t, "better", r[0].Source)
	})

	t.Run("full tie keeps input order", func(t *testing.T) {
		projected := []merge.Projected{
			proj("first", []float64{1, 2}),
			proj("second", []float64{3, 4}),
		}
		scores := merge.Scores{"first": {"GR": 70}, "second": {"GR": 70}}

		r := merge.RankSources("GR", projected, scores)
		assert.Equal(t, "first", r[0].Source)
	})

	t.Run("missing score defaults to 50", func(t *testing.T) {
		projected := []merge.Projected{proj("a", []float64{1, 2})}

		r := merge.RankSources("GR", projected, merge.Scores{})
		require.Len(t, r, 1)
		assert.Equal(t, 50.0, r[0].QCScore)
	})

	t.Run("sources without the curve are skipped", func(t *testing.T) {
		tbl := curves.NewTable()
		require.NoError(t, tbl.SetColumn(curves.DepthColumn, []float64{0}))
		projected := []merge.Projected{
			{ID: "no-gr", Table: tbl},
			proj("has-gr", []float64{1}),
		}

		r := merge.RankSources("GR", projected, merge.Scores{})
		require.Len(t, r, 1)
		assert.Equal(t, "has-gr", r[0].Source)
	})
}
