package merge_test

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petrolog/wellmerge/pkg/merge"
)

func TestValidateSameWell(t *testing.T) {
	t.Run("same well", func(t *testing.T) {
		srcs := []merge.Source{
			{Meta: merge.StaticMetadata{Well: "W1"}},
			{Meta: merge.StaticMetadata{Well: "W1"}},
		}
		ok, names := merge.ValidateSameWell(srcs)
		assert.True(t, ok)
		assert.Equal(t, []string{"W1", "W1"}, names)
	})

	t.Run("different wells", func(t *testing.T) {
		srcs := []merge.Source{
			{Meta: merge.StaticMetadata{Well: "W1"}},
			{Meta: merge.StaticMetadata{Well: "W2"}},
		}
		ok, names := merge.ValidateSameWell(srcs)
		assert.False(t, ok)
		assert.Equal(t, []string{"W1", "W2"}, names)
	})

	t.Run("nil metadata defaults", func(t *testing.T) {
		ok, names := merge.ValidateSameWell([]merge.Source{{}})
		assert.True(t, ok)
		assert.Equal(t, []string{merge.DefaultWellName}, names)
	})
}

func TestReportYAML(t *testing.T) {
	report := &merge.Report{
		Curves: map[string]merge.CurveProvenance{
			"GR": {SourceFile: "a.las", Coverage: 0.9, QCScore: 85, GapsCount: 3},
		},
		MasterDepth: merge.GridInfo{Min: 1000, Max: 1100, Step: 0.5, Points: 201},
		WellName:    "WELL-1",
		CurveOrder:  []string{"GR"},
	}

	data, err := yaml.Marshal(report)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "source_file: a.las")
	assert.Contains(t, out, "well_name: WELL-1")
	// Empty gap-fill source and the render-only curve order are omitted.
	assert.NotContains(t, out, "gaps_filled_from")
	assert.NotContains(t, out, "curveorder")
}
