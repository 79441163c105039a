// Package normalize cleans one source's curve table ahead of merging:
// depth column detection, null-sentinel removal, unit conversion, and
// duplicate-depth resolution.
package normalize

import (
	"math"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/petrolog/wellmerge/internal/stat"
	"github.com/petrolog/wellmerge/pkg/curves"
)

// MetersToFeet is the fixed conversion factor applied to metric depth.
const MetersToFeet = 3.28084

// nullTolerance is the absolute tolerance for matching a null sentinel.
const nullTolerance = 0.01

// CommonNullValues are the sentinel values replaced with missing in every
// source, in addition to the source's own declared null value.
var CommonNullValues = []float64{-999.25, -999, -9999, -999.0, -9999.0, -999999, 999.25}

var upper = cases.Upper(language.English)

// metricUnits are the accepted spellings of a metric depth unit.
var metricUnits = map[string]bool{
	"M": true, "METER": true, "METERS": true, "METRE": true, "METRES": true,
}

// IsMetric reports whether a declared depth unit means meters.
func IsMetric(unit string) bool {
	return metricUnits[upper.String(unit)]
}

// Table normalizes one source's curve table. Null sentinels become
// missing in every non-depth column, metric depth is converted to feet,
// rows are sorted by depth, and duplicate depths are collapsed by
// per-column median. The input table is not modified.
//
// Returns ErrNoDepthColumn when no depth alias is present.
func Table(t *curves.Table, nullValues []float64, depthUnit string) (*curves.Table, error) {
	t = t.Clone()

	// Canonicalize the depth column name.
	alias, err := t.FindDepthColumn()
	if err != nil {
		return nil, err
	}
	t.Rename(alias, curves.DepthColumn)

	if nullValues == nil {
		nullValues = CommonNullValues
	}

	// Replace sentinel values with missing in every non-depth column.
	for _, name := range t.CurveNames() {
		col, _ := t.Column(name)
		for i, v := range col {
			for _, null := range nullValues {
				if math.Abs(v-null) < nullTolerance {
					col[i] = math.NaN()
					break
				}
			}
		}
	}

	// Convert depth to feet when declared metric.
	depths := t.Depths()
	if IsMetric(depthUnit) {
		for i := range depths {
			depths[i] *= MetersToFeet
		}
	}

	t = sortByDepth(t)
	return collapseDuplicates(t), nil
}

// sortByDepth reorders all columns by ascending depth, dropping rows
// whose depth is missing. The sort is stable so equal depths keep their
// input order for the duplicate-collapse step.
func sortByDepth(t *curves.Table) *curves.Table {
	depths := t.Depths()
	idx := make([]int, 0, len(depths))
	for i, d := range depths {
		if !math.IsNaN(d) {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return depths[idx[a]] < depths[idx[b]]
	})

	out := curves.NewTable()
	for _, name := range t.Columns() {
		col, _ := t.Column(name)
		vals := make([]float64, len(idx))
		for i, j := range idx {
			vals[i] = col[j]
		}
		_ = out.SetColumn(name, vals)
	}
	return out
}

// collapseDuplicates merges consecutive rows sharing a depth value into
// one row holding the per-column median of the group. Assumes the table
// is already sorted by depth.
func collapseDuplicates(t *curves.Table) *curves.Table {
	depths := t.Depths()

	hasDup := false
	for i := 1; i < len(depths); i++ {
		if depths[i] == depths[i-1] {
			hasDup = true
			break
		}
	}
	if !hasDup {
		return t
	}

	names := t.Columns()
	groups := make(map[string][]float64, len(names))
	for _, name := range names {
		groups[name] = nil
	}

	appendRow := func(start, end int) {
		for _, name := range names {
			col, _ := t.Column(name)
			groups[name] = append(groups[name], stat.Median(col[start:end]))
		}
	}

	start := 0
	for i := 1; i <= len(depths); i++ {
		if i == len(depths) || depths[i] != depths[start] {
			appendRow(start, i)
			start = i
		}
	}

	out := curves.NewTable()
	for _, name := range names {
		_ = out.SetColumn(name, groups[name])
	}
	return out
}
