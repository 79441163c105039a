// Package merge reconciles projected curve tables from multiple
// acquisition runs into one depth-aligned dataset. For every curve it
// ranks the candidate sources by coverage then quality, copies the
// best source verbatim, fills remaining gaps from the others in rank
// order, and records full provenance in the merge report.
package merge

import (
	"fmt"
	"strings"

	"github.com/petrolog/wellmerge/pkg/curves"
	"github.com/petrolog/wellmerge/pkg/errors"
	"github.com/petrolog/wellmerge/pkg/grid"
	"github.com/petrolog/wellmerge/pkg/normalize"
	"github.com/petrolog/wellmerge/pkg/project"
	"github.com/petrolog/wellmerge/pkg/qc"
)

// Default metadata used when a source supplies none.
const (
	DefaultWellName  = "Unknown"
	DefaultDepthUnit = "FT"
	DefaultNullValue = -999.25
)

// Metadata is the fixed contract an upstream parser satisfies for each
// source. It replaces any runtime shape probing: the engine asks for
// exactly these three values and nothing else.
type Metadata interface {
	WellName() string
	DepthUnit() string
	NullValue() float64
}

// StaticMetadata is a plain-value Metadata implementation.
type StaticMetadata struct {
	Well string
	Unit string
	Null float64
}

// WellName returns the declared well name, defaulting to Unknown.
func (m StaticMetadata) WellName() string {
	if m.Well == "" {
		return DefaultWellName
	}
	return m.Well
}

// DepthUnit returns the declared depth unit, defaulting to feet.
func (m StaticMetadata) DepthUnit() string {
	if m.Unit == "" {
		return DefaultDepthUnit
	}
	return m.Unit
}

// NullValue returns the declared null sentinel, defaulting to -999.25.
func (m StaticMetadata) NullValue() float64 {
	if m.Null == 0 {
		return DefaultNullValue
	}
	return m.Null
}

// Source is one acquisition run: an already-parsed curve table plus its
// identifier and metadata. A nil Meta falls back to defaults.
type Source struct {
	ID    string
	Table *curves.Table
	Meta  Metadata
}

// Options configures a merge.
type Options struct {
	// Step is the master grid step; zero or negative means the default.
	Step float64

	// GapLimit is the maximum interpolation gap; zero or negative means
	// derive it adaptively from the observed sample spacing.
	GapLimit float64
}

// Tables merges the sources into one table aligned to the master depth
// grid plus a provenance report. It fails only when no source at all is
// usable; per-source problems become report warnings.
func Tables(sources []Source, opts Options) (*curves.Table, *Report, error) {
	if len(sources) == 0 {
		return nil, nil, errors.ErrNoSources
	}

	step := opts.Step
	if step <= 0 {
		step = grid.DefaultStep
	}

	// A single source needs no grid, projection, or arbitration.
	if len(sources) == 1 {
		return singleSource(sources[0], step)
	}

	var warnings []string

	// Well identity is advisory: mismatches warn but never abort.
	wellName, distinct := resolveWellNames(sources)
	if len(distinct) > 1 {
		warnings = append(warnings, "multiple wells detected: "+strings.Join(distinct, ", "))
	}

	// Normalize every source, dropping the ones that fail.
	var normalized []*curves.Table
	var sourceIDs []string
	for i, s := range sources {
		id := sourceID(s, i)
		nulls := sentinelValues(s)

		table, err := normalize.Table(s.Table, nulls, depthUnitOf(s))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("error normalizing %s: %v", id, err))
			continue
		}
		normalized = append(normalized, table)
		sourceIDs = append(sourceIDs, id)
	}

	if len(normalized) == 0 {
		return nil, nil, errors.NewMergeError(allIDs(sources), "no source survived normalization",
			errors.ErrNoUsableSources)
	}

	masterGrid, err := grid.Build(normalized, step)
	if err != nil {
		return nil, nil, err
	}

	gapLimit := opts.GapLimit
	if gapLimit <= 0 {
		gapLimit = grid.DeriveGapLimit(normalized)
	}

	// Project every source onto the master grid and score each curve.
	projected := make([]Projected, len(normalized))
	scores := make(Scores, len(normalized))
	for i, table := range normalized {
		p := project.Table(table, masterGrid, gapLimit, step)
		projected[i] = Projected{ID: sourceIDs[i], Table: p}

		byCurve := make(map[string]float64)
		for _, name := range p.CurveNames() {
			col, _ := p.Column(name)
			byCurve[name] = qc.Score(col, name)
		}
		scores[sourceIDs[i]] = byCurve
	}

	merged, provenance, curveOrder := arbitrate(masterGrid, projected, scores)

	report := &Report{
		Curves: provenance,
		MasterDepth: GridInfo{
			Min:    masterGrid.Min,
			Max:    masterGrid.Max,
			Step:   step,
			Points: masterGrid.NumPoints(),
		},
		FilesProcessed: sourceIDs,
		Warnings:       warnings,
		WellName:       wellName,
		CurveOrder:     curveOrder,
	}

	return merged, report, nil
}

// arbitrate builds the merged table curve by curve: primary source
// verbatim, gaps filled from ranked secondaries. Gap filling stops as
// soon as a curve is fully populated.
func arbitrate(masterGrid *grid.Grid, projected []Projected, scores Scores) (*curves.Table, map[string]CurveProvenance, []string) {
	merged := curves.NewTable()
	gridDepths := make([]float64, len(masterGrid.Depths))
	copy(gridDepths, masterGrid.Depths)
	_ = merged.SetColumn(curves.DepthColumn, gridDepths)

	curveOrder := allCurveNames(projected)
	provenance := make(map[string]CurveProvenance, len(curveOrder))

	for _, curveName := range curveOrder {
		rankings := RankSources(curveName, projected, scores)
		if len(rankings) == 0 {
			continue
		}

		primary := rankings[0]
		primaryCol, _ := tableFor(projected, primary.Source).Column(curveName)
		mergedCol := make([]float64, len(primaryCol))
		copy(mergedCol, primaryCol)

		filledTotal := 0
		firstSecondary := ""
		for _, candidate := range rankings[1:] {
			if !hasMissing(mergedCol) {
				break
			}
			secondaryCol, ok := tableFor(projected, candidate.Source).Column(curveName)
			if !ok {
				continue
			}
			if filled := fillGaps(mergedCol, secondaryCol); filled > 0 {
				filledTotal += filled
				if firstSecondary == "" {
					firstSecondary = candidate.Source
				}
			}
		}

		_ = merged.SetColumn(curveName, mergedCol)
		provenance[curveName] = CurveProvenance{
			SourceFile:     primary.Source,
			Coverage:       curves.Coverage(mergedCol),
			QCScore:        primary.QCScore,
			GapsFilledFrom: firstSecondary,
			GapsCount:      filledTotal,
		}
	}

	return merged, provenance, curveOrder
}

// singleSource returns the sole source unchanged with a report noting
// that no merge was necessary.
func singleSource(s Source, step float64) (*curves.Table, *Report, error) {
	id := sourceID(s, 0)
	report := &Report{
		Curves:         map[string]CurveProvenance{},
		MasterDepth:    GridInfo{Step: step},
		FilesProcessed: []string{id},
		Warnings:       []string{"single source provided, no merge necessary"},
		WellName:       wellNameOf(s),
	}
	return s.Table, report, nil
}

// allCurveNames collects every curve present in any projected table, in
// first-seen order across the sources.
func allCurveNames(projected []Projected) []string {
	var order []string
	seen := make(map[string]bool)
	for _, p := range projected {
		for _, name := range p.Table.CurveNames() {
			if !seen[name] {
				seen[name] = true
				order = append(order, name)
			}
		}
	}
	return order
}

func tableFor(projected []Projected, id string) *curves.Table {
	for _, p := range projected {
		if p.ID == id {
			return p.Table
		}
	}
	return curves.NewTable()
}

// resolveWellNames returns the well identity for the report (the first
// name encountered) plus the distinct names in first-seen order.
func resolveWellNames(sources []Source) (string, []string) {
	var distinct []string
	seen := make(map[string]bool)
	for _, s := range sources {
		name := wellNameOf(s)
		if !seen[name] {
			seen[name] = true
			distinct = append(distinct, name)
		}
	}
	if len(distinct) == 0 {
		return DefaultWellName, distinct
	}
	return distinct[0], distinct
}

// sentinelValues builds the null sentinel set for one source: the
// declared null value ahead of the common set.
func sentinelValues(s Source) []float64 {
	null := DefaultNullValue
	if s.Meta != nil {
		null = s.Meta.NullValue()
	}
	if null == 0 {
		return normalize.CommonNullValues
	}
	out := make([]float64, 0, len(normalize.CommonNullValues)+1)
	out = append(out, null)
	out = append(out, normalize.CommonNullValues...)
	return out
}

func sourceID(s Source, index int) string {
	if s.ID != "" {
		return s.ID
	}
	return fmt.Sprintf("Source_%d", index+1)
}

func wellNameOf(s Source) string {
	if s.Meta == nil {
		return DefaultWellName
	}
	return s.Meta.WellName()
}

func depthUnitOf(s Source) string {
	if s.Meta == nil {
		return DefaultDepthUnit
	}
	return s.Meta.DepthUnit()
}

func allIDs(sources []Source) []string {
	ids := make([]string, len(sources))
	for i, s := range sources {
		ids[i] = sourceID(s, i)
	}
	return ids
}
