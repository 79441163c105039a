// Package wellmerge reconciles well-log curve measurements recorded
// across multiple acquisition runs of the same well into one canonical,
// depth-aligned dataset, tracking which source contributed each value
// and how trustworthy that source was.
//
// The engine is a pure, synchronous computation over in-memory curve
// tables: sources are normalized, projected onto a shared master depth
// grid, scored for quality, and merged curve by curve with the
// best-ranked source as primary and the rest filling gaps in rank
// order. The result is a merged table plus a provenance report.
//
// Example usage:
//
//	m, err := wellmerge.New(wellmerge.WithStep(0.5))
//	if err != nil {
//		return err
//	}
//	merged, report, err := m.Merge([]wellmerge.Source{
//		{ID: "run1.las", Table: run1, Meta: wellmerge.StaticMetadata{Well: "WELL-A", Unit: "FT"}},
//		{ID: "run2.las", Table: run2, Meta: wellmerge.StaticMetadata{Well: "WELL-A", Unit: "M"}},
//	})
package wellmerge

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/petrolog/wellmerge/pkg/curves"
	"github.com/petrolog/wellmerge/pkg/logging"
	"github.com/petrolog/wellmerge/pkg/merge"
)

// Source is one acquisition run handed to the engine.
type Source = merge.Source

// Metadata is the upstream adapter contract for source metadata.
type Metadata = merge.Metadata

// StaticMetadata is a plain-value Metadata implementation.
type StaticMetadata = merge.StaticMetadata

// Merger merges curve tables from multiple acquisition runs.
type Merger interface {
	// Merge reconciles the sources into one depth-aligned table plus a
	// provenance report. Per-source problems become report warnings; it
	// fails only when no source at all is usable.
	Merge(sources []Source) (*curves.Table, *merge.Report, error)
}

// merger is the internal implementation of the Merger interface.
type merger struct {
	config *config
}

// New creates a new Merger with the given options.
func New(opts ...Option) (Merger, error) {
	m := &merger{config: defaultConfig()}
	for _, opt := range opts {
		if err := opt(m.config); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}
	return m, nil
}

// Merge reconciles the sources into one depth-aligned table plus a
// provenance report.
func (m *merger) Merge(sources []Source) (*curves.Table, *merge.Report, error) {
	log := m.config.logger
	log.Debug().
		Int("sources", len(sources)).
		Float64("step", m.config.step).
		Float64("gap_limit", m.config.gapLimit).
		Msg("starting merge")

	merged, report, err := merge.Tables(sources, merge.Options{
		Step:     m.config.step,
		GapLimit: m.config.gapLimit,
	})
	if err != nil {
		log.Error().Err(err).Msg("merge failed")
		return nil, nil, err
	}

	for _, warning := range report.Warnings {
		log.Warn().Str("well", report.WellName).Msg(warning)
	}
	log.Info().
		Str("well", report.WellName).
		Int("curves", len(report.Curves)).
		Int("points", report.MasterDepth.Points).
		Msg("merge complete")

	return merged, report, nil
}

// config holds merger configuration assembled from options.
type config struct {
	step     float64
	gapLimit float64
	logger   *zerolog.Logger
}

func defaultConfig() *config {
	return &config{
		logger: logging.Default(),
	}
}
