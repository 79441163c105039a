package app

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/petrolog/wellmerge"
	"github.com/petrolog/wellmerge/pkg/curves"
)

// sourceDoc is the YAML interchange format for one already-parsed curve
// table. Upstream parsers emit these; the CLI performs no raw LAS
// parsing itself.
type sourceDoc struct {
	WellName  string     `yaml:"well_name"`
	DepthUnit string     `yaml:"depth_unit"`
	NullValue float64    `yaml:"null_value"`
	Curves    []curveDoc `yaml:"curves"`
}

type curveDoc struct {
	Name   string    `yaml:"name"`
	Values []float64 `yaml:"values"`
}

// loadSource reads one YAML curve-table document into an engine source.
func loadSource(path string) (wellmerge.Source, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from CLI args
	if err != nil {
		return wellmerge.Source{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc sourceDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return wellmerge.Source{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	table := curves.NewTable()
	for _, c := range doc.Curves {
		if err := table.SetColumn(c.Name, c.Values); err != nil {
			return wellmerge.Source{}, fmt.Errorf("%s: curve %s: %w", path, c.Name, err)
		}
	}

	return wellmerge.Source{
		ID:    path,
		Table: table,
		Meta: wellmerge.StaticMetadata{
			Well: doc.WellName,
			Unit: doc.DepthUnit,
			Null: doc.NullValue,
		},
	}, nil
}

// loadSources reads all input documents, preserving argument order.
func loadSources(paths []string) ([]wellmerge.Source, error) {
	sources := make([]wellmerge.Source, 0, len(paths))
	for _, path := range paths {
		s, err := loadSource(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, s)
	}
	return sources, nil
}
