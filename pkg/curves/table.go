// Package curves provides the core data model for depth-indexed well-log
// curve tables and the classification rules shared by the merge engine.
package curves

import (
	"math"

	"github.com/petrolog/wellmerge/pkg/errors"
)

// DepthColumn is the canonical name of the depth column after normalization.
const DepthColumn = "DEPTH"

// DepthAliases lists the accepted depth column names, in probe order.
// Matching is case-sensitive.
var DepthAliases = []string{"DEPT", "DEPTH", "MD", "TVD", "TDEP"}

// Table is a depth-indexed table of named numeric columns. Columns keep
// their insertion order so that every operation over a table is
// deterministic. Missing values are represented as NaN.
type Table struct {
	order []string
	cols  map[string][]float64
	rows  int
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{cols: make(map[string][]float64)}
}

// SetColumn adds a column, or replaces it if a column with the same name
// already exists. The first column fixes the row count; later columns
// must match it.
func (t *Table) SetColumn(name string, values []float64) error {
	if len(t.order) > 0 && len(values) != t.rows {
		return errors.NewValidationError("column", name,
			"column length does not match table row count")
	}
	if _, exists := t.cols[name]; !exists {
		t.order = append(t.order, name)
	}
	if len(t.order) == 1 {
		t.rows = len(values)
	}
	t.cols[name] = values
	return nil
}

// Column returns the values for a named column.
func (t *Table) Column(name string) ([]float64, bool) {
	vals, ok := t.cols[name]
	return vals, ok
}

// Columns returns the column names in insertion order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// HasColumn reports whether the table contains the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// NumRows returns the number of rows in the table.
func (t *Table) NumRows() int {
	return t.rows
}

// Depths returns the canonical depth column, or nil if the table has not
// been normalized yet.
func (t *Table) Depths() []float64 {
	return t.cols[DepthColumn]
}

// CurveNames returns the column names excluding the depth column, in
// insertion order.
func (t *Table) CurveNames() []string {
	out := make([]string, 0, len(t.order))
	for _, name := range t.order {
		if name != DepthColumn {
			out = append(out, name)
		}
	}
	return out
}

// Rename changes a column's name in place, keeping its position.
func (t *Table) Rename(from, to string) {
	vals, ok := t.cols[from]
	if !ok || from == to {
		return
	}
	for i, name := range t.order {
		if name == from {
			t.order[i] = to
			break
		}
	}
	delete(t.cols, from)
	t.cols[to] = vals
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := NewTable()
	for _, name := range t.order {
		vals := make([]float64, len(t.cols[name]))
		copy(vals, t.cols[name])
		_ = out.SetColumn(name, vals)
	}
	return out
}

// FindDepthColumn locates the depth column among the known aliases and
// returns its current name. It returns ErrNoDepthColumn when the table
// has no recognizable depth column.
func (t *Table) FindDepthColumn() (string, error) {
	for _, alias := range DepthAliases {
		if t.HasColumn(alias) {
			return alias, nil
		}
	}
	return "", errors.ErrNoDepthColumn
}

// Missing reports whether a value represents a missing sample.
func Missing(v float64) bool {
	return math.IsNaN(v)
}

// CountValid returns the number of non-missing values in a column.
func CountValid(values []float64) int {
	n := 0
	for _, v := range values {
		if !Missing(v) {
			n++
		}
	}
	return n
}

// Coverage returns the fraction of non-missing values in a column.
// An empty column has zero coverage.
func Coverage(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return float64(CountValid(values)) / float64(len(values))
}
