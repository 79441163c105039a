// Package las renders a merged curve table as a CWLS LAS 2.0 text
// document, the fixed format downstream consumers expect.
package las

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/petrolog/wellmerge/internal/stat"
	"github.com/petrolog/wellmerge/pkg/curves"
	"github.com/petrolog/wellmerge/pkg/errors"
)

// nullLiteral is the exact rendering of a missing value in the data
// section and of the NULL header entry.
const nullLiteral = "-999.2500"

// Writer renders curve tables as LAS 2.0 text.
type Writer struct {
	// Company appears in the COMP header entry.
	Company string

	// Now supplies the LOG DATE header entry; defaults to time.Now.
	// Override it for reproducible output.
	Now func() time.Time
}

// NewWriter creates a Writer with defaults.
func NewWriter() *Writer {
	return &Writer{Company: "WELLMERGE", Now: time.Now}
}

// Render returns the LAS document for a table as a string.
func (w *Writer) Render(t *curves.Table, wellName string) (string, error) {
	var sb strings.Builder
	if err := w.Write(&sb, t, wellName); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Write renders the LAS document for a table to an io.Writer. The table
// must carry a canonical depth column.
func (w *Writer) Write(out io.Writer, t *curves.Table, wellName string) error {
	depths := t.Depths()
	if depths == nil {
		return errors.ErrNoDepthColumn
	}
	if wellName == "" {
		wellName = "MERGED"
	}

	now := w.Now
	if now == nil {
		now = time.Now
	}

	var sb strings.Builder

	sb.WriteString("~VERSION INFORMATION\n")
	sb.WriteString(" VERS.                          2.0 : CWLS LAS - VERSION 2.0\n")
	sb.WriteString(" WRAP.                           NO : One line per depth step\n")
	sb.WriteString("\n")

	sb.WriteString("~WELL INFORMATION\n")
	fmt.Fprintf(&sb, " WELL.                 %s : WELL NAME\n", wellName)
	fmt.Fprintf(&sb, " STRT.FT            %.2f : START DEPTH\n", stat.Min(depths))
	fmt.Fprintf(&sb, " STOP.FT            %.2f : STOP DEPTH\n", stat.Max(depths))
	fmt.Fprintf(&sb, " STEP.FT            %.4f : STEP\n", medianStep(depths))
	fmt.Fprintf(&sb, " NULL.              %s : NULL VALUE\n", nullLiteral)
	fmt.Fprintf(&sb, " COMP.              %s : COMPANY\n", w.Company)
	fmt.Fprintf(&sb, " DATE.              %s : LOG DATE\n", now().Format("2006-01-02"))
	sb.WriteString("\n")

	curveNames := t.CurveNames()

	sb.WriteString("~CURVE INFORMATION\n")
	sb.WriteString(" DEPTH.FT                        : DEPTH\n")
	for _, name := range curveNames {
		fmt.Fprintf(&sb, " %s.                           : %s\n", name, name)
	}
	sb.WriteString("\n")

	sb.WriteString("~A DEPTH " + strings.Join(curveNames, " ") + "\n")

	cols := make([][]float64, len(curveNames))
	for i, name := range curveNames {
		cols[i], _ = t.Column(name)
	}

	for row := 0; row < t.NumRows(); row++ {
		fmt.Fprintf(&sb, "%.2f", depths[row])
		for _, col := range cols {
			sb.WriteString(" ")
			sb.WriteString(formatValue(col[row]))
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(out, sb.String())
	return err
}

// formatValue renders one data value, substituting the null literal for
// missing samples.
func formatValue(v float64) string {
	if curves.Missing(v) {
		return nullLiteral
	}
	return fmt.Sprintf("%.4f", v)
}

// medianStep is the median consecutive depth difference, or 0 for fewer
// than two rows.
func medianStep(depths []float64) float64 {
	steps := stat.Diffs(depths)
	if len(steps) == 0 {
		return 0
	}
	m := stat.Median(steps)
	if math.IsNaN(m) {
		return 0
	}
	return m
}
