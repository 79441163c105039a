package app

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/goccy/go-yaml"
	md "github.com/nao1215/markdown"
	"github.com/olekukonko/tablewriter"

	"github.com/petrolog/wellmerge/pkg/merge"
	"github.com/petrolog/wellmerge/pkg/qc"
)

// renderReport writes the merge report in the selected output format.
func renderReport(w io.Writer, report *merge.Report, format string) error {
	switch format {
	case "yaml":
		data, err := yaml.Marshal(report)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "markdown":
		return renderReportMarkdown(w, report)
	default:
		return renderReportTable(w, report)
	}
}

// renderReportTable renders the per-curve provenance as a text table.
func renderReportTable(w io.Writer, report *merge.Report) error {
	fmt.Fprintf(w, "Well: %s\n", report.WellName)
	fmt.Fprintf(w, "Grid: %.2f - %.2f ft, step %.2f, %d points\n",
		report.MasterDepth.Min, report.MasterDepth.Max,
		report.MasterDepth.Step, report.MasterDepth.Points)

	table := tablewriter.NewTable(w)
	table.Header("Curve", "Source", "Coverage", "QC", "Filled From", "Filled")
	for _, name := range report.CurveOrder {
		prov, ok := report.Curves[name]
		if !ok {
			continue
		}
		filledFrom := prov.GapsFilledFrom
		if filledFrom == "" {
			filledFrom = "-"
		}
		if err := table.Append(name, prov.SourceFile,
			fmt.Sprintf("%.1f%%", prov.Coverage*100),
			fmt.Sprintf("%.0f", prov.QCScore),
			filledFrom,
			fmt.Sprintf("%d", prov.GapsCount)); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	for _, warning := range report.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
	return nil
}

// renderReportMarkdown renders the merge report as a markdown document.
func renderReportMarkdown(w io.Writer, report *merge.Report) error {
	rows := make([][]string, 0, len(report.CurveOrder))
	for _, name := range report.CurveOrder {
		prov, ok := report.Curves[name]
		if !ok {
			continue
		}
		filledFrom := prov.GapsFilledFrom
		if filledFrom == "" {
			filledFrom = "-"
		}
		rows = append(rows, []string{
			name, prov.SourceFile,
			fmt.Sprintf("%.1f%%", prov.Coverage*100),
			fmt.Sprintf("%.0f", prov.QCScore),
			filledFrom,
			fmt.Sprintf("%d", prov.GapsCount),
		})
	}

	doc := md.NewMarkdown(w).
		H1("Merge Report").
		PlainTextf("Well: %s", report.WellName).
		LF().
		PlainTextf("Grid: %.2f - %.2f ft, step %.2f, %d points",
			report.MasterDepth.Min, report.MasterDepth.Max,
			report.MasterDepth.Step, report.MasterDepth.Points).
		LF().
		H2("Curves").
		Table(md.TableSet{
			Header: []string{"Curve", "Source", "Coverage", "QC", "Filled From", "Filled"},
			Rows:   rows,
		})

	if len(report.Warnings) > 0 {
		doc = doc.H2("Warnings").BulletList(report.Warnings...)
	}

	return doc.Build()
}

// renderQC writes the single-source quality report.
func renderQC(w io.Writer, report *qc.TableReport, format string) error {
	if format == "yaml" {
		data, err := yaml.Marshal(report)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	fmt.Fprintf(w, "Well: %s\n", report.WellName)
	fmt.Fprintf(w, "Depth: %.2f - %.2f ft (%d points, median step %.4f)\n",
		report.DepthMin, report.DepthMax, report.TotalPoints, report.Step)
	if len(report.Missing) > 0 {
		fmt.Fprintf(w, "Missing required curves: %v\n", report.Missing)
	}

	names := make([]string, 0, len(report.Curves))
	for name := range report.Curves {
		names = append(names, name)
	}
	sort.Strings(names)

	table := tablewriter.NewTable(w)
	table.Header("Curve", "Valid", "Null %", "Min", "Max", "Mean", "P5", "P95", "Quality")
	for _, name := range names {
		s := report.Curves[name]
		if err := table.Append(name,
			fmt.Sprintf("%d", s.ValidPoints),
			fmt.Sprintf("%.1f%%", s.NullPercentage),
			formatStat(s.Min), formatStat(s.Max), formatStat(s.Mean),
			formatStat(s.P5), formatStat(s.P95),
			fmt.Sprintf("%.0f/100", s.QualityScore)); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "Overall quality: %.0f/100\n", report.OverallScore)
	return nil
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "N/A"
	}
	return fmt.Sprintf("%.3f", v)
}
