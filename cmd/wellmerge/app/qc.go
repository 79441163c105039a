package app

import (
	"github.com/spf13/cobra"

	"github.com/petrolog/wellmerge/pkg/normalize"
	"github.com/petrolog/wellmerge/pkg/qc"
)

// qcCommand analyzes the data quality of a single curve-table document.
func (a *App) qcCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "qc <source.yaml>",
		Short: "Report data quality statistics for one source",
		Long: `QC normalizes a single source and reports per-curve descriptive
statistics: valid point counts, null percentage, value distribution,
outlier counts, and a 0-100 quality score per curve.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := loadSource(args[0])
			if err != nil {
				return err
			}

			nulls := append([]float64{source.Meta.NullValue()}, normalize.CommonNullValues...)
			table, err := normalize.Table(source.Table, nulls, source.Meta.DepthUnit())
			if err != nil {
				return err
			}

			report := qc.Summarize(table, source.Meta.WellName())
			return renderQC(cmd.OutOrStdout(), report, a.config.Output)
		},
	}
	return cmd
}
