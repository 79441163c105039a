package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/petrolog/wellmerge"
	"github.com/petrolog/wellmerge/pkg/las"
)

// mergeCommand merges multiple curve-table documents into one LAS file.
func (a *App) mergeCommand() *cobra.Command {
	var (
		step     float64
		gapLimit float64
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "merge <source.yaml>...",
		Short: "Merge curve tables from multiple acquisition runs",
		Long: `Merge normalizes every source, projects all curves onto a shared
master depth grid, and reconciles them curve by curve: the source with
the best coverage and quality wins, the rest fill its gaps. The merged
dataset is written as a LAS 2.0 document and the provenance report is
printed in the selected output format.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources, err := loadSources(args)
			if err != nil {
				return err
			}

			merger, err := wellmerge.New(
				wellmerge.WithStep(step),
				wellmerge.WithGapLimit(gapLimit),
				wellmerge.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			merged, report, err := merger.Merge(sources)
			if err != nil {
				return err
			}

			if outPath != "" {
				f, err := os.Create(outPath) //nolint:gosec // path comes from CLI args
				if err != nil {
					return fmt.Errorf("creating %s: %w", outPath, err)
				}
				defer f.Close() //nolint:errcheck

				writer := las.NewWriter()
				if err := writer.Write(f, merged, report.WellName); err != nil {
					return fmt.Errorf("writing %s: %w", outPath, err)
				}
				a.logger.Info().Str("path", outPath).Msg("wrote merged LAS")
			}

			return renderReport(cmd.OutOrStdout(), report, a.config.Output)
		},
	}

	cmd.Flags().Float64Var(&step, "step", a.config.Step, "master grid depth step in feet")
	cmd.Flags().Float64Var(&gapLimit, "gap-limit", a.config.GapLimit,
		"maximum interpolation gap in feet (0 = derive from sample spacing)")
	cmd.Flags().StringVar(&outPath, "out", "", "path for the merged LAS output")

	return cmd
}
