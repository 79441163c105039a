// Package app provides the application context and command wiring for
// the wellmerge CLI: configuration, logging, and the cobra command tree.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App represents the wellmerge CLI application with its dependencies.
type App struct {
	version string
	commit  string
	date    string

	config *Config
	logger *zerolog.Logger
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	config, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := NewLogger(config)

	return &App{
		version: version,
		commit:  commit,
		date:    date,
		config:  config,
		logger:  &logger,
	}, nil
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Execute runs the CLI with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// rootCommand builds the cobra command tree.
func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "wellmerge",
		Short: "Merge well-log curve data from multiple acquisition runs",
		Long: `wellmerge reconciles well-log curves recorded across multiple
acquisition runs of the same well into one depth-aligned dataset,
selecting the best source per curve by coverage and quality and
tracking the provenance of every value.

Input files are YAML curve-table documents produced by an upstream
parser; output is a merged LAS 2.0 document plus a provenance report.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// Re-derive the logger after flag parsing so -v/-q apply.
			logger := NewLogger(a.config)
			a.logger = &logger
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&a.config.Verbose, "verbose", "v", a.config.Verbose, "enable debug output")
	flags.BoolVarP(&a.config.Quiet, "quiet", "q", a.config.Quiet, "only show warnings and errors")
	flags.StringVarP(&a.config.Output, "output", "o", a.config.Output, "report format (table, yaml, markdown)")
	flags.StringVar(&a.config.LogLevel, "log-level", a.config.LogLevel, "log level (trace, debug, info, warn, error)")

	root.AddCommand(a.mergeCommand())
	root.AddCommand(a.qcCommand())
	root.AddCommand(a.versionCommand())

	return root
}

// versionCommand reports version information.
func (a *App) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "wellmerge %s (commit %s, built %s)\n",
				a.version, a.commit, a.date)
		},
	}
}

// ExitOnError prints the error and exits with a non-zero status.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
