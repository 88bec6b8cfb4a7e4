package cmd

import (
	"github.com/huangsam/starchart/core"
	"github.com/spf13/cobra"
)

// seriesCmd prints one repository's cumulative history.
var seriesCmd = &cobra.Command{
	Use:   "series <owner/repo>",
	Short: "Show the cumulative daily star and fork history of one repository.",
	Long: `Build the cumulative series of a single repository.

Every date with a star or fork delta becomes one row; totals carry forward
on dates where only the other metric changed.

Examples:
  starchart series acme/rocket
  starchart series acme/rocket --output html --output-file rocket.html`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteSeries(rootCtx, cfg)
	},
}
