package cmd

import (
	"github.com/huangsam/starchart/core"
	"github.com/spf13/cobra"
)

// historyCmd writes the aggregated history document.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Write the aggregated history of every repository.",
	Long: `Aggregate every snapshot into one history document keyed by repository,
with cumulative stars and forks per recorded date.

Examples:
  starchart history --output-file star-history.json
  starchart history --output parquet --output-file history.parquet`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteHistory(rootCtx, cfg)
	},
}
