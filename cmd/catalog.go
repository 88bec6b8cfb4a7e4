package cmd

import (
	"github.com/huangsam/starchart/core"
	"github.com/spf13/cobra"
)

// catalogCmd lists every repository in the store.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List tracked repositories ranked by total stars.",
	Long: `Load every snapshot in the store and rank repositories by their current star total.

Each row carries the fork total, the span of recorded history and the
busiest day. Malformed snapshots are skipped and counted.

Examples:
  # Rank the local snapshot directory
  starchart catalog --source repo_data

  # Read a published store and export it
  starchart catalog --source https://example.com/repo_data --output csv --output-file catalog.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteCatalog(rootCtx, cfg)
	},
}
