package cmd

import (
	"github.com/huangsam/starchart/core"
	"github.com/spf13/cobra"
)

// alignCmd lines up several repositories on one date axis.
var alignCmd = &cobra.Command{
	Use:   "align [owner/repo...]",
	Short: "Align several repositories on a shared date axis.",
	Long: `Merge the cumulative series of the selected repositories onto the union of
their dates. A repository with no data yet on a date reads 0; otherwise its
last known total carries forward.

Without arguments the top repository is selected. At most --max-selections
repositories are charted together.

Examples:
  starchart align acme/rocket acme/sled
  starchart align acme/rocket acme/sled --metric forks --output csv`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteAlign(rootCtx, cfg)
	},
}
