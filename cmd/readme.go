package cmd

import (
	"github.com/huangsam/starchart/core"
	"github.com/spf13/cobra"
)

// readmeCmd renders the ranked catalog as a markdown README.
var readmeCmd = &cobra.Command{
	Use:   "readme",
	Short: "Write a markdown README ranking tracked repositories.",
	Long: `Load every snapshot in the store and write a markdown table ranked by total stars.

Each project links to its GitHub page. The document ends with a
"Last Automatic Update" line. The --output flag is ignored.

Examples:
  starchart readme --source repo_data --output-file README.md
  starchart readme --limit 20`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteReadme(rootCtx, cfg)
	},
}
