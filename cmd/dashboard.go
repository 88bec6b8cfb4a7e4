package cmd

import (
	"github.com/huangsam/starchart/core"
	"github.com/spf13/cobra"
)

// dashboardCmd renders the HTML dashboard.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard [owner/repo...]",
	Short: "Render an HTML dashboard comparing repositories.",
	Long: `Write a standalone HTML page with the aligned history of the selection and
a bar chart of current totals. The page is written regardless of --output.

Examples:
  starchart dashboard --output-file dashboard.html
  starchart dashboard acme/rocket acme/sled --metric forks --output-file forks.html`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return core.ExecuteDashboard(rootCtx, cfg)
	},
}
