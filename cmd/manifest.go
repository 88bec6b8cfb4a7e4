package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/starchart/internal/contract"
	"github.com/huangsam/starchart/internal/snapshot"
	"github.com/huangsam/starchart/schema"
	"github.com/spf13/cobra"
)

// manifestCmd writes manifest.json for a local store.
var manifestCmd = &cobra.Command{
	Use:   "manifest [dir]",
	Short: "Write manifest.json listing every snapshot in a directory.",
	Long: `Scan a local snapshot directory and write its manifest.json, the listing
remote stores are discovered through. Defaults to the configured --source.

Examples:
  starchart manifest repo_data`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return sharedSetup(rootCtx, cmd, nil)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		dir := cfg.Source
		if len(args) == 1 {
			dir = args[0]
		}
		if contract.IsRemoteSource(dir) {
			return fmt.Errorf("manifest can only be written for a local directory, got %s", dir)
		}

		names, err := snapshot.WriteManifest(dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "💾 Listed %s snapshot(s) in %s\n",
			contract.SuccessColor.Sprint(len(names)), filepath.Join(dir, schema.ManifestFileName))
		return nil
	},
}
