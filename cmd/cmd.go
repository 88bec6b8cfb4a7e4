// Package cmd defines the command-line interface for starchart.
package cmd

import (
	"github.com/huangsam/starchart/internal/contract"
	"github.com/huangsam/starchart/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(alignCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(readmeCmd)
	rootCmd.AddCommand(manifestCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("source", "s", contract.DefaultSource, "Snapshot store: a directory or an http(s) base URL")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent snapshot fetches")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet or xlsx or html")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().StringP("metric", "m", string(schema.StarsMetric), "Metric to chart: stars or forks")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of rows to display")
	rootCmd.PersistentFlags().Int("max-selections", contract.DefaultMaxSelections, "Maximum number of repositories charted together")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("progress", "no", "Show a progress bar while loading snapshots (yes/no)")
	rootCmd.PersistentFlags().String("timeout", contract.DefaultTimeout.String(), "Request timeout for remote stores")
	rootCmd.PersistentFlags().String("log-level", contract.DefaultLogLevel, "Log level: debug or info or warn or error")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	validateCmd.Flags().Bool("print-schema", false, "Print the snapshot JSON schema and exit")
}
