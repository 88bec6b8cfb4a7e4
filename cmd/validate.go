package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/huangsam/starchart/internal/contract"
	"github.com/huangsam/starchart/internal/snapshot"
	"github.com/spf13/cobra"
)

// errInvalidSnapshots signals that at least one file failed validation.
var errInvalidSnapshots = errors.New("snapshot validation failed")

// validateCmd checks snapshot files against the snapshot schema.
var validateCmd = &cobra.Command{
	Use:   "validate [file...]",
	Short: "Validate snapshot files against the snapshot schema.",
	Long: `Check each snapshot file for schema problems and an unparseable fetched_at.

Exits non-zero when any file is invalid.

Examples:
  starchart validate repo_data/*.json
  starchart validate --print-schema`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return sharedSetup(rootCtx, cmd, nil)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if printSchema, _ := cmd.Flags().GetBool("print-schema"); printSchema {
			_, err := cmd.OutOrStdout().Write(snapshot.SchemaDocument())
			return err
		}
		if len(args) == 0 {
			return errors.New("at least one snapshot file is required")
		}
		if validateFiles(cmd, args, cfg.UseColors) > 0 {
			return errInvalidSnapshots
		}
		return nil
	},
}

// statusMark labels a validation outcome, colored only when colors are enabled.
func statusMark(valid, useColors bool) string {
	switch {
	case valid && useColors:
		return contract.SuccessColor.Sprint("PASS")
	case valid:
		return "PASS"
	case useColors:
		return contract.FailureColor.Sprint("FAIL")
	default:
		return "FAIL"
	}
}

// validateFiles reports on each file and returns the number of invalid ones.
func validateFiles(cmd *cobra.Command, files []string, useColors bool) int {
	out := cmd.OutOrStdout()
	invalid := 0
	for _, file := range files {
		problems, err := fileProblems(file)
		if err != nil {
			problems = []string{err.Error()}
		}
		if len(problems) == 0 {
			fmt.Fprintf(out, "%s %s\n", statusMark(true, useColors), file)
			continue
		}
		invalid++
		fmt.Fprintf(out, "%s %s\n", statusMark(false, useColors), file)
		for _, p := range problems {
			fmt.Fprintf(out, "    - %s\n", p)
		}
	}
	fmt.Fprintf(out, "%d of %d file(s) valid\n", len(files)-invalid, len(files))
	return invalid
}

func fileProblems(file string) ([]string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	problems, err := snapshot.Problems(data)
	if err != nil || len(problems) > 0 {
		return problems, err
	}
	if _, err := snapshot.Parse(file, data); err != nil {
		var parseErr *snapshot.ParseError
		if errors.As(err, &parseErr) {
			return []string{parseErr.Err.Error()}, nil
		}
		return []string{err.Error()}, nil
	}
	return nil, nil
}
