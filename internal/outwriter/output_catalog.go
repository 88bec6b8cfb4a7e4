package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/starchart/internal/contract"
	"github.com/huangsam/starchart/internal/parquet"
	"github.com/huangsam/starchart/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// catalogJSON is the JSON shape of a ranked catalog.
type catalogJSON struct {
	Source       string                    `json:"source"`
	Repositories []schema.RankedRepository `json:"repositories"`
	Skipped      []schema.SnapshotIssue    `json:"skipped,omitempty"`
}

var catalogHeader = []string{
	"rank",
	"repository",
	"total_stars",
	"total_forks",
	"fetched_at",
	"first_date",
	"last_date",
	"active_days",
	"peak_stars_date",
	"peak_stars",
}

// PrintCatalogResults outputs the ranked catalog, dispatching based on the output format configured.
func PrintCatalogResults(ranked []schema.RankedRepository, cat schema.Catalog, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, catalogJSON{Source: cat.Source, Repositories: ranked, Skipped: cat.Skipped})
		}, "Wrote JSON catalog"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForCatalog(w, ranked)
		}, "Wrote CSV catalog"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteRepositoriesParquet(w, ranked)
		}, "Wrote Parquet catalog"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	case schema.XLSXOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeXLSX(w, "Catalog", catalogHeader, catalogRows(ranked))
		}, "Wrote XLSX catalog"); err != nil {
			return fmt.Errorf("error writing XLSX output: %w", err)
		}
	case schema.HTMLOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return renderPage(w, "Repository catalog", buildTotalsBarChart(ranked, cfg.Metric))
		}, "Wrote HTML catalog"); err != nil {
			return fmt.Errorf("error writing HTML output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCatalogTable(w, ranked, cat, cfg, duration)
		}, "Wrote table")
	}
	return nil
}

// writeCatalogTable generates and writes the human-readable table.
func writeCatalogTable(w io.Writer, ranked []schema.RankedRepository, cat schema.Catalog, cfg *contract.Config, duration time.Duration) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Repository", "Stars", "Forks", "Days", "Peak Day", "Fetched"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := GetMaxTableNameWidth(cfg, 6)
	var data [][]string
	for _, r := range ranked {
		peak := "-"
		if r.PeakStarsDate != "" {
			peak = fmt.Sprintf("%s (%s)", r.PeakStarsDate, formatDelta(r.PeakStars))
		}
		data = append(data, []string{
			strconv.Itoa(r.Rank),
			formatName(r.Name, cfg, nameWidth),
			formatCount(r.TotalStars),
			formatCount(r.TotalForks),
			strconv.Itoa(r.ActiveDays),
			peak,
			r.FetchedAt.Format(time.DateOnly),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing top %d of %d repositories from %s\n", len(ranked), len(cat.Records), cat.Source); err != nil {
		return err
	}
	if len(cat.Skipped) > 0 {
		if _, err := fmt.Fprintf(w, "Skipped %d malformed snapshot(s)\n", len(cat.Skipped)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Catalog loaded in %v with %d workers\n", duration.Round(time.Millisecond), cfg.Workers)
	return err
}

// writeCSVResultsForCatalog writes the ranked catalog in CSV format.
func writeCSVResultsForCatalog(w io.Writer, ranked []schema.RankedRepository) error {
	return writeCSVWithHeader(w, catalogHeader, func(cw *csv.Writer) error {
		for _, r := range ranked {
			rec := []string{
				strconv.Itoa(r.Rank),
				r.Name,
				strconv.Itoa(r.TotalStars),
				strconv.Itoa(r.TotalForks),
				r.FetchedAt.Format(time.RFC3339),
				r.FirstDate,
				r.LastDate,
				strconv.Itoa(r.ActiveDays),
				r.PeakStarsDate,
				strconv.Itoa(r.PeakStars),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func catalogRows(ranked []schema.RankedRepository) [][]any {
	rows := make([][]any, len(ranked))
	for i, r := range ranked {
		rows[i] = []any{
			r.Rank, r.Name, r.TotalStars, r.TotalForks, r.FetchedAt.Format(time.RFC3339),
			r.FirstDate, r.LastDate, r.ActiveDays, r.PeakStarsDate, r.PeakStars,
		}
	}
	return rows
}
