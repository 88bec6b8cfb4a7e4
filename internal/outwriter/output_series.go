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

var seriesHeader = []string{"date", "stars", "forks", "daily_stars", "daily_forks"}

// PrintSeriesResults outputs one repository's cumulative series, dispatching based on the output format configured.
func PrintSeriesResults(result schema.SeriesResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON series"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForSeries(w, result)
		}, "Wrote CSV series"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteSeriesParquet(w, result)
		}, "Wrote Parquet series"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	case schema.XLSXOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeXLSX(w, "Series", seriesHeader, seriesRows(result))
		}, "Wrote XLSX series"); err != nil {
			return fmt.Errorf("error writing XLSX output: %w", err)
		}
	case schema.HTMLOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return renderPage(w, result.Name, buildSeriesLineChart(result))
		}, "Wrote HTML series"); err != nil {
			return fmt.Errorf("error writing HTML output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSeriesTable(w, result, cfg, duration)
		}, "Wrote table")
	}
	return nil
}

// writeSeriesTable prints the most recent ResultLimit days of the series.
func writeSeriesTable(w io.Writer, result schema.SeriesResult, cfg *contract.Config, duration time.Duration) error {
	title := result.Name
	if cfg.UseColors {
		title = contract.AccentColor.Sprint(result.Name)
	}
	if _, err := fmt.Fprintf(w, "%s (%s)\n", title, schema.GitHubURL(result.Name)); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Date", "Stars", "Forks", "New Stars", "New Forks"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	shown := lastN(result.Points, cfg.ResultLimit)
	var data [][]string
	for _, p := range shown {
		data = append(data, []string{
			p.Date,
			formatCount(p.Stars),
			formatCount(p.Forks),
			formatDelta(p.DailyStars),
			formatDelta(p.DailyForks),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing last %d of %d days\n", len(shown), len(result.Points)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Series built in %v\n", duration.Round(time.Millisecond))
	return err
}

// writeCSVResultsForSeries writes the series in CSV format.
func writeCSVResultsForSeries(w io.Writer, result schema.SeriesResult) error {
	return writeCSVWithHeader(w, seriesHeader, func(cw *csv.Writer) error {
		for _, p := range result.Points {
			rec := []string{
				p.Date,
				strconv.Itoa(p.Stars),
				strconv.Itoa(p.Forks),
				strconv.Itoa(p.DailyStars),
				strconv.Itoa(p.DailyForks),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func seriesRows(result schema.SeriesResult) [][]any {
	rows := make([][]any, len(result.Points))
	for i, p := range result.Points {
		rows[i] = []any{p.Date, p.Stars, p.Forks, p.DailyStars, p.DailyForks}
	}
	return rows
}
