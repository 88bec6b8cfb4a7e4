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

// PrintAlignedResults outputs aligned series, dispatching based on the output format configured.
func PrintAlignedResults(result schema.AlignedResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON aligned series"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForAligned(w, result)
		}, "Wrote CSV aligned series"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteAlignedParquet(w, result)
		}, "Wrote Parquet aligned series"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	case schema.XLSXOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeXLSX(w, result.Metric.Title(), alignedHeader(result), alignedRows(result))
		}, "Wrote XLSX aligned series"); err != nil {
			return fmt.Errorf("error writing XLSX output: %w", err)
		}
	case schema.HTMLOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if len(result.Points) == 0 {
				return renderPage(w, result.Metric.Title()+" over time", buildEmptyChart(result.Metric.Title()+" over time"))
			}
			return renderPage(w, result.Metric.Title()+" over time", buildAlignedLineChart(result))
		}, "Wrote HTML aligned series"); err != nil {
			return fmt.Errorf("error writing HTML output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAlignedTable(w, result, cfg, duration)
		}, "Wrote table")
	}
	return nil
}

// writeAlignedTable prints one row per date with a column per repository.
func writeAlignedTable(w io.Writer, result schema.AlignedResult, cfg *contract.Config, duration time.Duration) error {
	width := alignedColumnWidth(cfg, len(result.Repositories))
	headers := []string{"Date"}
	for _, name := range result.Repositories {
		headers = append(headers, contract.TruncateName(name, width))
	}

	table := tablewriter.NewWriter(w)
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	shown := lastN(result.Points, cfg.ResultLimit)
	var data [][]string
	for _, p := range shown {
		row := []string{p.Date}
		for _, name := range result.Repositories {
			row = append(row, formatCount(p.Values[name]))
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%s for %d repositories, showing last %d of %d dates\n",
		result.Metric.Title(), len(result.Repositories), len(shown), len(result.Points)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Alignment completed in %v\n", duration.Round(time.Millisecond))
	return err
}

// writeCSVResultsForAligned writes aligned series in wide CSV format.
func writeCSVResultsForAligned(w io.Writer, result schema.AlignedResult) error {
	return writeCSVWithHeader(w, alignedHeader(result), func(cw *csv.Writer) error {
		for _, p := range result.Points {
			rec := []string{p.Date}
			for _, name := range result.Repositories {
				rec = append(rec, strconv.Itoa(p.Values[name]))
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func alignedHeader(result schema.AlignedResult) []string {
	return append([]string{"date"}, result.Repositories...)
}

func alignedRows(result schema.AlignedResult) [][]any {
	rows := make([][]any, len(result.Points))
	for i, p := range result.Points {
		row := []any{p.Date}
		for _, name := range result.Repositories {
			row = append(row, p.Values[name])
		}
		rows[i] = row
	}
	return rows
}
