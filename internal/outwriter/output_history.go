package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/starchart/internal/contract"
	"github.com/huangsam/starchart/internal/parquet"
	"github.com/huangsam/starchart/schema"
)

// ErrHistoryHTML is returned when the history document is requested as HTML.
var ErrHistoryHTML = errors.New("history output does not support html; use the dashboard command")

var historyHeader = []string{"repository", "html_url", "timestamp", "stars", "forks"}

// PrintHistory writes the aggregated history document.
// Text and JSON modes emit the document itself; tabular modes flatten it to one row per entry.
func PrintHistory(doc schema.HistoryDocument, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.TextOut, schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCompactJSON(w, doc)
		}, "Wrote history"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForHistory(w, doc)
		}, "Wrote CSV history"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteHistoryParquet(w, doc)
		}, "Wrote Parquet history"); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	case schema.XLSXOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeXLSX(w, "History", historyHeader, historyRows(doc))
		}, "Wrote XLSX history"); err != nil {
			return fmt.Errorf("error writing XLSX output: %w", err)
		}
	default:
		return ErrHistoryHTML
	}
	return nil
}

func writeCSVResultsForHistory(w io.Writer, doc schema.HistoryDocument) error {
	return writeCSVWithHeader(w, historyHeader, func(cw *csv.Writer) error {
		for _, name := range schema.SortedProjectNames(doc) {
			project := doc.Projects[name]
			for _, e := range project.History {
				rec := []string{name, project.HTMLURL, e.Timestamp, strconv.Itoa(e.Stars), strconv.Itoa(e.Forks)}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func historyRows(doc schema.HistoryDocument) [][]any {
	var rows [][]any
	for _, name := range schema.SortedProjectNames(doc) {
		project := doc.Projects[name]
		for _, e := range project.History {
			rows = append(rows, []any{name, project.HTMLURL, e.Timestamp, e.Stars, e.Forks})
		}
	}
	return rows
}
