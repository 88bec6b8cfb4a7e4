package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/huangsam/starchart/internal/contract"
	"github.com/huangsam/starchart/schema"
	"github.com/xuri/excelize/v2"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() {
			if err := file.Close(); err != nil {
				contract.LogWarn("Failed to close output file", err)
			}
		}()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCompactJSON encodes data without indentation.
func writeCompactJSON(w io.Writer, data any) error {
	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// writeXLSX writes a single-sheet workbook with a header row.
func writeXLSX(w io.Writer, sheet string, header []string, rows [][]any) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write XLSX header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write XLSX row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write XLSX: %w", err)
	}
	return nil
}

// formatCount renders n with thousands separators.
func formatCount(n int) string {
	return humanize.Comma(int64(n))
}

// formatDelta renders a daily delta with an explicit sign.
func formatDelta(n int) string {
	if n > 0 {
		return "+" + humanize.Comma(int64(n))
	}
	return humanize.Comma(int64(n))
}

// formatName colors a repository name for tables when colors are enabled.
func formatName(name string, cfg *contract.Config, width int) string {
	name = contract.TruncateName(name, width)
	if cfg.UseColors {
		return contract.AccentColor.Sprint(name)
	}
	return name
}

// lastN returns the trailing limit elements of items, or all of them when limit <= 0.
func lastN[T any](items []T, limit int) []T {
	if limit <= 0 || len(items) <= limit {
		return items
	}
	return items[len(items)-limit:]
}

// PrintNotice writes an informational message to stderr.
func PrintNotice(msg string) {
	_, _ = contract.NoticeColor.Fprintln(os.Stderr, msg)
}

// EmptyCatalogNotice describes a store without usable repository data.
func EmptyCatalogNotice(cat schema.Catalog) string {
	msg := fmt.Sprintf("No repository data found in %s", cat.Source)
	if len(cat.Skipped) > 0 {
		msg += fmt.Sprintf(" (%d snapshot(s) skipped)", len(cat.Skipped))
	}
	return msg
}

// PrintEmptyCatalog reports that a store holds no usable repository data.
// Machine formats still receive a well-formed empty document.
func PrintEmptyCatalog(cat schema.Catalog, cfg *contract.Config) error {
	msg := EmptyCatalogNotice(cat)

	switch cfg.Output {
	case schema.JSONOut:
		PrintNotice(msg)
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, catalogJSON{Source: cat.Source, Repositories: []schema.RankedRepository{}, Skipped: cat.Skipped})
		}, "Wrote empty JSON catalog")
	case schema.TextOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if cfg.UseColors {
				_, err := contract.NoticeColor.Fprintln(w, msg)
				return err
			}
			_, err := fmt.Fprintln(w, msg)
			return err
		}, "Wrote notice")
	case schema.HTMLOut:
		PrintNotice(msg)
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return renderPage(w, "Repository catalog", buildEmptyChart("Total "+cfg.Metric.Title()))
		}, "Wrote empty HTML catalog"); err != nil {
			return fmt.Errorf("error writing HTML output: %w", err)
		}
		return nil
	default:
		PrintNotice(msg)
		return PrintCatalogResults([]schema.RankedRepository{}, cat, cfg, 0)
	}
}
