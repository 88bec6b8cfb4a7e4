// Package parquet provides data structures and functions for exporting star
// history data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/starchart/schema"
	"github.com/parquet-go/parquet-go"
)

// RepositoryRow is one ranked repository of a catalog.
type RepositoryRow struct {
	// Rank is the 1-based position in the catalog
	Rank int32 `parquet:"rank,snappy"`

	// Repository is the canonical owner/repo name
	Repository string `parquet:"repository,snappy"`

	TotalStars int64 `parquet:"total_stars,snappy"`
	TotalForks int64 `parquet:"total_forks,snappy"`

	// FetchedAt is when the snapshot was taken (stored as TIMESTAMP with nanosecond precision)
	FetchedAt time.Time `parquet:"fetched_at,snappy"`

	// FirstDate and LastDate bound the history (nullable when there is none)
	FirstDate *string `parquet:"first_date,optional,snappy"`
	LastDate  *string `parquet:"last_date,optional,snappy"`

	ActiveDays int32 `parquet:"active_days,snappy"`

	// PeakStarsDate is the day with the most new stars (nullable)
	PeakStarsDate *string `parquet:"peak_stars_date,optional,snappy"`
	PeakStars     int64   `parquet:"peak_stars,snappy"`
}

// SeriesRow is one point of a repository's cumulative series.
type SeriesRow struct {
	Repository string `parquet:"repository,snappy"`
	Date       string `parquet:"date,snappy"`
	Stars      int64  `parquet:"stars,snappy"`
	Forks      int64  `parquet:"forks,snappy"`
	DailyStars int64  `parquet:"daily_stars,snappy"`
	DailyForks int64  `parquet:"daily_forks,snappy"`
}

// AlignedRow is one cell of an aligned result in long format.
// Columns are dynamic in the wide form, so rows carry the repository name instead.
type AlignedRow struct {
	Date       string `parquet:"date,snappy"`
	Repository string `parquet:"repository,snappy"`
	Metric     string `parquet:"metric,dict,snappy"`
	Value      int64  `parquet:"value,snappy"`
}

// HistoryRow is one entry of a project's history.
type HistoryRow struct {
	Repository string `parquet:"repository,dict,snappy"`
	HTMLURL    string `parquet:"html_url,dict,snappy"`
	Timestamp  string `parquet:"timestamp,snappy"`
	Stars      int64  `parquet:"stars,snappy"`
	Forks      int64  `parquet:"forks,snappy"`
}

// writeRows writes rows to w using struct schema inference.
func writeRows[T any](w io.Writer, rows []T) error {
	writer := parquet.NewGenericWriter[T](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// WriteRepositoriesParquet writes ranked repositories to w.
func WriteRepositoriesParquet(w io.Writer, ranked []schema.RankedRepository) error {
	return writeRows(w, ConvertRankedRepositories(ranked))
}

// WriteSeriesParquet writes a repository's series to w.
func WriteSeriesParquet(w io.Writer, result schema.SeriesResult) error {
	return writeRows(w, ConvertSeries(result))
}

// WriteAlignedParquet writes an aligned result to w in long format.
func WriteAlignedParquet(w io.Writer, result schema.AlignedResult) error {
	return writeRows(w, ConvertAligned(result))
}

// WriteHistoryParquet writes every history entry to w.
func WriteHistoryParquet(w io.Writer, doc schema.HistoryDocument) error {
	return writeRows(w, ConvertHistory(doc))
}

// ConvertRankedRepositories converts ranked stats to RepositoryRow for Parquet export.
func ConvertRankedRepositories(ranked []schema.RankedRepository) []RepositoryRow {
	rows := make([]RepositoryRow, len(ranked))
	for i, r := range ranked {
		rows[i] = RepositoryRow{
			Rank:          int32(r.Rank),
			Repository:    r.Name,
			TotalStars:    int64(r.TotalStars),
			TotalForks:    int64(r.TotalForks),
			FetchedAt:     r.FetchedAt,
			FirstDate:     optional(r.FirstDate),
			LastDate:      optional(r.LastDate),
			ActiveDays:    int32(r.ActiveDays),
			PeakStarsDate: optional(r.PeakStarsDate),
			PeakStars:     int64(r.PeakStars),
		}
	}
	return rows
}

// ConvertSeries converts a series to SeriesRow for Parquet export.
func ConvertSeries(result schema.SeriesResult) []SeriesRow {
	rows := make([]SeriesRow, len(result.Points))
	for i, p := range result.Points {
		rows[i] = SeriesRow{
			Repository: result.Name,
			Date:       p.Date,
			Stars:      int64(p.Stars),
			Forks:      int64(p.Forks),
			DailyStars: int64(p.DailyStars),
			DailyForks: int64(p.DailyForks),
		}
	}
	return rows
}

// ConvertAligned flattens an aligned result into AlignedRow, date-major in column order.
func ConvertAligned(result schema.AlignedResult) []AlignedRow {
	rows := make([]AlignedRow, 0, len(result.Points)*len(result.Repositories))
	for _, p := range result.Points {
		for _, name := range result.Repositories {
			rows = append(rows, AlignedRow{
				Date:       p.Date,
				Repository: name,
				Metric:     string(result.Metric),
				Value:      int64(p.Values[name]),
			})
		}
	}
	return rows
}

// ConvertHistory flattens a history document into HistoryRow, ordered by repository.
func ConvertHistory(doc schema.HistoryDocument) []HistoryRow {
	var rows []HistoryRow
	for _, name := range schema.SortedProjectNames(doc) {
		project := doc.Projects[name]
		for _, e := range project.History {
			rows = append(rows, HistoryRow{
				Repository: name,
				HTMLURL:    project.HTMLURL,
				Timestamp:  e.Timestamp,
				Stars:      int64(e.Stars),
				Forks:      int64(e.Forks),
			})
		}
	}
	return rows
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
