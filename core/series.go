package core

import (
	"slices"

	"github.com/huangsam/starchart/schema"
)

// BuildSeries merges daily star and fork deltas into one cumulative series.
// There is one point per distinct date in either mapping, in ascending order,
// and a date missing from one mapping counts as a zero delta for it.
func BuildSeries(starsByDate, forksByDate map[string]int) []schema.TimeSeriesPoint {
	dates := unionDates(starsByDate, forksByDate)
	points := make([]schema.TimeSeriesPoint, 0, len(dates))

	var stars, forks int
	for _, date := range dates {
		ds, df := starsByDate[date], forksByDate[date]
		stars += ds
		forks += df
		points = append(points, schema.TimeSeriesPoint{
			Date:       date,
			Stars:      stars,
			Forks:      forks,
			DailyStars: ds,
			DailyForks: df,
		})
	}
	return points
}

// RecordSeries builds the cumulative series of one record.
func RecordSeries(record schema.RepositoryRecord) schema.SeriesResult {
	return schema.SeriesResult{
		Name:   record.Name,
		Points: BuildSeries(record.StarsByDate, record.ForksByDate),
	}
}

// unionDates returns the sorted, de-duplicated keys of every mapping.
// ISO calendar dates sort correctly as strings.
func unionDates(mappings ...map[string]int) []string {
	size := 0
	for _, m := range mappings {
		size += len(m)
	}
	dates := make([]string, 0, size)
	for _, m := range mappings {
		for date := range m {
			dates = append(dates, date)
		}
	}
	slices.Sort(dates)
	return slices.Compact(dates)
}
