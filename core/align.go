package core

import (
	"slices"

	"github.com/huangsam/starchart/schema"
)

// AlignSeries places several cumulative series on one shared date axis.
//
// The axis is the sorted union of every date in the selected series. At each
// date a repository takes its own value when it has a point there, otherwise
// the value of its most recent earlier point, otherwise 0. Names fixes the
// column order; repeated names keep their first position and a name without
// a series is kept and reads 0 everywhere.
func AlignSeries(names []string, series map[string][]schema.TimeSeriesPoint, metric schema.Metric) schema.AlignedResult {
	names = uniqueNames(names)
	result := schema.AlignedResult{
		Metric:       metric,
		Repositories: names,
		Points:       []schema.AlignedPoint{},
	}

	var dates []string
	for _, name := range names {
		for _, p := range series[name] {
			dates = append(dates, p.Date)
		}
	}
	slices.Sort(dates)
	dates = slices.Compact(dates)

	// One cursor per repository; each series is walked once.
	cursors := make([]int, len(names))
	last := make([]int, len(names))
	for _, date := range dates {
		values := make(map[string]int, len(names))
		for i, name := range names {
			points := series[name]
			for cursors[i] < len(points) && points[cursors[i]].Date <= date {
				last[i] = points[cursors[i]].Value(metric)
				cursors[i]++
			}
			values[name] = last[i]
		}
		result.Points = append(result.Points, schema.AlignedPoint{Date: date, Values: values})
	}
	return result
}

// AlignRecords builds every record's series and aligns them in record order.
func AlignRecords(records []schema.RepositoryRecord, metric schema.Metric) schema.AlignedResult {
	names := make([]string, 0, len(records))
	series := make(map[string][]schema.TimeSeriesPoint, len(records))
	for _, r := range records {
		if _, ok := series[r.Name]; ok {
			continue
		}
		names = append(names, r.Name)
		series[r.Name] = BuildSeries(r.StarsByDate, r.ForksByDate)
	}
	return AlignSeries(names, series, metric)
}

// uniqueNames returns names without repeats, in first-seen order. The result never aliases names.
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
