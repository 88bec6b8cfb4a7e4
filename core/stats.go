package core

import "github.com/huangsam/starchart/schema"

// ComputeStats summarizes one record.
// TotalForks prefers the snapshot's total_forks and falls back to the sum
// of fork deltas. PeakStarsDate is the earliest date with the largest
// daily star delta.
func ComputeStats(record schema.RepositoryRecord) schema.RepositoryStats {
	stats := schema.RepositoryStats{
		Name:       record.Name,
		TotalStars: record.TotalStars,
		TotalForks: record.TotalForks,
		FetchedAt:  record.FetchedAt,
	}

	points := BuildSeries(record.StarsByDate, record.ForksByDate)
	if len(points) == 0 {
		return stats
	}

	stats.FirstDate = points[0].Date
	stats.LastDate = points[len(points)-1].Date
	stats.ActiveDays = len(points)
	for _, p := range points {
		if p.DailyStars > stats.PeakStars {
			stats.PeakStars = p.DailyStars
			stats.PeakStarsDate = p.Date
		}
	}
	if !record.HasForks {
		stats.TotalForks = points[len(points)-1].Forks
	}
	return stats
}

// RankRecords returns the stats of the first limit records, numbered from 1.
// Records are expected in catalog order.
func RankRecords(records []schema.RepositoryRecord, limit int) []schema.RankedRepository {
	n := len(records)
	if limit > 0 {
		n = min(n, limit)
	}
	ranked := make([]schema.RankedRepository, 0, n)
	for i, r := range records[:n] {
		ranked = append(ranked, schema.RankedRepository{Rank: i + 1, RepositoryStats: ComputeStats(r)})
	}
	return ranked
}
