package core

import (
	"testing"
	"time"

	"github.com/huangsam/starchart/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	fetched := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	record := schema.RepositoryRecord{
		Name:        "a/x",
		TotalStars:  20,
		FetchedAt:   fetched,
		StarsByDate: map[string]int{"2024-01-01": 5, "2024-01-02": 9, "2024-01-05": 9},
		ForksByDate: map[string]int{"2024-01-03": 2, "2024-01-04": 1},
	}

	stats := ComputeStats(record)

	assert.Equal(t, "a/x", stats.Name)
	assert.Equal(t, 20, stats.TotalStars)
	assert.Equal(t, 3, stats.TotalForks, "fork deltas are summed without total_forks")
	assert.Equal(t, fetched, stats.FetchedAt)
	assert.Equal(t, "2024-01-01", stats.FirstDate)
	assert.Equal(t, "2024-01-05", stats.LastDate)
	assert.Equal(t, 5, stats.ActiveDays)
	assert.Equal(t, "2024-01-02", stats.PeakStarsDate)
	assert.Equal(t, 9, stats.PeakStars)
}

func TestComputeStatsPrefersTotalForks(t *testing.T) {
	stats := ComputeStats(schema.RepositoryRecord{
		Name:        "a/x",
		TotalForks:  40,
		HasForks:    true,
		ForksByDate: map[string]int{"2024-01-03": 2},
	})
	assert.Equal(t, 40, stats.TotalForks)
}

func TestComputeStatsNoHistory(t *testing.T) {
	stats := ComputeStats(schema.RepositoryRecord{Name: "a/x", TotalStars: 3})
	assert.Empty(t, stats.FirstDate)
	assert.Zero(t, stats.ActiveDays)
	assert.Zero(t, stats.PeakStars)
}

func TestRankRecords(t *testing.T) {
	records := []schema.RepositoryRecord{{Name: "a/a"}, {Name: "b/b"}, {Name: "c/c"}}

	ranked := RankRecords(records, 2)
	require.Len(t, ranked, 2)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "b/b", ranked[1].Name)

	assert.Len(t, RankRecords(records, 0), 3)
	assert.Len(t, RankRecords(records, 10), 3)
	assert.Empty(t, RankRecords(nil, 5))
}
