package core

import (
	"time"

	"github.com/huangsam/starchart/schema"
)

// BuildHistory aggregates the cumulative history of every record.
// Entries carry forward-filled cumulative stars and forks on each date of the
// union of both mappings.
func BuildHistory(records []schema.RepositoryRecord, now time.Time) schema.HistoryDocument {
	doc := schema.HistoryDocument{
		Metadata: schema.HistoryMetadata{
			LastUpdated: now.UTC().Format(time.RFC3339),
		},
		Projects: make(map[string]schema.ProjectHistory, len(records)),
	}

	for _, r := range records {
		points := BuildSeries(r.StarsByDate, r.ForksByDate)
		entries := make([]schema.HistoryEntry, len(points))
		for i, p := range points {
			entries[i] = schema.HistoryEntry{Timestamp: p.Date, Stars: p.Stars, Forks: p.Forks}
		}
		doc.Projects[r.Name] = schema.ProjectHistory{
			Name:    r.Name,
			HTMLURL: schema.GitHubURL(r.Name),
			History: entries,
		}

		if len(entries) == 0 {
			continue
		}
		first := entries[0].Timestamp
		if doc.Metadata.FirstRecorded == nil || first < *doc.Metadata.FirstRecorded {
			doc.Metadata.FirstRecorded = &first
		}
		doc.Metadata.TotalSnapshots += len(entries)
	}
	return doc
}
