// Package schema has models, constants and helpers shared by every part of starchart.
package schema

import "time"

// RepositorySnapshot is the on-disk shape of one snapshot file.
// FetchedAt is kept as the raw string because fetchers write ISO-8601
// timestamps with and without a zone designator.
type RepositorySnapshot struct {
	Repository  string         `json:"repository,omitempty"` // Canonical "owner/repo", written by newer fetchers
	TotalStars  int            `json:"total_stars"`
	TotalForks  *int           `json:"total_forks,omitempty"`
	FetchedAt   string         `json:"fetched_at"`
	StarsByDate map[string]int `json:"stars_by_date,omitempty"`
	ForksByDate map[string]int `json:"forks_by_date,omitempty"`
}

// RepositoryRecord is a normalized snapshot owned by the catalog.
// Records are treated as immutable once loaded; selections refer to them by Name.
type RepositoryRecord struct {
	Name        string         `json:"name"`      // owner/repo
	FileName    string         `json:"file_name"` // Snapshot file the record was parsed from
	TotalStars  int            `json:"total_stars"`
	TotalForks  int            `json:"total_forks"` // Zero when the snapshot carries no total_forks
	HasForks    bool           `json:"-"`           // True when TotalForks came from the snapshot
	FetchedAt   time.Time      `json:"fetched_at"`
	StarsByDate map[string]int `json:"stars_by_date"`
	ForksByDate map[string]int `json:"forks_by_date"`
}

// Catalog is the result of loading every snapshot in a store.
type Catalog struct {
	Source  string             `json:"source"`
	Records []RepositoryRecord `json:"records"`
	Skipped []SnapshotIssue    `json:"skipped,omitempty"`
}

// SnapshotIssue describes a snapshot file that was skipped during loading.
type SnapshotIssue struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// Empty reports whether the catalog holds no records.
func (c Catalog) Empty() bool {
	return len(c.Records) == 0
}

// Find returns the record with the given name.
func (c Catalog) Find(name string) (RepositoryRecord, bool) {
	for _, r := range c.Records {
		if r.Name == name {
			return r, true
		}
	}
	return RepositoryRecord{}, false
}

// Names returns the record names in catalog order.
func (c Catalog) Names() []string {
	names := make([]string, len(c.Records))
	for i, r := range c.Records {
		names[i] = r.Name
	}
	return names
}
