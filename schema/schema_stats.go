package schema

import "time"

// RepositoryStats summarizes a single repository record.
type RepositoryStats struct {
	Name          string    `json:"name"`
	TotalStars    int       `json:"total_stars"`
	TotalForks    int       `json:"total_forks"`
	FetchedAt     time.Time `json:"fetched_at"`
	FirstDate     string    `json:"first_date,omitempty"`
	LastDate      string    `json:"last_date,omitempty"`
	ActiveDays    int       `json:"active_days"`
	PeakStarsDate string    `json:"peak_stars_date,omitempty"`
	PeakStars     int       `json:"peak_stars"`
}

// RankedRepository adds presentation data to RepositoryStats.
type RankedRepository struct {
	Rank int `json:"rank"`
	RepositoryStats
}
