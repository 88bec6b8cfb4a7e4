package schema

import "slices"

// HistoryDocument is the aggregated history of every repository in a catalog.
type HistoryDocument struct {
	Metadata HistoryMetadata           `json:"metadata"`
	Projects map[string]ProjectHistory `json:"projects"`
}

// HistoryMetadata describes a HistoryDocument.
type HistoryMetadata struct {
	FirstRecorded  *string `json:"first_recorded"` // Earliest history date; null when no history exists
	LastUpdated    string  `json:"last_updated"`
	TotalSnapshots int     `json:"total_snapshots"`
}

// ProjectHistory is the cumulative history of one repository.
type ProjectHistory struct {
	Name    string         `json:"name"`
	HTMLURL string         `json:"html_url"`
	History []HistoryEntry `json:"history"`
}

// HistoryEntry is one cumulative data point.
type HistoryEntry struct {
	Timestamp string `json:"timestamp"`
	Stars     int    `json:"stars"`
	Forks     int    `json:"forks"`
}

// SortedProjectNames returns the project keys of doc in ascending order.
func SortedProjectNames(doc HistoryDocument) []string {
	names := make([]string, 0, len(doc.Projects))
	for name := range doc.Projects {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
