package schema

import "encoding/json"

// TimeSeriesPoint is one day of a repository's cumulative series.
type TimeSeriesPoint struct {
	Date       string `json:"date"`        // YYYY-MM-DD
	Stars      int    `json:"stars"`       // Cumulative stars up to and including Date
	Forks      int    `json:"forks"`       // Cumulative forks up to and including Date
	DailyStars int    `json:"daily_stars"` // Raw star delta on Date
	DailyForks int    `json:"daily_forks"` // Raw fork delta on Date
}

// Value returns the cumulative value for the given metric.
func (p TimeSeriesPoint) Value(metric Metric) int {
	if metric == ForksMetric {
		return p.Forks
	}
	return p.Stars
}

// SeriesResult holds the cumulative series of one repository.
type SeriesResult struct {
	Name   string            `json:"name"`
	Points []TimeSeriesPoint `json:"points"`
}

// AlignedPoint holds one date of the shared axis with a value per selected repository.
type AlignedPoint struct {
	Date   string
	Values map[string]int
}

// MarshalJSON flattens the point into {"date": ..., "<repo>": value, ...}.
func (p AlignedPoint) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(p.Values)+1)
	for name, v := range p.Values {
		flat[name] = v
	}
	flat["date"] = p.Date
	return json.Marshal(flat)
}

// AlignedResult is a set of series aligned onto one ordered date axis.
// Repositories fixes the column order for writers.
type AlignedResult struct {
	Metric       Metric         `json:"metric"`
	Repositories []string       `json:"repositories"`
	Points       []AlignedPoint `json:"points"`
}

// Dates returns the shared date axis.
func (r AlignedResult) Dates() []string {
	dates := make([]string, len(r.Points))
	for i, p := range r.Points {
		dates[i] = p.Date
	}
	return dates
}

// Column returns the values of one repository along the date axis.
func (r AlignedResult) Column(name string) []int {
	col := make([]int, len(r.Points))
	for i, p := range r.Points {
		col[i] = p.Values[name]
	}
	return col
}
