package schema

// Custom string types for type safety.
type (
	// Metric selects which cumulative value a chart plots.
	Metric string

	// OutputMode represents the format of the output.
	OutputMode string

	// LoadStatus is the loading state of the dashboard.
	LoadStatus string
)

// All metrics supported.
const (
	StarsMetric Metric = "stars" // default
	ForksMetric Metric = "forks"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
	XLSXOut    OutputMode = "xlsx"
	HTMLOut    OutputMode = "html"
)

// All load statuses supported.
const (
	LoadingStatus LoadStatus = "loading"
	ReadyStatus   LoadStatus = "ready"
	EmptyStatus   LoadStatus = "empty"
	FailedStatus  LoadStatus = "failed"
)

// ManifestFileName is the store-level file listing every snapshot.
const ManifestFileName = "manifest.json"

// SnapshotExt is the extension of snapshot files.
const SnapshotExt = ".json"

// AllMetrics returns a list of all supported metrics.
var AllMetrics = []Metric{StarsMetric, ForksMetric}

// ValidMetrics lists all valid metrics.
var ValidMetrics = map[Metric]struct{}{
	StarsMetric: {},
	ForksMetric: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
	XLSXOut:    {},
	HTMLOut:    {},
}

// Title returns the display title of a metric.
func (m Metric) Title() string {
	switch m {
	case ForksMetric:
		return "Forks"
	default:
		return "Stars"
	}
}
