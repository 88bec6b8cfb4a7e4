package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/starchart/internal/contract"
	"github.com/huangsam/starchart/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fetched = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func sampleRanked() []schema.RankedRepository {
	return []schema.RankedRepository{
		{Rank: 1, RepositoryStats: schema.RepositoryStats{
			Name: "acme/rocket", TotalStars: 1200, TotalForks: 40, FetchedAt: fetched,
			FirstDate: "2024-01-01", LastDate: "2024-02-01", ActiveDays: 3, PeakStarsDate: "2024-01-15", PeakStars: 700,
		}},
		{Rank: 2, RepositoryStats: schema.RepositoryStats{
			Name: "acme/sled", TotalStars: 9, FetchedAt: fetched,
		}},
	}
}

func sampleCatalog() schema.Catalog {
	return schema.Catalog{
		Source:  "repo_data",
		Records: make([]schema.RepositoryRecord, 3),
		Skipped: []schema.SnapshotIssue{{File: "broken.json", Reason: "invalid JSON"}},
	}
}

func TestWriteCatalogTable(t *testing.T) {
	var buf bytes.Buffer
	cfg := &contract.Config{Width: 120, Workers: 4}
	require.NoError(t, writeCatalogTable(&buf, sampleRanked(), sampleCatalog(), cfg, 1500*time.Microsecond))

	out := buf.String()
	assert.Contains(t, out, "acme/rocket")
	assert.Contains(t, out, "1,200")
	assert.Contains(t, out, "2024-01-15 (+700)")
	assert.Contains(t, out, "Showing top 2 of 3 repositories from repo_data")
	assert.Contains(t, out, "Skipped 1 malformed snapshot(s)")
	assert.Contains(t, out, "with 4 workers")
}

func TestWriteCSVResultsForCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCSVResultsForCatalog(&buf, sampleRanked()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(catalogHeader, ","), lines[0])
	assert.Equal(t, "1,acme/rocket,1200,40,2024-03-01T12:00:00Z,2024-01-01,2024-02-01,3,2024-01-15,700", lines[1])
	assert.Equal(t, "2,acme/sled,9,0,2024-03-01T12:00:00Z,,,0,,0", lines[2])
}

func TestPrintCatalogResultsJSON(t *testing.T) {
	target := filepath.Join(t.TempDir(), "catalog.json")
	cfg := &contract.Config{Output: schema.JSONOut, OutputFile: target}
	require.NoError(t, PrintCatalogResults(sampleRanked(), sampleCatalog(), cfg, time.Second))

	content, err := os.ReadFile(target)
	require.NoError(t, err)

	var got struct {
		Source       string `json:"source"`
		Repositories []struct {
			Rank int    `json:"rank"`
			Name string `json:"name"`
		} `json:"repositories"`
		Skipped []schema.SnapshotIssue `json:"skipped"`
	}
	require.NoError(t, json.Unmarshal(content, &got))
	assert.Equal(t, "repo_data", got.Source)
	require.Len(t, got.Repositories, 2)
	assert.Equal(t, 1, got.Repositories[0].Rank)
	assert.Equal(t, "acme/rocket", got.Repositories[0].Name)
	assert.Equal(t, "broken.json", got.Skipped[0].File)
}

func TestPrintCatalogResultsHTML(t *testing.T) {
	target := filepath.Join(t.TempDir(), "catalog.html")
	cfg := &contract.Config{Output: schema.HTMLOut, OutputFile: target, Metric: schema.StarsMetric}
	require.NoError(t, PrintCatalogResults(sampleRanked(), sampleCatalog(), cfg, time.Second))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Total Stars")
	assert.Contains(t, string(content), "sled")
}
