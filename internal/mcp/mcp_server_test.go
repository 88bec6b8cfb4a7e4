package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/starchart/internal/contract"
	mcp_internal "github.com/huangsam/starchart/internal/mcp"
	"github.com/huangsam/starchart/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSnapshots(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"acme_rocket.json": `{"repository":"acme/rocket","total_stars":9,"fetched_at":"2024-03-01T00:00:00Z","stars_by_date":{"2024-01-01":5,"2024-01-03":4}}`,
		"acme_sled.json":   `{"repository":"acme/sled","total_stars":3,"fetched_at":"2024-03-01T00:00:00Z","stars_by_date":{"2024-01-02":3}}`,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func callTool(t *testing.T, cfg *contract.Config, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	s := mcp_internal.NewMCPServer(cfg, "test")
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{Params: mcp.CallToolParams{Name: name, Arguments: args}}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

func resultText(res *mcp.CallToolResult) string {
	return res.Content[0].(mcp.TextContent).Text
}

func baseConfig(source string) *contract.Config {
	return &contract.Config{
		Source:        source,
		Workers:       2,
		Metric:        schema.StarsMetric,
		ResultLimit:   contract.DefaultResultLimit,
		MaxSelections: contract.DefaultMaxSelections,
		Timeout:       contract.DefaultTimeout,
	}
}

func TestListRepositories(t *testing.T) {
	res := callTool(t, baseConfig(writeSnapshots(t)), "list_repositories", map[string]any{"limit": 1.0})
	require.False(t, res.IsError, resultText(res))

	var got struct {
		Total        int                       `json:"total"`
		Repositories []schema.RankedRepository `json:"repositories"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(res)), &got))
	assert.Equal(t, 2, got.Total)
	require.Len(t, got.Repositories, 1)
	assert.Equal(t, "acme/rocket", got.Repositories[0].Name)
}

func TestListRepositoriesSourceOverride(t *testing.T) {
	cfg := baseConfig(filepath.Join(t.TempDir(), "missing"))
	res := callTool(t, cfg, "list_repositories", map[string]any{"source": writeSnapshots(t)})
	require.False(t, res.IsError, resultText(res))
	assert.Contains(t, resultText(res), "acme/sled")
	assert.Equal(t, "missing", filepath.Base(cfg.Source), "base config must not be mutated")
}

func TestGetSeries(t *testing.T) {
	res := callTool(t, baseConfig(writeSnapshots(t)), "get_series", map[string]any{"repository": "acme/rocket"})
	require.False(t, res.IsError, resultText(res))

	var got schema.SeriesResult
	require.NoError(t, json.Unmarshal([]byte(resultText(res)), &got))
	assert.Equal(t, "acme/rocket", got.Name)
	require.Len(t, got.Points, 2)
	assert.Equal(t, 9, got.Points[1].Stars)
}

func TestAlignSeries(t *testing.T) {
	res := callTool(t, baseConfig(writeSnapshots(t)), "align_series", map[string]any{
		"repositories": "acme/rocket, acme/sled",
		"metric":       "stars",
	})
	require.False(t, res.IsError, resultText(res))

	var got struct {
		Metric       string           `json:"metric"`
		Repositories []string         `json:"repositories"`
		Points       []map[string]any `json:"points"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(res)), &got))
	assert.Equal(t, []string{"acme/rocket", "acme/sled"}, got.Repositories)
	require.Len(t, got.Points, 3)
	assert.InDelta(t, 5, got.Points[1]["acme/rocket"], 0)
	assert.InDelta(t, 3, got.Points[1]["acme/sled"], 0)
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	cfg := baseConfig(writeSnapshots(t))

	tests := []struct {
		name     string
		tool     string
		args     map[string]any
		contains string
	}{
		{"get_series missing repository", "get_series", map[string]any{}, "owner/repo form"},
		{"get_series unknown repository", "get_series", map[string]any{"repository": "acme/ghost"}, "repository not found"},
		{"align_series invalid metric", "align_series", map[string]any{"metric": "watchers"}, "invalid metric"},
		{"align_series invalid name", "align_series", map[string]any{"repositories": "nope"}, "invalid repository name"},
		{"list_repositories bad source", "list_repositories", map[string]any{"source": "ftp://host/data"}, "unsupported source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := callTool(t, cfg, tt.tool, tt.args)
			assert.True(t, res.IsError, "The response should indicate an error state")
			assert.Contains(t, resultText(res), tt.contains)
		})
	}
}
