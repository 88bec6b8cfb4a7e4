// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/starchart/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the starchart MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"starchart",
		version,
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	s.AddTool(mcp.NewTool("list_repositories",
		mcp.WithDescription("List tracked repositories ranked by total stars, with history statistics."),
		mcp.WithString("source", mcp.Description("Snapshot store: a directory or an http(s) base URL. Defaults to the configured source.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of repositories returned.")),
	), h.handleListRepositories)

	s.AddTool(mcp.NewTool("get_series",
		mcp.WithDescription("Return the cumulative daily star and fork series of one repository."),
		mcp.WithString("repository", mcp.Description("Repository in owner/repo form."), mcp.Required()),
		mcp.WithString("source", mcp.Description("Snapshot store: a directory or an http(s) base URL.")),
	), h.handleGetSeries)

	s.AddTool(mcp.NewTool("align_series",
		mcp.WithDescription("Align the cumulative series of several repositories onto one date axis for comparison."),
		mcp.WithString("repositories", mcp.Description("Comma-separated owner/repo names. Defaults to the top repository.")),
		mcp.WithString("metric", mcp.Description("Metric to align. Defaults to 'stars'."), mcp.Enum("stars", "forks")),
		mcp.WithString("source", mcp.Description("Snapshot store: a directory or an http(s) base URL.")),
	), h.handleAlignSeries)

	return s
}

// StartMCPServer starts the starchart MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, version string) error {
	s := NewMCPServer(baseCfg, version)
	return server.ServeStdio(s)
}
