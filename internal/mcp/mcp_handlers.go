package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/starchart/core"
	"github.com/huangsam/starchart/internal/contract"
	"github.com/huangsam/starchart/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// listResponse is the payload of list_repositories.
type listResponse struct {
	Source       string                    `json:"source"`
	Total        int                       `json:"total"`
	Repositories []schema.RankedRepository `json:"repositories"`
	Skipped      []schema.SnapshotIssue    `json:"skipped,omitempty"`
}

// configFor clones the base config and applies the source argument shared by every tool.
func (h *toolHandler) configFor(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if src := request.GetString("source", ""); src != "" {
		if err := contract.ApplySource(cfg, src); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (h *toolHandler) handleListRepositories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = min(l, contract.MaxResultLimit)
	}

	ranked, cat, err := core.GetCatalogResults(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading catalog failed: %v", err)), nil
	}

	return jsonResult(listResponse{
		Source:       cat.Source,
		Total:        len(cat.Records),
		Repositories: ranked,
		Skipped:      cat.Skipped,
	})
}

func (h *toolHandler) handleGetSeries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("repository", "")
	if !schema.ValidRepoName(name) {
		return mcp.NewToolResultError(fmt.Sprintf("repository must be in owner/repo form, got %q", name)), nil
	}
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	result, err := core.GetSeriesResult(core.WithSuppressHeader(ctx), cfg, name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("series failed: %v", err)), nil
	}
	return jsonResult(result)
}

func (h *toolHandler) handleAlignSeries(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	if m := request.GetString("metric", ""); m != "" {
		metric := schema.Metric(m)
		if _, ok := schema.ValidMetrics[metric]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid metric %q", m)), nil
		}
		cfg.Metric = metric
	}
	if list := request.GetString("repositories", ""); list != "" {
		repos, err := contract.NormalizeRepositories(contract.SplitList(list))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
		}
		cfg.Repositories = repos
	}

	result, err := core.GetAlignedResult(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("alignment failed: %v", err)), nil
	}
	return jsonResult(result)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
