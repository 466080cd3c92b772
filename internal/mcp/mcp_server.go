// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bmeddeb/gitlens/internal/contract"
)

// NewMCPServer initializes and configures the GitLens MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, src contract.HistorySource) *server.MCPServer {
	s := server.NewMCPServer(
		"GitLens Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		src:     src,
	}

	// --- 1. Tool: get_timeline ---
	s.AddTool(mcp.NewTool("get_timeline",
		mcp.WithDescription("Aggregate commit counts into time-period buckets (hour, day, week, month, year)."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository (defaults to the configured repository if not specified).")),
		mcp.WithString("period", mcp.Description("Bucketing period. Defaults to 'day'."), mcp.Enum("hour", "day", "week", "month", "year")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of commits scanned.")),
	), h.handleGetTimeline)

	// --- 2. Tool: get_file_evolution ---
	s.AddTool(mcp.NewTool("get_file_evolution",
		mcp.WithDescription("Trace one file's history across renames with per-commit line deltas."),
		mcp.WithString("path", mcp.Description("The file path to follow."), mcp.Required()),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of commits scanned.")),
	), h.handleGetFileEvolution)

	// --- 3. Tool: get_hotspots ---
	s.AddTool(mcp.NewTool("get_hotspots",
		mcp.WithDescription("Rank source files by churn weighted with a size proxy."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetHotspots)

	// --- 4. Tool: get_knowledge_map ---
	s.AddTool(mcp.NewTool("get_knowledge_map",
		mcp.WithDescription("Build per-author expertise profiles from current line attribution."),
		mcp.WithString("repo_path", mcp.Description("Path to the Git repository.")),
	), h.handleGetKnowledgeMap)

	return s
}

// StartMCPServer starts the GitLens MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, src contract.HistorySource) error {
	s := NewMCPServer(baseCfg, src)
	return server.ServeStdio(s)
}
