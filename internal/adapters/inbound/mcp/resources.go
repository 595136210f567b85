package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/observerdev/observer/internal/adapters/outbound/snapshot"
	"github.com/observerdev/observer/internal/application"
)

// registerResources registers all Observer MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. observer://report - full analysis report
	s.AddResource(
		mcplib.NewResource(
			"observer://report",
			"Health Report",
			mcplib.WithResourceDescription("Current health report for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleReportResource(projectPath),
	)

	// 2. observer://history - snapshot history
	s.AddResource(
		mcplib.NewResource(
			"observer://history",
			"Snapshot History",
			mcplib.WithResourceDescription("Recorded snapshot entries with run-over-run diffs"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(projectPath),
	)
}

func handleReportResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		report, err := newAnalyzeService().Analyze(projectPath)
		if err != nil {
			return nil, fmt.Errorf("analysis failed: %w", err)
		}
		return jsonResource(req.Params.URI, report)
	}
}

func handleHistoryResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, req mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		svc := application.NewSnapshotService(snapshot.New())
		entries, err := svc.History(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}
		return jsonResource(req.Params.URI, entries)
	}
}

func jsonResource(uri string, v interface{}) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
