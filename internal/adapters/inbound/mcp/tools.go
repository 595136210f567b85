package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/observerdev/observer/internal/adapters/outbound/analysis"
	"github.com/observerdev/observer/internal/adapters/outbound/config"
	"github.com/observerdev/observer/internal/adapters/outbound/contracts"
	"github.com/observerdev/observer/internal/adapters/outbound/gitinfo"
	"github.com/observerdev/observer/internal/adapters/outbound/scanner"
	"github.com/observerdev/observer/internal/adapters/outbound/snapshot"
	"github.com/observerdev/observer/internal/application"
	"github.com/observerdev/observer/internal/domain"
	"github.com/observerdev/observer/internal/domain/scoring"
)

// registerTools registers all Observer MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. observer_analyze
	s.AddTool(
		mcplib.NewTool("observer_analyze",
			mcplib.WithDescription("Run all health rules and return the full report (summary, buckets, insights) as JSON"),
		),
		handleAnalyze(projectPath),
	)

	// 2. observer_buckets
	s.AddTool(
		mcplib.NewTool("observer_buckets",
			mcplib.WithDescription("Return only the priority buckets (BLOCKERS, STRUCTURAL, COMPLIANCE) with their issues"),
		),
		handleBuckets(projectPath),
	)

	// 3. observer_check_file
	s.AddTool(
		mcplib.NewTool("observer_check_file",
			mcplib.WithDescription("Return all issues found for a single file in the project"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Relative path to the file to check"),
			),
		),
		handleCheckFile(projectPath),
	)

	// 4. observer_insights
	s.AddTool(
		mcplib.NewTool("observer_insights",
			mcplib.WithDescription("Return pattern insights: problem areas, hotspot files, and recommendations"),
		),
		handleInsights(projectPath),
	)

	// 5. observer_snapshot
	s.AddTool(
		mcplib.NewTool("observer_snapshot",
			mcplib.WithDescription("Record a snapshot of the current analysis and return the entry with its diff against the previous run"),
		),
		handleSnapshot(projectPath),
	)
}

// newAnalyzeService creates the standard set of outbound adapters and the
// analysis service.
func newAnalyzeService() *application.AnalyzeService {
	return application.NewAnalyzeService(
		scanner.New(),
		analysis.New(),
		config.New(),
		contracts.New(),
		gitinfo.New(),
	)
}

func handleAnalyze(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := newAnalyzeService().Analyze(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleBuckets(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := newAnalyzeService().Analyze(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(report.Buckets)
	}
}

func handleCheckFile(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := newAnalyzeService().Analyze(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}

		type fileIssues struct {
			File   string         `json:"file"`
			Score  int            `json:"score"`
			Issues []domain.Issue `json:"issues"`
		}

		result := fileIssues{File: file, Issues: []domain.Issue{}}
		errors, warnings := 0, 0
		for _, bucket := range report.Buckets {
			for _, issue := range bucket.Issues {
				if issue.File != file {
					continue
				}
				if issue.Severity == domain.SeverityCritical {
					errors++
				} else {
					warnings++
				}
				result.Issues = append(result.Issues, issue)
			}
		}
		result.Score = scoring.FileScore(errors, warnings)
		return jsonResult(result)
	}
}

func handleInsights(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := newAnalyzeService().Analyze(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}
		return jsonResult(report.Insights)
	}
}

func handleSnapshot(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, err := newAnalyzeService().Analyze(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("analysis failed: %v", err)), nil
		}

		svc := application.NewSnapshotService(snapshot.New())
		entry, err := svc.Record(projectPath, report)
		if err != nil {
			return errorResult(fmt.Sprintf("snapshot failed: %v", err)), nil
		}
		return jsonResult(entry)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
