package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewObserverMCPServer creates a new MCP server with all Observer tools and
// resources registered. The projectPath is the root directory of the project
// to analyze.
func NewObserverMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"observer",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
