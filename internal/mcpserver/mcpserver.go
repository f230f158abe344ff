// Package mcpserver exposes the linter as MCP tools over stdio so agents
// can validate and profile Avalonia markup without shelling out.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server and registers the xamlint tools.
type Server struct {
	server *mcp.Server
}

// NewServer creates a new MCP server with all xamlint tools registered.
func NewServer(version string) *Server {
	if version == "" {
		version = "dev"
	}
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "xamlint",
			Version: version,
		},
		nil,
	)

	s := &Server{server: server}
	s.registerTools()
	s.registerPrompts()
	return s
}

// Run starts the MCP server over stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "validate_xaml",
		Description: describeValidate(),
	}, handleValidateXAML)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_performance",
		Description: describeAnalyze(),
	}, handleAnalyzePerformance)
}
