// Package mcp exposes the site's normalized content to MCP clients over
// stdio.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/mckimdesign/archsite/internal/content"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes read-only content tools.
type Server struct {
	provider content.Provider
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server reading from provider.
func NewServer(provider content.Provider) *Server {
	s := &Server{provider: provider}

	s.mcp = server.NewMCPServer(
		"archsite",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(listProjectsTool, s.handleListProjects)
	s.mcp.AddTool(getProjectTool, s.handleGetProject)
	s.mcp.AddTool(listCategoriesTool, s.handleListCategories)
	s.mcp.AddTool(getSiteSettingsTool, s.handleGetSiteSettings)
	s.mcp.AddTool(getPageTool, s.handleGetPage)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
