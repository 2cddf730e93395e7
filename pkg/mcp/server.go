package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/urmzd/homeview/pkg/entity"
	"github.com/urmzd/homeview/pkg/route"
)

// Server exposes entity lookups and the route table as MCP tools
type Server struct {
	mcpServer *server.MCPServer
	source    entity.Source
	routes    []route.Route
	basePath  string
}

// NewServer creates a new MCP server over source
func NewServer(source entity.Source, basePath string) *Server {
	s := &Server{
		source:   source,
		routes:   route.Table(),
		basePath: basePath,
	}

	s.mcpServer = server.NewMCPServer(
		"homeview",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
