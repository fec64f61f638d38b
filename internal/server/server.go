// Package server exposes application inspection as Model Context Protocol tools.
package server

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/atspi-inspect/internal/platform"
	"github.com/mj1618/atspi-inspect/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
}

// Server wraps the MCP server around a single bus connection. Tool calls
// are serialized on the connection.
type Server struct {
	bus    platform.Bus
	busMu  sync.Mutex
	logger *slog.Logger
	mcp    *mcpserver.MCPServer
}

// New creates an MCP server with all inspection tools registered.
func New(bus platform.Bus, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{bus: bus, logger: logger}
	s.mcp = mcpserver.NewMCPServer("atspi-inspect", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		s.logger.Info("serving MCP over HTTP", "port", cfg.Port)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_applications",
			mcp.WithDescription("List the applications registered on the accessibility bus with their bus name, name, and root object"),
			mcp.WithString("name", mcp.Description("Only list applications whose name contains this text (case-insensitive)")),
		),
		s.handleList,
	)

	s.mcp.AddTool(
		mcp.NewTool("inspect_application",
			mcp.WithDescription("Read the accessible properties of an application's root object, optionally with its tree of accessible objects. Each property reports a value, no-value, or error status."),
			mcp.WithString("query", mcp.Description("Bus name (':1.49'), well-known bus name, or application name. Empty inspects the registry.")),
			mcp.WithBoolean("print_tree", mcp.Description("Include the tree of accessible objects")),
			mcp.WithBoolean("flat", mcp.Description("Return the tree as a flat list with path breadcrumbs")),
			mcp.WithNumber("max_depth", mcp.Description("Max tree depth below the root (0 = unlimited)")),
			mcp.WithString("roles", mcp.Description("Comma-separated roles to keep in the tree")),
			mcp.WithBoolean("accept_partial", mcp.Description("Include every partial and repeated name match instead of only the first exact match")),
		),
		s.handleInspect,
	)
}
