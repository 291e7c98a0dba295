// Package server exposes the controller operations as MCP tools.
package server

import (
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/gamectl/internal/steps"
	"github.com/mj1618/gamectl/internal/version"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
}

// Server wraps the MCP server around a single controller. Tool calls are
// serialized because every tool acts on the same application.
type Server struct {
	ctrl steps.Controller
	mu   sync.Mutex
	mcp  *mcpserver.MCPServer
}

// New creates an MCP server with all gamectl tools registered.
func New(ctrl steps.Controller) *Server {
	s := &Server{ctrl: ctrl}
	s.mcp = mcpserver.NewMCPServer("gamectl", version.Version)
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
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("launch",
			mcp.WithDescription("Launch the application through the OS shell"),
			mcp.WithBoolean("wait", mcp.Description("Wait for the application window to appear")),
			mcp.WithNumber("timeout", mcp.Description("Max seconds to wait for the window (default: 60)")),
		),
		s.actionHandler("launch"),
	)

	s.mcp.AddTool(
		mcp.NewTool("terminate",
			mcp.WithDescription("Terminate the current user's application processes"),
		),
		s.actionHandler("terminate"),
	)

	s.mcp.AddTool(
		mcp.NewTool("focus",
			mcp.WithDescription("Restore the application window and bring it to the foreground"),
		),
		s.actionHandler("focus"),
	)

	s.mcp.AddTool(
		mcp.NewTool("window_size",
			mcp.WithDescription("Report the client width and height of the application window in pixels"),
		),
		s.actionHandler("size"),
	)

	s.mcp.AddTool(
		mcp.NewTool("wait",
			mcp.WithDescription("Wait for the application window to appear or disappear"),
			mcp.WithBoolean("gone", mcp.Description("Wait until the window is NO LONGER present")),
			mcp.WithNumber("timeout", mcp.Description("Max seconds to wait (default: 30)")),
			mcp.WithNumber("interval", mcp.Description("Polling interval in ms (default: 500)")),
		),
		s.actionHandler("wait"),
	)

	s.mcp.AddTool(
		mcp.NewTool("shutdown",
			mcp.WithDescription("Terminate the application, then after a delay shut down, sleep, or hibernate the machine. exit and loop only terminate."),
			mcp.WithString("power", mcp.Description("Power action: exit, loop, shutdown, sleep, hibernate"), mcp.Required()),
			mcp.WithNumber("delay", mcp.Description("Seconds to wait before the power action (default: 60)")),
		),
		s.actionHandler("shutdown"),
	)
}
