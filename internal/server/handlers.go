package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/gamectl/internal/steps"
	"gopkg.in/yaml.v3"
)

// resultToText serializes a StepResult to YAML for MCP response.
func resultToText(result steps.StepResult) string {
	b, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Sprintf("ok: %v\naction: %s\nerror: %s", result.OK, result.Action, result.Error)
	}
	return string(b)
}

// actionHandler returns a tool handler that runs action under the server lock.
func (s *Server) actionHandler(action string) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := request.GetArguments()

		s.mu.Lock()
		defer s.mu.Unlock()

		result := steps.Execute(ctx, s.ctrl, action, params)
		if !result.OK {
			return mcp.NewToolResultError(resultToText(result)), nil
		}
		return mcp.NewToolResultText(resultToText(result)), nil
	}
}
