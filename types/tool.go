package types

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ToolHandler is the function signature for MCP tool handlers
type ToolHandler = func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

// Tool pairs a tool descriptor with its handler
type Tool struct {
	Tool    mcp.Tool
	Handler ToolHandler
}
