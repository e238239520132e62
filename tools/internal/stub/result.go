package stub

import "github.com/mark3labs/mcp-go/mcp"

// Text returns the first text content of a tool result, or ""
func Text(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}
	for _, content := range result.Content {
		if text, ok := mcp.AsTextContent(content); ok {
			return text.Text
		}
	}
	return ""
}

// Request builds a tool call request with the given arguments
func Request(arguments map[string]any) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = arguments
	return request
}
