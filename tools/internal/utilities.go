// Package internal provides shared plumbing for tool definitions: the handler
// signature, annotation hints and result helpers.
package internal

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// RespondJSON serializes input as the text content of a successful tool result
func RespondJSON(input any) (*mcp.CallToolResult, error) {
	result, err := json.Marshal(input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(result)), nil
}

// Summarize keeps only the given keys of each item, preserving item order.
// Used by listing tools to strip fields that bloat the agent's context window.
func Summarize(items []map[string]any, keys ...string) []map[string]any {
	summary := make([]map[string]any, 0, len(items))
	for _, item := range items {
		trimmed := make(map[string]any, len(keys))
		for _, key := range keys {
			if value, ok := item[key]; ok {
				trimmed[key] = value
			}
		}
		summary = append(summary, trimmed)
	}
	return summary
}
