package admin

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

const defaultAuditLimit = 50

type auditArgs struct {
	Tool   string `json:"tool,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// AuditTrail lists past tool invocations recorded by this server
func AuditTrail(audit types.AuditLog) i.Tool {
	tool := mcp.Tool{
		Name: string("admin-get-audit-trail"),
		Description: "List the tool invocations this server has recorded, most recent first. " +
			"Each entry carries the tool name, duration in milliseconds, an error message when " +
			"the invocation failed, and a timestamp. Optionally filter by tool name and " +
			"paginate with limit/offset.",
		Annotations: i.ToolAnnotations("Get audit trail", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"tool": map[string]any{
					"type":        "string",
					"description": "Only return invocations of this tool (defaults to all tools)",
				},
				"limit": map[string]any{
					"type":        "integer",
					"description": "Maximum number of entries to return (defaults to 50)",
				},
				"offset": map[string]any{
					"type":        "integer",
					"description": "Number of entries to skip, for pagination (defaults to 0)",
				},
			},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args auditArgs) (*mcp.CallToolResult, error) {
		limit := args.Limit
		if limit <= 0 {
			limit = defaultAuditLimit
		}

		records, err := audit.ListInvocations(ctx, types.InvocationQuery{
			Tool:   args.Tool,
			Limit:  limit,
			Offset: args.Offset,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list invocations: %v", err)), nil
		}

		return i.RespondJSON(records)
	})

	return i.Tool{Tool: tool, Handler: handler}
}
