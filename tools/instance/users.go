package instance

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type listUsersArgs struct {
	IncludeSettings bool `json:"include_settings,omitempty"`
}

// ListUsers lists all users set up on the instance
func ListUsers(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("instance-list-users"),
		Description: "List all users set up on the instance. Requires an API key with admin " +
			"rights. With include_settings=true, detailed per-user settings are included.",
		Annotations: i.ToolAnnotations("List users", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"include_settings": map[string]any{
					"type":        "boolean",
					"description": "Whether to include detailed user settings (defaults to false)",
				},
			},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args listUsersArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		users, err := dss.ListUsers(ctx, args.IncludeSettings)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list users: %v", err)), nil
		}

		return i.RespondJSON(users)
	})

	return i.Tool{Tool: tool, Handler: handler}
}
