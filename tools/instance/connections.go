package instance

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type connectionNamesArgs struct {
	ConnectionType string `json:"connection_type"`
}

// ListConnectionNames lists the names of the connections on the instance
func ListConnectionNames(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("instance-list-connection-names"),
		Description: "List the names of all connections on the instance, optionally filtered " +
			"by connection type. Use 'all' as the type to list every connection. Useful before " +
			"dataset-create-managed to pick a valid connection.",
		Annotations: i.ToolAnnotations("List connection names", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"connection_type": map[string]any{
					"type":        "string",
					"description": "Return only connections of this type ('all' to not filter)",
				},
			},
			Required: []string{"connection_type"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args connectionNamesArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		names, err := dss.ListConnectionNames(ctx, args.ConnectionType)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list connection names: %v", err)), nil
		}

		return i.RespondJSON(names)
	})

	return i.Tool{Tool: tool, Handler: handler}
}
