package instance

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

// GetAuthInfo describes the identity behind the current authentication context
func GetAuthInfo(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("instance-get-auth-info"),
		Description: "Get information about the currently authenticated identity: " +
			"'authIdentifier' (login for a user, id for an API key), 'groups' when the " +
			"context is a user, and 'isAdmin' indicating whether admin-only tools will work.",
		Annotations: i.ToolAnnotations("Get auth info", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]any{},
		},
	}

	handler := func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		info, err := dss.GetAuthInfo(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get auth info: %v", err)), nil
		}

		info["isAdmin"] = isAdmin(ctx, dss)

		return i.RespondJSON(info)
	}

	return i.Tool{Tool: tool, Handler: handler}
}

// isAdmin probes an admin-only endpoint; the backend rejects the call for
// non-admin identities.
func isAdmin(ctx context.Context, dss types.Client) bool {
	_, err := dss.ListConnections(ctx)
	return err == nil
}
