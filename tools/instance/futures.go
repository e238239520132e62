package instance

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type allUsersArgs struct {
	AllUsers bool `json:"all_users,omitempty"`
}

// ListFutures lists the currently-running long tasks
func ListFutures(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("instance-list-futures"),
		Description: "List the currently-running long tasks (futures). Each item contains at " +
			"least a 'jobId' field. With all_users=true, futures of all users are returned " +
			"(requires admin privileges); otherwise only those of the calling user.",
		Annotations: i.ToolAnnotations("List futures", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"all_users": map[string]any{
					"type":        "boolean",
					"description": "Whether to return futures of all users (requires admin privileges, defaults to false)",
				},
			},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args allUsersArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		futures, err := dss.ListFutures(ctx, args.AllUsers)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list futures: %v", err)), nil
		}

		return i.RespondJSON(futures)
	})

	return i.Tool{Tool: tool, Handler: handler}
}

// ListRunningScenarios lists the scenarios currently running on the instance
func ListRunningScenarios(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("instance-list-running-scenarios"),
		Description: "List the running scenarios. Each item contains at least a 'jobId' field " +
			"for the future hosting the scenario run and a 'payload' field with scenario " +
			"identifiers. With all_users=true, scenarios of all users are returned (requires " +
			"admin privileges).",
		Annotations: i.ToolAnnotations("List running scenarios", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"all_users": map[string]any{
					"type":        "boolean",
					"description": "Whether to return scenarios of all users (requires admin privileges, defaults to false)",
				},
			},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args allUsersArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		scenarios, err := dss.ListRunningScenarios(ctx, args.AllUsers)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list running scenarios: %v", err)), nil
		}

		return i.RespondJSON(scenarios)
	})

	return i.Tool{Tool: tool, Handler: handler}
}
