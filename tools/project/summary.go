package project

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type summaryArgs struct {
	ProjectKey string `json:"project_key"`
}

// Summary retrieves a read-only summary of a project's state
func Summary(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("project-get-summary"),
		Description: "Get a summary of a project: a read-only view of some of its state, " +
			"containing at least a 'projectKey' field. The summary cannot be edited and sent " +
			"back; use the more specific metadata and permission tools to change project state.",
		Annotations: i.ToolAnnotations("Get project summary", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "The project key of the desired project",
				},
			},
			Required: []string{"project_key"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args summaryArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		summary, err := dss.GetProjectSummary(ctx, args.ProjectKey)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get project summary: %v", err)), nil
		}

		return i.RespondJSON(summary)
	})

	return i.Tool{Tool: tool, Handler: handler}
}
