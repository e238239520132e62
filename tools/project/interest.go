package project

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type interestArgs struct {
	ProjectKey string `json:"project_key"`
}

// Interest retrieves the star and watcher counts of a project
func Interest(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("project-get-interest"),
		Description: "Get the interest of a project: 'starCount' (number of stars) and " +
			"'watchCount' (number of users watching the project).",
		Annotations: i.ToolAnnotations("Get project interest", i.Readonly|i.Idempotent),
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

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args interestArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		interest, err := dss.GetProjectInterest(ctx, args.ProjectKey)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get project interest: %v", err)), nil
		}

		return i.RespondJSON(interest)
	})

	return i.Tool{Tool: tool, Handler: handler}
}
