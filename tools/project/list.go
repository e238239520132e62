// Package project defines the MCP tools operating on DSS projects.
package project

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type listArgs struct {
	IncludeLocation    bool `json:"include_location"`
	IncludeDescription bool `json:"include_description"`
}

// List retrieves the projects visible to the calling user
func List(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("project-list"),
		Description: "List the projects on the DSS instance. Each entry contains at least a " +
			"'projectKey' field. LOW risk read-only operation; use it to discover project keys " +
			"before calling project-level tools. Descriptions and locations are omitted unless " +
			"requested, to keep the response small.",
		Annotations: i.ToolAnnotations("List projects", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"include_location": map[string]any{
					"type":        "boolean",
					"description": "Whether to include project locations (slower)",
				},
				"include_description": map[string]any{
					"type":        "boolean",
					"description": "Whether to include project descriptions (a lot more tokens, don't include unless required)",
				},
			},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args listArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		projects, err := dss.ListProjects(ctx, args.IncludeLocation)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		// Strip fields that bloat the agent's context window
		keys := []string{"name", "projectKey", "ownerDisplayName", "ownerLogin", "tutorialProject", "tags"}
		if args.IncludeDescription {
			keys = append(keys, "description")
		}
		if args.IncludeLocation {
			keys = append(keys, "projectLocation")
		}

		return i.RespondJSON(i.Summarize(projects, keys...))
	})

	return i.Tool{Tool: tool, Handler: handler}
}
