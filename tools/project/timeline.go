package project

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

const defaultTimelineItems = 100

type timelineArgs struct {
	ProjectKey string `json:"project_key"`
	ItemCount  int    `json:"item_count,omitempty"`
}

// Timeline retrieves the modification history of a project
func Timeline(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("project-get-timeline"),
		Description: "Get the timeline of a project: who created it and when, the last " +
			"modification, all contributors, and a list of up to item_count modifications " +
			"(top-level fields: allContributors, items, createdBy, createdOn, lastModifiedBy, " +
			"lastModifiedOn).",
		Annotations: i.ToolAnnotations("Get project timeline", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "The project key of the desired project",
				},
				"item_count": map[string]any{
					"type":        "integer",
					"description": "Maximum number of modifications to retrieve in the items list (defaults to 100)",
				},
			},
			Required: []string{"project_key"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args timelineArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		itemCount := args.ItemCount
		if itemCount <= 0 {
			itemCount = defaultTimelineItems
		}

		timeline, err := dss.GetProjectTimeline(ctx, args.ProjectKey, itemCount)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get project timeline: %v", err)), nil
		}

		return i.RespondJSON(timeline)
	})

	return i.Tool{Tool: tool, Handler: handler}
}
