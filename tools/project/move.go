package project

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type moveArgs struct {
	ProjectKey          string `json:"project_key"`
	DestinationFolderID string `json:"destination_folder_id"`
}

// Move relocates a project to a different project folder
func Move(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("project-move-to-folder"),
		Description: "Move a project to a different project folder. The destination folder is " +
			"resolved first, so a bad folder ID fails before the project is touched. Use " +
			"folder-list to find folder IDs; 'ROOT' addresses the root folder.",
		Annotations: i.ToolAnnotations("Move a project to a folder", i.Idempotent|i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "The project key of the project to move",
				},
				"destination_folder_id": map[string]any{
					"type":        "string",
					"description": "The ID of the destination folder (use 'ROOT' for the root folder)",
				},
			},
			Required: []string{"project_key", "destination_folder_id"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args moveArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		// Resolve the destination before moving; both calls run with the
		// caller's permissions and no atomicity across them.
		destination, err := dss.GetProjectFolder(ctx, args.DestinationFolderID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve destination folder: %v", err)), nil
		}

		if err := dss.MoveProjectToFolder(ctx, args.ProjectKey, destination.ID); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to move project: %v", err)), nil
		}

		return i.RespondJSON(map[string]any{
			"success":                 true,
			"project_key":             args.ProjectKey,
			"destination_folder_id":   destination.ID,
			"destination_folder_path": destination.Path,
		})
	})

	return i.Tool{Tool: tool, Handler: handler}
}
