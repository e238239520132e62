package folder

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type getArgs struct {
	FolderID string `json:"folder_id"`
}

// Get retrieves a single project folder by its ID
func Get(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("folder-get"),
		Description: "Get a single project folder by its id. Returns id, name, path, the keys " +
			"of the projects it contains and the ids of its child folders. Use folder-list to " +
			"discover folder ids, or the special id 'ROOT' for the root folder.",
		Annotations: i.ToolAnnotations("Get project folder", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"folder_id": map[string]any{
					"type":        "string",
					"description": "The id of the project folder ('ROOT' for the root folder)",
				},
			},
			Required: []string{"folder_id"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args getArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		folder, err := dss.GetProjectFolder(ctx, args.FolderID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get project folder: %v", err)), nil
		}

		return i.RespondJSON(map[string]any{
			"id":          folder.ID,
			"name":        folder.Name,
			"path":        folder.Path,
			"projectKeys": folder.ProjectKeys,
			"childrenIds": folder.ChildrenIDs,
		})
	})

	return i.Tool{Tool: tool, Handler: handler}
}
