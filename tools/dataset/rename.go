package dataset

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type renameArgs struct {
	ProjectKey  string `json:"project_key"`
	DatasetName string `json:"dataset_name"`
	NewName     string `json:"new_name"`
}

// Rename changes the name of a dataset
func Rename(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("dataset-rename"),
		Description: "Rename a dataset. The flow is updated so recipes reading from or " +
			"writing to the dataset keep working, but code referencing the old name by string " +
			"(notebooks, code recipes, external consumers) will break. MEDIUM risk operation.",
		Annotations: i.ToolAnnotations("Rename dataset", i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "The project key of the project containing the dataset",
				},
				"dataset_name": map[string]any{
					"type":        "string",
					"description": "The current name of the dataset",
				},
				"new_name": map[string]any{
					"type":        "string",
					"description": "The new name of the dataset",
				},
			},
			Required: []string{"project_key", "dataset_name", "new_name"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args renameArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := dss.RenameDataset(ctx, args.ProjectKey, args.DatasetName, args.NewName); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to rename dataset: %v", err)), nil
		}

		return i.RespondJSON(map[string]any{
			"success":     true,
			"project_key": args.ProjectKey,
			"old_name":    args.DatasetName,
			"new_name":    args.NewName,
			"message":     fmt.Sprintf("Dataset %s renamed to %s", args.DatasetName, args.NewName),
		})
	})

	return i.Tool{Tool: tool, Handler: handler}
}
