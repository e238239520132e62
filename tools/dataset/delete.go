package dataset

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type deleteArgs struct {
	ProjectKey  string `json:"project_key"`
	DatasetName string `json:"dataset_name"`
	DropData    bool   `json:"drop_data,omitempty"`
}

// Delete removes a dataset from a project
func Delete(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("dataset-delete"),
		Description: "Delete a dataset from a project. The underlying data is kept unless " +
			"drop_data=true is passed explicitly. HIGH risk destructive operation: with " +
			"drop_data=true the data cannot be recovered.",
		Annotations: i.ToolAnnotations("Delete dataset", i.Destructive),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "The project key of the project containing the dataset",
				},
				"dataset_name": map[string]any{
					"type":        "string",
					"description": "The name of the dataset to delete",
				},
				"drop_data": map[string]any{
					"type":        "boolean",
					"description": "Whether to drop the underlying data (defaults to false)",
				},
			},
			Required: []string{"project_key", "dataset_name"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args deleteArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := dss.DeleteDataset(ctx, args.ProjectKey, args.DatasetName, args.DropData); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to delete dataset: %v", err)), nil
		}

		return i.RespondJSON(map[string]any{
			"success":      true,
			"project_key":  args.ProjectKey,
			"dataset_name": args.DatasetName,
			"drop_data":    args.DropData,
			"message":      fmt.Sprintf("Dataset %s deleted successfully", args.DatasetName),
		})
	})

	return i.Tool{Tool: tool, Handler: handler}
}
