package dataset

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type metadataArgs struct {
	ProjectKey  string `json:"project_key"`
	DatasetName string `json:"dataset_name"`
}

// GetMetadata retrieves the metadata of a dataset
func GetMetadata(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("dataset-get-metadata"),
		Description: "Get the metadata attached to a dataset: label, description, checklists, " +
			"tags and custom fields.",
		Annotations: i.ToolAnnotations("Get dataset metadata", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "The project key of the project containing the dataset",
				},
				"dataset_name": map[string]any{
					"type":        "string",
					"description": "The name of the dataset",
				},
			},
			Required: []string{"project_key", "dataset_name"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args metadataArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		metadata, err := dss.GetDatasetMetadata(ctx, args.ProjectKey, args.DatasetName)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get dataset metadata: %v", err)), nil
		}

		return i.RespondJSON(metadata)
	})

	return i.Tool{Tool: tool, Handler: handler}
}
