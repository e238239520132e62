package dataset

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type settingsArgs struct {
	ProjectKey  string `json:"project_key"`
	DatasetName string `json:"dataset_name"`
}

// GetSettings retrieves the full settings of a dataset
func GetSettings(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("dataset-get-settings"),
		Description: "Get the settings of a dataset: type, connection, format, partitioning " +
			"and the full type-specific parameters. Use dataset-get-schema instead if only the " +
			"columns are needed.",
		Annotations: i.ToolAnnotations("Get dataset settings", i.Readonly|i.Idempotent),
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

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args settingsArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		settings, err := dss.GetDatasetSettings(ctx, args.ProjectKey, args.DatasetName)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get dataset settings: %v", err)), nil
		}

		return i.RespondJSON(settings)
	})

	return i.Tool{Tool: tool, Handler: handler}
}
