package dataset

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type schemaArgs struct {
	ProjectKey  string `json:"project_key"`
	DatasetName string `json:"dataset_name"`
}

// GetSchema retrieves the schema (columns) of a dataset
func GetSchema(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("dataset-get-schema"),
		Description: "Get the schema of a dataset: the list of columns with their name, " +
			"storage type and optional meaning. Cheap read-only call, prefer it over " +
			"dataset-get-settings when only the columns matter.",
		Annotations: i.ToolAnnotations("Get dataset schema", i.Readonly|i.Idempotent),
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

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args schemaArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		schema, err := dss.GetDatasetSchema(ctx, args.ProjectKey, args.DatasetName)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get dataset schema: %v", err)), nil
		}

		return i.RespondJSON(schema)
	})

	return i.Tool{Tool: tool, Handler: handler}
}
