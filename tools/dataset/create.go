// Package dataset defines the MCP tools operating on DSS datasets.
package dataset

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type createArgs struct {
	ProjectKey     string `json:"project_key"`
	DatasetName    string `json:"dataset_name"`
	Connection     string `json:"connection"`
	TypeOptionID   string `json:"type_option_id,omitempty"`
	FormatOptionID string `json:"format_option_id,omitempty"`
	Overwrite      bool   `json:"overwrite,omitempty"`
}

// CreateManaged creates a new managed dataset on a connection
func CreateManaged(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("dataset-create-managed"),
		Description: "Create a new managed dataset in a project, stored on the given " +
			"connection. Use instance-list-connection-names first to find a valid connection. " +
			"type_option_id and format_option_id refine the storage type and file format for " +
			"connections that support several. MEDIUM risk operation: with overwrite=true an " +
			"existing dataset of the same name is replaced.",
		Annotations: i.ToolAnnotations("Create managed dataset", i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "The project key of the project to create the dataset in",
				},
				"dataset_name": map[string]any{
					"type":        "string",
					"description": "The name of the dataset to create",
				},
				"connection": map[string]any{
					"type":        "string",
					"description": "The name of the connection to store the dataset on",
				},
				"type_option_id": map[string]any{
					"type":        "string",
					"description": "Optional storage type option for connections supporting several",
				},
				"format_option_id": map[string]any{
					"type":        "string",
					"description": "Optional file format option for file-based connections",
				},
				"overwrite": map[string]any{
					"type":        "boolean",
					"description": "Whether to overwrite an existing dataset with the same name (defaults to false)",
				},
			},
			Required: []string{"project_key", "dataset_name", "connection"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args createArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		req := types.ManagedDatasetCreationRequest{
			Name:           args.DatasetName,
			Connection:     args.Connection,
			TypeOptionID:   args.TypeOptionID,
			FormatOptionID: args.FormatOptionID,
			Overwrite:      args.Overwrite,
		}
		if err := dss.CreateManagedDataset(ctx, args.ProjectKey, req); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create dataset: %v", err)), nil
		}

		return i.RespondJSON(map[string]any{
			"success":      true,
			"project_key":  args.ProjectKey,
			"dataset_name": args.DatasetName,
			"connection":   args.Connection,
			"message":      fmt.Sprintf("Dataset %s created successfully", args.DatasetName),
		})
	})

	return i.Tool{Tool: tool, Handler: handler}
}
