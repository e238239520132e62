package project

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type deleteArgs struct {
	ProjectKey                string `json:"project_key"`
	ClearManagedDatasets      bool   `json:"clear_managed_datasets,omitempty"`
	ClearOutputManagedFolders bool   `json:"clear_output_managed_folders,omitempty"`
	ClearJobAndScenarioLogs   *bool  `json:"clear_job_and_scenario_logs,omitempty"`
}

// Delete deletes a project from the DSS instance
func Delete(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("project-delete"),
		Description: "Delete a project from the DSS instance. Requires an API key with admin " +
			"rights. HIGH risk destructive operation with no undo; the project and optionally " +
			"its managed data are gone once the platform accepts the call. Verify the project " +
			"key with project-list before proceeding.",
		Annotations: i.ToolAnnotations("Delete a project", i.Destructive|i.Idempotent|i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "The project key of the project to delete",
				},
				"clear_managed_datasets": map[string]any{
					"type":        "boolean",
					"description": "Should the data of managed datasets be cleared (defaults to false)",
				},
				"clear_output_managed_folders": map[string]any{
					"type":        "boolean",
					"description": "Should the data of managed folders used as outputs of recipes be cleared (defaults to false)",
				},
				"clear_job_and_scenario_logs": map[string]any{
					"type":        "boolean",
					"description": "Should the job and scenario logs be cleared (defaults to true)",
				},
			},
			Required: []string{"project_key"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args deleteArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		clearLogs := true
		if args.ClearJobAndScenarioLogs != nil {
			clearLogs = *args.ClearJobAndScenarioLogs
		}

		result, err := dss.DeleteProject(ctx, args.ProjectKey, types.ProjectDeletionOptions{
			ClearManagedDatasets:      args.ClearManagedDatasets,
			ClearOutputManagedFolders: args.ClearOutputManagedFolders,
			ClearJobAndScenarioLogs:   clearLogs,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to delete project: %v", err)), nil
		}

		return i.RespondJSON(map[string]any{
			"success":     true,
			"project_key": args.ProjectKey,
			"messages":    result,
		})
	})

	return i.Tool{Tool: tool, Handler: handler}
}
