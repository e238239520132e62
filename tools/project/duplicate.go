package project

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type duplicateArgs struct {
	ProjectKey            string `json:"project_key"`
	TargetProjectKey      string `json:"target_project_key"`
	TargetProjectName     string `json:"target_project_name"`
	DuplicationMode       string `json:"duplication_mode,omitempty"`
	ExportAnalysisModels  *bool  `json:"export_analysis_models,omitempty"`
	ExportSavedModels     *bool  `json:"export_saved_models,omitempty"`
	ExportInsightsData    *bool  `json:"export_insights_data,omitempty"`
	TargetProjectFolderID string `json:"target_project_folder_id,omitempty"`
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

// Duplicate copies a project into a new one with the same content
func Duplicate(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("project-duplicate"),
		Description: "Duplicate a project to create a new project with the same content. " +
			"duplication_mode controls what data is copied: MINIMAL (structure only, the " +
			"default), SHARING (structure plus sharing setup), FULL (structure and all data) " +
			"or NONE. MEDIUM risk operation; it creates a new project but never touches the " +
			"source.",
		Annotations: i.ToolAnnotations("Duplicate a project", i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "The project key of the source project to duplicate",
				},
				"target_project_key": map[string]any{
					"type":        "string",
					"description": "The key for the new duplicated project (must be unique)",
				},
				"target_project_name": map[string]any{
					"type":        "string",
					"description": "The display name for the new duplicated project",
				},
				"duplication_mode": map[string]any{
					"type":        "string",
					"description": "One of MINIMAL, SHARING, FULL, NONE (defaults to MINIMAL)",
				},
				"export_analysis_models": map[string]any{
					"type":        "boolean",
					"description": "Whether to include analysis models (defaults to true)",
				},
				"export_saved_models": map[string]any{
					"type":        "boolean",
					"description": "Whether to include saved models (defaults to true)",
				},
				"export_insights_data": map[string]any{
					"type":        "boolean",
					"description": "Whether to include insights data (defaults to true)",
				},
				"target_project_folder_id": map[string]any{
					"type":        "string",
					"description": "Optional folder ID for the new project (defaults to the same folder as the source)",
				},
			},
			Required: []string{"project_key", "target_project_key", "target_project_name"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args duplicateArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		mode := args.DuplicationMode
		if mode == "" {
			mode = "MINIMAL"
		}

		result, err := dss.DuplicateProject(ctx, args.ProjectKey, types.ProjectDuplicationRequest{
			TargetProjectKey:      args.TargetProjectKey,
			TargetProjectName:     args.TargetProjectName,
			DuplicationMode:       mode,
			ExportAnalysisModels:  boolOr(args.ExportAnalysisModels, true),
			ExportSavedModels:     boolOr(args.ExportSavedModels, true),
			ExportInsightsData:    boolOr(args.ExportInsightsData, true),
			TargetProjectFolderID: args.TargetProjectFolderID,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to duplicate project: %v", err)), nil
		}

		return i.RespondJSON(result)
	})

	return i.Tool{Tool: tool, Handler: handler}
}
