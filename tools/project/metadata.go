package project

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type getMetadataArgs struct {
	ProjectKey string `json:"project_key"`
}

type setMetadataArgs struct {
	ProjectKey string         `json:"project_key"`
	Metadata   map[string]any `json:"metadata"`
}

// GetMetadata retrieves the metadata attached to a project
func GetMetadata(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("project-get-metadata"),
		Description: "Get the metadata attached to a project: label, description, checklists, " +
			"tags and custom metadata. LOW risk read-only operation; call it before " +
			"project-set-metadata to obtain the dict to modify.",
		Annotations: i.ToolAnnotations("Get project metadata", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "The project key of the desired project",
				},
			},
			Required: []string{"project_key"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args getMetadataArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		metadata, err := dss.GetProjectMetadata(ctx, args.ProjectKey)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get project metadata: %v", err)), nil
		}

		return i.RespondJSON(metadata)
	})

	return i.Tool{Tool: tool, Handler: handler}
}

// SetMetadata replaces the metadata attached to a project
func SetMetadata(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("project-set-metadata"),
		Description: "Set the metadata on a project (label, description, checklists, tags, " +
			"custom metadata). Usage: first call project-get-metadata, modify the desired " +
			"fields in the returned dict, then pass the updated dict here. MEDIUM risk " +
			"operation; the previous metadata is overwritten without backup.",
		Annotations: i.ToolAnnotations("Set project metadata", i.Idempotent|i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "The project key of the project to update",
				},
				"metadata": map[string]any{
					"type":        "object",
					"description": "The metadata dict (should be based on the output of project-get-metadata)",
				},
			},
			Required: []string{"project_key", "metadata"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args setMetadataArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := dss.SetProjectMetadata(ctx, args.ProjectKey, args.Metadata); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to set project metadata: %v", err)), nil
		}

		return i.RespondJSON(map[string]any{
			"success":     true,
			"project_key": args.ProjectKey,
			"message":     "Project metadata updated successfully",
		})
	})

	return i.Tool{Tool: tool, Handler: handler}
}
