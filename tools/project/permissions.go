package project

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type getPermissionsArgs struct {
	ProjectKey string `json:"project_key"`
}

type setPermissionsArgs struct {
	ProjectKey  string         `json:"project_key"`
	Permissions map[string]any `json:"permissions"`
}

// GetPermissions retrieves the permissions attached to a project
func GetPermissions(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("project-get-permissions"),
		Description: "Get the permissions attached to a project: the owner plus a list of " +
			"per-group permission entries. LOW risk read-only operation; call it before " +
			"project-set-permissions to obtain the dict to modify.",
		Annotations: i.ToolAnnotations("Get project permissions", i.Readonly|i.Idempotent),
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

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args getPermissionsArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		permissions, err := dss.GetProjectPermissions(ctx, args.ProjectKey)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get project permissions: %v", err)), nil
		}

		return i.RespondJSON(permissions)
	})

	return i.Tool{Tool: tool, Handler: handler}
}

// SetPermissions replaces the permissions attached to a project
func SetPermissions(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("project-set-permissions"),
		Description: "Set the permissions on a project. Usage: first call " +
			"project-get-permissions, modify the returned dict (owner and per-group entries " +
			"such as readProjectContent / writeProjectContent), then pass the updated dict " +
			"here. HIGH risk operation: a wrong permissions dict can lock users out of the " +
			"project.",
		Annotations: i.ToolAnnotations("Set project permissions", i.Idempotent|i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "The project key of the project to update",
				},
				"permissions": map[string]any{
					"type":        "object",
					"description": "The permissions dict (should be based on the output of project-get-permissions)",
				},
			},
			Required: []string{"project_key", "permissions"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args setPermissionsArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err := dss.SetProjectPermissions(ctx, args.ProjectKey, args.Permissions); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to set project permissions: %v", err)), nil
		}

		return i.RespondJSON(map[string]any{
			"success":     true,
			"project_key": args.ProjectKey,
			"message":     "Project permissions updated successfully",
		})
	})

	return i.Tool{Tool: tool, Handler: handler}
}
