package project

import (
	"context"
	"fmt"
	"unicode"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type createArgs struct {
	ProjectName     string `json:"project_name"`
	Owner           string `json:"owner,omitempty"`
	Description     string `json:"description,omitempty"`
	ProjectKey      string `json:"project_key,omitempty"`
	ProjectFolderID string `json:"project_folder_id,omitempty"`
}

// GenerateProjectKey derives a valid project key from a display name:
// letters uppercased, digits kept, everything else replaced with underscores.
func GenerateProjectKey(projectName string) string {
	key := make([]rune, 0, len(projectName))
	for _, r := range projectName {
		switch {
		case unicode.IsLetter(r):
			key = append(key, unicode.ToUpper(r))
		case unicode.IsDigit(r):
			key = append(key, r)
		default:
			key = append(key, '_')
		}
	}
	return string(key)
}

// Create creates a new project on the DSS instance
func Create(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("project-create"),
		Description: "Create a new project on the DSS instance. Requires an API key with admin " +
			"rights or the right to create projects; without a project_folder_id it also needs " +
			"the right to write in the root folder (rejections surface as a generic 'action " +
			"forbidden'). If creation fails because the project key already exists, retry with a " +
			"modified project_key, appending '_1', then '_2' and so on.",
		Annotations: i.ToolAnnotations("Create a project", i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_name": map[string]any{
					"type":        "string",
					"description": "The display name for the project",
				},
				"owner": map[string]any{
					"type":        "string",
					"description": "The login of the owner of the project. Defaults to the current user.",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "A description for the project",
				},
				"project_key": map[string]any{
					"type": "string",
					"description": "The unique identifier for the project. Auto-generated from the " +
						"project name when omitted (letters uppercased, digits kept, other characters " +
						"replaced with underscores).",
				},
				"project_folder_id": map[string]any{
					"type":        "string",
					"description": "The project folder ID in which the project will be created (root folder if not specified)",
				},
			},
			Required: []string{"project_name"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args createArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		projectKey := args.ProjectKey
		if projectKey == "" {
			projectKey = GenerateProjectKey(args.ProjectName)
		}

		// Default the owner to whoever is calling
		owner := args.Owner
		if owner == "" {
			authInfo, err := dss.GetAuthInfo(ctx)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to resolve current user: %v", err)), nil
			}
			owner, _ = authInfo["authIdentifier"].(string)
		}

		_, err = dss.CreateProject(ctx, types.ProjectCreationRequest{
			ProjectKey:      projectKey,
			Name:            args.ProjectName,
			Owner:           owner,
			Description:     args.Description,
			ProjectFolderID: args.ProjectFolderID,
		})
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create project: %v", err)), nil
		}

		return i.RespondJSON(map[string]any{
			"projectKey": projectKey,
			"name":       args.ProjectName,
			"owner":      owner,
			"message":    fmt.Sprintf("Project '%s' created successfully with key '%s'", args.ProjectName, projectKey),
		})
	})

	return i.Tool{Tool: tool, Handler: handler}
}
