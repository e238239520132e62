package project

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type listingArgs struct {
	ProjectKey string `json:"project_key"`
	NumItems   int    `json:"num_items,omitempty"`
}

// listingTool builds a read-only tool that lists one kind of project content.
// fetch returns the full platform result; maxed results are truncated to
// num_items when the tool declares truncation.
func listingTool(name, title, description string, truncatable bool, defaultNum int,
	fetch func(ctx context.Context, dss types.Client, projectKey string) ([]map[string]any, error)) func(types.ClientProvider) i.Tool {

	properties := map[string]any{
		"project_key": map[string]any{
			"type":        "string",
			"description": "The project key of the desired project",
		},
	}
	if truncatable {
		properties["num_items"] = map[string]any{
			"type":        "integer",
			"description": fmt.Sprintf("Maximum number of items to return (defaults to %d)", defaultNum),
		}
	}

	return func(cp types.ClientProvider) i.Tool {
		tool := mcp.Tool{
			Name:        name,
			Description: description,
			Annotations: i.ToolAnnotations(title, i.Readonly|i.Idempotent),
			InputSchema: mcp.ToolInputSchema{
				Type:       "object",
				Properties: properties,
				Required:   []string{"project_key"},
			},
		}

		handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args listingArgs) (*mcp.CallToolResult, error) {
			dss, err := cp.Impersonated(ctx)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			items, err := fetch(ctx, dss, args.ProjectKey)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list: %v", err)), nil
			}

			if truncatable {
				limit := args.NumItems
				if limit <= 0 {
					limit = defaultNum
				}
				if len(items) > limit {
					items = items[:limit]
				}
			}

			return i.RespondJSON(items)
		})

		return i.Tool{Tool: tool, Handler: handler}
	}
}

type listDatasetsArgs struct {
	ProjectKey    string `json:"project_key"`
	IncludeShared bool   `json:"include_shared,omitempty"`
}

// ListDatasets lists the datasets of a project, trimmed to the fields agents need
func ListDatasets(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("project-list-datasets"),
		Description: "List the datasets in a project as summaries (type, managed, name, " +
			"smartName, formatType, projectKey, tags, schema). With include_shared=true, " +
			"datasets shared from other projects are listed as well (defaults to false).",
		Annotations: i.ToolAnnotations("List project datasets", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "The project key of the desired project",
				},
				"include_shared": map[string]any{
					"type":        "boolean",
					"description": "Whether to also list datasets shared from other projects (defaults to false)",
				},
			},
			Required: []string{"project_key"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args listDatasetsArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		datasets, err := dss.ListDatasets(ctx, args.ProjectKey, args.IncludeShared)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list: %v", err)), nil
		}

		return i.RespondJSON(i.Summarize(datasets, "type", "managed", "name", "smartName", "formatType", "projectKey", "tags", "schema"))
	})

	return i.Tool{Tool: tool, Handler: handler}
}

// ListRecipes lists the recipes of a project, trimmed to the fields agents need
var ListRecipes = listingTool(
	"project-list-recipes",
	"List project recipes",
	"List the recipes in a project as summaries (type, name, projectKey, inputs, "+
		"outputs, tags). Use recipe-get-settings for the full definition of one recipe.",
	false, 0,
	func(ctx context.Context, dss types.Client, projectKey string) ([]map[string]any, error) {
		recipes, err := dss.ListRecipes(ctx, projectKey)
		if err != nil {
			return nil, err
		}
		return i.Summarize(recipes, "type", "name", "projectKey", "inputs", "outputs", "tags"), nil
	},
)

// ListScenarios lists the scenarios of a project
var ListScenarios = listingTool(
	"project-list-scenarios",
	"List project scenarios",
	"List the scenarios in a project, each as a dict.",
	false, 0,
	func(ctx context.Context, dss types.Client, projectKey string) ([]map[string]any, error) {
		return dss.ListScenarios(ctx, projectKey)
	},
)

// ListJobs lists the most recent jobs of a project
var ListJobs = listingTool(
	"project-list-jobs",
	"List project jobs",
	"List the jobs in a project, each one containing both the definition and the state. "+
		"Only the most recent num_items jobs are returned.",
	true, 10,
	func(ctx context.Context, dss types.Client, projectKey string) ([]map[string]any, error) {
		return dss.ListJobs(ctx, projectKey)
	},
)

// ListMLTasks lists the ML tasks of a project
var ListMLTasks = listingTool(
	"project-list-ml-tasks",
	"List project ML tasks",
	"List the ML task summaries in a project. Only the first num_items tasks are returned.",
	true, 10,
	func(ctx context.Context, dss types.Client, projectKey string) ([]map[string]any, error) {
		return dss.ListMLTasks(ctx, projectKey)
	},
)

// ListAnalyses lists the visual analyses of a project
var ListAnalyses = listingTool(
	"project-list-analyses",
	"List project analyses",
	"List the visual analysis summaries in a project. Only the first num_items analyses are returned.",
	true, 10,
	func(ctx context.Context, dss types.Client, projectKey string) ([]map[string]any, error) {
		return dss.ListAnalyses(ctx, projectKey)
	},
)

// ListSavedModels lists the saved models of a project
var ListSavedModels = listingTool(
	"project-list-saved-models",
	"List project saved models",
	"List the saved models in a project, each as a dict.",
	false, 0,
	func(ctx context.Context, dss types.Client, projectKey string) ([]map[string]any, error) {
		return dss.ListSavedModels(ctx, projectKey)
	},
)

// ListManagedFolders lists the managed folders of a project
var ListManagedFolders = listingTool(
	"project-list-managed-folders",
	"List project managed folders",
	"List the managed folders in a project as summaries (id, type, name, projectKey, tags, params).",
	false, 0,
	func(ctx context.Context, dss types.Client, projectKey string) ([]map[string]any, error) {
		folders, err := dss.ListManagedFolders(ctx, projectKey)
		if err != nil {
			return nil, err
		}
		return i.Summarize(folders, "id", "type", "name", "projectKey", "tags", "params"), nil
	},
)
