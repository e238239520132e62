package recipe

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

const defaultJobType = "NON_RECURSIVE_FORCED_BUILD"

type runArgs struct {
	ProjectKey string `json:"project_key"`
	RecipeName string `json:"recipe_name"`
	JobType    string `json:"job_type,omitempty"`
	Wait       *bool  `json:"wait,omitempty"`
}

// Run starts a build job on a recipe's outputs
func Run(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("recipe-run"),
		Description: "Run a recipe by starting a build job on its outputs. job_type is one " +
			"of NON_RECURSIVE_FORCED_BUILD (default, build only this recipe's outputs), " +
			"RECURSIVE_BUILD (build outputs plus missing upstream dependencies) or " +
			"RECURSIVE_FORCED_BUILD (rebuild all upstream dependencies too). With wait=true " +
			"(the default) the call blocks until the job finishes. MEDIUM risk operation: " +
			"output data is rewritten and upstream builds may be triggered.",
		Annotations: i.ToolAnnotations("Run recipe", i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "The project key containing the recipe",
				},
				"recipe_name": map[string]any{
					"type":        "string",
					"description": "The name of the recipe to run",
				},
				"job_type": map[string]any{
					"type":        "string",
					"description": "NON_RECURSIVE_FORCED_BUILD (default), RECURSIVE_BUILD or RECURSIVE_FORCED_BUILD",
				},
				"wait": map[string]any{
					"type":        "boolean",
					"description": "Whether to wait for the job to complete before returning (defaults to true)",
				},
			},
			Required: []string{"project_key", "recipe_name"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args runArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		jobType := args.JobType
		if jobType == "" {
			jobType = defaultJobType
		}

		wait := true
		if args.Wait != nil {
			wait = *args.Wait
		}

		job, err := dss.RunRecipe(ctx, args.ProjectKey, args.RecipeName, jobType, wait)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to run recipe: %v", err)), nil
		}

		return i.RespondJSON(map[string]any{
			"job_id":      job["id"],
			"project_key": args.ProjectKey,
			"recipe_name": args.RecipeName,
			"status":      jobState(job),
		})
	})

	return i.Tool{Tool: tool, Handler: handler}
}

// jobState digs the job state out of the nested status the backend returns.
func jobState(job map[string]any) string {
	base, _ := job["baseStatus"].(map[string]any)
	if state, ok := base["state"].(string); ok {
		return state
	}
	if state, ok := job["state"].(string); ok {
		return state
	}
	return "UNKNOWN"
}
