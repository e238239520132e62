package recipe

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type setCodeArgs struct {
	ProjectKey string `json:"project_key"`
	RecipeName string `json:"recipe_name"`
	Code       string `json:"code"`
}

// SetCode replaces the script source of a code recipe
func SetCode(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("recipe-set-code"),
		Description: "Set the script code on a code recipe and save it. Only works on code " +
			"recipe types (python, r, sql_script, pyspark, sparkr, spark_scala, shell, " +
			"spark_sql_query, cpython, ksql, streaming_spark_scala); use " +
			"recipe-set-payload for visual recipes. MEDIUM risk operation: the previous " +
			"script is overwritten.",
		Annotations: i.ToolAnnotations("Set recipe code", i.Idempotent|i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "The project key containing the recipe",
				},
				"recipe_name": map[string]any{
					"type":        "string",
					"description": "The name of the code recipe",
				},
				"code": map[string]any{
					"type":        "string",
					"description": "The new script code to set on the recipe",
				},
			},
			Required: []string{"project_key", "recipe_name", "code"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args setCodeArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		data, err := dss.GetRecipe(ctx, args.ProjectKey, args.RecipeName)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get recipe: %v", err)), nil
		}

		recipeType, _ := data.Recipe["type"].(string)
		if !contains(codeRecipeTypes, recipeType) {
			return mcp.NewToolResultError(fmt.Sprintf(
				"Recipe '%s' is type '%s', not a code recipe. Use recipe-set-payload for visual recipes.",
				args.RecipeName, recipeType)), nil
		}

		data.Payload = args.Code
		if err := dss.SetRecipe(ctx, args.ProjectKey, args.RecipeName, *data); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to set recipe code: %v", err)), nil
		}

		return i.RespondJSON(map[string]any{
			"success":     true,
			"project_key": args.ProjectKey,
			"recipe_name": args.RecipeName,
			"recipe_type": recipeType,
			"message":     fmt.Sprintf("Code updated on recipe '%s'", args.RecipeName),
		})
	})

	return i.Tool{Tool: tool, Handler: handler}
}
