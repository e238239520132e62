package recipe

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type settingsArgs struct {
	ProjectKey string `json:"project_key"`
	RecipeName string `json:"recipe_name"`
}

// GetSettings retrieves the full settings of a recipe
func GetSettings(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("recipe-get-settings"),
		Description: "Get the full settings of a recipe: name, type, inputs, outputs and " +
			"params. Code recipes additionally carry a 'code' field with the script source; " +
			"visual recipes carry a 'payload' field with their JSON configuration.",
		Annotations: i.ToolAnnotations("Get recipe settings", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "The project key containing the recipe",
				},
				"recipe_name": map[string]any{
					"type":        "string",
					"description": "The name of the recipe",
				},
			},
			Required: []string{"project_key", "recipe_name"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args settingsArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		data, err := dss.GetRecipe(ctx, args.ProjectKey, args.RecipeName)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get recipe settings: %v", err)), nil
		}

		recipeType, _ := data.Recipe["type"].(string)

		result := map[string]any{
			"recipe_name": args.RecipeName,
			"type":        recipeType,
			"inputs":      data.Recipe["inputs"],
			"outputs":     data.Recipe["outputs"],
			"params":      data.Recipe["params"],
		}

		if contains(codeRecipeTypes, recipeType) {
			result["code"] = data.Payload
		} else {
			result["payload"] = parsePayload(data.Payload)
		}

		return i.RespondJSON(result)
	})

	return i.Tool{Tool: tool, Handler: handler}
}

// parsePayload decodes the payload string of a visual recipe. Payloads that
// are not valid JSON are returned as-is.
func parsePayload(payload string) any {
	if payload == "" {
		return nil
	}

	var decoded any
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		return payload
	}
	return decoded
}
