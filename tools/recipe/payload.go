package recipe

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type setPayloadArgs struct {
	ProjectKey string         `json:"project_key"`
	RecipeName string         `json:"recipe_name"`
	Payload    map[string]any `json:"payload"`
}

// SetPayload replaces the JSON configuration of a visual recipe
func SetPayload(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("recipe-set-payload"),
		Description: "Set the JSON payload on a visual recipe and save it. Only works on " +
			"non-code recipe types (join, grouping, sync and the other visual recipes); use " +
			"recipe-set-code for code recipes. Usage: first call recipe-get-settings to " +
			"retrieve the current payload, modify the desired fields, then pass the updated " +
			"dict here. After saving, required schema updates are propagated to the output " +
			"datasets; a failure there is reported as a warning. MEDIUM risk operation: the " +
			"previous configuration is overwritten.",
		Annotations: i.ToolAnnotations("Set recipe payload", i.Idempotent|i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "The project key containing the recipe",
				},
				"recipe_name": map[string]any{
					"type":        "string",
					"description": "The name of the visual recipe",
				},
				"payload": map[string]any{
					"type":        "object",
					"description": "The JSON payload to set on the recipe (should be based on the output of recipe-get-settings)",
				},
			},
			Required: []string{"project_key", "recipe_name", "payload"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args setPayloadArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		data, err := dss.GetRecipe(ctx, args.ProjectKey, args.RecipeName)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get recipe: %v", err)), nil
		}

		recipeType, _ := data.Recipe["type"].(string)
		if contains(codeRecipeTypes, recipeType) {
			return mcp.NewToolResultError(fmt.Sprintf(
				"Recipe '%s' is a code recipe (type '%s'). Use recipe-set-code instead.",
				args.RecipeName, recipeType)), nil
		}

		encoded, err := json.Marshal(args.Payload)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to encode payload: %v", err)), nil
		}

		data.Payload = string(encoded)
		if err := dss.SetRecipe(ctx, args.ProjectKey, args.RecipeName, *data); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to set recipe payload: %v", err)), nil
		}

		result := map[string]any{
			"success":     true,
			"project_key": args.ProjectKey,
			"recipe_name": args.RecipeName,
			"recipe_type": recipeType,
			"message":     fmt.Sprintf("Payload updated on recipe '%s'", args.RecipeName),
		}

		// Best effort: a failed schema update never fails the save itself
		applied, err := applySchemaUpdates(ctx, dss, args.ProjectKey, args.RecipeName)
		if err != nil {
			result["schema_update_warning"] = err.Error()
		} else if applied {
			result["schema_updates_applied"] = true
		}

		return i.RespondJSON(result)
	})

	return i.Tool{Tool: tool, Handler: handler}
}

// applySchemaUpdates propagates the recipe's new payload to the schemas of its
// output datasets. Returns whether any schema was changed.
func applySchemaUpdates(ctx context.Context, dss types.Client, projectKey, recipeName string) (bool, error) {
	updates, err := dss.ComputeRecipeSchemaUpdates(ctx, projectKey, recipeName)
	if err != nil {
		return false, err
	}

	total, _ := updates["totalIncompatibilities"].(float64)
	if total == 0 {
		return false, nil
	}

	datasets, _ := updates["datasets"].([]any)
	for _, entry := range datasets {
		update, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		name, _ := update["datasetName"].(string)
		if name == "" {
			name, _ = update["name"].(string)
		}
		schema, _ := update["newSchema"].(map[string]any)
		if name == "" || schema == nil {
			continue
		}

		if err := dss.SetDatasetSchema(ctx, projectKey, name, schema); err != nil {
			return false, err
		}
	}

	return true, nil
}
