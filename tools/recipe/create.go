package recipe

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type outputSpec struct {
	Name   string `json:"name"`
	Append bool   `json:"append,omitempty"`
}

type createArgs struct {
	ProjectKey string       `json:"project_key"`
	RecipeType string       `json:"recipe_type"`
	Inputs     []string     `json:"inputs"`
	Outputs    []outputSpec `json:"outputs"`
	RecipeName string       `json:"recipe_name,omitempty"`
	Code       string       `json:"code,omitempty"`
}

// Create builds a new recipe in a project's flow. The arity of inputs and
// outputs is validated against the recipe type before anything hits the
// platform, and all referenced datasets must already exist.
func Create(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("recipe-create"),
		Description: "Create a new recipe in a project's flow with the given inputs and " +
			"outputs. All referenced datasets must exist beforehand (use " +
			"dataset-create-managed). Valid recipe types by arity: single-input visual " +
			"(1 in, 1 out): sync, csync, sort, topn, distinct, prepare, shaker, sampling, " +
			"grouping, window, pivot, download, export, upsert; multi-output visual (1 in, " +
			"1+ out): split; multi-input visual (1+ in, 1 out): join, vstack, " +
			"generate_features, sql_query; code (any arity): python, r, sql_script, pyspark, " +
			"sparkr, spark_scala, shell, spark_sql_query, cpython, ksql, " +
			"streaming_spark_scala; scoring (1 in, 1 out): prediction_scoring, " +
			"clustering_scoring, evaluation, standalone_evaluation, nlp_llm_evaluation; " +
			"other (1 in, 1 out): extract_failed_rows, nlp_llm_rag_embedding, embed_dataset, " +
			"embed_documents. MEDIUM risk operation: modifies the project flow.",
		Annotations: i.ToolAnnotations("Create recipe", i.OpenWorld),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "The project key in which to create the recipe",
				},
				"recipe_type": map[string]any{
					"type":        "string",
					"description": "The type of recipe to create (see tool description for the valid types)",
				},
				"inputs": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "List of input dataset names",
				},
				"outputs": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"name":   map[string]any{"type": "string"},
							"append": map[string]any{"type": "boolean"},
						},
						"required": []string{"name"},
					},
					"description": "List of output specs: name (required) and append (defaults to false)",
				},
				"recipe_name": map[string]any{
					"type":        "string",
					"description": "Optional custom recipe name (auto-generated when omitted)",
				},
				"code": map[string]any{
					"type":        "string",
					"description": "Optional initial script source, only valid for code recipe types",
				},
			},
			Required: []string{"project_key", "recipe_type", "inputs", "outputs"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args createArgs) (*mcp.CallToolResult, error) {
		if msg := validateCreation(args); msg != "" {
			return mcp.NewToolResultError(msg), nil
		}

		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if result, err := checkDatasetsExist(ctx, dss, args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list project datasets: %v", err)), nil
		} else if result != "" {
			return mcp.NewToolResultError(result), nil
		}

		req := types.RecipeCreationRequest{
			Type:   args.RecipeType,
			Name:   args.RecipeName,
			Inputs: args.Inputs,
			Script: args.Code,
		}
		for _, out := range args.Outputs {
			req.Outputs = append(req.Outputs, types.RecipeOutput{Name: out.Name, Append: out.Append})
		}

		created, err := dss.CreateRecipe(ctx, args.ProjectKey, req)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to create recipe: %v", err)), nil
		}

		recipeName := args.RecipeName
		if name, ok := created["name"].(string); ok && name != "" {
			recipeName = name
		}

		outputNames := make([]string, 0, len(args.Outputs))
		for _, out := range args.Outputs {
			outputNames = append(outputNames, out.Name)
		}

		return i.RespondJSON(map[string]any{
			"success":     true,
			"project_key": args.ProjectKey,
			"recipe_name": recipeName,
			"recipe_type": args.RecipeType,
			"inputs":      args.Inputs,
			"outputs":     outputNames,
			"message":     fmt.Sprintf("Recipe '%s' created successfully", recipeName),
		})
	})

	return i.Tool{Tool: tool, Handler: handler}
}

// validateCreation returns an error message when the request violates the
// arity rules of its recipe type, or "" when it is acceptable.
func validateCreation(args createArgs) string {
	if !contains(allRecipeTypes, args.RecipeType) {
		return fmt.Sprintf("Invalid recipe_type '%s'. Must be one of: %v", args.RecipeType, sortedTypes(allRecipeTypes))
	}

	if len(args.Inputs) < 1 {
		return fmt.Sprintf("Recipes require at least 1 input, got %d", len(args.Inputs))
	}
	if len(args.Outputs) < 1 {
		return fmt.Sprintf("Recipes require at least 1 output, got %d", len(args.Outputs))
	}

	if contains(singleInputTypes, args.RecipeType) && len(args.Inputs) > 1 {
		return fmt.Sprintf("Recipe type '%s' requires exactly 1 input, got %d", args.RecipeType, len(args.Inputs))
	}
	if contains(singleOutputTypes, args.RecipeType) && len(args.Outputs) > 1 {
		return fmt.Sprintf("Recipe type '%s' requires exactly 1 output, got %d", args.RecipeType, len(args.Outputs))
	}

	if args.Code != "" && !contains(codeRecipeTypes, args.RecipeType) {
		return fmt.Sprintf("The 'code' parameter is only valid for code recipe types, not '%s'", args.RecipeType)
	}

	return ""
}

// checkDatasetsExist verifies every referenced dataset is already part of the
// project. Returns an error message for missing datasets, or "" when all
// references resolve.
func checkDatasetsExist(ctx context.Context, dss types.Client, args createArgs) (string, error) {
	datasets, err := dss.ListDatasets(ctx, args.ProjectKey, false)
	if err != nil {
		return "", err
	}

	existing := make(map[string]struct{}, len(datasets))
	for _, ds := range datasets {
		if name, ok := ds["name"].(string); ok {
			existing[name] = struct{}{}
		}
	}

	var missingInputs []string
	for _, name := range args.Inputs {
		if !contains(existing, name) {
			missingInputs = append(missingInputs, name)
		}
	}
	if len(missingInputs) > 0 {
		return fmt.Sprintf("Input dataset(s) not found in project '%s': %v. Create them first with dataset-create-managed.",
			args.ProjectKey, missingInputs), nil
	}

	var missingOutputs []string
	for _, out := range args.Outputs {
		if !contains(existing, out.Name) {
			missingOutputs = append(missingOutputs, out.Name)
		}
	}
	if len(missingOutputs) > 0 {
		return fmt.Sprintf("Output dataset(s) not found in project '%s': %v. Create them first with dataset-create-managed.",
			args.ProjectKey, missingOutputs), nil
	}

	return "", nil
}
