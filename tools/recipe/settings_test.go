package recipe

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"dss-mcp/tools/internal/stub"
	"dss-mcp/types"
)

func getSettings(t *testing.T, data *types.RecipeData) map[string]any {
	t.Helper()

	dss := &stub.Client{
		GetRecipeFunc: func(_ context.Context, projectKey, recipeName string) (*types.RecipeData, error) {
			return data, nil
		},
	}

	tool := GetSettings(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"project_key": "FLIGHTS",
		"recipe_name": "compute_features",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var settings map[string]any
	require.NoError(t, json.Unmarshal([]byte(stub.Text(result)), &settings))
	return settings
}

func TestGetSettingsCodeRecipeCarriesCode(t *testing.T) {
	settings := getSettings(t, &types.RecipeData{
		Recipe:  map[string]any{"type": "python", "inputs": map[string]any{}, "outputs": map[string]any{}},
		Payload: "df = df.dropna()",
	})

	require.Equal(t, "python", settings["type"])
	require.Equal(t, "df = df.dropna()", settings["code"])
	require.NotContains(t, settings, "payload")
}

func TestGetSettingsVisualRecipeParsesPayload(t *testing.T) {
	settings := getSettings(t, &types.RecipeData{
		Recipe:  map[string]any{"type": "grouping"},
		Payload: `{"keys": ["carrier"]}`,
	})

	require.Equal(t, "grouping", settings["type"])
	require.NotContains(t, settings, "code")

	payload, ok := settings["payload"].(map[string]any)
	require.True(t, ok, "payload should be decoded JSON")
	require.Equal(t, []any{"carrier"}, payload["keys"])
}

func TestSetCodeRejectsVisualRecipe(t *testing.T) {
	dss := &stub.Client{
		GetRecipeFunc: func(_ context.Context, projectKey, recipeName string) (*types.RecipeData, error) {
			return &types.RecipeData{Recipe: map[string]any{"type": "grouping"}}, nil
		},
	}

	tool := SetCode(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"project_key": "FLIGHTS",
		"recipe_name": "group_by_carrier",
		"code":        "print()",
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Contains(t, stub.Text(result), "not a code recipe")
	require.Equal(t, 0, dss.CallCount("SetRecipe"))
}

func TestSetPayloadRoundTrip(t *testing.T) {
	var saved types.RecipeData
	dss := &stub.Client{
		GetRecipeFunc: func(_ context.Context, projectKey, recipeName string) (*types.RecipeData, error) {
			return &types.RecipeData{Recipe: map[string]any{"type": "grouping"}, Payload: `{"keys": []}`}, nil
		},
		SetRecipeFunc: func(_ context.Context, projectKey, recipeName string, data types.RecipeData) error {
			saved = data
			return nil
		},
		ComputeRecipeSchemaUpdatesFunc: func(_ context.Context, projectKey, recipeName string) (map[string]any, error) {
			return map[string]any{"totalIncompatibilities": float64(0)}, nil
		},
	}

	tool := SetPayload(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"project_key": "FLIGHTS",
		"recipe_name": "group_by_carrier",
		"payload":     map[string]any{"keys": []string{"carrier"}},
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(saved.Payload), &payload))
	require.Equal(t, []any{"carrier"}, payload["keys"])

	// No incompatibilities means no schema writes
	require.Equal(t, 0, dss.CallCount("SetDatasetSchema"))
}

func TestSetPayloadAppliesSchemaUpdates(t *testing.T) {
	var updatedDataset string
	var updatedSchema map[string]any
	dss := &stub.Client{
		GetRecipeFunc: func(_ context.Context, projectKey, recipeName string) (*types.RecipeData, error) {
			return &types.RecipeData{Recipe: map[string]any{"type": "grouping"}}, nil
		},
		SetRecipeFunc: func(_ context.Context, projectKey, recipeName string, data types.RecipeData) error {
			return nil
		},
		ComputeRecipeSchemaUpdatesFunc: func(_ context.Context, projectKey, recipeName string) (map[string]any, error) {
			return map[string]any{
				"totalIncompatibilities": float64(2),
				"datasets": []any{
					map[string]any{
						"datasetName": "grouped",
						"newSchema":   map[string]any{"columns": []any{map[string]any{"name": "carrier", "type": "string"}}},
					},
				},
			}, nil
		},
		SetDatasetSchemaFunc: func(_ context.Context, projectKey, datasetName string, schema map[string]any) error {
			updatedDataset = datasetName
			updatedSchema = schema
			return nil
		},
	}

	tool := SetPayload(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"project_key": "FLIGHTS",
		"recipe_name": "group_by_carrier",
		"payload":     map[string]any{"keys": []string{"carrier"}},
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.Equal(t, "grouped", updatedDataset)
	require.Contains(t, updatedSchema, "columns")

	var response map[string]any
	require.NoError(t, json.Unmarshal([]byte(stub.Text(result)), &response))
	require.Equal(t, true, response["schema_updates_applied"])
}

func TestSetPayloadSchemaUpdateFailureIsOnlyAWarning(t *testing.T) {
	dss := &stub.Client{
		GetRecipeFunc: func(_ context.Context, projectKey, recipeName string) (*types.RecipeData, error) {
			return &types.RecipeData{Recipe: map[string]any{"type": "grouping"}}, nil
		},
		SetRecipeFunc: func(_ context.Context, projectKey, recipeName string, data types.RecipeData) error {
			return nil
		},
		ComputeRecipeSchemaUpdatesFunc: func(_ context.Context, projectKey, recipeName string) (map[string]any, error) {
			return nil, &types.PlatformError{StatusCode: 500, Message: "schema computation failed"}
		},
	}

	tool := SetPayload(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"project_key": "FLIGHTS",
		"recipe_name": "group_by_carrier",
		"payload":     map[string]any{},
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var response map[string]any
	require.NoError(t, json.Unmarshal([]byte(stub.Text(result)), &response))
	require.Equal(t, true, response["success"])
	require.Contains(t, response["schema_update_warning"], "schema computation failed")
}

func TestSetPayloadRejectsCodeRecipe(t *testing.T) {
	dss := &stub.Client{
		GetRecipeFunc: func(_ context.Context, projectKey, recipeName string) (*types.RecipeData, error) {
			return &types.RecipeData{Recipe: map[string]any{"type": "python"}}, nil
		},
	}

	tool := SetPayload(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"project_key": "FLIGHTS",
		"recipe_name": "compute_features",
		"payload":     map[string]any{},
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Contains(t, stub.Text(result), "recipe-set-code")
	require.Equal(t, 0, dss.CallCount("SetRecipe"))
}

func TestRunDefaults(t *testing.T) {
	dss := &stub.Client{
		RunRecipeFunc: func(_ context.Context, projectKey, recipeName, jobType string, wait bool) (map[string]any, error) {
			require.Equal(t, "NON_RECURSIVE_FORCED_BUILD", jobType)
			require.True(t, wait)
			return map[string]any{"id": "job_1", "baseStatus": map[string]any{"state": "DONE"}}, nil
		},
	}

	tool := Run(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"project_key": "FLIGHTS",
		"recipe_name": "compute_features",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var response map[string]any
	require.NoError(t, json.Unmarshal([]byte(stub.Text(result)), &response))
	require.Equal(t, "job_1", response["job_id"])
	require.Equal(t, "DONE", response["status"])
}
