package recipe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"dss-mcp/tools/internal/stub"
	"dss-mcp/types"
)

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        createArgs
		expectedMsg string
	}{
		{
			name:        "unknown type",
			args:        createArgs{RecipeType: "teleport", Inputs: []string{"a"}, Outputs: []outputSpec{{Name: "b"}}},
			expectedMsg: "Invalid recipe_type 'teleport'",
		},
		{
			name:        "no inputs",
			args:        createArgs{RecipeType: "sync", Outputs: []outputSpec{{Name: "b"}}},
			expectedMsg: "at least 1 input",
		},
		{
			name:        "no outputs",
			args:        createArgs{RecipeType: "sync", Inputs: []string{"a"}},
			expectedMsg: "at least 1 output",
		},
		{
			name:        "single input type with two inputs",
			args:        createArgs{RecipeType: "grouping", Inputs: []string{"a", "b"}, Outputs: []outputSpec{{Name: "c"}}},
			expectedMsg: "requires exactly 1 input, got 2",
		},
		{
			name:        "single output type with two outputs",
			args:        createArgs{RecipeType: "join", Inputs: []string{"a", "b"}, Outputs: []outputSpec{{Name: "c"}, {Name: "d"}}},
			expectedMsg: "requires exactly 1 output, got 2",
		},
		{
			name:        "code on visual recipe",
			args:        createArgs{RecipeType: "sync", Inputs: []string{"a"}, Outputs: []outputSpec{{Name: "b"}}, Code: "print()"},
			expectedMsg: "only valid for code recipe types",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := validateCreation(tc.args)
			require.Contains(t, msg, tc.expectedMsg)
		})
	}
}

func TestCreateValidationAcceptsCodeArity(t *testing.T) {
	// Code recipes have no arity constraints
	args := createArgs{
		RecipeType: "python",
		Inputs:     []string{"a", "b", "c"},
		Outputs:    []outputSpec{{Name: "d"}, {Name: "e"}},
		Code:       "print('ok')",
	}
	require.Empty(t, validateCreation(args))

	// Split is the only visual type allowed several outputs
	args = createArgs{
		RecipeType: "split",
		Inputs:     []string{"a"},
		Outputs:    []outputSpec{{Name: "b"}, {Name: "c"}},
	}
	require.Empty(t, validateCreation(args))
}

func TestCreateRejectsInvalidTypeWithoutPlatformCall(t *testing.T) {
	dss := &stub.Client{}
	tool := Create(&stub.Provider{Client: dss})

	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"project_key": "FLIGHTS",
		"recipe_type": "teleport",
		"inputs":      []string{"a"},
		"outputs":     []map[string]any{{"name": "b"}},
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Empty(t, dss.Calls())
}

func TestCreateRejectsMissingDatasets(t *testing.T) {
	dss := &stub.Client{
		ListDatasetsFunc: func(_ context.Context, projectKey string, includeShared bool) ([]map[string]any, error) {
			return []map[string]any{{"name": "raw_data"}}, nil
		},
	}

	tool := Create(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"project_key": "FLIGHTS",
		"recipe_type": "sync",
		"inputs":      []string{"raw_data"},
		"outputs":     []map[string]any{{"name": "clean_data"}},
	}))
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Contains(t, stub.Text(result), "Output dataset(s) not found in project 'FLIGHTS'")
	require.Contains(t, stub.Text(result), "clean_data")

	require.Equal(t, 0, dss.CallCount("CreateRecipe"))
}

func TestCreateBuildsRequest(t *testing.T) {
	var created types.RecipeCreationRequest
	dss := &stub.Client{
		ListDatasetsFunc: func(_ context.Context, projectKey string, includeShared bool) ([]map[string]any, error) {
			return []map[string]any{{"name": "raw_data"}, {"name": "features"}}, nil
		},
		CreateRecipeFunc: func(_ context.Context, projectKey string, req types.RecipeCreationRequest) (map[string]any, error) {
			created = req
			return map[string]any{"name": "compute_features"}, nil
		},
	}

	tool := Create(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"project_key": "FLIGHTS",
		"recipe_type": "python",
		"inputs":      []string{"raw_data"},
		"outputs":     []map[string]any{{"name": "features", "append": true}},
		"code":        "df = df",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.Equal(t, "python", created.Type)
	require.Equal(t, []string{"raw_data"}, created.Inputs)
	require.Equal(t, []types.RecipeOutput{{Name: "features", Append: true}}, created.Outputs)
	require.Equal(t, "df = df", created.Script)
	require.Contains(t, stub.Text(result), "compute_features")
}
