package project

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"dss-mcp/internal/auth"
	"dss-mcp/tools/internal/stub"
	"dss-mcp/types"
)

func TestListRejectsUnauthenticatedCaller(t *testing.T) {
	dss := &stub.Client{}
	tool := List(&stub.Provider{Client: dss, Err: auth.ErrNotAuthenticated})

	result, err := tool.Handler(context.Background(), stub.Request(nil))
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Equal(t, auth.ErrNotAuthenticated.Error(), stub.Text(result))

	// The platform must not be touched without a caller identity
	require.Empty(t, dss.Calls())
}

func TestListReturnsSummarizedProjects(t *testing.T) {
	dss := &stub.Client{
		ListProjectsFunc: func(_ context.Context, includeLocation bool) ([]map[string]any, error) {
			require.False(t, includeLocation)
			return []map[string]any{
				{"projectKey": "FLIGHTS", "name": "Flights", "description": "big", "settings": map[string]any{"noise": true}},
				{"projectKey": "CHURN", "name": "Churn", "ownerLogin": "admin"},
			}, nil
		},
	}

	tool := List(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var projects []map[string]any
	require.NoError(t, json.Unmarshal([]byte(stub.Text(result)), &projects))
	require.Len(t, projects, 2)
	require.Equal(t, "FLIGHTS", projects[0]["projectKey"])
	require.Equal(t, "admin", projects[1]["ownerLogin"])

	// Noisy fields are stripped, descriptions only appear on request
	require.NotContains(t, projects[0], "settings")
	require.NotContains(t, projects[0], "description")

	require.Equal(t, 1, dss.CallCount("ListProjects"))
}

func TestListDatasetsForwardsIncludeShared(t *testing.T) {
	var gotIncludeShared bool
	dss := &stub.Client{
		ListDatasetsFunc: func(_ context.Context, projectKey string, includeShared bool) ([]map[string]any, error) {
			gotIncludeShared = includeShared
			return []map[string]any{{"name": "raw_data", "type": "Filesystem"}}, nil
		},
	}

	tool := ListDatasets(&stub.Provider{Client: dss})

	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{"project_key": "FLIGHTS"}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.False(t, gotIncludeShared) // default

	result, err = tool.Handler(context.Background(), stub.Request(map[string]any{
		"project_key":    "FLIGHTS",
		"include_shared": true,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.True(t, gotIncludeShared)
}

func TestSummaryPropagatesBackendMessageVerbatim(t *testing.T) {
	backendMsg := "Project TEST does not exist"
	dss := &stub.Client{
		GetProjectSummaryFunc: func(_ context.Context, projectKey string) (map[string]any, error) {
			return nil, &types.PlatformError{StatusCode: http.StatusNotFound, Message: backendMsg}
		},
	}

	tool := Summary(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{"project_key": "TEST"}))
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Contains(t, stub.Text(result), backendMsg)

	// One failed invocation means exactly one platform call
	require.Equal(t, 1, dss.CallCount("GetProjectSummary"))
}

func TestDeleteTwiceSurfacesAlreadyDeleted(t *testing.T) {
	deleted := false
	dss := &stub.Client{
		DeleteProjectFunc: func(_ context.Context, projectKey string, opts types.ProjectDeletionOptions) (map[string]any, error) {
			require.Equal(t, "FLIGHTS", projectKey)
			require.True(t, opts.ClearJobAndScenarioLogs) // default
			if deleted {
				return nil, &types.PlatformError{StatusCode: http.StatusNotFound, Message: "Project FLIGHTS does not exist"}
			}
			deleted = true
			return map[string]any{}, nil
		},
	}

	tool := Delete(&stub.Provider{Client: dss})
	request := stub.Request(map[string]any{"project_key": "FLIGHTS"})

	result, err := tool.Handler(context.Background(), request)
	require.NoError(t, err)
	require.False(t, result.IsError)

	result, err = tool.Handler(context.Background(), request)
	require.NoError(t, err)
	require.True(t, result.IsError)
	require.Contains(t, stub.Text(result), "Project FLIGHTS does not exist")

	require.Equal(t, 2, dss.CallCount("DeleteProject"))
}

func TestGenerateProjectKey(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Flight Delays", "FLIGHT_DELAYS"},
		{"churn-2024", "CHURN_2024"},
		{"already_OK", "ALREADY_OK"},
		{"é è ü", "É_È_Ü"},
	}

	for _, tc := range tests {
		if got := GenerateProjectKey(tc.name); got != tc.expected {
			t.Errorf("GenerateProjectKey(%q) = %q, expected %q", tc.name, got, tc.expected)
		}
	}
}

func TestCreateDefaultsKeyAndOwner(t *testing.T) {
	var created types.ProjectCreationRequest
	dss := &stub.Client{
		GetAuthInfoFunc: func(_ context.Context) (map[string]any, error) {
			return map[string]any{"authIdentifier": "alice"}, nil
		},
		CreateProjectFunc: func(_ context.Context, req types.ProjectCreationRequest) (map[string]any, error) {
			created = req
			return map[string]any{}, nil
		},
	}

	tool := Create(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{"project_name": "Flight Delays"}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.Equal(t, "FLIGHT_DELAYS", created.ProjectKey)
	require.Equal(t, "Flight Delays", created.Name)
	require.Equal(t, "alice", created.Owner)
}

func TestCreateExplicitOwnerSkipsAuthLookup(t *testing.T) {
	dss := &stub.Client{
		CreateProjectFunc: func(_ context.Context, req types.ProjectCreationRequest) (map[string]any, error) {
			return map[string]any{}, nil
		},
	}

	tool := Create(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"project_name": "Churn",
		"owner":        "bob",
		"project_key":  "CHURN_V2",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	require.Equal(t, 0, dss.CallCount("GetAuthInfo"))
	require.Equal(t, 1, dss.CallCount("CreateProject"))
}
