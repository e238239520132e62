package instance

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"dss-mcp/tools/internal/stub"
	"dss-mcp/types"
)

func authInfo(t *testing.T, listConnectionsErr error) map[string]any {
	t.Helper()

	dss := &stub.Client{
		GetAuthInfoFunc: func(_ context.Context) (map[string]any, error) {
			return map[string]any{"authIdentifier": "alice", "groups": []string{"data-team"}}, nil
		},
		ListConnectionsFunc: func(_ context.Context) (map[string]any, error) {
			if listConnectionsErr != nil {
				return nil, listConnectionsErr
			}
			return map[string]any{}, nil
		},
	}

	tool := GetAuthInfo(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(stub.Text(result)), &info))
	return info
}

func TestGetAuthInfoAdminProbeSucceeds(t *testing.T) {
	info := authInfo(t, nil)
	require.Equal(t, "alice", info["authIdentifier"])
	require.Equal(t, true, info["isAdmin"])
}

func TestGetAuthInfoAdminProbeRejected(t *testing.T) {
	forbidden := &types.PlatformError{StatusCode: http.StatusForbidden, Message: "You may not administrate this instance"}
	info := authInfo(t, forbidden)
	require.Equal(t, false, info["isAdmin"])
}
