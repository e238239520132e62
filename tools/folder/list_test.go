package folder

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"dss-mcp/tools/internal/stub"
	"dss-mcp/types"
)

func TestListBuildsTreeWithPaths(t *testing.T) {
	folders := map[string]*types.ProjectFolder{
		"ROOT": {ID: "ROOT", Name: "ROOT", ChildrenIDs: []string{"f1"}, ProjectKeys: []string{"TOP"}},
		"f1":   {ID: "f1", Name: "Analytics", ChildrenIDs: []string{"f2"}, ProjectKeys: []string{"FLIGHTS"}},
		"f2":   {ID: "f2", Name: "Archive", ProjectKeys: nil},
	}

	dss := &stub.Client{
		GetProjectFolderFunc: func(_ context.Context, folderID string) (*types.ProjectFolder, error) {
			folder, ok := folders[folderID]
			require.True(t, ok, "unexpected folder id %q", folderID)
			return folder, nil
		},
	}

	tool := List(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var root map[string]any
	require.NoError(t, json.Unmarshal([]byte(stub.Text(result)), &root))

	require.Equal(t, "ROOT", root["id"])
	require.Equal(t, "/", root["path"])

	children := root["children"].([]any)
	require.Len(t, children, 1)
	analytics := children[0].(map[string]any)
	require.Equal(t, "/Analytics", analytics["path"])
	require.Equal(t, []any{"FLIGHTS"}, analytics["projectKeys"])

	grandchildren := analytics["children"].([]any)
	require.Len(t, grandchildren, 1)
	archive := grandchildren[0].(map[string]any)
	require.Equal(t, "/Analytics/Archive", archive["path"])
	require.Empty(t, archive["children"])

	// One platform call per folder, no refetching
	require.Equal(t, 3, dss.CallCount("GetProjectFolder"))
}
