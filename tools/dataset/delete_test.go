package dataset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"dss-mcp/tools/internal/stub"
)

func TestDeleteKeepsDataByDefault(t *testing.T) {
	var gotDropData bool
	dss := &stub.Client{
		DeleteDatasetFunc: func(_ context.Context, projectKey, datasetName string, dropData bool) error {
			gotDropData = dropData
			return nil
		},
	}

	tool := Delete(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"project_key":  "FLIGHTS",
		"dataset_name": "raw_data",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.False(t, gotDropData)
}

func TestDeleteDropsDataOnlyWhenAsked(t *testing.T) {
	var gotDropData bool
	dss := &stub.Client{
		DeleteDatasetFunc: func(_ context.Context, projectKey, datasetName string, dropData bool) error {
			gotDropData = dropData
			return nil
		},
	}

	tool := Delete(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"project_key":  "FLIGHTS",
		"dataset_name": "raw_data",
		"drop_data":    true,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.True(t, gotDropData)
	require.Contains(t, stub.Text(result), `"drop_data":true`)
}
