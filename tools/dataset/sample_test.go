package dataset

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"dss-mcp/tools/internal/stub"
	"dss-mcp/types"
)

func TestSampleZipsColumnsIntoRecords(t *testing.T) {
	dss := &stub.Client{
		SampleDatasetFunc: func(_ context.Context, projectKey, datasetName string, rows int, partitions []string) (*types.DatasetSample, error) {
			require.Equal(t, 50, rows) // default
			require.Nil(t, partitions)
			return &types.DatasetSample{
				Columns: []string{"carrier", "delay"},
				Rows: [][]any{
					{"AA", float64(12)},
					{"DL", nil},
				},
			}, nil
		},
	}

	tool := Sample(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"project_key":  "FLIGHTS",
		"dataset_name": "raw_data",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var response struct {
		ProjectKey       string           `json:"project_key"`
		DatasetName      string           `json:"dataset_name"`
		NumRowsRequested int              `json:"num_rows_requested"`
		NumRowsReturned  int              `json:"num_rows_returned"`
		Columns          []string         `json:"columns"`
		Rows             []map[string]any `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(stub.Text(result)), &response))
	require.Equal(t, "FLIGHTS", response.ProjectKey)
	require.Equal(t, "raw_data", response.DatasetName)
	require.Equal(t, 50, response.NumRowsRequested)
	require.Equal(t, 2, response.NumRowsReturned)
	require.Equal(t, []string{"carrier", "delay"}, response.Columns)
	require.Equal(t, "AA", response.Rows[0]["carrier"])
	require.Equal(t, float64(12), response.Rows[0]["delay"])
	require.Equal(t, "DL", response.Rows[1]["carrier"])
}

func TestSampleEmptyResultStillCarriesColumns(t *testing.T) {
	dss := &stub.Client{
		SampleDatasetFunc: func(_ context.Context, projectKey, datasetName string, rows int, partitions []string) (*types.DatasetSample, error) {
			return &types.DatasetSample{Columns: []string{"carrier", "delay"}}, nil
		},
	}

	tool := Sample(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"project_key":  "FLIGHTS",
		"dataset_name": "raw_data",
	}))
	require.NoError(t, err)

	var response struct {
		NumRowsReturned int      `json:"num_rows_returned"`
		Columns         []string `json:"columns"`
	}
	require.NoError(t, json.Unmarshal([]byte(stub.Text(result)), &response))
	require.Equal(t, 0, response.NumRowsReturned)
	require.Equal(t, []string{"carrier", "delay"}, response.Columns)
}

func TestSampleCapsRequestedRows(t *testing.T) {
	var gotRows int
	dss := &stub.Client{
		SampleDatasetFunc: func(_ context.Context, projectKey, datasetName string, rows int, partitions []string) (*types.DatasetSample, error) {
			gotRows = rows
			return &types.DatasetSample{}, nil
		},
	}

	tool := Sample(&stub.Provider{Client: dss})
	_, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"project_key":  "FLIGHTS",
		"dataset_name": "raw_data",
		"rows":         50000,
	}))
	require.NoError(t, err)
	require.Equal(t, 1000, gotRows)
}

func TestSampleParsesPartitionsSpec(t *testing.T) {
	var gotPartitions []string
	dss := &stub.Client{
		SampleDatasetFunc: func(_ context.Context, projectKey, datasetName string, rows int, partitions []string) (*types.DatasetSample, error) {
			gotPartitions = partitions
			return &types.DatasetSample{}, nil
		},
	}

	tool := Sample(&stub.Provider{Client: dss})
	_, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"project_key":  "FLIGHTS",
		"dataset_name": "raw_data",
		"partitions":   "2026-01, 2026-02, ,2026-03",
	}))
	require.NoError(t, err)
	require.Equal(t, []string{"2026-01", "2026-02", "2026-03"}, gotPartitions)
}

func TestSampleShortRowsSkipMissingColumns(t *testing.T) {
	dss := &stub.Client{
		SampleDatasetFunc: func(_ context.Context, projectKey, datasetName string, rows int, partitions []string) (*types.DatasetSample, error) {
			return &types.DatasetSample{
				Columns: []string{"a", "b", "c"},
				Rows:    [][]any{{"only-a"}},
			}, nil
		},
	}

	tool := Sample(&stub.Provider{Client: dss})
	result, err := tool.Handler(context.Background(), stub.Request(map[string]any{
		"project_key":  "FLIGHTS",
		"dataset_name": "raw_data",
	}))
	require.NoError(t, err)

	var response struct {
		Rows []map[string]any `json:"rows"`
	}
	require.NoError(t, json.Unmarshal([]byte(stub.Text(result)), &response))
	require.Len(t, response.Rows, 1)
	require.Equal(t, "only-a", response.Rows[0]["a"])
	require.NotContains(t, response.Rows[0], "b")
	require.NotContains(t, response.Rows[0], "c")
}
