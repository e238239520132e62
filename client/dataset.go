package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"dss-mcp/types"
)

func datasetPath(projectKey, datasetName string) string {
	return projectPath(projectKey) + "/datasets/" + url.PathEscape(datasetName)
}

func (c *dssClient) CreateManagedDataset(ctx context.Context, projectKey string, req types.ManagedDatasetCreationRequest) error {
	query := url.Values{"overwrite": {strconv.FormatBool(req.Overwrite)}}
	return c.do(ctx, "POST", projectPath(projectKey)+"/datasets/managed", query, req, nil)
}

func (c *dssClient) DeleteDataset(ctx context.Context, projectKey, datasetName string, dropData bool) error {
	query := url.Values{"dropData": {strconv.FormatBool(dropData)}}
	return c.do(ctx, "DELETE", datasetPath(projectKey, datasetName), query, nil, nil)
}

func (c *dssClient) RenameDataset(ctx context.Context, projectKey, datasetName, newName string) error {
	body := map[string]string{"newName": newName}
	return c.do(ctx, "POST", datasetPath(projectKey, datasetName)+"/actions/rename", nil, body, nil)
}

func (c *dssClient) GetDatasetSettings(ctx context.Context, projectKey, datasetName string) (map[string]any, error) {
	var settings map[string]any
	if err := c.do(ctx, "GET", datasetPath(projectKey, datasetName), nil, nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (c *dssClient) GetDatasetSchema(ctx context.Context, projectKey, datasetName string) (map[string]any, error) {
	var schema map[string]any
	if err := c.do(ctx, "GET", datasetPath(projectKey, datasetName)+"/schema", nil, nil, &schema); err != nil {
		return nil, err
	}
	return schema, nil
}

func (c *dssClient) SetDatasetSchema(ctx context.Context, projectKey, datasetName string, schema map[string]any) error {
	return c.do(ctx, "PUT", datasetPath(projectKey, datasetName)+"/schema", nil, schema, nil)
}

func (c *dssClient) GetDatasetMetadata(ctx context.Context, projectKey, datasetName string) (map[string]any, error) {
	var metadata map[string]any
	if err := c.do(ctx, "GET", datasetPath(projectKey, datasetName)+"/metadata", nil, nil, &metadata); err != nil {
		return nil, err
	}
	return metadata, nil
}

func (c *dssClient) SampleDataset(ctx context.Context, projectKey, datasetName string, rows int, partitions []string) (*types.DatasetSample, error) {
	query := url.Values{"rows": {strconv.Itoa(rows)}}
	if len(partitions) > 0 {
		query.Set("partitions", strings.Join(partitions, ","))
	}

	var sample types.DatasetSample
	if err := c.do(ctx, "GET", datasetPath(projectKey, datasetName)+"/data", query, nil, &sample); err != nil {
		return nil, err
	}
	return &sample, nil
}
