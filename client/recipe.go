package client

import (
	"context"
	"net/url"
	"strconv"

	"dss-mcp/types"
)

func recipePath(projectKey, recipeName string) string {
	return projectPath(projectKey) + "/recipes/" + url.PathEscape(recipeName)
}

func (c *dssClient) CreateRecipe(ctx context.Context, projectKey string, req types.RecipeCreationRequest) (map[string]any, error) {
	var result map[string]any
	if err := c.do(ctx, "POST", projectPath(projectKey)+"/recipes/", nil, req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *dssClient) GetRecipe(ctx context.Context, projectKey, recipeName string) (*types.RecipeData, error) {
	var data types.RecipeData
	if err := c.do(ctx, "GET", recipePath(projectKey, recipeName), nil, nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *dssClient) SetRecipe(ctx context.Context, projectKey, recipeName string, data types.RecipeData) error {
	return c.do(ctx, "PUT", recipePath(projectKey, recipeName), nil, data, nil)
}

func (c *dssClient) ComputeRecipeSchemaUpdates(ctx context.Context, projectKey, recipeName string) (map[string]any, error) {
	var updates map[string]any
	if err := c.do(ctx, "GET", recipePath(projectKey, recipeName)+"/schema-update", nil, nil, &updates); err != nil {
		return nil, err
	}
	return updates, nil
}

func (c *dssClient) RunRecipe(ctx context.Context, projectKey, recipeName, jobType string, wait bool) (map[string]any, error) {
	query := url.Values{
		"jobType": {jobType},
		"wait":    {strconv.FormatBool(wait)},
	}

	var job map[string]any
	if err := c.do(ctx, "POST", recipePath(projectKey, recipeName)+"/actions/run", query, nil, &job); err != nil {
		return nil, err
	}
	return job, nil
}
