package client

import (
	"context"
	"net/url"
	"strconv"

	"dss-mcp/types"
)

func projectPath(projectKey string) string {
	return "/projects/" + url.PathEscape(projectKey)
}

func (c *dssClient) GetProjectSummary(ctx context.Context, projectKey string) (map[string]any, error) {
	var summary map[string]any
	if err := c.do(ctx, "GET", projectPath(projectKey)+"/summary", nil, nil, &summary); err != nil {
		return nil, err
	}
	return summary, nil
}

func (c *dssClient) GetProjectMetadata(ctx context.Context, projectKey string) (map[string]any, error) {
	var metadata map[string]any
	if err := c.do(ctx, "GET", projectPath(projectKey)+"/metadata", nil, nil, &metadata); err != nil {
		return nil, err
	}
	return metadata, nil
}

func (c *dssClient) SetProjectMetadata(ctx context.Context, projectKey string, metadata map[string]any) error {
	return c.do(ctx, "PUT", projectPath(projectKey)+"/metadata", nil, metadata, nil)
}

func (c *dssClient) GetProjectPermissions(ctx context.Context, projectKey string) (map[string]any, error) {
	var permissions map[string]any
	if err := c.do(ctx, "GET", projectPath(projectKey)+"/permissions", nil, nil, &permissions); err != nil {
		return nil, err
	}
	return permissions, nil
}

func (c *dssClient) SetProjectPermissions(ctx context.Context, projectKey string, permissions map[string]any) error {
	return c.do(ctx, "PUT", projectPath(projectKey)+"/permissions", nil, permissions, nil)
}

func (c *dssClient) GetProjectInterest(ctx context.Context, projectKey string) (map[string]any, error) {
	var interest map[string]any
	if err := c.do(ctx, "GET", projectPath(projectKey)+"/interest", nil, nil, &interest); err != nil {
		return nil, err
	}
	return interest, nil
}

func (c *dssClient) GetProjectTimeline(ctx context.Context, projectKey string, itemCount int) (map[string]any, error) {
	query := url.Values{"itemCount": {strconv.Itoa(itemCount)}}

	var timeline map[string]any
	if err := c.do(ctx, "GET", projectPath(projectKey)+"/timeline", query, nil, &timeline); err != nil {
		return nil, err
	}
	return timeline, nil
}

func (c *dssClient) DeleteProject(ctx context.Context, projectKey string, opts types.ProjectDeletionOptions) (map[string]any, error) {
	query := url.Values{
		"clearManagedDatasets":      {strconv.FormatBool(opts.ClearManagedDatasets)},
		"clearOutputManagedFolders": {strconv.FormatBool(opts.ClearOutputManagedFolders)},
		"clearJobAndScenarioLogs":   {strconv.FormatBool(opts.ClearJobAndScenarioLogs)},
	}

	var result map[string]any
	if err := c.do(ctx, "DELETE", projectPath(projectKey), query, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *dssClient) DuplicateProject(ctx context.Context, projectKey string, req types.ProjectDuplicationRequest) (map[string]any, error) {
	var result map[string]any
	if err := c.do(ctx, "POST", projectPath(projectKey)+"/duplicate", nil, req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *dssClient) MoveProjectToFolder(ctx context.Context, projectKey, folderID string) error {
	body := map[string]string{"destinationFolderId": folderID}
	return c.do(ctx, "POST", projectPath(projectKey)+"/move-to-folder", nil, body, nil)
}

func (c *dssClient) ListDatasets(ctx context.Context, projectKey string, includeShared bool) ([]map[string]any, error) {
	query := url.Values{"includeShared": {strconv.FormatBool(includeShared)}}

	var datasets []map[string]any
	if err := c.do(ctx, "GET", projectPath(projectKey)+"/datasets/", query, nil, &datasets); err != nil {
		return nil, err
	}
	return datasets, nil
}

func (c *dssClient) ListRecipes(ctx context.Context, projectKey string) ([]map[string]any, error) {
	var recipes []map[string]any
	if err := c.do(ctx, "GET", projectPath(projectKey)+"/recipes/", nil, nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (c *dssClient) ListScenarios(ctx context.Context, projectKey string) ([]map[string]any, error) {
	var scenarios []map[string]any
	if err := c.do(ctx, "GET", projectPath(projectKey)+"/scenarios/", nil, nil, &scenarios); err != nil {
		return nil, err
	}
	return scenarios, nil
}

func (c *dssClient) ListJobs(ctx context.Context, projectKey string) ([]map[string]any, error) {
	var jobs []map[string]any
	if err := c.do(ctx, "GET", projectPath(projectKey)+"/jobs/", nil, nil, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (c *dssClient) ListMLTasks(ctx context.Context, projectKey string) ([]map[string]any, error) {
	var tasks []map[string]any
	if err := c.do(ctx, "GET", projectPath(projectKey)+"/models/lab/", nil, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *dssClient) ListAnalyses(ctx context.Context, projectKey string) ([]map[string]any, error) {
	var analyses []map[string]any
	if err := c.do(ctx, "GET", projectPath(projectKey)+"/lab/", nil, nil, &analyses); err != nil {
		return nil, err
	}
	return analyses, nil
}

func (c *dssClient) ListSavedModels(ctx context.Context, projectKey string) ([]map[string]any, error) {
	var models []map[string]any
	if err := c.do(ctx, "GET", projectPath(projectKey)+"/savedmodels/", nil, nil, &models); err != nil {
		return nil, err
	}
	return models, nil
}

func (c *dssClient) ListManagedFolders(ctx context.Context, projectKey string) ([]map[string]any, error) {
	var folders []map[string]any
	if err := c.do(ctx, "GET", projectPath(projectKey)+"/managedfolders/", nil, nil, &folders); err != nil {
		return nil, err
	}
	return folders, nil
}

func (c *dssClient) GetFlowGraph(ctx context.Context, projectKey string) (map[string]any, error) {
	var graph map[string]any
	if err := c.do(ctx, "GET", projectPath(projectKey)+"/flow/graph/", nil, nil, &graph); err != nil {
		return nil, err
	}
	return graph, nil
}
