package client

import (
	"context"
	"net/url"
	"strconv"

	"dss-mcp/types"
)

func (c *dssClient) ListProjects(ctx context.Context, includeLocation bool) ([]map[string]any, error) {
	query := url.Values{"includeLocation": {strconv.FormatBool(includeLocation)}}

	var projects []map[string]any
	if err := c.do(ctx, "GET", "/projects/", query, nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (c *dssClient) CreateProject(ctx context.Context, req types.ProjectCreationRequest) (map[string]any, error) {
	var result map[string]any
	if err := c.do(ctx, "POST", "/projects/", nil, req, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *dssClient) GetAuthInfo(ctx context.Context) (map[string]any, error) {
	var info map[string]any
	if err := c.do(ctx, "GET", "/auth/info", nil, nil, &info); err != nil {
		return nil, err
	}
	return info, nil
}

func (c *dssClient) ListConnections(ctx context.Context) (map[string]any, error) {
	var connections map[string]any
	if err := c.do(ctx, "GET", "/admin/connections/", nil, nil, &connections); err != nil {
		return nil, err
	}
	return connections, nil
}

func (c *dssClient) ListConnectionNames(ctx context.Context, connectionType string) ([]string, error) {
	query := url.Values{"connectionType": {connectionType}}

	var names []string
	if err := c.do(ctx, "GET", "/admin/connections-names", query, nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (c *dssClient) GetProjectFolder(ctx context.Context, folderID string) (*types.ProjectFolder, error) {
	var folder types.ProjectFolder
	if err := c.do(ctx, "GET", "/project-folders/"+url.PathEscape(folderID), nil, nil, &folder); err != nil {
		return nil, err
	}
	return &folder, nil
}

func (c *dssClient) ListFutures(ctx context.Context, allUsers bool) ([]map[string]any, error) {
	query := url.Values{"allUsers": {strconv.FormatBool(allUsers)}}

	var futures []map[string]any
	if err := c.do(ctx, "GET", "/futures/", query, nil, &futures); err != nil {
		return nil, err
	}
	return futures, nil
}

func (c *dssClient) ListRunningScenarios(ctx context.Context, allUsers bool) ([]map[string]any, error) {
	query := url.Values{"allUsers": {strconv.FormatBool(allUsers)}}

	var scenarios []map[string]any
	if err := c.do(ctx, "GET", "/futures/running-scenarios", query, nil, &scenarios); err != nil {
		return nil, err
	}
	return scenarios, nil
}

func (c *dssClient) ListRunningNotebooks(ctx context.Context) ([]map[string]any, error) {
	var notebooks []map[string]any
	if err := c.do(ctx, "GET", "/admin/notebooks/", nil, nil, &notebooks); err != nil {
		return nil, err
	}
	return notebooks, nil
}

func (c *dssClient) ListPlugins(ctx context.Context) ([]map[string]any, error) {
	var plugins []map[string]any
	if err := c.do(ctx, "GET", "/plugins/", nil, nil, &plugins); err != nil {
		return nil, err
	}
	return plugins, nil
}

func (c *dssClient) ListUsers(ctx context.Context, includeSettings bool) ([]map[string]any, error) {
	query := url.Values{"includeSettings": {strconv.FormatBool(includeSettings)}}

	var users []map[string]any
	if err := c.do(ctx, "GET", "/admin/users/", query, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *dssClient) ListGroups(ctx context.Context) ([]map[string]any, error) {
	var groups []map[string]any
	if err := c.do(ctx, "GET", "/admin/groups/", nil, nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *dssClient) ListCodeEnvs(ctx context.Context) ([]map[string]any, error) {
	var envs []map[string]any
	if err := c.do(ctx, "GET", "/admin/code-envs/", nil, nil, &envs); err != nil {
		return nil, err
	}
	return envs, nil
}

func (c *dssClient) ListCodeEnvUsages(ctx context.Context) ([]map[string]any, error) {
	var usages []map[string]any
	if err := c.do(ctx, "GET", "/admin/code-envs/usages", nil, nil, &usages); err != nil {
		return nil, err
	}
	return usages, nil
}

func (c *dssClient) ListClusters(ctx context.Context) ([]map[string]any, error) {
	var clusters []map[string]any
	if err := c.do(ctx, "GET", "/admin/clusters/", nil, nil, &clusters); err != nil {
		return nil, err
	}
	return clusters, nil
}

func (c *dssClient) ListMeanings(ctx context.Context) ([]map[string]any, error) {
	var meanings []map[string]any
	if err := c.do(ctx, "GET", "/meanings/", nil, nil, &meanings); err != nil {
		return nil, err
	}
	return meanings, nil
}

func (c *dssClient) ListWorkspaces(ctx context.Context) ([]map[string]any, error) {
	var workspaces []map[string]any
	if err := c.do(ctx, "GET", "/workspaces/", nil, nil, &workspaces); err != nil {
		return nil, err
	}
	return workspaces, nil
}

func (c *dssClient) ListDataCollections(ctx context.Context) ([]map[string]any, error) {
	var collections []map[string]any
	if err := c.do(ctx, "GET", "/data-collections/", nil, nil, &collections); err != nil {
		return nil, err
	}
	return collections, nil
}

func (c *dssClient) GetLicensingStatus(ctx context.Context) (map[string]any, error) {
	var status map[string]any
	if err := c.do(ctx, "GET", "/admin/licensing/status", nil, nil, &status); err != nil {
		return nil, err
	}
	return status, nil
}

func (c *dssClient) GetSanityCheckCodes(ctx context.Context) ([]string, error) {
	var codes []string
	if err := c.do(ctx, "GET", "/admin/sanity-check/codes", nil, nil, &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

func (c *dssClient) GetDataQualityStatus(ctx context.Context) (map[string]any, error) {
	var status map[string]any
	if err := c.do(ctx, "GET", "/data-quality/status", nil, nil, &status); err != nil {
		return nil, err
	}
	return status, nil
}

func (c *dssClient) GetGeneralSettings(ctx context.Context) (map[string]any, error) {
	var settings map[string]any
	if err := c.do(ctx, "GET", "/admin/general-settings", nil, nil, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (c *dssClient) SetGeneralSettings(ctx context.Context, settings map[string]any) error {
	return c.do(ctx, "PUT", "/admin/general-settings", nil, settings, nil)
}
