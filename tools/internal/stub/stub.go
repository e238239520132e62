// Package stub provides fake implementations of the platform client for tool
// tests. Only the methods a test sets are callable; anything else panics with
// the method name so a misrouted call fails loudly.
package stub

import (
	"context"
	"sync"

	"dss-mcp/types"
)

// Provider implements types.ClientProvider over a fixed client or error
type Provider struct {
	Client types.Client
	Err    error
}

func (p *Provider) Impersonated(_ context.Context) (types.Client, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Client, nil
}

// Client implements types.Client through per-method function fields and
// records every call it receives.
type Client struct {
	mu    sync.Mutex
	calls []string

	ListProjectsFunc         func(ctx context.Context, includeLocation bool) ([]map[string]any, error)
	CreateProjectFunc        func(ctx context.Context, req types.ProjectCreationRequest) (map[string]any, error)
	GetAuthInfoFunc          func(ctx context.Context) (map[string]any, error)
	ListConnectionsFunc      func(ctx context.Context) (map[string]any, error)
	ListConnectionNamesFunc  func(ctx context.Context, connectionType string) ([]string, error)
	GetProjectFolderFunc     func(ctx context.Context, folderID string) (*types.ProjectFolder, error)
	ListFuturesFunc          func(ctx context.Context, allUsers bool) ([]map[string]any, error)
	ListRunningScenariosFunc func(ctx context.Context, allUsers bool) ([]map[string]any, error)
	ListRunningNotebooksFunc func(ctx context.Context) ([]map[string]any, error)
	ListPluginsFunc          func(ctx context.Context) ([]map[string]any, error)
	ListUsersFunc            func(ctx context.Context, includeSettings bool) ([]map[string]any, error)
	ListGroupsFunc           func(ctx context.Context) ([]map[string]any, error)
	ListCodeEnvsFunc         func(ctx context.Context) ([]map[string]any, error)
	ListCodeEnvUsagesFunc    func(ctx context.Context) ([]map[string]any, error)
	ListClustersFunc         func(ctx context.Context) ([]map[string]any, error)
	ListMeaningsFunc         func(ctx context.Context) ([]map[string]any, error)
	ListWorkspacesFunc       func(ctx context.Context) ([]map[string]any, error)
	ListDataCollectionsFunc  func(ctx context.Context) ([]map[string]any, error)
	GetLicensingStatusFunc   func(ctx context.Context) (map[string]any, error)
	GetSanityCheckCodesFunc  func(ctx context.Context) ([]string, error)
	GetDataQualityStatusFunc func(ctx context.Context) (map[string]any, error)
	GetGeneralSettingsFunc   func(ctx context.Context) (map[string]any, error)
	SetGeneralSettingsFunc   func(ctx context.Context, settings map[string]any) error

	GetProjectSummaryFunc     func(ctx context.Context, projectKey string) (map[string]any, error)
	GetProjectMetadataFunc    func(ctx context.Context, projectKey string) (map[string]any, error)
	SetProjectMetadataFunc    func(ctx context.Context, projectKey string, metadata map[string]any) error
	GetProjectPermissionsFunc func(ctx context.Context, projectKey string) (map[string]any, error)
	SetProjectPermissionsFunc func(ctx context.Context, projectKey string, permissions map[string]any) error
	GetProjectInterestFunc    func(ctx context.Context, projectKey string) (map[string]any, error)
	GetProjectTimelineFunc    func(ctx context.Context, projectKey string, itemCount int) (map[string]any, error)
	DeleteProjectFunc         func(ctx context.Context, projectKey string, opts types.ProjectDeletionOptions) (map[string]any, error)
	DuplicateProjectFunc      func(ctx context.Context, projectKey string, req types.ProjectDuplicationRequest) (map[string]any, error)
	MoveProjectToFolderFunc   func(ctx context.Context, projectKey, folderID string) error
	ListDatasetsFunc          func(ctx context.Context, projectKey string, includeShared bool) ([]map[string]any, error)
	ListRecipesFunc           func(ctx context.Context, projectKey string) ([]map[string]any, error)
	ListScenariosFunc         func(ctx context.Context, projectKey string) ([]map[string]any, error)
	ListJobsFunc              func(ctx context.Context, projectKey string) ([]map[string]any, error)
	ListMLTasksFunc           func(ctx context.Context, projectKey string) ([]map[string]any, error)
	ListAnalysesFunc          func(ctx context.Context, projectKey string) ([]map[string]any, error)
	ListSavedModelsFunc       func(ctx context.Context, projectKey string) ([]map[string]any, error)
	ListManagedFoldersFunc    func(ctx context.Context, projectKey string) ([]map[string]any, error)

	CreateManagedDatasetFunc func(ctx context.Context, projectKey string, req types.ManagedDatasetCreationRequest) error
	DeleteDatasetFunc        func(ctx context.Context, projectKey, datasetName string, dropData bool) error
	RenameDatasetFunc        func(ctx context.Context, projectKey, datasetName, newName string) error
	GetDatasetSettingsFunc   func(ctx context.Context, projectKey, datasetName string) (map[string]any, error)
	GetDatasetSchemaFunc     func(ctx context.Context, projectKey, datasetName string) (map[string]any, error)
	SetDatasetSchemaFunc     func(ctx context.Context, projectKey, datasetName string, schema map[string]any) error
	GetDatasetMetadataFunc   func(ctx context.Context, projectKey, datasetName string) (map[string]any, error)
	SampleDatasetFunc        func(ctx context.Context, projectKey, datasetName string, rows int, partitions []string) (*types.DatasetSample, error)

	CreateRecipeFunc               func(ctx context.Context, projectKey string, req types.RecipeCreationRequest) (map[string]any, error)
	GetRecipeFunc                  func(ctx context.Context, projectKey, recipeName string) (*types.RecipeData, error)
	SetRecipeFunc                  func(ctx context.Context, projectKey, recipeName string, data types.RecipeData) error
	ComputeRecipeSchemaUpdatesFunc func(ctx context.Context, projectKey, recipeName string) (map[string]any, error)
	RunRecipeFunc                  func(ctx context.Context, projectKey, recipeName, jobType string, wait bool) (map[string]any, error)

	GetFlowGraphFunc func(ctx context.Context, projectKey string) (map[string]any, error)
}

var _ types.Client = (*Client)(nil)

func (c *Client) record(name string) {
	c.mu.Lock()
	c.calls = append(c.calls, name)
	c.mu.Unlock()
}

// Calls returns every recorded method name in call order
func (c *Client) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

// CallCount returns how many times the named method was invoked
func (c *Client) CallCount(name string) int {
	count := 0
	for _, call := range c.Calls() {
		if call == name {
			count++
		}
	}
	return count
}

func (c *Client) ListProjects(ctx context.Context, includeLocation bool) ([]map[string]any, error) {
	c.record("ListProjects")
	if c.ListProjectsFunc == nil {
		panic("stub: ListProjects not implemented")
	}
	return c.ListProjectsFunc(ctx, includeLocation)
}

func (c *Client) CreateProject(ctx context.Context, req types.ProjectCreationRequest) (map[string]any, error) {
	c.record("CreateProject")
	if c.CreateProjectFunc == nil {
		panic("stub: CreateProject not implemented")
	}
	return c.CreateProjectFunc(ctx, req)
}

func (c *Client) GetAuthInfo(ctx context.Context) (map[string]any, error) {
	c.record("GetAuthInfo")
	if c.GetAuthInfoFunc == nil {
		panic("stub: GetAuthInfo not implemented")
	}
	return c.GetAuthInfoFunc(ctx)
}

func (c *Client) ListConnections(ctx context.Context) (map[string]any, error) {
	c.record("ListConnections")
	if c.ListConnectionsFunc == nil {
		panic("stub: ListConnections not implemented")
	}
	return c.ListConnectionsFunc(ctx)
}

func (c *Client) ListConnectionNames(ctx context.Context, connectionType string) ([]string, error) {
	c.record("ListConnectionNames")
	if c.ListConnectionNamesFunc == nil {
		panic("stub: ListConnectionNames not implemented")
	}
	return c.ListConnectionNamesFunc(ctx, connectionType)
}

func (c *Client) GetProjectFolder(ctx context.Context, folderID string) (*types.ProjectFolder, error) {
	c.record("GetProjectFolder")
	if c.GetProjectFolderFunc == nil {
		panic("stub: GetProjectFolder not implemented")
	}
	return c.GetProjectFolderFunc(ctx, folderID)
}

func (c *Client) ListFutures(ctx context.Context, allUsers bool) ([]map[string]any, error) {
	c.record("ListFutures")
	if c.ListFuturesFunc == nil {
		panic("stub: ListFutures not implemented")
	}
	return c.ListFuturesFunc(ctx, allUsers)
}

func (c *Client) ListRunningScenarios(ctx context.Context, allUsers bool) ([]map[string]any, error) {
	c.record("ListRunningScenarios")
	if c.ListRunningScenariosFunc == nil {
		panic("stub: ListRunningScenarios not implemented")
	}
	return c.ListRunningScenariosFunc(ctx, allUsers)
}

func (c *Client) ListRunningNotebooks(ctx context.Context) ([]map[string]any, error) {
	c.record("ListRunningNotebooks")
	if c.ListRunningNotebooksFunc == nil {
		panic("stub: ListRunningNotebooks not implemented")
	}
	return c.ListRunningNotebooksFunc(ctx)
}

func (c *Client) ListPlugins(ctx context.Context) ([]map[string]any, error) {
	c.record("ListPlugins")
	if c.ListPluginsFunc == nil {
		panic("stub: ListPlugins not implemented")
	}
	return c.ListPluginsFunc(ctx)
}

func (c *Client) ListUsers(ctx context.Context, includeSettings bool) ([]map[string]any, error) {
	c.record("ListUsers")
	if c.ListUsersFunc == nil {
		panic("stub: ListUsers not implemented")
	}
	return c.ListUsersFunc(ctx, includeSettings)
}

func (c *Client) ListGroups(ctx context.Context) ([]map[string]any, error) {
	c.record("ListGroups")
	if c.ListGroupsFunc == nil {
		panic("stub: ListGroups not implemented")
	}
	return c.ListGroupsFunc(ctx)
}

func (c *Client) ListCodeEnvs(ctx context.Context) ([]map[string]any, error) {
	c.record("ListCodeEnvs")
	if c.ListCodeEnvsFunc == nil {
		panic("stub: ListCodeEnvs not implemented")
	}
	return c.ListCodeEnvsFunc(ctx)
}

func (c *Client) ListCodeEnvUsages(ctx context.Context) ([]map[string]any, error) {
	c.record("ListCodeEnvUsages")
	if c.ListCodeEnvUsagesFunc == nil {
		panic("stub: ListCodeEnvUsages not implemented")
	}
	return c.ListCodeEnvUsagesFunc(ctx)
}

func (c *Client) ListClusters(ctx context.Context) ([]map[string]any, error) {
	c.record("ListClusters")
	if c.ListClustersFunc == nil {
		panic("stub: ListClusters not implemented")
	}
	return c.ListClustersFunc(ctx)
}

func (c *Client) ListMeanings(ctx context.Context) ([]map[string]any, error) {
	c.record("ListMeanings")
	if c.ListMeaningsFunc == nil {
		panic("stub: ListMeanings not implemented")
	}
	return c.ListMeaningsFunc(ctx)
}

func (c *Client) ListWorkspaces(ctx context.Context) ([]map[string]any, error) {
	c.record("ListWorkspaces")
	if c.ListWorkspacesFunc == nil {
		panic("stub: ListWorkspaces not implemented")
	}
	return c.ListWorkspacesFunc(ctx)
}

func (c *Client) ListDataCollections(ctx context.Context) ([]map[string]any, error) {
	c.record("ListDataCollections")
	if c.ListDataCollectionsFunc == nil {
		panic("stub: ListDataCollections not implemented")
	}
	return c.ListDataCollectionsFunc(ctx)
}

func (c *Client) GetLicensingStatus(ctx context.Context) (map[string]any, error) {
	c.record("GetLicensingStatus")
	if c.GetLicensingStatusFunc == nil {
		panic("stub: GetLicensingStatus not implemented")
	}
	return c.GetLicensingStatusFunc(ctx)
}

func (c *Client) GetSanityCheckCodes(ctx context.Context) ([]string, error) {
	c.record("GetSanityCheckCodes")
	if c.GetSanityCheckCodesFunc == nil {
		panic("stub: GetSanityCheckCodes not implemented")
	}
	return c.GetSanityCheckCodesFunc(ctx)
}

func (c *Client) GetDataQualityStatus(ctx context.Context) (map[string]any, error) {
	c.record("GetDataQualityStatus")
	if c.GetDataQualityStatusFunc == nil {
		panic("stub: GetDataQualityStatus not implemented")
	}
	return c.GetDataQualityStatusFunc(ctx)
}

func (c *Client) GetGeneralSettings(ctx context.Context) (map[string]any, error) {
	c.record("GetGeneralSettings")
	if c.GetGeneralSettingsFunc == nil {
		panic("stub: GetGeneralSettings not implemented")
	}
	return c.GetGeneralSettingsFunc(ctx)
}

func (c *Client) SetGeneralSettings(ctx context.Context, settings map[string]any) error {
	c.record("SetGeneralSettings")
	if c.SetGeneralSettingsFunc == nil {
		panic("stub: SetGeneralSettings not implemented")
	}
	return c.SetGeneralSettingsFunc(ctx, settings)
}

func (c *Client) GetProjectSummary(ctx context.Context, projectKey string) (map[string]any, error) {
	c.record("GetProjectSummary")
	if c.GetProjectSummaryFunc == nil {
		panic("stub: GetProjectSummary not implemented")
	}
	return c.GetProjectSummaryFunc(ctx, projectKey)
}

func (c *Client) GetProjectMetadata(ctx context.Context, projectKey string) (map[string]any, error) {
	c.record("GetProjectMetadata")
	if c.GetProjectMetadataFunc == nil {
		panic("stub: GetProjectMetadata not implemented")
	}
	return c.GetProjectMetadataFunc(ctx, projectKey)
}

func (c *Client) SetProjectMetadata(ctx context.Context, projectKey string, metadata map[string]any) error {
	c.record("SetProjectMetadata")
	if c.SetProjectMetadataFunc == nil {
		panic("stub: SetProjectMetadata not implemented")
	}
	return c.SetProjectMetadataFunc(ctx, projectKey, metadata)
}

func (c *Client) GetProjectPermissions(ctx context.Context, projectKey string) (map[string]any, error) {
	c.record("GetProjectPermissions")
	if c.GetProjectPermissionsFunc == nil {
		panic("stub: GetProjectPermissions not implemented")
	}
	return c.GetProjectPermissionsFunc(ctx, projectKey)
}

func (c *Client) SetProjectPermissions(ctx context.Context, projectKey string, permissions map[string]any) error {
	c.record("SetProjectPermissions")
	if c.SetProjectPermissionsFunc == nil {
		panic("stub: SetProjectPermissions not implemented")
	}
	return c.SetProjectPermissionsFunc(ctx, projectKey, permissions)
}

func (c *Client) GetProjectInterest(ctx context.Context, projectKey string) (map[string]any, error) {
	c.record("GetProjectInterest")
	if c.GetProjectInterestFunc == nil {
		panic("stub: GetProjectInterest not implemented")
	}
	return c.GetProjectInterestFunc(ctx, projectKey)
}

func (c *Client) GetProjectTimeline(ctx context.Context, projectKey string, itemCount int) (map[string]any, error) {
	c.record("GetProjectTimeline")
	if c.GetProjectTimelineFunc == nil {
		panic("stub: GetProjectTimeline not implemented")
	}
	return c.GetProjectTimelineFunc(ctx, projectKey, itemCount)
}

func (c *Client) DeleteProject(ctx context.Context, projectKey string, opts types.ProjectDeletionOptions) (map[string]any, error) {
	c.record("DeleteProject")
	if c.DeleteProjectFunc == nil {
		panic("stub: DeleteProject not implemented")
	}
	return c.DeleteProjectFunc(ctx, projectKey, opts)
}

func (c *Client) DuplicateProject(ctx context.Context, projectKey string, req types.ProjectDuplicationRequest) (map[string]any, error) {
	c.record("DuplicateProject")
	if c.DuplicateProjectFunc == nil {
		panic("stub: DuplicateProject not implemented")
	}
	return c.DuplicateProjectFunc(ctx, projectKey, req)
}

func (c *Client) MoveProjectToFolder(ctx context.Context, projectKey, folderID string) error {
	c.record("MoveProjectToFolder")
	if c.MoveProjectToFolderFunc == nil {
		panic("stub: MoveProjectToFolder not implemented")
	}
	return c.MoveProjectToFolderFunc(ctx, projectKey, folderID)
}

func (c *Client) ListDatasets(ctx context.Context, projectKey string, includeShared bool) ([]map[string]any, error) {
	c.record("ListDatasets")
	if c.ListDatasetsFunc == nil {
		panic("stub: ListDatasets not implemented")
	}
	return c.ListDatasetsFunc(ctx, projectKey, includeShared)
}

func (c *Client) ListRecipes(ctx context.Context, projectKey string) ([]map[string]any, error) {
	c.record("ListRecipes")
	if c.ListRecipesFunc == nil {
		panic("stub: ListRecipes not implemented")
	}
	return c.ListRecipesFunc(ctx, projectKey)
}

func (c *Client) ListScenarios(ctx context.Context, projectKey string) ([]map[string]any, error) {
	c.record("ListScenarios")
	if c.ListScenariosFunc == nil {
		panic("stub: ListScenarios not implemented")
	}
	return c.ListScenariosFunc(ctx, projectKey)
}

func (c *Client) ListJobs(ctx context.Context, projectKey string) ([]map[string]any, error) {
	c.record("ListJobs")
	if c.ListJobsFunc == nil {
		panic("stub: ListJobs not implemented")
	}
	return c.ListJobsFunc(ctx, projectKey)
}

func (c *Client) ListMLTasks(ctx context.Context, projectKey string) ([]map[string]any, error) {
	c.record("ListMLTasks")
	if c.ListMLTasksFunc == nil {
		panic("stub: ListMLTasks not implemented")
	}
	return c.ListMLTasksFunc(ctx, projectKey)
}

func (c *Client) ListAnalyses(ctx context.Context, projectKey string) ([]map[string]any, error) {
	c.record("ListAnalyses")
	if c.ListAnalysesFunc == nil {
		panic("stub: ListAnalyses not implemented")
	}
	return c.ListAnalysesFunc(ctx, projectKey)
}

func (c *Client) ListSavedModels(ctx context.Context, projectKey string) ([]map[string]any, error) {
	c.record("ListSavedModels")
	if c.ListSavedModelsFunc == nil {
		panic("stub: ListSavedModels not implemented")
	}
	return c.ListSavedModelsFunc(ctx, projectKey)
}

func (c *Client) ListManagedFolders(ctx context.Context, projectKey string) ([]map[string]any, error) {
	c.record("ListManagedFolders")
	if c.ListManagedFoldersFunc == nil {
		panic("stub: ListManagedFolders not implemented")
	}
	return c.ListManagedFoldersFunc(ctx, projectKey)
}

func (c *Client) CreateManagedDataset(ctx context.Context, projectKey string, req types.ManagedDatasetCreationRequest) error {
	c.record("CreateManagedDataset")
	if c.CreateManagedDatasetFunc == nil {
		panic("stub: CreateManagedDataset not implemented")
	}
	return c.CreateManagedDatasetFunc(ctx, projectKey, req)
}

func (c *Client) DeleteDataset(ctx context.Context, projectKey, datasetName string, dropData bool) error {
	c.record("DeleteDataset")
	if c.DeleteDatasetFunc == nil {
		panic("stub: DeleteDataset not implemented")
	}
	return c.DeleteDatasetFunc(ctx, projectKey, datasetName, dropData)
}

func (c *Client) RenameDataset(ctx context.Context, projectKey, datasetName, newName string) error {
	c.record("RenameDataset")
	if c.RenameDatasetFunc == nil {
		panic("stub: RenameDataset not implemented")
	}
	return c.RenameDatasetFunc(ctx, projectKey, datasetName, newName)
}

func (c *Client) GetDatasetSettings(ctx context.Context, projectKey, datasetName string) (map[string]any, error) {
	c.record("GetDatasetSettings")
	if c.GetDatasetSettingsFunc == nil {
		panic("stub: GetDatasetSettings not implemented")
	}
	return c.GetDatasetSettingsFunc(ctx, projectKey, datasetName)
}

func (c *Client) GetDatasetSchema(ctx context.Context, projectKey, datasetName string) (map[string]any, error) {
	c.record("GetDatasetSchema")
	if c.GetDatasetSchemaFunc == nil {
		panic("stub: GetDatasetSchema not implemented")
	}
	return c.GetDatasetSchemaFunc(ctx, projectKey, datasetName)
}

func (c *Client) SetDatasetSchema(ctx context.Context, projectKey, datasetName string, schema map[string]any) error {
	c.record("SetDatasetSchema")
	if c.SetDatasetSchemaFunc == nil {
		panic("stub: SetDatasetSchema not implemented")
	}
	return c.SetDatasetSchemaFunc(ctx, projectKey, datasetName, schema)
}

func (c *Client) GetDatasetMetadata(ctx context.Context, projectKey, datasetName string) (map[string]any, error) {
	c.record("GetDatasetMetadata")
	if c.GetDatasetMetadataFunc == nil {
		panic("stub: GetDatasetMetadata not implemented")
	}
	return c.GetDatasetMetadataFunc(ctx, projectKey, datasetName)
}

func (c *Client) SampleDataset(ctx context.Context, projectKey, datasetName string, rows int, partitions []string) (*types.DatasetSample, error) {
	c.record("SampleDataset")
	if c.SampleDatasetFunc == nil {
		panic("stub: SampleDataset not implemented")
	}
	return c.SampleDatasetFunc(ctx, projectKey, datasetName, rows, partitions)
}

func (c *Client) CreateRecipe(ctx context.Context, projectKey string, req types.RecipeCreationRequest) (map[string]any, error) {
	c.record("CreateRecipe")
	if c.CreateRecipeFunc == nil {
		panic("stub: CreateRecipe not implemented")
	}
	return c.CreateRecipeFunc(ctx, projectKey, req)
}

func (c *Client) GetRecipe(ctx context.Context, projectKey, recipeName string) (*types.RecipeData, error) {
	c.record("GetRecipe")
	if c.GetRecipeFunc == nil {
		panic("stub: GetRecipe not implemented")
	}
	return c.GetRecipeFunc(ctx, projectKey, recipeName)
}

func (c *Client) SetRecipe(ctx context.Context, projectKey, recipeName string, data types.RecipeData) error {
	c.record("SetRecipe")
	if c.SetRecipeFunc == nil {
		panic("stub: SetRecipe not implemented")
	}
	return c.SetRecipeFunc(ctx, projectKey, recipeName, data)
}

func (c *Client) ComputeRecipeSchemaUpdates(ctx context.Context, projectKey, recipeName string) (map[string]any, error) {
	c.record("ComputeRecipeSchemaUpdates")
	if c.ComputeRecipeSchemaUpdatesFunc == nil {
		panic("stub: ComputeRecipeSchemaUpdates not implemented")
	}
	return c.ComputeRecipeSchemaUpdatesFunc(ctx, projectKey, recipeName)
}

func (c *Client) RunRecipe(ctx context.Context, projectKey, recipeName, jobType string, wait bool) (map[string]any, error) {
	c.record("RunRecipe")
	if c.RunRecipeFunc == nil {
		panic("stub: RunRecipe not implemented")
	}
	return c.RunRecipeFunc(ctx, projectKey, recipeName, jobType, wait)
}

func (c *Client) GetFlowGraph(ctx context.Context, projectKey string) (map[string]any, error) {
	c.record("GetFlowGraph")
	if c.GetFlowGraphFunc == nil {
		panic("stub: GetFlowGraph not implemented")
	}
	return c.GetFlowGraphFunc(ctx, projectKey)
}
