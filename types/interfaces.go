package types

import (
	"context"
)

// Client is the authenticated handle to the DSS backend through which all
// platform operations are invoked. Implementations are scoped to a single
// caller identity and hold no cross-invocation state.
type Client interface {
	// Instance-wide operations
	ListProjects(ctx context.Context, includeLocation bool) ([]map[string]any, error)
	CreateProject(ctx context.Context, req ProjectCreationRequest) (map[string]any, error)
	GetAuthInfo(ctx context.Context) (map[string]any, error)
	ListConnections(ctx context.Context) (map[string]any, error)
	ListConnectionNames(ctx context.Context, connectionType string) ([]string, error)
	GetProjectFolder(ctx context.Context, folderID string) (*ProjectFolder, error)
	ListFutures(ctx context.Context, allUsers bool) ([]map[string]any, error)
	ListRunningScenarios(ctx context.Context, allUsers bool) ([]map[string]any, error)
	ListRunningNotebooks(ctx context.Context) ([]map[string]any, error)
	ListPlugins(ctx context.Context) ([]map[string]any, error)
	ListUsers(ctx context.Context, includeSettings bool) ([]map[string]any, error)
	ListGroups(ctx context.Context) ([]map[string]any, error)
	ListCodeEnvs(ctx context.Context) ([]map[string]any, error)
	ListCodeEnvUsages(ctx context.Context) ([]map[string]any, error)
	ListClusters(ctx context.Context) ([]map[string]any, error)
	ListMeanings(ctx context.Context) ([]map[string]any, error)
	ListWorkspaces(ctx context.Context) ([]map[string]any, error)
	ListDataCollections(ctx context.Context) ([]map[string]any, error)
	GetLicensingStatus(ctx context.Context) (map[string]any, error)
	GetSanityCheckCodes(ctx context.Context) ([]string, error)
	GetDataQualityStatus(ctx context.Context) (map[string]any, error)
	GetGeneralSettings(ctx context.Context) (map[string]any, error)
	SetGeneralSettings(ctx context.Context, settings map[string]any) error

	// Project operations
	GetProjectSummary(ctx context.Context, projectKey string) (map[string]any, error)
	GetProjectMetadata(ctx context.Context, projectKey string) (map[string]any, error)
	SetProjectMetadata(ctx context.Context, projectKey string, metadata map[string]any) error
	GetProjectPermissions(ctx context.Context, projectKey string) (map[string]any, error)
	SetProjectPermissions(ctx context.Context, projectKey string, permissions map[string]any) error
	GetProjectInterest(ctx context.Context, projectKey string) (map[string]any, error)
	GetProjectTimeline(ctx context.Context, projectKey string, itemCount int) (map[string]any, error)
	DeleteProject(ctx context.Context, projectKey string, opts ProjectDeletionOptions) (map[string]any, error)
	DuplicateProject(ctx context.Context, projectKey string, req ProjectDuplicationRequest) (map[string]any, error)
	MoveProjectToFolder(ctx context.Context, projectKey, folderID string) error
	ListDatasets(ctx context.Context, projectKey string, includeShared bool) ([]map[string]any, error)
	ListRecipes(ctx context.Context, projectKey string) ([]map[string]any, error)
	ListScenarios(ctx context.Context, projectKey string) ([]map[string]any, error)
	ListJobs(ctx context.Context, projectKey string) ([]map[string]any, error)
	ListMLTasks(ctx context.Context, projectKey string) ([]map[string]any, error)
	ListAnalyses(ctx context.Context, projectKey string) ([]map[string]any, error)
	ListSavedModels(ctx context.Context, projectKey string) ([]map[string]any, error)
	ListManagedFolders(ctx context.Context, projectKey string) ([]map[string]any, error)

	// Dataset operations
	CreateManagedDataset(ctx context.Context, projectKey string, req ManagedDatasetCreationRequest) error
	DeleteDataset(ctx context.Context, projectKey, datasetName string, dropData bool) error
	RenameDataset(ctx context.Context, projectKey, datasetName, newName string) error
	GetDatasetSettings(ctx context.Context, projectKey, datasetName string) (map[string]any, error)
	GetDatasetSchema(ctx context.Context, projectKey, datasetName string) (map[string]any, error)
	SetDatasetSchema(ctx context.Context, projectKey, datasetName string, schema map[string]any) error
	GetDatasetMetadata(ctx context.Context, projectKey, datasetName string) (map[string]any, error)
	SampleDataset(ctx context.Context, projectKey, datasetName string, rows int, partitions []string) (*DatasetSample, error)

	// Recipe operations
	CreateRecipe(ctx context.Context, projectKey string, req RecipeCreationRequest) (map[string]any, error)
	GetRecipe(ctx context.Context, projectKey, recipeName string) (*RecipeData, error)
	SetRecipe(ctx context.Context, projectKey, recipeName string, data RecipeData) error
	ComputeRecipeSchemaUpdates(ctx context.Context, projectKey, recipeName string) (map[string]any, error)
	RunRecipe(ctx context.Context, projectKey, recipeName, jobType string, wait bool) (map[string]any, error)

	// Flow operations
	GetFlowGraph(ctx context.Context, projectKey string) (map[string]any, error)
}

// ClientProvider builds a Client bound to the identity of the current caller.
// The client is acquired at the top of a tool handler and discarded when the
// handler returns; it is never shared between invocations.
type ClientProvider interface {
	Impersonated(ctx context.Context) (Client, error)
}

// AuditLog records tool invocations for after-the-fact inspection
type AuditLog interface {
	RecordInvocation(ctx context.Context, record InvocationRecord) error
	ListInvocations(ctx context.Context, query InvocationQuery) ([]InvocationRecord, error)
	Close() error
}
