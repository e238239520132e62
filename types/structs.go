package types

// ProjectFolder describes a single project folder node
type ProjectFolder struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Path        string   `json:"path"`
	ProjectKeys []string `json:"projectKeys"`
	ChildrenIDs []string `json:"childrenIds"`
}

// ProjectCreationRequest carries the fields for creating a new project
type ProjectCreationRequest struct {
	ProjectKey      string `json:"projectKey"`
	Name            string `json:"name"`
	Owner           string `json:"owner,omitempty"`
	Description     string `json:"description,omitempty"`
	ProjectFolderID string `json:"projectFolderId,omitempty"`
}

// ProjectDeletionOptions controls what gets cleared alongside a project
type ProjectDeletionOptions struct {
	ClearManagedDatasets      bool
	ClearOutputManagedFolders bool
	ClearJobAndScenarioLogs   bool
}

// ProjectDuplicationRequest carries the fields for duplicating a project
type ProjectDuplicationRequest struct {
	TargetProjectKey      string `json:"targetProjectKey"`
	TargetProjectName     string `json:"targetProjectName"`
	DuplicationMode       string `json:"duplicationMode"`
	ExportAnalysisModels  bool   `json:"exportAnalysisModels"`
	ExportSavedModels     bool   `json:"exportSavedModels"`
	ExportInsightsData    bool   `json:"exportInsightsData"`
	TargetProjectFolderID string `json:"targetProjectFolderId,omitempty"`
}

// ManagedDatasetCreationRequest carries the fields for creating a managed dataset
type ManagedDatasetCreationRequest struct {
	Name           string `json:"name"`
	Connection     string `json:"connection"`
	TypeOptionID   string `json:"typeOptionId,omitempty"`
	FormatOptionID string `json:"formatOptionId,omitempty"`
	Overwrite      bool   `json:"overwrite"`
}

// DatasetSample is a slice of dataset rows together with the column order the
// backend used to produce them
type DatasetSample struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// RecipeOutput is a single output of a recipe under creation
type RecipeOutput struct {
	Name   string `json:"name"`
	Append bool   `json:"append,omitempty"`
}

// RecipeCreationRequest carries the fields for creating a recipe
type RecipeCreationRequest struct {
	Type    string         `json:"type"`
	Name    string         `json:"name,omitempty"`
	Inputs  []string       `json:"inputs"`
	Outputs []RecipeOutput `json:"outputs"`
	Script  string         `json:"script,omitempty"`
}

// RecipeData is the full recipe as stored by the backend: the definition
// object plus the payload string (script source for code recipes, serialized
// JSON configuration for visual ones)
type RecipeData struct {
	Recipe  map[string]any `json:"recipe"`
	Payload string         `json:"payload"`
}

// InvocationRecord is one entry of the tool invocation audit log
type InvocationRecord struct {
	ID         string  `json:"id"`
	Tool       string  `json:"tool"`
	DurationMS int64   `json:"duration_ms"`
	Failed     *string `json:"failed,omitempty"` // Error message if the invocation failed
	CreatedAt  string  `json:"created_at"`
}

// InvocationQuery represents query parameters for audit log requests
type InvocationQuery struct {
	Tool   string `json:"tool,omitempty"` // If empty, all tools
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}
