// Package tools assembles the full tool surface of the server.
package tools

import (
	"context"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/mark3labs/mcp-go/mcp"

	"dss-mcp/registry"
	adminTools "dss-mcp/tools/admin"
	datasetTools "dss-mcp/tools/dataset"
	flowTools "dss-mcp/tools/flow"
	folderTools "dss-mcp/tools/folder"
	instanceTools "dss-mcp/tools/instance"
	i "dss-mcp/tools/internal"
	projectTools "dss-mcp/tools/project"
	recipeTools "dss-mcp/tools/recipe"
	"dss-mcp/types"
)

// ToolHandlers builds every tool exposed by the server
type ToolHandlers struct {
	provider types.ClientProvider
	audit    types.AuditLog
	logger   hclog.Logger
}

// New creates new tool handlers. audit may be nil, in which case invocations
// are not recorded.
func New(provider types.ClientProvider, audit types.AuditLog, logger hclog.Logger) *ToolHandlers {
	return &ToolHandlers{
		provider: provider,
		audit:    audit,
		logger:   logger,
	}
}

// Tools returns every tool of the server in registration order
func (th *ToolHandlers) Tools() []i.Tool {
	cp := th.provider

	tools := []i.Tool{
		// Projects
		projectTools.List(cp),
		projectTools.Create(cp),
		projectTools.Delete(cp),
		projectTools.Duplicate(cp),
		projectTools.Move(cp),
		projectTools.Summary(cp),
		projectTools.GetMetadata(cp),
		projectTools.SetMetadata(cp),
		projectTools.GetPermissions(cp),
		projectTools.SetPermissions(cp),
		projectTools.Interest(cp),
		projectTools.Timeline(cp),
		projectTools.ListDatasets(cp),
		projectTools.ListRecipes(cp),
		projectTools.ListScenarios(cp),
		projectTools.ListJobs(cp),
		projectTools.ListMLTasks(cp),
		projectTools.ListAnalyses(cp),
		projectTools.ListSavedModels(cp),
		projectTools.ListManagedFolders(cp),

		// Project folders
		folderTools.List(cp),
		folderTools.Get(cp),

		// Datasets
		datasetTools.CreateManaged(cp),
		datasetTools.Delete(cp),
		datasetTools.Rename(cp),
		datasetTools.GetSettings(cp),
		datasetTools.GetSchema(cp),
		datasetTools.GetMetadata(cp),
		datasetTools.Sample(cp),

		// Recipes
		recipeTools.Create(cp),
		recipeTools.GetSettings(cp),
		recipeTools.SetCode(cp),
		recipeTools.SetPayload(cp),
		recipeTools.Run(cp),

		// Flow
		flowTools.Graph(cp),

		// Instance
		instanceTools.ListFutures(cp),
		instanceTools.ListRunningScenarios(cp),
		instanceTools.ListRunningNotebooks(cp),
		instanceTools.ListPlugins(cp),
		instanceTools.ListUsers(cp),
		instanceTools.ListGroups(cp),
		instanceTools.GetAuthInfo(cp),
		instanceTools.ListConnectionNames(cp),
		instanceTools.ListCodeEnvs(cp),
		instanceTools.ListCodeEnvUsages(cp),
		instanceTools.ListClusters(cp),
		instanceTools.ListMeanings(cp),
		instanceTools.ListWorkspaces(cp),
		instanceTools.ListDataCollections(cp),

		// Admin
		adminTools.GetLicensingStatus(cp),
		adminTools.GetSanityCheckCodes(cp),
		adminTools.GetDataQualityStatus(cp),
		adminTools.GetGeneralSettings(cp),
		adminTools.SetGeneralSettings(cp),
	}

	if th.audit != nil {
		tools = append(tools, adminTools.AuditTrail(th.audit))
	}

	for idx := range tools {
		tools[idx].Handler = th.withAudit(tools[idx].Tool.Name, tools[idx].Handler)
	}

	return tools
}

// RegisterTools registers every tool with the registry
func (th *ToolHandlers) RegisterTools(reg *registry.Registry) error {
	for _, tool := range th.Tools() {
		if err := reg.Register(tool); err != nil {
			return err
		}
	}
	return nil
}

// withAudit records each invocation of the tool. Recording failures are
// logged and swallowed so the audit log can never break a tool call.
func (th *ToolHandlers) withAudit(name string, handler i.ToolHandler) i.ToolHandler {
	if th.audit == nil {
		return handler
	}

	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		result, err := handler(ctx, request)

		record := types.InvocationRecord{
			Tool:       name,
			DurationMS: time.Since(start).Milliseconds(),
		}
		if msg := failureMessage(result, err); msg != "" {
			record.Failed = &msg
		}

		if auditErr := th.audit.RecordInvocation(ctx, record); auditErr != nil {
			th.logger.Warn("failed to record tool invocation", "tool", name, "error", auditErr)
		}

		return result, err
	}
}

// failureMessage extracts the error text of a failed invocation, or "" when
// the invocation succeeded.
func failureMessage(result *mcp.CallToolResult, err error) string {
	if err != nil {
		return err.Error()
	}
	if result == nil || !result.IsError {
		return ""
	}

	for _, content := range result.Content {
		if text, ok := mcp.AsTextContent(content); ok {
			return text.Text
		}
	}
	return "tool reported an error"
}
