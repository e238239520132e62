// Package instance defines the MCP tools operating on a DSS instance as a
// whole rather than on one project.
package instance

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

// listingTool builds a read-only no-argument tool that lists one kind of
// instance-level object.
func listingTool(name, title, description string, fetch func(ctx context.Context, dss types.Client) (any, error)) func(types.ClientProvider) i.Tool {
	return func(cp types.ClientProvider) i.Tool {
		tool := mcp.Tool{
			Name:        name,
			Description: description,
			Annotations: i.ToolAnnotations(title, i.Readonly|i.Idempotent),
			InputSchema: mcp.ToolInputSchema{
				Type:       "object",
				Properties: map[string]any{},
			},
		}

		handler := func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			dss, err := cp.Impersonated(ctx)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			items, err := fetch(ctx, dss)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("Failed to list: %v", err)), nil
			}

			return i.RespondJSON(items)
		}

		return i.Tool{Tool: tool, Handler: handler}
	}
}

// ListRunningNotebooks lists the currently-running Jupyter notebooks
var ListRunningNotebooks = listingTool(
	"instance-list-running-notebooks",
	"List running notebooks",
	"List the currently-running Jupyter notebooks. Each item contains at least a 'name' field.",
	func(ctx context.Context, dss types.Client) (any, error) {
		return dss.ListRunningNotebooks(ctx)
	},
)

// ListPlugins lists the installed plugins
var ListPlugins = listingTool(
	"instance-list-plugins",
	"List plugins",
	"List the plugins installed on the instance. Each item contains at least an 'id' field.",
	func(ctx context.Context, dss types.Client) (any, error) {
		return dss.ListPlugins(ctx)
	},
)

// ListGroups lists all groups on the instance
var ListGroups = listingTool(
	"instance-list-groups",
	"List groups",
	"List all groups set up on the instance. Requires an API key with admin rights.",
	func(ctx context.Context, dss types.Client) (any, error) {
		return dss.ListGroups(ctx)
	},
)

// ListCodeEnvs lists the code envs, trimmed to the fields agents need
var ListCodeEnvs = listingTool(
	"instance-list-code-envs",
	"List code envs",
	"List the code environments on the instance as summaries (envName, envLang, owner, "+
		"pythonInterpreter).",
	func(ctx context.Context, dss types.Client) (any, error) {
		envs, err := dss.ListCodeEnvs(ctx)
		if err != nil {
			return nil, err
		}
		return i.Summarize(envs, "envName", "envLang", "owner", "pythonInterpreter"), nil
	},
)

// ListCodeEnvUsages lists every usage of a code env on the instance
var ListCodeEnvUsages = listingTool(
	"instance-list-code-env-usages",
	"List code env usages",
	"List all usages of code environments on the instance. The response can be large, use "+
		"with caution.",
	func(ctx context.Context, dss types.Client) (any, error) {
		return dss.ListCodeEnvUsages(ctx)
	},
)

// ListClusters lists the clusters on the instance
var ListClusters = listingTool(
	"instance-list-clusters",
	"List clusters",
	"List the clusters set up on the instance (name, type, state).",
	func(ctx context.Context, dss types.Client) (any, error) {
		return dss.ListClusters(ctx)
	},
)

// ListMeanings lists the user-defined meanings on the instance
var ListMeanings = listingTool(
	"instance-list-meanings",
	"List meanings",
	"List all user-defined meanings on the instance, each as a dict.",
	func(ctx context.Context, dss types.Client) (any, error) {
		return dss.ListMeanings(ctx)
	},
)

// ListWorkspaces lists the workspaces on the instance
var ListWorkspaces = listingTool(
	"instance-list-workspaces",
	"List workspaces",
	"List the workspaces on the instance, each as a dict.",
	func(ctx context.Context, dss types.Client) (any, error) {
		return dss.ListWorkspaces(ctx)
	},
)

// ListDataCollections lists the accessible data collections
var ListDataCollections = listingTool(
	"instance-list-data-collections",
	"List data collections",
	"List the data collections accessible to the calling user, each as a dict.",
	func(ctx context.Context, dss types.Client) (any, error) {
		return dss.ListDataCollections(ctx)
	},
)
