// Package flow defines the MCP tools operating on DSS project flows.
package flow

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

type graphArgs struct {
	ProjectKey string `json:"project_key"`
}

// Graph retrieves the structure of a project's flow graph
func Graph(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("flow-get-graph"),
		Description: "Get the structure of a project's flow graph. Each node represents a " +
			"dataset, recipe, managed folder, saved model or other flow item, and carries its " +
			"ref (name), type (e.g. COMPUTABLE_DATASET, RUNNABLE_RECIPE), predecessors and " +
			"successors, so the graph can be read left-to-right.",
		Annotations: i.ToolAnnotations("Get flow graph", i.Readonly|i.Idempotent),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]any{
				"project_key": map[string]any{
					"type":        "string",
					"description": "The project key whose flow to retrieve",
				},
			},
			Required: []string{"project_key"},
		},
	}

	handler := mcp.NewTypedToolHandler(func(ctx context.Context, _ mcp.CallToolRequest, args graphArgs) (*mcp.CallToolResult, error) {
		dss, err := cp.Impersonated(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		graph, err := dss.GetFlowGraph(ctx, args.ProjectKey)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get flow graph: %v", err)), nil
		}

		nodes, ok := graph["nodes"]
		if !ok {
			nodes = graph
		}

		return i.RespondJSON(map[string]any{
			"project_key": args.ProjectKey,
			"nodes":       nodes,
		})
	})

	return i.Tool{Tool: tool, Handler: handler}
}
