// Package folder defines the MCP tools operating on DSS project folders.
package folder

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	i "dss-mcp/tools/internal"
	"dss-mcp/types"
)

// RootFolderID addresses the root project folder on every DSS instance
const RootFolderID = "ROOT"

// List retrieves the whole project folder hierarchy as a tree
func List(cp types.ClientProvider) i.Tool {
	tool := mcp.Tool{
		Name: string("folder-list"),
		Description: "List all project folders in a tree structure starting from the root " +
			"folder. Each node carries id, name, path, projectKeys and children. The tree is " +
			"assembled from one platform call per folder, so deep hierarchies take longer.",
		Annotations: i.ToolAnnotations("List project folders", i.Readonly|i.Idempotent),
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

		tree, err := folderTree(ctx, dss, RootFolderID, "")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list project folders: %v", err)), nil
		}

		return i.RespondJSON(tree)
	}

	return i.Tool{Tool: tool, Handler: handler}
}

// folderTree walks the folder hierarchy depth-first, one platform call per
// folder. parentPath is empty for the root, whose path is rendered as "/".
func folderTree(ctx context.Context, dss types.Client, folderID, parentPath string) (map[string]any, error) {
	folder, err := dss.GetProjectFolder(ctx, folderID)
	if err != nil {
		return nil, err
	}

	path := "/"
	if parentPath != "" || folderID != RootFolderID {
		path = parentPath + "/" + folder.Name
	}

	children := make([]map[string]any, 0, len(folder.ChildrenIDs))
	for _, childID := range folder.ChildrenIDs {
		childParent := parentPath
		if path == "/" {
			childParent = ""
		} else {
			childParent = path
		}

		childNode, err := folderTree(ctx, dss, childID, childParent)
		if err != nil {
			return nil, err
		}
		children = append(children, childNode)
	}

	return map[string]any{
		"id":          folder.ID,
		"name":        folder.Name,
		"path":        path,
		"projectKeys": folder.ProjectKeys,
		"children":    children,
	}, nil
}
