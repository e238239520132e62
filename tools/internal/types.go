package internal

import "dss-mcp/types"

// The tool contract lives in types so packages outside the tools tree
// (registry, pkg/standalone) can import it too; the aliases keep tool
// constructors terse.
type (
	ToolHandler = types.ToolHandler
	Tool        = types.Tool
)
