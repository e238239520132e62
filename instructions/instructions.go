// Package instructions provides the embedded agent-instructions.md content
// handed to MCP clients at initialization, containing guidance for AI agents
// operating a Dataiku DSS instance through this server's tools.
package instructions

import (
	_ "embed"
)

//go:embed agent-instructions.md
var instructions string

func Get() string {
	return instructions
}
