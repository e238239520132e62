// Package registry holds the set of callable tools and their metadata. It is
// populated once during startup and read-only afterwards, which makes
// unsynchronized concurrent reads safe.
package registry

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pkg/errors"

	"dss-mcp/types"
)

var (
	// ErrDuplicateTool is returned when registering a name that is already taken
	ErrDuplicateTool = errors.New("tool already registered")

	// ErrUnknownTool is returned when resolving a name that was never registered
	ErrUnknownTool = errors.New("unknown tool")
)

// Server is the transport-side sink the registry installs its tools into
type Server interface {
	AddTool(tool mcp.Tool, handler types.ToolHandler)
}

// Registry maps tool names to their descriptors, preserving registration order
type Registry struct {
	order  []string
	byName map[string]types.Tool
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		byName: map[string]types.Tool{},
	}
}

// Register stores a tool descriptor. The first registration under a given
// name wins; a second one fails with ErrDuplicateTool.
func (r *Registry) Register(tool types.Tool) error {
	name := tool.Tool.Name

	if _, exists := r.byName[name]; exists {
		return errors.Wrap(ErrDuplicateTool, name)
	}

	r.byName[name] = tool
	r.order = append(r.order, name)

	return nil
}

// Resolve returns the handler registered under name, or ErrUnknownTool
func (r *Registry) Resolve(name string) (types.ToolHandler, error) {
	tool, exists := r.byName[name]
	if !exists {
		return nil, errors.Wrap(ErrUnknownTool, name)
	}
	return tool.Handler, nil
}

// List returns all descriptors in registration order
func (r *Registry) List() []types.Tool {
	tools := make([]types.Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.byName[name])
	}
	return tools
}

// Install pushes every registered tool into the transport server
func (r *Registry) Install(s Server) {
	for _, tool := range r.List() {
		s.AddTool(tool.Tool, tool.Handler)
	}
}
