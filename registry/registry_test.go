package registry

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pkg/errors"

	"dss-mcp/types"
)

func testTool(name string) types.Tool {
	return types.Tool{
		Tool: mcp.Tool{Name: name},
		Handler: func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText(name), nil
		},
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	r := New()

	if err := r.Register(testTool("project-list")); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	err := r.Register(testTool("project-list"))
	if !errors.Is(err, ErrDuplicateTool) {
		t.Fatalf("expected ErrDuplicateTool, got %v", err)
	}

	// First registration wins
	if len(r.List()) != 1 {
		t.Fatalf("expected 1 tool after duplicate registration, got %d", len(r.List()))
	}
}

func TestResolve(t *testing.T) {
	r := New()
	if err := r.Register(testTool("dataset-sample")); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	if _, err := r.Resolve("dataset-sample"); err != nil {
		t.Fatalf("expected handler for registered tool, got %v", err)
	}

	_, err := r.Resolve("no-such-tool")
	if !errors.Is(err, ErrUnknownTool) {
		t.Fatalf("expected ErrUnknownTool, got %v", err)
	}
}

func TestListPreservesRegistrationOrder(t *testing.T) {
	names := []string{"project-list", "dataset-sample", "recipe-run", "flow-get-graph"}

	r := New()
	for _, name := range names {
		if err := r.Register(testTool(name)); err != nil {
			t.Fatalf("registration of %s failed: %v", name, err)
		}
	}

	listed := r.List()
	if len(listed) != len(names) {
		t.Fatalf("expected %d tools, got %d", len(names), len(listed))
	}
	for idx, name := range names {
		if listed[idx].Tool.Name != name {
			t.Errorf("position %d: expected %s, got %s", idx, name, listed[idx].Tool.Name)
		}
	}
}

type captureServer struct {
	names []string
}

func (c *captureServer) AddTool(tool mcp.Tool, _ types.ToolHandler) {
	c.names = append(c.names, tool.Name)
}

func TestInstallPushesEveryTool(t *testing.T) {
	r := New()
	for _, name := range []string{"a", "b", "c"} {
		if err := r.Register(testTool(name)); err != nil {
			t.Fatalf("registration failed: %v", err)
		}
	}

	s := &captureServer{}
	r.Install(s)

	if len(s.names) != 3 {
		t.Fatalf("expected 3 installed tools, got %d", len(s.names))
	}
	for idx, name := range []string{"a", "b", "c"} {
		if s.names[idx] != name {
			t.Errorf("position %d: expected %s, got %s", idx, name, s.names[idx])
		}
	}
}
