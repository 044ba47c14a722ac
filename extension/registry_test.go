package extension

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

// testExtension is a minimal Extension implementation for testing.
type testExtension struct {
	name  string
	tools []MCPTool
}

func (e testExtension) Name() string               { return e.name }
func (e testExtension) Commands() []*cobra.Command { return nil }
func (e testExtension) MCPTools() []MCPTool        { return e.tools }

func TestRegister_PanicOnDuplicate(t *testing.T) {
	name := "test-duplicate-panic"
	Register(testExtension{name: name})

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate registration, got none")
		}
	}()

	Register(testExtension{name: name})
}

func TestRegister_OrderAndLookup(t *testing.T) {
	Register(testExtension{name: "test-order-first"})
	Register(testExtension{name: "test-order-second"})

	var names []string
	for _, e := range All() {
		names = append(names, e.Name())
	}
	first := indexOf(names, "test-order-first")
	second := indexOf(names, "test-order-second")
	assert.GreaterOrEqual(t, first, 0)
	assert.Greater(t, second, first)

	assert.NotNil(t, Get("test-order-first"))
	assert.Nil(t, Get("test-order-missing"))
}

func TestTools(t *testing.T) {
	Register(testExtension{
		name:  "test-tools",
		tools: []MCPTool{{Tool: mcp.NewTool("test_tool")}},
	})

	var found bool
	for _, tool := range Tools() {
		if tool.Tool.Name == "test_tool" {
			found = true
		}
	}
	assert.True(t, found, "registered tool should be listed")
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
