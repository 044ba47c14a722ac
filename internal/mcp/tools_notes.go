// tools_notes.go implements MCP tools for browsing the vault.
//
// Search itself is contributed by the search extension; these tools let an
// LLM follow up on results (read them) or see what a search would cover.
//
// Design: Results are returned as JSON for easy LLM parsing. Reading several
// notes in one call reports per-note errors instead of failing the batch.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/nlpsearch/internal/glob"
	"github.com/jpl-au/nlpsearch/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// noteJSON is one entry of an nlpsearch_read result.
type noteJSON struct {
	Path    string `json:"path"`
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// listNotes handles nlpsearch_list tool calls.
func (h *handlers) listNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pattern := getString(req, "pattern", "")
	if pattern != "" {
		if _, err := glob.Match(pattern, ""); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid pattern %q: %v", pattern, err)), nil
		}
	}

	paths, err := h.ext.Vault().List(ctx)
	if err == nil && pattern != "" {
		paths = filter(paths, pattern)
	}

	log.Event("mcp:list", "list").Detail("pattern", pattern).Detail("count", len(paths)).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if paths == nil {
		paths = []string{}
	}
	return jsonResult(paths)
}

// readNotes handles nlpsearch_read tool calls.
func (h *handlers) readNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	paths := getStrings(req, "paths")
	if len(paths) == 0 {
		return mcp.NewToolResultError("paths is required"), nil
	}

	notes := make([]noteJSON, 0, len(paths))
	for _, p := range paths {
		content, err := h.ext.Vault().Read(ctx, p)
		log.Event("mcp:read", "read").Path(p).Write(err)
		if err != nil {
			notes = append(notes, noteJSON{Path: p, Error: err.Error()})
			continue
		}
		notes = append(notes, noteJSON{Path: p, Content: content})
	}
	return jsonResult(notes)
}

// filter keeps the paths matching pattern. The pattern has already been
// validated, so match errors cannot occur.
func filter(paths []string, pattern string) []string {
	var out []string
	for _, p := range paths {
		if ok, _ := glob.Match(pattern, p); ok {
			out = append(out, p)
		}
	}
	return out
}
