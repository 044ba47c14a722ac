// tool.go defines the nlp_search MCP tool.
//
// The tool runs the same normalize-then-scan pipeline as the command but
// takes the query as an argument instead of prompting for it.

package search

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/jpl-au/nlpsearch/extension"
	"github.com/jpl-au/nlpsearch/internal/log"
	"github.com/jpl-au/nlpsearch/internal/nlpsearch"
	"github.com/jpl-au/nlpsearch/internal/normalize"
	"github.com/jpl-au/nlpsearch/internal/scan"
	"github.com/mark3labs/mcp-go/mcp"
)

// ToolName is the MCP name of the search tool.
const ToolName = "nlp_search"

func searchTool() extension.MCPTool {
	return extension.MCPTool{
		Tool: mcp.NewTool(ToolName,
			mcp.WithDescription("Find notes containing a phrase. The phrase is normalized (lower-cased, accents and surrounding punctuation removed, dotted acronyms collapsed) and matched as a literal substring. Returns a JSON array of note paths in vault order."),
			mcp.WithString("query", mcp.Required(), mcp.Description("Phrase to search for")),
		),
		Handler: handleSearch,
	}
}

func handleSearch(ctx context.Context, extCtx extension.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("query is required"), nil //nolint:nilerr
	}

	deps := nlpsearch.Deps{
		Normalizer: normalize.New(normalize.Default()),
		Source:     extCtx.Vault(),
		OnSkip: func(s scan.Skip) {
			slog.Warn("skipped note", "path", s.Path, "error", s.Err)
		},
	}
	result, err := nlpsearch.Search(ctx, deps, query)

	log.Event("mcp:"+ToolName, "search").
		Detail("query", query).
		Detail("normalized", result.Normalized).
		Detail("count", len(result.Paths)).
		Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	paths := result.Paths
	if paths == nil {
		paths = []string{}
	}
	data, err := json.MarshalIndent(paths, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
