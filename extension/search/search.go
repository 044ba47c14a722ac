// Package search provides the NLP Search command.
// Registers command: nlp-search, and the nlp_search MCP tool.
package search

import (
	"github.com/jpl-au/nlpsearch/extension"
	"github.com/jpl-au/nlpsearch/internal/config"
	"github.com/jpl-au/nlpsearch/internal/nlpsearch"
	"github.com/jpl-au/nlpsearch/internal/vault"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the search extension.
type Extension struct {
	vault *vault.Vault
	cfg   *config.Config
}

// Compile-time interface compliance. Catches missing methods at build time
// rather than runtime, making interface changes safer to refactor.
var (
	_ extension.Extension     = (*Extension)(nil)
	_ extension.Initializable = (*Extension)(nil)
)

// Name returns "search" - this extension provides the phrase search command.
func (e *Extension) Name() string { return "search" }

// Init connects to the shared vault and settings.
func (e *Extension) Init(ctx extension.Context) error {
	e.vault = ctx.Vault()
	e.cfg = ctx.Config()
	return nil
}

// Commands returns the single search action.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		e.newSearchCmd(),
	}
}

// MCPTools returns the nlp_search tool.
func (e *Extension) MCPTools() []extension.MCPTool {
	return []extension.MCPTool{
		searchTool(),
	}
}

// settings threads the persisted settings into a search run explicitly.
func settings(cfg *config.Config) nlpsearch.Settings {
	return nlpsearch.Settings{AdvancedSearch: cfg.AdvancedSearch()}
}
