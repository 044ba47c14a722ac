// Package nlpsearch runs the "NLP Search" command: ask for a phrase,
// normalise it, scan every note for it, and show the matches.
//
// Every collaborator is passed in. The prompt, the note source and the
// result presenter are interfaces supplied by the host (the CLI or a test),
// and settings arrive as a value rather than being read from global state.
package nlpsearch

import (
	"context"
	"fmt"

	"github.com/jpl-au/nlpsearch/internal/normalize"
	"github.com/jpl-au/nlpsearch/internal/present"
	"github.com/jpl-au/nlpsearch/internal/prompt"
	"github.com/jpl-au/nlpsearch/internal/scan"
)

// Command identity as registered with the host.
const (
	CommandID   = "nlp-search"
	CommandName = "NLP Search"
)

// PromptLabel is shown when asking for the query.
const PromptLabel = "Enter your search query:"

// Settings is the persisted plugin configuration threaded into a search.
type Settings struct {
	// AdvancedSearch mirrors the "Enable Advanced Search" toggle. It is
	// carried for completeness; no search step depends on it.
	AdvancedSearch bool
}

// Deps are the host collaborators a search needs.
type Deps struct {
	Prompter   prompt.Prompter
	Normalizer normalize.Normalizer
	Source     scan.Source
	Presenter  present.Presenter
	// OnSkip is told about notes that could not be read. May be nil.
	OnSkip func(scan.Skip)
	// OnProgress follows the scan note by note. May be nil.
	OnProgress func(done, total int)
}

// Options configures a single search invocation.
type Options struct {
	Settings Settings
}

// Result contains the outcome of a search invocation.
type Result struct {
	Cancelled  bool        // The user dismissed the prompt; nothing was scanned
	Query      string      // Raw text as entered
	Normalized string      // Comparison key actually used
	Paths      []string    // Matching notes in vault order
	Skipped    []scan.Skip // Notes that could not be read
	Scanned    int         // Notes read successfully
}

// Run performs one search. A dismissed prompt or an empty answer ends the
// search silently: nothing is scanned and nothing is presented. An answer of
// only whitespace is searched like any other; it normalises to the empty
// string and so matches every note.
func Run(ctx context.Context, deps Deps, opts Options) (Result, error) {
	var result Result

	query, ok, err := deps.Prompter.Prompt(ctx, PromptLabel)
	if err != nil {
		return result, fmt.Errorf("prompt: %w", err)
	}
	if !ok || query == "" {
		result.Cancelled = true
		return result, nil
	}

	result, err = Search(ctx, deps, query)
	if err != nil {
		return result, err
	}

	if err := deps.Presenter.Present(ctx, result.Paths); err != nil {
		return result, fmt.Errorf("presenting results: %w", err)
	}
	return result, nil
}

// Search normalises query and scans the source without prompting or
// presenting. Non-interactive hosts (MCP) call this directly. Unlike Run it
// does not treat an empty query specially: the normalised empty string
// matches every note.
func Search(ctx context.Context, deps Deps, query string) (Result, error) {
	result := Result{Query: query}
	result.Normalized = deps.Normalizer.Normalize(query)

	res, err := scan.Scan(ctx, result.Normalized, deps.Source, scan.Options{OnSkip: deps.OnSkip, OnProgress: deps.OnProgress})
	result.Paths = res.Paths
	result.Skipped = res.Skipped
	result.Scanned = res.Scanned
	if err != nil {
		return result, fmt.Errorf("scan: %w", err)
	}
	return result, nil
}
