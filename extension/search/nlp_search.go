// nlp_search.go implements the "nlpsearch nlp-search" command.
//
// The command takes no arguments: the query is always prompted for. Piped
// stdin answers the prompt, which keeps the command scriptable.

package search

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jpl-au/nlpsearch/cmd"
	"github.com/jpl-au/nlpsearch/extension"
	"github.com/jpl-au/nlpsearch/internal/log"
	"github.com/jpl-au/nlpsearch/internal/nlpsearch"
	"github.com/jpl-au/nlpsearch/internal/normalize"
	"github.com/jpl-au/nlpsearch/internal/present"
	"github.com/jpl-au/nlpsearch/internal/progress"
	"github.com/jpl-au/nlpsearch/internal/prompt"
	"github.com/jpl-au/nlpsearch/internal/scan"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func (e *Extension) newSearchCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   nlpsearch.CommandID,
		Short: nlpsearch.CommandName,
		Long: `Prompt for a phrase and list every note containing it.

The phrase is normalized before matching: lower-cased, accents and
surrounding punctuation removed, dotted acronyms collapsed (U.S.A. -> usa)
and whitespace squeezed. Notes are compared as written, so a phrase only
matches text that already has that exact surface form.

On a terminal, enter a result number to open that note.

  nlpsearch nlp-search
  echo "meeting notes" | nlpsearch nlp-search -o json`,
		Args: cobra.NoArgs,
		RunE: e.runSearch,
	}
	c.Flags().Bool(extension.FlagRaw, false, "Open notes without markdown rendering")
	c.Flags().String(extension.FlagStyle, "dark", "Rendering style for opened notes")
	return c
}

func (e *Extension) runSearch(c *cobra.Command, _ []string) error {
	ctx := c.Context()
	raw, _ := c.Flags().GetBool(extension.FlagRaw)
	style, _ := c.Flags().GetString(extension.FlagStyle)

	// Keep stdout pure JSON for scripts; the prompt goes to stderr instead.
	promptOut := cmd.Out()
	if cmd.JSON() {
		promptOut = os.Stderr
	}
	p := prompt.New(cmd.In(), promptOut)
	bar := progress.New("Searching")
	deps := nlpsearch.Deps{
		Prompter:   p,
		Normalizer: normalize.New(normalize.Default()),
		Source:     e.vault,
		Presenter:  present.Discard,
		OnSkip: func(s scan.Skip) {
			bar.Done()
			slog.Warn("skipped note", "path", s.Path, "error", s.Err)
		},
		OnProgress: func(done, total int) {
			bar.Update(done, total)
			if done == total {
				bar.Done()
			}
		},
	}
	if !cmd.JSON() {
		deps.Presenter = e.presenter(p, raw, style)
	}

	result, err := nlpsearch.Run(ctx, deps, nlpsearch.Options{Settings: settings(e.cfg)})

	log.Event("search:nlp-search", "search").
		Detail("query", result.Query).
		Detail("normalized", result.Normalized).
		Detail("count", len(result.Paths)).
		Detail("skipped", len(result.Skipped)).
		Detail("cancelled", result.Cancelled).
		Write(err)

	if err != nil {
		return cmd.PrintJSONError(fmt.Errorf("%s: %w", nlpsearch.CommandID, err))
	}
	if result.Cancelled {
		return nil
	}

	if cmd.JSON() {
		return cmd.PrintJSON(toJSON(result))
	}
	return nil
}

// presenter builds the result list. Opening notes is only offered when stdin
// is a terminal; piped input has already been consumed by the query prompt.
func (e *Extension) presenter(p prompt.Prompter, raw bool, style string) present.Presenter {
	opts := present.Options{Render: present.Raw}
	if isTerminal(cmd.In()) {
		opts.Reader = e.vault
		opts.Prompter = p
		if !raw && isTerminal(cmd.Out()) {
			opts.Render = present.Glamour(style)
		}
	}
	return present.NewList(cmd.Out(), opts)
}

// resultJSON is the machine-readable form of a search run.
type resultJSON struct {
	Query      string   `json:"query"`
	Normalized string   `json:"normalized"`
	Results    []string `json:"results"`
}

func toJSON(r nlpsearch.Result) resultJSON {
	paths := r.Paths
	if paths == nil {
		paths = []string{}
	}
	return resultJSON{Query: r.Query, Normalized: r.Normalized, Results: paths}
}

// isTerminal reports whether stream is an *os.File attached to a TTY.
func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
