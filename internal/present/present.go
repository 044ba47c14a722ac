// Package present shows search results to the user.
//
// The result "dialog" is a numbered list under a "Search Results" heading.
// An empty result set is shown as an explicit "No results found." line
// rather than an empty list. In interactive mode the user can pick a result
// by number to open it; the note is rendered and the list shown again until
// the user closes it.
package present

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jpl-au/nlpsearch/internal/prompt"
)

// Heading and NoResults are the fixed strings of the result list.
const (
	Heading   = "Search Results"
	NoResults = "No results found."
)

// Presenter displays an ordered list of note identifiers.
type Presenter interface {
	Present(ctx context.Context, paths []string) error
}

// Reader fetches a note body for opening. vault.Vault satisfies it.
type Reader interface {
	Read(ctx context.Context, id string) (string, error)
}

// Renderer turns markdown into display text.
type Renderer func(markdown string) (string, error)

// Raw displays markdown unchanged.
func Raw(markdown string) (string, error) { return markdown, nil }

// Glamour returns a renderer using the named glamour style ("dark", "light", "notty").
func Glamour(style string) Renderer {
	return func(markdown string) (string, error) {
		return glamour.Render(markdown, style)
	}
}

// Options configures a List presenter.
type Options struct {
	Reader   Reader          // Source for opened notes; nil disables opening
	Prompter prompt.Prompter // Selection prompt; nil disables opening
	Render   Renderer        // Defaults to Raw
}

// List is the terminal result list.
type List struct {
	out  io.Writer
	opts Options
}

var _ Presenter = (*List)(nil)

// NewList returns a List writing to out.
func NewList(out io.Writer, opts Options) *List {
	if opts.Render == nil {
		opts.Render = Raw
	}
	return &List{out: out, opts: opts}
}

// Present writes the result list. When a reader and prompter are
// configured and there is at least one result, it then offers to open
// results by number until the user submits an empty line or dismisses the
// prompt.
func (l *List) Present(ctx context.Context, paths []string) error {
	for {
		l.writeList(paths)
		if len(paths) == 0 || l.opts.Reader == nil || l.opts.Prompter == nil {
			return nil
		}

		label := fmt.Sprintf("Open result [1-%d] (enter to close):", len(paths))
		text, ok, err := l.opts.Prompter.Prompt(ctx, label)
		if err != nil {
			return err
		}
		text = strings.TrimSpace(text)
		if !ok || text == "" {
			return nil
		}

		n, err := strconv.Atoi(text)
		if err != nil || n < 1 || n > len(paths) {
			fmt.Fprintf(l.out, "Invalid selection %q\n", text)
			continue
		}
		if err := l.Open(ctx, paths[n-1]); err != nil {
			fmt.Fprintf(l.out, "Cannot open %s: %v\n", paths[n-1], err)
		}
	}
}

// Open renders a single note. Rendering failures fall back to the raw text.
func (l *List) Open(ctx context.Context, p string) error {
	if l.opts.Reader == nil {
		return fmt.Errorf("opening %s: no reader configured", p)
	}
	body, err := l.opts.Reader.Read(ctx, p)
	if err != nil {
		return err
	}

	rendered, err := l.opts.Render(body)
	if err != nil {
		rendered = body
	}
	fmt.Fprintf(l.out, "\n== %s ==\n", p)
	fmt.Fprint(l.out, rendered)
	if !strings.HasSuffix(rendered, "\n") {
		fmt.Fprintln(l.out)
	}
	return nil
}

func (l *List) writeList(paths []string) {
	fmt.Fprintln(l.out, Heading)
	if len(paths) == 0 {
		fmt.Fprintln(l.out, NoResults)
		return
	}
	width := len(strconv.Itoa(len(paths)))
	for i, p := range paths {
		fmt.Fprintf(l.out, "%*d. %s\n", width, i+1, p)
	}
}

// discard presents nothing.
type discard struct{}

func (discard) Present(context.Context, []string) error { return nil }

// Discard is a Presenter that shows nothing, for callers that format the
// result themselves (JSON output, MCP).
var Discard Presenter = discard{}
