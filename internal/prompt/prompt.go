// Package prompt asks the user for a line of text.
//
// The search command never talks to the terminal directly; it receives a
// Prompter. On an interactive terminal the prompter is a raw-mode line
// editor from golang.org/x/term; otherwise it reads one line from the input
// stream, which keeps the command scriptable (echo quick | nlpsearch nlp-search).
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter shows a label and returns the text the user submitted.
// ok is false when the user dismissed the prompt without submitting
// (Ctrl-C, Ctrl-D, end of input).
type Prompter interface {
	Prompt(ctx context.Context, label string) (text string, ok bool, err error)
}

// New returns a terminal prompter when in is an interactive terminal, and a
// line prompter otherwise.
func New(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return &Terminal{in: f, out: out}
	}
	return NewLine(in, out)
}

// Line reads one line per prompt from a stream.
type Line struct {
	r   *bufio.Reader
	out io.Writer
}

// NewLine returns a prompter reading lines from in and writing labels to out.
func NewLine(in io.Reader, out io.Writer) *Line {
	return &Line{r: bufio.NewReader(in), out: out}
}

// Prompt writes the label and reads the next line. End of input before any
// text counts as a dismissal; a final line without a newline is accepted.
func (l *Line) Prompt(ctx context.Context, label string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	fmt.Fprintf(l.out, "%s ", label)

	line, err := l.r.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			fmt.Fprintln(l.out)
			return "", false, nil
		}
		err = nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), true, nil
}

// Terminal is a raw-mode line editor backed by term.Terminal.
type Terminal struct {
	in  *os.File
	out io.Writer
}

// Prompt puts the terminal in raw mode for the duration of one line.
// Ctrl-C and Ctrl-D on an empty line dismiss the prompt.
func (t *Terminal) Prompt(ctx context.Context, label string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	fd := int(t.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return "", false, fmt.Errorf("entering raw mode: %w", err)
	}
	defer term.Restore(fd, state)

	rw := struct {
		io.Reader
		io.Writer
	}{t.in, t.out}
	line, err := term.NewTerminal(rw, label+" ").ReadLine()
	if errors.Is(err, io.EOF) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading input: %w", err)
	}
	return line, true, nil
}
