// Package progress provides CLI progress indicators. Output goes to stderr
// to keep stdout clean for piping, and TTY detection ensures proper formatting
// in both interactive and scripted usage.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// minItems is the minimum number of items before showing progress.
// For small vaults, progress adds noise without benefit.
const minItems = 5

// Progress tracks and displays operation progress.
type Progress struct {
	w     io.Writer
	label string
	isTTY bool
	width int // length of the last line written, for clearing
}

// New creates a progress reporter that writes to stderr. Nothing is printed
// unless stderr is a terminal.
func New(label string) *Progress {
	return NewWriter(os.Stderr, label, term.IsTerminal(int(os.Stderr.Fd())))
}

// NewWriter creates a progress reporter on w. When tty is false every call
// is a no-op.
func NewWriter(w io.Writer, label string, tty bool) *Progress {
	return &Progress{w: w, label: label, isTTY: tty}
}

// Update redraws the progress line for done of total items. It has the
// signature of a scan progress callback.
func (p *Progress) Update(done, total int) {
	if !p.isTTY || total < minItems {
		return
	}

	pct := (done * 100) / total
	line := fmt.Sprintf("%s... %d/%d (%d%%)", p.label, done, total, pct)
	// Overwrite line on TTY
	fmt.Fprintf(p.w, "\r%s", line)
	p.width = len(line)
}

// Done clears the progress line (on TTY) to make way for final output.
func (p *Progress) Done() {
	if !p.isTTY || p.width == 0 {
		return
	}
	fmt.Fprintf(p.w, "\r%s\r", strings.Repeat(" ", p.width))
	p.width = 0
}
