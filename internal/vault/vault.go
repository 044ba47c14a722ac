// Package vault exposes a directory of markdown notes as a read-only
// document source.
//
// A vault is any directory; its notes are the .md files beneath it. Note
// identifiers are vault-relative, forward-slash paths that keep the
// extension ("projects/plan.md"), matching what users see in their editor.
//
// Security: every read goes through os.Root (Go 1.24+), so identifiers can
// never escape the vault directory even when they arrive from an MCP client.
package vault

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jpl-au/nlpsearch/internal/glob"
	"github.com/jpl-au/nlpsearch/internal/path"
	"github.com/jpl-au/nlpsearch/internal/scan"
)

var (
	// ErrNotMarkdown is returned when reading a path that is not a .md note.
	ErrNotMarkdown = errors.New("not a markdown note")
	// ErrTooLarge is returned when a note exceeds the configured size limit.
	ErrTooLarge = errors.New("note exceeds size limit")
	// ErrIgnored is returned when reading a path excluded by an ignore pattern.
	ErrIgnored = errors.New("note is ignored")
)

// Options configures vault enumeration and reads.
type Options struct {
	Ignore     []string // Glob patterns excluded from List and Read
	MaxContent int64    // Maximum note size in bytes (0 = unlimited)
}

// Vault is a directory of markdown notes.
type Vault struct {
	dir  string
	opts Options
}

var _ scan.Source = (*Vault)(nil)

// Open returns a vault rooted at dir. The directory must exist.
func Open(dir string, opts Options) (*Vault, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving vault path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("opening vault: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening vault: %s is not a directory", abs)
	}
	for _, p := range opts.Ignore {
		if _, err := glob.Match(p, ""); err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", p, err)
		}
	}
	return &Vault{dir: abs, opts: opts}, nil
}

// Dir returns the absolute vault directory.
func (v *Vault) Dir() string {
	return v.dir
}

// List returns every markdown note in lexical walk order. Directories that
// match an ignore pattern are not descended into.
func (v *Vault) List(ctx context.Context) ([]string, error) {
	root, err := os.OpenRoot(v.dir)
	if err != nil {
		return nil, fmt.Errorf("opening vault: %w", err)
	}
	defer root.Close()

	var notes []string
	err = fs.WalkDir(root.FS(), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if p == "." {
			return nil
		}

		ignored, err := glob.Any(v.opts.Ignore, p)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if ignored {
				return fs.SkipDir
			}
			return nil
		}
		if ignored || !d.Type().IsRegular() || !path.IsMarkdown(p) {
			return nil
		}
		notes = append(notes, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking vault: %w", err)
	}
	return notes, nil
}

// Read returns the full text of a note.
func (v *Vault) Read(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p, err := path.Normalise(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", err, id)
	}
	if !path.IsMarkdown(p) {
		return "", fmt.Errorf("%w: %s", ErrNotMarkdown, p)
	}
	ignored, err := glob.Any(v.opts.Ignore, p)
	if err != nil {
		return "", err
	}
	if ignored {
		return "", fmt.Errorf("%w: %s", ErrIgnored, p)
	}

	root, err := os.OpenRoot(v.dir)
	if err != nil {
		return "", fmt.Errorf("opening vault: %w", err)
	}
	defer root.Close()

	f, err := root.Open(filepath.FromSlash(p))
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", p, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrNotMarkdown, p)
	}
	if v.opts.MaxContent > 0 && info.Size() > v.opts.MaxContent {
		return "", fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrTooLarge, p, info.Size(), v.opts.MaxContent)
	}

	content := make([]byte, info.Size())
	if _, err := io.ReadFull(f, content); err != nil {
		return "", fmt.Errorf("reading %s: %w", p, err)
	}
	return string(content), nil
}
