// Package scan implements the linear note scan behind the search command.
//
// A scan lists every document the Source offers, reads each body in order,
// and keeps the identifiers whose body contains the query as a literal
// substring. There is no index and nothing is cached between scans; cost is
// proportional to the total size of the vault.
package scan

import (
	"context"
	"fmt"
	"strings"
)

// Source is the read-only document collection a scan walks. The vault
// package provides the filesystem implementation.
type Source interface {
	// List returns document identifiers in enumeration order.
	List(ctx context.Context) ([]string, error)
	// Read returns the full text of one document.
	Read(ctx context.Context, id string) (string, error)
}

// Skip records a document that could not be read.
type Skip struct {
	Path string
	Err  error
}

// Options configures a scan.
type Options struct {
	// OnSkip is called for each document whose read fails, before the scan
	// moves on to the next one. May be nil.
	OnSkip func(Skip)

	// OnProgress is called after each document is visited, read or skipped,
	// with the number visited so far and the total listed. May be nil.
	OnProgress func(done, total int)
}

// Result contains the outcome of a scan.
type Result struct {
	Paths   []string // Matching identifiers in enumeration order
	Skipped []Skip   // Documents whose read failed
	Scanned int      // Documents read successfully
}

// Scan returns the identifiers of every document in src whose body contains
// query. Matching is a literal, case-sensitive substring test, so an empty
// query matches every readable document, including empty ones.
//
// A failed read skips that document and the scan continues; a failed List
// fails the whole scan. Cancellation of ctx is observed between documents.
func Scan(ctx context.Context, query string, src Source, opts Options) (Result, error) {
	var result Result

	ids, err := src.List(ctx)
	if err != nil {
		return result, fmt.Errorf("listing documents: %w", err)
	}

	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("scan interrupted after %d documents: %w", result.Scanned, err)
		}

		body, err := src.Read(ctx, id)
		if err != nil {
			skip := Skip{Path: id, Err: err}
			result.Skipped = append(result.Skipped, skip)
			if opts.OnSkip != nil {
				opts.OnSkip(skip)
			}
		} else {
			result.Scanned++
			if strings.Contains(body, query) {
				result.Paths = append(result.Paths, id)
			}
		}

		if opts.OnProgress != nil {
			opts.OnProgress(i+1, len(ids))
		}
	}

	return result, nil
}
