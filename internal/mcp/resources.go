// resources.go implements MCP resource handlers for note access.
//
// MCP resources provide read-only access to notes via URI schemes, enabling
// LLM clients to reference notes without using tools. This is useful for
// context loading where the LLM needs note content but isn't searching.
//
// Design: Resource URIs follow the pattern nlpsearch://notes/{path}, where
// path is the same vault-relative identifier search results report.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jpl-au/nlpsearch/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// notePrefix is the URI prefix of note resources.
const notePrefix = "nlpsearch://notes/"

var (
	// ErrInvalidURI indicates a malformed resource URI, helping clients
	// debug URI construction issues.
	ErrInvalidURI = errors.New("invalid URI")
	// ErrEmptyPath indicates a missing note path in a resource URI.
	ErrEmptyPath = errors.New("empty note path")
)

// readNote handles reads of the note resource template.
func (h *handlers) readNote(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return h.readNoteResource(ctx, req.Params.URI)
}

// readNoteResource reads a note and returns it as resource contents.
func (h *handlers) readNoteResource(ctx context.Context, uri string) ([]mcp.ResourceContents, error) {
	p, err := parseNoteURI(uri)
	if err != nil {
		return nil, err
	}

	content, err := h.ext.Vault().Read(ctx, p)
	log.Event("mcp:resource", "read").Path(p).Write(err)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}

// parseNoteURI extracts the note path from nlpsearch://notes/{path}. The
// path may be percent-encoded.
func parseNoteURI(uri string) (string, error) {
	if !strings.HasPrefix(uri, notePrefix) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}

	rest, err := url.PathUnescape(strings.TrimPrefix(uri, notePrefix))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidURI, uri, err)
	}
	if rest == "" {
		return "", ErrEmptyPath
	}
	return rest, nil
}
