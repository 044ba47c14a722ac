package present

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jpl-au/nlpsearch/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapReader map[string]string

func (m mapReader) Read(_ context.Context, id string) (string, error) {
	body, ok := m[id]
	if !ok {
		return "", errors.New("note not found")
	}
	return body, nil
}

func TestList_NoResults(t *testing.T) {
	var out bytes.Buffer
	l := NewList(&out, Options{
		Reader:   mapReader{},
		Prompter: prompt.NewLine(strings.NewReader("1\n"), &out),
	})

	require.NoError(t, l.Present(context.Background(), nil))
	assert.Equal(t, "Search Results\nNo results found.\n", out.String())
}

func TestList_NonInteractive(t *testing.T) {
	var out bytes.Buffer
	l := NewList(&out, Options{})

	require.NoError(t, l.Present(context.Background(), []string{"a.md", "notes/b.md"}))
	assert.Equal(t, "Search Results\n1. a.md\n2. notes/b.md\n", out.String())
}

func TestList_AlignsNumbers(t *testing.T) {
	var out bytes.Buffer
	paths := make([]string, 10)
	for i := range paths {
		paths[i] = "n.md"
	}

	require.NoError(t, NewList(&out, Options{}).Present(context.Background(), paths))
	assert.Contains(t, out.String(), "\n 1. n.md\n")
	assert.Contains(t, out.String(), "\n10. n.md\n")
}

func TestList_OpenBySelection(t *testing.T) {
	var out bytes.Buffer
	reader := mapReader{"a.md": "The quick fox", "b.md": "slow turtle\n"}
	l := NewList(&out, Options{
		Reader:   reader,
		Prompter: prompt.NewLine(strings.NewReader("2\n\n"), &out),
	})

	require.NoError(t, l.Present(context.Background(), []string{"a.md", "b.md"}))

	got := out.String()
	assert.Contains(t, got, "Open result [1-2] (enter to close):")
	assert.Contains(t, got, "== b.md ==\nslow turtle\n")
	assert.NotContains(t, got, "The quick fox")
	// The list is shown again after returning from the note
	assert.Equal(t, 2, strings.Count(got, Heading))
}

func TestList_InvalidSelection(t *testing.T) {
	var out bytes.Buffer
	l := NewList(&out, Options{
		Reader:   mapReader{"a.md": "fox"},
		Prompter: prompt.NewLine(strings.NewReader("9\nabc\n"), &out),
	})

	require.NoError(t, l.Present(context.Background(), []string{"a.md"}))
	assert.Contains(t, out.String(), `Invalid selection "9"`)
	assert.Contains(t, out.String(), `Invalid selection "abc"`)
}

func TestList_OpenFailureKeepsListOpen(t *testing.T) {
	var out bytes.Buffer
	l := NewList(&out, Options{
		Reader:   mapReader{},
		Prompter: prompt.NewLine(strings.NewReader("1\n"), &out),
	})

	require.NoError(t, l.Present(context.Background(), []string{"gone.md"}))
	assert.Contains(t, out.String(), "Cannot open gone.md: note not found")
}

func TestList_RendererFallback(t *testing.T) {
	var out bytes.Buffer
	l := NewList(&out, Options{
		Reader: mapReader{"a.md": "# Title"},
		Render: func(string) (string, error) { return "", errors.New("boom") },
	})

	require.NoError(t, l.Open(context.Background(), "a.md"))
	assert.Equal(t, "\n== a.md ==\n# Title\n", out.String())
}

func TestList_OpenWithoutReader(t *testing.T) {
	err := NewList(&bytes.Buffer{}, Options{}).Open(context.Background(), "a.md")
	assert.Error(t, err)
}

func TestGlamour(t *testing.T) {
	rendered, err := Glamour("notty")("# Title\n\nSome *text*.")
	require.NoError(t, err)
	assert.Contains(t, rendered, "Title")
	assert.Contains(t, rendered, "text")
}

func TestDiscard(t *testing.T) {
	assert.NoError(t, Discard.Present(context.Background(), []string{"a.md"}))
}
