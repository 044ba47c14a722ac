package scan

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSource is an in-memory Source that preserves insertion order.
type memSource struct {
	ids     []string
	bodies  map[string]string
	readErr map[string]error
	listErr error
	reads   []string
}

func newMemSource(pairs ...string) *memSource {
	s := &memSource{bodies: map[string]string{}, readErr: map[string]error{}}
	for i := 0; i+1 < len(pairs); i += 2 {
		s.ids = append(s.ids, pairs[i])
		s.bodies[pairs[i]] = pairs[i+1]
	}
	return s
}

func (s *memSource) List(context.Context) ([]string, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]string(nil), s.ids...), nil
}

func (s *memSource) Read(_ context.Context, id string) (string, error) {
	s.reads = append(s.reads, id)
	if err := s.readErr[id]; err != nil {
		return "", err
	}
	return s.bodies[id], nil
}

func TestScan(t *testing.T) {
	ctx := context.Background()
	src := newMemSource(
		"a.md", "The quick fox",
		"b.md", "slow turtle",
	)

	t.Run("single match", func(t *testing.T) {
		res, err := Scan(ctx, "quick", src, Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"a.md"}, res.Paths)
		assert.Equal(t, 2, res.Scanned)
		assert.Empty(t, res.Skipped)
	})

	t.Run("no match", func(t *testing.T) {
		res, err := Scan(ctx, "zebra", src, Options{})
		require.NoError(t, err)
		assert.Empty(t, res.Paths)
	})

	t.Run("case sensitive", func(t *testing.T) {
		res, err := Scan(ctx, "the quick", src, Options{})
		require.NoError(t, err)
		assert.Empty(t, res.Paths)
	})

	t.Run("substring inside a word", func(t *testing.T) {
		res, err := Scan(ctx, "urt", src, Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"b.md"}, res.Paths)
	})

	t.Run("empty source", func(t *testing.T) {
		res, err := Scan(ctx, "quick", newMemSource(), Options{})
		require.NoError(t, err)
		assert.Empty(t, res.Paths)
		assert.Zero(t, res.Scanned)
	})
}

func TestScan_EmptyQueryMatchesEveryDocument(t *testing.T) {
	src := newMemSource(
		"a.md", "The quick fox",
		"empty.md", "",
		"b.md", "slow turtle",
	)

	res, err := Scan(context.Background(), "", src, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md", "empty.md", "b.md"}, res.Paths)
}

func TestScan_PreservesEnumerationOrder(t *testing.T) {
	src := newMemSource(
		"z.md", "fox",
		"m.md", "no",
		"a.md", "fox",
		"k.md", "fox",
	)

	res, err := Scan(context.Background(), "fox", src, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"z.md", "a.md", "k.md"}, res.Paths)
}

func TestScan_Idempotent(t *testing.T) {
	src := newMemSource(
		"a.md", "alpha fox",
		"b.md", "beta",
		"c.md", "gamma fox",
	)

	first, err := Scan(context.Background(), "fox", src, Options{})
	require.NoError(t, err)
	second, err := Scan(context.Background(), "fox", src, Options{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestScan_Exact checks that results are exactly the documents containing
// the query: no false positives, no omissions.
func TestScan_Exact(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	words := []string{"fox", "turtle", "quick", "slow", "zebra", "", " "}

	for round := 0; round < 50; round++ {
		src := newMemSource()
		for i := 0; i < 20; i++ {
			var b strings.Builder
			for j := 0; j < rng.Intn(6); j++ {
				b.WriteString(words[rng.Intn(len(words))])
			}
			id := string(rune('a'+i)) + ".md"
			src.ids = append(src.ids, id)
			src.bodies[id] = b.String()
		}
		query := words[rng.Intn(len(words))]

		res, err := Scan(context.Background(), query, src, Options{})
		require.NoError(t, err)

		var want []string
		for _, id := range src.ids {
			if strings.Contains(src.bodies[id], query) {
				want = append(want, id)
			}
		}
		assert.Equal(t, want, res.Paths, "round %d query %q", round, query)
	}
}

func TestScan_SkipsUnreadableDocuments(t *testing.T) {
	src := newMemSource(
		"a.md", "fox",
		"broken.md", "fox",
		"c.md", "fox",
	)
	readErr := errors.New("permission denied")
	src.readErr["broken.md"] = readErr

	var reported []Skip
	res, err := Scan(context.Background(), "fox", src, Options{
		OnSkip: func(s Skip) { reported = append(reported, s) },
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.md", "c.md"}, res.Paths)
	assert.Equal(t, 2, res.Scanned)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "broken.md", res.Skipped[0].Path)
	assert.ErrorIs(t, res.Skipped[0].Err, readErr)
	assert.Equal(t, res.Skipped, reported)
}

func TestScan_ListFailureIsFatal(t *testing.T) {
	src := newMemSource("a.md", "fox")
	listErr := errors.New("vault unavailable")
	src.listErr = listErr

	res, err := Scan(context.Background(), "fox", src, Options{})
	require.ErrorIs(t, err, listErr)
	assert.Empty(t, res.Paths)
	assert.Empty(t, src.reads)
}

func TestScan_ReadsSequentiallyInOrder(t *testing.T) {
	src := newMemSource(
		"c.md", "x",
		"a.md", "y",
		"b.md", "z",
	)

	_, err := Scan(context.Background(), "q", src, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"c.md", "a.md", "b.md"}, src.reads)
}

func TestScan_Cancelled(t *testing.T) {
	src := newMemSource("a.md", "fox", "b.md", "fox")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Scan(ctx, "fox", src, Options{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, src.reads)
}

func TestScan_ReportsProgress(t *testing.T) {
	src := newMemSource("a.md", "x", "b.md", "y", "c.md", "x")
	src.readErr["b.md"] = errors.New("unreadable")

	var calls [][2]int
	_, err := Scan(context.Background(), "x", src, Options{
		OnProgress: func(done, total int) { calls = append(calls, [2]int{done, total}) },
	})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, calls, "skipped documents still count as visited")
}
