// Package normalize turns a raw search phrase into the canonical string used
// as the literal comparison key.
//
// The transformation is pluggable: anything satisfying Normalizer can be
// handed to the search command. Phrase is the default and renders the
// phrase's canonical surface form (accents folded, lower case, dotted
// acronyms collapsed, edge punctuation trimmed, whitespace collapsed). It
// does no stemming or lemmatisation; the result is compared as a plain
// substring.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Normalizer canonicalises a query. Implementations must be deterministic
// and must never fail; empty input yields empty output.
type Normalizer interface {
	Normalize(raw string) string
}

// Func adapts an ordinary function to the Normalizer interface.
type Func func(raw string) string

// Normalize calls f(raw).
func (f Func) Normalize(raw string) string { return f(raw) }

// Options selects the steps a Phrase normalizer applies. Steps run in the
// order the fields are declared.
type Options struct {
	Unicode     bool // Drop combining marks from Latin letters (café -> cafe)
	Case        bool // Unicode lower-casing
	Punctuation bool // Trim leading/trailing punctuation from each word
	Acronyms    bool // Collapse dotted acronyms (u.s.a. -> usa)
	Whitespace  bool // Collapse whitespace runs and trim
}

// Default enables every step.
func Default() Options {
	return Options{
		Unicode:     true,
		Case:        true,
		Punctuation: true,
		Acronyms:    true,
		Whitespace:  true,
	}
}

// acronym matches a single word of dot-separated letters: "u.s.a", "e.g.".
var acronym = regexp.MustCompile(`^\pL(?:\.\pL)+\.?$`)

// Phrase is the default Normalizer.
type Phrase struct {
	opts Options
}

// New returns a Phrase normalizer applying the given steps.
func New(opts Options) *Phrase {
	return &Phrase{opts: opts}
}

// Lower is the minimal normalizer: lower-case and collapse whitespace only.
var Lower Normalizer = New(Options{Case: true, Whitespace: true})

var _ Normalizer = (*Phrase)(nil)

// Normalize applies the configured steps to raw.
func (p *Phrase) Normalize(raw string) string {
	s := raw

	if p.opts.Unicode {
		s = foldLatin(s)
	}
	// Casers carry state, so each call builds its own.
	if p.opts.Case {
		s = cases.Lower(language.Und).String(s)
	}
	if p.opts.Punctuation || p.opts.Acronyms {
		s = mapWords(s, p.word)
	}
	if p.opts.Whitespace {
		s = strings.Join(strings.Fields(s), " ")
	}
	return s
}

// foldLatin removes the combining marks that follow a Latin base letter and
// recomposes the rest. Marks on other scripts are part of the letter
// (kana voicing, Cyrillic ё and й) and are kept.
func foldLatin(s string) string {
	d := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(d))
	latin := false
	for _, r := range d {
		if unicode.Is(unicode.Mn, r) {
			if latin {
				continue
			}
		} else {
			latin = unicode.Is(unicode.Latin, r)
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}

// word applies the per-word steps.
func (p *Phrase) word(w string) string {
	if p.opts.Punctuation {
		w = strings.TrimFunc(w, unicode.IsPunct)
		if w == "" {
			return w
		}
	}
	if p.opts.Acronyms && acronym.MatchString(w) {
		w = strings.ReplaceAll(w, ".", "")
	}
	return w
}

// mapWords rewrites every maximal run of non-space runes with fn, leaving
// the whitespace between them untouched.
func mapWords(s string, fn func(string) string) string {
	var b strings.Builder
	b.Grow(len(s))
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				b.WriteString(fn(s[start:i]))
				start = -1
			}
			b.WriteRune(r)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		b.WriteString(fn(s[start:]))
	}
	return b.String()
}
