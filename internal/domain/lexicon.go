package domain

import "fmt"

// Sentinel placeholders recorded for words the translation backend could not
// resolve. They appear verbatim in the rendered output.
const (
	SentinelPartOfSpeech = "?"
	SentinelTarget       = "???"
)

// BaseForm is a single candidate word in the source language: lowercase,
// alphabet-only, either a surface form or a lemma depending on the filter
// strategy.
type BaseForm string

func (b BaseForm) String() string { return string(b) }

// Sense is one translation sense for a base form. PartOfSpeech carries the
// backend's label and Target the translation in the target language; for
// unresolved words both hold the sentinel placeholders.
type Sense struct {
	PartOfSpeech string
	Target       string
}

// SentinelSense marks a word the backend could not resolve.
func SentinelSense() Sense {
	return Sense{PartOfSpeech: SentinelPartOfSpeech, Target: SentinelTarget}
}

// IsSentinel reports whether the sense is the unresolved placeholder.
func (s Sense) IsSentinel() bool {
	return s.PartOfSpeech == SentinelPartOfSpeech && s.Target == SentinelTarget
}

// LexiconEntry pairs a source base form with its senses, in backend order.
// Senses is never empty: unresolved words carry exactly the sentinel sense.
type LexiconEntry struct {
	Source BaseForm
	Senses []Sense
}

// Resolution is the outcome of resolving one base form against the
// translation backend. The zero value is unresolved; a resolved value always
// carries at least one sense, so callers never have to inspect sense lists
// to tell the two outcomes apart.
type Resolution struct {
	senses []Sense
}

// Resolved builds a successful resolution. An empty sense list degrades to
// unresolved, which keeps "resolved with no senses" unrepresentable.
func Resolved(senses ...Sense) Resolution {
	if len(senses) == 0 {
		return Resolution{}
	}
	return Resolution{senses: senses}
}

// Unresolved marks a word the backend had no answer for.
func Unresolved() Resolution { return Resolution{} }

// IsResolved reports whether the backend produced at least one sense.
func (r Resolution) IsResolved() bool { return len(r.senses) > 0 }

// Senses returns the senses in backend order, nil when unresolved.
func (r Resolution) Senses() []Sense { return r.senses }

// Lexicon is the ordered mapping from deduplicated base forms to their
// resolutions. Construction fixes both the entry set and the iteration
// order; resolutions can only attach to existing entries, so the resolver
// cannot grow or reorder the lexicon.
type Lexicon struct {
	order    []BaseForm
	resolved map[BaseForm]Resolution
}

// NewLexicon builds a lexicon over the deduplicated, already-sorted word
// list. Every word starts out unresolved.
func NewLexicon(words []BaseForm) *Lexicon {
	lex := &Lexicon{
		order:    make([]BaseForm, len(words)),
		resolved: make(map[BaseForm]Resolution, len(words)),
	}
	for i, w := range words {
		lex.order[i] = w
		lex.resolved[w] = Resolution{}
	}
	return lex
}

// Len returns the number of entries.
func (l *Lexicon) Len() int { return len(l.order) }

// Words returns the base forms in lexicon order.
func (l *Lexicon) Words() []BaseForm {
	out := make([]BaseForm, len(l.order))
	copy(out, l.order)
	return out
}

// Attach records the resolution for an existing base form. Words the lexicon
// was not built with are rejected.
func (l *Lexicon) Attach(word BaseForm, res Resolution) error {
	if _, ok := l.resolved[word]; !ok {
		return fmt.Errorf("attach %q: %w", word, ErrNotFound)
	}
	l.resolved[word] = res
	return nil
}

// Entries materializes the lexicon in order. Every entry carries at least
// one sense; words without a resolution get the sentinel sense.
func (l *Lexicon) Entries() []LexiconEntry {
	entries := make([]LexiconEntry, 0, len(l.order))
	for _, w := range l.order {
		senses := l.resolved[w].Senses()
		if len(senses) == 0 {
			senses = []Sense{SentinelSense()}
		}
		entries = append(entries, LexiconEntry{Source: w, Senses: senses})
	}
	return entries
}

// UnresolvedWords returns, in lexicon order, the words that carry no
// resolution. Used for the end-of-run summary.
func (l *Lexicon) UnresolvedWords() []BaseForm {
	var out []BaseForm
	for _, w := range l.order {
		if !l.resolved[w].IsResolved() {
			out = append(out, w)
		}
	}
	return out
}
