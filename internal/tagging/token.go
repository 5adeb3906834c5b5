// Package tagging holds the structured output of the linguistic tagging
// engines. The engines themselves live under internal/adapter/tagger.
package tagging

import "github.com/heartmarshall/lexikon/internal/domain"

// Token is one tagged token of the source text.
type Token struct {
	// Surface is the wordform exactly as it appears in the text.
	Surface string
	// Lemma is the engine's base form for the token. Engines fall back to
	// the surface form when the dictionary has no entry.
	Lemma string
	// POS is the universal part-of-speech tag.
	POS domain.PartOfSpeech
	// IsAlpha reports whether the surface form is entirely alphabetic.
	IsAlpha bool
	// IsStop reports whether the surface form is a stop word. The flag is
	// computed on the surface form, not the lemma.
	IsStop bool
}
