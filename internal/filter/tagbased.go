package filter

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/lexikon/internal/domain"
	"github.com/heartmarshall/lexikon/internal/language"
)

// excludedPOS are the tag classes that never enter the lexicon.
var excludedPOS = map[domain.PartOfSpeech]struct{}{
	domain.PartOfSpeechSpace:                    {},
	domain.PartOfSpeechPunctuation:              {},
	domain.PartOfSpeechSymbol:                   {},
	domain.PartOfSpeechNumeral:                  {},
	domain.PartOfSpeechOther:                    {},
	domain.PartOfSpeechDeterminer:               {},
	domain.PartOfSpeechAdposition:               {},
	domain.PartOfSpeechSubordinatingConjunction: {},
	domain.PartOfSpeechCoordinatingConjunction:  {},
	domain.PartOfSpeechAuxiliary:                {},
}

// TagBased consults a tagging engine and keeps the lemmas of content words.
type TagBased struct {
	lang   *language.Language
	tagger Tagger
}

var _ Filter = (*TagBased)(nil)

// NewTagBased builds the tag-based strategy around a tagging engine.
func NewTagBased(lang *language.Language, tagger Tagger) *TagBased {
	return &TagBased{lang: lang, tagger: tagger}
}

// Extract tags the text and applies the inclusion rules in order, dropping
// a token at the first rule it fails: alphabetic, not a stop word (surface
// form), part of speech outside the excluded set, and a valid lemma.
func (f *TagBased) Extract(ctx context.Context, text string) ([]domain.BaseForm, error) {
	tokens, err := f.tagger.Tag(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("tag text: %w", err)
	}

	out := make([]domain.BaseForm, 0, len(tokens))
	for _, tok := range tokens {
		if !tok.IsAlpha {
			continue
		}
		if tok.IsStop {
			continue
		}
		if _, excluded := excludedPOS[tok.POS]; excluded {
			continue
		}
		lemma := strings.TrimSpace(f.lang.Lower(tok.Lemma))
		if !f.lang.ValidBaseForm(lemma) {
			continue
		}
		out = append(out, domain.BaseForm(lemma))
	}
	return out, nil
}
