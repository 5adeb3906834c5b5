// Package prosetag tags text with the embedded prose model and lemmatizes
// tokens with the language's lemma dictionary. No network access.
package prosetag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aaaton/golem/v4"
	"github.com/jdkato/prose/v2"

	"github.com/heartmarshall/lexikon/internal/domain"
	"github.com/heartmarshall/lexikon/internal/language"
	"github.com/heartmarshall/lexikon/internal/tagging"
)

// Tagger is the embedded tagging engine.
type Tagger struct {
	lang *language.Language
	lem  *golem.Lemmatizer
	log  *slog.Logger
}

// NewTagger builds the embedded tagger. A lemma dictionary that cannot be
// loaded is a fatal startup error.
func NewTagger(lang *language.Language, logger *slog.Logger) (*Tagger, error) {
	lem, err := lang.Lemmatizer()
	if err != nil {
		return nil, fmt.Errorf("%w: lemma dictionary for %q: %v", domain.ErrTaggerUnavailable, lang.Code, err)
	}
	return &Tagger{
		lang: lang,
		lem:  lem,
		log:  logger.With("adapter", "prosetag"),
	}, nil
}

// Tag tokenizes and tags the whole text.
func (t *Tagger) Tag(ctx context.Context, text string) ([]tagging.Token, error) {
	if text == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(
		text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("prosetag: build document: %w", err)
	}

	docTokens := doc.Tokens()
	tokens := make([]tagging.Token, 0, len(docTokens))
	for _, tok := range docTokens {
		surface := t.lang.Lower(tok.Text)
		tokens = append(tokens, tagging.Token{
			Surface: tok.Text,
			Lemma:   t.lem.Lemma(surface),
			POS:     universalTag(tok.Tag),
			IsAlpha: t.isAlpha(surface),
			IsStop:  t.lang.IsStopWord(surface),
		})
	}

	t.log.DebugContext(ctx, "text tagged", slog.Int("tokens", len(tokens)))

	return tokens, nil
}

func (t *Tagger) isAlpha(lowered string) bool {
	if lowered == "" {
		return false
	}
	for _, r := range lowered {
		if !t.lang.IsLetter(r) {
			return false
		}
	}
	return true
}
