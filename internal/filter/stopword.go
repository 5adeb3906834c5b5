package filter

import (
	"context"
	"strings"

	"github.com/heartmarshall/lexikon/internal/domain"
	"github.com/heartmarshall/lexikon/internal/language"
)

// Stopword keeps lowercase surface forms and drops exact stop-word matches.
// No lemmatization and no tagging engine involved.
type Stopword struct {
	lang *language.Language
}

var _ Filter = (*Stopword)(nil)

// NewStopword builds the stop-word-list strategy.
func NewStopword(lang *language.Language) *Stopword {
	return &Stopword{lang: lang}
}

// Extract splits the normalized text on spaces and keeps every word that is
// neither a stop word nor an invalid base form.
func (f *Stopword) Extract(_ context.Context, text string) ([]domain.BaseForm, error) {
	words := strings.Fields(text)
	out := make([]domain.BaseForm, 0, len(words))
	for _, w := range words {
		if f.lang.IsStopWord(w) {
			continue
		}
		if !f.lang.ValidBaseForm(w) {
			continue
		}
		out = append(out, domain.BaseForm(w))
	}
	return out, nil
}
