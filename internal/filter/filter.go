// Package filter extracts candidate base forms from normalized text. Two
// strategies exist: a stop-word list over surface forms and a tag-based
// path over lemmas. The choice is a configuration option, not a runtime
// branch; the output contract is the same either way.
package filter

import (
	"context"

	"github.com/heartmarshall/lexikon/internal/domain"
	"github.com/heartmarshall/lexikon/internal/tagging"
)

// Filter turns normalized text into a sequence of base forms, duplicates
// included. Deduplication is a later stage.
type Filter interface {
	Extract(ctx context.Context, text string) ([]domain.BaseForm, error)
}

// Tagger is the linguistic tagging capability the tag-based strategy
// consults.
type Tagger interface {
	Tag(ctx context.Context, text string) ([]tagging.Token, error)
}
