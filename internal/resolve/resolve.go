// Package resolve turns the deduplicated word list into translations. It
// owns the error policy around the translation backends: individual words
// may degrade to the unresolved sentinel, a dead backend fails the run.
package resolve

import (
	"context"

	"github.com/heartmarshall/lexikon/internal/domain"
)

// WordBackend answers one word at a time with zero or more senses.
type WordBackend interface {
	TranslateWord(ctx context.Context, word string) (domain.Resolution, error)
}

// BatchBackend answers a whole word list with one positionally aligned
// list of single translations.
type BatchBackend interface {
	TranslateBatch(ctx context.Context, words []string) ([]string, error)
}

// Resolver resolves every given word to a Resolution. The returned map
// covers exactly the input words: per-word failures show up as unresolved
// values, never as missing keys.
type Resolver interface {
	Resolve(ctx context.Context, words []domain.BaseForm) (map[domain.BaseForm]domain.Resolution, error)
}
