// Package normalize turns raw source text into the canonical form the
// filter stages consume: lowercase, alphabet letters and single spaces only.
package normalize

import (
	"strings"

	"github.com/heartmarshall/lexikon/internal/language"
)

// Text prepares raw source text for filtering:
//   - folds to lowercase under the language's casing rules
//   - replaces every rune outside the language's alphabet with a space
//   - compresses whitespace runs into one space
//   - trims leading and trailing spaces
//
// Pure and total: any input yields a string of alphabet letters and single
// spaces, empty when the input holds no alphabetic content.
func Text(lang *language.Language, text string) string {
	text = lang.Lower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := true
	for _, r := range text {
		if !lang.IsLetter(r) {
			if prevSpace {
				continue
			}
			b.WriteByte(' ')
			prevSpace = true
			continue
		}
		b.WriteRune(r)
		prevSpace = false
	}
	return strings.TrimRight(b.String(), " ")
}
