// Package dedupe collapses the filter's output into the sorted unique word
// set the lexicon is built over.
package dedupe

import (
	"sort"

	"golang.org/x/text/collate"

	"github.com/heartmarshall/lexikon/internal/domain"
)

// Words returns the unique base forms sorted under the collator's total
// order. Idempotent: running it over its own output changes nothing.
func Words(coll *collate.Collator, words []domain.BaseForm) []domain.BaseForm {
	seen := make(map[domain.BaseForm]struct{}, len(words))
	out := make([]domain.BaseForm, 0, len(words))
	for _, w := range words {
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}

	sort.Slice(out, func(i, j int) bool {
		return coll.CompareString(string(out[i]), string(out[j])) < 0
	})
	return out
}
