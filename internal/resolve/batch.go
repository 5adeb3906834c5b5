package resolve

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/lexikon/internal/domain"
	"github.com/heartmarshall/lexikon/pkg/ctxutil"
)

var _ Resolver = (*Batch)(nil)

// Batch resolves the whole word list with a single backend call. Each word
// gets exactly one sense with an unknown part of speech, because batch
// backends return flat translations without dictionary data.
type Batch struct {
	backend BatchBackend
	timeout time.Duration
	log     *slog.Logger
}

// NewBatch creates a batch resolver. A non-positive timeout falls back to
// the default.
func NewBatch(backend BatchBackend, timeout time.Duration, logger *slog.Logger) *Batch {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Batch{
		backend: backend,
		timeout: timeout,
		log:     logger.With("resolver", "batch"),
	}
}

// Resolve translates all words in one request. The response is mapped back
// positionally, so its length must equal the request length; anything else
// is a malformed response and fails the run. There is no per-word
// degradation here: with a single call, a failed call means no results.
func (r *Batch) Resolve(ctx context.Context, words []domain.BaseForm) (map[domain.BaseForm]domain.Resolution, error) {
	results := make(map[domain.BaseForm]domain.Resolution, len(words))
	if len(words) == 0 {
		return results, nil
	}

	texts := make([]string, len(words))
	for i, word := range words {
		texts[i] = word.String()
	}

	bctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	translated, err := r.backend.TranslateBatch(bctx, texts)
	if err != nil {
		return nil, fmt.Errorf("batch translate: %w", err)
	}
	if len(translated) != len(words) {
		return nil, fmt.Errorf("batch translate: got %d translations for %d words", len(translated), len(words))
	}

	empty := 0
	for i, word := range words {
		if translated[i] == "" {
			results[word] = domain.Unresolved()
			empty++
			continue
		}
		results[word] = domain.Resolved(domain.Sense{
			PartOfSpeech: domain.SentinelPartOfSpeech,
			Target:       translated[i],
		})
	}

	log := r.log
	if runID, ok := ctxutil.RunIDFromCtx(ctx); ok {
		log = log.With(slog.String("run_id", runID.String()))
	}
	if empty > 0 {
		log.WarnContext(ctx, "batch returned empty translations", slog.Int("count", empty))
	}
	log.InfoContext(ctx, "batch resolution completed",
		slog.Int("words", len(words)),
		slog.Int("resolved", len(words)-empty),
	)

	return results, nil
}
