package resolve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/lexikon/internal/domain"
	"github.com/heartmarshall/lexikon/pkg/ctxutil"
)

const (
	defaultWorkers = 4
	defaultTimeout = 10 * time.Second
)

var _ Resolver = (*PerWord)(nil)

// PerWord resolves words one request at a time through a bounded worker
// pool. Requests are independent, so completion order does not matter.
type PerWord struct {
	backend WordBackend
	workers int
	timeout time.Duration
	log     *slog.Logger
}

// NewPerWord creates a per-word resolver. Non-positive workers or timeout
// fall back to defaults.
func NewPerWord(backend WordBackend, workers int, timeout time.Duration, logger *slog.Logger) *PerWord {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &PerWord{
		backend: backend,
		workers: workers,
		timeout: timeout,
		log:     logger.With("resolver", "perword"),
	}
}

// Resolve translates every word. A failed or timed-out request degrades
// that word to unresolved and the run continues; when every single request
// dies on transport, the backend is considered gone and the whole
// resolution fails with domain.ErrTranslationUnavailable.
func (r *PerWord) Resolve(ctx context.Context, words []domain.BaseForm) (map[domain.BaseForm]domain.Resolution, error) {
	results := make(map[domain.BaseForm]domain.Resolution, len(words))
	if len(words) == 0 {
		return results, nil
	}

	log := r.log
	if runID, ok := ctxutil.RunIDFromCtx(ctx); ok {
		log = log.With(slog.String("run_id", runID.String()))
	}

	var (
		mu        sync.Mutex
		resolved  int
		sentinels int
		transport int
		malformed int
	)

	g := new(errgroup.Group)
	g.SetLimit(r.workers)

	for _, word := range words {
		g.Go(func() error {
			wctx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()

			res, err := r.backend.TranslateWord(wctx, word.String())

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				log.WarnContext(ctx, "word degraded to sentinel",
					slog.String("word", word.String()),
					slog.String("error", err.Error()),
				)
				if errors.Is(err, domain.ErrTranslationUnavailable) {
					transport++
				} else {
					malformed++
				}
				results[word] = domain.Unresolved()
				return nil
			}

			if res.IsResolved() {
				resolved++
			} else {
				sentinels++
			}
			results[word] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if transport == len(words) {
		return nil, fmt.Errorf("%w: all %d translation requests failed", domain.ErrTranslationUnavailable, len(words))
	}

	log.InfoContext(ctx, "per-word resolution completed",
		slog.Int("words", len(words)),
		slog.Int("resolved", resolved),
		slog.Int("no_senses", sentinels),
		slog.Int("failed", transport+malformed),
	)

	return results, nil
}
