package resolve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/heartmarshall/lexikon/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wordBackendMock struct {
	translateWordFn func(ctx context.Context, word string) (domain.Resolution, error)
}

func (m *wordBackendMock) TranslateWord(ctx context.Context, word string) (domain.Resolution, error) {
	return m.translateWordFn(ctx, word)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPerWord_Resolve_MultiSenseOrder(t *testing.T) {
	t.Parallel()

	backend := &wordBackendMock{
		translateWordFn: func(_ context.Context, word string) (domain.Resolution, error) {
			assert.Equal(t, "voler", word)
			return domain.Resolved(
				domain.Sense{PartOfSpeech: "VERB", Target: "to fly"},
				domain.Sense{PartOfSpeech: "VERB", Target: "to steal"},
			), nil
		},
	}

	r := NewPerWord(backend, 2, time.Second, testLogger())

	results, err := r.Resolve(context.Background(), []domain.BaseForm{"voler"})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, []domain.Sense{
		{PartOfSpeech: "VERB", Target: "to fly"},
		{PartOfSpeech: "VERB", Target: "to steal"},
	}, results["voler"].Senses())
}

func TestPerWord_Resolve_PartialFailureDegrades(t *testing.T) {
	t.Parallel()

	backend := &wordBackendMock{
		translateWordFn: func(_ context.Context, word string) (domain.Resolution, error) {
			if word == "souris" {
				return domain.Unresolved(), fmt.Errorf("%w: status 502", domain.ErrTranslationUnavailable)
			}
			return domain.Resolved(domain.Sense{PartOfSpeech: "noun", Target: "cat"}), nil
		},
	}

	r := NewPerWord(backend, 2, time.Second, testLogger())

	results, err := r.Resolve(context.Background(), []domain.BaseForm{"chat", "souris"})

	require.NoError(t, err, "one failed word should not fail the run")
	assert.True(t, results["chat"].IsResolved())
	assert.False(t, results["souris"].IsResolved(), "failed word should degrade to unresolved")
}

func TestPerWord_Resolve_AllTransportFailuresFatal(t *testing.T) {
	t.Parallel()

	backend := &wordBackendMock{
		translateWordFn: func(_ context.Context, _ string) (domain.Resolution, error) {
			return domain.Unresolved(), fmt.Errorf("%w: connection refused", domain.ErrTranslationUnavailable)
		},
	}

	r := NewPerWord(backend, 2, time.Second, testLogger())

	_, err := r.Resolve(context.Background(), []domain.BaseForm{"chat", "souris", "voler"})

	require.Error(t, err, "every request failing means the backend is down")
	assert.ErrorIs(t, err, domain.ErrTranslationUnavailable)
}

func TestPerWord_Resolve_NoSensesIsNotAnOutage(t *testing.T) {
	t.Parallel()

	// The backend answers every request but has dictionary data for nothing.
	backend := &wordBackendMock{
		translateWordFn: func(_ context.Context, _ string) (domain.Resolution, error) {
			return domain.Unresolved(), nil
		},
	}

	r := NewPerWord(backend, 2, time.Second, testLogger())

	results, err := r.Resolve(context.Background(), []domain.BaseForm{"xyzzy", "grault"})

	require.NoError(t, err)
	for _, word := range []domain.BaseForm{"xyzzy", "grault"} {
		assert.False(t, results[word].IsResolved(), "%s should stay unresolved", word)
	}
}

func TestPerWord_Resolve_MixedFailuresNotFatal(t *testing.T) {
	t.Parallel()

	backend := &wordBackendMock{
		translateWordFn: func(_ context.Context, word string) (domain.Resolution, error) {
			if word == "chat" {
				return domain.Unresolved(), fmt.Errorf("%w: status 502", domain.ErrTranslationUnavailable)
			}
			return domain.Unresolved(), errors.New("gtx: decode response: unexpected end of JSON input")
		},
	}

	r := NewPerWord(backend, 2, time.Second, testLogger())

	results, err := r.Resolve(context.Background(), []domain.BaseForm{"chat", "souris"})

	require.NoError(t, err, "a decode error is not a transport outage")
	assert.Len(t, results, 2)
}

func TestPerWord_Resolve_Empty(t *testing.T) {
	t.Parallel()

	backend := &wordBackendMock{
		translateWordFn: func(_ context.Context, word string) (domain.Resolution, error) {
			t.Errorf("unexpected TranslateWord(%q) for empty input", word)
			return domain.Unresolved(), nil
		},
	}

	r := NewPerWord(backend, 2, time.Second, testLogger())

	results, err := r.Resolve(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestPerWord_Resolve_BoundsConcurrency(t *testing.T) {
	t.Parallel()

	const workers = 3

	var inFlight, peak atomic.Int32
	backend := &wordBackendMock{
		translateWordFn: func(_ context.Context, _ string) (domain.Resolution, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
			return domain.Resolved(domain.Sense{PartOfSpeech: "noun", Target: "x"}), nil
		},
	}

	r := NewPerWord(backend, workers, time.Second, testLogger())

	words := make([]domain.BaseForm, 20)
	for i := range words {
		words[i] = domain.BaseForm(fmt.Sprintf("mot%02d", i))
	}

	results, err := r.Resolve(context.Background(), words)

	require.NoError(t, err)
	require.Len(t, results, len(words))
	for _, word := range words {
		assert.Contains(t, results, word)
	}
	assert.LessOrEqual(t, peak.Load(), int32(workers), "worker limit exceeded")
}

func TestPerWord_Resolve_TimeoutDegrades(t *testing.T) {
	t.Parallel()

	backend := &wordBackendMock{
		translateWordFn: func(ctx context.Context, word string) (domain.Resolution, error) {
			if word == "lent" {
				<-ctx.Done()
				return domain.Unresolved(), fmt.Errorf("%w: request: %v", domain.ErrTranslationUnavailable, ctx.Err())
			}
			return domain.Resolved(domain.Sense{PartOfSpeech: "adverb", Target: "fast"}), nil
		},
	}

	r := NewPerWord(backend, 2, 50*time.Millisecond, testLogger())

	results, err := r.Resolve(context.Background(), []domain.BaseForm{"vite", "lent"})

	require.NoError(t, err)
	assert.True(t, results["vite"].IsResolved())
	assert.False(t, results["lent"].IsResolved(), "timed-out word should degrade to unresolved")
}
