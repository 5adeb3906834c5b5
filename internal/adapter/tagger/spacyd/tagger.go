// Package spacyd is a client for a spaCy tagging sidecar. The sidecar
// exposes POST /tag and returns the tokens of the submitted text with
// lemma, part-of-speech, and the alphabetic/stop-word flags.
package spacyd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/lexikon/internal/domain"
	"github.com/heartmarshall/lexikon/internal/tagging"
)

const defaultBaseURL = "http://localhost:8000"

// Tagger calls the spaCy sidecar over HTTP.
type Tagger struct {
	baseURL    string
	lang       string
	httpClient *http.Client
	log        *slog.Logger
}

// NewTagger creates a Tagger against the default sidecar address.
func NewTagger(lang string, logger *slog.Logger) *Tagger {
	return NewTaggerWithURL(defaultBaseURL, lang, logger)
}

// NewTaggerWithURL creates a Tagger with a custom base URL (for testing).
func NewTaggerWithURL(baseURL, lang string, logger *slog.Logger) *Tagger {
	return &Tagger{
		baseURL:    baseURL,
		lang:       lang,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "spacyd"),
	}
}

// Tag submits the whole text and maps the sidecar's tokens to the tagging
// model. An unreachable sidecar means the tagging capability is gone, so
// transport failures wrap domain.ErrTaggerUnavailable.
func (t *Tagger) Tag(ctx context.Context, text string) ([]tagging.Token, error) {
	if text == "" {
		return nil, nil
	}

	payload, err := json.Marshal(apiRequest{Text: text, Lang: t.lang})
	if err != nil {
		return nil, fmt.Errorf("spacyd: encode request: %w", err)
	}

	t.log.DebugContext(ctx, "spacyd request", slog.Int("text_len", len(text)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/tag", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("spacyd: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.doWithRetry(ctx, req, payload)
	if err != nil {
		t.log.ErrorContext(ctx, "spacyd request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: spacyd request: %v", domain.ErrTaggerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: spacyd status %d", domain.ErrTaggerUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("spacyd: read body: %w", err)
	}

	var decoded apiResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("spacyd: decode json: %w", err)
	}

	tokens := mapAPIResponse(decoded)

	t.log.DebugContext(ctx, "spacyd response",
		slog.Int("status", resp.StatusCode),
		slog.Int("tokens", len(tokens)),
	)

	return tokens, nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors. The request body is rebuilt for the second attempt.
func (t *Tagger) doWithRetry(ctx context.Context, req *http.Request, payload []byte) (*http.Response, error) {
	resp, err := t.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	t.log.WarnContext(ctx, "spacyd retry", slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	retryReq, err := http.NewRequestWithContext(ctx, http.MethodPost, req.URL.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create retry request: %w", err)
	}
	retryReq.Header.Set("Content-Type", "application/json")

	return t.httpClient.Do(retryReq)
}

func mapAPIResponse(decoded apiResponse) []tagging.Token {
	tokens := make([]tagging.Token, 0, len(decoded.Tokens))
	for _, tok := range decoded.Tokens {
		pos := domain.PartOfSpeech(tok.POS)
		if !pos.IsValid() {
			pos = domain.PartOfSpeechOther
		}
		tokens = append(tokens, tagging.Token{
			Surface: tok.Text,
			Lemma:   tok.Lemma,
			POS:     pos,
			IsAlpha: tok.IsAlpha,
			IsStop:  tok.IsStop,
		})
	}
	return tokens
}
