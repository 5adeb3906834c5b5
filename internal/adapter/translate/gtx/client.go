package gtx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/lexikon/internal/domain"
)

const defaultBaseURL = "https://translate.googleapis.com"

// Client fetches per-word dictionary translations from the unofficial
// gtx endpoint of Google Translate.
type Client struct {
	baseURL    string
	source     string
	target     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client against the public Google Translate endpoint.
func NewClient(source, target string, logger *slog.Logger) *Client {
	return NewClientWithURL(defaultBaseURL, source, target, logger)
}

// NewClientWithURL creates a Client with a custom base URL (for testing).
func NewClientWithURL(baseURL, source, target string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		source:     source,
		target:     target,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "gtx"),
	}
}

// TranslateWord fetches dictionary senses for a single word.
// Words the endpoint has no dictionary section for come back as an
// unresolved Resolution, not an error.
func (c *Client) TranslateWord(ctx context.Context, word string) (domain.Resolution, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", c.source)
	q.Set("tl", c.target)
	q.Set("q", word)
	q["dt"] = []string{"t", "bd"}
	reqURL := c.baseURL + "/translate_a/single?" + q.Encode()

	c.log.DebugContext(ctx, "gtx request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.Unresolved(), fmt.Errorf("gtx: create request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, req, word)
	if err != nil {
		c.log.WarnContext(ctx, "gtx request failed", slog.String("word", word), slog.String("error", err.Error()))
		return domain.Unresolved(), fmt.Errorf("%w: gtx request: %v", domain.ErrTranslationUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Unresolved(), fmt.Errorf("%w: gtx status %d", domain.ErrTranslationUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Unresolved(), fmt.Errorf("gtx: read body: %w", err)
	}

	senses, err := parseSenses(body)
	if err != nil {
		return domain.Unresolved(), fmt.Errorf("gtx: %w", err)
	}

	c.log.DebugContext(ctx, "gtx response",
		slog.String("word", word),
		slog.Int("senses", len(senses)),
	)

	return domain.Resolved(senses...), nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, word string) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

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
	c.log.WarnContext(ctx, "gtx retry", slog.String("word", word), slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	resp, err = c.httpClient.Do(req)
	return resp, err
}
