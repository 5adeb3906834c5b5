// Package gcloud is a client for the Cloud Translation v3 REST API. It
// translates a whole batch of words in one call, which is what the batch
// resolution mode needs.
package gcloud

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
)

const defaultBaseURL = "https://translation.googleapis.com"

// Client calls the Cloud Translation API over HTTP.
type Client struct {
	baseURL    string
	project    string
	apiKey     string
	source     string
	target     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client against the public Cloud Translation endpoint.
func NewClient(project, apiKey, source, target string, logger *slog.Logger) *Client {
	return NewClientWithURL(defaultBaseURL, project, apiKey, source, target, logger)
}

// NewClientWithURL creates a Client with a custom base URL (for testing).
func NewClientWithURL(baseURL, project, apiKey, source, target string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		project:    project,
		apiKey:     apiKey,
		source:     source,
		target:     target,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "gcloud"),
	}
}

// TranslateBatch translates all words in one request and returns the
// translated texts in the same order the words were submitted in.
func (c *Client) TranslateBatch(ctx context.Context, words []string) ([]string, error) {
	if len(words) == 0 {
		return nil, nil
	}

	payload, err := json.Marshal(apiRequest{
		Contents:           words,
		SourceLanguageCode: c.source,
		TargetLanguageCode: c.target,
		MimeType:           "text/plain",
	})
	if err != nil {
		return nil, fmt.Errorf("gcloud: encode request: %w", err)
	}

	c.log.DebugContext(ctx, "gcloud request", slog.Int("words", len(words)))

	req, err := c.newRequest(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("gcloud: create request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, req, payload)
	if err != nil {
		c.log.ErrorContext(ctx, "gcloud request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: gcloud request: %v", domain.ErrTranslationUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: gcloud status %d", domain.ErrTranslationUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gcloud: read body: %w", err)
	}

	var decoded apiResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("gcloud: decode json: %w", err)
	}

	texts := make([]string, 0, len(decoded.Translations))
	for _, tr := range decoded.Translations {
		texts = append(texts, tr.TranslatedText)
	}

	c.log.DebugContext(ctx, "gcloud response",
		slog.Int("status", resp.StatusCode),
		slog.Int("translations", len(texts)),
	)

	return texts, nil
}

// newRequest builds the translateText request with auth headers attached.
func (c *Client) newRequest(ctx context.Context, payload []byte) (*http.Request, error) {
	reqURL := fmt.Sprintf("%s/v3/projects/%s/locations/global:translateText", c.baseURL, c.project)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Goog-Api-Key", c.apiKey)
	}
	return req, nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors. The request is rebuilt for the second attempt.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, payload []byte) (*http.Response, error) {
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
	c.log.WarnContext(ctx, "gcloud retry", slog.String("reason", reason))

	// Close body from the failed attempt before retrying.
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	retryReq, err := c.newRequest(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("create retry request: %w", err)
	}

	return c.httpClient.Do(retryReq)
}
