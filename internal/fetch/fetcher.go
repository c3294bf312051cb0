// Package fetch retrieves raw feeds over HTTP and hands their bytes to the
// feed parser, and downloads full article content on demand.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"feedsync/internal/domain"
	"feedsync/internal/feedparser"
)

// Config holds fetcher HTTP behavior.
type Config struct {
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

type Fetcher struct {
	httpClient     *http.Client
	parser         *feedparser.Parser
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

func New(cfg Config, parser *feedparser.Parser, logger *slog.Logger) *Fetcher {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 1
	}
	return &Fetcher{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		parser:         parser,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "fetch"),
	}
}

// Fetch downloads and parses one feed. The consume callback receives the
// parsed feed while the response body is still open; the feed's post
// sequence must be drained inside it.
func (f *Fetcher) Fetch(ctx context.Context, feedURL string, consume func(*domain.ParsedFeed) error) error {
	var lastErr error
	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		lastErr = f.fetchOnce(ctx, feedURL, consume)
		if lastErr == nil {
			return nil
		}
		if attempt == f.maxAttempts {
			break
		}

		backoff := f.calculateBackoff(attempt)
		f.logger.Warn("feed fetch failed, retrying",
			"url", feedURL,
			"attempt", attempt,
			"backoff", backoff,
			"error", lastErr,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
	return fmt.Errorf("after %d attempts: %w", f.maxAttempts, lastErr)
}

func (f *Fetcher) fetchOnce(ctx context.Context, feedURL string, consume func(*domain.ParsedFeed) error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/feed+json, application/xml, text/xml, */*")
	req.Header.Set("User-Agent", "feedsync/1.0")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	parsed, err := f.parser.Parse(ctx, resp.Body, transportCharset(resp.Header.Get("Content-Type")), feedURL)
	if err != nil {
		return fmt.Errorf("parse feed: %w", err)
	}
	return consume(parsed)
}

func (f *Fetcher) calculateBackoff(attempt int) time.Duration {
	backoff := f.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > f.maxBackoff {
		backoff = f.maxBackoff
	}
	return backoff
}

func transportCharset(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return params["charset"]
}
