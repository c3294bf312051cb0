package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	readability "github.com/go-shiori/go-readability"
)

// Downloader fetches an article page and reduces it to a markdown-ready
// readable body, used when the "download full content" setting is on.
type Downloader struct {
	client    *http.Client
	converter *md.Converter
	logger    *slog.Logger
}

func NewDownloader(logger *slog.Logger) *Downloader {
	return &Downloader{
		client:    &http.Client{Timeout: 20 * time.Second},
		converter: md.NewConverter("", true, nil),
		logger:    logger.With("component", "fullcontent"),
	}
}

// Download fetches link, extracts the readable article body and converts it
// to markdown.
func (d *Downloader) Download(ctx context.Context, link string) (string, error) {
	pageURL, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("parse link: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "feedsync/1.0")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, pageURL)
	if err != nil {
		return "", fmt.Errorf("extract readable content: %w", err)
	}

	markdown, err := d.converter.ConvertString(article.Content)
	if err != nil {
		return "", fmt.Errorf("convert to markdown: %w", err)
	}
	return markdown, nil
}
