// Package miniflux is a client for the Miniflux v1 REST API.
package miniflux

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	BaseURL  string
	APIToken string
	Timeout  time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiToken   string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiToken:   cfg.APIToken,
		logger:     logger.With("remote", "miniflux"),
	}
}

func (c *Client) Feeds(ctx context.Context) ([]Feed, error) {
	var feeds []Feed
	if err := c.do(ctx, http.MethodGet, "/v1/feeds", nil, &feeds); err != nil {
		return nil, err
	}
	return feeds, nil
}

func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, http.MethodGet, "/v1/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// EntryQuery selects a page of entries. After is a unix-seconds lower bound
// on published_at; Starred narrows to bookmarked entries.
type EntryQuery struct {
	Status  string
	Starred bool
	After   int64
	Limit   int
	Offset  int
}

func (c *Client) Entries(ctx context.Context, q EntryQuery) (*EntriesPage, error) {
	var page EntriesPage
	if err := c.do(ctx, http.MethodGet, "/v1/entries?"+q.values().Encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// FeedEntries returns one subscription's entries.
func (c *Client) FeedEntries(ctx context.Context, feedID int64, q EntryQuery) (*EntriesPage, error) {
	path := "/v1/feeds/" + strconv.FormatInt(feedID, 10) + "/entries?" + q.values().Encode()
	var page EntriesPage
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (q EntryQuery) values() url.Values {
	v := url.Values{}
	v.Set("order", "published_at")
	v.Set("direction", "desc")
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Starred {
		v.Set("starred", "true")
	}
	if q.After > 0 {
		v.Set("published_after", strconv.FormatInt(q.After, 10))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Offset > 0 {
		v.Set("offset", strconv.Itoa(q.Offset))
	}
	return v
}

// CreateFeed subscribes to a feed and returns the new feed id.
func (c *Client) CreateFeed(ctx context.Context, feedURL string, categoryID int64) (int64, error) {
	body := map[string]any{"feed_url": feedURL}
	if categoryID > 0 {
		body["category_id"] = categoryID
	}
	var result struct {
		FeedID int64 `json:"feed_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/v1/feeds", body, &result); err != nil {
		return 0, err
	}
	return result.FeedID, nil
}

// UpdateFeed retitles a feed and/or moves it to a category.
func (c *Client) UpdateFeed(ctx context.Context, id int64, title string, categoryID int64) error {
	body := map[string]any{}
	if title != "" {
		body["title"] = title
	}
	if categoryID > 0 {
		body["category_id"] = categoryID
	}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/v1/feeds/%d", id), body, nil)
}

func (c *Client) DeleteFeed(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/v1/feeds/%d", id), nil, nil)
}

func (c *Client) CreateCategory(ctx context.Context, title string) (*Category, error) {
	var category Category
	if err := c.do(ctx, http.MethodPost, "/v1/categories", map[string]any{"title": title}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, title string) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/v1/categories/%d", id), map[string]any{"title": title}, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/v1/categories/%d", id), nil, nil)
}

// UpdateEntriesStatus marks a batch of entries read or unread. The API
// accepts unbounded id lists.
func (c *Client) UpdateEntriesStatus(ctx context.Context, ids []int64, status string) error {
	if len(ids) == 0 {
		return nil
	}
	body := map[string]any{"entry_ids": ids, "status": status}
	return c.do(ctx, http.MethodPut, "/v1/entries", body, nil)
}

// ToggleBookmark flips an entry's starred flag. The API has no absolute
// setter, only this toggle.
func (c *Client) ToggleBookmark(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/v1/entries/%d/bookmark", id), nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Auth-Token", c.apiToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
