// Package freshrss is a client for the Google Reader compatible API exposed
// by FreshRSS under /api/greader.php.
package freshrss

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	BaseURL  string // e.g. "https://rss.example.com/api/greader.php"
	Username string
	Password string
	Timeout  time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
	authToken  string
	writeToken string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		logger:     logger.With("remote", "freshrss"),
	}
}

// Login performs ClientLogin and stores the auth token used by all other
// calls.
func (c *Client) Login(ctx context.Context) error {
	form := url.Values{}
	form.Set("Email", c.username)
	form.Set("Passwd", c.password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/accounts/ClientLogin", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	for _, line := range strings.Split(string(body), "\n") {
		if after, ok := strings.CutPrefix(strings.TrimSpace(line), "Auth="); ok {
			c.authToken = after
			c.writeToken = ""
			return nil
		}
	}
	return fmt.Errorf("no auth token in login response")
}

func (c *Client) Subscriptions(ctx context.Context) ([]Subscription, error) {
	var list subscriptionList
	if err := c.getJSON(ctx, "/reader/api/0/subscription/list", nil, &list); err != nil {
		return nil, err
	}
	return list.Subscriptions, nil
}

func (c *Client) Tags(ctx context.Context) ([]Tag, error) {
	var list tagList
	if err := c.getJSON(ctx, "/reader/api/0/tag/list", nil, &list); err != nil {
		return nil, err
	}
	// keep only labels; the list also carries states
	var tags []Tag
	for _, t := range list.Tags {
		if strings.Contains(t.ID, "/label/") {
			tags = append(tags, t)
		}
	}
	return tags, nil
}

// StreamContents pages through a stream's articles newest-first. since is a
// unix-seconds lower bound; continuation comes from the previous page.
func (c *Client) StreamContents(ctx context.Context, streamID string, since int64, count int, continuation string) (*StreamContents, error) {
	q := url.Values{}
	q.Set("n", strconv.Itoa(count))
	if since > 0 {
		q.Set("ot", strconv.FormatInt(since, 10))
	}
	if continuation != "" {
		q.Set("c", continuation)
	}

	var contents StreamContents
	path := "/reader/api/0/stream/contents/" + url.PathEscape(streamID)
	if err := c.getJSON(ctx, path, q, &contents); err != nil {
		return nil, err
	}
	return &contents, nil
}

// StreamItemIDs pages through a stream's item ids (short decimal form).
// excludeState, when non-empty, filters out items carrying that state.
func (c *Client) StreamItemIDs(ctx context.Context, streamID, excludeState string, count int, continuation string) (*ItemIDs, error) {
	q := url.Values{}
	q.Set("s", streamID)
	q.Set("n", strconv.Itoa(count))
	if excludeState != "" {
		q.Set("xt", excludeState)
	}
	if continuation != "" {
		q.Set("c", continuation)
	}

	var ids ItemIDs
	if err := c.getJSON(ctx, "/reader/api/0/stream/items/ids", q, &ids); err != nil {
		return nil, err
	}
	return &ids, nil
}

// EditTags adds and/or removes a state or label on a batch of items.
func (c *Client) EditTags(ctx context.Context, itemIDs []string, add, remove string) error {
	if len(itemIDs) == 0 {
		return nil
	}
	form := url.Values{}
	for _, id := range itemIDs {
		form.Add("i", id)
	}
	if add != "" {
		form.Set("a", add)
	}
	if remove != "" {
		form.Set("r", remove)
	}
	return c.postForm(ctx, "/reader/api/0/edit-tag", form)
}

// QuickAddSubscription subscribes to a feed URL and returns the new stream
// id.
func (c *Client) QuickAddSubscription(ctx context.Context, feedURL string) (string, error) {
	form := url.Values{}
	form.Set("quickadd", feedURL)

	var result struct {
		StreamID string `json:"streamId"`
	}
	if err := c.postFormJSON(ctx, "/reader/api/0/subscription/quickadd", form, &result); err != nil {
		return "", err
	}
	if result.StreamID == "" {
		return "", fmt.Errorf("quickadd returned no stream id for %s", feedURL)
	}
	return result.StreamID, nil
}

func (c *Client) DeleteSubscription(ctx context.Context, streamID string) error {
	form := url.Values{}
	form.Set("ac", "unsubscribe")
	form.Set("s", streamID)
	return c.postForm(ctx, "/reader/api/0/subscription/edit", form)
}

// EditSubscription retitles a subscription and/or moves it between labels.
func (c *Client) EditSubscription(ctx context.Context, streamID, title, addLabel, removeLabel string) error {
	form := url.Values{}
	form.Set("ac", "edit")
	form.Set("s", streamID)
	if title != "" {
		form.Set("t", title)
	}
	if addLabel != "" {
		form.Set("a", addLabel)
	}
	if removeLabel != "" {
		form.Set("r", removeLabel)
	}
	return c.postForm(ctx, "/reader/api/0/subscription/edit", form)
}

func (c *Client) RenameTag(ctx context.Context, tagID, newName string) error {
	form := url.Values{}
	form.Set("s", tagID)
	form.Set("dest", LabelPrefix+newName)
	return c.postForm(ctx, "/reader/api/0/rename-tag", form)
}

func (c *Client) DeleteTag(ctx context.Context, tagID string) error {
	form := url.Values{}
	form.Set("s", tagID)
	return c.postForm(ctx, "/reader/api/0/disable-tag", form)
}

// ShortItemID converts a long-form item id
// ("tag:google.com,2005:reader/item/<hex>") to the short decimal form used
// by stream/items/ids. Already-short ids pass through.
func ShortItemID(id string) string {
	idx := strings.LastIndex(id, "/")
	if idx < 0 {
		return id
	}
	n, err := strconv.ParseUint(id[idx+1:], 16, 64)
	if err != nil {
		return id
	}
	return strconv.FormatInt(int64(n), 10)
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	if q == nil {
		q = url.Values{}
	}
	q.Set("output", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values) error {
	return c.postFormJSON(ctx, path, form, nil)
}

func (c *Client) postFormJSON(ctx context.Context, path string, form url.Values, out any) error {
	token, err := c.ensureWriteToken(ctx)
	if err != nil {
		return err
	}
	form.Set("T", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path+"?output=json", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// ensureWriteToken lazily fetches the short-lived token required by write
// endpoints.
func (c *Client) ensureWriteToken(ctx context.Context) (string, error) {
	if c.writeToken != "" {
		return c.writeToken, nil
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reader/api/0/token", nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request failed with status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	c.writeToken = strings.TrimSpace(string(body))
	return c.writeToken, nil
}

func (c *Client) authorize(req *http.Request) {
	if c.authToken != "" {
		req.Header.Set("Authorization", "GoogleLogin auth="+c.authToken)
	}
}
