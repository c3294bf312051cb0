package feedparser

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// isYouTubeFeed reports whether the URL is a YouTube channel feed. Those
// feeds declare no usable icon, so the channel page's Open Graph image is
// fetched instead.
func isYouTubeFeed(feedURL string) bool {
	u, err := url.Parse(feedURL)
	if err != nil {
		return false
	}
	host := strings.TrimPrefix(u.Host, "www.")
	return host == "youtube.com" && strings.HasPrefix(u.Path, "/feeds/videos.xml")
}

// openGraphImage fetches a page and extracts its og:image meta content.
func (p *Parser) openGraphImage(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "feedsync/1.0")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}
	content, _ := doc.Find(`meta[property="og:image"]`).Attr("content")
	return content, nil
}
