package feedparser

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"feedsync/internal/domain"
)

type jsonFeed struct {
	Version     string         `json:"version"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	HomePageURL string         `json:"home_page_url"`
	FeedURL     string         `json:"feed_url"`
	Icon        string         `json:"icon"`
	Favicon     string         `json:"favicon"`
	Items       []jsonFeedItem `json:"items"`
}

type jsonFeedItem struct {
	ID            string           `json:"id"`
	URL           string           `json:"url"`
	ExternalURL   string           `json:"external_url"`
	Title         string           `json:"title"`
	ContentHTML   string           `json:"content_html"`
	ContentText   string           `json:"content_text"`
	Summary       string           `json:"summary"`
	Image         string           `json:"image"`
	BannerImage   string           `json:"banner_image"`
	DatePublished string           `json:"date_published"`
	Attachments   []jsonAttachment `json:"attachments"`
}

type jsonAttachment struct {
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
}

func (p *Parser) parseJSONFeed(ctx context.Context, r io.Reader, feedURL string) (*domain.ParsedFeed, error) {
	var jf jsonFeed
	if err := json.NewDecoder(r).Decode(&jf); err != nil {
		return nil, ErrUnsupportedFeed
	}
	if !strings.HasPrefix(jf.Version, "https://jsonfeed.org/version/") {
		return nil, ErrUnsupportedFeed
	}

	icon := jf.Icon
	if icon == "" {
		icon = jf.Favicon
	}

	feed := &domain.ParsedFeed{
		Name:         jf.Title,
		Description:  jf.Description,
		HomepageLink: jf.HomePageURL,
		Link:         feedURL,
		IconURL:      p.resolveIcon(ctx, icon, jf.HomePageURL, feedURL),
	}
	feed.Posts = func(yield func(domain.ParsedPost, error) bool) {
		for _, it := range jf.Items {
			var enclosures []enclosure
			for _, a := range it.Attachments {
				enclosures = append(enclosures, enclosure{URL: a.URL, Type: a.MimeType})
			}
			body := it.ContentHTML
			if strings.TrimSpace(body) == "" {
				body = it.ContentText
			}
			fallbackImage := it.Image
			if fallbackImage == "" {
				fallbackImage = it.BannerImage
			}
			post, ok := p.buildPost(rawItem{
				title:               it.Title,
				links:               []string{it.URL, it.ExternalURL},
				enclosures:          enclosures,
				body:                body,
				dates:               []string{it.DatePublished},
				fallbackImage:       fallbackImage,
				fallbackDescription: strings.TrimSpace(it.Summary),
			})
			if !ok {
				continue
			}
			if !yield(post, nil) {
				return
			}
		}
	}
	return feed, nil
}
