package feedparser

import (
	"context"
	"encoding/xml"
	"io"
	"strings"

	"feedsync/internal/domain"
)

const (
	nsAtom    = "http://www.w3.org/2005/Atom"
	nsITunes  = "http://www.itunes.com/dtds/podcast-1.0.dtd"
	nsDC      = "http://purl.org/dc/elements/1.1/"
	nsContent = "http://purl.org/rss/1.0/modules/content/"
	nsMedia   = "http://search.yahoo.com/mrss/"
)

type rssItem struct {
	Title          string          `xml:"title"`
	Link           string          `xml:"link"`
	URL            string          `xml:"url"`
	GUID           string          `xml:"guid"`
	Description    string          `xml:"description"`
	ContentEncoded string          `xml:"http://purl.org/rss/1.0/modules/content/ encoded"`
	PubDate        string          `xml:"pubDate"`
	DCDate         string          `xml:"http://purl.org/dc/elements/1.1/ date"`
	Comments       string          `xml:"comments"`
	Enclosures     []enclosure     `xml:"enclosure"`
	MediaContents  []mediaContent  `xml:"http://search.yahoo.com/mrss/ content"`
	MediaGroup     *mediaGroup     `xml:"http://search.yahoo.com/mrss/ group"`
	MediaThumbnail *mediaThumbnail `xml:"http://search.yahoo.com/mrss/ thumbnail"`
}

type rssImage struct {
	URL string `xml:"url"`
}

// parseRSS consumes the document after the <rss> root tag. Channel metadata
// is read eagerly up to the first <item>; items stream lazily from there.
func (p *Parser) parseRSS(ctx context.Context, d *xml.Decoder, feedURL string) (*domain.ParsedFeed, error) {
	feed := &domain.ParsedFeed{Link: feedURL}
	var declaredIcon string
	var firstItem *rssItem

channel:
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Diagnostic: err.Error()}
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch {
		case se.Name.Local == "item":
			var it rssItem
			if err := d.DecodeElement(&it, &se); err != nil {
				return nil, &ParseError{Diagnostic: err.Error()}
			}
			firstItem = &it
			break channel

		case se.Name.Local == "channel":
			// descend, metadata lives in its children

		case se.Name.Local == "title" && feed.Name == "":
			feed.Name = fixEncodingArtifacts(textOf(d, &se))

		case se.Name.Local == "description" && feed.Description == "":
			feed.Description = fixEncodingArtifacts(textOf(d, &se))

		case se.Name.Local == "link" && se.Name.Space == nsAtom:
			// atom:link rel=self points back at the feed itself, skip it
			if rel := attrValue(se, "rel"); rel == "" || rel == "alternate" {
				if feed.HomepageLink == "" {
					feed.HomepageLink = attrValue(se, "href")
				}
			}
			_ = d.Skip()

		case se.Name.Local == "link":
			if feed.HomepageLink == "" {
				feed.HomepageLink = textOf(d, &se)
			} else {
				_ = d.Skip()
			}

		case se.Name.Local == "image" && se.Name.Space == nsITunes:
			if declaredIcon == "" {
				declaredIcon = attrValue(se, "href")
			}
			_ = d.Skip()

		case se.Name.Local == "image":
			var img rssImage
			if err := d.DecodeElement(&img, &se); err == nil && declaredIcon == "" {
				declaredIcon = strings.TrimSpace(img.URL)
			}
		}
	}

	feed.IconURL = p.resolveIcon(ctx, declaredIcon, feed.HomepageLink, feedURL)
	feed.Posts = p.rssPosts(d, firstItem)
	return feed, nil
}

func (p *Parser) rssPosts(d *xml.Decoder, firstItem *rssItem) func(yield func(domain.ParsedPost, error) bool) {
	return func(yield func(domain.ParsedPost, error) bool) {
		emit := func(it *rssItem) bool {
			post, ok := p.buildPost(p.rssRawItem(it))
			if !ok {
				return true
			}
			return yield(post, nil)
		}

		if firstItem != nil && !emit(firstItem) {
			return
		}
		for {
			tok, err := d.Token()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(domain.ParsedPost{}, &ParseError{Diagnostic: err.Error()})
				return
			}
			se, ok := tok.(xml.StartElement)
			if !ok || se.Name.Local != "item" {
				continue
			}
			var it rssItem
			if err := d.DecodeElement(&it, &se); err != nil {
				yield(domain.ParsedPost{}, &ParseError{Diagnostic: err.Error()})
				return
			}
			if !emit(&it) {
				return
			}
		}
	}
}

func (p *Parser) rssRawItem(it *rssItem) rawItem {
	body := it.ContentEncoded
	if strings.TrimSpace(body) == "" {
		body = it.Description
	}

	fallbackImage, fallbackDescription := mediaFallbacks(it.MediaContents, it.MediaGroup, it.MediaThumbnail)

	return rawItem{
		title:               it.Title,
		links:               []string{it.Link, it.URL},
		enclosures:          it.Enclosures,
		body:                body,
		dates:               []string{it.PubDate, it.DCDate},
		commentsLink:        strings.TrimSpace(it.Comments),
		fallbackImage:       fallbackImage,
		fallbackDescription: fallbackDescription,
	}
}
