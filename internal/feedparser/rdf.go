package feedparser

import (
	"context"
	"encoding/xml"
	"io"
	"strings"

	"feedsync/internal/domain"
)

// RDF (RSS 1.0) keeps channel metadata and items as siblings under the
// rdf:RDF root rather than nesting items inside the channel.

type rdfChannel struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	Image       struct {
		Resource string `xml:"resource,attr"`
	} `xml:"image"`
}

type rdfItem struct {
	Title          string `xml:"title"`
	Link           string `xml:"link"`
	Description    string `xml:"description"`
	ContentEncoded string `xml:"http://purl.org/rss/1.0/modules/content/ encoded"`
	DCDate         string `xml:"http://purl.org/dc/elements/1.1/ date"`
}

func (p *Parser) parseRDF(ctx context.Context, d *xml.Decoder, feedURL string) (*domain.ParsedFeed, error) {
	feed := &domain.ParsedFeed{Link: feedURL}
	var declaredIcon string
	var firstItem *rdfItem

root:
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

		switch se.Name.Local {
		case "channel":
			var ch rdfChannel
			if err := d.DecodeElement(&ch, &se); err != nil {
				return nil, &ParseError{Diagnostic: err.Error()}
			}
			feed.Name = fixEncodingArtifacts(strings.TrimSpace(ch.Title))
			feed.Description = fixEncodingArtifacts(strings.TrimSpace(ch.Description))
			feed.HomepageLink = strings.TrimSpace(ch.Link)
			declaredIcon = ch.Image.Resource

		case "image":
			var img rssImage
			if err := d.DecodeElement(&img, &se); err == nil && declaredIcon == "" {
				declaredIcon = strings.TrimSpace(img.URL)
			}

		case "item":
			var it rdfItem
			if err := d.DecodeElement(&it, &se); err != nil {
				return nil, &ParseError{Diagnostic: err.Error()}
			}
			firstItem = &it
			break root
		}
	}

	feed.IconURL = p.resolveIcon(ctx, declaredIcon, feed.HomepageLink, feedURL)
	feed.Posts = p.rdfPosts(d, firstItem)
	return feed, nil
}

func (p *Parser) rdfPosts(d *xml.Decoder, firstItem *rdfItem) func(yield func(domain.ParsedPost, error) bool) {
	return func(yield func(domain.ParsedPost, error) bool) {
		emit := func(it *rdfItem) bool {
			post, ok := p.buildPost(rawItem{
				title: it.Title,
				links: []string{it.Link},
				body:  firstNonEmpty(it.ContentEncoded, it.Description),
				dates: []string{it.DCDate},
			})
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
			var it rdfItem
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

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
