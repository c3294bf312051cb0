package feedparser

import (
	"context"
	"encoding/xml"
	"io"
	"strings"

	"feedsync/internal/domain"
)

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

func (l atomLink) isAlternate() bool {
	return l.Rel == "" || l.Rel == "alternate"
}

// atomText carries both chardata and inner XML: xhtml-typed content keeps its
// markup, which chardata alone would drop.
type atomText struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
	Inner string `xml:",innerxml"`
}

func (t atomText) body() string {
	if t.Type == "xhtml" || strings.TrimSpace(t.Value) == "" {
		return t.Inner
	}
	return t.Value
}

type atomEntry struct {
	Title          atomText        `xml:"title"`
	Links          []atomLink      `xml:"link"`
	Content        atomText        `xml:"content"`
	Summary        atomText        `xml:"summary"`
	Published      string          `xml:"published"`
	Updated        string          `xml:"updated"`
	MediaGroup     *mediaGroup     `xml:"http://search.yahoo.com/mrss/ group"`
	MediaThumbnail *mediaThumbnail `xml:"http://search.yahoo.com/mrss/ thumbnail"`
}

// parseAtom consumes the document after the <feed> root tag. Feed metadata is
// read eagerly up to the first <entry>; entries stream lazily from there.
func (p *Parser) parseAtom(ctx context.Context, d *xml.Decoder, feedURL string) (*domain.ParsedFeed, error) {
	feed := &domain.ParsedFeed{Link: feedURL}
	var declaredIcon string
	var firstEntry *atomEntry

metadata:
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
		case "entry":
			var e atomEntry
			if err := d.DecodeElement(&e, &se); err != nil {
				return nil, &ParseError{Diagnostic: err.Error()}
			}
			firstEntry = &e
			break metadata

		case "title":
			if feed.Name == "" {
				feed.Name = fixEncodingArtifacts(textOf(d, &se))
			} else {
				_ = d.Skip()
			}

		case "subtitle":
			feed.Description = fixEncodingArtifacts(textOf(d, &se))

		case "link":
			if feed.HomepageLink == "" {
				if l := (atomLink{Href: attrValue(se, "href"), Rel: attrValue(se, "rel")}); l.isAlternate() {
					feed.HomepageLink = l.Href
				}
			}
			_ = d.Skip()

		case "icon", "logo":
			if declaredIcon == "" {
				declaredIcon = textOf(d, &se)
			} else {
				_ = d.Skip()
			}

		case "author", "generator":
			_ = d.Skip()
		}
	}

	feed.IconURL = p.resolveIcon(ctx, declaredIcon, feed.HomepageLink, feedURL)
	feed.Posts = p.atomPosts(d, firstEntry)
	return feed, nil
}

func (p *Parser) atomPosts(d *xml.Decoder, firstEntry *atomEntry) func(yield func(domain.ParsedPost, error) bool) {
	return func(yield func(domain.ParsedPost, error) bool) {
		emit := func(e *atomEntry) bool {
			post, ok := p.buildPost(p.atomRawItem(e))
			if !ok {
				return true
			}
			return yield(post, nil)
		}

		if firstEntry != nil && !emit(firstEntry) {
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
			if !ok || se.Name.Local != "entry" {
				continue
			}
			var e atomEntry
			if err := d.DecodeElement(&e, &se); err != nil {
				yield(domain.ParsedPost{}, &ParseError{Diagnostic: err.Error()})
				return
			}
			if !emit(&e) {
				return
			}
		}
	}
}

func (p *Parser) atomRawItem(e *atomEntry) rawItem {
	var link string
	var enclosures []enclosure
	for _, l := range e.Links {
		switch {
		case l.isAlternate() && link == "":
			link = l.Href
		case l.Rel == "enclosure":
			enclosures = append(enclosures, enclosure{URL: l.Href, Type: l.Type})
		}
	}

	body := e.Content.body()
	if strings.TrimSpace(body) == "" {
		body = e.Summary.body()
	}

	fallbackImage, fallbackDescription := mediaFallbacks(nil, e.MediaGroup, e.MediaThumbnail)

	return rawItem{
		title:               e.Title.Value,
		links:               []string{link},
		enclosures:          enclosures,
		body:                body,
		dates:               []string{e.Published, e.Updated},
		fallbackImage:       fallbackImage,
		fallbackDescription: fallbackDescription,
	}
}
