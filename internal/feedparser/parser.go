// Package feedparser turns raw feed bytes into a normalized feed model. It
// handles RSS 2.0, RDF (RSS 1.0), Atom and JSON Feed dialects, tolerates the
// usual real-world markup sins, and exposes posts as a lazy single-pass
// sequence so arbitrarily long documents parse in constant memory.
package feedparser

import (
	"bufio"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"feedsync/internal/domain"
)

var (
	// ErrUnsupportedFeed means the document's root element (or JSON shape)
	// is not a known feed dialect.
	ErrUnsupportedFeed = errors.New("feedparser: unrecognized feed format")

	// ErrHTMLContent means the URL resolved to an HTML page rather than a
	// feed. Kept distinct from ErrUnsupportedFeed so callers can give a more
	// specific diagnostic ("this is a web page, find its feed link").
	ErrHTMLContent = errors.New("feedparser: content is an html page, not a feed")
)

// ParseError is a tokenizer-level failure on malformed XML, carrying the
// underlying parser diagnostic.
type ParseError struct {
	Diagnostic string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("feedparser: malformed document: %s", e.Diagnostic)
}

type Parser struct {
	client *http.Client
	logger *slog.Logger
	now    func() time.Time
}

func New(logger *slog.Logger) *Parser {
	return &Parser{
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger.With("component", "feedparser"),
		now:    time.Now,
	}
}

// Parse reads one feed document from r. transportCharset is the charset the
// transport declared (may be empty); an encoding declared in the XML prolog
// wins over it. feedURL is the source URL, used for icon resolution and as
// the canonical Link of the result.
//
// The returned ParsedFeed's Posts sequence consumes r incrementally and can
// only be iterated once; it must be drained before r is closed.
func (p *Parser) Parse(ctx context.Context, r io.Reader, transportCharset, feedURL string) (*domain.ParsedFeed, error) {
	decoded, err := decodeFeedBytes(bufio.NewReader(r), transportCharset)
	if err != nil {
		return nil, &ParseError{Diagnostic: err.Error()}
	}

	br := bufio.NewReader(decoded)
	first, err := firstMeaningfulByte(br)
	if err != nil {
		return nil, &ParseError{Diagnostic: "empty document"}
	}
	if first == '{' {
		return p.parseJSONFeed(ctx, br, feedURL)
	}

	d := xml.NewDecoder(br)
	d.Strict = false
	// Bytes were already decoded to UTF-8 above, so any prolog label just
	// needs to be accepted, not acted on.
	d.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	root, err := nextStartElement(d)
	if err != nil {
		return nil, &ParseError{Diagnostic: err.Error()}
	}

	switch strings.ToLower(root.Name.Local) {
	case "rss":
		return p.parseRSS(ctx, d, feedURL)
	case "rdf":
		return p.parseRDF(ctx, d, feedURL)
	case "feed":
		return p.parseAtom(ctx, d, feedURL)
	case "html":
		return nil, ErrHTMLContent
	default:
		return nil, ErrUnsupportedFeed
	}
}

func nextStartElement(d *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := d.Token()
		if err != nil {
			return xml.StartElement{}, err
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se, nil
		}
	}
}

func firstMeaningfulByte(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			if err := br.UnreadByte(); err != nil {
				return 0, err
			}
			return b, nil
		}
	}
}

// textOf consumes the element started by se and returns its character data.
func textOf(d *xml.Decoder, se *xml.StartElement) string {
	var v struct {
		Value string `xml:",chardata"`
	}
	if err := d.DecodeElement(&v, se); err != nil {
		return ""
	}
	return strings.TrimSpace(v.Value)
}

func attrValue(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if strings.EqualFold(a.Name.Local, name) {
			return a.Value
		}
	}
	return ""
}

// resolveIcon runs the icon fallback chain for a feed whose document did not
// declare one (or whose URL is a YouTube channel feed, where the declared
// icon is useless and the channel page's Open Graph image is used instead).
func (p *Parser) resolveIcon(ctx context.Context, declared, homepage, feedURL string) string {
	if isYouTubeFeed(feedURL) && homepage != "" {
		if img, err := p.openGraphImage(ctx, homepage); err == nil && img != "" {
			return img
		} else if err != nil {
			p.logger.Debug("youtube channel image fetch failed", "url", homepage, "error", err)
		}
	}
	if declared != "" {
		return declared
	}
	return faviconURL(homepage, feedURL)
}

func faviconURL(homepage, feedURL string) string {
	for _, candidate := range []string{homepage, feedURL} {
		if candidate == "" {
			continue
		}
		u, err := url.Parse(candidate)
		if err != nil || u.Host == "" {
			continue
		}
		scheme := u.Scheme
		if scheme == "" {
			scheme = "https"
		}
		return scheme + "://" + u.Host + "/favicon.ico"
	}
	return ""
}
