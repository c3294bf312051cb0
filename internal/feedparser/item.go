package feedparser

import (
	"strings"

	"feedsync/internal/domain"
)

// rawItem is the dialect-independent view of one feed item before
// normalization. Each dialect parser fills in what its document offers.
type rawItem struct {
	title        string
	links        []string // candidate links in priority order
	enclosures   []enclosure
	body         string // first non-empty rich content source
	dates        []string
	commentsLink string
	// media extension fallbacks, used when the body yields nothing
	fallbackImage       string
	fallbackDescription string
}

type enclosure struct {
	URL  string `xml:"url,attr"`
	Type string `xml:"type,attr"`
}

func (e enclosure) isImage() bool {
	return strings.HasPrefix(e.Type, "image/")
}

func (e enclosure) isAudio() bool {
	return strings.HasPrefix(e.Type, "audio/")
}

// buildPost normalizes a raw item. ok is false when the item has neither a
// resolvable link nor any title/description: such placeholder entries are
// dropped silently, not reported as errors.
func (p *Parser) buildPost(it rawItem) (domain.ParsedPost, bool) {
	link := ""
	for _, l := range it.links {
		if l = strings.TrimSpace(l); l != "" {
			link = l
			break
		}
	}

	audioURL := ""
	for _, enc := range it.enclosures {
		if enc.URL == "" {
			continue
		}
		if enc.isAudio() && audioURL == "" {
			audioURL = enc.URL
		}
		if link == "" && !enc.isImage() {
			link = enc.URL
		}
	}

	heroImage, text := extractHTML(it.body)
	if text == "" {
		text = it.fallbackDescription
	}
	if heroImage == "" {
		heroImage = it.fallbackImage
	}

	title := fixEncodingArtifacts(strings.TrimSpace(it.title))
	if link == "" && title == "" && text == "" {
		return domain.ParsedPost{}, false
	}

	publishedAt, dateParsed := p.parsePostDate(it.dates...)

	return domain.ParsedPost{
		Title:        title,
		Link:         link,
		Description:  fixEncodingArtifacts(text),
		RawContent:   strings.TrimSpace(it.body),
		ImageURL:     heroImage,
		AudioURL:     audioURL,
		CommentsLink: it.commentsLink,
		PublishedAt:  publishedAt,
		DateParsed:   dateParsed,
	}, true
}

// Media RSS extension elements, shared by the RSS and Atom parsers.

type mediaContent struct {
	URL    string `xml:"url,attr"`
	Medium string `xml:"medium,attr"`
	Type   string `xml:"type,attr"`
}

type mediaThumbnail struct {
	URL string `xml:"url,attr"`
}

type mediaGroup struct {
	Title       string           `xml:"title"`
	Description string           `xml:"description"`
	Thumbnails  []mediaThumbnail `xml:"thumbnail"`
	Contents    []mediaContent   `xml:"content"`
}

// mediaFallbacks extracts the image and description fallbacks from the media
// extension elements attached to an item.
func mediaFallbacks(contents []mediaContent, group *mediaGroup, thumb *mediaThumbnail) (image, description string) {
	for _, mc := range contents {
		if mc.URL != "" && mc.Medium != "video" {
			image = mc.URL
			break
		}
	}
	if image == "" && thumb != nil {
		image = thumb.URL
	}
	if group != nil {
		if image == "" {
			for _, t := range group.Thumbnails {
				if t.URL != "" {
					image = t.URL
					break
				}
			}
		}
		if image == "" {
			for _, mc := range group.Contents {
				if mc.URL != "" && strings.HasPrefix(mc.Type, "image/") {
					image = mc.URL
					break
				}
			}
		}
		description = strings.TrimSpace(group.Description)
	}
	return image, description
}
