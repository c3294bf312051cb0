package feedparser

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Layouts seen in the wild, roughly RFC 2822 variants first, then ISO 8601.
var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	"2 Jan 2006 15:04:05 -0700",
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parsePostDate tries each candidate against the known layouts, falling back
// to best-effort detection. When nothing parses it substitutes now and
// reports false so callers know the date is a placeholder.
func (p *Parser) parsePostDate(candidates ...string) (int64, bool) {
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, c); err == nil {
				return t.UnixMilli(), true
			}
		}
		if t, err := dateparse.ParseAny(c); err == nil {
			return t.UnixMilli(), true
		}
	}
	return p.now().UnixMilli(), false
}
