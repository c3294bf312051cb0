package feedparser

import (
	stdhtml "html"
	"strings"

	"golang.org/x/net/html"
)

// Tags whose text content is worth keeping when flattening post bodies.
var textTags = map[string]bool{
	"p": true, "a": true, "span": true,
	"em": true, "u": true, "b": true, "i": true, "strong": true,
}

// Tags that end a line in the plain-text rendering.
var lineBreakTags = map[string]bool{
	"p": true, "br": true, "div": true, "li": true,
}

// ExtractText flattens rich post content into plain text and picks a hero
// image candidate: the first <img> src that is not a gif. Content without
// any markup is returned as-is (entity-unescaped). The sync coordinators use
// it directly on article bodies delivered by the service APIs.
func ExtractText(content string) (heroImage, text string) {
	return extractHTML(content)
}

func extractHTML(content string) (heroImage, text string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ""
	}
	if !strings.Contains(content, "<") {
		return "", strings.TrimSpace(stdhtml.UnescapeString(content))
	}

	z := html.NewTokenizer(strings.NewReader(content))
	var sb strings.Builder
	depth := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return heroImage, strings.TrimSpace(sb.String())

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)
			if tag == "img" && heroImage == "" && hasAttr {
				if src := tagAttr(z, "src"); src != "" && !strings.HasSuffix(strings.ToLower(src), ".gif") {
					heroImage = src
				}
			}
			if lineBreakTags[tag] && sb.Len() > 0 {
				sb.WriteByte('\n')
			}
			if textTags[tag] && tt == html.StartTagToken {
				depth++
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if textTags[string(name)] && depth > 0 {
				depth--
			}

		case html.TextToken:
			if depth > 0 {
				sb.Write(z.Text())
			}
		}
	}
}

func tagAttr(z *html.Tokenizer, want string) string {
	for {
		key, val, more := z.TagAttr()
		if string(key) == want {
			return string(val)
		}
		if !more {
			return ""
		}
	}
}
