package feedparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractHTML_PlainText(t *testing.T) {
	hero, text := extractHTML("Just a plain description &amp; nothing more")
	assert.Empty(t, hero)
	assert.Equal(t, "Just a plain description & nothing more", text)
}

func TestExtractHTML_AllowListOnly(t *testing.T) {
	// script/style text is outside the allow-list and must not leak
	hero, text := extractHTML(`<p>visible</p><script>var hidden = 1;</script><style>.x{}</style>`)
	assert.Empty(t, hero)
	assert.Equal(t, "visible", text)
}

func TestExtractHTML_LineBreaks(t *testing.T) {
	_, text := extractHTML("<p>first</p><p>second</p>")
	assert.Equal(t, "first\nsecond", text)
}

func TestExtractHTML_HeroImageSkipsGifs(t *testing.T) {
	hero, _ := extractHTML(`<p><img src="https://example.com/tracker.GIF"/><img src="https://example.com/photo.jpg"/>text</p>`)
	assert.Equal(t, "https://example.com/photo.jpg", hero)
}

func TestExtractHTML_FirstImageWins(t *testing.T) {
	hero, _ := extractHTML(`<p><img src="https://example.com/a.jpg"/><img src="https://example.com/b.jpg"/></p>`)
	assert.Equal(t, "https://example.com/a.jpg", hero)
}

func TestExtractHTML_NestedInlineTags(t *testing.T) {
	_, text := extractHTML(`<p>one <a href="#">two <strong>three</strong></a> four</p>`)
	assert.Equal(t, "one two three four", text)
}

func TestExtractHTML_Empty(t *testing.T) {
	hero, text := extractHTML("   ")
	assert.Empty(t, hero)
	assert.Empty(t, text)
}
