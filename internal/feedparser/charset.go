package feedparser

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

var prologEncodingRe = regexp.MustCompile(`(?i)<\?xml[^>]*encoding=["']([^"']+)["']`)

// decodeFeedBytes returns a UTF-8 reader over the raw feed bytes. A byte
// order mark is stripped; an encoding declared in the XML prolog wins over
// the transport-declared charset.
func decodeFeedBytes(br *bufio.Reader, transportCharset string) (io.Reader, error) {
	stripBOM(br)

	label := transportCharset
	if peeked, err := br.Peek(1024); err == nil || len(peeked) > 0 {
		if m := prologEncodingRe.FindSubmatch(peeked); m != nil {
			label = string(m[1])
		}
	}

	label = strings.TrimSpace(label)
	if label == "" || strings.EqualFold(label, "utf-8") {
		return br, nil
	}
	enc, _ := charset.Lookup(label)
	if enc == nil {
		return br, nil
	}
	return transform.NewReader(br, enc.NewDecoder()), nil
}

func stripBOM(br *bufio.Reader) {
	b, err := br.Peek(3)
	if err == nil && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = br.Discard(3)
	}
}

// Two byte sequences produced by legacy encoders that double-encoded
// Windows-1252 punctuation into UTF-8. Patched after decoding because the
// document otherwise decodes cleanly.
var encodingArtifacts = strings.NewReplacer(
	"â€™", "’", // right single quote
	"â€“", "–", // en dash
)

func fixEncodingArtifacts(s string) string {
	if !strings.Contains(s, "â€") {
		return s
	}
	return encodingArtifacts.Replace(s)
}
