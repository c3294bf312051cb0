package syncer

import "feedsync/internal/feedparser"

// extractContent flattens remote article HTML into the preview text and
// hero image stored alongside the raw body.
func extractContent(raw string) (imageURL, text string) {
	return feedparser.ExtractText(raw)
}
