package freshrss

// Google Reader API stream identifiers.
const (
	StreamReadingList = "user/-/state/com.google/reading-list"
	StreamStarred     = "user/-/state/com.google/starred"
	StateRead         = "user/-/state/com.google/read"
	StateStarred      = "user/-/state/com.google/starred"
	LabelPrefix       = "user/-/label/"
)

type Subscription struct {
	ID         string     `json:"id"` // stream id, e.g. "feed/https://example.com/rss"
	Title      string     `json:"title"`
	URL        string     `json:"url"`
	HTMLURL    string     `json:"htmlUrl"`
	IconURL    string     `json:"iconUrl"`
	Categories []Category `json:"categories"`
}

type Category struct {
	ID    string `json:"id"` // "user/-/label/<name>"
	Label string `json:"label"`
}

type Tag struct {
	ID   string `json:"id"`
	Type string `json:"type"` // FreshRSS reports labels as "folder"
}

type subscriptionList struct {
	Subscriptions []Subscription `json:"subscriptions"`
}

type tagList struct {
	Tags []Tag `json:"tags"`
}

type StreamContents struct {
	Items        []Item `json:"items"`
	Continuation string `json:"continuation"`
}

type Item struct {
	ID         string          `json:"id"` // long form "tag:google.com,2005:reader/item/<hex>"
	Title      string          `json:"title"`
	Published  int64           `json:"published"` // unix seconds
	Canonical  []ItemLink      `json:"canonical"`
	Alternate  []ItemLink      `json:"alternate"`
	Summary    ItemContent     `json:"summary"`
	Content    ItemContent     `json:"content"`
	Categories []string        `json:"categories"`
	Origin     ItemOrigin      `json:"origin"`
	Enclosures []ItemEnclosure `json:"enclosure"`
}

type ItemLink struct {
	Href string `json:"href"`
}

type ItemContent struct {
	Content string `json:"content"`
}

type ItemOrigin struct {
	StreamID string `json:"streamId"`
	Title    string `json:"title"`
}

type ItemEnclosure struct {
	Href string `json:"href"`
	Type string `json:"type"`
}

type ItemIDs struct {
	ItemRefs     []ItemRef `json:"itemRefs"`
	Continuation string    `json:"continuation"`
}

type ItemRef struct {
	ID string `json:"id"` // short decimal form
}

// Link returns the item's canonical link, falling back to the first
// alternate link.
func (i Item) Link() string {
	for _, l := range i.Canonical {
		if l.Href != "" {
			return l.Href
		}
	}
	for _, l := range i.Alternate {
		if l.Href != "" {
			return l.Href
		}
	}
	return ""
}

// Body returns the richest available content for the item.
func (i Item) Body() string {
	if i.Content.Content != "" {
		return i.Content.Content
	}
	return i.Summary.Content
}

// HasCategory reports whether the item carries the given state/label.
func (i Item) HasCategory(id string) bool {
	for _, c := range i.Categories {
		if c == id {
			return true
		}
	}
	return false
}
