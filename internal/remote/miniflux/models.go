package miniflux

import "time"

type Feed struct {
	ID       int64     `json:"id"`
	UserID   int64     `json:"user_id"`
	FeedURL  string    `json:"feed_url"`
	SiteURL  string    `json:"site_url"`
	Title    string    `json:"title"`
	Category *Category `json:"category"`
}

type Category struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type Entry struct {
	ID          int64       `json:"id"`
	FeedID      int64       `json:"feed_id"`
	Status      string      `json:"status"` // "read" or "unread"
	URL         string      `json:"url"`
	CommentsURL string      `json:"comments_url"`
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	Author      string      `json:"author"`
	Starred     bool        `json:"starred"`
	PublishedAt time.Time   `json:"published_at"`
	Enclosures  []Enclosure `json:"enclosures"`
	Feed        *Feed       `json:"feed"`
}

type Enclosure struct {
	ID       int64  `json:"id"`
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

type EntriesPage struct {
	Total   int     `json:"total"`
	Entries []Entry `json:"entries"`
}

const (
	StatusRead   = "read"
	StatusUnread = "unread"
)
