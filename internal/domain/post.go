package domain

import "time"

// Post is a locally stored article. The UpdatedAt/SyncedAt pair is the sole
// conflict-resolution primitive: a post whose UpdatedAt is newer than SyncedAt
// has local read/bookmark changes pending push, and remote state must not
// overwrite it until the push happened.
type Post struct {
	ID          int64
	FeedID      int64
	RemoteID    *string
	Link        string
	Title       string
	Description string // plain text rendering of the body
	RawContent  string // sanitized HTML / markdown-ready body
	ImageURL    string
	AudioURL    string
	PublishedAt time.Time
	Read        bool
	Bookmarked  bool
	UpdatedAt   time.Time
	SyncedAt    time.Time
}

// IsDirty reports whether the post has local status changes not yet pushed.
func (p *Post) IsDirty() bool {
	return p.UpdatedAt.After(p.SyncedAt)
}
