package domain

import "time"

// Feed is a subscribed feed as stored locally. RemoteID stays nil until the
// feed has been confirmed to exist on the active service; Link is the natural
// key used to match feeds across systems when RemoteID is absent.
type Feed struct {
	ID            int64
	RemoteID      *string // FreshRSS stream id or Miniflux feed id (decimal string)
	Link          string
	Name          string
	HomepageLink  string
	IconURL       string
	IsDeleted     bool
	LastUpdatedAt *time.Time // set on every local mutation that must be pushed
	PinnedAt      *time.Time
}

// HasPendingChanges reports whether the feed carries a local mutation newer
// than the given watermark.
func (f *Feed) HasPendingChanges(since time.Time) bool {
	return f.LastUpdatedAt != nil && f.LastUpdatedAt.After(since)
}

// FeedGroup is a tag/category/label. A feed belongs to at most one group; the
// subscription reconciliation enforces that on every pass.
type FeedGroup struct {
	ID        int64
	RemoteID  *string // FreshRSS label uri ("user/-/label/<name>") or Miniflux category id
	Name      string
	FeedIDs   []int64
	IsDeleted bool
	UpdatedAt *time.Time
	PinnedAt  *time.Time
}

// HasPendingChanges reports whether the group was mutated after the watermark.
func (g *FeedGroup) HasPendingChanges(since time.Time) bool {
	return g.UpdatedAt != nil && g.UpdatedAt.After(since)
}

// Contains reports membership of a feed id in the group.
func (g *FeedGroup) Contains(feedID int64) bool {
	for _, id := range g.FeedIDs {
		if id == feedID {
			return true
		}
	}
	return false
}
