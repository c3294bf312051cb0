package syncer

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"feedsync/internal/domain"
	"feedsync/internal/remote/freshrss"
	"feedsync/internal/remote/miniflux"
)

// Store lookups return (nil, nil) when no row matches; nil errors are
// reserved for infrastructure failures.

type FeedStore interface {
	All(ctx context.Context) ([]domain.Feed, error)
	ByID(ctx context.Context, id int64) (*domain.Feed, error)
	ByLink(ctx context.Context, link string) (*domain.Feed, error)
	ByRemoteID(ctx context.Context, remoteID string) (*domain.Feed, error)
	Create(ctx context.Context, feed *domain.Feed) (int64, error)
	Update(ctx context.Context, feed *domain.Feed) error
	SetRemoteID(ctx context.Context, id int64, remoteID string) error
	Delete(ctx context.Context, id int64) error
}

type GroupStore interface {
	All(ctx context.Context) ([]domain.FeedGroup, error)
	ByRemoteID(ctx context.Context, remoteID string) (*domain.FeedGroup, error)
	Create(ctx context.Context, group *domain.FeedGroup) (int64, error)
	Update(ctx context.Context, group *domain.FeedGroup) error
	MarkDeleted(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	AddFeed(ctx context.Context, groupID, feedID int64) error
	// RemoveFeedFromOthers strips the feed from every group except
	// keepGroupID; pass 0 to strip it from all groups.
	RemoveFeedFromOthers(ctx context.Context, feedID, keepGroupID int64) error
}

type PostStore interface {
	ByRemoteID(ctx context.Context, remoteID string) (*domain.Post, error)
	ByLink(ctx context.Context, link string) (*domain.Post, error)
	// Upsert inserts the post or, when the owning feed already has a post
	// with the same link, updates it in place (backfilling RemoteID).
	Upsert(ctx context.Context, post *domain.Post) (int64, error)
	SetRemoteID(ctx context.Context, id int64, remoteID string) error
	UpdateStatus(ctx context.Context, id int64, read, bookmarked bool, syncedAt time.Time) error
	MarkSynced(ctx context.Context, ids []int64, syncedAt time.Time) error
	// PendingChanges pages through posts whose UpdatedAt is newer than
	// SyncedAt, i.e. local status changes awaiting push.
	PendingChanges(ctx context.Context, limit, offset int) ([]domain.Post, error)
	PendingChangesForFeed(ctx context.Context, feedID int64, limit, offset int) ([]domain.Post, error)
	// WithRemoteID pages through posts carrying a remote id, for status
	// reconciliation.
	WithRemoteID(ctx context.Context, limit, offset int) ([]domain.Post, error)
}

type SettingsStore interface {
	LastSyncedAt(ctx context.Context, account domain.AccountKind) (time.Time, error)
	SetLastSyncedAt(ctx context.Context, account domain.AccountKind, t time.Time) error
	DownloadFullContent(ctx context.Context) (bool, error)
	ActiveAccount(ctx context.Context) (domain.AccountKind, error)
	SetActiveAccount(ctx context.Context, account domain.AccountKind) error
	Credentials(ctx context.Context, kind domain.AccountKind) (*domain.Credentials, error)
	SetCredentials(ctx context.Context, creds *domain.Credentials) error
	ClearCredentials(ctx context.Context, kind domain.AccountKind) error
}

// TransactionManager runs store mutations atomically; the callback receives
// a context carrying the open transaction, which the stores honor.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// FeedFetcher downloads and parses a raw feed. The consume callback runs
// while the response body is still open and must drain the post sequence.
type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL string, consume func(*domain.ParsedFeed) error) error
}

// RefreshPolicy gates scheduled refreshes and owns the sync watermark for
// the coordinator it serves.
type RefreshPolicy interface {
	ShouldRefresh(ctx context.Context) (bool, error)
	LastSyncedAt(ctx context.Context) (time.Time, error)
	SetLastSyncedAt(ctx context.Context, t time.Time) error
}

type Publisher interface {
	Publish(ctx context.Context, post *domain.Post, isNew bool) error
}

// FullContentDownloader fetches an article link and returns a markdown-ready
// readable body.
type FullContentDownloader interface {
	Download(ctx context.Context, link string) (string, error)
}

type FreshRSSRemote interface {
	Subscriptions(ctx context.Context) ([]freshrss.Subscription, error)
	Tags(ctx context.Context) ([]freshrss.Tag, error)
	StreamContents(ctx context.Context, streamID string, since int64, count int, continuation string) (*freshrss.StreamContents, error)
	StreamItemIDs(ctx context.Context, streamID, excludeState string, count int, continuation string) (*freshrss.ItemIDs, error)
	EditTags(ctx context.Context, itemIDs []string, add, remove string) error
	QuickAddSubscription(ctx context.Context, feedURL string) (string, error)
	DeleteSubscription(ctx context.Context, streamID string) error
	EditSubscription(ctx context.Context, streamID, title, addLabel, removeLabel string) error
	RenameTag(ctx context.Context, tagID, newName string) error
	DeleteTag(ctx context.Context, tagID string) error
}

type MinifluxRemote interface {
	Feeds(ctx context.Context) ([]miniflux.Feed, error)
	Categories(ctx context.Context) ([]miniflux.Category, error)
	Entries(ctx context.Context, q miniflux.EntryQuery) (*miniflux.EntriesPage, error)
	FeedEntries(ctx context.Context, feedID int64, q miniflux.EntryQuery) (*miniflux.EntriesPage, error)
	CreateFeed(ctx context.Context, feedURL string, categoryID int64) (int64, error)
	UpdateFeed(ctx context.Context, id int64, title string, categoryID int64) error
	DeleteFeed(ctx context.Context, id int64) error
	CreateCategory(ctx context.Context, title string) (*miniflux.Category, error)
	UpdateCategory(ctx context.Context, id int64, title string) error
	DeleteCategory(ctx context.Context, id int64) error
	UpdateEntriesStatus(ctx context.Context, ids []int64, status string) error
	ToggleBookmark(ctx context.Context, id int64) error
}
