package syncer

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"feedsync/internal/domain"
	"feedsync/internal/remote/miniflux"
)

// Miniflux synchronises the local database with a Miniflux server over its
// REST API.
type Miniflux struct {
	mu sync.Mutex

	remote     MinifluxRemote
	feeds      FeedStore
	groups     GroupStore
	posts      PostStore
	settings   SettingsStore
	policy     RefreshPolicy
	publisher  Publisher
	downloader FullContentDownloader
	stream     *StateStream
	logger     *slog.Logger

	pageSize int
	now      func() time.Time
}

type MinifluxDeps struct {
	Remote     MinifluxRemote
	Feeds      FeedStore
	Groups     GroupStore
	Posts      PostStore
	Settings   SettingsStore
	Policy     RefreshPolicy
	Publisher  Publisher
	Downloader FullContentDownloader
	Logger     *slog.Logger

	PageSize int
}

func NewMiniflux(deps MinifluxDeps) *Miniflux {
	return &Miniflux{
		remote:     deps.Remote,
		feeds:      deps.Feeds,
		groups:     deps.Groups,
		posts:      deps.Posts,
		settings:   deps.Settings,
		policy:     deps.Policy,
		publisher:  deps.Publisher,
		downloader: deps.Downloader,
		stream:     NewStateStream(),
		logger:     deps.Logger,
		pageSize:   deps.PageSize,
		now:        time.Now,
	}
}

func (c *Miniflux) States() *StateStream { return c.stream }

func (c *Miniflux) Pull(ctx context.Context) (*domain.SyncStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	started := c.now()
	stats := &domain.SyncStats{Account: domain.AccountMiniflux}
	c.stream.Publish(domain.SyncStateInProgress(progressStart))

	err := c.fullSync(ctx, stats)
	stats.Duration = c.now().Sub(started)
	if err != nil {
		c.stream.Publish(domain.SyncStateError(err))
		return stats, err
	}

	c.stream.Publish(domain.SyncStateComplete())
	c.logger.Info("miniflux sync complete",
		slog.Int("fetched", stats.Fetched),
		slog.Int("new", stats.New),
		slog.Int("updated", stats.Updated),
		slog.Duration("duration", stats.Duration))
	return stats, nil
}

func (c *Miniflux) Push(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return runTracked(c.stream, func() error {
		lastSynced, err := c.policy.LastSyncedAt(ctx)
		if err != nil {
			return err
		}
		if err := c.pushStatusChanges(ctx); err != nil {
			return err
		}
		if _, err := c.pushFeedChanges(ctx, lastSynced); err != nil {
			return err
		}
		return c.pushGroupChanges(ctx, lastSynced)
	})
}

func (c *Miniflux) PullSubscriptions(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return runTracked(c.stream, func() error {
		lastSynced, err := c.policy.LastSyncedAt(ctx)
		if err != nil {
			return err
		}
		if _, err := c.pushFeedChanges(ctx, lastSynced); err != nil {
			return err
		}
		if err := c.pushGroupChanges(ctx, lastSynced); err != nil {
			return err
		}
		return c.syncSubscriptions(ctx, lastSynced)
	})
}

// PullFeed refreshes one subscription through the feed-scoped entries
// endpoint, pushing only that feed's pending statuses first. A feed that was
// never pushed falls back to a full sync.
func (c *Miniflux) PullFeed(ctx context.Context, feedID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return runTracked(c.stream, func() error {
		return c.pullFeed(ctx, feedID)
	})
}

// PullFeeds refreshes the given subscriptions sequentially under one lock
// acquisition.
func (c *Miniflux) PullFeeds(ctx context.Context, feedIDs []int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return runTracked(c.stream, func() error {
		for _, feedID := range feedIDs {
			if err := c.pullFeed(ctx, feedID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *Miniflux) pullFeed(ctx context.Context, feedID int64) error {
	feed, err := c.feeds.ByID(ctx, feedID)
	if err != nil {
		return err
	}
	if feed == nil {
		return fmt.Errorf("feed %d not found", feedID)
	}
	if feed.RemoteID == nil {
		stats := &domain.SyncStats{Account: domain.AccountMiniflux}
		return c.fullSync(ctx, stats)
	}
	remoteID, ok := entryID(feed.RemoteID)
	if !ok {
		return fmt.Errorf("feed %d has malformed remote id %q", feedID, *feed.RemoteID)
	}

	if err := c.pushStatusChangesForFeed(ctx, feedID); err != nil {
		return err
	}
	lastSynced, err := c.policy.LastSyncedAt(ctx)
	if err != nil {
		return err
	}
	stats := &domain.SyncStats{Account: domain.AccountMiniflux}
	if err := c.pullFeedEntries(ctx, remoteID, lastSynced.Add(-minifluxOverlap), stats); err != nil {
		return err
	}
	return c.reconcileStatuses(ctx)
}

// fullSync runs the four phase pipeline. Unlike the day-overlap window used
// for Google Reader streams, the entry query is anchored at the previous
// watermark; the window is widened by two hours when the run subscribed to
// new feeds so their backlog is picked up. The watermark advances only when
// the run actually saw new entries, which keeps a quiet server from
// shrinking the next window past unseen articles.
func (c *Miniflux) fullSync(ctx context.Context, stats *domain.SyncStats) error {
	started := c.now()

	lastSynced, err := c.policy.LastSyncedAt(ctx)
	if err != nil {
		return err
	}

	if err := c.pushStatusChanges(ctx); err != nil {
		return fmt.Errorf("push statuses: %w", err)
	}
	subscribed, err := c.pushFeedChanges(ctx, lastSynced)
	if err != nil {
		return fmt.Errorf("push feeds: %w", err)
	}
	if err := c.pushGroupChanges(ctx, lastSynced); err != nil {
		return fmt.Errorf("push groups: %w", err)
	}
	c.stream.Publish(domain.SyncStateInProgress(progressPushed))

	if err := c.syncSubscriptions(ctx, lastSynced); err != nil {
		return fmt.Errorf("sync subscriptions: %w", err)
	}

	since := lastSynced
	if subscribed {
		since = lastSynced.Add(-minifluxOverlap)
	}
	if err := c.pullEntries(ctx, since, stats); err != nil {
		return fmt.Errorf("sync articles: %w", err)
	}
	c.stream.Publish(domain.SyncStateInProgress(progressArticlesDone))

	c.stream.Publish(domain.SyncStateInProgress(progressStatusesBegun))
	if err := c.reconcileStatuses(ctx); err != nil {
		return fmt.Errorf("reconcile statuses: %w", err)
	}

	if stats.HasNewArticles() {
		return c.policy.SetLastSyncedAt(ctx, started)
	}
	return nil
}

// pushStatusChanges uploads dirty flags. Read state goes up in two bulk
// calls; the bookmark endpoint only toggles, so starred state is diffed
// against the server's bookmark set first.
func (c *Miniflux) pushStatusChanges(ctx context.Context) error {
	return c.pushStatuses(ctx, func(limit, offset int) ([]domain.Post, error) {
		return c.posts.PendingChanges(ctx, limit, offset)
	})
}

// pushStatusChangesForFeed uploads only the given subscription's pending
// read and bookmark changes.
func (c *Miniflux) pushStatusChangesForFeed(ctx context.Context, feedID int64) error {
	return c.pushStatuses(ctx, func(limit, offset int) ([]domain.Post, error) {
		return c.posts.PendingChangesForFeed(ctx, feedID, limit, offset)
	})
}

func (c *Miniflux) pushStatuses(ctx context.Context, pending func(limit, offset int) ([]domain.Post, error)) error {
	starredRemote, err := c.starredIDSet(ctx)
	if err != nil {
		return err
	}

	var read, unread []int64
	var toggles []int64
	var pushed []int64

	offset := 0
	for {
		posts, err := pending(c.pageSize, offset)
		if err != nil {
			return err
		}
		if len(posts) == 0 {
			break
		}
		for _, p := range posts {
			id, ok := entryID(p.RemoteID)
			if !ok {
				continue
			}
			if p.Read {
				read = append(read, id)
			} else {
				unread = append(unread, id)
			}
			if _, starred := starredRemote[id]; starred != p.Bookmarked {
				toggles = append(toggles, id)
			}
			pushed = append(pushed, p.ID)
		}
		offset += len(posts)
	}
	if len(pushed) == 0 {
		return nil
	}

	if len(read) > 0 {
		if err := c.remote.UpdateEntriesStatus(ctx, read, miniflux.StatusRead); err != nil {
			return err
		}
	}
	if len(unread) > 0 {
		if err := c.remote.UpdateEntriesStatus(ctx, unread, miniflux.StatusUnread); err != nil {
			return err
		}
	}
	for _, id := range toggles {
		if err := c.remote.ToggleBookmark(ctx, id); err != nil {
			return err
		}
	}

	return c.posts.MarkSynced(ctx, pushed, c.now())
}

// pushFeedChanges uploads subscription edits and reports whether any new
// subscription was created on the server during this run.
func (c *Miniflux) pushFeedChanges(ctx context.Context, lastSynced time.Time) (bool, error) {
	feeds, err := c.feeds.All(ctx)
	if err != nil {
		return false, err
	}

	subscribed := false
	for _, feed := range feeds {
		switch {
		case feed.IsDeleted:
			if id, ok := entryID(feed.RemoteID); ok {
				if err := c.remote.DeleteFeed(ctx, id); err != nil {
					return subscribed, err
				}
			}
			if err := c.feeds.Delete(ctx, feed.ID); err != nil {
				return subscribed, err
			}
		case feed.RemoteID == nil:
			categoryID, err := c.feedCategory(ctx, feed.ID)
			if err != nil {
				return subscribed, err
			}
			remoteID, err := c.remote.CreateFeed(ctx, feed.Link, categoryID)
			if err != nil {
				c.logger.Warn("create feed failed", slog.String("link", feed.Link), slog.Any("error", err))
				continue
			}
			if err := c.feeds.SetRemoteID(ctx, feed.ID, strconv.FormatInt(remoteID, 10)); err != nil {
				return subscribed, err
			}
			subscribed = true
		case feed.HasPendingChanges(lastSynced):
			id, _ := entryID(feed.RemoteID)
			categoryID, err := c.feedCategory(ctx, feed.ID)
			if err != nil {
				return subscribed, err
			}
			if err := c.remote.UpdateFeed(ctx, id, feed.Name, categoryID); err != nil {
				return subscribed, err
			}
		}
	}
	return subscribed, nil
}

func (c *Miniflux) pushGroupChanges(ctx context.Context, lastSynced time.Time) error {
	groups, err := c.groups.All(ctx)
	if err != nil {
		return err
	}
	for _, group := range groups {
		id, hasRemote := entryID(group.RemoteID)
		switch {
		case group.IsDeleted:
			if hasRemote {
				if err := c.remote.DeleteCategory(ctx, id); err != nil {
					return err
				}
			}
			if err := c.groups.Delete(ctx, group.ID); err != nil {
				return err
			}
		case hasRemote && group.HasPendingChanges(lastSynced):
			if err := c.remote.UpdateCategory(ctx, id, group.Name); err != nil {
				return err
			}
		case !hasRemote:
			created, err := c.remote.CreateCategory(ctx, group.Name)
			if err != nil {
				return err
			}
			updated := group
			remoteID := strconv.FormatInt(created.ID, 10)
			updated.RemoteID = &remoteID
			if err := c.groups.Update(ctx, &updated); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Miniflux) syncSubscriptions(ctx context.Context, lastSynced time.Time) error {
	remoteFeeds, err := c.remote.Feeds(ctx)
	if err != nil {
		return err
	}
	categories, err := c.remote.Categories(ctx)
	if err != nil {
		return err
	}

	remoteGroups := make(map[int64]int64, len(categories))
	for _, cat := range categories {
		localID, err := c.ensureGroup(ctx, cat)
		if err != nil {
			return err
		}
		remoteGroups[cat.ID] = localID
	}

	seen := make(map[string]struct{}, len(remoteFeeds))
	for _, rf := range remoteFeeds {
		remoteID := strconv.FormatInt(rf.ID, 10)
		seen[remoteID] = struct{}{}
		feedID, err := c.ensureFeed(ctx, rf, remoteID, lastSynced)
		if err != nil {
			return err
		}

		var keepGroup int64
		if rf.Category != nil {
			groupID, ok := remoteGroups[rf.Category.ID]
			if !ok {
				groupID, err = c.ensureGroup(ctx, *rf.Category)
				if err != nil {
					return err
				}
				remoteGroups[rf.Category.ID] = groupID
			}
			if err := c.groups.AddFeed(ctx, groupID, feedID); err != nil {
				return err
			}
			keepGroup = groupID
		}
		if err := c.groups.RemoveFeedFromOthers(ctx, feedID, keepGroup); err != nil {
			return err
		}
	}

	feeds, err := c.feeds.All(ctx)
	if err != nil {
		return err
	}
	for _, feed := range feeds {
		if feed.RemoteID == nil || feed.IsDeleted {
			continue
		}
		if _, ok := seen[*feed.RemoteID]; !ok {
			if err := c.feeds.Delete(ctx, feed.ID); err != nil {
				return err
			}
		}
	}

	groups, err := c.groups.All(ctx)
	if err != nil {
		return err
	}
	seenGroups := make(map[string]struct{}, len(categories))
	for _, cat := range categories {
		seenGroups[strconv.FormatInt(cat.ID, 10)] = struct{}{}
	}
	for _, group := range groups {
		if group.RemoteID == nil || group.IsDeleted {
			continue
		}
		if _, ok := seenGroups[*group.RemoteID]; !ok {
			if err := c.groups.Delete(ctx, group.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Miniflux) ensureFeed(ctx context.Context, rf miniflux.Feed, remoteID string, lastSynced time.Time) (int64, error) {
	feed, err := c.feeds.ByRemoteID(ctx, remoteID)
	if err != nil {
		return 0, err
	}
	if feed == nil && rf.FeedURL != "" {
		feed, err = c.feeds.ByLink(ctx, rf.FeedURL)
		if err != nil {
			return 0, err
		}
		if feed != nil {
			if err := c.feeds.SetRemoteID(ctx, feed.ID, remoteID); err != nil {
				return 0, err
			}
			feed.RemoteID = &remoteID
		}
	}
	if feed == nil {
		created := &domain.Feed{
			RemoteID:     &remoteID,
			Link:         rf.FeedURL,
			Name:         rf.Title,
			HomepageLink: rf.SiteURL,
		}
		return c.feeds.Create(ctx, created)
	}

	if feed.HasPendingChanges(lastSynced) {
		return feed.ID, nil
	}
	if feed.Name != rf.Title || feed.HomepageLink != rf.SiteURL {
		feed.Name = rf.Title
		feed.HomepageLink = rf.SiteURL
		if err := c.feeds.Update(ctx, feed); err != nil {
			return 0, err
		}
	}
	return feed.ID, nil
}

func (c *Miniflux) ensureGroup(ctx context.Context, cat miniflux.Category) (int64, error) {
	remoteID := strconv.FormatInt(cat.ID, 10)
	group, err := c.groups.ByRemoteID(ctx, remoteID)
	if err != nil {
		return 0, err
	}
	if group != nil {
		if !group.IsDeleted && group.Name != cat.Title {
			group.Name = cat.Title
			if err := c.groups.Update(ctx, group); err != nil {
				return 0, err
			}
		}
		return group.ID, nil
	}
	return c.groups.Create(ctx, &domain.FeedGroup{RemoteID: &remoteID, Name: cat.Title})
}

func (c *Miniflux) pullEntries(ctx context.Context, since time.Time, stats *domain.SyncStats) error {
	return c.collectEntries(ctx, stats, func(offset int) (*miniflux.EntriesPage, error) {
		return c.remote.Entries(ctx, miniflux.EntryQuery{
			After:  since.Unix(),
			Limit:  c.pageSize,
			Offset: offset,
		})
	})
}

// pullFeedEntries downloads one subscription's entries through the
// feed-scoped endpoint so other feeds' articles stay untouched.
func (c *Miniflux) pullFeedEntries(ctx context.Context, remoteFeedID int64, since time.Time, stats *domain.SyncStats) error {
	return c.collectEntries(ctx, stats, func(offset int) (*miniflux.EntriesPage, error) {
		return c.remote.FeedEntries(ctx, remoteFeedID, miniflux.EntryQuery{
			After:  since.Unix(),
			Limit:  c.pageSize,
			Offset: offset,
		})
	})
}

func (c *Miniflux) collectEntries(ctx context.Context, stats *domain.SyncStats, fetch func(offset int) (*miniflux.EntriesPage, error)) error {
	downloadFull, err := c.settings.DownloadFullContent(ctx)
	if err != nil {
		return err
	}

	var entries []miniflux.Entry
	offset := 0
	for {
		page, err := fetch(offset)
		if err != nil {
			return err
		}
		entries = append(entries, page.Entries...)
		offset += len(page.Entries)
		if len(page.Entries) == 0 || offset >= page.Total {
			break
		}
	}

	// Entries arrive newest first; apply oldest first.
	for i := len(entries) - 1; i >= 0; i-- {
		if err := c.upsertEntry(ctx, entries[i], downloadFull, stats); err != nil {
			c.logger.Warn("entry upsert failed", slog.Int64("entry", entries[i].ID), slog.Any("error", err))
			stats.Errors++
		}
		stats.Fetched++
	}
	return nil
}

func (c *Miniflux) upsertEntry(ctx context.Context, entry miniflux.Entry, downloadFull bool, stats *domain.SyncStats) error {
	feedRemoteID := strconv.FormatInt(entry.FeedID, 10)
	feed, err := c.feeds.ByRemoteID(ctx, feedRemoteID)
	if err != nil {
		return err
	}
	if feed == nil {
		stats.Skipped++
		return nil
	}

	remoteID := strconv.FormatInt(entry.ID, 10)
	existing, err := c.posts.ByRemoteID(ctx, remoteID)
	if err != nil {
		return err
	}
	if existing == nil && entry.URL != "" {
		existing, err = c.posts.ByLink(ctx, entry.URL)
		if err != nil {
			return err
		}
		if existing != nil {
			if err := c.posts.SetRemoteID(ctx, existing.ID, remoteID); err != nil {
				return err
			}
			existing.RemoteID = &remoteID
		}
	}

	now := c.now()
	post := domain.Post{
		FeedID:      feed.ID,
		RemoteID:    &remoteID,
		Link:        entry.URL,
		Title:       entry.Title,
		RawContent:  entry.Content,
		PublishedAt: entry.PublishedAt,
		Read:        entry.Status == miniflux.StatusRead,
		Bookmarked:  entry.Starred,
		UpdatedAt:   now,
		SyncedAt:    now,
	}
	post.ImageURL, post.Description = extractContent(post.RawContent)
	for _, enc := range entry.Enclosures {
		if strings.HasPrefix(enc.MimeType, "audio/") {
			post.AudioURL = enc.URL
			break
		}
	}

	if existing != nil {
		post.ID = existing.ID
		if existing.IsDirty() {
			post.Read = existing.Read
			post.Bookmarked = existing.Bookmarked
			post.UpdatedAt = existing.UpdatedAt
			post.SyncedAt = existing.SyncedAt
		}
		if existing.RawContent == post.RawContent &&
			existing.Read == post.Read && existing.Bookmarked == post.Bookmarked {
			stats.Skipped++
			return nil
		}
		post.ImageURL = firstNonEmptyString(post.ImageURL, existing.ImageURL)
	}

	if post.ID == 0 && downloadFull && c.downloader != nil && entry.URL != "" {
		if full, err := c.downloader.Download(ctx, entry.URL); err == nil && full != "" {
			post.RawContent = full
		} else if err != nil {
			c.logger.Debug("full content download failed", slog.String("link", entry.URL), slog.Any("error", err))
		}
	}

	isNew := post.ID == 0
	id, err := c.posts.Upsert(ctx, &post)
	if err != nil {
		return err
	}
	post.ID = id
	if isNew {
		stats.New++
	} else {
		stats.Updated++
	}
	if c.publisher != nil {
		if err := c.publisher.Publish(ctx, &post, isNew); err != nil {
			c.logger.Warn("publish failed", slog.Int64("post", post.ID), slog.Any("error", err))
		}
	}
	return nil
}

func (c *Miniflux) reconcileStatuses(ctx context.Context) error {
	unread, err := c.unreadIDSet(ctx)
	if err != nil {
		return err
	}
	starred, err := c.starredIDSet(ctx)
	if err != nil {
		return err
	}

	offset := 0
	for {
		posts, err := c.posts.WithRemoteID(ctx, c.pageSize, offset)
		if err != nil {
			return err
		}
		if len(posts) == 0 {
			return nil
		}
		for _, p := range posts {
			if p.IsDirty() {
				continue
			}
			id, ok := entryID(p.RemoteID)
			if !ok {
				continue
			}
			_, isUnread := unread[id]
			_, isStarred := starred[id]
			remoteRead := !isUnread
			if p.Read == remoteRead && p.Bookmarked == isStarred {
				continue
			}
			if err := c.posts.UpdateStatus(ctx, p.ID, remoteRead, isStarred, c.now()); err != nil {
				return err
			}
		}
		offset += len(posts)
	}
}

func (c *Miniflux) unreadIDSet(ctx context.Context) (map[int64]struct{}, error) {
	return c.entryIDSet(ctx, miniflux.EntryQuery{Status: miniflux.StatusUnread, Limit: c.pageSize})
}

func (c *Miniflux) starredIDSet(ctx context.Context) (map[int64]struct{}, error) {
	return c.entryIDSet(ctx, miniflux.EntryQuery{Starred: true, Limit: c.pageSize})
}

func (c *Miniflux) entryIDSet(ctx context.Context, q miniflux.EntryQuery) (map[int64]struct{}, error) {
	set := make(map[int64]struct{})
	for {
		page, err := c.remote.Entries(ctx, q)
		if err != nil {
			return nil, err
		}
		for _, e := range page.Entries {
			set[e.ID] = struct{}{}
		}
		q.Offset += len(page.Entries)
		if len(page.Entries) == 0 || q.Offset >= page.Total {
			return set, nil
		}
	}
}

func (c *Miniflux) feedCategory(ctx context.Context, feedID int64) (int64, error) {
	groups, err := c.groups.All(ctx)
	if err != nil {
		return 0, err
	}
	for _, g := range groups {
		if g.IsDeleted || !g.Contains(feedID) {
			continue
		}
		if id, ok := entryID(g.RemoteID); ok {
			return id, nil
		}
	}
	return 0, nil
}

func entryID(remoteID *string) (int64, bool) {
	if remoteID == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(*remoteID, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
