package syncer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"feedsync/internal/domain"
	"feedsync/internal/remote/freshrss"
)

// FreshRSS synchronises the local database with a FreshRSS server over the
// Google Reader compatible API.
type FreshRSS struct {
	mu sync.Mutex

	remote     FreshRSSRemote
	feeds      FeedStore
	groups     GroupStore
	posts      PostStore
	settings   SettingsStore
	policy     RefreshPolicy
	publisher  Publisher
	downloader FullContentDownloader
	stream     *StateStream
	logger     *slog.Logger

	pageSize        int
	statusBatchSize int
	now             func() time.Time
}

type FreshRSSDeps struct {
	Remote     FreshRSSRemote
	Feeds      FeedStore
	Groups     GroupStore
	Posts      PostStore
	Settings   SettingsStore
	Policy     RefreshPolicy
	Publisher  Publisher
	Downloader FullContentDownloader
	Logger     *slog.Logger

	PageSize        int
	StatusBatchSize int
}

func NewFreshRSS(deps FreshRSSDeps) *FreshRSS {
	return &FreshRSS{
		remote:          deps.Remote,
		feeds:           deps.Feeds,
		groups:          deps.Groups,
		posts:           deps.Posts,
		settings:        deps.Settings,
		policy:          deps.Policy,
		publisher:       deps.Publisher,
		downloader:      deps.Downloader,
		stream:          NewStateStream(),
		logger:          deps.Logger,
		pageSize:        deps.PageSize,
		statusBatchSize: deps.StatusBatchSize,
		now:             time.Now,
	}
}

func (c *FreshRSS) States() *StateStream { return c.stream }

func (c *FreshRSS) Pull(ctx context.Context) (*domain.SyncStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	started := c.now()
	stats := &domain.SyncStats{Account: domain.AccountFreshRSS}
	c.stream.Publish(domain.SyncStateInProgress(progressStart))

	err := c.fullSync(ctx, stats)
	stats.Duration = c.now().Sub(started)
	if err != nil {
		c.stream.Publish(domain.SyncStateError(err))
		return stats, err
	}

	c.stream.Publish(domain.SyncStateComplete())
	c.logger.Info("freshrss sync complete",
		slog.Int("fetched", stats.Fetched),
		slog.Int("new", stats.New),
		slog.Int("updated", stats.Updated),
		slog.Duration("duration", stats.Duration))
	return stats, nil
}

func (c *FreshRSS) Push(ctx context.Context) error {
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
		if err := c.pushFeedChanges(ctx, lastSynced); err != nil {
			return err
		}
		return c.pushGroupChanges(ctx, lastSynced)
	})
}

func (c *FreshRSS) PullSubscriptions(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return runTracked(c.stream, func() error {
		lastSynced, err := c.policy.LastSyncedAt(ctx)
		if err != nil {
			return err
		}
		if err := c.pushFeedChanges(ctx, lastSynced); err != nil {
			return err
		}
		if err := c.pushGroupChanges(ctx, lastSynced); err != nil {
			return err
		}
		return c.syncSubscriptions(ctx, lastSynced)
	})
}

// PullFeed refreshes one subscription. A feed that was never pushed to the
// server has no stream to read, so the refresh falls back to a full sync.
func (c *FreshRSS) PullFeed(ctx context.Context, feedID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return runTracked(c.stream, func() error {
		return c.pullFeed(ctx, feedID)
	})
}

// PullFeeds refreshes the given subscriptions sequentially. The lock is held
// across the whole batch, so the per-feed runs never interleave with another
// caller's writes.
func (c *FreshRSS) PullFeeds(ctx context.Context, feedIDs []int64) error {
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

func (c *FreshRSS) pullFeed(ctx context.Context, feedID int64) error {
	feed, err := c.feeds.ByID(ctx, feedID)
	if err != nil {
		return err
	}
	if feed == nil {
		return fmt.Errorf("feed %d not found", feedID)
	}
	if feed.RemoteID == nil {
		stats := &domain.SyncStats{Account: domain.AccountFreshRSS}
		return c.fullSync(ctx, stats)
	}

	if err := c.pushStatusChangesForFeed(ctx, feedID); err != nil {
		return err
	}

	lastSynced, err := c.policy.LastSyncedAt(ctx)
	if err != nil {
		return err
	}
	stats := &domain.SyncStats{Account: domain.AccountFreshRSS}
	if err := c.pullStream(ctx, *feed.RemoteID, c.articleWindow(lastSynced), stats); err != nil {
		return err
	}
	return c.reconcileStatuses(ctx)
}

// fullSync is the four phase pipeline: push local changes, reconcile
// subscriptions and groups, pull articles, reconcile statuses. The
// watermark advances to the sync start time even when no articles arrived,
// since the pull window overlaps the previous one by a day.
func (c *FreshRSS) fullSync(ctx context.Context, stats *domain.SyncStats) error {
	started := c.now()

	lastSynced, err := c.policy.LastSyncedAt(ctx)
	if err != nil {
		return err
	}

	if err := c.pushStatusChanges(ctx); err != nil {
		return fmt.Errorf("push statuses: %w", err)
	}
	if err := c.pushFeedChanges(ctx, lastSynced); err != nil {
		return fmt.Errorf("push feeds: %w", err)
	}
	if err := c.pushGroupChanges(ctx, lastSynced); err != nil {
		return fmt.Errorf("push groups: %w", err)
	}
	c.stream.Publish(domain.SyncStateInProgress(progressPushed))

	if err := c.syncSubscriptions(ctx, lastSynced); err != nil {
		return fmt.Errorf("sync subscriptions: %w", err)
	}

	if err := c.syncArticles(ctx, lastSynced, stats); err != nil {
		return fmt.Errorf("sync articles: %w", err)
	}
	c.stream.Publish(domain.SyncStateInProgress(progressArticlesDone))

	c.stream.Publish(domain.SyncStateInProgress(progressStatusesBegun))
	if err := c.reconcileStatuses(ctx); err != nil {
		return fmt.Errorf("reconcile statuses: %w", err)
	}

	return c.policy.SetLastSyncedAt(ctx, started)
}

// pushStatusChanges uploads dirty read/bookmark flags in batches and stamps
// the pushed posts as synced.
func (c *FreshRSS) pushStatusChanges(ctx context.Context) error {
	var read, unread, starred, unstarred []string
	var pushed []int64

	offset := 0
	for {
		posts, err := c.posts.PendingChanges(ctx, c.pageSize, offset)
		if err != nil {
			return err
		}
		if len(posts) == 0 {
			break
		}
		for _, p := range posts {
			if p.RemoteID == nil {
				continue
			}
			if p.Read {
				read = append(read, *p.RemoteID)
			} else {
				unread = append(unread, *p.RemoteID)
			}
			if p.Bookmarked {
				starred = append(starred, *p.RemoteID)
			} else {
				unstarred = append(unstarred, *p.RemoteID)
			}
			pushed = append(pushed, p.ID)
		}
		offset += len(posts)
	}
	if len(pushed) == 0 {
		return nil
	}

	edits := []struct {
		ids         []string
		add, remove string
	}{
		{read, freshrss.StateRead, ""},
		{unread, "", freshrss.StateRead},
		{starred, freshrss.StateStarred, ""},
		{unstarred, "", freshrss.StateStarred},
	}
	for _, e := range edits {
		for _, batch := range chunk(e.ids, c.statusBatchSize) {
			if err := c.remote.EditTags(ctx, batch, e.add, e.remove); err != nil {
				return err
			}
		}
	}

	return c.posts.MarkSynced(ctx, pushed, c.now())
}

func (c *FreshRSS) pushStatusChangesForFeed(ctx context.Context, feedID int64) error {
	var pushed []int64
	offset := 0
	for {
		posts, err := c.posts.PendingChangesForFeed(ctx, feedID, c.pageSize, offset)
		if err != nil {
			return err
		}
		if len(posts) == 0 {
			break
		}
		for _, p := range posts {
			if p.RemoteID == nil {
				continue
			}
			add, remove := freshrss.StateRead, ""
			if !p.Read {
				add, remove = "", freshrss.StateRead
			}
			if err := c.remote.EditTags(ctx, []string{*p.RemoteID}, add, remove); err != nil {
				return err
			}
			add, remove = freshrss.StateStarred, ""
			if !p.Bookmarked {
				add, remove = "", freshrss.StateStarred
			}
			if err := c.remote.EditTags(ctx, []string{*p.RemoteID}, add, remove); err != nil {
				return err
			}
			pushed = append(pushed, p.ID)
		}
		offset += len(posts)
	}
	if len(pushed) == 0 {
		return nil
	}
	return c.posts.MarkSynced(ctx, pushed, c.now())
}

// pushFeedChanges uploads local subscription edits. Tombstoned feeds are
// purged from the database only after the server confirms the unsubscribe.
func (c *FreshRSS) pushFeedChanges(ctx context.Context, lastSynced time.Time) error {
	feeds, err := c.feeds.All(ctx)
	if err != nil {
		return err
	}
	for _, feed := range feeds {
		switch {
		case feed.IsDeleted:
			if feed.RemoteID != nil {
				if err := c.remote.DeleteSubscription(ctx, *feed.RemoteID); err != nil {
					return err
				}
			}
			if err := c.feeds.Delete(ctx, feed.ID); err != nil {
				return err
			}
		case feed.RemoteID == nil:
			streamID, err := c.remote.QuickAddSubscription(ctx, feed.Link)
			if err != nil {
				c.logger.Warn("quickadd failed", slog.String("link", feed.Link), slog.Any("error", err))
				continue
			}
			if err := c.feeds.SetRemoteID(ctx, feed.ID, streamID); err != nil {
				return err
			}
		case feed.HasPendingChanges(lastSynced):
			label, err := c.feedLabel(ctx, feed.ID)
			if err != nil {
				return err
			}
			if err := c.remote.EditSubscription(ctx, *feed.RemoteID, feed.Name, label, ""); err != nil {
				return err
			}
		}
	}
	return nil
}

// pushGroupChanges uploads group renames and deletions. A renamed label gets
// a new stream id on the server, so the stored remote id is regenerated.
func (c *FreshRSS) pushGroupChanges(ctx context.Context, lastSynced time.Time) error {
	groups, err := c.groups.All(ctx)
	if err != nil {
		return err
	}
	for _, group := range groups {
		switch {
		case group.IsDeleted:
			if group.RemoteID != nil {
				if err := c.remote.DeleteTag(ctx, *group.RemoteID); err != nil {
					return err
				}
			}
			if err := c.groups.Delete(ctx, group.ID); err != nil {
				return err
			}
		case group.RemoteID != nil && group.HasPendingChanges(lastSynced):
			currentName := strings.TrimPrefix(*group.RemoteID, freshrss.LabelPrefix)
			if currentName == group.Name {
				continue
			}
			if err := c.remote.RenameTag(ctx, *group.RemoteID, group.Name); err != nil {
				return err
			}
			renamed := group
			newID := freshrss.LabelPrefix + group.Name
			renamed.RemoteID = &newID
			if err := c.groups.Update(ctx, &renamed); err != nil {
				return err
			}
		}
	}
	return nil
}

// syncSubscriptions makes the local subscription and group lists mirror the
// server. Feeds that were deleted remotely disappear locally only when they
// carry a remote id; purely local subscriptions are left alone.
func (c *FreshRSS) syncSubscriptions(ctx context.Context, lastSynced time.Time) error {
	subs, err := c.remote.Subscriptions(ctx)
	if err != nil {
		return err
	}
	tags, err := c.remote.Tags(ctx)
	if err != nil {
		return err
	}

	remoteGroups := make(map[string]int64, len(tags))
	for _, tag := range tags {
		id, err := c.ensureGroup(ctx, tag.ID, strings.TrimPrefix(tag.ID, freshrss.LabelPrefix))
		if err != nil {
			return err
		}
		remoteGroups[tag.ID] = id
	}

	remoteFeeds := make(map[string]struct{}, len(subs))
	for _, sub := range subs {
		remoteFeeds[sub.ID] = struct{}{}
		feedID, err := c.ensureFeed(ctx, sub, lastSynced)
		if err != nil {
			return err
		}

		var keepGroup int64
		if len(sub.Categories) > 0 {
			cat := sub.Categories[0]
			groupID, ok := remoteGroups[cat.ID]
			if !ok {
				groupID, err = c.ensureGroup(ctx, cat.ID, cat.Label)
				if err != nil {
					return err
				}
				remoteGroups[cat.ID] = groupID
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
		if _, ok := remoteFeeds[*feed.RemoteID]; !ok {
			if err := c.feeds.Delete(ctx, feed.ID); err != nil {
				return err
			}
		}
	}

	groups, err := c.groups.All(ctx)
	if err != nil {
		return err
	}
	for _, group := range groups {
		if group.RemoteID == nil || group.IsDeleted {
			continue
		}
		if _, ok := remoteGroups[*group.RemoteID]; !ok {
			if err := c.groups.Delete(ctx, group.ID); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *FreshRSS) ensureFeed(ctx context.Context, sub freshrss.Subscription, lastSynced time.Time) (int64, error) {
	feed, err := c.feeds.ByRemoteID(ctx, sub.ID)
	if err != nil {
		return 0, err
	}
	if feed == nil && sub.URL != "" {
		feed, err = c.feeds.ByLink(ctx, sub.URL)
		if err != nil {
			return 0, err
		}
		if feed != nil {
			if err := c.feeds.SetRemoteID(ctx, feed.ID, sub.ID); err != nil {
				return 0, err
			}
			feed.RemoteID = &sub.ID
		}
	}
	if feed == nil {
		created := &domain.Feed{
			RemoteID:     &sub.ID,
			Link:         sub.URL,
			Name:         sub.Title,
			HomepageLink: sub.HTMLURL,
			IconURL:      sub.IconURL,
		}
		return c.feeds.Create(ctx, created)
	}

	// Local pending edits win until they have been pushed.
	if feed.HasPendingChanges(lastSynced) {
		return feed.ID, nil
	}
	if feed.Name != sub.Title || feed.HomepageLink != sub.HTMLURL || feed.IconURL != sub.IconURL {
		feed.Name = sub.Title
		feed.HomepageLink = sub.HTMLURL
		feed.IconURL = sub.IconURL
		if err := c.feeds.Update(ctx, feed); err != nil {
			return 0, err
		}
	}
	return feed.ID, nil
}

func (c *FreshRSS) ensureGroup(ctx context.Context, remoteID, name string) (int64, error) {
	group, err := c.groups.ByRemoteID(ctx, remoteID)
	if err != nil {
		return 0, err
	}
	if group != nil {
		return group.ID, nil
	}
	return c.groups.Create(ctx, &domain.FeedGroup{RemoteID: &remoteID, Name: name})
}

// articleWindow returns the pull cutoff: a day before the previous sync to
// absorb clock skew and late arrivals, but never more than thirty days back.
func (c *FreshRSS) articleWindow(lastSynced time.Time) time.Time {
	since := lastSynced.Add(-freshRSSOverlap)
	if floor := c.now().Add(-freshRSSMaxWindow); since.Before(floor) {
		since = floor
	}
	return since
}

func (c *FreshRSS) syncArticles(ctx context.Context, lastSynced time.Time, stats *domain.SyncStats) error {
	return c.pullStream(ctx, freshrss.StreamReadingList, c.articleWindow(lastSynced), stats)
}

func (c *FreshRSS) pullStream(ctx context.Context, streamID string, since time.Time, stats *domain.SyncStats) error {
	downloadFull, err := c.settings.DownloadFullContent(ctx)
	if err != nil {
		return err
	}

	continuation := ""
	for {
		page, err := c.remote.StreamContents(ctx, streamID, since.Unix(), c.pageSize, continuation)
		if err != nil {
			return err
		}
		// Pages run newest first; apply each oldest first so publish
		// order follows publication order.
		for i := len(page.Items) - 1; i >= 0; i-- {
			if err := c.upsertArticle(ctx, page.Items[i], downloadFull, stats); err != nil {
				c.logger.Warn("article upsert failed", slog.Any("error", err))
				stats.Errors++
			}
			stats.Fetched++
		}
		if page.Continuation == "" {
			break
		}
		continuation = page.Continuation
	}
	return nil
}

func (c *FreshRSS) upsertArticle(ctx context.Context, item freshrss.Item, downloadFull bool, stats *domain.SyncStats) error {
	shortID := freshrss.ShortItemID(item.ID)

	feed, err := c.feeds.ByRemoteID(ctx, item.Origin.StreamID)
	if err != nil {
		return err
	}
	if feed == nil {
		stats.Skipped++
		return nil
	}

	existing, err := c.posts.ByRemoteID(ctx, shortID)
	if err != nil {
		return err
	}
	link := item.Link()
	if existing == nil && link != "" {
		existing, err = c.posts.ByLink(ctx, link)
		if err != nil {
			return err
		}
		if existing != nil {
			if err := c.posts.SetRemoteID(ctx, existing.ID, shortID); err != nil {
				return err
			}
			existing.RemoteID = &shortID
		}
	}

	now := c.now()
	post := domain.Post{
		FeedID:      feed.ID,
		RemoteID:    &shortID,
		Link:        link,
		Title:       item.Title,
		RawContent:  item.Body(),
		PublishedAt: time.Unix(item.Published, 0),
		Read:        item.HasCategory(freshrss.StateRead),
		Bookmarked:  item.HasCategory(freshrss.StateStarred),
		UpdatedAt:   now,
		SyncedAt:    now,
	}
	post.ImageURL, post.Description = extractContent(post.RawContent)
	for _, enc := range item.Enclosures {
		if strings.HasPrefix(enc.Type, "audio/") {
			post.AudioURL = enc.Href
			break
		}
	}

	if existing != nil {
		post.ID = existing.ID
		// Unpushed local status flips outrank what the server reports.
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

	if post.ID == 0 && downloadFull && c.downloader != nil && link != "" {
		if full, err := c.downloader.Download(ctx, link); err == nil && full != "" {
			post.RawContent = full
		} else if err != nil {
			c.logger.Debug("full content download failed", slog.String("link", link), slog.Any("error", err))
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

// reconcileStatuses pulls the server's unread and starred id sets and
// corrects any clean local post that drifted. Dirty posts keep their local
// flags; they were pushed at the start of the run.
func (c *FreshRSS) reconcileStatuses(ctx context.Context) error {
	unread, err := c.itemIDSet(ctx, freshrss.StreamReadingList, freshrss.StateRead)
	if err != nil {
		return err
	}
	starred, err := c.itemIDSet(ctx, freshrss.StreamStarred, "")
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
			_, isUnread := unread[*p.RemoteID]
			_, isStarred := starred[*p.RemoteID]
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

func (c *FreshRSS) itemIDSet(ctx context.Context, streamID, excludeState string) (map[string]struct{}, error) {
	set := make(map[string]struct{})
	continuation := ""
	for {
		page, err := c.remote.StreamItemIDs(ctx, streamID, excludeState, c.pageSize, continuation)
		if err != nil {
			return nil, err
		}
		for _, ref := range page.ItemRefs {
			set[ref.ID] = struct{}{}
		}
		if page.Continuation == "" {
			return set, nil
		}
		continuation = page.Continuation
	}
}

func (c *FreshRSS) feedLabel(ctx context.Context, feedID int64) (string, error) {
	groups, err := c.groups.All(ctx)
	if err != nil {
		return "", err
	}
	for _, g := range groups {
		if !g.IsDeleted && g.Contains(feedID) {
			return freshrss.LabelPrefix + g.Name, nil
		}
	}
	return "", nil
}

func firstNonEmptyString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
