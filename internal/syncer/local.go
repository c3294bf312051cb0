package syncer

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"feedsync/internal/domain"
)

// Local refreshes subscribed raw feeds over HTTP when no service account is
// active. There is no far side to reconcile with: Push and the status
// reconciliation phases are no-ops, and the pull is a straight
// fetch-parse-upsert per feed, each feed's writes wrapped in one transaction.
type Local struct {
	mu         sync.Mutex
	fetcher    FeedFetcher
	feeds      FeedStore
	posts      PostStore
	settings   SettingsStore
	policy     RefreshPolicy
	tx         TransactionManager
	publisher  Publisher
	downloader FullContentDownloader
	stream     *StateStream
	logger     *slog.Logger
	now        func() time.Time
}

type LocalDeps struct {
	Fetcher    FeedFetcher
	Feeds      FeedStore
	Posts      PostStore
	Settings   SettingsStore
	Policy     RefreshPolicy
	Tx         TransactionManager
	Publisher  Publisher
	Downloader FullContentDownloader
	Logger     *slog.Logger
}

func NewLocal(deps LocalDeps) *Local {
	return &Local{
		fetcher:    deps.Fetcher,
		feeds:      deps.Feeds,
		posts:      deps.Posts,
		settings:   deps.Settings,
		policy:     deps.Policy,
		tx:         deps.Tx,
		publisher:  deps.Publisher,
		downloader: deps.Downloader,
		stream:     NewStateStream(),
		logger:     deps.Logger.With("account", domain.AccountLocal),
		now:        time.Now,
	}
}

func (c *Local) States() *StateStream { return c.stream }

func (c *Local) Pull(ctx context.Context) (*domain.SyncStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	started := c.now()
	stats := &domain.SyncStats{Account: domain.AccountLocal}
	c.stream.Publish(domain.SyncStateInProgress(progressStart))

	feeds, err := c.feeds.All(ctx)
	if err != nil {
		stats.Duration = c.now().Sub(started)
		c.stream.Publish(domain.SyncStateError(err))
		return stats, err
	}

	active := make([]domain.Feed, 0, len(feeds))
	for _, feed := range feeds {
		if !feed.IsDeleted {
			active = append(active, feed)
		}
	}

	// A failing feed must not abort the others; its error is counted and
	// the run still completes.
	for i := range active {
		if err := ctx.Err(); err != nil {
			stats.Duration = c.now().Sub(started)
			c.stream.Publish(domain.SyncStateError(err))
			return stats, err
		}
		if err := c.refreshFeed(ctx, &active[i], stats); err != nil {
			c.logger.Warn("feed refresh failed",
				"feed", active[i].Link, "error", err)
			stats.Errors++
		}
		c.stream.Publish(domain.SyncStateInProgress(float64(i+1) / float64(len(active))))
	}

	if err := c.policy.SetLastSyncedAt(ctx, started); err != nil {
		stats.Duration = c.now().Sub(started)
		c.stream.Publish(domain.SyncStateError(err))
		return stats, err
	}

	stats.Duration = c.now().Sub(started)
	c.stream.Publish(domain.SyncStateComplete())
	c.logger.Info("local refresh complete",
		slog.Int("fetched", stats.Fetched),
		slog.Int("new", stats.New),
		slog.Int("updated", stats.Updated),
		slog.Int("errors", stats.Errors),
		slog.Duration("duration", stats.Duration))
	return stats, nil
}

// PullSubscriptions refreshes feed metadata (title, icon, homepage) without
// touching posts.
func (c *Local) PullSubscriptions(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return runTracked(c.stream, func() error {
		feeds, err := c.feeds.All(ctx)
		if err != nil {
			return err
		}
		for i := range feeds {
			feed := &feeds[i]
			if feed.IsDeleted {
				continue
			}
			err := c.fetcher.Fetch(ctx, feed.Link, func(parsed *domain.ParsedFeed) error {
				return c.applyFeedMetadata(ctx, feed, parsed)
			})
			if err != nil {
				c.logger.Warn("feed metadata refresh failed",
					"feed", feed.Link, "error", err)
			}
		}
		return nil
	})
}

func (c *Local) PullFeed(ctx context.Context, feedID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return runTracked(c.stream, func() error {
		return c.pullFeed(ctx, feedID)
	})
}

// PullFeeds refreshes the given feeds sequentially under one lock acquisition.
func (c *Local) PullFeeds(ctx context.Context, feedIDs []int64) error {
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

func (c *Local) pullFeed(ctx context.Context, feedID int64) error {
	feed, err := c.feeds.ByID(ctx, feedID)
	if err != nil {
		return err
	}
	if feed == nil {
		return fmt.Errorf("feed %d not found", feedID)
	}
	stats := &domain.SyncStats{Account: domain.AccountLocal}
	return c.refreshFeed(ctx, feed, stats)
}

// Push is a no-op: the local account has no server to push to.
func (c *Local) Push(ctx context.Context) error {
	return nil
}

func (c *Local) refreshFeed(ctx context.Context, feed *domain.Feed, stats *domain.SyncStats) error {
	downloadFull, err := c.settings.DownloadFullContent(ctx)
	if err != nil {
		return err
	}

	return c.fetcher.Fetch(ctx, feed.Link, func(parsed *domain.ParsedFeed) error {
		return c.tx.WithTransaction(ctx, func(ctx context.Context) error {
			if err := c.applyFeedMetadata(ctx, feed, parsed); err != nil {
				return err
			}
			for post, err := range parsed.Posts {
				if err != nil {
					c.logger.Warn("skipping malformed item",
						"feed", feed.Link, "error", err)
					stats.Errors++
					continue
				}
				stats.Fetched++
				if err := c.upsertParsedPost(ctx, feed.ID, post, downloadFull, stats); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

// applyFeedMetadata folds parsed feed metadata into the stored feed, writing
// only when something actually changed. A feed renamed locally keeps its
// name; the parse result fills gaps and tracks upstream changes otherwise.
func (c *Local) applyFeedMetadata(ctx context.Context, feed *domain.Feed, parsed *domain.ParsedFeed) error {
	updated := *feed
	if parsed.Name != "" && feed.LastUpdatedAt == nil {
		updated.Name = parsed.Name
	}
	if parsed.HomepageLink != "" {
		updated.HomepageLink = parsed.HomepageLink
	}
	if parsed.IconURL != "" {
		updated.IconURL = parsed.IconURL
	}
	if updated == *feed {
		return nil
	}
	if err := c.feeds.Update(ctx, &updated); err != nil {
		return err
	}
	*feed = updated
	return nil
}

func (c *Local) upsertParsedPost(ctx context.Context, feedID int64, item domain.ParsedPost, downloadFull bool, stats *domain.SyncStats) error {
	if item.Link == "" {
		stats.Skipped++
		return nil
	}

	now := c.now()
	post, err := c.posts.ByLink(ctx, item.Link)
	if err != nil {
		return err
	}
	if post == nil {
		post = &domain.Post{
			FeedID:   feedID,
			Link:     item.Link,
			SyncedAt: now,
		}
	}

	title := item.Title
	imageURL, text := extractContent(item.RawContent)
	if imageURL == "" {
		imageURL = item.ImageURL
	}
	if text == "" {
		text = item.Description
	}

	if post.ID != 0 &&
		post.Title == title &&
		post.RawContent == item.RawContent &&
		post.Description == text {
		stats.Skipped++
		return nil
	}

	isNew := post.ID == 0
	post.Title = title
	post.Description = text
	post.RawContent = item.RawContent
	post.ImageURL = imageURL
	post.AudioURL = item.AudioURL
	if item.DateParsed {
		post.PublishedAt = time.UnixMilli(item.PublishedAt)
	} else if post.PublishedAt.IsZero() {
		post.PublishedAt = now
	}

	if isNew && downloadFull && c.downloader != nil {
		if body, err := c.downloader.Download(ctx, post.Link); err != nil {
			c.logger.Warn("full content download failed",
				"link", post.Link, "error", err)
		} else if body != "" {
			post.RawContent = body
		}
	}

	id, err := c.posts.Upsert(ctx, post)
	if err != nil {
		return err
	}
	post.ID = id

	if isNew {
		stats.New++
	} else {
		stats.Updated++
	}
	if err := c.publisher.Publish(ctx, post, isNew); err != nil {
		c.logger.Warn("publish failed", "post", post.Link, "error", err)
	}
	return nil
}
