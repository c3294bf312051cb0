package syncer

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"feedsync/internal/domain"
	"feedsync/internal/syncer/mocks"
)

// passthroughTx satisfies TransactionManager without a database.
type passthroughTx struct{}

func (passthroughTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type LocalSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	fetcher    *mocks.MockFeedFetcher
	publisher  *mocks.MockPublisher
	downloader *mocks.MockFullContentDownloader

	feeds    *fakeFeedStore
	posts    *fakePostStore
	settings *fakeSettingsStore

	coord *Local
}

func (s *LocalSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.fetcher = mocks.NewMockFeedFetcher(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)
	s.downloader = mocks.NewMockFullContentDownloader(s.ctrl)

	s.feeds = newFakeFeedStore()
	s.posts = newFakePostStore()
	s.settings = newFakeSettingsStore()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.coord = NewLocal(LocalDeps{
		Fetcher:    s.fetcher,
		Feeds:      s.feeds,
		Posts:      s.posts,
		Settings:   s.settings,
		Policy:     NewIntervalRefreshPolicy(s.settings, domain.AccountLocal, 15*time.Minute),
		Tx:         passthroughTx{},
		Publisher:  s.publisher,
		Downloader: s.downloader,
		Logger:     logger,
	})
}

func (s *LocalSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestLocalSuite(t *testing.T) {
	suite.Run(t, new(LocalSuite))
}

func parsedFeed(name string, items ...domain.ParsedPost) *domain.ParsedFeed {
	return &domain.ParsedFeed{
		Name:         name,
		HomepageLink: "https://example.com",
		Link:         "https://example.com/rss",
		Posts: func(yield func(domain.ParsedPost, error) bool) {
			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}
		},
	}
}

func parsedItem(slug, title string) domain.ParsedPost {
	return domain.ParsedPost{
		Title:       title,
		Link:        "https://example.com/" + slug,
		RawContent:  "<p>body of " + title + "</p>",
		PublishedAt: time.Date(2023, 5, 25, 9, 0, 0, 0, time.UTC).UnixMilli(),
		DateParsed:  true,
	}
}

func (s *LocalSuite) expectFetch(feedURL string, parsed *domain.ParsedFeed) *gomock.Call {
	return s.fetcher.EXPECT().
		Fetch(gomock.Any(), feedURL, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, consume func(*domain.ParsedFeed) error) error {
			return consume(parsed)
		})
}

func (s *LocalSuite) TestPull_IngestsNewPosts() {
	feedID := s.feeds.seed(domain.Feed{Link: "https://example.com/rss"})

	s.expectFetch("https://example.com/rss",
		parsedFeed("Example", parsedItem("one", "first"), parsedItem("two", "second")))
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), true).Times(2).Return(nil)

	stats, err := s.coord.Pull(context.Background())
	s.Require().NoError(err)

	s.Equal(2, stats.Fetched)
	s.Equal(2, stats.New)
	s.Equal(0, stats.Errors)
	s.Equal(2, s.posts.count())

	post, err := s.posts.ByLink(context.Background(), "https://example.com/one")
	s.Require().NoError(err)
	s.Require().NotNil(post)
	s.Equal(feedID, post.FeedID)
	s.Equal("first", post.Title)
	s.Equal("body of first", post.Description)
	s.True(post.PublishedAt.Equal(time.Date(2023, 5, 25, 9, 0, 0, 0, time.UTC)))
	s.False(post.IsDirty())

	last, err := s.settings.LastSyncedAt(context.Background(), domain.AccountLocal)
	s.Require().NoError(err)
	s.False(last.IsZero())
}

func (s *LocalSuite) TestPull_SecondRunSkipsUnchangedPosts() {
	s.feeds.seed(domain.Feed{Link: "https://example.com/rss"})

	feed := func() *domain.ParsedFeed {
		return parsedFeed("Example", parsedItem("one", "first"), parsedItem("two", "second"))
	}
	s.expectFetch("https://example.com/rss", feed())
	s.expectFetch("https://example.com/rss", feed())
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), true).Times(2).Return(nil)

	_, err := s.coord.Pull(context.Background())
	s.Require().NoError(err)

	stats, err := s.coord.Pull(context.Background())
	s.Require().NoError(err)
	s.Equal(0, stats.New)
	s.Equal(0, stats.Updated)
	s.Equal(2, stats.Skipped)
	s.Equal(2, s.posts.count())
}

func (s *LocalSuite) TestPull_UpdatesFeedMetadataUnlessRenamedLocally() {
	plainID := s.feeds.seed(domain.Feed{Link: "https://example.com/rss"})
	renamedAt := time.Now().Add(-time.Hour)
	renamedID := s.feeds.seed(domain.Feed{
		Link:          "https://other.example.com/rss",
		Name:          "My Name",
		LastUpdatedAt: &renamedAt,
	})

	s.expectFetch("https://example.com/rss", parsedFeed("Example"))
	other := parsedFeed("Upstream Name")
	other.HomepageLink = "https://other.example.com"
	s.expectFetch("https://other.example.com/rss", other)

	_, err := s.coord.Pull(context.Background())
	s.Require().NoError(err)

	plain, err := s.feeds.ByID(context.Background(), plainID)
	s.Require().NoError(err)
	s.Equal("Example", plain.Name)
	s.Equal("https://example.com", plain.HomepageLink)

	renamed, err := s.feeds.ByID(context.Background(), renamedID)
	s.Require().NoError(err)
	s.Equal("My Name", renamed.Name)
	s.Equal("https://other.example.com", renamed.HomepageLink)
}

func (s *LocalSuite) TestPull_FailingFeedDoesNotAbortOthers() {
	s.feeds.seed(domain.Feed{Link: "https://bad.example.com/rss"})
	s.feeds.seed(domain.Feed{Link: "https://example.com/rss"})

	s.fetcher.EXPECT().
		Fetch(gomock.Any(), "https://bad.example.com/rss", gomock.Any()).
		Return(errors.New("connection refused"))
	s.expectFetch("https://example.com/rss", parsedFeed("Example", parsedItem("one", "first")))
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), true).Return(nil)

	stats, err := s.coord.Pull(context.Background())
	s.Require().NoError(err)
	s.Equal(1, stats.Errors)
	s.Equal(1, stats.New)
	s.Equal(domain.SyncComplete, s.coord.States().Current().Kind)
}

func (s *LocalSuite) TestPull_SkipsDeletedFeeds() {
	s.feeds.seed(domain.Feed{Link: "https://example.com/rss", IsDeleted: true})

	stats, err := s.coord.Pull(context.Background())
	s.Require().NoError(err)
	s.Equal(0, stats.Fetched)
}

func (s *LocalSuite) TestPull_MalformedItemIsCounted() {
	s.feeds.seed(domain.Feed{Link: "https://example.com/rss"})

	feed := parsedFeed("Example")
	feed.Posts = func(yield func(domain.ParsedPost, error) bool) {
		if !yield(parsedItem("one", "first"), nil) {
			return
		}
		yield(domain.ParsedPost{}, errors.New("missing title and description"))
	}
	s.expectFetch("https://example.com/rss", feed)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), true).Return(nil)

	stats, err := s.coord.Pull(context.Background())
	s.Require().NoError(err)
	s.Equal(1, stats.New)
	s.Equal(1, stats.Errors)
}

func (s *LocalSuite) TestPull_DownloadsFullContentForNewPosts() {
	s.settings.downloadFull = true
	s.feeds.seed(domain.Feed{Link: "https://example.com/rss"})

	s.expectFetch("https://example.com/rss", parsedFeed("Example", parsedItem("one", "first")))
	s.downloader.EXPECT().
		Download(gomock.Any(), "https://example.com/one").
		Return("# first\n\nfull article body", nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), true).Return(nil)

	_, err := s.coord.Pull(context.Background())
	s.Require().NoError(err)

	post, err := s.posts.ByLink(context.Background(), "https://example.com/one")
	s.Require().NoError(err)
	s.Require().NotNil(post)
	s.Equal("# first\n\nfull article body", post.RawContent)
}

func (s *LocalSuite) TestPullFeed_RefreshesOneFeed() {
	s.feeds.seed(domain.Feed{Link: "https://example.com/rss"})
	target := s.feeds.seed(domain.Feed{Link: "https://other.example.com/rss"})

	other := parsedFeed("Other", parsedItem("one", "first"))
	other.Link = "https://other.example.com/rss"
	s.expectFetch("https://other.example.com/rss", other)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), true).Return(nil)

	s.Require().NoError(s.coord.PullFeed(context.Background(), target))
	s.Equal(1, s.posts.count())
}

func (s *LocalSuite) TestPullFeeds_RefreshesGivenFeeds() {
	first := s.feeds.seed(domain.Feed{Link: "https://example.com/rss"})
	second := s.feeds.seed(domain.Feed{Link: "https://other.example.com/rss"})
	s.feeds.seed(domain.Feed{Link: "https://untouched.example.com/rss"})

	other := parsedFeed("Other", parsedItem("two", "second"))
	other.Link = "https://other.example.com/rss"
	s.expectFetch("https://example.com/rss", parsedFeed("Example", parsedItem("one", "first")))
	s.expectFetch("https://other.example.com/rss", other)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), true).Return(nil).Times(2)

	s.Require().NoError(s.coord.PullFeeds(context.Background(), []int64{first, second}))
	s.Equal(2, s.posts.count())
	s.Equal(domain.SyncComplete, s.coord.States().Current().Kind)
}

func (s *LocalSuite) TestPush_IsNoOp() {
	s.Require().NoError(s.coord.Push(context.Background()))
}
