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
	"feedsync/internal/remote/miniflux"
	"feedsync/internal/syncer/mocks"
)

type MinifluxSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	remote    *mocks.MockMinifluxRemote
	publisher *mocks.MockPublisher

	feeds    *fakeFeedStore
	groups   *fakeGroupStore
	posts    *fakePostStore
	settings *fakeSettingsStore

	coord *Miniflux
}

func (s *MinifluxSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.remote = mocks.NewMockMinifluxRemote(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.feeds = newFakeFeedStore()
	s.groups = newFakeGroupStore()
	s.posts = newFakePostStore()
	s.settings = newFakeSettingsStore()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.coord = NewMiniflux(MinifluxDeps{
		Remote:    s.remote,
		Feeds:     s.feeds,
		Groups:    s.groups,
		Posts:     s.posts,
		Settings:  s.settings,
		Policy:    NewIntervalRefreshPolicy(s.settings, domain.AccountMiniflux, 15*time.Minute),
		Publisher: s.publisher,
		Logger:    logger,
		PageSize:  100,
	})
}

func (s *MinifluxSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestMinifluxSuite(t *testing.T) {
	suite.Run(t, new(MinifluxSuite))
}

func minifluxFeed() miniflux.Feed {
	return miniflux.Feed{
		ID:      7,
		FeedURL: "https://example.com/rss",
		SiteURL: "https://example.com",
		Title:   "Example",
	}
}

func minifluxEntry(id int64, title, status string) miniflux.Entry {
	return miniflux.Entry{
		ID:          id,
		FeedID:      7,
		Status:      status,
		URL:         "https://example.com/post/" + title,
		Title:       title,
		Content:     "<p>body of " + title + "</p>",
		PublishedAt: time.Date(2023, 5, 25, 9, 0, 0, 0, time.UTC),
	}
}

// Full sync hits /v1/entries three times even when nothing is dirty: the
// starred set before the push, the windowed pull, and the unread plus
// starred sets during reconciliation.
func (s *MinifluxSuite) expectStatusSets(unread, starred []miniflux.Entry, starredTimes int) {
	s.remote.EXPECT().
		Entries(gomock.Any(), miniflux.EntryQuery{Status: miniflux.StatusUnread, Limit: 100}).
		Return(&miniflux.EntriesPage{Total: len(unread), Entries: unread}, nil)
	s.remote.EXPECT().
		Entries(gomock.Any(), miniflux.EntryQuery{Starred: true, Limit: 100}).
		Return(&miniflux.EntriesPage{Total: len(starred), Entries: starred}, nil).
		Times(starredTimes)
}

func (s *MinifluxSuite) TestPull_NewEntries() {
	ctx := context.Background()
	start := time.Now().Add(-time.Hour)
	s.Require().NoError(s.settings.SetLastSyncedAt(ctx, domain.AccountMiniflux, start))

	s.remote.EXPECT().Feeds(gomock.Any()).Return([]miniflux.Feed{minifluxFeed()}, nil)
	s.remote.EXPECT().Categories(gomock.Any()).Return(nil, nil)

	entries := []miniflux.Entry{
		minifluxEntry(2, "second", miniflux.StatusUnread),
		minifluxEntry(1, "first", miniflux.StatusRead),
	}
	s.remote.EXPECT().
		Entries(gomock.Any(), miniflux.EntryQuery{After: start.Unix(), Limit: 100}).
		Return(&miniflux.EntriesPage{Total: 2, Entries: entries}, nil)
	s.expectStatusSets([]miniflux.Entry{entries[0]}, nil, 2)

	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), true).Return(nil).Times(2)

	stats, err := s.coord.Pull(ctx)

	s.NoError(err)
	s.Equal(2, stats.Fetched)
	s.Equal(2, stats.New)

	read, err := s.posts.ByRemoteID(ctx, "1")
	s.NoError(err)
	s.Require().NotNil(read)
	s.True(read.Read)

	watermark, err := s.settings.LastSyncedAt(ctx, domain.AccountMiniflux)
	s.NoError(err)
	s.True(watermark.After(start))
}

func (s *MinifluxSuite) TestPull_WatermarkHoldsWithoutNewEntries() {
	ctx := context.Background()
	start := time.Now().Add(-time.Hour)
	s.Require().NoError(s.settings.SetLastSyncedAt(ctx, domain.AccountMiniflux, start))

	s.remote.EXPECT().Feeds(gomock.Any()).Return(nil, nil)
	s.remote.EXPECT().Categories(gomock.Any()).Return(nil, nil)
	s.remote.EXPECT().
		Entries(gomock.Any(), miniflux.EntryQuery{After: start.Unix(), Limit: 100}).
		Return(&miniflux.EntriesPage{}, nil)
	s.expectStatusSets(nil, nil, 2)

	stats, err := s.coord.Pull(ctx)

	s.NoError(err)
	s.False(stats.HasNewArticles())

	watermark, err := s.settings.LastSyncedAt(ctx, domain.AccountMiniflux)
	s.NoError(err)
	s.True(watermark.Equal(start))
}

func (s *MinifluxSuite) TestPull_NewSubscriptionWidensWindow() {
	ctx := context.Background()
	start := time.Now().Add(-time.Hour)
	s.Require().NoError(s.settings.SetLastSyncedAt(ctx, domain.AccountMiniflux, start))

	s.feeds.seed(domain.Feed{Link: "https://example.com/rss", Name: "Example"})

	s.remote.EXPECT().CreateFeed(gomock.Any(), "https://example.com/rss", int64(0)).Return(int64(7), nil)
	s.remote.EXPECT().Feeds(gomock.Any()).Return([]miniflux.Feed{minifluxFeed()}, nil)
	s.remote.EXPECT().Categories(gomock.Any()).Return(nil, nil)

	// The backlog window opens two hours before the watermark.
	s.remote.EXPECT().
		Entries(gomock.Any(), miniflux.EntryQuery{After: start.Add(-2 * time.Hour).Unix(), Limit: 100}).
		Return(&miniflux.EntriesPage{}, nil)
	s.expectStatusSets(nil, nil, 2)

	_, err := s.coord.Pull(ctx)
	s.NoError(err)

	feed, err := s.feeds.ByRemoteID(ctx, "7")
	s.NoError(err)
	s.NotNil(feed)
}

func (s *MinifluxSuite) TestPull_TogglesBookmarkOnlyWhenDiffers() {
	ctx := context.Background()
	now := time.Now()
	start := now.Add(-time.Hour)
	s.Require().NoError(s.settings.SetLastSyncedAt(ctx, domain.AccountMiniflux, start))

	s.feeds.seed(domain.Feed{RemoteID: strPtr("7"), Link: "https://example.com/rss", Name: "Example"})
	bookmarkedID := "1"
	alreadyStarredID := "2"
	s.posts.seed(domain.Post{
		FeedID: 1, RemoteID: &bookmarkedID, Link: "https://example.com/post/first",
		Read: true, Bookmarked: true, UpdatedAt: now, SyncedAt: start,
	})
	s.posts.seed(domain.Post{
		FeedID: 1, RemoteID: &alreadyStarredID, Link: "https://example.com/post/second",
		Read: true, Bookmarked: true, UpdatedAt: now, SyncedAt: start,
	})

	starredEntry := minifluxEntry(2, "second", miniflux.StatusRead)
	starredEntry.Starred = true

	// Entry 2 is already starred remotely, so only entry 1 gets toggled.
	// By the time statuses are reconciled the server reports both starred.
	firstStarred := minifluxEntry(1, "first", miniflux.StatusRead)
	firstStarred.Starred = true
	s.remote.EXPECT().
		Entries(gomock.Any(), miniflux.EntryQuery{Starred: true, Limit: 100}).
		Return(&miniflux.EntriesPage{Total: 1, Entries: []miniflux.Entry{starredEntry}}, nil)
	s.remote.EXPECT().
		Entries(gomock.Any(), miniflux.EntryQuery{Starred: true, Limit: 100}).
		Return(&miniflux.EntriesPage{Total: 2, Entries: []miniflux.Entry{firstStarred, starredEntry}}, nil)
	s.remote.EXPECT().UpdateEntriesStatus(gomock.Any(), []int64{1, 2}, miniflux.StatusRead).Return(nil)
	s.remote.EXPECT().ToggleBookmark(gomock.Any(), int64(1)).Return(nil)

	s.remote.EXPECT().Feeds(gomock.Any()).Return([]miniflux.Feed{minifluxFeed()}, nil)
	s.remote.EXPECT().Categories(gomock.Any()).Return(nil, nil)
	s.remote.EXPECT().
		Entries(gomock.Any(), miniflux.EntryQuery{After: start.Unix(), Limit: 100}).
		Return(&miniflux.EntriesPage{}, nil)
	s.remote.EXPECT().
		Entries(gomock.Any(), miniflux.EntryQuery{Status: miniflux.StatusUnread, Limit: 100}).
		Return(&miniflux.EntriesPage{}, nil)

	_, err := s.coord.Pull(ctx)
	s.NoError(err)

	first := s.posts.get(1)
	second := s.posts.get(2)
	s.False(first.IsDirty())
	s.False(second.IsDirty())
}

func (s *MinifluxSuite) TestPull_CreatesLocalGroupOnServer() {
	ctx := context.Background()
	start := time.Now().Add(-time.Hour)
	s.Require().NoError(s.settings.SetLastSyncedAt(ctx, domain.AccountMiniflux, start))

	groupID := s.groups.seed(domain.FeedGroup{Name: "Tech"})

	s.remote.EXPECT().CreateCategory(gomock.Any(), "Tech").Return(&miniflux.Category{ID: 3, Title: "Tech"}, nil)
	s.remote.EXPECT().Feeds(gomock.Any()).Return(nil, nil)
	s.remote.EXPECT().Categories(gomock.Any()).Return([]miniflux.Category{{ID: 3, Title: "Tech"}}, nil)
	s.remote.EXPECT().
		Entries(gomock.Any(), miniflux.EntryQuery{After: start.Unix(), Limit: 100}).
		Return(&miniflux.EntriesPage{}, nil)
	s.expectStatusSets(nil, nil, 2)

	_, err := s.coord.Pull(ctx)
	s.NoError(err)

	got := s.groups.get(groupID)
	s.Require().NotNil(got.RemoteID)
	s.Equal("3", *got.RemoteID)
}

func (s *MinifluxSuite) TestPull_RemovesFeedDeletedRemotely() {
	ctx := context.Background()
	start := time.Now().Add(-time.Hour)
	s.Require().NoError(s.settings.SetLastSyncedAt(ctx, domain.AccountMiniflux, start))

	goneID := s.feeds.seed(domain.Feed{RemoteID: strPtr("9"), Link: "https://gone.example/rss"})
	localID := s.feeds.seed(domain.Feed{Link: "https://local.example/rss"})

	// The local-only feed is pushed, then both tracked feeds are compared
	// against the server's list; only the orphaned remote id disappears.
	s.remote.EXPECT().CreateFeed(gomock.Any(), "https://local.example/rss", int64(0)).Return(int64(11), nil)
	s.remote.EXPECT().Feeds(gomock.Any()).Return([]miniflux.Feed{{
		ID: 11, FeedURL: "https://local.example/rss", Title: "Local",
	}}, nil)
	s.remote.EXPECT().Categories(gomock.Any()).Return(nil, nil)
	s.remote.EXPECT().
		Entries(gomock.Any(), miniflux.EntryQuery{After: start.Add(-2 * time.Hour).Unix(), Limit: 100}).
		Return(&miniflux.EntriesPage{}, nil)
	s.expectStatusSets(nil, nil, 2)

	_, err := s.coord.Pull(ctx)
	s.NoError(err)

	gone, err := s.feeds.ByID(ctx, goneID)
	s.NoError(err)
	s.Nil(gone)

	local, err := s.feeds.ByID(ctx, localID)
	s.NoError(err)
	s.NotNil(local)
}

func (s *MinifluxSuite) TestPullFeed_ScopedToSingleFeed() {
	ctx := context.Background()
	now := time.Now()
	start := now.Add(-time.Hour)
	s.Require().NoError(s.settings.SetLastSyncedAt(ctx, domain.AccountMiniflux, start))

	targetID := s.feeds.seed(domain.Feed{RemoteID: strPtr("7"), Link: "https://example.com/rss"})
	otherID := s.feeds.seed(domain.Feed{RemoteID: strPtr("9"), Link: "https://other.example/rss"})

	// A dirty post in another feed stays out of this feed's push and keeps
	// its pending change.
	staleRemote := "300"
	s.posts.seed(domain.Post{
		FeedID: otherID, RemoteID: &staleRemote, Link: "https://other.example/post/stale",
		Read: true, UpdatedAt: now, SyncedAt: start,
	})

	entry := minifluxEntry(101, "first", miniflux.StatusUnread)
	s.remote.EXPECT().
		FeedEntries(gomock.Any(), int64(7), miniflux.EntryQuery{After: start.Add(-2 * time.Hour).Unix(), Limit: 100}).
		Return(&miniflux.EntriesPage{Total: 1, Entries: []miniflux.Entry{entry}}, nil)
	s.expectStatusSets([]miniflux.Entry{entry}, nil, 2)

	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), true).Return(nil)

	s.NoError(s.coord.PullFeed(ctx, targetID))

	pulled, err := s.posts.ByRemoteID(ctx, "101")
	s.NoError(err)
	s.Require().NotNil(pulled)
	s.Equal(targetID, pulled.FeedID)

	stale, err := s.posts.ByRemoteID(ctx, staleRemote)
	s.NoError(err)
	s.Require().NotNil(stale)
	s.True(stale.IsDirty())

	s.Equal(domain.SyncComplete, s.coord.States().Current().Kind)
}

func (s *MinifluxSuite) TestPush_FailurePublishesErrorState() {
	ctx := context.Background()

	s.remote.EXPECT().
		Entries(gomock.Any(), miniflux.EntryQuery{Starred: true, Limit: 100}).
		Return(nil, errors.New("server unavailable"))

	err := s.coord.Push(ctx)
	s.Error(err)

	state := s.coord.States().Current()
	s.Equal(domain.SyncError, state.Kind)
	s.ErrorContains(state.Cause, "server unavailable")
}
