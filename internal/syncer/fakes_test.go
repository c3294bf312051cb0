package syncer

import (
	"context"
	"sort"
	"sync"
	"time"

	"feedsync/internal/domain"
)

// Stateful in-memory stores. Scenario tests need real persistence semantics
// (a create in phase one must be visible in phase three), which per-call
// mock expectations cannot express.

type fakeFeedStore struct {
	mu     sync.Mutex
	nextID int64
	feeds  map[int64]*domain.Feed
}

func newFakeFeedStore() *fakeFeedStore {
	return &fakeFeedStore{nextID: 1, feeds: make(map[int64]*domain.Feed)}
}

func (s *fakeFeedStore) All(_ context.Context) ([]domain.Feed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Feed, 0, len(s.feeds))
	for _, f := range s.feeds {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeFeedStore) ByID(_ context.Context, id int64) (*domain.Feed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.feeds[id]; ok {
		cp := *f
		return &cp, nil
	}
	return nil, nil
}

func (s *fakeFeedStore) ByLink(_ context.Context, link string) (*domain.Feed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.feeds {
		if f.Link == link {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeFeedStore) ByRemoteID(_ context.Context, remoteID string) (*domain.Feed, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.feeds {
		if f.RemoteID != nil && *f.RemoteID == remoteID {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeFeedStore) Create(_ context.Context, feed *domain.Feed) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *feed
	cp.ID = s.nextID
	s.nextID++
	s.feeds[cp.ID] = &cp
	return cp.ID, nil
}

func (s *fakeFeedStore) Update(_ context.Context, feed *domain.Feed) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *feed
	s.feeds[cp.ID] = &cp
	return nil
}

func (s *fakeFeedStore) SetRemoteID(_ context.Context, id int64, remoteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.feeds[id]; ok {
		f.RemoteID = &remoteID
	}
	return nil
}

func (s *fakeFeedStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.feeds, id)
	return nil
}

func (s *fakeFeedStore) seed(feed domain.Feed) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if feed.ID == 0 {
		feed.ID = s.nextID
		s.nextID++
	} else if feed.ID >= s.nextID {
		s.nextID = feed.ID + 1
	}
	s.feeds[feed.ID] = &feed
	return feed.ID
}

type fakeGroupStore struct {
	mu     sync.Mutex
	nextID int64
	groups map[int64]*domain.FeedGroup
}

func newFakeGroupStore() *fakeGroupStore {
	return &fakeGroupStore{nextID: 1, groups: make(map[int64]*domain.FeedGroup)}
}

func (s *fakeGroupStore) All(_ context.Context) ([]domain.FeedGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.FeedGroup, 0, len(s.groups))
	for _, g := range s.groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeGroupStore) ByRemoteID(_ context.Context, remoteID string) (*domain.FeedGroup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.groups {
		if g.RemoteID != nil && *g.RemoteID == remoteID {
			cp := *g
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeGroupStore) Create(_ context.Context, group *domain.FeedGroup) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *group
	cp.ID = s.nextID
	s.nextID++
	s.groups[cp.ID] = &cp
	return cp.ID, nil
}

func (s *fakeGroupStore) Update(_ context.Context, group *domain.FeedGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *group
	s.groups[cp.ID] = &cp
	return nil
}

func (s *fakeGroupStore) MarkDeleted(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok := s.groups[id]; ok {
		g.IsDeleted = true
	}
	return nil
}

func (s *fakeGroupStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.groups, id)
	return nil
}

func (s *fakeGroupStore) AddFeed(_ context.Context, groupID, feedID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.groups[groupID]
	if !ok {
		return nil
	}
	for _, id := range g.FeedIDs {
		if id == feedID {
			return nil
		}
	}
	g.FeedIDs = append(g.FeedIDs, feedID)
	return nil
}

func (s *fakeGroupStore) RemoveFeedFromOthers(_ context.Context, feedID, keepGroupID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.groups {
		if g.ID == keepGroupID {
			continue
		}
		kept := g.FeedIDs[:0]
		for _, id := range g.FeedIDs {
			if id != feedID {
				kept = append(kept, id)
			}
		}
		g.FeedIDs = kept
	}
	return nil
}

func (s *fakeGroupStore) seed(group domain.FeedGroup) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if group.ID == 0 {
		group.ID = s.nextID
		s.nextID++
	} else if group.ID >= s.nextID {
		s.nextID = group.ID + 1
	}
	s.groups[group.ID] = &group
	return group.ID
}

func (s *fakeGroupStore) get(id int64) domain.FeedGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g, ok := s.groups[id]; ok {
		return *g
	}
	return domain.FeedGroup{}
}

type fakePostStore struct {
	mu     sync.Mutex
	nextID int64
	posts  map[int64]*domain.Post
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{nextID: 1, posts: make(map[int64]*domain.Post)}
}

func (s *fakePostStore) ByRemoteID(_ context.Context, remoteID string) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.RemoteID != nil && *p.RemoteID == remoteID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakePostStore) ByLink(_ context.Context, link string) (*domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.posts {
		if p.Link == link {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakePostStore) Upsert(_ context.Context, post *domain.Post) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *post
	if cp.ID == 0 {
		cp.ID = s.nextID
		s.nextID++
	}
	s.posts[cp.ID] = &cp
	return cp.ID, nil
}

func (s *fakePostStore) SetRemoteID(_ context.Context, id int64, remoteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.posts[id]; ok {
		p.RemoteID = &remoteID
	}
	return nil
}

func (s *fakePostStore) UpdateStatus(_ context.Context, id int64, read, bookmarked bool, syncedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.posts[id]; ok {
		p.Read = read
		p.Bookmarked = bookmarked
		p.UpdatedAt = syncedAt
		p.SyncedAt = syncedAt
	}
	return nil
}

func (s *fakePostStore) MarkSynced(_ context.Context, ids []int64, syncedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if p, ok := s.posts[id]; ok {
			p.SyncedAt = syncedAt
		}
	}
	return nil
}

func (s *fakePostStore) PendingChanges(_ context.Context, limit, offset int) ([]domain.Post, error) {
	return s.page(limit, offset, func(p *domain.Post) bool { return p.IsDirty() })
}

func (s *fakePostStore) PendingChangesForFeed(_ context.Context, feedID int64, limit, offset int) ([]domain.Post, error) {
	return s.page(limit, offset, func(p *domain.Post) bool { return p.FeedID == feedID && p.IsDirty() })
}

func (s *fakePostStore) WithRemoteID(_ context.Context, limit, offset int) ([]domain.Post, error) {
	return s.page(limit, offset, func(p *domain.Post) bool { return p.RemoteID != nil })
}

func (s *fakePostStore) page(limit, offset int, match func(*domain.Post) bool) ([]domain.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []domain.Post
	for _, p := range s.posts {
		if match(p) {
			all = append(all, *p)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if offset >= len(all) {
		return nil, nil
	}
	end := min(offset+limit, len(all))
	return all[offset:end], nil
}

func (s *fakePostStore) seed(post domain.Post) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if post.ID == 0 {
		post.ID = s.nextID
		s.nextID++
	} else if post.ID >= s.nextID {
		s.nextID = post.ID + 1
	}
	s.posts[post.ID] = &post
	return post.ID
}

func (s *fakePostStore) get(id int64) domain.Post {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.posts[id]; ok {
		return *p
	}
	return domain.Post{}
}

func (s *fakePostStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.posts)
}

type fakeSettingsStore struct {
	mu           sync.Mutex
	lastSynced   map[domain.AccountKind]time.Time
	downloadFull bool
	active       domain.AccountKind
	creds        map[domain.AccountKind]*domain.Credentials
}

func newFakeSettingsStore() *fakeSettingsStore {
	return &fakeSettingsStore{
		lastSynced: make(map[domain.AccountKind]time.Time),
		creds:      make(map[domain.AccountKind]*domain.Credentials),
		active:     domain.AccountLocal,
	}
}

func (s *fakeSettingsStore) LastSyncedAt(_ context.Context, account domain.AccountKind) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSynced[account], nil
}

func (s *fakeSettingsStore) SetLastSyncedAt(_ context.Context, account domain.AccountKind, t time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSynced[account] = t
	return nil
}

func (s *fakeSettingsStore) DownloadFullContent(_ context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.downloadFull, nil
}

func (s *fakeSettingsStore) ActiveAccount(_ context.Context) (domain.AccountKind, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active, nil
}

func (s *fakeSettingsStore) SetActiveAccount(_ context.Context, account domain.AccountKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = account
	return nil
}

func (s *fakeSettingsStore) Credentials(_ context.Context, kind domain.AccountKind) (*domain.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.creds[kind], nil
}

func (s *fakeSettingsStore) SetCredentials(_ context.Context, creds *domain.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds[creds.Kind] = creds
	return nil
}

func (s *fakeSettingsStore) ClearCredentials(_ context.Context, kind domain.AccountKind) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.creds, kind)
	return nil
}
