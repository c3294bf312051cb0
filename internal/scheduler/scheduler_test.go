package scheduler

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"feedsync/internal/account"
	"feedsync/internal/domain"
	"feedsync/internal/syncer"
)

type countingCoordinator struct {
	stream *syncer.StateStream
	pulls  atomic.Int32
}

func (c *countingCoordinator) Pull(context.Context) (*domain.SyncStats, error) {
	c.pulls.Add(1)
	return &domain.SyncStats{}, nil
}
func (c *countingCoordinator) PullFeed(context.Context, int64) error { return nil }

func (c *countingCoordinator) PullFeeds(context.Context, []int64) error { return nil }

func (c *countingCoordinator) PullSubscriptions(context.Context) error { return nil }

func (c *countingCoordinator) Push(context.Context) error { return nil }

func (c *countingCoordinator) States() *syncer.StateStream { return c.stream }

type stubPolicy struct {
	due atomic.Bool
}

func (p *stubPolicy) ShouldRefresh(context.Context) (bool, error) { return p.due.Load(), nil }

func (p *stubPolicy) LastSyncedAt(context.Context) (time.Time, error) { return time.Time{}, nil }

func (p *stubPolicy) SetLastSyncedAt(context.Context, time.Time) error { return nil }

type stubSource struct {
	session *account.Session
}

func (s *stubSource) ActiveSession(context.Context) (*account.Session, error) {
	return s.session, nil
}

type SchedulerSuite struct {
	suite.Suite

	coordinator *countingCoordinator
	policy      *stubPolicy
	wake        chan domain.AccountKind
	scheduler   *Scheduler
}

func (s *SchedulerSuite) SetupTest() {
	s.coordinator = &countingCoordinator{stream: syncer.NewStateStream()}
	s.policy = &stubPolicy{}
	s.wake = make(chan domain.AccountKind, 1)

	source := &stubSource{session: &account.Session{
		Kind:        domain.AccountLocal,
		Coordinator: s.coordinator,
		Policy:      s.policy,
	}}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.scheduler = NewScheduler(source, 20*time.Millisecond, s.wake, logger)
}

func TestSchedulerSuite(t *testing.T) {
	suite.Run(t, new(SchedulerSuite))
}

func (s *SchedulerSuite) waitForPulls(want int32) {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.coordinator.pulls.Load() >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	s.Failf("timeout", "expected %d pulls, got %d", want, s.coordinator.pulls.Load())
}

func (s *SchedulerSuite) TestRunsImmediatelyOnStart() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.scheduler.Start(ctx)

	s.waitForPulls(1)
}

func (s *SchedulerSuite) TestTicksOnlyWhenRefreshDue() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.scheduler.Start(ctx)

	s.waitForPulls(1)
	time.Sleep(80 * time.Millisecond)
	s.EqualValues(1, s.coordinator.pulls.Load())

	s.policy.due.Store(true)
	s.waitForPulls(2)
}

func (s *SchedulerSuite) TestWakeTriggersImmediateRun() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.scheduler.Start(ctx)

	s.waitForPulls(1)
	s.wake <- domain.AccountFreshRSS
	s.waitForPulls(2)
}
