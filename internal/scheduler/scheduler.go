package scheduler

import (
	"context"
	"log/slog"
	"time"

	"feedsync/internal/account"
	"feedsync/internal/domain"
)

// SessionSource resolves the currently active account to its coordinator and
// refresh policy.
type SessionSource interface {
	ActiveSession(ctx context.Context) (*account.Session, error)
}

// Scheduler drives periodic refreshes. Every tick it asks the session source
// for the active coordinator and runs a Pull when the refresh policy says
// the interval has expired. An account change on the wake channel triggers
// an immediate pass.
type Scheduler struct {
	source   SessionSource
	interval time.Duration
	timeout  time.Duration
	wake     <-chan domain.AccountKind
	logger   *slog.Logger
}

func NewScheduler(source SessionSource, interval time.Duration, wake <-chan domain.AccountKind, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		source:   source,
		interval: interval,
		timeout:  5 * time.Minute,
		wake:     wake,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSync(ctx, true)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx, false)
		case kind, ok := <-s.wake:
			if !ok {
				s.wake = nil
				continue
			}
			s.logger.Info("account changed, refreshing", "account", kind)
			s.runSync(ctx, true)
		}
	}
}

// runSync performs one gated refresh pass. force bypasses the policy check,
// used for the startup run and account changes.
func (s *Scheduler) runSync(ctx context.Context, force bool) {
	syncCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	session, err := s.source.ActiveSession(syncCtx)
	if err != nil {
		s.logger.Error("no active session", "error", err)
		return
	}

	if !force {
		due, err := session.Policy.ShouldRefresh(syncCtx)
		if err != nil {
			s.logger.Error("refresh check failed", "account", session.Kind, "error", err)
			return
		}
		if !due {
			s.logger.Debug("refresh not due", "account", session.Kind)
			return
		}
	}

	if _, err := session.Coordinator.Pull(syncCtx); err != nil {
		s.logger.Error("sync failed", "account", session.Kind, "error", err)
	}
}
