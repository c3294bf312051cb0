package syncer

import (
	"context"
	"time"

	"feedsync/internal/domain"
)

// IntervalRefreshPolicy allows a refresh once the configured interval has
// elapsed since the account's last successful sync. The watermark itself
// lives in the settings store, keyed by account.
type IntervalRefreshPolicy struct {
	settings SettingsStore
	account  domain.AccountKind
	interval time.Duration
	now      func() time.Time
}

func NewIntervalRefreshPolicy(settings SettingsStore, account domain.AccountKind, interval time.Duration) *IntervalRefreshPolicy {
	return &IntervalRefreshPolicy{
		settings: settings,
		account:  account,
		interval: interval,
		now:      time.Now,
	}
}

func (p *IntervalRefreshPolicy) ShouldRefresh(ctx context.Context) (bool, error) {
	last, err := p.settings.LastSyncedAt(ctx, p.account)
	if err != nil {
		return false, err
	}
	return p.now().Sub(last) >= p.interval, nil
}

func (p *IntervalRefreshPolicy) LastSyncedAt(ctx context.Context) (time.Time, error) {
	return p.settings.LastSyncedAt(ctx, p.account)
}

func (p *IntervalRefreshPolicy) SetLastSyncedAt(ctx context.Context, t time.Time) error {
	return p.settings.SetLastSyncedAt(ctx, p.account, t)
}
