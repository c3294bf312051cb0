// Package account tracks which backend the syncer is signed in to and owns
// the sign-in/sign-out lifecycle around the stored credentials.
package account

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"feedsync/internal/domain"
	"feedsync/internal/syncer"
)

// Wiper removes all locally synchronized data. It runs on sign-out so the
// next account starts from a clean slate.
type Wiper interface {
	Wipe(ctx context.Context) error
}

// Session pairs a registered coordinator with the refresh policy that gates
// it.
type Session struct {
	Kind        domain.AccountKind
	Coordinator syncer.Coordinator
	Policy      syncer.RefreshPolicy
}

// Provider resolves the active account to its session and notifies observers
// when the account changes. The settings store is the source of truth for
// which account is active; the provider only caches registrations.
type Provider struct {
	settings syncer.SettingsStore
	wiper    Wiper
	logger   *slog.Logger

	mu        sync.Mutex
	sessions  map[domain.AccountKind]*Session
	observers map[int]chan domain.AccountKind
	nextID    int
}

func NewProvider(settings syncer.SettingsStore, wiper Wiper, logger *slog.Logger) *Provider {
	return &Provider{
		settings:  settings,
		wiper:     wiper,
		logger:    logger.With("component", "account"),
		sessions:  make(map[domain.AccountKind]*Session),
		observers: make(map[int]chan domain.AccountKind),
	}
}

// Register makes a coordinator available under the given account kind.
// Registration happens once at startup, before the scheduler runs.
func (p *Provider) Register(kind domain.AccountKind, coordinator syncer.Coordinator, policy syncer.RefreshPolicy) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sessions[kind] = &Session{Kind: kind, Coordinator: coordinator, Policy: policy}
}

// Active returns the signed-in account kind.
func (p *Provider) Active(ctx context.Context) (domain.AccountKind, error) {
	return p.settings.ActiveAccount(ctx)
}

// IsActive reports whether the given account kind is the signed-in one.
func (p *Provider) IsActive(ctx context.Context, kind domain.AccountKind) (bool, error) {
	active, err := p.settings.ActiveAccount(ctx)
	if err != nil {
		return false, err
	}
	return active == kind, nil
}

// ActiveSession resolves the active account to its registered session.
func (p *Provider) ActiveSession(ctx context.Context) (*Session, error) {
	kind, err := p.settings.ActiveAccount(ctx)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	session, ok := p.sessions[kind]
	p.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("no coordinator registered for account %q", kind)
	}
	return session, nil
}

// Credentials returns the stored credentials for a service account, or
// (nil, nil) when none are stored.
func (p *Provider) Credentials(ctx context.Context, kind domain.AccountKind) (*domain.Credentials, error) {
	return p.settings.Credentials(ctx, kind)
}

// SignIn stores the credentials and switches the active account to their
// kind. The caller is expected to have validated them against the service
// first.
func (p *Provider) SignIn(ctx context.Context, creds *domain.Credentials) error {
	p.mu.Lock()
	_, registered := p.sessions[creds.Kind]
	p.mu.Unlock()
	if !registered {
		return fmt.Errorf("no coordinator registered for account %q", creds.Kind)
	}

	if err := p.settings.SetCredentials(ctx, creds); err != nil {
		return err
	}
	if err := p.settings.SetActiveAccount(ctx, creds.Kind); err != nil {
		return err
	}
	p.logger.Info("signed in", "account", creds.Kind)
	p.notify(creds.Kind)
	return nil
}

// SignOut clears the active account's credentials, wipes the local data that
// was synchronized from it and falls back to the local account. Signing out
// of the local account is a no-op.
func (p *Provider) SignOut(ctx context.Context) error {
	kind, err := p.settings.ActiveAccount(ctx)
	if err != nil {
		return err
	}
	if kind == domain.AccountLocal {
		return nil
	}

	if err := p.settings.ClearCredentials(ctx, kind); err != nil {
		return err
	}
	if err := p.settings.SetLastSyncedAt(ctx, kind, time.Time{}); err != nil {
		return err
	}
	if err := p.wiper.Wipe(ctx); err != nil {
		return err
	}
	if err := p.settings.SetActiveAccount(ctx, domain.AccountLocal); err != nil {
		return err
	}
	p.logger.Info("signed out", "account", kind)
	p.notify(domain.AccountLocal)
	return nil
}

// Subscribe returns a channel receiving the account kind after every
// sign-in/sign-out, and a cancel function releasing it. Cancel is idempotent.
func (p *Provider) Subscribe() (<-chan domain.AccountKind, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	ch := make(chan domain.AccountKind, 4)
	p.observers[id] = ch

	cancel := func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if _, ok := p.observers[id]; ok {
			delete(p.observers, id)
			close(ch)
		}
	}
	return ch, cancel
}

func (p *Provider) notify(kind domain.AccountKind) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, ch := range p.observers {
		select {
		case ch <- kind:
		default:
		}
	}
}
