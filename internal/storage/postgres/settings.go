package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"feedsync/internal/domain"
)

// SettingsStore is a key-value table holding sync watermarks, the active
// account selector, and per-account credentials.
type SettingsStore struct {
	db *sqlx.DB
}

func NewSettingsStore(db *sqlx.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

const (
	keyLastSyncedPrefix  = "last_synced_at:"
	keyCredentialsPrefix = "credentials:"
	keyDownloadFull      = "download_full_content"
	keyActiveAccount     = "active_account"
)

func (s *SettingsStore) LastSyncedAt(ctx context.Context, account domain.AccountKind) (time.Time, error) {
	raw, err := s.get(ctx, keyLastSyncedPrefix+string(account))
	if err != nil || raw == "" {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339Nano, raw)
}

func (s *SettingsStore) SetLastSyncedAt(ctx context.Context, account domain.AccountKind, t time.Time) error {
	return s.set(ctx, keyLastSyncedPrefix+string(account), t.UTC().Format(time.RFC3339Nano))
}

func (s *SettingsStore) DownloadFullContent(ctx context.Context) (bool, error) {
	raw, err := s.get(ctx, keyDownloadFull)
	return raw == "true", err
}

func (s *SettingsStore) SetDownloadFullContent(ctx context.Context, enabled bool) error {
	v := "false"
	if enabled {
		v = "true"
	}
	return s.set(ctx, keyDownloadFull, v)
}

func (s *SettingsStore) ActiveAccount(ctx context.Context) (domain.AccountKind, error) {
	raw, err := s.get(ctx, keyActiveAccount)
	if err != nil {
		return domain.AccountLocal, err
	}
	if raw == "" {
		return domain.AccountLocal, nil
	}
	return domain.AccountKind(raw), nil
}

func (s *SettingsStore) SetActiveAccount(ctx context.Context, account domain.AccountKind) error {
	return s.set(ctx, keyActiveAccount, string(account))
}

func (s *SettingsStore) Credentials(ctx context.Context, kind domain.AccountKind) (*domain.Credentials, error) {
	raw, err := s.get(ctx, keyCredentialsPrefix+string(kind))
	if err != nil || raw == "" {
		return nil, err
	}
	var creds domain.Credentials
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

func (s *SettingsStore) SetCredentials(ctx context.Context, creds *domain.Credentials) error {
	raw, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	return s.set(ctx, keyCredentialsPrefix+string(creds.Kind), string(raw))
}

func (s *SettingsStore) ClearCredentials(ctx context.Context, kind domain.AccountKind) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM settings WHERE key = $1`, keyCredentialsPrefix+string(kind))
	return err
}

func (s *SettingsStore) get(ctx context.Context, key string) (string, error) {
	var value string
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &value,
		`SELECT value FROM settings WHERE key = $1`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return value, err
}

func (s *SettingsStore) set(ctx context.Context, key, value string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value)
	return err
}
