package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// MaintenanceStore performs whole-database operations outside the per-entity
// stores.
type MaintenanceStore struct {
	db *sqlx.DB
}

func NewMaintenanceStore(db *sqlx.DB) *MaintenanceStore {
	return &MaintenanceStore{db: db}
}

// Wipe deletes all synchronized data in one transaction: posts, group
// memberships, groups, feeds and the per-account sync watermarks. Feature
// settings such as the full-content flag survive.
func (s *MaintenanceStore) Wipe(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	statements := []string{
		`DELETE FROM posts`,
		`DELETE FROM feed_group_feeds`,
		`DELETE FROM feed_groups`,
		`DELETE FROM feeds`,
		`DELETE FROM settings WHERE key LIKE 'last_synced_at:%'`,
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("wipe: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit wipe: %w", err)
	}
	return nil
}
