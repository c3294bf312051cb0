package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"feedsync/internal/domain"
)

type GroupStore struct {
	db *sqlx.DB
}

func NewGroupStore(db *sqlx.DB) *GroupStore {
	return &GroupStore{db: db}
}

type groupRow struct {
	ID        int64      `db:"id"`
	RemoteID  *string    `db:"remote_id"`
	Name      string     `db:"name"`
	IsDeleted bool       `db:"is_deleted"`
	UpdatedAt *time.Time `db:"updated_at"`
	PinnedAt  *time.Time `db:"pinned_at"`
}

func (r groupRow) toDomain() domain.FeedGroup {
	return domain.FeedGroup{
		ID:        r.ID,
		RemoteID:  r.RemoteID,
		Name:      r.Name,
		IsDeleted: r.IsDeleted,
		UpdatedAt: r.UpdatedAt,
		PinnedAt:  r.PinnedAt,
	}
}

const groupColumns = `id, remote_id, name, is_deleted, updated_at, pinned_at`

func (s *GroupStore) All(ctx context.Context) ([]domain.FeedGroup, error) {
	ec := GetExecutor(ctx, s.db)

	var rows []groupRow
	if err := sqlx.SelectContext(ctx, ec, &rows,
		`SELECT `+groupColumns+` FROM feed_groups ORDER BY id`); err != nil {
		return nil, err
	}

	members, err := s.memberships(ctx)
	if err != nil {
		return nil, err
	}

	groups := make([]domain.FeedGroup, len(rows))
	for i, r := range rows {
		groups[i] = r.toDomain()
		groups[i].FeedIDs = members[r.ID]
	}
	return groups, nil
}

func (s *GroupStore) ByRemoteID(ctx context.Context, remoteID string) (*domain.FeedGroup, error) {
	var row groupRow
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row,
		`SELECT `+groupColumns+` FROM feed_groups WHERE remote_id = $1`, remoteID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	group := row.toDomain()
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &group.FeedIDs,
		`SELECT feed_id FROM feed_group_feeds WHERE group_id = $1 ORDER BY feed_id`, group.ID); err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *GroupStore) Create(ctx context.Context, group *domain.FeedGroup) (int64, error) {
	query := `
		INSERT INTO feed_groups (remote_id, name, is_deleted, updated_at, pinned_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		group.RemoteID,
		group.Name,
		group.IsDeleted,
		group.UpdatedAt,
		group.PinnedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	for _, feedID := range group.FeedIDs {
		if err := s.AddFeed(ctx, id, feedID); err != nil {
			return 0, err
		}
	}
	return id, nil
}

func (s *GroupStore) Update(ctx context.Context, group *domain.FeedGroup) error {
	query := `
		UPDATE feed_groups SET
			remote_id = $2,
			name = $3,
			is_deleted = $4,
			updated_at = $5,
			pinned_at = $6
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		group.ID,
		group.RemoteID,
		group.Name,
		group.IsDeleted,
		group.UpdatedAt,
		group.PinnedAt,
	)
	return err
}

func (s *GroupStore) MarkDeleted(ctx context.Context, id int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE feed_groups SET is_deleted = TRUE WHERE id = $1`, id)
	return err
}

func (s *GroupStore) Delete(ctx context.Context, id int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM feed_groups WHERE id = $1`, id)
	return err
}

func (s *GroupStore) AddFeed(ctx context.Context, groupID, feedID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`INSERT INTO feed_group_feeds (group_id, feed_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		groupID, feedID)
	return err
}

func (s *GroupStore) RemoveFeedFromOthers(ctx context.Context, feedID, keepGroupID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM feed_group_feeds WHERE feed_id = $1 AND group_id <> $2`,
		feedID, keepGroupID)
	return err
}

func (s *GroupStore) memberships(ctx context.Context) (map[int64][]int64, error) {
	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx,
		`SELECT group_id, feed_id FROM feed_group_feeds ORDER BY group_id, feed_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make(map[int64][]int64)
	for rows.Next() {
		var groupID, feedID int64
		if err := rows.Scan(&groupID, &feedID); err != nil {
			return nil, err
		}
		members[groupID] = append(members[groupID], feedID)
	}
	return members, rows.Err()
}
