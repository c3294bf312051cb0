package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"feedsync/internal/domain"
)

type FeedStore struct {
	db *sqlx.DB
}

func NewFeedStore(db *sqlx.DB) *FeedStore {
	return &FeedStore{db: db}
}

type feedRow struct {
	ID            int64      `db:"id"`
	RemoteID      *string    `db:"remote_id"`
	Link          string     `db:"link"`
	Name          string     `db:"name"`
	HomepageLink  string     `db:"homepage_link"`
	IconURL       string     `db:"icon_url"`
	IsDeleted     bool       `db:"is_deleted"`
	LastUpdatedAt *time.Time `db:"last_updated_at"`
	PinnedAt      *time.Time `db:"pinned_at"`
}

func (r feedRow) toDomain() domain.Feed {
	return domain.Feed{
		ID:            r.ID,
		RemoteID:      r.RemoteID,
		Link:          r.Link,
		Name:          r.Name,
		HomepageLink:  r.HomepageLink,
		IconURL:       r.IconURL,
		IsDeleted:     r.IsDeleted,
		LastUpdatedAt: r.LastUpdatedAt,
		PinnedAt:      r.PinnedAt,
	}
}

const feedColumns = `id, remote_id, link, name, homepage_link, icon_url, is_deleted, last_updated_at, pinned_at`

func (s *FeedStore) All(ctx context.Context) ([]domain.Feed, error) {
	var rows []feedRow
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows,
		`SELECT `+feedColumns+` FROM feeds ORDER BY id`)
	if err != nil {
		return nil, err
	}
	feeds := make([]domain.Feed, len(rows))
	for i, r := range rows {
		feeds[i] = r.toDomain()
	}
	return feeds, nil
}

func (s *FeedStore) ByID(ctx context.Context, id int64) (*domain.Feed, error) {
	return s.one(ctx, `SELECT `+feedColumns+` FROM feeds WHERE id = $1`, id)
}

func (s *FeedStore) ByLink(ctx context.Context, link string) (*domain.Feed, error) {
	return s.one(ctx, `SELECT `+feedColumns+` FROM feeds WHERE link = $1`, link)
}

func (s *FeedStore) ByRemoteID(ctx context.Context, remoteID string) (*domain.Feed, error) {
	return s.one(ctx, `SELECT `+feedColumns+` FROM feeds WHERE remote_id = $1`, remoteID)
}

func (s *FeedStore) one(ctx context.Context, query string, arg any) (*domain.Feed, error) {
	var row feedRow
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	feed := row.toDomain()
	return &feed, nil
}

func (s *FeedStore) Create(ctx context.Context, feed *domain.Feed) (int64, error) {
	query := `
		INSERT INTO feeds (remote_id, link, name, homepage_link, icon_url, is_deleted, last_updated_at, pinned_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		feed.RemoteID,
		feed.Link,
		feed.Name,
		feed.HomepageLink,
		feed.IconURL,
		feed.IsDeleted,
		feed.LastUpdatedAt,
		feed.PinnedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *FeedStore) Update(ctx context.Context, feed *domain.Feed) error {
	query := `
		UPDATE feeds SET
			remote_id = $2,
			link = $3,
			name = $4,
			homepage_link = $5,
			icon_url = $6,
			is_deleted = $7,
			last_updated_at = $8,
			pinned_at = $9
		WHERE id = $1`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		feed.ID,
		feed.RemoteID,
		feed.Link,
		feed.Name,
		feed.HomepageLink,
		feed.IconURL,
		feed.IsDeleted,
		feed.LastUpdatedAt,
		feed.PinnedAt,
	)
	return err
}

func (s *FeedStore) SetRemoteID(ctx context.Context, id int64, remoteID string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE feeds SET remote_id = $2 WHERE id = $1`, id, remoteID)
	return err
}

func (s *FeedStore) Delete(ctx context.Context, id int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM feeds WHERE id = $1`, id)
	return err
}
