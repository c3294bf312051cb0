package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"feedsync/internal/domain"
)

type PostStore struct {
	db *sqlx.DB
}

func NewPostStore(db *sqlx.DB) *PostStore {
	return &PostStore{db: db}
}

type postRow struct {
	ID          int64     `db:"id"`
	FeedID      int64     `db:"feed_id"`
	RemoteID    *string   `db:"remote_id"`
	Link        string    `db:"link"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	RawContent  string    `db:"raw_content"`
	ImageURL    string    `db:"image_url"`
	AudioURL    string    `db:"audio_url"`
	PublishedAt time.Time `db:"published_at"`
	Read        bool      `db:"is_read"`
	Bookmarked  bool      `db:"is_bookmarked"`
	UpdatedAt   time.Time `db:"updated_at"`
	SyncedAt    time.Time `db:"synced_at"`
}

func (r postRow) toDomain() domain.Post {
	return domain.Post{
		ID:          r.ID,
		FeedID:      r.FeedID,
		RemoteID:    r.RemoteID,
		Link:        r.Link,
		Title:       r.Title,
		Description: r.Description,
		RawContent:  r.RawContent,
		ImageURL:    r.ImageURL,
		AudioURL:    r.AudioURL,
		PublishedAt: r.PublishedAt,
		Read:        r.Read,
		Bookmarked:  r.Bookmarked,
		UpdatedAt:   r.UpdatedAt,
		SyncedAt:    r.SyncedAt,
	}
}

const postColumns = `id, feed_id, remote_id, link, title, description, raw_content, image_url, audio_url, published_at, is_read, is_bookmarked, updated_at, synced_at`

func (s *PostStore) ByRemoteID(ctx context.Context, remoteID string) (*domain.Post, error) {
	return s.one(ctx, `SELECT `+postColumns+` FROM posts WHERE remote_id = $1`, remoteID)
}

func (s *PostStore) ByLink(ctx context.Context, link string) (*domain.Post, error) {
	return s.one(ctx, `SELECT `+postColumns+` FROM posts WHERE link = $1`, link)
}

func (s *PostStore) one(ctx context.Context, query string, arg any) (*domain.Post, error) {
	var row postRow
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	post := row.toDomain()
	return &post, nil
}

// Upsert writes the post, keying on id when known and on (feed_id, link)
// otherwise, so a locally fetched post and its server-side twin collapse
// into one row.
func (s *PostStore) Upsert(ctx context.Context, post *domain.Post) (int64, error) {
	ec := GetExecutor(ctx, s.db)

	if post.ID != 0 {
		query := `
			UPDATE posts SET
				feed_id = $2,
				remote_id = $3,
				link = $4,
				title = $5,
				description = $6,
				raw_content = $7,
				image_url = $8,
				audio_url = $9,
				published_at = $10,
				is_read = $11,
				is_bookmarked = $12,
				updated_at = $13,
				synced_at = $14
			WHERE id = $1`
		_, err := ec.ExecContext(ctx, query,
			post.ID,
			post.FeedID,
			post.RemoteID,
			post.Link,
			post.Title,
			post.Description,
			post.RawContent,
			post.ImageURL,
			post.AudioURL,
			post.PublishedAt,
			post.Read,
			post.Bookmarked,
			post.UpdatedAt,
			post.SyncedAt,
		)
		return post.ID, err
	}

	query := `
		INSERT INTO posts (
			feed_id, remote_id, link, title, description, raw_content,
			image_url, audio_url, published_at, is_read, is_bookmarked,
			updated_at, synced_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (feed_id, link) DO UPDATE SET
			remote_id = COALESCE(EXCLUDED.remote_id, posts.remote_id),
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			raw_content = EXCLUDED.raw_content,
			image_url = EXCLUDED.image_url,
			audio_url = EXCLUDED.audio_url,
			published_at = EXCLUDED.published_at,
			updated_at = EXCLUDED.updated_at
		RETURNING id`

	var id int64
	err := ec.QueryRowxContext(ctx, query,
		post.FeedID,
		post.RemoteID,
		post.Link,
		post.Title,
		post.Description,
		post.RawContent,
		post.ImageURL,
		post.AudioURL,
		post.PublishedAt,
		post.Read,
		post.Bookmarked,
		post.UpdatedAt,
		post.SyncedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *PostStore) SetRemoteID(ctx context.Context, id int64, remoteID string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE posts SET remote_id = $2 WHERE id = $1`, id, remoteID)
	return err
}

func (s *PostStore) UpdateStatus(ctx context.Context, id int64, read, bookmarked bool, syncedAt time.Time) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE posts SET is_read = $2, is_bookmarked = $3, updated_at = $4, synced_at = $4 WHERE id = $1`,
		id, read, bookmarked, syncedAt)
	return err
}

func (s *PostStore) MarkSynced(ctx context.Context, ids []int64, syncedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE posts SET synced_at = $2 WHERE id = ANY($1)`,
		pq.Array(ids), syncedAt)
	return err
}

func (s *PostStore) PendingChanges(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	return s.list(ctx,
		`SELECT `+postColumns+` FROM posts WHERE updated_at > synced_at ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset)
}

func (s *PostStore) PendingChangesForFeed(ctx context.Context, feedID int64, limit, offset int) ([]domain.Post, error) {
	return s.list(ctx,
		`SELECT `+postColumns+` FROM posts WHERE feed_id = $3 AND updated_at > synced_at ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset, feedID)
}

func (s *PostStore) WithRemoteID(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	return s.list(ctx,
		`SELECT `+postColumns+` FROM posts WHERE remote_id IS NOT NULL ORDER BY id LIMIT $1 OFFSET $2`,
		limit, offset)
}

func (s *PostStore) list(ctx context.Context, query string, args ...any) ([]domain.Post, error) {
	var rows []postRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, query, args...); err != nil {
		return nil, err
	}
	posts := make([]domain.Post, len(rows))
	for i, r := range rows {
		posts[i] = r.toDomain()
	}
	return posts, nil
}
