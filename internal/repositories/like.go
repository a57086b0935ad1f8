package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/deepdating/deep-dating-api/internal/logger"
	"github.com/deepdating/deep-dating-api/internal/models"
)

// LikeRepository records one-directional like decisions.
type LikeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Insert records that liker likes liked. Repeating the same like is a no-op:
// the unique (liker_id, liked_id) constraint absorbs the duplicate.
func (r *LikeRepository) Insert(ctx context.Context, likerID, likedID int64) error {
	const query = `
		INSERT INTO likes (liker_id, liked_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (liker_id, liked_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, likerID, likedID)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{likerID, likedID},
		"error", err,
	)

	return err
}

// Exists reports whether liker has liked liked.
func (r *LikeRepository) Exists(ctx context.Context, likerID, likedID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM likes WHERE liker_id = $1 AND liked_id = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, likerID, likedID)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{likerID, likedID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// CountSince counts the likes recorded by liker at or after the given time.
// Backs the 30-per-24h like quota.
func (r *LikeRepository) CountSince(ctx context.Context, likerID int64, since time.Time) (int64, error) {
	const query = `
		SELECT COUNT(*) FROM likes WHERE liker_id = $1 AND created_at >= $2
	`

	var count int64
	err := r.db.GetContext(ctx, &count, query, likerID, since)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{likerID, since},
		"result", count,
		"error", err,
	)

	return count, err
}

// ListOutgoing returns the users liker has liked, newest like first.
func (r *LikeRepository) ListOutgoing(ctx context.Context, likerID int64) ([]models.LikeEntry, error) {
	const query = `
		SELECT l.liked_id AS user_id, u.name, u.city, u.gender, l.created_at
		FROM likes l
		JOIN users u ON u.id = l.liked_id
		WHERE l.liker_id = $1
		ORDER BY l.created_at DESC
	`

	entries := []models.LikeEntry{}
	err := r.db.SelectContext(ctx, &entries, query, likerID)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{likerID},
		"rows", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteAllByLiker wipes every outgoing like of the given user.
func (r *LikeRepository) DeleteAllByLiker(ctx context.Context, likerID int64) error {
	const query = `DELETE FROM likes WHERE liker_id = $1`

	res, err := r.db.ExecContext(ctx, query, likerID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("query",
		"sql", query,
		"args", []any{likerID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
