package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/deepdating/deep-dating-api/internal/logger"
	"github.com/deepdating/deep-dating-api/internal/models"
)

// MatchRepository stores canonical user pairs derived from mutual likes.
type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

// Insert records a match for the canonical pair (user1 < user2). The insert
// is idempotent on the unique constraint: two requests deriving the same
// match concurrently both succeed and exactly one row survives. Callers must
// pass the pair already canonicalized.
func (r *MatchRepository) Insert(ctx context.Context, user1ID, user2ID int64) error {
	const query = `
		INSERT INTO matches (user1_id, user2_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user1_id, user2_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, user1ID, user2ID)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{user1ID, user2ID},
		"error", err,
	)

	return err
}

// GetByID returns the match with the given id, or nil if none exists.
func (r *MatchRepository) GetByID(ctx context.Context, matchID int64) (*models.MatchDB, error) {
	const query = `
		SELECT id, user1_id, user2_id, created_at FROM matches WHERE id = $1
	`

	var match models.MatchDB
	err := r.db.GetContext(ctx, &match, query, matchID)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{matchID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &match, nil
}

// ListForUser returns the user's matches joined with the counterpart's
// profile, newest match first.
func (r *MatchRepository) ListForUser(ctx context.Context, userID int64) ([]models.MatchEntry, error) {
	const query = `
		SELECT
			m.id AS match_id,
			CASE WHEN m.user1_id = $1 THEN m.user2_id ELSE m.user1_id END AS user_id,
			u.name, u.avatar_url, u.gender, u.city, u.bio,
			m.created_at
		FROM matches m
		JOIN users u
			ON u.id = CASE WHEN m.user1_id = $1 THEN m.user2_id ELSE m.user1_id END
		WHERE m.user1_id = $1 OR m.user2_id = $1
		ORDER BY m.created_at DESC
	`

	entries := []models.MatchEntry{}
	err := r.db.SelectContext(ctx, &entries, query, userID)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}
