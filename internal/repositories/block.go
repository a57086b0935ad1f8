package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/deepdating/deep-dating-api/internal/logger"
	"github.com/deepdating/deep-dating-api/internal/models"
)

// BlockRepository records blocks. A block is inserted one-directionally but
// queried bidirectionally: either side blocking hides both from each other.
type BlockRepository struct {
	db *sqlx.DB
}

func NewBlockRepository(db *sqlx.DB) *BlockRepository {
	return &BlockRepository{db: db}
}

// Insert records that blocker blocked blocked. Duplicates are absorbed by
// the unique (blocker_id, blocked_id) constraint.
func (r *BlockRepository) Insert(ctx context.Context, blockerID, blockedID int64) error {
	const query = `
		INSERT INTO blocks (blocker_id, blocked_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (blocker_id, blocked_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, blockerID, blockedID)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{blockerID, blockedID},
		"error", err,
	)

	return err
}

// ExistsBetween reports whether a block exists between the two users in
// either direction.
func (r *BlockRepository) ExistsBetween(ctx context.Context, userA, userB int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM blocks
			WHERE (blocker_id = $1 AND blocked_id = $2)
			   OR (blocker_id = $2 AND blocked_id = $1)
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userA, userB)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{userA, userB},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// List returns the users blocker has blocked, newest first.
func (r *BlockRepository) List(ctx context.Context, blockerID int64) ([]models.BlockEntry, error) {
	const query = `
		SELECT b.blocked_id AS user_id, u.name, u.city, u.gender, b.created_at
		FROM blocks b
		JOIN users u ON u.id = b.blocked_id
		WHERE b.blocker_id = $1
		ORDER BY b.created_at DESC
	`

	entries := []models.BlockEntry{}
	err := r.db.SelectContext(ctx, &entries, query, blockerID)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{blockerID},
		"rows", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes a block. Returns whether a row was actually removed.
func (r *BlockRepository) Delete(ctx context.Context, blockerID, blockedID int64) (bool, error) {
	const query = `DELETE FROM blocks WHERE blocker_id = $1 AND blocked_id = $2`

	res, err := r.db.ExecContext(ctx, query, blockerID, blockedID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("query",
		"sql", query,
		"args", []any{blockerID, blockedID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}
