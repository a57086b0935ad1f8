package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/deepdating/deep-dating-api/internal/logger"
	"github.com/deepdating/deep-dating-api/internal/models"
)

// PassRepository records one-directional pass decisions.
type PassRepository struct {
	db *sqlx.DB
}

func NewPassRepository(db *sqlx.DB) *PassRepository {
	return &PassRepository{db: db}
}

// Insert records that passer passed on passed. Duplicates are absorbed by
// the unique (passer_id, passed_id) constraint.
func (r *PassRepository) Insert(ctx context.Context, passerID, passedID int64) error {
	const query = `
		INSERT INTO passes (passer_id, passed_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (passer_id, passed_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, passerID, passedID)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{passerID, passedID},
		"error", err,
	)

	return err
}

// List returns the users passer has passed on, newest first.
func (r *PassRepository) List(ctx context.Context, passerID int64) ([]models.PassEntry, error) {
	const query = `
		SELECT p.passed_id AS user_id, u.name, u.city, u.gender, u.bio, p.created_at
		FROM passes p
		JOIN users u ON u.id = p.passed_id
		WHERE p.passer_id = $1
		ORDER BY p.created_at DESC
	`

	entries := []models.PassEntry{}
	err := r.db.SelectContext(ctx, &entries, query, passerID)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{passerID},
		"rows", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete undoes a pass. Returns whether a row was actually removed, so the
// passed user can reappear in discovery.
func (r *PassRepository) Delete(ctx context.Context, passerID, passedID int64) (bool, error) {
	const query = `DELETE FROM passes WHERE passer_id = $1 AND passed_id = $2`

	res, err := r.db.ExecContext(ctx, query, passerID, passedID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("query",
		"sql", query,
		"args", []any{passerID, passedID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected > 0, err
}
