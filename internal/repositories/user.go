package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/deepdating/deep-dating-api/internal/logger"
	"github.com/deepdating/deep-dating-api/internal/models"
)

// UserReadRepository provides read access to user rows.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given email, or nil if none exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, name, email, password_hash, gender, looking_for, city, bio, avatar_url, created_at
		FROM users
		WHERE email = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given id, or nil if none exists.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `
		SELECT id, name, email, password_hash, gender, looking_for, city, bio, avatar_url, created_at
		FROM users
		WHERE id = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Browse returns up to limit discovery candidates for userID, newest first.
// Excluded: the user themselves, anyone they liked or passed, and anyone
// blocked in either direction. The exclusion set is computed fresh on every
// call; city and gender narrow the result only when non-nil.
func (r *UserReadRepository) Browse(ctx context.Context, userID int64, city, gender *string, limit int) ([]models.UserPublic, error) {
	query := `
		SELECT id, name, avatar_url, gender, looking_for, city, bio, created_at
		FROM users
		WHERE id <> $1
		  AND id NOT IN (SELECT liked_id FROM likes WHERE liker_id = $1)
		  AND id NOT IN (SELECT passed_id FROM passes WHERE passer_id = $1)
		  AND id NOT IN (SELECT blocked_id FROM blocks WHERE blocker_id = $1)
		  AND id NOT IN (SELECT blocker_id FROM blocks WHERE blocked_id = $1)
	`
	args := []any{userID}

	if city != nil {
		args = append(args, *city)
		query += ` AND city = $` + strconv.Itoa(len(args))
	}
	if gender != nil {
		args = append(args, *gender)
		query += ` AND gender = $` + strconv.Itoa(len(args))
	}

	args = append(args, limit)
	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args))

	users := []models.UserPublic{}
	err := r.db.SelectContext(ctx, &users, query, args...)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"rows", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// UserWriteRepository provides write access to user rows.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Create inserts a new user and returns its id. A duplicate email surfaces
// as the driver's unique-violation error.
func (r *UserWriteRepository) Create(ctx context.Context, name, email, passwordHash string, gender, lookingFor, city, bio *string) (int64, error) {
	const query = `
		INSERT INTO users (name, email, password_hash, gender, looking_for, city, bio, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id
	`
	args := []any{name, email, passwordHash, gender, lookingFor, city, bio}

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{name, email, gender, lookingFor, city, bio},
		"result", id,
		"error", err,
	)

	return id, err
}

// UpdateProfile applies a partial profile update: nil fields keep their
// current value (COALESCE).
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, id int64, p models.UpdateProfileParams) error {
	const query = `
		UPDATE users
		SET name        = COALESCE($2, name),
		    gender      = COALESCE($3, gender),
		    looking_for = COALESCE($4, looking_for),
		    city        = COALESCE($5, city),
		    bio         = COALESCE($6, bio)
		WHERE id = $1
	`
	args := []any{id, p.Name, p.Gender, p.LookingFor, p.City, p.Bio}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// SetAvatarURL points the user's avatar at a freshly uploaded file.
// Superseded files are not removed.
func (r *UserWriteRepository) SetAvatarURL(ctx context.Context, id int64, avatarURL string) error {
	const query = `UPDATE users SET avatar_url = $2 WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, id, avatarURL)

	logger.Log.Debugw("query",
		"sql", query,
		"args", []any{id, avatarURL},
		"error", err,
	)

	return err
}
