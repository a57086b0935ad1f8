package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/deepdating/deep-dating-api/internal/logger"
	"github.com/deepdating/deep-dating-api/internal/models"
)

// MessageRepository stores messages scoped to matches and computes the
// per-conversation inbox aggregation.
type MessageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Insert appends a message with no read timestamp and returns its id.
func (r *MessageRepository) Insert(ctx context.Context, matchID, senderID int64, content string) (int64, error) {
	const query = `
		INSERT INTO messages (match_id, sender_id, content, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, matchID, senderID, content)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{matchID, senderID},
		"result", id,
		"error", err,
	)

	return id, err
}

// ListByMatch returns up to limit messages of the match, oldest first.
func (r *MessageRepository) ListByMatch(ctx context.Context, matchID int64, limit int) ([]models.MessageDB, error) {
	const query = `
		SELECT id, match_id, sender_id, content, created_at, read_at
		FROM messages
		WHERE match_id = $1
		ORDER BY created_at ASC
		LIMIT $2
	`

	messages := []models.MessageDB{}
	err := r.db.SelectContext(ctx, &messages, query, matchID, limit)

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{matchID, limit},
		"rows", len(messages),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkRead sets the read timestamp on every unread message of the match not
// sent by reader. Returns the number of rows affected; a second call right
// after the first affects zero rows.
func (r *MessageRepository) MarkRead(ctx context.Context, matchID, readerID int64) (int64, error) {
	const query = `
		UPDATE messages
		SET read_at = NOW()
		WHERE match_id = $1
		  AND sender_id <> $2
		  AND read_at IS NULL
	`

	res, err := r.db.ExecContext(ctx, query, matchID, readerID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Debugw("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", []any{matchID, readerID},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Inbox returns one entry per match of userID: the counterpart's profile,
// the latest message (LATERAL) and the count of unread counterpart messages.
// Matches with a block in either direction are excluded. Ordered by most
// recent activity, falling back to the match creation time.
func (r *MessageRepository) Inbox(ctx context.Context, userID int64) ([]models.InboxEntry, error) {
	const query = `
		SELECT
			m.id AS match_id,
			CASE WHEN m.user1_id = $1 THEN m.user2_id ELSE m.user1_id END AS user_id,
			u.name, u.city, u.gender, u.avatar_url,
			lm.content AS last_message,
			lm.created_at AS last_message_at,
			(
				SELECT COUNT(*)
				FROM messages mm
				WHERE mm.match_id = m.id
				  AND mm.sender_id <> $1
				  AND mm.read_at IS NULL
			) AS unread_count
		FROM matches m
		JOIN users u
			ON u.id = CASE WHEN m.user1_id = $1 THEN m.user2_id ELSE m.user1_id END
		LEFT JOIN LATERAL (
			SELECT mm.content, mm.created_at
			FROM messages mm
			WHERE mm.match_id = m.id
			ORDER BY mm.created_at DESC
			LIMIT 1
		) lm ON TRUE
		WHERE (m.user1_id = $1 OR m.user2_id = $1)
		  AND NOT EXISTS (
			SELECT 1
			FROM blocks b
			WHERE (b.blocker_id = $1 AND b.blocked_id = u.id)
			   OR (b.blocker_id = u.id AND b.blocked_id = $1)
		  )
		ORDER BY COALESCE(lm.created_at, m.created_at) DESC
	`

	entries := []models.InboxEntry{}
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
