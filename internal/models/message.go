package models

import "time"

// MessageDB represents a message row scoped to a match. ReadAt stays NULL
// until the counterpart opens the conversation.
type MessageDB struct {
	ID        int64      `json:"id" db:"id"`
	MatchID   int64      `json:"match_id" db:"match_id"`
	SenderID  int64      `json:"sender_id" db:"sender_id"`
	Content   string     `json:"content" db:"content"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	ReadAt    *time.Time `json:"read_at" db:"read_at"`
}

// InboxEntry is one conversation in the inbox listing: the counterpart's
// profile, the latest message preview and the unread count.
type InboxEntry struct {
	MatchID       int64      `json:"match_id" db:"match_id"`
	UserID        int64      `json:"user_id" db:"user_id"`
	Name          string     `json:"name" db:"name"`
	City          *string    `json:"city" db:"city"`
	Gender        *string    `json:"gender" db:"gender"`
	AvatarURL     *string    `json:"avatar_url" db:"avatar_url"`
	LastMessage   *string    `json:"last_message" db:"last_message"`
	LastMessageAt *time.Time `json:"last_message_at" db:"last_message_at"`
	UnreadCount   int64      `json:"unread_count" db:"unread_count"`
}
