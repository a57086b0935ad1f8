package models

import "time"

// MatchDB represents a match row: a canonical unordered pair stored with
// user1_id < user2_id so mutual likes produce exactly one row.
type MatchDB struct {
	ID        int64     `json:"id" db:"id"`
	User1ID   int64     `json:"user1_id" db:"user1_id"`
	User2ID   int64     `json:"user2_id" db:"user2_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// OtherUserID returns the counterpart of userID within the match.
func (m *MatchDB) OtherUserID(userID int64) int64 {
	if m.User1ID == userID {
		return m.User2ID
	}
	return m.User1ID
}

// Contains reports whether userID is one of the match's two participants.
func (m *MatchDB) Contains(userID int64) bool {
	return m.User1ID == userID || m.User2ID == userID
}

// MatchEntry is a match joined with the counterpart user's profile fields,
// as returned by the matches listing.
type MatchEntry struct {
	MatchID   int64     `json:"match_id" db:"match_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	AvatarURL *string   `json:"avatar_url" db:"avatar_url"`
	Gender    *string   `json:"gender" db:"gender"`
	City      *string   `json:"city" db:"city"`
	Bio       *string   `json:"bio" db:"bio"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
