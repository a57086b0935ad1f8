package models

import "time"

// LikeEntry is an outgoing like joined with the liked user's profile fields.
type LikeEntry struct {
	UserID    int64     `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	City      *string   `json:"city" db:"city"`
	Gender    *string   `json:"gender" db:"gender"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PassEntry is a pass joined with the passed user's profile fields.
type PassEntry struct {
	UserID    int64     `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	City      *string   `json:"city" db:"city"`
	Gender    *string   `json:"gender" db:"gender"`
	Bio       *string   `json:"bio" db:"bio"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// BlockEntry is a block joined with the blocked user's profile fields.
type BlockEntry struct {
	UserID    int64     `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	City      *string   `json:"city" db:"city"`
	Gender    *string   `json:"gender" db:"gender"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
