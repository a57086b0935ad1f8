package models

import (
	"time"
)

// UserDB represents a user row in the database.
type UserDB struct {
	ID           int64      `json:"id" db:"id"`                     // Primary key
	Name         string     `json:"name" db:"name"`                 // Display name
	Email        string     `json:"email" db:"email"`               // Unique email
	PasswordHash string     `json:"-" db:"password_hash"`           // bcrypt hash, never serialized
	Gender       *string    `json:"gender" db:"gender"`             // Optional
	LookingFor   *string    `json:"looking_for" db:"looking_for"`   // Preferred gender for discovery
	City         *string    `json:"city" db:"city"`                 // Optional
	Bio          *string    `json:"bio" db:"bio"`                   // Optional, up to 500 chars
	AvatarURL    *string    `json:"avatar_url" db:"avatar_url"`     // Path under /uploads
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`     // Registration timestamp
}

// UserPublic is the profile shape exposed to other users (no email, no hash).
type UserPublic struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	AvatarURL  *string   `json:"avatar_url" db:"avatar_url"`
	Gender     *string   `json:"gender" db:"gender"`
	LookingFor *string   `json:"looking_for" db:"looking_for"`
	City       *string   `json:"city" db:"city"`
	Bio        *string   `json:"bio" db:"bio"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// UpdateProfileParams carries the optional profile fields of a partial
// update; nil fields are left unchanged.
type UpdateProfileParams struct {
	Name       *string
	Gender     *string
	LookingFor *string
	City       *string
	Bio        *string
}
