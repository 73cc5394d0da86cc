package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID        uuid.UUID      `json:"id" db:"id"`                 // Primary key
	Username      string         `json:"username" db:"username"`     // Unique username
	PasswordHash  string         `json:"-" db:"password_hash"`       // Bcrypt hash
	OAuthProvider sql.NullString `json:"-" db:"oauth_provider"`      // OAuth provider name, if any
	OAuthID       sql.NullString `json:"-" db:"oauth_id"`            // External identity at the provider
	CreatedAt     time.Time      `json:"created_at" db:"created_at"` // Creation timestamp
}

// User is the public part of a user record.
// swagger:model User
type User struct {
	// example: 3f1b2c6e-1d2a-4c51-9a63-0d8e2f1b7c44
	ID uuid.UUID `json:"id"`
	// example: john_doe
	Username string `json:"username"`
}

// Public strips private fields from the record.
func (u *UserDB) Public() User {
	return User{ID: u.UserID, Username: u.Username}
}

// AuthResult is returned by every successful authentication flow.
type AuthResult struct {
	Token     string
	User      User
	IsNewUser bool
}
