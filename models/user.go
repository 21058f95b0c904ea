package models

import "time"

// User represents an account entity used for authentication and task
// ownership. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the unique identifier of the user, assigned by the database.
	ID int64 `json:"id"`

	// Email is the unique login identifier of the user. It is also embedded
	// as the subject claim of every issued token.
	Email string `json:"email"`

	// HashedPassword stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext, and it is never
	// serialized to JSON.
	HashedPassword string `json:"-"`

	// IsActive flags whether the account is enabled. Defaults to true at
	// registration time.
	IsActive bool `json:"is_active"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
