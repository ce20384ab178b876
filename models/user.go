package models

import "time"

// User represents an account record used for authentication.
// Email acts as the natural key for login; PasswordHash must always hold a
// bcrypt digest, never the plaintext password.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Assigned by the database on creation and never changed afterwards.
	UserID int64 `json:"-"`

	// Email is the globally unique, case-sensitive login identifier.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// Never exposed via JSON and never plaintext.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
