package store

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

// UserRepository is the credential store contract: a durable mapping of
// email → salted password hash with email uniqueness enforced at the storage
// layer.
type UserRepository interface {
	// CreateUser hashes the plaintext password and persists a new user record.
	// Returns ErrEmailAlreadyExists if the email is already taken.
	CreateUser(ctx context.Context, email string, password string) (models.User, error)

	// FindUserByEmail looks a user up by its email natural key.
	// Returns ErrNoUserWasFound if no record matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// VerifyPassword reports whether the plaintext password matches the stored
	// hash of the given user. The comparison is performed by the hash
	// function's constant-time comparator, never by raw string equality.
	VerifyPassword(user models.User, password string) bool
}
