// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/Masterminds/squirrel"
)

// psql is the shared statement builder configured for PostgreSQL-style
// positional placeholders ($1, $2, ...).
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// userColumns lists every persisted column of the users table in scan order.
var userColumns = []string{"user_id", "email", "password_hash", "created_at"}

// buildInsertUserQuery builds the INSERT statement that persists a new user
// and returns the canonical database representation via a RETURNING clause.
func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(user.TableName()).
		Columns("email", "password_hash").
		Values(user.Email, user.PasswordHash).
		Suffix("RETURNING user_id, email, password_hash, created_at").
		ToSql()
}

// buildSelectUserByEmailQuery builds the SELECT statement that looks a user
// up by its email natural key.
func buildSelectUserByEmailQuery(email string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(squirrel.Eq{"email": email}).
		ToSql()
}
