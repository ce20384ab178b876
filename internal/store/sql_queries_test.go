// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-auth-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertUserQuery(t *testing.T) {
	user := models.User{Email: "a@x.com", PasswordHash: "$2a$10$digest"}

	query, args, err := buildInsertUserQuery(user)
	require.NoError(t, err)

	// args checks
	require.Len(t, args, 2)
	require.Equal(t, user.Email, args[0])
	require.Equal(t, user.PasswordHash, args[1])

	// query checks (contains parts)
	q := strings.ToLower(query)

	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "email")
	require.Contains(t, q, "password_hash")
	require.Contains(t, q, "returning")

	// placeholder format should be $1 (Postgres)
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$2")

	// the plaintext password never appears in the statement itself
	assert.NotContains(t, query, "$2a$10$digest")
}

func Test_buildSelectUserByEmailQuery(t *testing.T) {
	query, args, err := buildSelectUserByEmailQuery("a@x.com")
	require.NoError(t, err)

	require.Len(t, args, 1)
	require.Equal(t, "a@x.com", args[0])

	q := strings.ToLower(query)

	require.Contains(t, q, "select")
	require.Contains(t, q, "from users")
	require.Contains(t, q, "where")
	require.Contains(t, q, "email")
	require.Contains(t, query, "$1")

	// columns presence (key columns)
	for _, col := range userColumns {
		assert.Contains(t, q, col)
	}
}
