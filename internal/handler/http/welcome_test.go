package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWelcome_GreetsByEmail(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/welcome", nil)
	ctx := context.WithValue(req.Context(), utils.UserIDCtxKey, int64(42))
	ctx = context.WithValue(ctx, utils.UserEmailCtxKey, "alice@example.com")
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	h.welcome(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome, alice@example.com", decodeMessage(t, rec))
}

// TestWelcome_NoIdentityInContext covers the path where the handler is
// reached without the auth middleware having run.
func TestWelcome_NoIdentityInContext(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/welcome", nil)
	rec := httptest.NewRecorder()

	h.welcome(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestStatus_ReportsOK(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.status(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK"}`, rec.Body.String())
}
