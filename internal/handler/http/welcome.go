package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/utils"
	"github.com/MKhiriev/go-auth-gate/models"
)

// welcome greets the authenticated user by the email embedded in the bearer
// token. The auth middleware has already verified the token and stored the
// identity in the request context; the credential store is not re-queried.
func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	email, ok := utils.GetUserEmailFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user email in context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Welcome, " + email}, http.StatusOK)
}
