package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sentra-app/auth-server/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

// handleError translates domain errors into HTTP responses. The
// invalid-credentials message is identical for unknown emails and wrong
// passwords to avoid account enumeration.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrConflict):
		writeError(w, http.StatusConflict, "email already registered")
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "account not found")
	case errors.Is(err, model.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, model.ErrNotVerified):
		writeError(w, http.StatusForbidden, "email not verified")
	case errors.Is(err, model.ErrInvalidChallenge):
		writeError(w, http.StatusBadRequest, "invalid or expired verification code")
	case errors.Is(err, model.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "invalid token")
	case errors.Is(err, model.ErrFederationFailed):
		writeError(w, http.StatusUnauthorized, "federated login failed")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
