package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/sentra-app/auth-server/internal/logger"
	"github.com/sentra-app/auth-server/internal/model"
)

// Authenticate validates the access-token cookie and injects the
// identity ID into the request context.
type Authenticate struct {
	tokenManager   model.TokenManager
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokenManager model.TokenManager, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokenManager: tokenManager, contextManager: contextManager, logger: logger}
}

// Handle wraps next, rejecting requests without a valid access token.
// Refresh tokens are not accepted here even though they carry the same
// signature.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("access_token")
		if err != nil || cookie.Value == "" {
			unauthorized(w, "missing access token")
			return
		}

		claims, err := m.tokenManager.Decode(cookie.Value)
		if err != nil {
			m.logger.Debug("Auth middleware: token rejected", "error", err.Error())
			unauthorized(w, "invalid access token")
			return
		}

		if !claims.IsAccess() {
			unauthorized(w, "invalid access token")
			return
		}

		ctx := m.contextManager.SetIdentityIDToContext(r.Context(), claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
