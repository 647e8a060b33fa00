package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpctx "github.com/sentra-app/auth-server/internal/api/http/context"
	"github.com/sentra-app/auth-server/internal/api/http/handler"
	"github.com/sentra-app/auth-server/internal/mocks"
	"github.com/sentra-app/auth-server/internal/testutil"
)

func newTestRouter() *Router {
	return New(
		&mocks.AuthService{},
		&mocks.TokenManager{},
		httpctx.NewManager(),
		handler.CookieConfig{AccessTTL: 15 * time.Minute, RefreshTTL: 168 * time.Hour},
		"http://localhost:5173/",
		[]string{"http://localhost:5173"},
		testutil.MakeNoopLogger(),
	)
}

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	h := newTestRouter().Register()
	require.NotNil(t, h)

	t.Run("health is routed", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("protected route requires auth", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
