package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpctx "github.com/sentra-app/auth-server/internal/api/http/context"
	"github.com/sentra-app/auth-server/internal/mocks"
	"github.com/sentra-app/auth-server/internal/model"
	"github.com/sentra-app/auth-server/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	t.Parallel()

	subject := uuid.New()

	tests := []struct {
		name       string
		cookie     *http.Cookie
		claims     model.TokenClaims
		decodeErr  error
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "missing cookie",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			cookie:     &http.Cookie{Name: "access_token", Value: "broken"},
			decodeErr:  model.ErrInvalidToken,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "refresh token rejected",
			cookie: &http.Cookie{Name: "access_token", Value: "refresh.jwt"},
			claims: model.TokenClaims{
				Subject:   subject,
				ExpiresAt: time.Now().Add(time.Hour),
				Type:      model.TokenTypeRefresh,
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid access token",
			cookie: &http.Cookie{Name: "access_token", Value: "access.jwt"},
			claims: model.TokenClaims{
				Subject:   subject,
				ExpiresAt: time.Now().Add(time.Hour),
				Type:      model.TokenTypeAccess,
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tm := &mocks.TokenManager{}
			if tt.cookie != nil {
				tm.On("Decode", tt.cookie.Value).Return(tt.claims, tt.decodeErr)
			}
			cm := httpctx.NewManager()
			m := NewAuthenticate(tm, cm, testutil.MakeNoopLogger())

			var gotID uuid.UUID
			var nextCalled bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				id, ok := cm.GetIdentityIDFromContext(r.Context())
				require.True(t, ok)
				gotID = id
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()

			m.Handle(next).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantNext {
				assert.Equal(t, subject, gotID)
			}
		})
	}
}
