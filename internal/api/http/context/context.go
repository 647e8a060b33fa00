package context

import (
	"context"

	"github.com/google/uuid"
)

type contextKey struct{}

var identityIDKey contextKey

// Manager moves the authenticated identity ID in and out of a request
// context using an unexported key, so other packages cannot collide.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetIdentityIDToContext returns a child context carrying the identity ID.
func (m *Manager) SetIdentityIDToContext(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, identityIDKey, id)
}

// GetIdentityIDFromContext retrieves the identity ID set by the auth
// middleware, reporting false when the request is unauthenticated.
func (m *Manager) GetIdentityIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(identityIDKey).(uuid.UUID)
	return id, ok
}
