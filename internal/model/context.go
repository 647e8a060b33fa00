package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager moves the authenticated identity ID in and out of a
// request context.
type ContextManager interface {
	SetIdentityIDToContext(ctx context.Context, id uuid.UUID) context.Context
	GetIdentityIDFromContext(ctx context.Context) (uuid.UUID, bool)
}
