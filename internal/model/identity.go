package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Provider enumerates how an identity proves ownership of its email.
type Provider string

const (
	// ProviderLocal is an email/password enrollment.
	ProviderLocal Provider = "local"
	// ProviderGoogle is a Google OAuth enrollment.
	ProviderGoogle Provider = "google"
)

// IdentityStore defines persistence operations for identities.
// Lookups never return soft-deleted rows.
type IdentityStore interface {
	GetByEmail(ctx context.Context, email string) (Identity, error)
	GetByID(ctx context.Context, id uuid.UUID) (Identity, error)
	CreateLocal(ctx context.Context, identity Identity) (Identity, error)
	CreateFederated(ctx context.Context, identity Identity) (Identity, error)
	MarkVerified(ctx context.Context, id uuid.UUID) (Identity, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// Identity represents a stored account, local or federated.
// PasswordHash is set iff Provider is local; SubjectID is the external
// provider's stable subject identifier and is set iff the identity is
// federated.
type Identity struct {
	ID           uuid.UUID
	Email        string
	PasswordHash *string
	Provider     Provider
	SubjectID    *string
	Verified     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// Active reports whether the identity is not soft-deleted.
func (i Identity) Active() bool {
	return i.DeletedAt == nil
}
