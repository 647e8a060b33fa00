package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sentra-app/auth-server/internal/model"
)

var _ model.IdentityStore = (*IdentityRepository)(nil)

const uniqueViolation = "23505"

type IdentityRepository struct {
	db *Connection
}

func NewIdentityRepository(db *Connection) *IdentityRepository {
	return &IdentityRepository{
		db: db,
	}
}

const identityColumns = `id, email, password_hash, provider, subject_id, verified, created_at, updated_at, deleted_at`

func scanIdentity(row pgx.Row) (model.Identity, error) {
	var identity model.Identity
	err := row.Scan(
		&identity.ID, &identity.Email, &identity.PasswordHash, &identity.Provider,
		&identity.SubjectID, &identity.Verified,
		&identity.CreatedAt, &identity.UpdatedAt, &identity.DeletedAt,
	)
	return identity, err
}

func (r *IdentityRepository) GetByEmail(ctx context.Context, email string) (model.Identity, error) {
	query := `SELECT ` + identityColumns + `
			  FROM identities WHERE email = $1 AND deleted_at IS NULL`

	identity, err := scanIdentity(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Identity{}, model.ErrNotFound
		}
		return model.Identity{}, fmt.Errorf("failed to get identity by email: %w", err)
	}

	return identity, nil
}

func (r *IdentityRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Identity, error) {
	query := `SELECT ` + identityColumns + `
			  FROM identities WHERE id = $1 AND deleted_at IS NULL`

	identity, err := scanIdentity(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Identity{}, model.ErrNotFound
		}
		return model.Identity{}, fmt.Errorf("failed to get identity by id: %w", err)
	}

	return identity, nil
}

// CreateLocal inserts an email/password identity. A duplicate active email
// is rejected by the partial unique index, which closes the race between
// two concurrent signups that both passed a prior lookup.
func (r *IdentityRepository) CreateLocal(ctx context.Context, identity model.Identity) (model.Identity, error) {
	return r.create(ctx, identity)
}

// CreateFederated inserts a provider-backed identity. Uniqueness of both
// email and provider subject is enforced at the storage layer.
func (r *IdentityRepository) CreateFederated(ctx context.Context, identity model.Identity) (model.Identity, error) {
	return r.create(ctx, identity)
}

func (r *IdentityRepository) create(ctx context.Context, identity model.Identity) (model.Identity, error) {
	query := `INSERT INTO identities (id, email, password_hash, provider, subject_id, verified, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING ` + identityColumns

	saved, err := scanIdentity(r.db.QueryRow(ctx, query,
		identity.ID, identity.Email, identity.PasswordHash, identity.Provider,
		identity.SubjectID, identity.Verified, identity.CreatedAt, identity.UpdatedAt,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.Identity{}, model.ErrConflict
		}
		return model.Identity{}, fmt.Errorf("failed to create identity: %w", err)
	}

	return saved, nil
}

// MarkVerified sets verified to true. Idempotent.
func (r *IdentityRepository) MarkVerified(ctx context.Context, id uuid.UUID) (model.Identity, error) {
	query := `UPDATE identities SET verified = TRUE, updated_at = $2
			  WHERE id = $1 AND deleted_at IS NULL
			  RETURNING ` + identityColumns

	identity, err := scanIdentity(r.db.QueryRow(ctx, query, id, time.Now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Identity{}, model.ErrNotFound
		}
		return model.Identity{}, fmt.Errorf("failed to mark identity verified: %w", err)
	}

	return identity, nil
}

// SoftDelete marks the identity logically removed. The row stays in place
// but is invisible to every lookup.
func (r *IdentityRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE identities SET deleted_at = $2, updated_at = $2
			  WHERE id = $1 AND deleted_at IS NULL`

	tag, err := r.db.Exec(ctx, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("failed to soft delete identity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
