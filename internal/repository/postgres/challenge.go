package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sentra-app/auth-server/internal/model"
)

var _ model.ChallengeStore = (*ChallengeRepository)(nil)

type ChallengeRepository struct {
	db *Connection
}

func NewChallengeRepository(db *Connection) *ChallengeRepository {
	return &ChallengeRepository{
		db: db,
	}
}

func (r *ChallengeRepository) Create(ctx context.Context, challenge model.Challenge) error {
	query := `INSERT INTO challenges (id, email, code_hash, used, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		challenge.ID, challenge.Email, challenge.CodeHash, challenge.Used, challenge.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create challenge: %w", err)
	}

	return nil
}

// GetLatestUnused returns the newest unconsumed challenge for the email.
// Older unused challenges are never eligible: issuing a new code makes the
// previous ones permanently unusable.
func (r *ChallengeRepository) GetLatestUnused(ctx context.Context, email string) (model.Challenge, error) {
	var challenge model.Challenge
	query := `SELECT id, email, code_hash, used, created_at
			  FROM challenges WHERE email = $1 AND used = FALSE
			  ORDER BY created_at DESC LIMIT 1`

	err := r.db.QueryRow(ctx, query, email).Scan(
		&challenge.ID, &challenge.Email, &challenge.CodeHash, &challenge.Used, &challenge.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Challenge{}, model.ErrNotFound
		}
		return model.Challenge{}, fmt.Errorf("failed to get latest challenge: %w", err)
	}

	return challenge, nil
}

// Consume flips used to true. The used = FALSE guard makes the flip atomic
// with respect to concurrent verifications: of two racing submissions of
// the same code, exactly one sees a row change.
func (r *ChallengeRepository) Consume(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `UPDATE challenges SET used = TRUE WHERE id = $1 AND used = FALSE`

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to consume challenge: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}
