package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ChallengeStore defines persistence operations for OTP challenges.
type ChallengeStore interface {
	Create(ctx context.Context, challenge Challenge) error
	// GetLatestUnused returns the most recently created challenge for the
	// email that has not been consumed yet.
	GetLatestUnused(ctx context.Context, email string) (Challenge, error)
	// Consume flips used to true. It reports false when the challenge was
	// already consumed, so two racing verifications resolve to one winner.
	Consume(ctx context.Context, id uuid.UUID) (bool, error)
}

// ChallengeManager issues and verifies OTP challenges.
type ChallengeManager interface {
	// Issue creates a challenge for the email and returns the plaintext
	// code for out-of-band delivery. The plaintext is never persisted.
	Issue(ctx context.Context, email string) (string, error)
	// Verify checks code against the newest unused challenge for the email
	// and consumes it on success.
	Verify(ctx context.Context, email string, code string) (bool, error)
}

// Challenge represents a one-time-passcode record bound to an email.
// CodeHash is an HMAC digest over the email and the 6-digit code.
type Challenge struct {
	ID        uuid.UUID
	Email     string
	CodeHash  string
	Used      bool
	CreatedAt time.Time
}

// Expired reports whether the challenge is older than ttl at the given time.
func (c Challenge) Expired(now time.Time, ttl time.Duration) bool {
	return now.After(c.CreatedAt.Add(ttl))
}
