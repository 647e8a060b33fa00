package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/sentra-app/auth-server/internal/logger"
	"github.com/sentra-app/auth-server/internal/model"
)

var _ model.ChallengeManager = (*Challenge)(nil)

// Challenge issues and verifies one-time passcodes. Only the keyed digest
// of a code is persisted; the plaintext exists transiently between
// generation and hand-off to the deliverer.
type Challenge struct {
	store  model.ChallengeStore
	hasher model.OTPHasher
	ttl    time.Duration
	logger *logger.Logger
}

// NewChallenge creates a Challenge manager with the given code TTL.
func NewChallenge(store model.ChallengeStore, hasher model.OTPHasher, ttl time.Duration, logger *logger.Logger) *Challenge {
	return &Challenge{
		store:  store,
		hasher: hasher,
		ttl:    ttl,
		logger: logger,
	}
}

// Issue generates a uniformly random 6-digit code, stores its digest and
// returns the plaintext for out-of-band delivery.
func (s *Challenge) Issue(ctx context.Context, email string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}

	challenge := model.Challenge{
		ID:        uuid.New(),
		Email:     email,
		CodeHash:  s.hasher.HashOTP(email, code),
		Used:      false,
		CreatedAt: time.Now(),
	}

	if err := s.store.Create(ctx, challenge); err != nil {
		return "", fmt.Errorf("failed to store challenge: %w", err)
	}

	s.logger.Debug("Challenge service: challenge issued",
		"email", email,
		"challenge_id", challenge.ID)

	return code, nil
}

// Verify checks code against the newest unused challenge for the email.
// It fails when no challenge exists, the challenge expired, the digest does
// not match, or another verification consumed the challenge first.
func (s *Challenge) Verify(ctx context.Context, email string, code string) (bool, error) {
	challenge, err := s.store.GetLatestUnused(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to get latest challenge: %w", err)
	}

	if challenge.Expired(time.Now(), s.ttl) {
		return false, nil
	}

	if !s.hasher.VerifyOTP(email, code, challenge.CodeHash) {
		return false, nil
	}

	consumed, err := s.store.Consume(ctx, challenge.ID)
	if err != nil {
		return false, fmt.Errorf("failed to consume challenge: %w", err)
	}

	return consumed, nil
}

// generateCode returns a code uniform over 000000-999999.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
