package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sentra-app/auth-server/internal/logger"
	"github.com/sentra-app/auth-server/internal/model"
)

// Auth composes the identity store, challenge manager, hashers, token
// manager and federation adapter into the user-facing auth workflows.
type Auth struct {
	identityStore  model.IdentityStore
	challenges     model.ChallengeManager
	passwordHasher model.PasswordHasher
	tokenManager   model.TokenManager
	deliverer      model.OTPDeliverer
	federation     model.FederationProvider
	logger         *logger.Logger
}

func NewAuth(
	identityStore model.IdentityStore,
	challenges model.ChallengeManager,
	passwordHasher model.PasswordHasher,
	tokenManager model.TokenManager,
	deliverer model.OTPDeliverer,
	federation model.FederationProvider,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		identityStore:  identityStore,
		challenges:     challenges,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		deliverer:      deliverer,
		federation:     federation,
		logger:         logger,
	}
}

// Signup creates an unverified local identity and emails it an OTP code.
// Delivery is best-effort: a failed email does not fail the signup, the
// client can re-trigger issuance by signing up again after the conflict
// window or by requesting a fresh code.
func (a *Auth) Signup(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)

	a.logger.Debug("Auth service: starting signup", "email", email)

	_, err := a.identityStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: identity already exists", "email", email)
		return model.ErrConflict
	}
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("failed to get identity by email: %w", err)
	}

	passwordHash, err := a.passwordHasher.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	identity := model.Identity{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: &passwordHash,
		Provider:     model.ProviderLocal,
		Verified:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// A concurrent duplicate insert surfaces here as the same conflict the
	// prior lookup would have reported.
	if _, err := a.identityStore.CreateLocal(ctx, identity); err != nil {
		if errors.Is(err, model.ErrConflict) {
			a.logger.Info("Auth service: concurrent signup lost the race", "email", email)
			return model.ErrConflict
		}
		return fmt.Errorf("failed to create identity: %w", err)
	}

	code, err := a.challenges.Issue(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to issue challenge: %w", err)
	}

	if err := a.deliverer.DeliverOTP(ctx, email, code); err != nil {
		a.logger.Error("Auth service: failed to deliver otp",
			"email", email,
			"error", err.Error())
	}

	a.logger.Info("Auth service: signup completed", "email", email)

	return nil
}

// ConfirmOTP verifies the most recently issued code for the email and marks
// the identity verified.
func (a *Auth) ConfirmOTP(ctx context.Context, email, code string) error {
	email = normalizeEmail(email)

	a.logger.Debug("Auth service: confirming otp", "email", email)

	identity, err := a.identityStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get identity by email: %w", err)
	}

	valid, err := a.challenges.Verify(ctx, email, code)
	if err != nil {
		return fmt.Errorf("failed to verify challenge: %w", err)
	}
	if !valid {
		a.logger.Info("Auth service: challenge verification failed", "email", email)
		return model.ErrInvalidChallenge
	}

	if _, err := a.identityStore.MarkVerified(ctx, identity.ID); err != nil {
		return fmt.Errorf("failed to mark identity verified: %w", err)
	}

	a.logger.Info("Auth service: identity verified", "email", email)

	return nil
}

// Login verifies local credentials and issues an access/refresh token pair.
// A missing account, a federation-only account and a wrong password all
// fail identically to avoid account enumeration.
func (a *Auth) Login(ctx context.Context, email, password string) (model.TokenPair, error) {
	email = normalizeEmail(email)

	a.logger.Debug("Auth service: starting login", "email", email)

	identity, err := a.identityStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.TokenPair{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to get identity by email: %w", err)
	}

	if identity.PasswordHash == nil {
		return model.TokenPair{}, model.ErrInvalidCredentials
	}

	if !a.passwordHasher.VerifyPassword(password, *identity.PasswordHash) {
		return model.TokenPair{}, model.ErrInvalidCredentials
	}

	if !identity.Verified {
		return model.TokenPair{}, model.ErrNotVerified
	}

	pair, err := a.issueTokens(identity.ID)
	if err != nil {
		return model.TokenPair{}, err
	}

	a.logger.Info("Auth service: login completed", "email", email)

	return pair, nil
}

// FederatedLogin exchanges the provider authorization code, creating an
// auto-verified identity on first sight, and issues a token pair. This path
// never consults passwords or challenges.
func (a *Auth) FederatedLogin(ctx context.Context, code string) (model.TokenPair, error) {
	fed, err := a.federation.Exchange(ctx, code)
	if err != nil {
		a.logger.Error("Auth service: federation exchange failed", "error", err.Error())
		return model.TokenPair{}, model.ErrFederationFailed
	}

	email := normalizeEmail(fed.Email)

	identity, err := a.identityStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		now := time.Now()
		subjectID := fed.SubjectID
		identity = model.Identity{
			ID:        uuid.New(),
			Email:     email,
			Provider:  model.ProviderGoogle,
			SubjectID: &subjectID,
			Verified:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		identity, err = a.identityStore.CreateFederated(ctx, identity)
		if err != nil {
			return model.TokenPair{}, fmt.Errorf("failed to create federated identity: %w", err)
		}
		a.logger.Info("Auth service: federated identity created", "email", email)
	} else if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to get identity by email: %w", err)
	}

	pair, err := a.issueTokens(identity.ID)
	if err != nil {
		return model.TokenPair{}, err
	}

	a.logger.Info("Auth service: federated login completed", "email", email)

	return pair, nil
}

// FederationAuthURL returns the provider consent URL carrying the given
// CSRF state.
func (a *Auth) FederationAuthURL(state string) string {
	return a.federation.AuthURL(state)
}

// GetIdentity returns the active identity for the given id.
func (a *Auth) GetIdentity(ctx context.Context, id uuid.UUID) (model.Identity, error) {
	identity, err := a.identityStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.Identity{}, model.ErrNotFound
	}
	if err != nil {
		return model.Identity{}, fmt.Errorf("failed to get identity by id: %w", err)
	}
	return identity, nil
}

// DeleteAccount soft-deletes the identity. The row remains but disappears
// from every lookup.
func (a *Auth) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := a.identityStore.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to soft delete identity: %w", err)
	}

	a.logger.Info("Auth service: account deleted", "id", id)

	return nil
}

func (a *Auth) issueTokens(subject uuid.UUID) (model.TokenPair, error) {
	access, err := a.tokenManager.GenerateAccessToken(subject)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh, err := a.tokenManager.GenerateRefreshToken(subject)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// normalizeEmail lower-cases the address so lookups, uniqueness and OTP
// binding all agree on one canonical form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
