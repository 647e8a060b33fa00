package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenType discriminates access tokens from refresh tokens.
type TokenType string

const (
	// TokenTypeAccess is a short-lived token authorizing API calls.
	TokenTypeAccess TokenType = "access"
	// TokenTypeRefresh is a longer-lived token for obtaining new access tokens.
	TokenTypeRefresh TokenType = "refresh"
)

// TokenManager signs and verifies access/refresh tokens. Tokens are
// stateless and unrevokable; there is no server-side session table.
type TokenManager interface {
	GenerateAccessToken(subject uuid.UUID) (string, error)
	GenerateRefreshToken(subject uuid.UUID) (string, error)
	// Decode verifies signature and expiry. Malformed, badly signed and
	// expired tokens all fail with ErrInvalidToken.
	Decode(token string) (TokenClaims, error)
}

// TokenClaims is the decoded signed-claims structure of a token.
type TokenClaims struct {
	Subject   uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
	Type      TokenType
}

// IsAccess reports whether the claims belong to an access token.
func (c TokenClaims) IsAccess() bool {
	return c.Type == TokenTypeAccess
}

// IsRefresh reports whether the claims belong to a refresh token.
func (c TokenClaims) IsRefresh() bool {
	return c.Type == TokenTypeRefresh
}

// TokenPair holds the two credentials issued on successful login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
