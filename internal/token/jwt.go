package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/sentra-app/auth-server/internal/model"
)

// Claims represents JWT claims with token type.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"typ"`
}

// JWT implements TokenManager backed by symmetric HMAC. TTLs come from
// configuration; the manager holds no mutable state.
type JWT struct {
	secretKey  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWT creates a new JWT token manager with the provided secret key and TTLs.
func NewJWT(secretKey string, accessTTL, refreshTTL time.Duration) *JWT {
	return &JWT{secretKey: secretKey, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

var _ model.TokenManager = (*JWT)(nil)

// GenerateAccessToken creates a short-lived access token for the subject.
func (j *JWT) GenerateAccessToken(subject uuid.UUID) (string, error) {
	return j.generate(subject, model.TokenTypeAccess, j.accessTTL)
}

// GenerateRefreshToken creates a long-lived refresh token for the subject.
func (j *JWT) GenerateRefreshToken(subject uuid.UUID) (string, error) {
	return j.generate(subject, model.TokenTypeRefresh, j.refreshTTL)
}

func (j *JWT) generate(subject uuid.UUID, typ model.TokenType, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		TokenType: string(typ),
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", typ, err)
	}

	return tokenString, nil
}

// Decode validates signature and expiry and extracts the claims. Malformed,
// badly signed and expired tokens all fail with ErrInvalidToken; callers do
// not need to distinguish these.
func (j *JWT) Decode(tokenString string) (model.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil || !token.Valid {
		return model.TokenClaims{}, model.ErrInvalidToken
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return model.TokenClaims{}, model.ErrInvalidToken
	}

	decoded := model.TokenClaims{
		Subject: subject,
		Type:    model.TokenType(claims.TokenType),
	}
	if claims.IssuedAt != nil {
		decoded.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		decoded.ExpiresAt = claims.ExpiresAt.Time
	}

	return decoded, nil
}
