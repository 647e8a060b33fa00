package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentra-app/auth-server/internal/model"
)

func TestJWT_AccessToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret", 15*time.Minute, 7*24*time.Hour)
	subject := uuid.New()

	access, err := j.GenerateAccessToken(subject)
	require.NoError(t, err)

	claims, err := j.Decode(access)
	require.NoError(t, err)
	assert.Equal(t, subject, claims.Subject)
	assert.Equal(t, model.TokenTypeAccess, claims.Type)
	assert.True(t, claims.IsAccess())
	assert.False(t, claims.IsRefresh())
}

func TestJWT_RefreshToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret", 15*time.Minute, 7*24*time.Hour)
	subject := uuid.New()

	refresh, err := j.GenerateRefreshToken(subject)
	require.NoError(t, err)

	claims, err := j.Decode(refresh)
	require.NoError(t, err)
	assert.Equal(t, subject, claims.Subject)
	assert.True(t, claims.IsRefresh())
}

func TestJWT_TokenTypes_Differ(t *testing.T) {
	j := NewJWT("secret", 15*time.Minute, 7*24*time.Hour)
	subject := uuid.New()

	access, err := j.GenerateAccessToken(subject)
	require.NoError(t, err)
	refresh, err := j.GenerateRefreshToken(subject)
	require.NoError(t, err)

	accessClaims, err := j.Decode(access)
	require.NoError(t, err)
	refreshClaims, err := j.Decode(refresh)
	require.NoError(t, err)

	assert.False(t, accessClaims.IsRefresh())
	assert.False(t, refreshClaims.IsAccess())
}

func TestJWT_Decode_Expired(t *testing.T) {
	j := NewJWT("secret", -time.Minute, 7*24*time.Hour)

	access, err := j.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = j.Decode(access)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_Decode_WrongSecret(t *testing.T) {
	j := NewJWT("secret", 15*time.Minute, 7*24*time.Hour)
	other := NewJWT("other", 15*time.Minute, 7*24*time.Hour)

	access, err := j.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = other.Decode(access)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_Decode_Malformed(t *testing.T) {
	j := NewJWT("secret", 15*time.Minute, 7*24*time.Hour)

	_, err := j.Decode("not-a-token")
	require.ErrorIs(t, err, model.ErrInvalidToken)
}
