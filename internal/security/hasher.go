package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/sentra-app/auth-server/internal/model"
)

var _ model.PasswordHasher = (*Hasher)(nil)
var _ model.OTPHasher = (*Hasher)(nil)

// Hasher hashes passwords with bcrypt and OTP codes with HMAC-SHA256 keyed
// by the server secret. Plaintext passwords and codes must never be logged
// or persisted.
type Hasher struct {
	cost   int
	secret []byte
}

// NewHasher creates a Hasher with the given bcrypt cost and HMAC secret.
// Cost is clamped to the valid bcrypt range; zero selects the default.
func NewHasher(cost int, secret string) *Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &Hasher{cost: cost, secret: []byte(secret)}
}

// HashPassword produces a salted bcrypt hash. The salt is randomized by the
// algorithm, so identical inputs produce different outputs.
func (h *Hasher) HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(b), nil
}

// VerifyPassword reports whether password reproduces hash.
func (h *Hasher) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HashOTP returns the hex HMAC-SHA256 digest over "email:code". Including
// the email binds the code to one identity.
func (h *Hasher) HashOTP(email, code string) string {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(email + ":" + code))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyOTP recomputes the digest and compares in constant time.
func (h *Hasher) VerifyOTP(email, code, digest string) bool {
	expected := h.HashOTP(email, code)
	return hmac.Equal([]byte(expected), []byte(digest))
}
