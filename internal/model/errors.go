package model

import "errors"

var (
	// ErrNotFound means no matching active row exists.
	ErrNotFound = errors.New("not found")
	// ErrConflict means a duplicate enrollment was rejected by a storage
	// uniqueness constraint.
	ErrConflict = errors.New("already exists")
	// ErrInvalidCredentials merges "no such account" and "wrong password"
	// to avoid account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotVerified means the credentials are correct but the email has
	// not been confirmed yet.
	ErrNotVerified = errors.New("email not verified")
	// ErrInvalidChallenge covers a wrong, expired, consumed or missing OTP.
	ErrInvalidChallenge = errors.New("invalid or expired code")
	// ErrInvalidToken covers malformed, badly signed, expired and
	// wrong-type tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrFederationFailed means the external provider handshake failed.
	ErrFederationFailed = errors.New("federated authentication failed")
)
