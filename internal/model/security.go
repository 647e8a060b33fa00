package model

// PasswordHasher performs one-way hashing and verification of passwords.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
	VerifyPassword(password, hash string) bool
}

// OTPHasher produces keyed digests binding an OTP code to an email, so a
// leaked digest for one email cannot be replayed against another.
type OTPHasher interface {
	HashOTP(email, code string) string
	// VerifyOTP recomputes the digest and compares in constant time.
	VerifyOTP(email, code, digest string) bool
}
