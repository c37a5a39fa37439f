package auth

import (
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/deskhub/booking-api/internal/errors"
)

// PasswordHasher hashes plaintext passwords and verifies candidates
// against stored digests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) error
}

// BcryptHasher implements PasswordHasher using bcrypt. Cost must be
// within bcrypt's supported range; config.AuthConfig clamps it before
// the hasher is constructed.
type BcryptHasher struct {
	Cost int
}

// NewBcryptHasher returns a hasher at the given cost. Zero or negative
// cost falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{Cost: cost}
}

// Hash generates a bcrypt digest of password. The digest embeds the
// cost and salt, so Verify needs no extra parameters.
func (h *BcryptHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", apperrors.ValidationField("password", "password must not be empty")
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.Cost)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to hash password")
	}
	return string(digest), nil
}

// Verify checks password against a stored digest. Mismatches and
// malformed digests both return an unauthorized error so callers do not
// leak whether the stored hash or the password was at fault.
func (h *BcryptHasher) Verify(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return apperrors.Unauthorized("invalid credentials")
	}
	return nil
}
