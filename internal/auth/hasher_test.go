package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/deskhub/booking-api/internal/errors"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("password123")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, "password123", digest)

	assert.NoError(t, h.Verify(digest, "password123"))
}

func TestBcryptHasher_VerifyMismatch(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)

	digest, err := h.Hash("password123")
	require.NoError(t, err)

	err = h.Verify(digest, "wrong-password")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestBcryptHasher_VerifyGarbageHash(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)

	err := h.Verify("not-a-bcrypt-digest", "password123")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestBcryptHasher_HashEmptyPassword(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)

	_, err := h.Hash("")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "password", apperrors.GetField(err))
}

func TestBcryptHasher_SaltedDigestsDiffer(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)

	first, err := h.Hash("password123")
	require.NoError(t, err)
	second, err := h.Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(0)
	assert.Equal(t, bcrypt.DefaultCost, h.Cost)
}
