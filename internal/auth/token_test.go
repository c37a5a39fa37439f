package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-for-token-tests"

func newTestCodec() *TokenCodec {
	return NewTokenCodec(testSecret, 8*time.Hour, "bookingd")
}

func TestTokenCodec_IssueAndParse(t *testing.T) {
	t.Parallel()

	codec := newTestCodec()
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	raw, err := codec.Issue("8a6b6f0e-0a1e-4a54-9c2f-1f4f7d1f0001", []string{"admin", "user"}, now)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := codec.Parse(raw, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "8a6b6f0e-0a1e-4a54-9c2f-1f4f7d1f0001", claims.Subject)
	assert.Equal(t, []string{"admin", "user"}, claims.Roles)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, now.Add(8*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestTokenCodec_IssueEmptySubject(t *testing.T) {
	t.Parallel()

	codec := newTestCodec()

	_, err := codec.Issue("", nil, time.Now())
	require.Error(t, err)
}

func TestTokenCodec_ParseExpired(t *testing.T) {
	t.Parallel()

	codec := newTestCodec()
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	raw, err := codec.Issue("subject-1", []string{"user"}, now)
	require.NoError(t, err)

	_, err = codec.Parse(raw, now.Add(9*time.Hour))
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenCodec_ParseWrongSecret(t *testing.T) {
	t.Parallel()

	codec := newTestCodec()
	other := NewTokenCodec("a-different-secret", 8*time.Hour, "bookingd")
	now := time.Now()

	raw, err := other.Issue("subject-1", []string{"user"}, now)
	require.NoError(t, err)

	_, err = codec.Parse(raw, now)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestTokenCodec_ParseMalformed(t *testing.T) {
	t.Parallel()

	codec := newTestCodec()

	_, err := codec.Parse("not.a.token", time.Now())
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestTokenCodec_ParseWrongIssuer(t *testing.T) {
	t.Parallel()

	codec := newTestCodec()
	other := NewTokenCodec(testSecret, 8*time.Hour, "someone-else")
	now := time.Now()

	raw, err := other.Issue("subject-1", nil, now)
	require.NoError(t, err)

	_, err = codec.Parse(raw, now)
	assert.ErrorIs(t, err, ErrTokenMalformed)
}

func TestTokenCodec_ParseRejectsUnsignedToken(t *testing.T) {
	t.Parallel()

	codec := newTestCodec()
	now := time.Now()

	// alg=none tokens must never validate, whatever their claims say.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    "bookingd",
		Subject:   "subject-1",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = codec.Parse(raw, now)
	require.Error(t, err)
}

func TestTokenCodec_TTL(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec(testSecret, 30*time.Minute, "bookingd")
	assert.Equal(t, 30*time.Minute, codec.TTL())
}
