package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/deskhub/booking-api/internal/domain/auth"
	apperrors "github.com/deskhub/booking-api/internal/errors"
)

// Token parse failures. Middleware maps all three to a 401 response;
// the split exists for logging and tests.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenSignature = errors.New("token signature invalid")
	ErrTokenMalformed = errors.New("token malformed")
)

// tokenClaims is the on-wire JWT payload.
type tokenClaims struct {
	jwt.RegisteredClaims
	Roles []string `json:"roles,omitempty"`
}

// TokenCodec issues and parses signed HS256 access tokens. Tokens are
// stateless: there is no server-side session or revocation list, a
// token stays valid until its expiry.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewTokenCodec builds a codec from the shared signing secret, the
// token lifetime, and the issuer name embedded in every token.
func NewTokenCodec(secret string, ttl time.Duration, issuer string) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
	}
}

// TTL reports the configured token lifetime.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for subject carrying the given role names. The
// token expires ttl after now.
func (c *TokenCodec) Issue(subject string, roles []string, now time.Time) (string, error) {
	if subject == "" {
		return "", apperrors.Validation("token subject must not be empty")
	}

	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Roles: roles,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to sign token")
	}
	return signed, nil
}

// Parse validates raw and returns its claims. Expiry is evaluated
// against now. Returns ErrTokenExpired, ErrTokenSignature, or
// ErrTokenMalformed on failure.
func (c *TokenCodec) Parse(raw string, now time.Time) (*domainauth.Claims, error) {
	claims := &tokenClaims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
		jwt.WithIssuer(c.issuer),
	)

	token, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenSignature
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignature
		default:
			return nil, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	out := &domainauth.Claims{
		Subject: claims.Subject,
		Roles:   claims.Roles,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
