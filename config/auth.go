package config

import "time"

const (
	minBcryptCost = 4
	maxBcryptCost = 31
	defBcryptCost = 12
)

// AuthConfig groups token signing and password hashing configuration.
// The signing key is process-wide immutable configuration: it is read once
// at startup and never mutated afterwards.
type AuthConfig struct {
	// JWTSecret is the symmetric HMAC key used to sign and verify tokens.
	// Required; the service refuses to start without it.
	JWTSecret string `env:"JWT_SECRET,required"`

	// TokenTTL is the validity window of issued tokens. Expiry is the only
	// revocation mechanism; there is no server-side token store.
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"8h"`

	// Issuer is the iss claim stamped on issued tokens.
	Issuer string `env:"ISSUER" envDefault:"bookingd"`

	// BcryptCost is the bcrypt work factor for password hashing.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"12"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.TokenTTL <= 0 {
		a.TokenTTL = 8 * time.Hour
	}
	if a.BcryptCost < minBcryptCost || a.BcryptCost > maxBcryptCost {
		a.BcryptCost = defBcryptCost
	}
}
