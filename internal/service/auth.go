// Package service contains the business logic layer. Services depend on
// the ports in internal/core and translate repository sentinels into the
// application error taxonomy consumed by the HTTP layer.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/deskhub/booking-api/internal/auth"
	"github.com/deskhub/booking-api/internal/core"
	"github.com/deskhub/booking-api/internal/data"
	domainauth "github.com/deskhub/booking-api/internal/domain/auth"
	"github.com/deskhub/booking-api/internal/domain/model"
	apperrors "github.com/deskhub/booking-api/internal/errors"
)

// DebugLogger is a minimal logger interface for optional debug logging.
type DebugLogger interface {
	Debug(msg string, keyvals ...any)
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Users  core.UserRepository
	Hasher core.PasswordHasher
	Tokens core.TokenCodec
	Logger DebugLogger      // optional
	Now    func() time.Time // optional, defaults to time.Now
}

// AuthService handles registration, credential login, and token checks.
type AuthService struct {
	users  core.UserRepository
	hasher core.PasswordHasher
	tokens core.TokenCodec
	log    DebugLogger
	now    func() time.Time
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		users:  opts.Users,
		hasher: opts.Hasher,
		tokens: opts.Tokens,
		log:    opts.Logger,
		now:    now,
	}
}

// LoginResult contains the issued token and the authenticated user.
type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *model.User `json:"user"`
}

// Login verifies credentials against the stored hash and issues a signed
// token. The login value matches email (case-insensitive) or phone.
// Unknown and deactivated accounts report NotFound; a wrong password on a
// live account reports invalid credentials.
func (s *AuthService) Login(ctx context.Context, login, password string) (*LoginResult, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, apperrors.ValidationField("login", "login is required")
	}
	if password == "" {
		return nil, apperrors.ValidationField("password", "password is required")
	}

	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, fmt.Errorf("find user by login: %w", err)
	}
	if !user.Active {
		return nil, apperrors.NotFound("user not found")
	}
	if verifyErr := s.hasher.Verify(user.PasswordHash, password); verifyErr != nil {
		if s.log != nil {
			s.log.Debug("password verification failed", "userID", user.ID)
		}
		return nil, apperrors.Unauthorized("invalid credentials")
	}

	now := s.now()
	token, err := s.tokens.Issue(user.ID, user.Roles, now)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	user.PasswordHash = ""
	return &LoginResult{
		Token:     token,
		ExpiresAt: now.Add(s.tokens.TTL()),
		User:      user,
	}, nil
}

// Register creates a new account with the default user role. Admin role
// assignment goes through UserService, never through self-registration.
func (s *AuthService) Register(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if req == nil {
		return nil, apperrors.Validation("registration request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, core.CreateUserParams{
		FullName:     req.FullName,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: hash,
		Roles:        []string{string(domainauth.RoleUser)},
	})
	if err != nil {
		return nil, mapUserWriteErr(err)
	}
	user.PasswordHash = ""
	return user, nil
}

// AuthenticateToken parses a bearer token and returns the principal it
// carries. All parse failures map to Unauthorized; the message tells an
// expired token apart from a tampered or malformed one so clients know
// whether to re-authenticate.
func (s *AuthService) AuthenticateToken(raw string) (*domainauth.Principal, error) {
	claims, err := s.tokens.Parse(raw, s.now())
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrTokenExpired):
			return nil, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "token expired")
		case errors.Is(err, auth.ErrTokenSignature):
			return nil, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "token signature invalid")
		default:
			return nil, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "invalid token")
		}
	}
	return domainauth.PrincipalFromClaims(claims), nil
}

// mapUserWriteErr translates user repo sentinels into application errors.
func mapUserWriteErr(err error) error {
	switch {
	case errors.Is(err, data.ErrUserEmailExists):
		e := apperrors.Conflict("a user with this email already exists")
		e.Field = "email"
		return e
	case errors.Is(err, data.ErrUserPhoneExists):
		e := apperrors.Conflict("a user with this phone already exists")
		e.Field = "phone"
		return e
	case errors.Is(err, data.ErrRoleNotFound):
		return apperrors.ValidationField("roles", "unknown role")
	case errors.Is(err, data.ErrUserNotFound):
		return apperrors.NotFound("user not found")
	default:
		return err
	}
}
