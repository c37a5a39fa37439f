package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deskhub/booking-api/internal/core"
	"github.com/deskhub/booking-api/internal/data"
	domainauth "github.com/deskhub/booking-api/internal/domain/auth"
	"github.com/deskhub/booking-api/internal/domain/model"
	apperrors "github.com/deskhub/booking-api/internal/errors"
)

// UserServiceOptions groups dependencies for UserService.
type UserServiceOptions struct {
	Users  core.UserRepository
	Hasher core.PasswordHasher
	Logger DebugLogger // optional
}

// UserService provides administrative user management. Self-registration
// goes through AuthService instead.
type UserService struct {
	users  core.UserRepository
	hasher core.PasswordHasher
	log    DebugLogger
}

// NewUserService constructs a new UserService.
func NewUserService(opts UserServiceOptions) *UserService {
	return &UserService{
		users:  opts.Users,
		hasher: opts.Hasher,
		log:    opts.Logger,
	}
}

// UserListResult is a page of users plus the unpaged total.
type UserListResult struct {
	Items []*model.User `json:"items"`
	Total int64         `json:"total"`
}

// Create creates a user with explicit roles. Unknown role names are
// rejected before touching the database.
func (s *UserService) Create(ctx context.Context, req *model.CreateUserRequest) (*model.User, error) {
	if req == nil {
		return nil, apperrors.Validation("create user request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	roles := req.Roles
	if len(roles) == 0 {
		roles = []string{string(domainauth.RoleUser)}
	}
	for _, r := range roles {
		if _, ok := domainauth.ParseRole(r); !ok {
			return nil, apperrors.ValidationField("roles", fmt.Sprintf("unknown role %q", r))
		}
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
		Roles:        roles,
	})
	if err != nil {
		return nil, mapUserWriteErr(err)
	}
	user.PasswordHash = ""
	return user, nil
}

// GetByID returns a user by ID without the password hash.
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	user.PasswordHash = ""
	return user, nil
}

// List returns a page of users with the total matching count.
func (s *UserService) List(ctx context.Context, opts model.UserListOptions) (*UserListResult, error) {
	users, err := s.users.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	total, err := s.users.Count(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	for _, u := range users {
		u.PasswordHash = ""
	}
	return &UserListResult{Items: users, Total: total}, nil
}

// Update applies a partial update. A new password is hashed here so the
// repo only ever stores hashes.
func (s *UserService) Update(ctx context.Context, id string, req model.UpdateUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	params := core.UpdateUserParams{
		FullName: req.FullName,
		Phone:    req.Phone,
		Email:    req.Email,
	}
	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		params.PasswordHash = &hash
	}

	user, err := s.users.Update(ctx, id, params)
	if err != nil {
		return nil, mapUserWriteErr(err)
	}
	user.PasswordHash = ""
	return user, nil
}

// SetActive toggles whether the user may log in. Deactivation keeps the
// account and its history.
func (s *UserService) SetActive(ctx context.Context, id string, active bool) (*model.User, error) {
	user, err := s.users.SetActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, data.ErrUserNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, fmt.Errorf("set user active: %w", err)
	}
	user.PasswordHash = ""
	return user, nil
}

// ReplaceRoles replaces the user's role set.
func (s *UserService) ReplaceRoles(ctx context.Context, id string, roles []string) (*model.User, error) {
	if len(roles) == 0 {
		return nil, apperrors.ValidationField("roles", "at least one role is required")
	}
	for _, r := range roles {
		if _, ok := domainauth.ParseRole(r); !ok {
			return nil, apperrors.ValidationField("roles", fmt.Sprintf("unknown role %q", r))
		}
	}
	if err := s.users.ReplaceRoles(ctx, id, roles); err != nil {
		return nil, mapUserWriteErr(err)
	}
	return s.GetByID(ctx, id)
}

// Delete removes a user. Users with bookings or breakage reports are
// blocked by foreign keys; deactivate them instead.
func (s *UserService) Delete(ctx context.Context, id string) error {
	ok, err := s.users.Delete(ctx, id)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	if !ok {
		return apperrors.NotFound("user not found")
	}
	return nil
}
