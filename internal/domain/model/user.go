package model

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxFullNameLen = 255
	maxEmailLen    = 255
	maxPhoneLen    = 32
	minPasswordLen = 8
)

// emailPattern is a loose structural check; real validation happens at
// delivery time anyway.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// phonePattern accepts digits with an optional leading + and common
// separators.
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{3,}$`)

// User represents a registered identity. PasswordHash never leaves the
// service over the wire. Deactivation is a soft delete: the row stays, the
// active flag flips.
type User struct {
	ID           string    `json:"id"         db:"id"`
	FullName     string    `json:"full_name"  db:"full_name"`
	Phone        string    `json:"phone"      db:"phone"`
	Email        string    `json:"email"      db:"email"`
	PasswordHash string    `json:"-"          db:"password_hash"`
	Active       bool      `json:"active"     db:"active"`
	Roles        []string  `json:"roles"      db:"-"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// CreateUserRequest represents parameters to register a User.
// Password is plaintext on input; the service hashes it before it reaches
// the repository.
type CreateUserRequest struct {
	FullName string   `json:"full_name"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles,omitempty"`
}

// UpdateUserRequest represents parameters to partially update a User.
// Only non-nil fields overwrite stored values.
type UpdateUserRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UserListOptions controls paging and filtering for listing users.
// Notes:
// - FIO matches full_name via ILIKE substring.
// - Email and Phone match exactly.
// - Role restricts to users holding the given role name.
// - Sort supports: "created_at", "full_name", "email" (case-insensitive).
type UserListOptions struct {
	Limit  int
	Offset int
	FIO    *string // substring match on full_name (ILIKE)
	Email  *string // exact match
	Phone  *string // exact match
	Active *bool   // exact match
	Role   *string // membership in user_roles
	Sort   string
	Dir    string
}

// Validate validates CreateUserRequest.
func (r *CreateUserRequest) Validate() error {
	name := strings.TrimSpace(r.FullName)
	if name == "" {
		return errors.New("full_name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxFullNameLen {
		return errors.New("full_name cannot exceed 255 characters")
	}
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if err := validatePhone(r.Phone); err != nil {
		return err
	}
	if utf8.RuneCountInString(r.Password) < minPasswordLen {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateUserRequest.
func (r *UpdateUserRequest) HasUpdates() bool {
	return r.FullName != nil || r.Phone != nil || r.Email != nil || r.Password != nil
}

// Validate validates UpdateUserRequest, ensuring at least one field is set
// and values are sane.
func (r *UpdateUserRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.FullName != nil {
		n := strings.TrimSpace(*r.FullName)
		if n == "" {
			return errors.New("full_name cannot be empty")
		}
		if utf8.RuneCountInString(n) > maxFullNameLen {
			return errors.New("full_name cannot exceed 255 characters")
		}
	}
	if r.Email != nil {
		if err := validateEmail(*r.Email); err != nil {
			return err
		}
	}
	if r.Phone != nil {
		if err := validatePhone(*r.Phone); err != nil {
			return err
		}
	}
	if r.Password != nil && utf8.RuneCountInString(*r.Password) < minPasswordLen {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required and cannot be empty")
	}
	if utf8.RuneCountInString(email) > maxEmailLen {
		return errors.New("email cannot exceed 255 characters")
	}
	if !emailPattern.MatchString(email) {
		return errors.New("email must be a valid address")
	}
	return nil
}

func validatePhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errors.New("phone is required and cannot be empty")
	}
	if utf8.RuneCountInString(phone) > maxPhoneLen {
		return errors.New("phone cannot exceed 32 characters")
	}
	if !phonePattern.MatchString(phone) {
		return errors.New("phone must contain only digits, spaces, parentheses, and dashes")
	}
	return nil
}
