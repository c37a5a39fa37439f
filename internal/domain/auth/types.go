package auth

// Package auth contains domain-level types for authentication and
// authorization. It is pure and free of framework/adapter concerns.

import (
	"strings"
	"time"
)

// Role represents an application authorization role.
// Keep string form for easy persistence and token claims.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether the role is one of the supported values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// ParseRole normalizes a role string and reports whether it is supported.
func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	if role.Valid() {
		return role, true
	}
	return "", false
}

// RoleSet is a validated set of roles with a defined membership check.
// It replaces ad hoc string comparison at call sites.
type RoleSet map[Role]struct{}

// NewRoleSet builds a RoleSet from role names, dropping unknown values.
func NewRoleSet(names ...string) RoleSet {
	set := make(RoleSet, len(names))
	for _, n := range names {
		if role, ok := ParseRole(n); ok {
			set[role] = struct{}{}
		}
	}
	return set
}

// Has reports whether the set contains the given role.
func (s RoleSet) Has(role Role) bool {
	_, ok := s[role]
	return ok
}

// Names returns the sorted-insensitive string form of the set, suitable
// for embedding in token claims.
func (s RoleSet) Names() []string {
	names := make([]string, 0, len(s))
	for _, role := range []Role{RoleAdmin, RoleUser} {
		if s.Has(role) {
			names = append(names, string(role))
		}
	}
	return names
}

// Claims is the decoded payload of a token: subject, role names, and the
// validity window. Ephemeral; reconstructed from the signed token on every
// request and never persisted.
type Claims struct {
	Subject   string
	Roles     []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Principal is the transient request-scoped identity built from Claims.
// It lives for the duration of one request. A nil *Principal means the
// request is anonymous.
type Principal struct {
	Subject string
	Roles   RoleSet
}

// PrincipalFromClaims builds a request identity from parsed token claims.
func PrincipalFromClaims(c *Claims) *Principal {
	if c == nil {
		return nil
	}
	return &Principal{
		Subject: c.Subject,
		Roles:   NewRoleSet(c.Roles...),
	}
}

// Authorize is the access decision predicate.
// Allow iff required is empty (public endpoint), or the principal is
// authenticated and its role set intersects required (logical OR).
// An anonymous principal denies any non-empty requirement.
func Authorize(p *Principal, required ...Role) bool {
	if len(required) == 0 {
		return true
	}
	if p == nil {
		return false
	}
	for _, role := range required {
		if p.Roles.Has(role) {
			return true
		}
	}
	return false
}
