package httpx

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/deskhub/booking-api/internal/errors"
)

// PathID extracts the {id} path segment and validates it is a UUID, the
// only key shape the storage layer issues. Rejecting malformed ids here
// keeps them out of repository queries.
func PathID(r *http.Request, resource string) (string, error) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		return "", apperrors.Validation(resource + " id is required")
	}
	if err := uuid.Validate(id); err != nil {
		return "", apperrors.Validation(resource + " id must be a valid UUID")
	}
	return id, nil
}

// parseIntQuery returns the integer value of a query param or a default.
// It is tolerant of missing/invalid values.
func parseIntQuery(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// ParseLimitOffset parses common pagination params and clamps to sane bounds.
// - defLimit: default limit when not specified
// - maxLimit: maximum allowed limit (values > maxLimit are clamped to maxLimit).
func ParseLimitOffset(r *http.Request, defLimit, maxLimit int) (int, int) {
	// Defensive: ensure maxLimit is at least 1 to avoid clamping to 0 or negatives
	if maxLimit < 1 {
		maxLimit = 1
	}

	lim := parseIntQuery(r, "limit", defLimit)
	off := parseIntQuery(r, "offset", 0)
	if lim < 1 {
		lim = 1
	}
	if lim > maxLimit {
		lim = maxLimit
	}
	if off < 0 {
		off = 0
	}
	return lim, off
}

// ParseTimeQuery parses an RFC 3339 timestamp query param. Returns the
// zero time when the param is absent or malformed.
func ParseTimeQuery(r *http.Request, key string) time.Time {
	v := r.URL.Query().Get(key)
	if v == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
