package httpx

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// StrTrue represents the string "true" for boolean query parameters.
	StrTrue = "true"
	// StrFalse represents the string "false" for boolean query parameters.
	StrFalse = "false"
	// SortDirAsc represents ascending sort direction.
	SortDirAsc = "asc"
	// SortDirDesc represents descending sort direction.
	SortDirDesc = "desc"
)

// ParseSortParam extracts and validates sort field and direction from URL query parameters.
// It supports two formats:
// 1. Combined format: ?sort=field:dir (e.g., ?sort=created_at:desc)
// 2. Separate format: ?sort=field&dir=direction (e.g., ?sort=created_at&dir=desc)
//
// The direction is normalized to lowercase and validated (must be "asc" or "desc").
// If the direction is invalid, it returns an empty string for dir.
func ParseSortParam(q url.Values, sortKey, dirKey string) (string, string) {
	sortParam := strings.TrimSpace(q.Get(sortKey))
	dirParam := strings.ToLower(strings.TrimSpace(q.Get(dirKey)))

	parts := strings.SplitN(sortParam, ":", 2)
	if len(parts) == 2 {
		fieldPart := strings.TrimSpace(parts[0])
		dirPart := strings.ToLower(strings.TrimSpace(parts[1]))
		if dirPart == SortDirAsc || dirPart == SortDirDesc {
			return fieldPart, dirPart
		}
		// Invalid direction in colon syntax, return field only
		return fieldPart, ""
	}

	if dirParam == SortDirAsc || dirParam == SortDirDesc {
		return sortParam, dirParam
	}

	return sortParam, ""
}

// QueryStringPtr returns a pointer to the trimmed query param value, or nil
// when the param is absent or blank. List options treat nil as "no filter",
// so these helpers compose filters straight from the URL.
func QueryStringPtr(q url.Values, key string) *string {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil
	}
	return &v
}

// QueryBoolPtr returns a pointer to the boolean value of a query param, or
// nil when the param is absent or not "true"/"false".
func QueryBoolPtr(q url.Values, key string) *bool {
	switch strings.ToLower(strings.TrimSpace(q.Get(key))) {
	case StrTrue:
		v := true
		return &v
	case StrFalse:
		v := false
		return &v
	default:
		return nil
	}
}

// QueryIntPtr returns a pointer to the integer value of a query param, or
// nil when the param is absent or malformed.
func QueryIntPtr(q url.Values, key string) *int {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &i
}

// QueryTimePtr returns a pointer to the RFC 3339 timestamp value of a query
// param, or nil when the param is absent or malformed.
func QueryTimePtr(q url.Values, key string) *time.Time {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil
	}
	return &t
}
