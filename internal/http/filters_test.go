package httpx

import (
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLimitOffset(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		defLimit   int
		maxLimit   int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", query: "", defLimit: 50, maxLimit: 100, wantLimit: 50, wantOffset: 0},
		{name: "explicit", query: "limit=10&offset=20", defLimit: 50, maxLimit: 100, wantLimit: 10, wantOffset: 20},
		{name: "clamps to max", query: "limit=500", defLimit: 50, maxLimit: 100, wantLimit: 100, wantOffset: 0},
		{name: "negative offset", query: "offset=-5", defLimit: 50, maxLimit: 100, wantLimit: 50, wantOffset: 0},
		{name: "zero limit", query: "limit=0", defLimit: 50, maxLimit: 100, wantLimit: 1, wantOffset: 0},
		{name: "garbage ignored", query: "limit=abc&offset=xyz", defLimit: 50, maxLimit: 100, wantLimit: 50, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/?"+tt.query, nil)
			limit, offset := ParseLimitOffset(r, tt.defLimit, tt.maxLimit)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestParseSortParam(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantSort string
		wantDir  string
	}{
		{name: "colon format", query: "sort=created_at:desc", wantSort: "created_at", wantDir: "desc"},
		{name: "separate params", query: "sort=name&dir=asc", wantSort: "name", wantDir: "asc"},
		{name: "invalid dir dropped", query: "sort=name&dir=sideways", wantSort: "name", wantDir: ""},
		{name: "invalid colon dir", query: "sort=name:sideways", wantSort: "name", wantDir: ""},
		{name: "empty", query: "", wantSort: "", wantDir: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			sort, dir := ParseSortParam(q, "sort", "dir")
			assert.Equal(t, tt.wantSort, sort)
			assert.Equal(t, tt.wantDir, dir)
		})
	}
}

func TestQueryStringPtr(t *testing.T) {
	q := url.Values{"name": {"  hub  "}, "blank": {"   "}}

	got := QueryStringPtr(q, "name")
	require.NotNil(t, got)
	assert.Equal(t, "hub", *got)

	assert.Nil(t, QueryStringPtr(q, "blank"))
	assert.Nil(t, QueryStringPtr(q, "missing"))
}

func TestQueryBoolPtr(t *testing.T) {
	q := url.Values{"a": {"true"}, "b": {"FALSE"}, "c": {"maybe"}}

	a := QueryBoolPtr(q, "a")
	require.NotNil(t, a)
	assert.True(t, *a)

	b := QueryBoolPtr(q, "b")
	require.NotNil(t, b)
	assert.False(t, *b)

	assert.Nil(t, QueryBoolPtr(q, "c"))
	assert.Nil(t, QueryBoolPtr(q, "missing"))
}

func TestQueryIntPtr(t *testing.T) {
	q := url.Values{"floor": {"3"}, "bad": {"three"}}

	floor := QueryIntPtr(q, "floor")
	require.NotNil(t, floor)
	assert.Equal(t, 3, *floor)

	assert.Nil(t, QueryIntPtr(q, "bad"))
	assert.Nil(t, QueryIntPtr(q, "missing"))
}

func TestQueryTimePtr(t *testing.T) {
	q := url.Values{
		"from": {"2025-06-02T09:00:00Z"},
		"bad":  {"yesterday"},
	}

	from := QueryTimePtr(q, "from")
	require.NotNil(t, from)
	assert.Equal(t, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), from.UTC())

	assert.Nil(t, QueryTimePtr(q, "bad"))
	assert.Nil(t, QueryTimePtr(q, "missing"))
}

func TestPathID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr string
	}{
		{name: "valid uuid", id: "550e8400-e29b-41d4-a716-446655440000"},
		{name: "missing", id: "", wantErr: "office id is required"},
		{name: "not a uuid", id: "42", wantErr: "office id must be a valid UUID"},
		{name: "whitespace only", id: "  ", wantErr: "office id is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/api/offices/x", nil)
			r.SetPathValue("id", tt.id)

			id, err := PathID(r, "office")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, id)
		})
	}
}
