package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_Validate(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	t.Run("valid window passes", func(t *testing.T) {
		req := CreateBookingRequest{
			WorkplaceID: "wp-1",
			StartsAt:    now,
			EndsAt:      now.Add(2 * time.Hour),
		}
		require.NoError(t, req.Validate())
	})

	t.Run("missing workplace", func(t *testing.T) {
		req := CreateBookingRequest{StartsAt: now, EndsAt: now.Add(time.Hour)}
		require.Error(t, req.Validate())
	})

	t.Run("zero times", func(t *testing.T) {
		req := CreateBookingRequest{WorkplaceID: "wp-1"}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("inverted window", func(t *testing.T) {
		req := CreateBookingRequest{
			WorkplaceID: "wp-1",
			StartsAt:    now.Add(time.Hour),
			EndsAt:      now,
		}
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "before ends_at")
	})

	t.Run("zero-length window rejected", func(t *testing.T) {
		req := CreateBookingRequest{WorkplaceID: "wp-1", StartsAt: now, EndsAt: now}
		require.Error(t, req.Validate())
	})
}

func TestBooking_Overlaps(t *testing.T) {
	base := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	b := &Booking{StartsAt: base, EndsAt: base.Add(2 * time.Hour)}

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want bool
	}{
		{"identical window", base, base.Add(2 * time.Hour), true},
		{"contained window", base.Add(30 * time.Minute), base.Add(time.Hour), true},
		{"straddles start", base.Add(-time.Hour), base.Add(time.Minute), true},
		{"straddles end", base.Add(time.Hour), base.Add(3 * time.Hour), true},
		{"adjacent before", base.Add(-time.Hour), base, false},
		{"adjacent after", base.Add(2 * time.Hour), base.Add(3 * time.Hour), false},
		{"disjoint", base.Add(5 * time.Hour), base.Add(6 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Overlaps(tt.from, tt.to))
		})
	}
}

func TestParseBookingStatus(t *testing.T) {
	status, ok := ParseBookingStatus(" Active ")
	require.True(t, ok)
	assert.Equal(t, BookingStatusActive, status)

	_, ok = ParseBookingStatus("pending")
	assert.False(t, ok)
}
