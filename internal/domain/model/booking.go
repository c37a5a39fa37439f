package model

import (
	"errors"
	"strings"
	"time"
)

// BookingStatus tracks the lifecycle of a booking. Cancellation is a soft
// state flip, never a row delete.
type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Valid reports whether the booking status is supported.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusActive, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// ParseBookingStatus normalizes a status string and reports whether it is supported.
func ParseBookingStatus(value string) (BookingStatus, bool) {
	status := BookingStatus(strings.ToLower(strings.TrimSpace(value)))
	if status.Valid() {
		return status, true
	}
	return "", false
}

// Booking represents a time-boxed reservation of a workplace by a user.
type Booking struct {
	ID          string        `json:"id"           db:"id"`
	UserID      string        `json:"user_id"      db:"user_id"`
	WorkplaceID string        `json:"workplace_id" db:"workplace_id"`
	StartsAt    time.Time     `json:"starts_at"    db:"starts_at"`
	EndsAt      time.Time     `json:"ends_at"      db:"ends_at"`
	Status      BookingStatus `json:"status"       db:"status"`
	CreatedAt   time.Time     `json:"created_at"   db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"   db:"updated_at"`
}

// CreateBookingRequest represents parameters to create a Booking.
// UserID comes from the authenticated principal, not the request body.
type CreateBookingRequest struct {
	UserID      string    `json:"-"`
	WorkplaceID string    `json:"workplace_id"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
}

// UpdateBookingRequest represents parameters to partially update a Booking.
type UpdateBookingRequest struct {
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}

// BookingListOptions controls paging and filtering for listing bookings.
// From/To bound the booking window: a booking matches when it overlaps
// the [From, To) interval.
type BookingListOptions struct {
	Limit       int
	Offset      int
	UserID      *string
	WorkplaceID *string
	Status      *BookingStatus
	From        *time.Time
	To          *time.Time
	Sort        string
	Dir         string
}

// Validate validates CreateBookingRequest.
func (r *CreateBookingRequest) Validate() error {
	if strings.TrimSpace(r.WorkplaceID) == "" {
		return errors.New("workplace_id is required")
	}
	if r.StartsAt.IsZero() || r.EndsAt.IsZero() {
		return errors.New("starts_at and ends_at are required")
	}
	if !r.StartsAt.Before(r.EndsAt) {
		return errors.New("starts_at must be before ends_at")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateBookingRequest.
func (r *UpdateBookingRequest) HasUpdates() bool {
	return r.StartsAt != nil || r.EndsAt != nil
}

// Validate validates UpdateBookingRequest. Window ordering against stored
// values is checked by the service, which has the full record.
func (r *UpdateBookingRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.StartsAt != nil && r.EndsAt != nil && !r.StartsAt.Before(*r.EndsAt) {
		return errors.New("starts_at must be before ends_at")
	}
	return nil
}

// Overlaps reports whether the booking window intersects [from, to).
func (b *Booking) Overlaps(from, to time.Time) bool {
	return b.StartsAt.Before(to) && from.Before(b.EndsAt)
}
