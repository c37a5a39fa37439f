package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxRoomNameLen = 255

// Room represents a bookable room inside an office.
type Room struct {
	ID        string    `json:"id"         db:"id"`
	OfficeID  string    `json:"office_id"  db:"office_id"`
	Name      string    `json:"name"       db:"name"`
	Floor     int       `json:"floor"      db:"floor"`
	Capacity  int       `json:"capacity"   db:"capacity"`
	Active    bool      `json:"active"     db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateRoomRequest represents parameters to create a Room.
type CreateRoomRequest struct {
	OfficeID string `json:"office_id"`
	Name     string `json:"name"`
	Floor    int    `json:"floor"`
	Capacity int    `json:"capacity"`
}

// UpdateRoomRequest represents parameters to partially update a Room.
type UpdateRoomRequest struct {
	OfficeID *string `json:"office_id,omitempty"`
	Name     *string `json:"name,omitempty"`
	Floor    *int    `json:"floor,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

// RoomListOptions controls paging and filtering for listing rooms.
// Name matches via ILIKE substring; OfficeID, Floor, and Active match
// exactly; MinCapacity is a lower bound.
type RoomListOptions struct {
	Limit       int
	Offset      int
	Name        *string
	OfficeID    *string
	Floor       *int
	MinCapacity *int
	Active      *bool
	Sort        string
	Dir         string
}

// Validate validates CreateRoomRequest.
func (r *CreateRoomRequest) Validate() error {
	if strings.TrimSpace(r.OfficeID) == "" {
		return errors.New("office_id is required")
	}
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxRoomNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	if r.Capacity <= 0 {
		return errors.New("capacity must be at least 1")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateRoomRequest.
func (r *UpdateRoomRequest) HasUpdates() bool {
	return r.OfficeID != nil || r.Name != nil || r.Floor != nil || r.Capacity != nil || r.Active != nil
}

// Validate validates UpdateRoomRequest.
func (r *UpdateRoomRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.OfficeID != nil && strings.TrimSpace(*r.OfficeID) == "" {
		return errors.New("office_id cannot be empty")
	}
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		if n == "" {
			return errors.New("name cannot be empty")
		}
		if utf8.RuneCountInString(n) > maxRoomNameLen {
			return errors.New("name cannot exceed 255 characters")
		}
	}
	if r.Capacity != nil && *r.Capacity <= 0 {
		return errors.New("capacity must be at least 1")
	}
	return nil
}
