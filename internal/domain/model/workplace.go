package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxWorkplaceLabelLen = 64

// Workplace represents a single bookable desk inside a room.
type Workplace struct {
	ID         string    `json:"id"          db:"id"`
	RoomID     string    `json:"room_id"     db:"room_id"`
	Label      string    `json:"label"       db:"label"`
	HasMonitor bool      `json:"has_monitor" db:"has_monitor"`
	HasDock    bool      `json:"has_dock"    db:"has_dock"`
	Active     bool      `json:"active"      db:"active"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"  db:"updated_at"`
}

// CreateWorkplaceRequest represents parameters to create a Workplace.
type CreateWorkplaceRequest struct {
	RoomID     string `json:"room_id"`
	Label      string `json:"label"`
	HasMonitor bool   `json:"has_monitor"`
	HasDock    bool   `json:"has_dock"`
}

// UpdateWorkplaceRequest represents parameters to partially update a Workplace.
type UpdateWorkplaceRequest struct {
	RoomID     *string `json:"room_id,omitempty"`
	Label      *string `json:"label,omitempty"`
	HasMonitor *bool   `json:"has_monitor,omitempty"`
	HasDock    *bool   `json:"has_dock,omitempty"`
	Active     *bool   `json:"active,omitempty"`
}

// WorkplaceListOptions controls paging and filtering for listing workplaces.
// Label matches via ILIKE substring; the rest match exactly. OfficeID
// restricts through the room's office.
type WorkplaceListOptions struct {
	Limit      int
	Offset     int
	Label      *string
	RoomID     *string
	OfficeID   *string
	HasMonitor *bool
	HasDock    *bool
	Active     *bool
	Sort       string
	Dir        string
}

// Validate validates CreateWorkplaceRequest.
func (r *CreateWorkplaceRequest) Validate() error {
	if strings.TrimSpace(r.RoomID) == "" {
		return errors.New("room_id is required")
	}
	label := strings.TrimSpace(r.Label)
	if label == "" {
		return errors.New("label is required and cannot be empty")
	}
	if utf8.RuneCountInString(label) > maxWorkplaceLabelLen {
		return errors.New("label cannot exceed 64 characters")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateWorkplaceRequest.
func (r *UpdateWorkplaceRequest) HasUpdates() bool {
	return r.RoomID != nil || r.Label != nil || r.HasMonitor != nil || r.HasDock != nil || r.Active != nil
}

// Validate validates UpdateWorkplaceRequest.
func (r *UpdateWorkplaceRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.RoomID != nil && strings.TrimSpace(*r.RoomID) == "" {
		return errors.New("room_id cannot be empty")
	}
	if r.Label != nil {
		l := strings.TrimSpace(*r.Label)
		if l == "" {
			return errors.New("label cannot be empty")
		}
		if utf8.RuneCountInString(l) > maxWorkplaceLabelLen {
			return errors.New("label cannot exceed 64 characters")
		}
	}
	return nil
}
