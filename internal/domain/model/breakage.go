package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const maxBreakageDescriptionLen = 2000

// BreakageStatus tracks the handling state of an equipment breakage report.
type BreakageStatus string

const (
	BreakageStatusOpen       BreakageStatus = "open"
	BreakageStatusInProgress BreakageStatus = "in_progress"
	BreakageStatusResolved   BreakageStatus = "resolved"
)

// Valid reports whether the breakage status is supported.
func (s BreakageStatus) Valid() bool {
	switch s {
	case BreakageStatusOpen, BreakageStatusInProgress, BreakageStatusResolved:
		return true
	default:
		return false
	}
}

// ParseBreakageStatus normalizes a status string and reports whether it is supported.
func ParseBreakageStatus(value string) (BreakageStatus, bool) {
	status := BreakageStatus(strings.ToLower(strings.TrimSpace(value)))
	if status.Valid() {
		return status, true
	}
	return "", false
}

// BreakageReport represents an equipment breakage reported for a workplace.
type BreakageReport struct {
	ID          string         `json:"id"           db:"id"`
	UserID      string         `json:"user_id"      db:"user_id"`
	WorkplaceID string         `json:"workplace_id" db:"workplace_id"`
	Description string         `json:"description"  db:"description"`
	Status      BreakageStatus `json:"status"       db:"status"`
	CreatedAt   time.Time      `json:"created_at"   db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"   db:"updated_at"`
}

// CreateBreakageRequest represents parameters to file a BreakageReport.
// UserID comes from the authenticated principal.
type CreateBreakageRequest struct {
	UserID      string `json:"-"`
	WorkplaceID string `json:"workplace_id"`
	Description string `json:"description"`
}

// UpdateBreakageRequest represents parameters to partially update a BreakageReport.
type UpdateBreakageRequest struct {
	Description *string         `json:"description,omitempty"`
	Status      *BreakageStatus `json:"status,omitempty"`
}

// BreakageListOptions controls paging and filtering for listing breakage reports.
// Description matches via ILIKE substring; the rest match exactly.
type BreakageListOptions struct {
	Limit       int
	Offset      int
	UserID      *string
	WorkplaceID *string
	Status      *BreakageStatus
	Description *string
	Sort        string
	Dir         string
}

// Validate validates CreateBreakageRequest.
func (r *CreateBreakageRequest) Validate() error {
	if strings.TrimSpace(r.WorkplaceID) == "" {
		return errors.New("workplace_id is required")
	}
	desc := strings.TrimSpace(r.Description)
	if desc == "" {
		return errors.New("description is required and cannot be empty")
	}
	if utf8.RuneCountInString(desc) > maxBreakageDescriptionLen {
		return errors.New("description cannot exceed 2000 characters")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateBreakageRequest.
func (r *UpdateBreakageRequest) HasUpdates() bool {
	return r.Description != nil || r.Status != nil
}

// Validate validates UpdateBreakageRequest.
func (r *UpdateBreakageRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			return errors.New("description cannot be empty")
		}
		if utf8.RuneCountInString(d) > maxBreakageDescriptionLen {
			return errors.New("description cannot exceed 2000 characters")
		}
	}
	if r.Status != nil {
		status := BreakageStatus(strings.ToLower(strings.TrimSpace(string(*r.Status))))
		if !status.Valid() {
			return errors.New("status must be one of: open, in_progress, resolved")
		}
		*r.Status = status
	}
	return nil
}
