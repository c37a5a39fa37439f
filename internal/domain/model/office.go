package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxOfficeNameLen    = 255
	maxOfficeAddressLen = 512
)

// Office represents a physical office location. Deleting an office is a
// soft delete via the active flag; rooms keep their FK.
type Office struct {
	ID         string    `json:"id"          db:"id"`
	Name       string    `json:"name"        db:"name"`
	Address    string    `json:"address"     db:"address"`
	WorkNumber string    `json:"work_number" db:"work_number"`
	Active     bool      `json:"active"      db:"active"`
	CreatedAt  time.Time `json:"created_at"  db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"  db:"updated_at"`
}

// CreateOfficeRequest represents parameters to create an Office.
type CreateOfficeRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	WorkNumber string `json:"work_number,omitempty"`
}

// UpdateOfficeRequest represents parameters to partially update an Office.
type UpdateOfficeRequest struct {
	Name       *string `json:"name,omitempty"`
	Address    *string `json:"address,omitempty"`
	WorkNumber *string `json:"work_number,omitempty"`
	Active     *bool   `json:"active,omitempty"`
}

// OfficeListOptions controls paging and filtering for listing offices.
// Name and Address match via ILIKE substring; Active matches exactly.
type OfficeListOptions struct {
	Limit   int
	Offset  int
	Name    *string
	Address *string
	Active  *bool
	Sort    string
	Dir     string
}

// Validate validates CreateOfficeRequest.
func (r *CreateOfficeRequest) Validate() error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return errors.New("name is required and cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxOfficeNameLen {
		return errors.New("name cannot exceed 255 characters")
	}
	if strings.TrimSpace(r.Address) == "" {
		return errors.New("address is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Address) > maxOfficeAddressLen {
		return errors.New("address cannot exceed 512 characters")
	}
	return nil
}

// HasUpdates reports whether any field is set in UpdateOfficeRequest.
func (r *UpdateOfficeRequest) HasUpdates() bool {
	return r.Name != nil || r.Address != nil || r.WorkNumber != nil || r.Active != nil
}

// Validate validates UpdateOfficeRequest.
func (r *UpdateOfficeRequest) Validate() error {
	if !r.HasUpdates() {
		return errors.New("at least one field must be updated")
	}
	if r.Name != nil {
		n := strings.TrimSpace(*r.Name)
		if n == "" {
			return errors.New("name cannot be empty")
		}
		if utf8.RuneCountInString(n) > maxOfficeNameLen {
			return errors.New("name cannot exceed 255 characters")
		}
	}
	if r.Address != nil {
		a := strings.TrimSpace(*r.Address)
		if a == "" {
			return errors.New("address cannot be empty")
		}
		if utf8.RuneCountInString(a) > maxOfficeAddressLen {
			return errors.New("address cannot exceed 512 characters")
		}
	}
	return nil
}
