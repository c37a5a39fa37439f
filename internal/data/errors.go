package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrUserEmailExists = errors.New("user email already exists")
	ErrUserPhoneExists = errors.New("user phone already exists")
	ErrRoleNotFound    = errors.New("role not found")

	ErrOfficeNotFound   = errors.New("office not found")
	ErrOfficeNameExists = errors.New("office name already exists")

	ErrRoomNotFound = errors.New("room not found")

	ErrWorkplaceNotFound    = errors.New("workplace not found")
	ErrWorkplaceLabelExists = errors.New("workplace label already exists in room")

	ErrBookingNotFound = errors.New("booking not found")
	ErrBookingOverlap  = errors.New("booking window overlaps an existing booking")

	ErrBreakageNotFound = errors.New("breakage report not found")
)

const (
	sortDirAsc  = "ASC"
	sortDirDesc = "DESC"
)
