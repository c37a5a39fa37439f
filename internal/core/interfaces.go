// Package core defines the ports between the service layer and the data
// layer. Services depend on these interfaces, never on concrete repos.
package core

import (
	"context"
	"time"

	"github.com/deskhub/booking-api/internal/domain/model"
)

// CreateUserParams groups parameters for UserRepository.Create. The
// password arrives already hashed; the repo never sees plaintext.
type CreateUserParams struct {
	FullName     string
	Phone        string
	Email        string
	PasswordHash string
	Roles        []string
}

// UpdateUserParams groups parameters for UserRepository.Update. Only
// non-nil fields overwrite stored values.
type UpdateUserParams struct {
	FullName     *string
	Phone        *string
	Email        *string
	PasswordHash *string
}

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, p CreateUserParams) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	FindByLogin(ctx context.Context, login string) (*model.User, error)
	List(ctx context.Context, opts model.UserListOptions) ([]*model.User, error)
	Count(ctx context.Context, opts model.UserListOptions) (int64, error)
	Update(ctx context.Context, id string, p UpdateUserParams) (*model.User, error)
	SetActive(ctx context.Context, id string, active bool) (*model.User, error)
	ReplaceRoles(ctx context.Context, id string, roles []string) error
	Delete(ctx context.Context, id string) (bool, error)
}

// OfficeRepository defines the interface for office data operations.
type OfficeRepository interface {
	Create(ctx context.Context, req *model.CreateOfficeRequest) (*model.Office, error)
	GetByID(ctx context.Context, id string) (*model.Office, error)
	List(ctx context.Context, opts model.OfficeListOptions) ([]*model.Office, error)
	Count(ctx context.Context, opts model.OfficeListOptions) (int64, error)
	Update(ctx context.Context, id string, req model.UpdateOfficeRequest) (*model.Office, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// RoomRepository defines the interface for room data operations.
type RoomRepository interface {
	Create(ctx context.Context, req *model.CreateRoomRequest) (*model.Room, error)
	GetByID(ctx context.Context, id string) (*model.Room, error)
	List(ctx context.Context, opts model.RoomListOptions) ([]*model.Room, error)
	Count(ctx context.Context, opts model.RoomListOptions) (int64, error)
	Update(ctx context.Context, id string, req model.UpdateRoomRequest) (*model.Room, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// WorkplaceRepository defines the interface for workplace data operations.
type WorkplaceRepository interface {
	Create(ctx context.Context, req *model.CreateWorkplaceRequest) (*model.Workplace, error)
	GetByID(ctx context.Context, id string) (*model.Workplace, error)
	List(ctx context.Context, opts model.WorkplaceListOptions) ([]*model.Workplace, error)
	Count(ctx context.Context, opts model.WorkplaceListOptions) (int64, error)
	Update(ctx context.Context, id string, req model.UpdateWorkplaceRequest) (*model.Workplace, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// BookingRepository defines the interface for booking data operations.
type BookingRepository interface {
	Create(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	List(ctx context.Context, opts model.BookingListOptions) ([]*model.Booking, error)
	Count(ctx context.Context, opts model.BookingListOptions) (int64, error)
	UpdateWindow(ctx context.Context, id string, startsAt, endsAt time.Time) (*model.Booking, error)
	SetStatus(ctx context.Context, id string, status model.BookingStatus) (*model.Booking, error)
	ListActiveForWorkplaces(ctx context.Context, workplaceIDs []string, from, to time.Time) ([]*model.Booking, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// BreakageRepository defines the interface for breakage report data operations.
type BreakageRepository interface {
	Create(ctx context.Context, req *model.CreateBreakageRequest) (*model.BreakageReport, error)
	GetByID(ctx context.Context, id string) (*model.BreakageReport, error)
	List(ctx context.Context, opts model.BreakageListOptions) ([]*model.BreakageReport, error)
	Count(ctx context.Context, opts model.BreakageListOptions) (int64, error)
	Update(ctx context.Context, id string, req model.UpdateBreakageRequest) (*model.BreakageReport, error)
	Delete(ctx context.Context, id string) (bool, error)
}
