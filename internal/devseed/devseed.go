// Package devseed populates a development database with demo users,
// offices, rooms, and workplaces. Seeding is idempotent: records that
// already exist are skipped, and room fixtures are only created for
// offices created by this run so re-seeding never duplicates them.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/deskhub/booking-api/internal/auth"
	"github.com/deskhub/booking-api/internal/data"
	"github.com/deskhub/booking-api/internal/domain/model"
	apperrors "github.com/deskhub/booking-api/internal/errors"
	"github.com/deskhub/booking-api/internal/service"
)

// Services bundles the dependencies needed for development seeding.
type Services struct {
	DB         *sql.DB
	users      *service.UserService
	offices    *service.OfficeService
	rooms      *service.RoomService
	workplaces *service.WorkplaceService
}

// NewServices constructs all required services for seeding using the provided DB.
func NewServices(db *sql.DB) Services {
	userRepo := data.NewUserRepo(db)
	officeRepo := data.NewOfficeRepo(db)
	roomRepo := data.NewRoomRepo(db)
	workplaceRepo := data.NewWorkplaceRepo(db)

	userService := service.NewUserService(service.UserServiceOptions{
		Users:  userRepo,
		Hasher: auth.NewBcryptHasher(0), // default cost is fine for dev data
	})
	officeService := service.NewOfficeService(service.OfficeServiceOptions{
		Offices: officeRepo,
	})
	roomService := service.NewRoomService(service.RoomServiceOptions{
		Rooms:   roomRepo,
		Offices: officeRepo,
	})
	workplaceService := service.NewWorkplaceService(service.WorkplaceServiceOptions{
		Workplaces: workplaceRepo,
		Rooms:      roomRepo,
	})

	return Services{
		DB:         db,
		users:      userService,
		offices:    officeService,
		rooms:      roomService,
		workplaces: workplaceService,
	}
}

// Run executes the full development seeding workflow against the provided DB.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	failures := 0
	failures += seedUsers(ctx, svcs.users, logger)
	failures += seedOffices(ctx, svcs, logger)
	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

func seedUsers(ctx context.Context, svc *service.UserService, logger *slog.Logger) int {
	failures := 0
	users := []*model.CreateUserRequest{
		{
			FullName: "Dev Admin",
			Email:    "admin@deskhub.local",
			Phone:    "+10000000001",
			Password: "admin-password",
			Roles:    []string{"admin", "user"},
		},
		{
			FullName: "Dev User",
			Email:    "user@deskhub.local",
			Phone:    "+10000000002",
			Password: "user-password",
			Roles:    []string{"user"},
		},
	}

	for _, req := range users {
		_, err := svc.Create(ctx, req)
		switch {
		case err == nil:
			if logger != nil {
				logger.InfoContext(ctx, "created user", "email", req.Email)
			}
		case apperrors.IsConflict(err):
			if logger != nil {
				logger.InfoContext(ctx, "user already exists", "email", req.Email)
			}
		default:
			if logger != nil {
				logger.ErrorContext(ctx, "failed to create user", "email", req.Email, "error", err)
			}
			failures++
		}
	}

	return failures
}

type officeFixture struct {
	office model.CreateOfficeRequest
	rooms  []roomFixture
}

type roomFixture struct {
	room       model.CreateRoomRequest // OfficeID filled in at seed time
	workplaces []model.CreateWorkplaceRequest
}

func defaultOffices() []officeFixture {
	return []officeFixture{
		{
			office: model.CreateOfficeRequest{
				Name:       "Headquarters",
				Address:    "1 Harbor Way, Springfield",
				WorkNumber: "+1 555 0100",
			},
			rooms: []roomFixture{
				{
					room: model.CreateRoomRequest{Name: "Open Space North", Floor: 2, Capacity: 12},
					workplaces: []model.CreateWorkplaceRequest{
						{Label: "N-01", HasMonitor: true, HasDock: true},
						{Label: "N-02", HasMonitor: true, HasDock: false},
						{Label: "N-03", HasMonitor: false, HasDock: false},
					},
				},
				{
					room: model.CreateRoomRequest{Name: "Quiet Room", Floor: 3, Capacity: 4},
					workplaces: []model.CreateWorkplaceRequest{
						{Label: "Q-01", HasMonitor: true, HasDock: true},
						{Label: "Q-02", HasMonitor: true, HasDock: true},
					},
				},
			},
		},
		{
			office: model.CreateOfficeRequest{
				Name:    "Riverside Annex",
				Address: "42 Mill Street, Springfield",
			},
			rooms: []roomFixture{
				{
					room: model.CreateRoomRequest{Name: "Annex Lab", Floor: 1, Capacity: 6},
					workplaces: []model.CreateWorkplaceRequest{
						{Label: "A-01", HasMonitor: true, HasDock: false},
						{Label: "A-02", HasMonitor: false, HasDock: false},
					},
				},
			},
		},
	}
}

// seedOffices creates the office fixtures. Rooms and workplaces are only
// seeded under offices created by this run; rooms carry no unique name,
// so reseeding an existing office would duplicate them.
func seedOffices(ctx context.Context, svcs Services, logger *slog.Logger) int {
	failures := 0
	for _, fixture := range defaultOffices() {
		office, err := svcs.offices.Create(ctx, &fixture.office)
		if apperrors.IsConflict(err) {
			if logger != nil {
				logger.InfoContext(ctx, "office already exists", "name", fixture.office.Name)
			}
			continue
		}
		if err != nil {
			if logger != nil {
				logger.ErrorContext(ctx, "failed to create office", "name", fixture.office.Name, "error", err)
			}
			failures++
			continue
		}
		if logger != nil {
			logger.InfoContext(ctx, "created office", "name", office.Name, "id", office.ID)
		}
		failures += seedRooms(ctx, svcs, office.ID, fixture.rooms, logger)
	}
	return failures
}

func seedRooms(ctx context.Context, svcs Services, officeID string, fixtures []roomFixture, logger *slog.Logger) int {
	failures := 0
	for _, fixture := range fixtures {
		req := fixture.room
		req.OfficeID = officeID
		room, err := svcs.rooms.Create(ctx, &req)
		if err != nil {
			if logger != nil {
				logger.ErrorContext(ctx, "failed to create room", "name", req.Name, "error", err)
			}
			failures++
			continue
		}
		if logger != nil {
			logger.InfoContext(ctx, "created room", "name", room.Name, "id", room.ID)
		}
		for _, wp := range fixture.workplaces {
			wp.RoomID = room.ID
			if _, wpErr := svcs.workplaces.Create(ctx, &wp); wpErr != nil {
				if logger != nil {
					logger.ErrorContext(ctx, "failed to create workplace", "label", wp.Label, "error", wpErr)
				}
				failures++
				continue
			}
			if logger != nil {
				logger.InfoContext(ctx, "created workplace", "label", wp.Label, "room_id", room.ID)
			}
		}
	}
	return failures
}
