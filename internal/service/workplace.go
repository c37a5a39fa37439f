package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/deskhub/booking-api/internal/core"
	"github.com/deskhub/booking-api/internal/data"
	"github.com/deskhub/booking-api/internal/domain/model"
	apperrors "github.com/deskhub/booking-api/internal/errors"
)

// WorkplaceServiceOptions groups dependencies for WorkplaceService.
type WorkplaceServiceOptions struct {
	Workplaces core.WorkplaceRepository
	Rooms      core.RoomRepository
	Logger     DebugLogger // optional
}

// WorkplaceService provides workplace CRUD.
type WorkplaceService struct {
	workplaces core.WorkplaceRepository
	rooms      core.RoomRepository
	log        DebugLogger
}

// NewWorkplaceService constructs a new WorkplaceService.
func NewWorkplaceService(opts WorkplaceServiceOptions) *WorkplaceService {
	return &WorkplaceService{
		workplaces: opts.Workplaces,
		rooms:      opts.Rooms,
		log:        opts.Logger,
	}
}

// WorkplaceListResult is a page of workplaces plus the unpaged total.
type WorkplaceListResult struct {
	Items []*model.Workplace `json:"items"`
	Total int64              `json:"total"`
}

// Create creates a workplace inside an existing room. Labels are unique
// per room, not globally.
func (s *WorkplaceService) Create(ctx context.Context, req *model.CreateWorkplaceRequest) (*model.Workplace, error) {
	if req == nil {
		return nil, apperrors.Validation("create workplace request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if s.rooms != nil {
		if _, err := s.rooms.GetByID(ctx, req.RoomID); err != nil {
			if errors.Is(err, data.ErrRoomNotFound) {
				return nil, apperrors.ValidationField("room_id", "room does not exist")
			}
			return nil, fmt.Errorf("check room: %w", err)
		}
	}

	workplace, err := s.workplaces.Create(ctx, req)
	if err != nil {
		return nil, mapWorkplaceWriteErr(err)
	}
	return workplace, nil
}

// GetByID returns a workplace by ID.
func (s *WorkplaceService) GetByID(ctx context.Context, id string) (*model.Workplace, error) {
	workplace, err := s.workplaces.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrWorkplaceNotFound) {
			return nil, apperrors.NotFound("workplace not found")
		}
		return nil, fmt.Errorf("get workplace: %w", err)
	}
	return workplace, nil
}

// List returns a page of workplaces with the total matching count.
func (s *WorkplaceService) List(ctx context.Context, opts model.WorkplaceListOptions) (*WorkplaceListResult, error) {
	workplaces, err := s.workplaces.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list workplaces: %w", err)
	}
	total, err := s.workplaces.Count(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("count workplaces: %w", err)
	}
	return &WorkplaceListResult{Items: workplaces, Total: total}, nil
}

// Update applies a partial update.
func (s *WorkplaceService) Update(ctx context.Context, id string, req model.UpdateWorkplaceRequest) (*model.Workplace, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	workplace, err := s.workplaces.Update(ctx, id, req)
	if err != nil {
		return nil, mapWorkplaceWriteErr(err)
	}
	return workplace, nil
}

// Delete removes a workplace. Workplaces with bookings or breakage
// reports are blocked by foreign keys.
func (s *WorkplaceService) Delete(ctx context.Context, id string) error {
	ok, err := s.workplaces.Delete(ctx, id)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	if !ok {
		return apperrors.NotFound("workplace not found")
	}
	return nil
}

func mapWorkplaceWriteErr(err error) error {
	switch {
	case errors.Is(err, data.ErrWorkplaceNotFound):
		return apperrors.NotFound("workplace not found")
	case errors.Is(err, data.ErrWorkplaceLabelExists):
		e := apperrors.Conflict("a workplace with this label already exists in the room")
		e.Field = "label"
		return e
	case errors.Is(err, data.ErrRoomNotFound):
		return apperrors.ValidationField("room_id", "room does not exist")
	default:
		return apperrors.MapDBError(err)
	}
}
