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

// RoomServiceOptions groups dependencies for RoomService.
type RoomServiceOptions struct {
	Rooms   core.RoomRepository
	Offices core.OfficeRepository
	Logger  DebugLogger // optional
}

// RoomService provides room CRUD. Rooms always belong to an office, so
// Create verifies the parent exists before hitting the rooms table for
// a clearer error than the raw foreign key violation.
type RoomService struct {
	rooms   core.RoomRepository
	offices core.OfficeRepository
	log     DebugLogger
}

// NewRoomService constructs a new RoomService.
func NewRoomService(opts RoomServiceOptions) *RoomService {
	return &RoomService{
		rooms:   opts.Rooms,
		offices: opts.Offices,
		log:     opts.Logger,
	}
}

// RoomListResult is a page of rooms plus the unpaged total.
type RoomListResult struct {
	Items []*model.Room `json:"items"`
	Total int64         `json:"total"`
}

// Create creates a room inside an existing office.
func (s *RoomService) Create(ctx context.Context, req *model.CreateRoomRequest) (*model.Room, error) {
	if req == nil {
		return nil, apperrors.Validation("create room request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	if s.offices != nil {
		if _, err := s.offices.GetByID(ctx, req.OfficeID); err != nil {
			if errors.Is(err, data.ErrOfficeNotFound) {
				return nil, apperrors.ValidationField("office_id", "office does not exist")
			}
			return nil, fmt.Errorf("check office: %w", err)
		}
	}

	room, err := s.rooms.Create(ctx, req)
	if err != nil {
		return nil, mapRoomWriteErr(err)
	}
	return room, nil
}

// GetByID returns a room by ID.
func (s *RoomService) GetByID(ctx context.Context, id string) (*model.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrRoomNotFound) {
			return nil, apperrors.NotFound("room not found")
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	return room, nil
}

// List returns a page of rooms with the total matching count.
func (s *RoomService) List(ctx context.Context, opts model.RoomListOptions) (*RoomListResult, error) {
	rooms, err := s.rooms.List(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	total, err := s.rooms.Count(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("count rooms: %w", err)
	}
	return &RoomListResult{Items: rooms, Total: total}, nil
}

// Update applies a partial update.
func (s *RoomService) Update(ctx context.Context, id string, req model.UpdateRoomRequest) (*model.Room, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}
	room, err := s.rooms.Update(ctx, id, req)
	if err != nil {
		return nil, mapRoomWriteErr(err)
	}
	return room, nil
}

// Delete removes a room. Rooms with workplaces are blocked by foreign
// keys and surface as a conflict.
func (s *RoomService) Delete(ctx context.Context, id string) error {
	ok, err := s.rooms.Delete(ctx, id)
	if err != nil {
		return apperrors.MapDBError(err)
	}
	if !ok {
		return apperrors.NotFound("room not found")
	}
	return nil
}

func mapRoomWriteErr(err error) error {
	switch {
	case errors.Is(err, data.ErrRoomNotFound):
		return apperrors.NotFound("room not found")
	case errors.Is(err, data.ErrOfficeNotFound):
		return apperrors.ValidationField("office_id", "office does not exist")
	default:
		return apperrors.MapDBError(err)
	}
}
