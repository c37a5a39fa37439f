package httpx

import (
	"net/http"

	"github.com/deskhub/booking-api/internal/domain/model"
	"github.com/deskhub/booking-api/internal/service"
)

const maxRoomListLimit = 100

// RoomHandlers provides HTTP handlers for room operations.
type RoomHandlers struct {
	Svc *service.RoomService
}

// Create handles HTTP requests to create a room.
func (h *RoomHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateRoomRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	room, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, room)
}

// List handles HTTP requests to list rooms with filtering and pagination.
func (h *RoomHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxRoomListLimit)
	q := r.URL.Query()
	sort, dir := ParseSortParam(q, "sort", "dir")

	opts := model.RoomListOptions{
		Limit:       limit,
		Offset:      offset,
		Name:        QueryStringPtr(q, "name"),
		OfficeID:    QueryStringPtr(q, "office_id"),
		Floor:       QueryIntPtr(q, "floor"),
		MinCapacity: QueryIntPtr(q, "min_capacity"),
		Active:      QueryBoolPtr(q, "active"),
		Sort:        sort,
		Dir:         dir,
	}

	result, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"rooms":  result.Items,
		"total":  result.Total,
		"limit":  limit,
		"offset": offset,
	})
}

// GetByID handles HTTP requests to get a room by ID.
func (h *RoomHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "room")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	room, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, room)
}

// Update handles HTTP requests to partially update a room.
func (h *RoomHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "room")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	var req model.UpdateRoomRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	room, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, room)
}

// Delete handles HTTP requests to delete a room.
func (h *RoomHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "room")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
