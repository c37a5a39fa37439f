package httpx

import (
	"net/http"

	"github.com/deskhub/booking-api/internal/domain/model"
	"github.com/deskhub/booking-api/internal/service"
)

const maxWorkplaceListLimit = 200

// WorkplaceHandlers provides HTTP handlers for workplace operations.
type WorkplaceHandlers struct {
	Svc *service.WorkplaceService
}

// Create handles HTTP requests to create a workplace.
func (h *WorkplaceHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateWorkplaceRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	workplace, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, workplace)
}

// List handles HTTP requests to list workplaces with filtering and pagination.
func (h *WorkplaceHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxWorkplaceListLimit)
	q := r.URL.Query()
	sort, dir := ParseSortParam(q, "sort", "dir")

	opts := model.WorkplaceListOptions{
		Limit:      limit,
		Offset:     offset,
		Label:      QueryStringPtr(q, "label"),
		RoomID:     QueryStringPtr(q, "room_id"),
		OfficeID:   QueryStringPtr(q, "office_id"),
		HasMonitor: QueryBoolPtr(q, "has_monitor"),
		HasDock:    QueryBoolPtr(q, "has_dock"),
		Active:     QueryBoolPtr(q, "active"),
		Sort:       sort,
		Dir:        dir,
	}

	result, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"workplaces": result.Items,
		"total":      result.Total,
		"limit":      limit,
		"offset":     offset,
	})
}

// GetByID handles HTTP requests to get a workplace by ID.
func (h *WorkplaceHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "workplace")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	workplace, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, workplace)
}

// Update handles HTTP requests to partially update a workplace.
func (h *WorkplaceHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "workplace")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	var req model.UpdateWorkplaceRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	workplace, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, workplace)
}

// Delete handles HTTP requests to delete a workplace.
func (h *WorkplaceHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "workplace")
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
