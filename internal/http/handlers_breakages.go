package httpx

import (
	"net/http"

	"github.com/deskhub/booking-api/internal/domain/model"
	"github.com/deskhub/booking-api/internal/service"
)

const maxBreakageListLimit = 100

// BreakageHandlers provides HTTP handlers for breakage report operations.
type BreakageHandlers struct {
	Svc *service.BreakageService
}

// Create handles HTTP requests to file a breakage report.
func (h *BreakageHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBreakageRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	report, err := h.Svc.Create(r.Context(), PrincipalFromContext(r.Context()), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, report)
}

// List handles HTTP requests to list breakage reports with filtering and pagination.
func (h *BreakageHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxBreakageListLimit)
	q := r.URL.Query()
	sort, dir := ParseSortParam(q, "sort", "dir")

	opts := model.BreakageListOptions{
		Limit:       limit,
		Offset:      offset,
		UserID:      QueryStringPtr(q, "user_id"),
		WorkplaceID: QueryStringPtr(q, "workplace_id"),
		Description: QueryStringPtr(q, "description"),
		Sort:        sort,
		Dir:         dir,
	}
	if status, ok := model.ParseBreakageStatus(q.Get("status")); ok {
		opts.Status = &status
	}

	result, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"breakages": result.Items,
		"total":     result.Total,
		"limit":     limit,
		"offset":    offset,
	})
}

// GetByID handles HTTP requests to get a breakage report by ID.
func (h *BreakageHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "breakage report")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	report, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, report)
}

// Update handles HTTP requests to update a breakage report's description
// or status.
func (h *BreakageHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "breakage report")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	var req model.UpdateBreakageRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	report, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, report)
}

// Delete handles HTTP requests to delete a breakage report.
func (h *BreakageHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "breakage report")
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
