package httpx

import (
	"net/http"

	"github.com/deskhub/booking-api/internal/domain/model"
	"github.com/deskhub/booking-api/internal/service"
)

const maxOfficeListLimit = 100

// OfficeHandlers provides HTTP handlers for office operations.
type OfficeHandlers struct {
	Svc *service.OfficeService
}

// Create handles HTTP requests to create an office.
func (h *OfficeHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOfficeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	office, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, office)
}

// List handles HTTP requests to list offices with filtering and pagination.
func (h *OfficeHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxOfficeListLimit)
	q := r.URL.Query()
	sort, dir := ParseSortParam(q, "sort", "dir")

	opts := model.OfficeListOptions{
		Limit:   limit,
		Offset:  offset,
		Name:    QueryStringPtr(q, "name"),
		Address: QueryStringPtr(q, "address"),
		Active:  QueryBoolPtr(q, "active"),
		Sort:    sort,
		Dir:     dir,
	}

	result, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"offices": result.Items,
		"total":   result.Total,
		"limit":   limit,
		"offset":  offset,
	})
}

// GetByID handles HTTP requests to get an office by ID.
func (h *OfficeHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "office")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	office, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, office)
}

// Update handles HTTP requests to partially update an office.
func (h *OfficeHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "office")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	var req model.UpdateOfficeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	office, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, office)
}

// Delete handles HTTP requests to delete an office.
func (h *OfficeHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "office")
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
