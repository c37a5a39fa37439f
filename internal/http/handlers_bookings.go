package httpx

import (
	"errors"
	"net/http"

	"github.com/deskhub/booking-api/internal/domain/model"
	"github.com/deskhub/booking-api/internal/service"
)

const maxBookingListLimit = 200

// BookingHandlers provides HTTP handlers for booking operations.
// Ownership rules (who may see or cancel a booking) live in the service;
// handlers only carry the principal through.
type BookingHandlers struct {
	Svc *service.BookingService
}

// Create handles HTTP requests to book a workplace for the caller.
func (h *BookingHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBookingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	booking, err := h.Svc.Create(r.Context(), PrincipalFromContext(r.Context()), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, booking)
}

// List handles HTTP requests to list bookings. Regular users only ever
// see their own bookings; admins may filter by any user.
func (h *BookingHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxBookingListLimit)
	q := r.URL.Query()
	sort, dir := ParseSortParam(q, "sort", "dir")

	opts := model.BookingListOptions{
		Limit:       limit,
		Offset:      offset,
		UserID:      QueryStringPtr(q, "user_id"),
		WorkplaceID: QueryStringPtr(q, "workplace_id"),
		From:        QueryTimePtr(q, "from"),
		To:          QueryTimePtr(q, "to"),
		Sort:        sort,
		Dir:         dir,
	}
	if status, ok := model.ParseBookingStatus(q.Get("status")); ok {
		opts.Status = &status
	}

	result, err := h.Svc.List(r.Context(), PrincipalFromContext(r.Context()), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"bookings": result.Items,
		"total":    result.Total,
		"limit":    limit,
		"offset":   offset,
	})
}

// GetByID handles HTTP requests to get a booking by ID.
func (h *BookingHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "booking")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	booking, err := h.Svc.GetByID(r.Context(), PrincipalFromContext(r.Context()), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, booking)
}

// UpdateWindow handles HTTP requests to move a booking to a new window.
func (h *BookingHandlers) UpdateWindow(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "booking")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	var req model.UpdateBookingRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	booking, err := h.Svc.UpdateWindow(r.Context(), PrincipalFromContext(r.Context()), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, booking)
}

// Cancel handles HTTP requests to cancel a booking.
func (h *BookingHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "booking")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	booking, err := h.Svc.Cancel(r.Context(), PrincipalFromContext(r.Context()), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, booking)
}

// Delete handles HTTP requests to hard-delete a booking. Admin only.
func (h *BookingHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "booking")
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

// Occupancy handles HTTP requests to report free and taken workplaces
// within a window. The window comes from required "from"/"to" query
// params; workplace filters narrow the set.
func (h *BookingHandlers) Occupancy(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxWorkplaceListLimit)
	q := r.URL.Query()

	from := ParseTimeQuery(r, "from")
	to := ParseTimeQuery(r, "to")
	if from.IsZero() || to.IsZero() {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_window",
			Err:     errors.New("from and to must be RFC 3339 timestamps"),
		})
		return
	}

	opts := model.WorkplaceListOptions{
		Limit:      limit,
		Offset:     offset,
		RoomID:     QueryStringPtr(q, "room_id"),
		OfficeID:   QueryStringPtr(q, "office_id"),
		HasMonitor: QueryBoolPtr(q, "has_monitor"),
		HasDock:    QueryBoolPtr(q, "has_dock"),
		Active:     QueryBoolPtr(q, "active"),
	}

	result, err := h.Svc.Occupancy(r.Context(), opts, from, to)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"occupancy": result.Items,
		"total":     result.Total,
		"limit":     limit,
		"offset":    offset,
	})
}
