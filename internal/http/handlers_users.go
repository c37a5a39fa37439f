package httpx

import (
	"net/http"

	"github.com/deskhub/booking-api/internal/domain/model"
	"github.com/deskhub/booking-api/internal/service"
)

const maxUserListLimit = 100

// UserHandlers provides HTTP handlers for user management. All routes
// registered for it are admin-only.
type UserHandlers struct {
	Svc *service.UserService
}

// Create handles HTTP requests to create a user with explicit roles.
func (h *UserHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, user)
}

// List handles HTTP requests to list users with filtering and pagination.
func (h *UserHandlers) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := ParseLimitOffset(r, 50, maxUserListLimit)
	q := r.URL.Query()
	sort, dir := ParseSortParam(q, "sort", "dir")

	opts := model.UserListOptions{
		Limit:  limit,
		Offset: offset,
		FIO:    QueryStringPtr(q, "fio"),
		Email:  QueryStringPtr(q, "email"),
		Phone:  QueryStringPtr(q, "phone"),
		Active: QueryBoolPtr(q, "active"),
		Role:   QueryStringPtr(q, "role"),
		Sort:   sort,
		Dir:    dir,
	}

	result, err := h.Svc.List(r.Context(), opts)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"users":  result.Items,
		"total":  result.Total,
		"limit":  limit,
		"offset": offset,
	})
}

// GetByID handles HTTP requests to get a user by ID.
func (h *UserHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "user")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	user, err := h.Svc.GetByID(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// Update handles HTTP requests to partially update a user.
func (h *UserHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "user")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	var req model.UpdateUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.Update(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// setActiveRequest is the JSON body for activating/deactivating a user.
type setActiveRequest struct {
	Active bool `json:"active"`
}

// SetActive handles HTTP requests to toggle a user's login access.
func (h *UserHandlers) SetActive(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "user")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	var req setActiveRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.SetActive(r.Context(), id, req.Active)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// replaceRolesRequest is the JSON body for replacing a user's role set.
type replaceRolesRequest struct {
	Roles []string `json:"roles"`
}

// ReplaceRoles handles HTTP requests to replace a user's roles.
func (h *UserHandlers) ReplaceRoles(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "user")
	if err != nil {
		WriteAppError(w, err)
		return
	}

	var req replaceRolesRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.ReplaceRoles(r.Context(), id, req.Roles)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, user)
}

// Delete handles HTTP requests to delete a user.
func (h *UserHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := PathID(r, "user")
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
