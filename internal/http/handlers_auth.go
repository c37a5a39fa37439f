// Package httpx provides the JSON HTTP API for the booking system.
package httpx

import (
	"errors"
	"net/http"

	"github.com/deskhub/booking-api/internal/domain/model"
	"github.com/deskhub/booking-api/internal/service"
)

// AuthHandlers provides HTTP handlers for authentication operations.
type AuthHandlers struct {
	Svc   *service.AuthService
	Users *service.UserService
}

// loginRequest is the JSON body of a login call. Login matches either
// email or phone.
type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Login handles HTTP requests to exchange credentials for a token.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Login(r.Context(), req.Login, req.Password)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// Register handles HTTP requests to self-register a new account.
func (h *AuthHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.Register(r.Context(), &req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, user)
}

// Me handles HTTP requests for the authenticated user's own record.
func (h *AuthHandlers) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := GetPrincipalFromContext(r.Context())
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return
	}

	user, err := h.Users.GetByID(r.Context(), principal.Subject)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, user)
}
