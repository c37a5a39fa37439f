package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"

	apperrors "github.com/deskhub/booking-api/internal/errors"
)

// DecodeJSON decodes JSON from the request body into the destination and handles errors.
// Returns true if successful, false if there was an error (error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_json", Err: err})
		return false
	}

	return true
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// ErrorParams groups parameters for WriteError.
type ErrorParams struct {
	Code    int
	ErrCode string
	Err     error
}

// WriteError writes a JSON error response using ErrorParams.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	WriteJSON(w, p.Code, map[string]string{"error": p.ErrCode, "message": p.Err.Error()})
}

// errorBody is the JSON shape of an application error response.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// WriteAppError renders a service-layer error. The application error code
// decides the HTTP status; anything unrecognized becomes a 500 with a
// generic message so internals never leak to clients.
func WriteAppError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	status, ok := statusForCode(code)
	if !ok {
		WriteJSON(w, http.StatusInternalServerError, errorBody{
			Error:   string(apperrors.ErrCodeInternal),
			Message: "An internal error occurred. Please try again.",
		})
		return
	}

	WriteJSON(w, status, errorBody{
		Error:   string(code),
		Message: apperrors.GetMessage(err),
		Field:   apperrors.GetField(err),
	})
}

func statusForCode(code apperrors.ErrorCode) (int, bool) {
	switch code {
	case apperrors.ErrCodeValidation:
		return http.StatusBadRequest, true
	case apperrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized, true
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden, true
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound, true
	case apperrors.ErrCodeConflict, apperrors.ErrCodeForeignKey:
		return http.StatusConflict, true
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout, true
	case apperrors.ErrCodeCanceled:
		return http.StatusServiceUnavailable, true
	default:
		return 0, false
	}
}
