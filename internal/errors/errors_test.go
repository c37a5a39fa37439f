package errors

import (
	"errors"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeNotFound,
				Message: "booking not found",
			},
			want: "booking not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeInternal,
				Message: "failed to process",
				Cause:   errors.New("underlying error"),
			},
			want: "failed to process: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := &AppError{
		Code:    ErrCodeInternal,
		Message: "wrapped error",
		Cause:   cause,
	}

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
		msg  string
	}{
		{"not found", NotFound("workplace not found"), ErrCodeNotFound, "workplace not found"},
		{"not found formatted", NotFoundf("room %d not found", 7), ErrCodeNotFound, "room 7 not found"},
		{"conflict", Conflict("booking window is taken"), ErrCodeConflict, "booking window is taken"},
		{"validation", Validation("invalid input"), ErrCodeValidation, "invalid input"},
		{"validation formatted", Validationf("floor %d is out of range", -3), ErrCodeValidation, "floor -3 is out of range"},
		{"unauthorized", Unauthorized("invalid credentials"), ErrCodeUnauthorized, "invalid credentials"},
		{"forbidden", Forbidden("admin role required"), ErrCodeForbidden, "admin role required"},
		{"foreign key", ForeignKey("office is in use"), ErrCodeForeignKey, "office is in use"},
		{"internal", Internal("internal server error"), ErrCodeInternal, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %v, want %v", tt.err.Code, tt.code)
			}
			if tt.err.Message != tt.msg {
				t.Errorf("Message = %v, want %v", tt.err.Message, tt.msg)
			}
		})
	}
}

func TestValidationField(t *testing.T) {
	err := ValidationField("email", "invalid email format")
	if err.Code != ErrCodeValidation {
		t.Errorf("ValidationField().Code = %v, want %v", err.Code, ErrCodeValidation)
	}
	if err.Field != "email" {
		t.Errorf("ValidationField().Field = %v, want %v", err.Field, "email")
	}
	if err.Message != "invalid email format" {
		t.Errorf("ValidationField().Message = %v, want %v", err.Message, "invalid email format")
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(cause, ErrCodeInternal, "wrapped error")

	if err.Code != ErrCodeInternal {
		t.Errorf("Wrap().Code = %v, want %v", err.Code, ErrCodeInternal)
	}
	if err.Message != "wrapped error" {
		t.Errorf("Wrap().Message = %v, want %v", err.Message, "wrapped error")
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Wrap().Cause = %v, want %v", err.Cause, cause)
	}
}

func TestWrap_NilError(t *testing.T) {
	if err := Wrap(nil, ErrCodeInternal, "wrapped error"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestWrapf(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := Wrapf(cause, ErrCodeInternal, "connect to %s failed", "postgres")

	if err.Message != "connect to postgres failed" {
		t.Errorf("Wrapf().Message = %v, want %v", err.Message, "connect to postgres failed")
	}
	if !errors.Is(err, cause) {
		t.Errorf("Wrapf() does not wrap cause")
	}
}

func TestCodePredicates(t *testing.T) {
	tests := []struct {
		name string
		pred func(error) bool
		err  error
		want bool
	}{
		{"not found matches", IsNotFound, NotFound("missing"), true},
		{"not found other code", IsNotFound, Conflict("conflict"), false},
		{"not found standard error", IsNotFound, errors.New("standard"), false},
		{"not found nil", IsNotFound, nil, false},
		{"conflict matches", IsConflict, Conflict("conflict"), true},
		{"conflict other code", IsConflict, NotFound("missing"), false},
		{"validation matches", IsValidation, Validation("invalid"), true},
		{"validation field matches", IsValidation, ValidationField("email", "invalid"), true},
		{"foreign key matches", IsForeignKey, ForeignKey("in use"), true},
		{"unauthorized matches", IsUnauthorized, Unauthorized("bad token"), true},
		{"unauthorized other code", IsUnauthorized, Forbidden("no role"), false},
		{"forbidden matches", IsForbidden, Forbidden("no role"), true},
		{"internal matches", IsInternal, Internal("boom"), true},
		{"timeout matches", IsTimeout, &AppError{Code: ErrCodeTimeout, Message: "timeout"}, true},
		{"canceled matches", IsCanceled, &AppError{Code: ErrCodeCanceled, Message: "canceled"}, true},
		{"wrapped app error matches", IsNotFound, Wrap(NotFound("missing"), ErrCodeInternal, "outer"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pred(tt.err); got != tt.want {
				t.Errorf("predicate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{
			name: "app error",
			err:  NotFound("not found"),
			want: ErrCodeNotFound,
		},
		{
			name: "standard error",
			err:  errors.New("standard error"),
			want: "",
		},
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetField(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "validation field error",
			err:  ValidationField("phone", "invalid phone format"),
			want: "phone",
		},
		{
			name: "error without field",
			err:  NotFound("not found"),
			want: "",
		},
		{
			name: "standard error",
			err:  errors.New("standard error"),
			want: "",
		},
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetField(tt.err); got != tt.want {
				t.Errorf("GetField() = %v, want %v", got, tt.want)
			}
		})
	}
}
