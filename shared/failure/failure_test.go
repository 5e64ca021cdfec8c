package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"todos/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected *failure.Failure
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			if f.Code != tt.expected.Code || f.Message != tt.expected.Message {
				t.Errorf("expected %+v, got %+v", tt.expected, f)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("the todo name cannot be empty"),
			code:    http.StatusBadRequest,
			message: "the todo name cannot be empty",
		},
		{
			name:    "unauthorized",
			err:     failure.Unauthorized("token expired"),
			code:    http.StatusUnauthorized,
			message: "token expired",
		},
		{
			name:    "internal",
			err:     failure.InternalError(errors.New("store unavailable")),
			code:    http.StatusInternalServerError,
			message: "store unavailable",
		},
		{
			name:    "not found",
			err:     failure.NotFound("todo does not exist"),
			code:    http.StatusNotFound,
			message: "todo does not exist",
		},
		{
			name:    "forbidden",
			err:     failure.Forbidden("not authorized"),
			code:    http.StatusForbidden,
			message: "not authorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.err)
			}

			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}

			if f.Message != tt.message {
				t.Errorf("expected message to be %q, got %q", tt.message, f.Message)
			}
		})
	}

	if failure.InternalError(nil) != nil {
		t.Error("expected nil for nil internal error")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("checking ownership: %w", failure.Forbidden("test")),
			expected: http.StatusForbidden,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestIsServerError(t *testing.T) {
	if !failure.IsServerError(errors.New("boom")) {
		t.Error("expected plain error to be a server error")
	}

	if failure.IsServerError(failure.NotFound("missing")) {
		t.Error("expected not found not to be a server error")
	}
}
