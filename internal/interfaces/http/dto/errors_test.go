package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{"not found", ErrCodeNotFound, http.StatusNotFound},
		{"already exists", ErrCodeAlreadyExists, http.StatusConflict},
		{"conflict", ErrCodeConflict, http.StatusConflict},
		{"invalid state", ErrCodeInvalidState, http.StatusUnprocessableEntity},
		{"insufficient stock", ErrCodeInsufficientStock, http.StatusUnprocessableEntity},
		{"validation", ErrCodeValidation, http.StatusBadRequest},
		{"invalid input", ErrCodeInvalidInput, http.StatusBadRequest},
		{"internal", ErrCodeInternal, http.StatusInternalServerError},
		{"unknown code", "SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{"not found", "NOT_FOUND", ErrCodeNotFound},
		{"already finalized maps to conflict", "ALREADY_FINALIZED", ErrCodeConflict},
		{"invalid transition maps to invalid state", "INVALID_TRANSITION", ErrCodeInvalidState},
		{"insufficient stock", "INSUFFICIENT_STOCK", ErrCodeInsufficientStock},
		{"unmapped INVALID_ code", "INVALID_QUANTITY", ErrCodeInvalidInput},
		{"unknown code passes through", "SOMETHING_ELSE", "SOMETHING_ELSE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeErrorCode(tt.code))
		})
	}
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeNotFound, "Order not found", "req-123")

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Order not found", resp.Error.Message)
	assert.Equal(t, "req-123", resp.Error.RequestID)
}

func TestNewValidationErrorResponse(t *testing.T) {
	details := []ValidationDetail{
		{Field: "quantity", Message: "must be greater than zero"},
	}
	resp := NewValidationErrorResponse("Validation failed", "req-456", details)

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "quantity", resp.Error.Details[0].Field)
}
