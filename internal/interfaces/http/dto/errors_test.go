package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeConcurrencyConflict, http.StatusConflict},
		{ErrCodeSeatOccupied, http.StatusUnprocessableEntity},
		{ErrCodeExcessPayment, http.StatusUnprocessableEntity},
		{ErrCodeRateLimited, http.StatusTooManyRequests},
		{"TOTALLY_UNKNOWN", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
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
		{"mapped code", "NOT_FOUND", ErrCodeNotFound},
		{"version conflict", "VERSION_CONFLICT", ErrCodeConcurrencyConflict},
		{"seat occupied", "SEAT_OCCUPIED", ErrCodeSeatOccupied},
		{"due exceeded", "DUE_EXCEEDED", ErrCodeExcessPayment},
		{"invalid prefix", "INVALID_MEMBERSHIP", ErrCodeInvalidInput},
		{"already prefix", "ALREADY_ACTIVE", ErrCodeConflict},
		{"cannot prefix", "CANNOT_DELETE", ErrCodeInvalidState},
		{"not found suffix", "USER_NOT_FOUND", ErrCodeNotFound},
		{"already normalized", ErrCodeBadRequest, ErrCodeBadRequest},
		{"unknown passes through", "SOMETHING_ELSE", "SOMETHING_ELSE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeErrorCode(tt.code))
		})
	}
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{"a", "b"}, 45, 2, 20)

	assert.True(t, resp.Success)
	assert.Equal(t, int64(45), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeNotFound, "student not found", "req-123")

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "student not found", resp.Error.Message)
	assert.Equal(t, "req-123", resp.Error.RequestID)
}
