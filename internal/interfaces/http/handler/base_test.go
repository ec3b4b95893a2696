package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/studyhall/backend/internal/domain/shared"
)

func performRequest(handlerFunc gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/test", handlerFunc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestBaseHandler_Success(t *testing.T) {
	h := &BaseHandler{}
	w := performRequest(func(c *gin.Context) {
		h.Success(c, gin.H{"name": "Main Branch"})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), "Main Branch")
}

func TestBaseHandler_SuccessWithMeta(t *testing.T) {
	h := &BaseHandler{}
	w := performRequest(func(c *gin.Context) {
		h.SuccessWithMeta(c, []string{"a"}, 41, 2, 20)
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":41`)
	assert.Contains(t, w.Body.String(), `"total_pages":3`)
}

func TestBaseHandler_HandleError_NotFoundSentinel(t *testing.T) {
	h := &BaseHandler{}
	w := performRequest(func(c *gin.Context) {
		h.HandleError(c, shared.ErrNotFound)
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_NOT_FOUND")
}

func TestBaseHandler_HandleError_DomainError(t *testing.T) {
	h := &BaseHandler{}

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "version conflict maps to 409",
			err:        shared.NewDomainError("VERSION_CONFLICT", "Student has been modified by another user"),
			wantStatus: http.StatusConflict,
			wantCode:   "ERR_CONCURRENCY_CONFLICT",
		},
		{
			name:       "seat occupied maps to 422",
			err:        shared.NewDomainError("SEAT_OCCUPIED", "seat is already assigned for this shift"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "ERR_SEAT_OCCUPIED",
		},
		{
			name:       "due exceeded maps to 422",
			err:        shared.NewDomainError("DUE_EXCEEDED", "payment exceeds outstanding due"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "ERR_EXCESS_PAYMENT",
		},
		{
			name:       "invalid input maps to 400",
			err:        shared.NewDomainError("INVALID_MEMBERSHIP", "membership end must not be before start"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "ERR_INVALID_INPUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(func(c *gin.Context) {
				h.HandleError(c, tt.err)
			})

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantCode)
		})
	}
}

func TestBaseHandler_HandleError_UnknownError(t *testing.T) {
	h := &BaseHandler{}
	w := performRequest(func(c *gin.Context) {
		h.HandleError(c, assert.AnError)
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_INTERNAL")
}
