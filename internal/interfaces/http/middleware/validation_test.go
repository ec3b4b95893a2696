package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type payDueForm struct {
	Month  string  `json:"month" binding:"required,month"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

func TestSetupValidator_MonthTag(t *testing.T) {
	gin.SetMode(gin.TestMode)
	SetupValidator()

	router := gin.New()
	router.POST("/pay", func(c *gin.Context) {
		var form payDueForm
		if err := c.ShouldBindJSON(&form); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"month": form.Month})
	})

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"valid month", `{"month":"2025-03","amount":100}`, http.StatusOK},
		{"month without zero padding", `{"month":"2025-3","amount":100}`, http.StatusBadRequest},
		{"month out of range", `{"month":"2025-13","amount":100}`, http.StatusBadRequest},
		{"missing month", `{"amount":100}`, http.StatusBadRequest},
		{"zero amount", `{"month":"2025-03","amount":0}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/pay", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestSetupValidator_ErrorsUseJSONFieldNames(t *testing.T) {
	gin.SetMode(gin.TestMode)
	SetupValidator()

	router := gin.New()
	router.POST("/pay", func(c *gin.Context) {
		var form payDueForm
		if err := c.ShouldBindJSON(&form); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/pay", strings.NewReader(`{"amount":100}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"month"`)
	assert.Contains(t, w.Body.String(), "This field is required")
	assert.NotContains(t, w.Body.String(), "Month")
}
