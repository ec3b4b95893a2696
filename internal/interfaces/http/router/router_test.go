package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/studyhall/backend/internal/interfaces/http/handler"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	Setup(engine, Handlers{
		Auth:         &handler.AuthHandler{},
		User:         &handler.UserHandler{},
		Branch:       &handler.BranchHandler{},
		Seat:         &handler.SeatHandler{},
		Shift:        &handler.ShiftHandler{},
		Student:      &handler.StudentHandler{},
		Availability: &handler.AvailabilityHandler{},
		Collection:   &handler.CollectionHandler{},
		Advance:      &handler.AdvancePaymentHandler{},
		Expense:      &handler.ExpenseHandler{},
		Report:       &handler.ReportHandler{},
	})
	return engine
}

func TestSetup_HealthEndpoint(t *testing.T) {
	engine := setupTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func TestSetup_RouteTable(t *testing.T) {
	engine := setupTestRouter()

	routes := make(map[string]bool)
	for _, r := range engine.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	expected := []string{
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/refresh",
		"GET /api/v1/auth/me",
		"POST /api/v1/students",
		"GET /api/v1/students",
		"POST /api/v1/students/:id/renew",
		"POST /api/v1/students/:id/deactivate",
		"POST /api/v1/students/:id/activate",
		"GET /api/v1/availability/shifts/:shiftId/seats",
		"GET /api/v1/availability/seats/:seatId/shifts",
		"POST /api/v1/collections/:id/pay-due",
		"GET /api/v1/reports/monthly",
		"GET /api/v1/reports/transactions",
		"POST /api/v1/expenses",
		"POST /api/v1/advances",
		"GET /api/v1/branches",
		"GET /api/v1/seats",
		"GET /api/v1/shifts",
		"GET /api/v1/users",
	}

	for _, route := range expected {
		assert.True(t, routes[route], "missing route %s", route)
	}
}
