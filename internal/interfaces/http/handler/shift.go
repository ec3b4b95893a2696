package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/studyhall/backend/internal/application/membership"
)

// ShiftHandler handles shift management HTTP requests
type ShiftHandler struct {
	BaseHandler
	shiftService *membership.ShiftService
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService *membership.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// Create godoc
// @Summary      Create shift
// @Tags         shifts
// @Accept       json
// @Produce      json
// @Param        request body membership.ShiftRequest true "Shift data"
// @Success      201 {object} dto.Response{data=membership.ShiftResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /shifts [post]
func (h *ShiftHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req membership.ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.shiftService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns all shifts of the tenant
func (h *ShiftHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.shiftService.List(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Update updates a shift
func (h *ShiftHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	shiftID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req membership.ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.shiftService.Update(c.Request.Context(), tenantID, shiftID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a shift
func (h *ShiftHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	shiftID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.shiftService.Delete(c.Request.Context(), tenantID, shiftID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
