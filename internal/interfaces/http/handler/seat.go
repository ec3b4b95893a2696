package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/studyhall/backend/internal/application/membership"
)

// SeatHandler handles seat management HTTP requests
type SeatHandler struct {
	BaseHandler
	seatService *membership.SeatService
}

// NewSeatHandler creates a new seat handler
func NewSeatHandler(seatService *membership.SeatService) *SeatHandler {
	return &SeatHandler{seatService: seatService}
}

// Create godoc
// @Summary      Create seat
// @Tags         seats
// @Accept       json
// @Produce      json
// @Param        request body membership.SeatRequest true "Seat data"
// @Success      201 {object} dto.Response{data=membership.SeatResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /seats [post]
func (h *SeatHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req membership.SeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.seatService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Get returns one seat
func (h *SeatHandler) Get(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	seatID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.seatService.Get(c.Request.Context(), tenantID, seatID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// List returns seats, optionally filtered by branch
func (h *SeatHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter membership.SeatListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.seatService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Update updates a seat
func (h *SeatHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	seatID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req membership.SeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.seatService.Update(c.Request.Context(), tenantID, seatID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a seat
func (h *SeatHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	seatID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.seatService.Delete(c.Request.Context(), tenantID, seatID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
