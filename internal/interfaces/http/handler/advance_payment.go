package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studyhall/backend/internal/application/finance"
)

// AdvancePaymentHandler handles advance payment HTTP requests
type AdvancePaymentHandler struct {
	BaseHandler
	advanceService *finance.AdvancePaymentService
}

// NewAdvancePaymentHandler creates a new advance payment handler
func NewAdvancePaymentHandler(advanceService *finance.AdvancePaymentService) *AdvancePaymentHandler {
	return &AdvancePaymentHandler{advanceService: advanceService}
}

// Create godoc
// @Summary      Record advance payment
// @Tags         advances
// @Accept       json
// @Produce      json
// @Param        request body finance.CreateAdvancePaymentRequest true "Advance payment data"
// @Success      201 {object} dto.Response{data=finance.AdvancePaymentResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /advances [post]
func (h *AdvancePaymentHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req finance.CreateAdvancePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.advanceService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// List returns advance payments, newest first
func (h *AdvancePaymentHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.advanceService.List(c.Request.Context(), tenantID, page, pageSize)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ListByStudent returns one student's advance payments
func (h *AdvancePaymentHandler) ListByStudent(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	studentID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.advanceService.ListByStudent(c.Request.Context(), tenantID, studentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes an advance payment entry
func (h *AdvancePaymentHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	paymentID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.advanceService.Delete(c.Request.Context(), tenantID, paymentID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
