package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/studyhall/backend/internal/application/membership"
)

// BranchHandler handles branch management HTTP requests
type BranchHandler struct {
	BaseHandler
	branchService *membership.BranchService
}

// NewBranchHandler creates a new branch handler
func NewBranchHandler(branchService *membership.BranchService) *BranchHandler {
	return &BranchHandler{branchService: branchService}
}

// Create godoc
// @Summary      Create branch
// @Tags         branches
// @Accept       json
// @Produce      json
// @Param        request body membership.BranchRequest true "Branch data"
// @Success      201 {object} dto.Response{data=membership.BranchResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /branches [post]
func (h *BranchHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req membership.BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.branchService.Create(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Get returns one branch
func (h *BranchHandler) Get(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	branchID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.branchService.Get(c.Request.Context(), tenantID, branchID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// List returns all branches of the tenant
func (h *BranchHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.branchService.List(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Update updates a branch
func (h *BranchHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	branchID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req membership.BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.branchService.Update(c.Request.Context(), tenantID, branchID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a branch
func (h *BranchHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	branchID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.branchService.Delete(c.Request.Context(), tenantID, branchID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
