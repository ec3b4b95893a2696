package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/studyhall/backend/internal/application/finance"
)

// CollectionHandler handles fee collection HTTP requests. Records are
// created by enrollment and renewal, not directly through this handler.
type CollectionHandler struct {
	BaseHandler
	collectionService *finance.CollectionService
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(collectionService *finance.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

// Get returns one collection record
func (h *CollectionHandler) Get(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	recordID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.collectionService.Get(c.Request.Context(), tenantID, recordID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// List godoc
// @Summary      List collection records
// @Tags         collections
// @Produce      json
// @Param        search query string false "Search by receipt number or remark"
// @Param        student_id query string false "Filter by student"
// @Param        branch_id query string false "Filter by branch"
// @Param        month query string false "Filter by accrual month (YYYY-MM)"
// @Param        status query string false "Filter by fee status"
// @Success      200 {object} dto.Response{data=[]finance.CollectionResponse}
// @Security     BearerAuth
// @Router       /collections [get]
func (h *CollectionHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter finance.CollectionListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.collectionService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// PayDue godoc
// @Summary      Pay outstanding due
// @Description  Record a payment against a record's due. The amount must be positive and cannot exceed the outstanding due.
// @Tags         collections
// @Accept       json
// @Produce      json
// @Param        id path string true "Collection record ID"
// @Param        request body finance.PayDueRequest true "Payment data"
// @Success      200 {object} dto.Response{data=finance.CollectionResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /collections/{id}/pay-due [post]
func (h *CollectionHandler) PayDue(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	recordID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req finance.PayDueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.collectionService.PayDue(c.Request.Context(), tenantID, recordID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a collection record
func (h *CollectionHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	recordID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.collectionService.Delete(c.Request.Context(), tenantID, recordID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
