package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/studyhall/backend/internal/application/finance"
)

// ReportHandler handles monthly reporting HTTP requests
type ReportHandler struct {
	BaseHandler
	reportService *finance.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *finance.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Monthly godoc
// @Summary      Monthly profit and loss
// @Description  Reconciled income, previous-due movements, expenses and net profit for one month
// @Tags         reports
// @Produce      json
// @Param        month query string true "Month (YYYY-MM)"
// @Param        branch_id query string false "Restrict to one branch"
// @Success      200 {object} dto.Response{data=finance.MonthlyReportResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/monthly [get]
func (h *ReportHandler) Monthly(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	month := c.Query("month")
	if month == "" {
		h.BadRequest(c, "month query parameter is required")
		return
	}

	branchID, ok := parseOptionalUUIDQuery(c, "branch_id")
	if !ok {
		h.BadRequest(c, "Invalid branch_id parameter")
		return
	}

	result, err := h.reportService.Monthly(c.Request.Context(), tenantID, month, branchID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Transactions returns the unified money-movement feed for one month
func (h *ReportHandler) Transactions(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	month := c.Query("month")
	if month == "" {
		h.BadRequest(c, "month query parameter is required")
		return
	}

	result, err := h.reportService.Transactions(c.Request.Context(), tenantID, month)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
