package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/studyhall/backend/internal/application/membership"
)

// AvailabilityHandler answers seat and shift availability queries used
// by the assignment forms
type AvailabilityHandler struct {
	BaseHandler
	availabilityService *membership.AvailabilityService
}

// NewAvailabilityHandler creates a new availability handler
func NewAvailabilityHandler(availabilityService *membership.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityService: availabilityService}
}

// SeatsForShift godoc
// @Summary      Seats for shift
// @Description  Every seat with its occupancy state for one shift. Pass exclude_student_id when editing that student's own assignment.
// @Tags         availability
// @Produce      json
// @Param        shiftId path string true "Shift ID"
// @Param        exclude_student_id query string false "Student whose own assignment reads as free"
// @Param        branch_id query string false "Restrict to one branch"
// @Param        free_only query boolean false "Return only unoccupied seats"
// @Success      200 {object} dto.Response{data=[]membership.SeatAvailabilityResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /availability/shifts/{shiftId}/seats [get]
func (h *AvailabilityHandler) SeatsForShift(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	shiftID, ok := h.parseUUIDParam(c, "shiftId")
	if !ok {
		return
	}

	excludeStudentID := uuid.Nil
	if raw := c.Query("exclude_student_id"); raw != "" {
		excludeStudentID, err = uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid exclude_student_id parameter")
			return
		}
	}

	branchID, ok := parseOptionalUUIDQuery(c, "branch_id")
	if !ok {
		h.BadRequest(c, "Invalid branch_id parameter")
		return
	}

	freeOnly := c.Query("free_only") == "true"

	result, err := h.availabilityService.SeatsForShift(c.Request.Context(), tenantID, shiftID, excludeStudentID, branchID, freeOnly)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// ShiftsForSeat returns every shift with its occupancy state for one seat
func (h *AvailabilityHandler) ShiftsForSeat(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	seatID, ok := h.parseUUIDParam(c, "seatId")
	if !ok {
		return
	}

	excludeStudentID := uuid.Nil
	if raw := c.Query("exclude_student_id"); raw != "" {
		excludeStudentID, err = uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid exclude_student_id parameter")
			return
		}
	}

	result, err := h.availabilityService.ShiftsForSeat(c.Request.Context(), tenantID, seatID, excludeStudentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
