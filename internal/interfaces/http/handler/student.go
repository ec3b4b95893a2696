package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/studyhall/backend/internal/application/membership"
)

// StudentHandler handles student lifecycle HTTP requests
type StudentHandler struct {
	BaseHandler
	studentService *membership.StudentService
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(studentService *membership.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// Enroll godoc
// @Summary      Enroll student
// @Description  Enroll a new student, create the first fee record and optionally assign a seat
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        request body membership.EnrollStudentRequest true "Enrollment data"
// @Success      201 {object} dto.Response{data=membership.StudentResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /students [post]
func (h *StudentHandler) Enroll(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req membership.EnrollStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.studentService.Enroll(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, result)
}

// Get returns one student with assignment and fee summary
func (h *StudentHandler) Get(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	studentID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.studentService.Get(c.Request.Context(), tenantID, studentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// List godoc
// @Summary      List students
// @Description  List students with search, branch and active filters
// @Tags         students
// @Produce      json
// @Param        search query string false "Search by name, phone or email"
// @Param        branch_id query string false "Filter by branch"
// @Param        active query bool false "Filter by manual active flag"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]membership.StudentResponse}
// @Security     BearerAuth
// @Router       /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter membership.StudentListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.studentService.List(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Update updates a student's profile and optionally moves their seat
func (h *StudentHandler) Update(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	studentID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req membership.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.studentService.Update(c.Request.Context(), tenantID, studentID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Deactivate turns off the student's membership and releases their seat
func (h *StudentHandler) Deactivate(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	studentID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.studentService.Deactivate(c.Request.Context(), tenantID, studentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Activate turns the student's membership back on. The previous seat is
// not restored; it has to be assigned again explicitly.
func (h *StudentHandler) Activate(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	studentID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.studentService.Activate(c.Request.Context(), tenantID, studentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Renew godoc
// @Summary      Renew membership
// @Description  Extend the membership period and create a fresh fee record
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        id path string true "Student ID"
// @Param        request body membership.RenewMembershipRequest true "Renewal data"
// @Success      200 {object} dto.Response{data=membership.StudentResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /students/{id}/renew [post]
func (h *StudentHandler) Renew(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	studentID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req membership.RenewMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.studentService.Renew(c.Request.Context(), tenantID, studentID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Delete removes a student
func (h *StudentHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	studentID, ok := h.parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.studentService.Delete(c.Request.Context(), tenantID, studentID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
