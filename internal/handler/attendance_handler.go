package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-records-api/internal/models"
	"github.com/noah-isme/school-records-api/internal/service"
	"github.com/noah-isme/school-records-api/pkg/response"
)

type attendanceService interface {
	List(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, *models.Pagination, error)
	Get(ctx context.Context, id int64) (*models.Attendance, error)
	Create(ctx context.Context, req service.CreateAttendanceRequest) (*models.Attendance, error)
	Patch(ctx context.Context, id int64, req service.PatchAttendanceRequest) (*models.Attendance, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// AttendanceHandler exposes attendance mark endpoints.
type AttendanceHandler struct {
	attendance attendanceService
}

// NewAttendanceHandler constructs AttendanceHandler.
func NewAttendanceHandler(attendance attendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendance: attendance}
}

// List godoc
// @Summary List attendance marks
// @Tags Attendance
// @Produce json
// @Param studentId query int false "Filter by student"
// @Param status query string false "present, absent or late"
// @Param date_from query string false "Inclusive start date (YYYY-MM-DD)"
// @Param date_to query string false "Inclusive end date (YYYY-MM-DD)"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /attendance [get]
func (h *AttendanceHandler) List(c *gin.Context) {
	studentID, err := queryID(c, "studentId")
	if err != nil {
		response.Error(c, err)
		return
	}
	h.list(c, studentID)
}

// ListForStudent godoc
// @Summary List attendance marks of one student
// @Tags Attendance
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} response.Envelope
// @Router /students/{id}/attendance [get]
func (h *AttendanceHandler) ListForStudent(c *gin.Context) {
	studentID, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.list(c, &studentID)
}

func (h *AttendanceHandler) list(c *gin.Context, studentID *int64) {
	filter := models.AttendanceFilter{StudentID: studentID, SortOrder: c.Query("order")}
	if status := models.AttendanceStatus(c.Query("status")); status.Valid() {
		filter.Status = status
	}
	var err error
	if filter.DateFrom, err = queryDate(c, "date_from"); err != nil {
		response.Error(c, err)
		return
	}
	if filter.DateTo, err = queryDate(c, "date_to"); err != nil {
		response.Error(c, err)
		return
	}
	filter.Page, filter.PageSize = pageParams(c)

	records, pagination, err := h.attendance.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, pagination)
}

// Get returns one attendance mark.
func (h *AttendanceHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	record, err := h.attendance.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record, nil)
}

// Create records an attendance mark.
func (h *AttendanceHandler) Create(c *gin.Context) {
	var req service.CreateAttendanceRequest
	if !bindJSON(c, &req) {
		return
	}
	record, err := h.attendance.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

// Patch applies a partial update.
func (h *AttendanceHandler) Patch(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.PatchAttendanceRequest
	if !bindJSON(c, &req) {
		return
	}
	record, err := h.attendance.Patch(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record, nil)
}

// Delete removes an attendance mark.
func (h *AttendanceHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	existed, err := h.attendance.Delete(c.Request.Context(), id)
	respondDeleted(c, existed, err, "attendance record")
}
