package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-records-api/internal/models"
	"github.com/noah-isme/school-records-api/internal/service"
	"github.com/noah-isme/school-records-api/pkg/response"
)

type scheduleService interface {
	List(ctx context.Context, filter models.ScheduleFilter) ([]models.Schedule, *models.Pagination, error)
	Get(ctx context.Context, id int64) (*models.Schedule, error)
	Create(ctx context.Context, req service.CreateScheduleRequest) (*models.Schedule, error)
	Patch(ctx context.Context, id int64, req service.PatchScheduleRequest) (*models.Schedule, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ScheduleHandler exposes timetable endpoints.
type ScheduleHandler struct {
	schedules scheduleService
}

// NewScheduleHandler constructs ScheduleHandler.
func NewScheduleHandler(schedules scheduleService) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

// List godoc
// @Summary List timetable slots
// @Tags Schedules
// @Produce json
// @Param section query string false "Filter by section"
// @Param className query string false "Filter by class"
// @Param day query string false "Filter by weekday"
// @Param teacherId query int false "Filter by teacher"
// @Success 200 {object} response.Envelope
// @Router /schedules [get]
func (h *ScheduleHandler) List(c *gin.Context) {
	teacherID, err := queryID(c, "teacherId")
	if err != nil {
		response.Error(c, err)
		return
	}
	h.list(c, teacherID)
}

// ListForTeacher returns the timetable of the employee in the path.
func (h *ScheduleHandler) ListForTeacher(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.list(c, &id)
}

func (h *ScheduleHandler) list(c *gin.Context, teacherID *int64) {
	filter := models.ScheduleFilter{
		Section:   models.ParseSectionFilter(c.Query("section")),
		ClassName: strings.TrimSpace(c.Query("className")),
		TeacherID: teacherID,
	}
	if day := models.Weekday(strings.ToLower(c.Query("day"))); day.Valid() {
		filter.Day = day
	}
	filter.Page, filter.PageSize = pageParams(c)

	schedules, pagination, err := h.schedules.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedules, pagination)
}

// Get returns one slot.
func (h *ScheduleHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	schedule, err := h.schedules.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedule, nil)
}

// Create adds a timetable slot.
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req service.CreateScheduleRequest
	if !bindJSON(c, &req) {
		return
	}
	schedule, err := h.schedules.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, schedule)
}

// Patch applies a partial update.
func (h *ScheduleHandler) Patch(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.PatchScheduleRequest
	if !bindJSON(c, &req) {
		return
	}
	schedule, err := h.schedules.Patch(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedule, nil)
}

// Delete removes a slot.
func (h *ScheduleHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	existed, err := h.schedules.Delete(c.Request.Context(), id)
	respondDeleted(c, existed, err, "schedule")
}
