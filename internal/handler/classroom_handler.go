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

type classroomService interface {
	List(ctx context.Context, filter models.ClassroomFilter) ([]models.Classroom, *models.Pagination, error)
	Get(ctx context.Context, id int64) (*models.Classroom, error)
	Create(ctx context.Context, req service.CreateClassroomRequest) (*models.Classroom, error)
	Patch(ctx context.Context, id int64, req service.PatchClassroomRequest) (*models.Classroom, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ClassroomHandler exposes classroom endpoints.
type ClassroomHandler struct {
	classrooms classroomService
}

// NewClassroomHandler constructs ClassroomHandler.
func NewClassroomHandler(classrooms classroomService) *ClassroomHandler {
	return &ClassroomHandler{classrooms: classrooms}
}

func (h *ClassroomHandler) List(c *gin.Context) {
	teacherID, err := queryID(c, "teacherId")
	if err != nil {
		response.Error(c, err)
		return
	}
	filter := models.ClassroomFilter{
		Search:    strings.TrimSpace(c.Query("search")),
		Section:   models.ParseSectionFilter(c.Query("section")),
		TeacherID: teacherID,
	}
	filter.Page, filter.PageSize = pageParams(c)

	classrooms, pagination, err := h.classrooms.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, classrooms, pagination)
}

func (h *ClassroomHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	classroom, err := h.classrooms.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, classroom, nil)
}

func (h *ClassroomHandler) Create(c *gin.Context) {
	var req service.CreateClassroomRequest
	if !bindJSON(c, &req) {
		return
	}
	classroom, err := h.classrooms.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, classroom)
}

func (h *ClassroomHandler) Patch(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.PatchClassroomRequest
	if !bindJSON(c, &req) {
		return
	}
	classroom, err := h.classrooms.Patch(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, classroom, nil)
}

func (h *ClassroomHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	existed, err := h.classrooms.Delete(c.Request.Context(), id)
	respondDeleted(c, existed, err, "classroom")
}
