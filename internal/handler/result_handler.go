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

type resultService interface {
	List(ctx context.Context, filter models.ResultFilter) ([]models.Result, *models.Pagination, error)
	Get(ctx context.Context, id int64) (*models.Result, error)
	Create(ctx context.Context, req service.CreateResultRequest) (*models.Result, error)
	Patch(ctx context.Context, id int64, req service.PatchResultRequest) (*models.Result, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ResultHandler exposes exam result endpoints.
type ResultHandler struct {
	results resultService
}

// NewResultHandler constructs ResultHandler.
func NewResultHandler(results resultService) *ResultHandler {
	return &ResultHandler{results: results}
}

// List godoc
// @Summary List exam results
// @Tags Results
// @Produce json
// @Param examId query int false "Filter by exam"
// @Param studentId query int false "Filter by student"
// @Param subject query string false "Filter by subject"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /results [get]
func (h *ResultHandler) List(c *gin.Context) {
	filter := models.ResultFilter{Subject: strings.TrimSpace(c.Query("subject"))}
	var err error
	if filter.ExamID, err = queryID(c, "examId"); err != nil {
		response.Error(c, err)
		return
	}
	if filter.StudentID, err = queryID(c, "studentId"); err != nil {
		response.Error(c, err)
		return
	}
	h.list(c, filter)
}

// ListForStudent returns the results of the student in the path.
func (h *ResultHandler) ListForStudent(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.list(c, models.ResultFilter{StudentID: &id, Subject: strings.TrimSpace(c.Query("subject"))})
}

// ListForExam returns the results recorded for the exam in the path.
func (h *ResultHandler) ListForExam(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.list(c, models.ResultFilter{ExamID: &id, Subject: strings.TrimSpace(c.Query("subject"))})
}

func (h *ResultHandler) list(c *gin.Context, filter models.ResultFilter) {
	filter.Page, filter.PageSize = pageParams(c)
	results, pagination, err := h.results.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, results, pagination)
}

// Get returns one result.
func (h *ResultHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.results.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Create records a result; the grade is derived from score and total.
func (h *ResultHandler) Create(c *gin.Context) {
	var req service.CreateResultRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.results.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// Patch applies a partial update.
func (h *ResultHandler) Patch(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.PatchResultRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.results.Patch(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Delete removes a result.
func (h *ResultHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	existed, err := h.results.Delete(c.Request.Context(), id)
	respondDeleted(c, existed, err, "result")
}
