package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

type resultRepository interface {
	List(ctx context.Context, filter models.ResultFilter) ([]models.Result, int, error)
	FindByID(ctx context.Context, id int64) (*models.Result, error)
	Create(ctx context.Context, result *models.Result) error
	Update(ctx context.Context, result *models.Result) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateResultRequest holds payload for recording an exam score.
type CreateResultRequest struct {
	ExamID    int64   `json:"examId" validate:"required,gt=0"`
	StudentID int64   `json:"studentId" validate:"required,gt=0"`
	Subject   string  `json:"subject" validate:"required,max=100"`
	Score     float64 `json:"score" validate:"gte=0"`
	Total     float64 `json:"total" validate:"gt=0"`
}

// PatchResultRequest holds the subset of result fields to change.
type PatchResultRequest struct {
	ExamID    *int64   `json:"examId" validate:"omitempty,gt=0"`
	StudentID *int64   `json:"studentId" validate:"omitempty,gt=0"`
	Subject   *string  `json:"subject" validate:"omitempty,min=1,max=100"`
	Score     *float64 `json:"score" validate:"omitempty,gte=0"`
	Total     *float64 `json:"total" validate:"omitempty,gt=0"`
}

// ResultService records exam results and derives their grades.
type ResultService struct {
	repo      resultRepository
	hooks     *WriteHooks
	validator *validator.Validate
	logger    *zap.Logger
}

// NewResultService constructs the result service.
func NewResultService(repo resultRepository, hooks *WriteHooks, validate *validator.Validate, logger *zap.Logger) *ResultService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResultService{repo: repo, hooks: hooks, validator: validate, logger: logger}
}

// List returns results and pagination metadata.
func (s *ResultService) List(ctx context.Context, filter models.ResultFilter) ([]models.Result, *models.Pagination, error) {
	results, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, internalError(err, "failed to list results")
	}
	return results, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Get returns a single result.
func (s *ResultService) Get(ctx context.Context, id int64) (*models.Result, error) {
	result, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "result")
	}
	return result, nil
}

// Create records a score. The grade is derived from the percentage.
func (s *ResultService) Create(ctx context.Context, req CreateResultRequest) (*models.Result, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, payloadError(err, "result")
	}
	result := &models.Result{
		ExamID:    req.ExamID,
		StudentID: req.StudentID,
		Subject:   strings.TrimSpace(req.Subject),
		Score:     req.Score,
		Total:     req.Total,
	}
	if err := checkResult(result); err != nil {
		return nil, err
	}
	result.Grade = models.GradeFor(result.Percentage())
	if err := s.repo.Create(ctx, result); err != nil {
		return nil, internalError(err, "failed to create result")
	}
	s.hooks.recorded(ctx, "result", "create")
	return result, nil
}

// Patch applies the supplied fields and re-derives the grade. An empty patch performs no write.
func (s *ResultService) Patch(ctx context.Context, id int64, req PatchResultRequest) (*models.Result, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, payloadError(err, "result")
	}
	result, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "result")
	}
	if emptyPatch(req) {
		return result, nil
	}

	if req.ExamID != nil {
		result.ExamID = *req.ExamID
	}
	if req.StudentID != nil {
		result.StudentID = *req.StudentID
	}
	if req.Subject != nil {
		result.Subject = strings.TrimSpace(*req.Subject)
	}
	if req.Score != nil {
		result.Score = *req.Score
	}
	if req.Total != nil {
		result.Total = *req.Total
	}
	if err := checkResult(result); err != nil {
		return nil, err
	}
	result.Grade = models.GradeFor(result.Percentage())

	if err := s.repo.Update(ctx, result); err != nil {
		return nil, updateError(err, "result")
	}
	s.hooks.recorded(ctx, "result", "update")
	return result, nil
}

// Delete removes a result and reports whether it existed.
func (s *ResultService) Delete(ctx context.Context, id int64) (bool, error) {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, deleteError(err, "result")
	}
	if existed {
		s.hooks.recorded(ctx, "result", "delete")
	}
	return existed, nil
}

func checkResult(result *models.Result) error {
	var fields []appErrors.FieldError
	if result.Score > result.Total {
		fields = append(fields, appErrors.FieldError{Field: "score", Message: "must not exceed total"})
	}
	return invalidFields("invalid result payload", fields)
}
