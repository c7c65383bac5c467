package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
)

type examRepository interface {
	List(ctx context.Context, filter models.ExamFilter) ([]models.Exam, int, error)
	FindByID(ctx context.Context, id int64) (*models.Exam, error)
	Create(ctx context.Context, exam *models.Exam) error
	Update(ctx context.Context, exam *models.Exam) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateExamRequest holds payload for scheduling exams.
type CreateExamRequest struct {
	Name      string         `json:"name" validate:"required,max=150"`
	Section   models.Section `json:"section" validate:"required,oneof=primary secondary highschool"`
	ClassName string         `json:"className" validate:"required,max=50"`
	Date      *string        `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Subjects  []string       `json:"subjects" validate:"omitempty,dive,required"`
}

// PatchExamRequest holds the subset of exam fields to change.
type PatchExamRequest struct {
	Name      *string         `json:"name" validate:"omitempty,min=1,max=150"`
	Section   *models.Section `json:"section" validate:"omitempty,oneof=primary secondary highschool"`
	ClassName *string         `json:"className" validate:"omitempty,min=1,max=50"`
	Date      *string         `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Subjects  []string        `json:"subjects" validate:"omitempty,dive,required"`
}

// ExamService handles exam definitions.
type ExamService struct {
	repo      examRepository
	hooks     *WriteHooks
	validator *validator.Validate
	logger    *zap.Logger
}

// NewExamService constructs the exam service.
func NewExamService(repo examRepository, hooks *WriteHooks, validate *validator.Validate, logger *zap.Logger) *ExamService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExamService{repo: repo, hooks: hooks, validator: validate, logger: logger}
}

// List returns exams and pagination metadata.
func (s *ExamService) List(ctx context.Context, filter models.ExamFilter) ([]models.Exam, *models.Pagination, error) {
	exams, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, internalError(err, "failed to list exams")
	}
	return exams, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Get returns a single exam.
func (s *ExamService) Get(ctx context.Context, id int64) (*models.Exam, error) {
	exam, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "exam")
	}
	return exam, nil
}

// Create schedules an exam.
func (s *ExamService) Create(ctx context.Context, req CreateExamRequest) (*models.Exam, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, payloadError(err, "exam")
	}
	date, err := parseOptionalDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	exam := &models.Exam{
		Name:      req.Name,
		Section:   req.Section,
		ClassName: req.ClassName,
		Date:      date,
		Subjects:  normaliseSubjects(req.Subjects),
	}
	if err := s.repo.Create(ctx, exam); err != nil {
		return nil, internalError(err, "failed to create exam")
	}
	s.hooks.recorded(ctx, "exam", "create")
	return exam, nil
}

// Patch applies the supplied fields to an existing exam. An empty patch performs no write.
func (s *ExamService) Patch(ctx context.Context, id int64, req PatchExamRequest) (*models.Exam, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, payloadError(err, "exam")
	}
	exam, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "exam")
	}
	if emptyPatch(req) {
		return exam, nil
	}

	if req.Date != nil {
		date, err := parseOptionalDate("date", req.Date)
		if err != nil {
			return nil, err
		}
		exam.Date = date
	}
	if req.Name != nil {
		exam.Name = *req.Name
	}
	if req.Section != nil {
		exam.Section = *req.Section
	}
	if req.ClassName != nil {
		exam.ClassName = *req.ClassName
	}
	if req.Subjects != nil {
		exam.Subjects = normaliseSubjects(req.Subjects)
	}

	if err := s.repo.Update(ctx, exam); err != nil {
		return nil, updateError(err, "exam")
	}
	s.hooks.recorded(ctx, "exam", "update")
	return exam, nil
}

// Delete removes an exam and reports whether it existed.
func (s *ExamService) Delete(ctx context.Context, id int64) (bool, error) {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, deleteError(err, "exam")
	}
	if existed {
		s.hooks.recorded(ctx, "exam", "delete")
	}
	return existed, nil
}
