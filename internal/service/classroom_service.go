package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
)

type classroomRepository interface {
	List(ctx context.Context, filter models.ClassroomFilter) ([]models.Classroom, int, error)
	FindByID(ctx context.Context, id int64) (*models.Classroom, error)
	Create(ctx context.Context, classroom *models.Classroom) error
	Update(ctx context.Context, classroom *models.Classroom) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateClassroomRequest holds payload for registering classrooms.
type CreateClassroomRequest struct {
	Name      string         `json:"name" validate:"required,max=100"`
	Section   models.Section `json:"section" validate:"required,oneof=primary secondary highschool"`
	Capacity  int            `json:"capacity" validate:"gte=0,lte=1000"`
	TeacherID *int64         `json:"teacherId" validate:"omitempty,gt=0"`
}

// PatchClassroomRequest holds the subset of classroom fields to change.
type PatchClassroomRequest struct {
	Name      *string         `json:"name" validate:"omitempty,min=1,max=100"`
	Section   *models.Section `json:"section" validate:"omitempty,oneof=primary secondary highschool"`
	Capacity  *int            `json:"capacity" validate:"omitempty,gte=0,lte=1000"`
	TeacherID *int64          `json:"teacherId" validate:"omitempty,gt=0"`
}

// ClassroomService handles classroom records.
type ClassroomService struct {
	repo      classroomRepository
	hooks     *WriteHooks
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassroomService constructs the classroom service.
func NewClassroomService(repo classroomRepository, hooks *WriteHooks, validate *validator.Validate, logger *zap.Logger) *ClassroomService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassroomService{repo: repo, hooks: hooks, validator: validate, logger: logger}
}

// List returns classrooms and pagination metadata.
func (s *ClassroomService) List(ctx context.Context, filter models.ClassroomFilter) ([]models.Classroom, *models.Pagination, error) {
	classrooms, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, internalError(err, "failed to list classrooms")
	}
	return classrooms, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Get returns a single classroom.
func (s *ClassroomService) Get(ctx context.Context, id int64) (*models.Classroom, error) {
	classroom, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "classroom")
	}
	return classroom, nil
}

// Create registers a classroom.
func (s *ClassroomService) Create(ctx context.Context, req CreateClassroomRequest) (*models.Classroom, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, payloadError(err, "classroom")
	}
	classroom := &models.Classroom{
		Name:      req.Name,
		Section:   req.Section,
		Capacity:  req.Capacity,
		TeacherID: req.TeacherID,
	}
	if err := s.repo.Create(ctx, classroom); err != nil {
		return nil, internalError(err, "failed to create classroom")
	}
	s.hooks.recorded(ctx, "classroom", "create")
	return classroom, nil
}

// Patch applies the supplied fields to an existing classroom. An empty patch performs no write.
func (s *ClassroomService) Patch(ctx context.Context, id int64, req PatchClassroomRequest) (*models.Classroom, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, payloadError(err, "classroom")
	}
	classroom, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "classroom")
	}
	if emptyPatch(req) {
		return classroom, nil
	}

	if req.Name != nil {
		classroom.Name = *req.Name
	}
	if req.Section != nil {
		classroom.Section = *req.Section
	}
	if req.Capacity != nil {
		classroom.Capacity = *req.Capacity
	}
	if req.TeacherID != nil {
		classroom.TeacherID = req.TeacherID
	}

	if err := s.repo.Update(ctx, classroom); err != nil {
		return nil, updateError(err, "classroom")
	}
	s.hooks.recorded(ctx, "classroom", "update")
	return classroom, nil
}

// Delete removes a classroom and reports whether it existed.
func (s *ClassroomService) Delete(ctx context.Context, id int64) (bool, error) {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, deleteError(err, "classroom")
	}
	if existed {
		s.hooks.recorded(ctx, "classroom", "delete")
	}
	return existed, nil
}
