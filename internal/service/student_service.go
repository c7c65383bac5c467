package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
)

type studentRepository interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int, error)
	FindByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateStudentRequest holds payload for creating students.
type CreateStudentRequest struct {
	FirstName        string         `json:"firstName" validate:"required,max=100"`
	LastName         string         `json:"lastName" validate:"max=100"`
	Gender           models.Gender  `json:"gender" validate:"required,oneof=male female"`
	DateOfBirth      string         `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
	Section          models.Section `json:"section" validate:"required,oneof=primary secondary highschool"`
	ClassName        string         `json:"className" validate:"required,max=50"`
	Email            string         `json:"email" validate:"omitempty,email"`
	Phone            string         `json:"phone" validate:"max=30"`
	Address          string         `json:"address"`
	GuardianName     string         `json:"guardianName"`
	GuardianPhone    string         `json:"guardianPhone" validate:"max=30"`
	GuardianRelation string         `json:"guardianRelation"`
}

// PatchStudentRequest holds the subset of student fields to change.
type PatchStudentRequest struct {
	FirstName        *string         `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName         *string         `json:"lastName" validate:"omitempty,max=100"`
	Gender           *models.Gender  `json:"gender" validate:"omitempty,oneof=male female"`
	DateOfBirth      *string         `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	Section          *models.Section `json:"section" validate:"omitempty,oneof=primary secondary highschool"`
	ClassName        *string         `json:"className" validate:"omitempty,min=1,max=50"`
	Email            *string         `json:"email" validate:"omitempty,email"`
	Phone            *string         `json:"phone" validate:"omitempty,max=30"`
	Address          *string         `json:"address"`
	GuardianName     *string         `json:"guardianName"`
	GuardianPhone    *string         `json:"guardianPhone" validate:"omitempty,max=30"`
	GuardianRelation *string         `json:"guardianRelation"`
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	hooks     *WriteHooks
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, hooks *WriteHooks, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, hooks: hooks, validator: validate, logger: logger}
}

// List returns students and pagination metadata.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, *models.Pagination, error) {
	students, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, internalError(err, "failed to list students")
	}
	return students, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Get returns a single student.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "student")
	}
	return student, nil
}

// Create registers a new student.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, payloadError(err, "student")
	}
	dob, err := parseDate("dateOfBirth", req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	student := &models.Student{
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Gender:           req.Gender,
		DateOfBirth:      dob,
		Section:          req.Section,
		ClassName:        req.ClassName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		GuardianName:     req.GuardianName,
		GuardianPhone:    req.GuardianPhone,
		GuardianRelation: req.GuardianRelation,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, internalError(err, "failed to create student")
	}
	s.hooks.recorded(ctx, "student", "create")
	return student, nil
}

// Patch applies the supplied fields to an existing student. An empty patch performs no write.
func (s *StudentService) Patch(ctx context.Context, id int64, req PatchStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, payloadError(err, "student")
	}
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "student")
	}
	if emptyPatch(req) {
		return student, nil
	}

	if req.DateOfBirth != nil {
		dob, err := parseDate("dateOfBirth", *req.DateOfBirth)
		if err != nil {
			return nil, err
		}
		student.DateOfBirth = dob
	}
	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.Gender != nil {
		student.Gender = *req.Gender
	}
	if req.Section != nil {
		student.Section = *req.Section
	}
	if req.ClassName != nil {
		student.ClassName = *req.ClassName
	}
	if req.Email != nil {
		student.Email = *req.Email
	}
	if req.Phone != nil {
		student.Phone = *req.Phone
	}
	if req.Address != nil {
		student.Address = *req.Address
	}
	if req.GuardianName != nil {
		student.GuardianName = *req.GuardianName
	}
	if req.GuardianPhone != nil {
		student.GuardianPhone = *req.GuardianPhone
	}
	if req.GuardianRelation != nil {
		student.GuardianRelation = *req.GuardianRelation
	}

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, updateError(err, "student")
	}
	s.hooks.recorded(ctx, "student", "update")
	return student, nil
}

// Delete removes a student and reports whether it existed.
func (s *StudentService) Delete(ctx context.Context, id int64) (bool, error) {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, deleteError(err, "student")
	}
	if existed {
		s.hooks.recorded(ctx, "student", "delete")
	}
	return existed, nil
}
