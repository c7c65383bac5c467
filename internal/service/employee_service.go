package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

type employeeRepository interface {
	List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, int, error)
	FindByID(ctx context.Context, id int64) (*models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) error
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateEmployeeRequest holds payload for hiring employees.
type CreateEmployeeRequest struct {
	FirstName string              `json:"firstName" validate:"required,max=100"`
	LastName  string              `json:"lastName" validate:"max=100"`
	Email     string              `json:"email" validate:"omitempty,email"`
	Phone     string              `json:"phone" validate:"max=30"`
	Role      models.EmployeeRole `json:"role" validate:"required,oneof=teacher driver cleaner guard admin staff"`
	Subjects  []string            `json:"subjects" validate:"omitempty,dive,required"`
	Shift     models.Shift        `json:"shift" validate:"required,oneof=morning afternoon evening"`
	Salary    float64             `json:"salary" validate:"gte=0"`
	HireDate  *string             `json:"hireDate" validate:"omitempty,datetime=2006-01-02"`
}

// PatchEmployeeRequest holds the subset of employee fields to change.
type PatchEmployeeRequest struct {
	FirstName *string              `json:"firstName" validate:"omitempty,min=1,max=100"`
	LastName  *string              `json:"lastName" validate:"omitempty,max=100"`
	Email     *string              `json:"email" validate:"omitempty,email"`
	Phone     *string              `json:"phone" validate:"omitempty,max=30"`
	Role      *models.EmployeeRole `json:"role" validate:"omitempty,oneof=teacher driver cleaner guard admin staff"`
	Subjects  []string             `json:"subjects" validate:"omitempty,dive,required"`
	Shift     *models.Shift        `json:"shift" validate:"omitempty,oneof=morning afternoon evening"`
	Salary    *float64             `json:"salary" validate:"omitempty,gte=0"`
	HireDate  *string              `json:"hireDate" validate:"omitempty,datetime=2006-01-02"`
}

// EmployeeService handles staff records.
type EmployeeService struct {
	repo      employeeRepository
	hooks     *WriteHooks
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEmployeeService constructs the employee service.
func NewEmployeeService(repo employeeRepository, hooks *WriteHooks, validate *validator.Validate, logger *zap.Logger) *EmployeeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EmployeeService{repo: repo, hooks: hooks, validator: validate, logger: logger}
}

// List returns employees and pagination metadata.
func (s *EmployeeService) List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, *models.Pagination, error) {
	employees, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, internalError(err, "failed to list employees")
	}
	return employees, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Get returns a single employee.
func (s *EmployeeService) Get(ctx context.Context, id int64) (*models.Employee, error) {
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "employee")
	}
	return employee, nil
}

// Create hires a new employee.
func (s *EmployeeService) Create(ctx context.Context, req CreateEmployeeRequest) (*models.Employee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, payloadError(err, "employee")
	}
	hireDate, err := parseOptionalDate("hireDate", req.HireDate)
	if err != nil {
		return nil, err
	}
	employee := &models.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      req.Role,
		Subjects:  normaliseSubjects(req.Subjects),
		Shift:     req.Shift,
		Salary:    req.Salary,
		HireDate:  hireDate,
	}
	if err := checkEmployee(employee); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		return nil, internalError(err, "failed to create employee")
	}
	s.hooks.recorded(ctx, "employee", "create")
	return employee, nil
}

// Patch applies the supplied fields to an existing employee. An empty patch performs no write.
func (s *EmployeeService) Patch(ctx context.Context, id int64, req PatchEmployeeRequest) (*models.Employee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, payloadError(err, "employee")
	}
	employee, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "employee")
	}
	if emptyPatch(req) {
		return employee, nil
	}

	if req.HireDate != nil {
		hireDate, err := parseOptionalDate("hireDate", req.HireDate)
		if err != nil {
			return nil, err
		}
		employee.HireDate = hireDate
	}
	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Role != nil {
		employee.Role = *req.Role
		if employee.Role != models.EmployeeRoleTeacher && req.Subjects == nil {
			employee.Subjects = nil
		}
	}
	if req.Subjects != nil {
		employee.Subjects = normaliseSubjects(req.Subjects)
	}
	if req.Shift != nil {
		employee.Shift = *req.Shift
	}
	if req.Salary != nil {
		employee.Salary = *req.Salary
	}
	if err := checkEmployee(employee); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, employee); err != nil {
		return nil, updateError(err, "employee")
	}
	s.hooks.recorded(ctx, "employee", "update")
	return employee, nil
}

// Delete removes an employee and reports whether it existed.
func (s *EmployeeService) Delete(ctx context.Context, id int64) (bool, error) {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, deleteError(err, "employee")
	}
	if existed {
		s.hooks.recorded(ctx, "employee", "delete")
	}
	return existed, nil
}

// checkEmployee enforces that only teachers carry subjects.
func checkEmployee(employee *models.Employee) error {
	var fields []appErrors.FieldError
	if len(employee.Subjects) > 0 && employee.Role != models.EmployeeRoleTeacher {
		fields = append(fields, appErrors.FieldError{Field: "subjects", Message: "only allowed when role is teacher"})
	}
	return invalidFields("invalid employee payload", fields)
}

func normaliseSubjects(subjects []string) []string {
	out := make([]string, 0, len(subjects))
	seen := make(map[string]struct{}, len(subjects))
	for _, subject := range subjects {
		trimmed := strings.TrimSpace(subject)
		key := strings.ToLower(trimmed)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}
