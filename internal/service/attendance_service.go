package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
)

type attendanceRepository interface {
	List(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, int, error)
	FindByID(ctx context.Context, id int64) (*models.Attendance, error)
	Create(ctx context.Context, record *models.Attendance) error
	Update(ctx context.Context, record *models.Attendance) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateAttendanceRequest holds payload for recording attendance.
type CreateAttendanceRequest struct {
	StudentID int64                   `json:"studentId" validate:"required,gt=0"`
	Date      *string                 `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status    models.AttendanceStatus `json:"status" validate:"required,oneof=present absent late"`
	Remarks   string                  `json:"remarks" validate:"max=500"`
}

// PatchAttendanceRequest holds the subset of attendance fields to change.
type PatchAttendanceRequest struct {
	StudentID *int64                   `json:"studentId" validate:"omitempty,gt=0"`
	Date      *string                  `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Status    *models.AttendanceStatus `json:"status" validate:"omitempty,oneof=present absent late"`
	Remarks   *string                  `json:"remarks" validate:"omitempty,max=500"`
}

// AttendanceService records daily attendance marks.
type AttendanceService struct {
	repo      attendanceRepository
	hooks     *WriteHooks
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAttendanceService constructs the attendance service.
func NewAttendanceService(repo attendanceRepository, hooks *WriteHooks, validate *validator.Validate, logger *zap.Logger) *AttendanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{repo: repo, hooks: hooks, validator: validate, logger: logger}
}

// List returns attendance marks and pagination metadata.
func (s *AttendanceService) List(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, *models.Pagination, error) {
	records, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, internalError(err, "failed to list attendance")
	}
	return records, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Get returns a single attendance mark.
func (s *AttendanceService) Get(ctx context.Context, id int64) (*models.Attendance, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "attendance record")
	}
	return record, nil
}

// Create records an attendance mark.
func (s *AttendanceService) Create(ctx context.Context, req CreateAttendanceRequest) (*models.Attendance, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, payloadError(err, "attendance")
	}
	date, err := parseOptionalDate("date", req.Date)
	if err != nil {
		return nil, err
	}
	record := &models.Attendance{
		StudentID: req.StudentID,
		Date:      date,
		Status:    req.Status,
		Remarks:   req.Remarks,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, internalError(err, "failed to create attendance")
	}
	s.hooks.recorded(ctx, "attendance", "create")
	return record, nil
}

// Patch applies the supplied fields to an existing mark. An empty patch performs no write.
func (s *AttendanceService) Patch(ctx context.Context, id int64, req PatchAttendanceRequest) (*models.Attendance, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, payloadError(err, "attendance")
	}
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "attendance record")
	}
	if emptyPatch(req) {
		return record, nil
	}

	if req.Date != nil {
		date, err := parseOptionalDate("date", req.Date)
		if err != nil {
			return nil, err
		}
		record.Date = date
	}
	if req.StudentID != nil {
		record.StudentID = *req.StudentID
	}
	if req.Status != nil {
		record.Status = *req.Status
	}
	if req.Remarks != nil {
		record.Remarks = *req.Remarks
	}

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, updateError(err, "attendance")
	}
	s.hooks.recorded(ctx, "attendance", "update")
	return record, nil
}

// Delete removes an attendance mark and reports whether it existed.
func (s *AttendanceService) Delete(ctx context.Context, id int64) (bool, error) {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, deleteError(err, "attendance record")
	}
	if existed {
		s.hooks.recorded(ctx, "attendance", "delete")
	}
	return existed, nil
}
