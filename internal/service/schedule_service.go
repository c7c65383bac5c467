package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/models"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

type scheduleRepository interface {
	List(ctx context.Context, filter models.ScheduleFilter) ([]models.Schedule, int, error)
	FindByID(ctx context.Context, id int64) (*models.Schedule, error)
	Create(ctx context.Context, schedule *models.Schedule) error
	Update(ctx context.Context, schedule *models.Schedule) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CreateScheduleRequest holds payload for adding a timetable slot.
type CreateScheduleRequest struct {
	Section   models.Section `json:"section" validate:"required,oneof=primary secondary highschool"`
	ClassName string         `json:"className" validate:"required,max=50"`
	Day       models.Weekday `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday"`
	StartTime string         `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string         `json:"endTime" validate:"required,datetime=15:04"`
	Subject   string         `json:"subject" validate:"required,max=100"`
	TeacherID *int64         `json:"teacherId" validate:"omitempty,gt=0"`
	Classroom string         `json:"classroom" validate:"max=100"`
}

// PatchScheduleRequest holds the subset of timetable fields to change.
type PatchScheduleRequest struct {
	Section   *models.Section `json:"section" validate:"omitempty,oneof=primary secondary highschool"`
	ClassName *string         `json:"className" validate:"omitempty,min=1,max=50"`
	Day       *models.Weekday `json:"day" validate:"omitempty,oneof=monday tuesday wednesday thursday friday saturday"`
	StartTime *string         `json:"startTime" validate:"omitempty,datetime=15:04"`
	EndTime   *string         `json:"endTime" validate:"omitempty,datetime=15:04"`
	Subject   *string         `json:"subject" validate:"omitempty,min=1,max=100"`
	TeacherID *int64          `json:"teacherId" validate:"omitempty,gt=0"`
	Classroom *string         `json:"classroom" validate:"omitempty,max=100"`
}

// ScheduleService manages timetable slots.
type ScheduleService struct {
	repo      scheduleRepository
	hooks     *WriteHooks
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScheduleService constructs the schedule service.
func NewScheduleService(repo scheduleRepository, hooks *WriteHooks, validate *validator.Validate, logger *zap.Logger) *ScheduleService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{repo: repo, hooks: hooks, validator: validate, logger: logger}
}

// List returns schedules and pagination metadata.
func (s *ScheduleService) List(ctx context.Context, filter models.ScheduleFilter) ([]models.Schedule, *models.Pagination, error) {
	schedules, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, internalError(err, "failed to list schedules")
	}
	return schedules, paginationFor(filter.Page, filter.PageSize, total), nil
}

// Get returns a single schedule.
func (s *ScheduleService) Get(ctx context.Context, id int64) (*models.Schedule, error) {
	schedule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "schedule")
	}
	return schedule, nil
}

// Create adds a timetable slot.
func (s *ScheduleService) Create(ctx context.Context, req CreateScheduleRequest) (*models.Schedule, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, payloadError(err, "schedule")
	}
	schedule := &models.Schedule{
		Section:   req.Section,
		ClassName: req.ClassName,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Subject:   req.Subject,
		TeacherID: req.TeacherID,
		Classroom: req.Classroom,
	}
	if err := checkSchedule(schedule); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, internalError(err, "failed to create schedule")
	}
	s.hooks.recorded(ctx, "schedule", "create")
	return schedule, nil
}

// Patch applies the supplied fields to an existing slot. An empty patch performs no write.
func (s *ScheduleService) Patch(ctx context.Context, id int64, req PatchScheduleRequest) (*models.Schedule, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, payloadError(err, "schedule")
	}
	schedule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, loadError(err, "schedule")
	}
	if emptyPatch(req) {
		return schedule, nil
	}

	if req.Section != nil {
		schedule.Section = *req.Section
	}
	if req.ClassName != nil {
		schedule.ClassName = *req.ClassName
	}
	if req.Day != nil {
		schedule.Day = *req.Day
	}
	if req.StartTime != nil {
		schedule.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		schedule.EndTime = *req.EndTime
	}
	if req.Subject != nil {
		schedule.Subject = *req.Subject
	}
	if req.TeacherID != nil {
		schedule.TeacherID = req.TeacherID
	}
	if req.Classroom != nil {
		schedule.Classroom = *req.Classroom
	}
	if err := checkSchedule(schedule); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, schedule); err != nil {
		return nil, updateError(err, "schedule")
	}
	s.hooks.recorded(ctx, "schedule", "update")
	return schedule, nil
}

// Delete removes a schedule and reports whether it existed.
func (s *ScheduleService) Delete(ctx context.Context, id int64) (bool, error) {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, deleteError(err, "schedule")
	}
	if existed {
		s.hooks.recorded(ctx, "schedule", "delete")
	}
	return existed, nil
}

func checkSchedule(schedule *models.Schedule) error {
	start, errStart := time.Parse(timeLayout, schedule.StartTime)
	end, errEnd := time.Parse(timeLayout, schedule.EndTime)
	var fields []appErrors.FieldError
	if errStart == nil && errEnd == nil && !end.After(start) {
		fields = append(fields, appErrors.FieldError{Field: "endTime", Message: "must be after startTime"})
	}
	return invalidFields("invalid schedule payload", fields)
}
