package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records-api/internal/models"
)

const scheduleColumns = "id, section, class_name, day, start_time, end_time, subject, teacher_id, classroom, created_at"

// dayOrder sorts weekdays in calendar order rather than alphabetically.
const dayOrder = "CASE day WHEN 'monday' THEN 1 WHEN 'tuesday' THEN 2 WHEN 'wednesday' THEN 3 WHEN 'thursday' THEN 4 WHEN 'friday' THEN 5 WHEN 'saturday' THEN 6 ELSE 7 END"

// ScheduleRepository manages persistence for timetable slots.
type ScheduleRepository struct {
	db      *sqlx.DB
	deleter *Deleter
}

// NewScheduleRepository constructs a ScheduleRepository.
func NewScheduleRepository(db *sqlx.DB, deleter *Deleter) *ScheduleRepository {
	return &ScheduleRepository{db: db, deleter: deleter}
}

// List returns schedules matching filters along with total count.
func (r *ScheduleRepository) List(ctx context.Context, filter models.ScheduleFilter) ([]models.Schedule, int, error) {
	var cond conditions
	if filter.Section != "" {
		cond.add("section = $%d", filter.Section)
	}
	if filter.ClassName != "" {
		cond.add("class_name = $%d", filter.ClassName)
	}
	if filter.Day != "" {
		cond.add("day = $%d", filter.Day)
	}
	if filter.TeacherID != nil {
		cond.add("teacher_id = $%d", *filter.TeacherID)
	}

	var schedules []models.Schedule
	total, err := listAndCount(ctx, r.db, &schedules, scheduleColumns, tableSchedules, cond, dayOrder+", start_time ASC, id ASC", filter.Page, filter.PageSize, "schedules")
	if err != nil {
		return nil, 0, err
	}
	return schedules, total, nil
}

// FindByID fetches a schedule by ID.
func (r *ScheduleRepository) FindByID(ctx context.Context, id int64) (*models.Schedule, error) {
	query := "SELECT " + scheduleColumns + " FROM schedules WHERE id = $1"
	var schedule models.Schedule
	if err := r.db.GetContext(ctx, &schedule, query, id); err != nil {
		return nil, err
	}
	return &schedule, nil
}

// Create inserts a new schedule and assigns its generated ID.
func (r *ScheduleRepository) Create(ctx context.Context, schedule *models.Schedule) error {
	stampCreated(&schedule.CreatedAt)
	const query = `INSERT INTO schedules (section, class_name, day, start_time, end_time, subject, teacher_id, classroom, created_at)
		VALUES (:section, :class_name, :day, :start_time, :end_time, :subject, :teacher_id, :classroom, :created_at) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, schedule)
	if err != nil {
		return fmt.Errorf("create schedule: %w", err)
	}
	schedule.ID = id
	return nil
}

// Update overwrites the mutable columns of an existing schedule.
func (r *ScheduleRepository) Update(ctx context.Context, schedule *models.Schedule) error {
	const query = `UPDATE schedules SET section = :section, class_name = :class_name, day = :day, start_time = :start_time,
		end_time = :end_time, subject = :subject, teacher_id = :teacher_id, classroom = :classroom WHERE id = :id`
	return namedUpdate(ctx, r.db, query, schedule, "schedule")
}

// Delete removes a schedule, reporting whether it existed.
func (r *ScheduleRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.deleter.Delete(ctx, tableSchedules, id)
}
