package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records-api/internal/models"
)

const attendanceColumns = "id, student_id, date, status, remarks, created_at"

// AttendanceRepository manages persistence for attendance marks.
type AttendanceRepository struct {
	db      *sqlx.DB
	deleter *Deleter
}

// NewAttendanceRepository constructs an AttendanceRepository.
func NewAttendanceRepository(db *sqlx.DB, deleter *Deleter) *AttendanceRepository {
	return &AttendanceRepository{db: db, deleter: deleter}
}

// List returns attendance marks matching filters along with total count.
func (r *AttendanceRepository) List(ctx context.Context, filter models.AttendanceFilter) ([]models.Attendance, int, error) {
	var cond conditions
	if filter.StudentID != nil {
		cond.add("student_id = $%d", *filter.StudentID)
	}
	if filter.Status != "" {
		cond.add("status = $%d", filter.Status)
	}
	if filter.DateFrom != nil {
		cond.add("date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		cond.add("date <= $%d", *filter.DateTo)
	}

	orderBy := fmt.Sprintf("date %s NULLS LAST, id ASC", sortOrder(filter.SortOrder))

	var records []models.Attendance
	total, err := listAndCount(ctx, r.db, &records, attendanceColumns, tableAttendance, cond, orderBy, filter.Page, filter.PageSize, "attendance")
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// FindByID fetches an attendance mark by ID.
func (r *AttendanceRepository) FindByID(ctx context.Context, id int64) (*models.Attendance, error) {
	query := "SELECT " + attendanceColumns + " FROM attendance WHERE id = $1"
	var record models.Attendance
	if err := r.db.GetContext(ctx, &record, query, id); err != nil {
		return nil, err
	}
	return &record, nil
}

// Create inserts a new attendance mark and assigns its generated ID.
func (r *AttendanceRepository) Create(ctx context.Context, record *models.Attendance) error {
	stampCreated(&record.CreatedAt)
	const query = `INSERT INTO attendance (student_id, date, status, remarks, created_at)
		VALUES (:student_id, :date, :status, :remarks, :created_at) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, record)
	if err != nil {
		return fmt.Errorf("create attendance: %w", err)
	}
	record.ID = id
	return nil
}

// Update overwrites the mutable columns of an existing attendance mark.
func (r *AttendanceRepository) Update(ctx context.Context, record *models.Attendance) error {
	const query = `UPDATE attendance SET student_id = :student_id, date = :date, status = :status, remarks = :remarks WHERE id = :id`
	return namedUpdate(ctx, r.db, query, record, "attendance")
}

// Delete removes an attendance mark, reporting whether it existed.
func (r *AttendanceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.deleter.Delete(ctx, tableAttendance, id)
}
