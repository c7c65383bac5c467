package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records-api/internal/models"
)

// AnalyticsRepository exposes the read paths used by the analytics and stats endpoints.
type AnalyticsRepository struct {
	db *sqlx.DB
}

// NewAnalyticsRepository instantiates the repository.
func NewAnalyticsRepository(db *sqlx.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// Snapshot loads every collection the analytics report needs inside one read-only
// repeatable-read transaction so all sections see the same state.
func (r *AnalyticsRepository) Snapshot(ctx context.Context) (*models.Snapshot, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("begin analytics snapshot: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	snap := &models.Snapshot{TakenAt: time.Now().UTC()}
	loads := []struct {
		label string
		dest  interface{}
		query string
	}{
		{"students", &snap.Students, "SELECT " + studentColumns + " FROM students ORDER BY id"},
		{"employees", &snap.Employees, "SELECT " + employeeColumns + " FROM employees ORDER BY id"},
		{"attendance", &snap.Attendance, "SELECT " + attendanceColumns + " FROM attendance ORDER BY id"},
		{"payments", &snap.Payments, "SELECT " + paymentColumns + " FROM payments ORDER BY id"},
		{"exams", &snap.Exams, "SELECT " + examColumns + " FROM exams ORDER BY id"},
		{"results", &snap.Results, "SELECT " + resultColumns + " FROM results ORDER BY id"},
	}
	for _, load := range loads {
		if err := tx.SelectContext(ctx, load.dest, load.query); err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", load.label, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit analytics snapshot: %w", err)
	}
	return snap, nil
}

// Stats counts the rows of every collection.
func (r *AnalyticsRepository) Stats(ctx context.Context) (*models.Stats, error) {
	const query = `SELECT
		(SELECT COUNT(*) FROM students) AS students,
		(SELECT COUNT(*) FROM employees) AS employees,
		(SELECT COUNT(*) FROM classrooms) AS classrooms,
		(SELECT COUNT(*) FROM attendance) AS attendance,
		(SELECT COUNT(*) FROM payments) AS payments,
		(SELECT COUNT(*) FROM exams) AS exams,
		(SELECT COUNT(*) FROM results) AS results,
		(SELECT COUNT(*) FROM schedules) AS schedules`
	var stats models.Stats
	if err := r.db.GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("count records: %w", err)
	}
	return &stats, nil
}
