package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsRepositorySnapshot(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewAnalyticsRepository(db)

	now := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM students ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(studentRowColumns).
			AddRow(1, "Ada", "", "female", now, "primary", "5A", "", "", "", "", "", "", now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM employees ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email", "phone", "role", "subjects", "shift", "salary", "hire_date", "created_at"}).
			AddRow(1, "Grace", "Hopper", "", "", "teacher", "{math,physics}", "morning", "5000.00", nil, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM attendance ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "date", "status", "remarks", "created_at"}).
			AddRow(1, 1, nil, "present", "", now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM payments ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "student_id", "amount", "date", "status", "paid_amount", "method", "description", "created_at"}).
			AddRow(1, 1, "500.00", now, "partial", "200.00", "cash", "", now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM exams ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "section", "class_name", "date", "subjects", "created_at"}))
	mock.ExpectQuery(regexp.QuoteMeta("FROM results ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "exam_id", "student_id", "subject", "score", "total", "grade", "created_at"}))
	mock.ExpectCommit()

	snap, err := repo.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Students, 1)
	require.Len(t, snap.Employees, 1)
	assert.Equal(t, []string{"math", "physics"}, []string(snap.Employees[0].Subjects))
	assert.Nil(t, snap.Attendance[0].Date)
	require.NotNil(t, snap.Payments[0].PaidAmount)
	assert.Equal(t, 200.0, *snap.Payments[0].PaidAmount)
	assert.Empty(t, snap.Exams)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepositorySnapshotRollsBackOnError(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewAnalyticsRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM students ORDER BY id")).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	_, err := repo.Snapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "snapshot students")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyticsRepositoryStats(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("(SELECT COUNT(*) FROM students) AS students")).
		WillReturnRows(sqlmock.NewRows([]string{"students", "employees", "classrooms", "attendance", "payments", "exams", "results", "schedules"}).
			AddRow(10, 4, 3, 20, 12, 2, 40, 6))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, stats.Students)
	assert.Equal(t, 40, stats.Results)
	assert.Equal(t, 6, stats.Schedules)
	assert.NoError(t, mock.ExpectationsWereMet())
}
