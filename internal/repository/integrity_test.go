package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-records-api/pkg/config"
)

func TestDeleterNoneLeavesChildren(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	deleter := NewDeleter(db, "bogus")
	assert.Equal(t, config.ReferentialNone, deleter.Policy())

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM students WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	existed, err := deleter.Delete(context.Background(), tableStudents, 1)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleterRestrictRejectsReferencedParent(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	deleter := NewDeleter(db, config.ReferentialRestrict)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM students WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM attendance WHERE student_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM payments WHERE student_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	existed, err := deleter.Delete(context.Background(), tableStudents, 1)
	assert.False(t, existed)
	assert.True(t, errors.Is(err, ErrReferenced))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleterRestrictMissingParent(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	deleter := NewDeleter(db, config.ReferentialRestrict)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM exams WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	existed, err := deleter.Delete(context.Background(), tableExams, 9)
	require.NoError(t, err)
	assert.False(t, existed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleterCascadeNullifiesOptionalReferences(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	deleter := NewDeleter(db, config.ReferentialCascade)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM employees WHERE id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE classrooms SET teacher_id = NULL WHERE teacher_id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE schedules SET teacher_id = NULL WHERE teacher_id = $1")).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectCommit()

	existed, err := deleter.Delete(context.Background(), tableEmployees, 4)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleterCascadeRemovesRequiredChildren(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	deleter := NewDeleter(db, config.ReferentialCascade)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM exams WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM results WHERE exam_id = $1")).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 30))
	mock.ExpectCommit()

	existed, err := deleter.Delete(context.Background(), tableExams, 2)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleterLeafTableSkipsTransaction(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	deleter := NewDeleter(db, config.ReferentialCascade)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM payments WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	existed, err := deleter.Delete(context.Background(), tablePayments, 5)
	require.NoError(t, err)
	assert.True(t, existed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
