package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records-api/internal/models"
)

const resultColumns = "id, exam_id, student_id, subject, score, total, grade, created_at"

// ResultRepository manages persistence for exam results.
type ResultRepository struct {
	db      *sqlx.DB
	deleter *Deleter
}

// NewResultRepository constructs a ResultRepository.
func NewResultRepository(db *sqlx.DB, deleter *Deleter) *ResultRepository {
	return &ResultRepository{db: db, deleter: deleter}
}

// List returns results matching filters along with total count.
func (r *ResultRepository) List(ctx context.Context, filter models.ResultFilter) ([]models.Result, int, error) {
	var cond conditions
	if filter.ExamID != nil {
		cond.add("exam_id = $%d", *filter.ExamID)
	}
	if filter.StudentID != nil {
		cond.add("student_id = $%d", *filter.StudentID)
	}
	if filter.Subject != "" {
		cond.add("LOWER(subject) = LOWER($%d)", filter.Subject)
	}

	var results []models.Result
	total, err := listAndCount(ctx, r.db, &results, resultColumns, tableResults, cond, "created_at DESC, id ASC", filter.Page, filter.PageSize, "results")
	if err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// FindByID fetches a result by ID.
func (r *ResultRepository) FindByID(ctx context.Context, id int64) (*models.Result, error) {
	query := "SELECT " + resultColumns + " FROM results WHERE id = $1"
	var result models.Result
	if err := r.db.GetContext(ctx, &result, query, id); err != nil {
		return nil, err
	}
	return &result, nil
}

// Create inserts a new result and assigns its generated ID.
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	stampCreated(&result.CreatedAt)
	const query = `INSERT INTO results (exam_id, student_id, subject, score, total, grade, created_at)
		VALUES (:exam_id, :student_id, :subject, :score, :total, :grade, :created_at) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, result)
	if err != nil {
		return fmt.Errorf("create result: %w", err)
	}
	result.ID = id
	return nil
}

// Update overwrites the mutable columns of an existing result.
func (r *ResultRepository) Update(ctx context.Context, result *models.Result) error {
	const query = `UPDATE results SET exam_id = :exam_id, student_id = :student_id, subject = :subject, score = :score, total = :total, grade = :grade WHERE id = :id`
	return namedUpdate(ctx, r.db, query, result, "result")
}

// Delete removes a result, reporting whether it existed.
func (r *ResultRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.deleter.Delete(ctx, tableResults, id)
}
