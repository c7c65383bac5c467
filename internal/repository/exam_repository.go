package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records-api/internal/models"
)

const examColumns = "id, name, section, class_name, date, subjects, created_at"

// ExamRepository manages persistence for exams.
type ExamRepository struct {
	db      *sqlx.DB
	deleter *Deleter
}

// NewExamRepository constructs an ExamRepository.
func NewExamRepository(db *sqlx.DB, deleter *Deleter) *ExamRepository {
	return &ExamRepository{db: db, deleter: deleter}
}

// List returns exams matching filters along with total count.
func (r *ExamRepository) List(ctx context.Context, filter models.ExamFilter) ([]models.Exam, int, error) {
	var cond conditions
	if filter.Section != "" {
		cond.add("section = $%d", filter.Section)
	}
	if filter.ClassName != "" {
		cond.add("class_name = $%d", filter.ClassName)
	}
	if filter.Search != "" {
		cond.add("LOWER(name) LIKE $%d", likePattern(filter.Search))
	}

	var exams []models.Exam
	total, err := listAndCount(ctx, r.db, &exams, examColumns, tableExams, cond, "date DESC NULLS LAST, id ASC", filter.Page, filter.PageSize, "exams")
	if err != nil {
		return nil, 0, err
	}
	return exams, total, nil
}

// FindByID fetches an exam by ID.
func (r *ExamRepository) FindByID(ctx context.Context, id int64) (*models.Exam, error) {
	query := "SELECT " + examColumns + " FROM exams WHERE id = $1"
	var exam models.Exam
	if err := r.db.GetContext(ctx, &exam, query, id); err != nil {
		return nil, err
	}
	return &exam, nil
}

// Create inserts a new exam and assigns its generated ID.
func (r *ExamRepository) Create(ctx context.Context, exam *models.Exam) error {
	stampCreated(&exam.CreatedAt)
	if exam.Subjects == nil {
		exam.Subjects = []string{}
	}
	const query = `INSERT INTO exams (name, section, class_name, date, subjects, created_at)
		VALUES (:name, :section, :class_name, :date, :subjects, :created_at) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, exam)
	if err != nil {
		return fmt.Errorf("create exam: %w", err)
	}
	exam.ID = id
	return nil
}

// Update overwrites the mutable columns of an existing exam.
func (r *ExamRepository) Update(ctx context.Context, exam *models.Exam) error {
	if exam.Subjects == nil {
		exam.Subjects = []string{}
	}
	const query = `UPDATE exams SET name = :name, section = :section, class_name = :class_name, date = :date, subjects = :subjects WHERE id = :id`
	return namedUpdate(ctx, r.db, query, exam, "exam")
}

// Delete removes an exam, reporting whether it existed.
func (r *ExamRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.deleter.Delete(ctx, tableExams, id)
}
