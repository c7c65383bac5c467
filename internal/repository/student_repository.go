package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records-api/internal/models"
)

const studentColumns = "id, first_name, last_name, gender, date_of_birth, section, class_name, email, phone, address, guardian_name, guardian_phone, guardian_relation, created_at"

// StudentRepository manages persistence for students.
type StudentRepository struct {
	db      *sqlx.DB
	deleter *Deleter
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB, deleter *Deleter) *StudentRepository {
	return &StudentRepository{db: db, deleter: deleter}
}

// List returns students matching filters along with total count.
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, int, error) {
	var cond conditions
	if filter.Section != "" {
		cond.add("section = $%d", filter.Section)
	}
	if filter.ClassName != "" {
		cond.add("class_name = $%d", filter.ClassName)
	}
	if filter.Search != "" {
		cond.add("(LOWER(first_name) LIKE $%[1]d OR LOWER(last_name) LIKE $%[1]d OR LOWER(email) LIKE $%[1]d)", likePattern(filter.Search))
	}

	column := sortColumn(filter.SortBy, map[string]string{
		"first_name": "first_name",
		"last_name":  "last_name",
		"class_name": "class_name",
		"created_at": "created_at",
	}, "created_at")
	orderBy := fmt.Sprintf("%s %s, id ASC", column, sortOrder(filter.SortOrder))

	var students []models.Student
	total, err := listAndCount(ctx, r.db, &students, studentColumns, tableStudents, cond, orderBy, filter.Page, filter.PageSize, "students")
	if err != nil {
		return nil, 0, err
	}
	return students, total, nil
}

// FindByID fetches a student by ID.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	query := "SELECT " + studentColumns + " FROM students WHERE id = $1"
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

// Create inserts a new student and assigns its generated ID.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	stampCreated(&student.CreatedAt)
	const query = `INSERT INTO students (first_name, last_name, gender, date_of_birth, section, class_name, email, phone, address, guardian_name, guardian_phone, guardian_relation, created_at)
		VALUES (:first_name, :last_name, :gender, :date_of_birth, :section, :class_name, :email, :phone, :address, :guardian_name, :guardian_phone, :guardian_relation, :created_at) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, student)
	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	student.ID = id
	return nil
}

// Update overwrites the mutable columns of an existing student.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	const query = `UPDATE students SET first_name = :first_name, last_name = :last_name, gender = :gender, date_of_birth = :date_of_birth,
		section = :section, class_name = :class_name, email = :email, phone = :phone, address = :address,
		guardian_name = :guardian_name, guardian_phone = :guardian_phone, guardian_relation = :guardian_relation WHERE id = :id`
	return namedUpdate(ctx, r.db, query, student, "student")
}

// Delete removes a student, reporting whether it existed.
func (r *StudentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.deleter.Delete(ctx, tableStudents, id)
}
