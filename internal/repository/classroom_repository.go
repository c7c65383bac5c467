package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records-api/internal/models"
)

const classroomColumns = "id, name, section, capacity, teacher_id, created_at"

// ClassroomRepository manages persistence for classrooms.
type ClassroomRepository struct {
	db      *sqlx.DB
	deleter *Deleter
}

// NewClassroomRepository constructs a ClassroomRepository.
func NewClassroomRepository(db *sqlx.DB, deleter *Deleter) *ClassroomRepository {
	return &ClassroomRepository{db: db, deleter: deleter}
}

// List returns classrooms matching filters along with total count.
func (r *ClassroomRepository) List(ctx context.Context, filter models.ClassroomFilter) ([]models.Classroom, int, error) {
	var cond conditions
	if filter.Section != "" {
		cond.add("section = $%d", filter.Section)
	}
	if filter.TeacherID != nil {
		cond.add("teacher_id = $%d", *filter.TeacherID)
	}
	if filter.Search != "" {
		cond.add("LOWER(name) LIKE $%d", likePattern(filter.Search))
	}

	var classrooms []models.Classroom
	total, err := listAndCount(ctx, r.db, &classrooms, classroomColumns, tableClassrooms, cond, "name ASC, id ASC", filter.Page, filter.PageSize, "classrooms")
	if err != nil {
		return nil, 0, err
	}
	return classrooms, total, nil
}

// FindByID fetches a classroom by ID.
func (r *ClassroomRepository) FindByID(ctx context.Context, id int64) (*models.Classroom, error) {
	query := "SELECT " + classroomColumns + " FROM classrooms WHERE id = $1"
	var classroom models.Classroom
	if err := r.db.GetContext(ctx, &classroom, query, id); err != nil {
		return nil, err
	}
	return &classroom, nil
}

// Create inserts a new classroom and assigns its generated ID.
func (r *ClassroomRepository) Create(ctx context.Context, classroom *models.Classroom) error {
	stampCreated(&classroom.CreatedAt)
	const query = `INSERT INTO classrooms (name, section, capacity, teacher_id, created_at)
		VALUES (:name, :section, :capacity, :teacher_id, :created_at) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, classroom)
	if err != nil {
		return fmt.Errorf("create classroom: %w", err)
	}
	classroom.ID = id
	return nil
}

// Update overwrites the mutable columns of an existing classroom.
func (r *ClassroomRepository) Update(ctx context.Context, classroom *models.Classroom) error {
	const query = `UPDATE classrooms SET name = :name, section = :section, capacity = :capacity, teacher_id = :teacher_id WHERE id = :id`
	return namedUpdate(ctx, r.db, query, classroom, "classroom")
}

// Delete removes a classroom, reporting whether it existed.
func (r *ClassroomRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.deleter.Delete(ctx, tableClassrooms, id)
}
