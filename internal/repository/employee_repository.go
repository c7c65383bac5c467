package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/school-records-api/internal/models"
)

const employeeColumns = "id, first_name, last_name, email, phone, role, subjects, shift, salary, hire_date, created_at"

// EmployeeRepository manages persistence for employees.
type EmployeeRepository struct {
	db      *sqlx.DB
	deleter *Deleter
}

// NewEmployeeRepository constructs an EmployeeRepository.
func NewEmployeeRepository(db *sqlx.DB, deleter *Deleter) *EmployeeRepository {
	return &EmployeeRepository{db: db, deleter: deleter}
}

// List returns employees matching filters along with total count.
func (r *EmployeeRepository) List(ctx context.Context, filter models.EmployeeFilter) ([]models.Employee, int, error) {
	var cond conditions
	if filter.Role != "" {
		cond.add("role = $%d", filter.Role)
	}
	if filter.Shift != "" {
		cond.add("shift = $%d", filter.Shift)
	}
	if filter.Search != "" {
		cond.add("(LOWER(first_name) LIKE $%[1]d OR LOWER(last_name) LIKE $%[1]d OR LOWER(email) LIKE $%[1]d)", likePattern(filter.Search))
	}

	column := sortColumn(filter.SortBy, map[string]string{
		"first_name": "first_name",
		"last_name":  "last_name",
		"salary":     "salary",
		"created_at": "created_at",
	}, "created_at")
	orderBy := fmt.Sprintf("%s %s, id ASC", column, sortOrder(filter.SortOrder))

	var employees []models.Employee
	total, err := listAndCount(ctx, r.db, &employees, employeeColumns, tableEmployees, cond, orderBy, filter.Page, filter.PageSize, "employees")
	if err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

// FindByID fetches an employee by ID.
func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*models.Employee, error) {
	query := "SELECT " + employeeColumns + " FROM employees WHERE id = $1"
	var employee models.Employee
	if err := r.db.GetContext(ctx, &employee, query, id); err != nil {
		return nil, err
	}
	return &employee, nil
}

// Create inserts a new employee and assigns its generated ID.
func (r *EmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	stampCreated(&employee.CreatedAt)
	if employee.Subjects == nil {
		employee.Subjects = []string{}
	}
	const query = `INSERT INTO employees (first_name, last_name, email, phone, role, subjects, shift, salary, hire_date, created_at)
		VALUES (:first_name, :last_name, :email, :phone, :role, :subjects, :shift, :salary, :hire_date, :created_at) RETURNING id`
	id, err := insertReturningID(ctx, r.db, query, employee)
	if err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	employee.ID = id
	return nil
}

// Update overwrites the mutable columns of an existing employee.
func (r *EmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	if employee.Subjects == nil {
		employee.Subjects = []string{}
	}
	const query = `UPDATE employees SET first_name = :first_name, last_name = :last_name, email = :email, phone = :phone, role = :role,
		subjects = :subjects, shift = :shift, salary = :salary, hire_date = :hire_date WHERE id = :id`
	return namedUpdate(ctx, r.db, query, employee, "employee")
}

// Delete removes an employee, reporting whether it existed.
func (r *EmployeeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.deleter.Delete(ctx, tableEmployees, id)
}
