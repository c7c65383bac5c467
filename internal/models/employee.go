package models

import (
	"time"

	"github.com/lib/pq"
)

// Employee represents a member of staff.
type Employee struct {
	ID        int64          `db:"id" json:"id"`
	FirstName string         `db:"first_name" json:"firstName"`
	LastName  string         `db:"last_name" json:"lastName"`
	Email     string         `db:"email" json:"email"`
	Phone     string         `db:"phone" json:"phone"`
	Role      EmployeeRole   `db:"role" json:"role"`
	Subjects  pq.StringArray `db:"subjects" json:"subjects"`
	Shift     Shift          `db:"shift" json:"shift"`
	Salary    float64        `db:"salary" json:"salary"`
	HireDate  *time.Time     `db:"hire_date" json:"hireDate,omitempty"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
}

// FullName joins the name parts for display.
func (e Employee) FullName() string {
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// EmployeeFilter captures filtering options for listing employees.
type EmployeeFilter struct {
	Search    string
	Role      EmployeeRole
	Shift     Shift
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
