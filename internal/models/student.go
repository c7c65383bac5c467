package models

import "time"

// Student represents a learner admitted to the school.
type Student struct {
	ID               int64     `db:"id" json:"id"`
	FirstName        string    `db:"first_name" json:"firstName"`
	LastName         string    `db:"last_name" json:"lastName"`
	Gender           Gender    `db:"gender" json:"gender"`
	DateOfBirth      time.Time `db:"date_of_birth" json:"dateOfBirth"`
	Section          Section   `db:"section" json:"section"`
	ClassName        string    `db:"class_name" json:"className"`
	Email            string    `db:"email" json:"email"`
	Phone            string    `db:"phone" json:"phone"`
	Address          string    `db:"address" json:"address"`
	GuardianName     string    `db:"guardian_name" json:"guardianName"`
	GuardianPhone    string    `db:"guardian_phone" json:"guardianPhone"`
	GuardianRelation string    `db:"guardian_relation" json:"guardianRelation"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
}

// FullName joins the name parts for display.
func (s Student) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

// StudentFilter encapsulates allowed search parameters for listing students.
type StudentFilter struct {
	Search    string
	Section   Section
	ClassName string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
