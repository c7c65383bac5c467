package models

import (
	"time"

	"github.com/lib/pq"
)

// Exam is a sitting for a class covering one or more subjects.
type Exam struct {
	ID        int64          `db:"id" json:"id"`
	Name      string         `db:"name" json:"name"`
	Section   Section        `db:"section" json:"section"`
	ClassName string         `db:"class_name" json:"className"`
	Date      *time.Time     `db:"date" json:"date,omitempty"`
	Subjects  pq.StringArray `db:"subjects" json:"subjects"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
}

// ExamFilter scopes exam listings.
type ExamFilter struct {
	Search    string
	Section   Section
	ClassName string
	Page      int
	PageSize  int
}
