package models

import "time"

// Classroom is a physical room assigned to a section.
type Classroom struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Section   Section   `db:"section" json:"section"`
	Capacity  int       `db:"capacity" json:"capacity"`
	TeacherID *int64    `db:"teacher_id" json:"teacherId,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// ClassroomFilter scopes classroom listings.
type ClassroomFilter struct {
	Search    string
	Section   Section
	TeacherID *int64
	Page      int
	PageSize  int
}
