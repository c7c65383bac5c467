package models

import "time"

// Attendance is a single daily attendance mark for a student.
type Attendance struct {
	ID        int64            `db:"id" json:"id"`
	StudentID int64            `db:"student_id" json:"studentId"`
	Date      *time.Time       `db:"date" json:"date,omitempty"`
	Status    AttendanceStatus `db:"status" json:"status"`
	Remarks   string           `db:"remarks" json:"remarks"`
	CreatedAt time.Time        `db:"created_at" json:"createdAt"`
}

// AttendanceFilter defines query filters.
type AttendanceFilter struct {
	StudentID *int64
	Status    AttendanceStatus
	DateFrom  *time.Time
	DateTo    *time.Time
	Page      int
	PageSize  int
	SortOrder string
}
