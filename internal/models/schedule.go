package models

import "time"

// Schedule is a timetable slot for a class.
type Schedule struct {
	ID        int64     `db:"id" json:"id"`
	Section   Section   `db:"section" json:"section"`
	ClassName string    `db:"class_name" json:"className"`
	Day       Weekday   `db:"day" json:"day"`
	StartTime string    `db:"start_time" json:"startTime"`
	EndTime   string    `db:"end_time" json:"endTime"`
	Subject   string    `db:"subject" json:"subject"`
	TeacherID *int64    `db:"teacher_id" json:"teacherId,omitempty"`
	Classroom string    `db:"classroom" json:"classroom"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// ScheduleFilter scopes timetable listings.
type ScheduleFilter struct {
	Section   Section
	ClassName string
	Day       Weekday
	TeacherID *int64
	Page      int
	PageSize  int
}
