package models

import "time"

// PassPercentage is the minimum percentage counted as a pass.
const PassPercentage = 50.0

// Result is the score a student obtained in one exam subject.
type Result struct {
	ID        int64     `db:"id" json:"id"`
	ExamID    int64     `db:"exam_id" json:"examId"`
	StudentID int64     `db:"student_id" json:"studentId"`
	Subject   string    `db:"subject" json:"subject"`
	Score     float64   `db:"score" json:"score"`
	Total     float64   `db:"total" json:"total"`
	Grade     string    `db:"grade" json:"grade"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Percentage returns the score relative to the total, 0 when total is not positive.
func (r Result) Percentage() float64 {
	if r.Total <= 0 {
		return 0
	}
	return r.Score / r.Total * 100
}

// GradeFor maps a percentage onto a letter grade.
func GradeFor(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 80:
		return "B"
	case percentage >= 70:
		return "C"
	case percentage >= 60:
		return "D"
	case percentage >= PassPercentage:
		return "E"
	default:
		return "F"
	}
}

// Grades lists letter grades from best to worst.
var Grades = []string{"A", "B", "C", "D", "E", "F"}

// ResultFilter scopes result listings.
type ResultFilter struct {
	ExamID    *int64
	StudentID *int64
	Subject   string
	Page      int
	PageSize  int
}
