package models

import "time"

// AnalyticsPeriod is a relative time window applied to dated records.
type AnalyticsPeriod string

const (
	PeriodWeek    AnalyticsPeriod = "week"
	PeriodMonth   AnalyticsPeriod = "month"
	PeriodQuarter AnalyticsPeriod = "quarter"
	PeriodYear    AnalyticsPeriod = "year"
	PeriodAll     AnalyticsPeriod = "all"
)

const day = 24 * time.Hour

// ParsePeriod maps raw input onto a period, falling back to PeriodAll.
func ParsePeriod(raw string) AnalyticsPeriod {
	switch p := AnalyticsPeriod(raw); p {
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear, PeriodAll:
		return p
	default:
		return PeriodAll
	}
}

// Cutoff returns the earliest instant included by the period. ok is false for PeriodAll.
func (p AnalyticsPeriod) Cutoff(now time.Time) (cutoff time.Time, ok bool) {
	switch p {
	case PeriodWeek:
		return now.Add(-7 * day), true
	case PeriodMonth:
		return now.Add(-30 * day), true
	case PeriodQuarter:
		return now.Add(-90 * day), true
	case PeriodYear:
		return now.Add(-365 * day), true
	case PeriodAll:
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// AnalyticsCategory selects which report sections are computed.
type AnalyticsCategory string

const (
	CategoryAll          AnalyticsCategory = "all"
	CategoryDemographics AnalyticsCategory = "demographics"
	CategoryAttendance   AnalyticsCategory = "attendance"
	CategoryAcademic     AnalyticsCategory = "academic"
	CategoryFinancial    AnalyticsCategory = "financial"
	CategoryTeachers     AnalyticsCategory = "teachers"
)

// ParseCategory maps raw input onto a category, falling back to CategoryAll.
func ParseCategory(raw string) AnalyticsCategory {
	switch c := AnalyticsCategory(raw); c {
	case CategoryAll, CategoryDemographics, CategoryAttendance, CategoryAcademic, CategoryFinancial, CategoryTeachers:
		return c
	default:
		return CategoryAll
	}
}

// Includes reports whether the category selects the given section.
func (c AnalyticsCategory) Includes(section AnalyticsCategory) bool {
	return c == CategoryAll || c == section
}

// ParseSectionFilter maps raw input onto a section. The empty section means "all".
func ParseSectionFilter(raw string) Section {
	s := Section(raw)
	if s.Valid() {
		return s
	}
	return ""
}

// AnalyticsFilter carries validated analytics query parameters.
type AnalyticsFilter struct {
	Period   AnalyticsPeriod
	Section  Section
	Category AnalyticsCategory
}

// Snapshot is a point-in-time copy of every collection the analytics report reads.
type Snapshot struct {
	Students   []Student
	Employees  []Employee
	Attendance []Attendance
	Payments   []Payment
	Exams      []Exam
	Results    []Result
	TakenAt    time.Time
}

// Stats holds row counts per collection.
type Stats struct {
	Students   int `db:"students" json:"students"`
	Employees  int `db:"employees" json:"employees"`
	Classrooms int `db:"classrooms" json:"classrooms"`
	Attendance int `db:"attendance" json:"attendance"`
	Payments   int `db:"payments" json:"payments"`
	Exams      int `db:"exams" json:"exams"`
	Results    int `db:"results" json:"results"`
	Schedules  int `db:"schedules" json:"schedules"`
}

// AnalyticsSystemMetrics represents system level analytics captured from instrumentation.
type AnalyticsSystemMetrics struct {
	CacheHitRatio            float64   `json:"cache_hit_ratio"`
	CacheHits                uint64    `json:"cache_hits"`
	CacheMisses              uint64    `json:"cache_misses"`
	RequestsTotal            uint64    `json:"requests_total"`
	AverageRequestDurationMs float64   `json:"average_request_duration_ms"`
	DBQueryCount             uint64    `json:"db_query_count"`
	AverageDBQueryDurationMs float64   `json:"average_db_query_duration_ms"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generated_at"`
}
