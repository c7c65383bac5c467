package dto

import "time"

// AnalyticsResponse is the aggregated school report returned by /api/analytics.
type AnalyticsResponse struct {
	Period             string                     `json:"period"`
	Section            string                     `json:"section"`
	Category           string                     `json:"category"`
	GeneratedAt        time.Time                  `json:"generatedAt"`
	Demographics       *DemographicsSection       `json:"demographics,omitempty"`
	Attendance         *AttendanceSection         `json:"attendance,omitempty"`
	Academic           *AcademicSection           `json:"academic,omitempty"`
	Financial          *FinancialSection          `json:"financial,omitempty"`
	TeacherPerformance *TeacherPerformanceSection `json:"teacherPerformance,omitempty"`
}

// DemographicsSection summarises the student body and staff.
type DemographicsSection struct {
	TotalStudents    int            `json:"totalStudents"`
	TotalEmployees   int            `json:"totalEmployees"`
	NewAdmissions    int            `json:"newAdmissions"`
	BySection        map[string]int `json:"bySection"`
	ByGender         map[string]int `json:"byGender"`
	ByClass          map[string]int `json:"byClass"`
	EmployeesByRole  map[string]int `json:"employeesByRole"`
	EmployeesByShift map[string]int `json:"employeesByShift"`
}

// AttendanceSection summarises attendance marks in the window.
type AttendanceSection struct {
	TotalRecords   int                `json:"totalRecords"`
	Present        int                `json:"present"`
	Absent         int                `json:"absent"`
	Late           int                `json:"late"`
	AttendanceRate float64            `json:"attendanceRate"`
	BySection      map[string]float64 `json:"bySection"`
	DailyTrend     TrendSeries        `json:"dailyTrend"`
	TopAbsentees   []StudentAbsences  `json:"topAbsentees"`
}

// StudentAbsences ranks a student by number of absences.
type StudentAbsences struct {
	StudentID int64  `json:"studentId"`
	Name      string `json:"name"`
	Section   string `json:"section"`
	Absences  int    `json:"absences"`
}

// AcademicSection summarises exam results in the window.
type AcademicSection struct {
	TotalExams        int              `json:"totalExams"`
	TotalResults      int              `json:"totalResults"`
	AverageScore      float64          `json:"averageScore"`
	PassRate          float64          `json:"passRate"`
	AverageScores     AverageScores    `json:"averageScores"`
	GradeDistribution map[string]int   `json:"gradeDistribution"`
	TopPerformers     []StudentAverage `json:"topPerformers"`
}

// AverageScores groups mean percentages by section and subject.
type AverageScores struct {
	BySection map[string]float64 `json:"bySection"`
	BySubject map[string]float64 `json:"bySubject"`
}

// StudentAverage ranks a student by mean percentage.
type StudentAverage struct {
	StudentID    int64   `json:"studentId"`
	Name         string  `json:"name"`
	Section      string  `json:"section"`
	AverageScore float64 `json:"averageScore"`
	Results      int     `json:"results"`
}

// FinancialSection summarises fee billing and collection in the window.
type FinancialSection struct {
	TotalBilled     float64            `json:"totalBilled"`
	TotalCollected  float64            `json:"totalCollected"`
	Outstanding     float64            `json:"outstanding"`
	CollectionRate  float64            `json:"collectionRate"`
	FeeCollection   map[string]float64 `json:"feeCollection"`
	MonthlyTrend    TrendSeries        `json:"monthlyTrend"`
	PendingPayments []PendingPayment   `json:"pendingPayments"`
}

// PendingPayment ranks a student by outstanding balance.
type PendingPayment struct {
	StudentID     int64   `json:"studentId"`
	Name          string  `json:"name"`
	Section       string  `json:"section"`
	PendingAmount float64 `json:"pendingAmount"`
	Payments      int     `json:"payments"`
}

// TeacherPerformanceSection summarises teaching staff and their subject results.
type TeacherPerformanceSection struct {
	TotalTeachers int              `json:"totalTeachers"`
	BySubject     map[string]int   `json:"bySubject"`
	ByShift       map[string]int   `json:"byShift"`
	AverageSalary float64          `json:"averageSalary"`
	TopTeachers   []TeacherAverage `json:"topTeachers"`
}

// TeacherAverage ranks a teacher by the mean percentage of results in their subjects.
type TeacherAverage struct {
	TeacherID    int64    `json:"teacherId"`
	Name         string   `json:"name"`
	Subjects     []string `json:"subjects"`
	AverageScore float64  `json:"averageScore"`
	Results      int      `json:"results"`
}

// TrendSeries is an ordered series with an explicit sparse-data flag.
type TrendSeries struct {
	Points           []TrendPoint `json:"points"`
	InsufficientData bool         `json:"insufficientData"`
}

// TrendPoint is a labelled value in a trend series.
type TrendPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}
