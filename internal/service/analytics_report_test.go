package service

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-records-api/internal/dto"
	"github.com/noah-isme/school-records-api/internal/models"
)

var reportNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func dateOf(raw string) *time.Time {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		panic(err)
	}
	return &t
}

func amount(v float64) *float64 { return &v }

func sampleSnapshot() *models.Snapshot {
	return &models.Snapshot{
		Students: []models.Student{
			{ID: 1, FirstName: "Ana", LastName: "Putri", Gender: models.GenderFemale, Section: models.SectionPrimary, ClassName: "P1", CreatedAt: *dateOf("2024-06-12")},
			{ID: 2, FirstName: "Budi", LastName: "Santoso", Gender: models.GenderMale, Section: models.SectionSecondary, ClassName: "S1", CreatedAt: *dateOf("2024-01-10")},
			{ID: 3, FirstName: "Citra", LastName: "Dewi", Gender: models.GenderFemale, Section: models.SectionHighschool, ClassName: "H1", CreatedAt: *dateOf("2023-09-01")},
		},
		Employees: []models.Employee{
			{ID: 10, FirstName: "Rina", Role: models.EmployeeRoleTeacher, Subjects: []string{"Math"}, Shift: models.ShiftMorning, Salary: 4000},
			{ID: 11, FirstName: "Joko", Role: models.EmployeeRoleTeacher, Subjects: []string{"Science"}, Shift: models.ShiftAfternoon, Salary: 5000},
			{ID: 12, FirstName: "Agus", Role: models.EmployeeRoleDriver, Shift: models.ShiftMorning, Salary: 2000},
		},
		Attendance: []models.Attendance{
			{ID: 1, StudentID: 1, Date: dateOf("2024-06-14"), Status: models.AttendanceStatusPresent},
			{ID: 2, StudentID: 1, Date: dateOf("2024-06-13"), Status: models.AttendanceStatusAbsent},
			{ID: 3, StudentID: 2, Date: dateOf("2024-06-14"), Status: models.AttendanceStatusLate},
			{ID: 4, StudentID: 3, Status: models.AttendanceStatusAbsent},
			{ID: 5, StudentID: 2, Date: dateOf("2024-03-01"), Status: models.AttendanceStatusAbsent},
		},
		Payments: []models.Payment{
			{ID: 1, StudentID: 1, Amount: 1000, Date: dateOf("2024-06-10"), Status: models.PaymentStatusPaid},
			{ID: 2, StudentID: 2, Amount: 800, Date: dateOf("2024-05-20"), Status: models.PaymentStatusPartial, PaidAmount: amount(300)},
			{ID: 3, StudentID: 3, Amount: 600, Status: models.PaymentStatusUnpaid},
			{ID: 4, StudentID: 2, Amount: 400, Date: dateOf("2024-01-05"), Status: models.PaymentStatusOverdue},
		},
		Exams: []models.Exam{
			{ID: 1, Name: "Midterm", Section: models.SectionPrimary, Date: dateOf("2024-06-10"), Subjects: []string{"Math"}},
			{ID: 2, Name: "Midterm", Section: models.SectionSecondary, Date: dateOf("2024-04-01"), Subjects: []string{"Math", "Science"}},
			{ID: 3, Name: "Final", Section: models.SectionHighschool},
		},
		Results: []models.Result{
			{ID: 1, ExamID: 1, StudentID: 1, Subject: "Math", Score: 90, Total: 100},
			{ID: 2, ExamID: 2, StudentID: 2, Subject: "Math", Score: 40, Total: 100},
			{ID: 3, ExamID: 2, StudentID: 2, Subject: "Science", Score: 70, Total: 100},
			{ID: 4, ExamID: 3, StudentID: 3, Subject: "math", Score: 55, Total: 100},
		},
	}
}

func allFilter() models.AnalyticsFilter {
	return models.AnalyticsFilter{Period: models.PeriodAll, Category: models.CategoryAll}
}

func TestBuildAnalyticsReportAllPeriod(t *testing.T) {
	report := BuildAnalyticsReport(sampleSnapshot(), allFilter(), reportNow)

	assert.Equal(t, "all", report.Period)
	assert.Equal(t, "all", report.Section)

	demo := report.Demographics
	require.NotNil(t, demo)
	assert.Equal(t, 3, demo.TotalStudents)
	assert.Equal(t, 3, demo.TotalEmployees)
	assert.Equal(t, 3, demo.NewAdmissions)
	assert.Equal(t, map[string]int{"primary": 1, "secondary": 1, "highschool": 1}, demo.BySection)
	assert.Equal(t, map[string]int{"male": 1, "female": 2}, demo.ByGender)
	assert.Equal(t, map[string]int{"teacher": 2, "driver": 1}, demo.EmployeesByRole)

	att := report.Attendance
	require.NotNil(t, att)
	assert.Equal(t, 5, att.TotalRecords)
	assert.Equal(t, 1, att.Present)
	assert.Equal(t, 3, att.Absent)
	assert.Equal(t, 1, att.Late)
	assert.Equal(t, 40.0, att.AttendanceRate)
	assert.Equal(t, map[string]float64{"primary": 50, "secondary": 50, "highschool": 0}, att.BySection)
	assert.Equal(t, []dto.TrendPoint{
		{Label: "2024-03-01", Value: 0},
		{Label: "2024-06-13", Value: 0},
		{Label: "2024-06-14", Value: 100},
	}, att.DailyTrend.Points)
	assert.True(t, att.DailyTrend.InsufficientData)
	require.Len(t, att.TopAbsentees, 3)
	assert.Equal(t, int64(1), att.TopAbsentees[0].StudentID)
	assert.Equal(t, "Ana Putri", att.TopAbsentees[0].Name)

	acad := report.Academic
	require.NotNil(t, acad)
	assert.Equal(t, 3, acad.TotalExams)
	assert.Equal(t, 4, acad.TotalResults)
	assert.Equal(t, 63.75, acad.AverageScore)
	assert.Equal(t, 75.0, acad.PassRate)
	assert.Equal(t, map[string]float64{"primary": 90, "secondary": 55, "highschool": 55}, acad.AverageScores.BySection)
	assert.Equal(t, map[string]float64{"math": 61.67, "science": 70}, acad.AverageScores.BySubject)
	assert.Equal(t, map[string]int{"A": 1, "B": 0, "C": 1, "D": 0, "E": 1, "F": 1}, acad.GradeDistribution)
	require.Len(t, acad.TopPerformers, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{acad.TopPerformers[0].StudentID, acad.TopPerformers[1].StudentID, acad.TopPerformers[2].StudentID})

	fin := report.Financial
	require.NotNil(t, fin)
	assert.Equal(t, 2800.0, fin.TotalBilled)
	assert.Equal(t, 1300.0, fin.TotalCollected)
	assert.Equal(t, 1500.0, fin.Outstanding)
	assert.Equal(t, 46.43, fin.CollectionRate)
	assert.Equal(t, map[string]float64{"paid": 1000, "partial": 800, "unpaid": 600, "overdue": 400, "refunded": 0}, fin.FeeCollection)
	assert.Len(t, fin.MonthlyTrend.Points, 3)
	assert.True(t, fin.MonthlyTrend.InsufficientData)
	require.Len(t, fin.PendingPayments, 2)
	assert.Equal(t, int64(2), fin.PendingPayments[0].StudentID)
	assert.Equal(t, 900.0, fin.PendingPayments[0].PendingAmount)
	assert.Equal(t, 2, fin.PendingPayments[0].Payments)

	teachers := report.TeacherPerformance
	require.NotNil(t, teachers)
	assert.Equal(t, 2, teachers.TotalTeachers)
	assert.Equal(t, 4500.0, teachers.AverageSalary)
	assert.Equal(t, map[string]int{"Math": 1, "Science": 1}, teachers.BySubject)
	require.Len(t, teachers.TopTeachers, 2)
	assert.Equal(t, int64(11), teachers.TopTeachers[0].TeacherID)
	assert.Equal(t, 70.0, teachers.TopTeachers[0].AverageScore)
	assert.Equal(t, int64(10), teachers.TopTeachers[1].TeacherID)
	assert.Equal(t, 61.67, teachers.TopTeachers[1].AverageScore)
	assert.Equal(t, 3, teachers.TopTeachers[1].Results)
}

func TestBuildAnalyticsReportWeekExcludesUndated(t *testing.T) {
	filter := allFilter()
	filter.Period = models.PeriodWeek
	report := BuildAnalyticsReport(sampleSnapshot(), filter, reportNow)

	assert.Equal(t, 1, report.Demographics.NewAdmissions)
	assert.Equal(t, 3, report.Attendance.TotalRecords)
	assert.Equal(t, 66.67, report.Attendance.AttendanceRate)
	assert.Equal(t, 1, report.Academic.TotalExams)
	assert.Equal(t, 1, report.Academic.TotalResults)
	assert.Equal(t, 1000.0, report.Financial.TotalBilled)
	assert.Equal(t, 0.0, report.Financial.FeeCollection["unpaid"])
	assert.Empty(t, report.Financial.PendingPayments)
}

func TestBuildAnalyticsReportPeriodsNeverAddRecords(t *testing.T) {
	snap := sampleSnapshot()
	all := BuildAnalyticsReport(snap, allFilter(), reportNow)

	for _, period := range []models.AnalyticsPeriod{models.PeriodWeek, models.PeriodMonth, models.PeriodQuarter, models.PeriodYear} {
		for _, section := range append([]models.Section{""}, models.Sections...) {
			filter := models.AnalyticsFilter{Period: period, Section: section, Category: models.CategoryAll}
			report := BuildAnalyticsReport(snap, filter, reportNow)

			assert.LessOrEqual(t, report.Demographics.TotalStudents, all.Demographics.TotalStudents, period)
			assert.LessOrEqual(t, report.Demographics.NewAdmissions, all.Demographics.NewAdmissions, period)
			assert.LessOrEqual(t, report.Attendance.TotalRecords, all.Attendance.TotalRecords, period)
			assert.LessOrEqual(t, report.Academic.TotalExams, all.Academic.TotalExams, period)
			assert.LessOrEqual(t, report.Academic.TotalResults, all.Academic.TotalResults, period)
			assert.LessOrEqual(t, report.Financial.TotalBilled, all.Financial.TotalBilled, period)
			for status, value := range report.Financial.FeeCollection {
				assert.LessOrEqual(t, value, all.Financial.FeeCollection[status], period)
			}
		}
	}
}

func TestBuildAnalyticsReportSectionFilterIsolatesStudents(t *testing.T) {
	filter := allFilter()
	filter.Section = models.SectionSecondary
	report := BuildAnalyticsReport(sampleSnapshot(), filter, reportNow)

	assert.Equal(t, "secondary", report.Section)
	assert.Equal(t, map[string]int{"secondary": 1}, report.Demographics.BySection)
	assert.Equal(t, map[string]float64{"secondary": 55}, report.Academic.AverageScores.BySection)
	assert.Equal(t, 2, report.Academic.TotalResults)
	assert.Equal(t, 1, report.Academic.TotalExams)
	assert.Equal(t, 2, report.Attendance.TotalRecords)
	for _, performer := range report.Academic.TopPerformers {
		assert.Equal(t, "secondary", performer.Section)
	}
	for _, pending := range report.Financial.PendingPayments {
		assert.Equal(t, "secondary", pending.Section)
	}
	require.Len(t, report.TeacherPerformance.TopTeachers, 2)
	assert.Equal(t, 40.0, report.TeacherPerformance.TopTeachers[1].AverageScore)
}

func TestBuildAnalyticsReportSkipsDanglingReferences(t *testing.T) {
	withOrphans := func() *models.Snapshot {
		snap := sampleSnapshot()
		snap.Attendance = append(snap.Attendance,
			models.Attendance{ID: 90, StudentID: 99, Date: dateOf("2024-06-14"), Status: models.AttendanceStatusAbsent},
		)
		snap.Payments = append(snap.Payments,
			models.Payment{ID: 90, StudentID: 99, Amount: 5000, Date: dateOf("2024-06-01"), Status: models.PaymentStatusUnpaid},
		)
		snap.Results = append(snap.Results,
			models.Result{ID: 90, ExamID: 99, StudentID: 1, Subject: "Math", Score: 10, Total: 100},
			models.Result{ID: 91, ExamID: 1, StudentID: 99, Subject: "Math", Score: 0, Total: 100},
		)
		return snap
	}

	cases := []struct {
		name   string
		period models.AnalyticsPeriod
	}{
		{name: "all", period: models.PeriodAll},
		{name: "year", period: models.PeriodYear},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			filter := models.AnalyticsFilter{Period: tc.period, Category: models.CategoryAll}
			want := BuildAnalyticsReport(sampleSnapshot(), filter, reportNow)
			got := BuildAnalyticsReport(withOrphans(), filter, reportNow)

			assert.Equal(t, want.Attendance.TotalRecords, got.Attendance.TotalRecords)
			assert.Equal(t, want.Attendance.Absent, got.Attendance.Absent)
			assert.Equal(t, want.Attendance.TopAbsentees, got.Attendance.TopAbsentees)
			assert.Equal(t, want.Financial.TotalBilled, got.Financial.TotalBilled)
			assert.Equal(t, want.Financial.Outstanding, got.Financial.Outstanding)
			assert.Equal(t, want.Financial.PendingPayments, got.Financial.PendingPayments)
			assert.Equal(t, want.Academic.TotalResults, got.Academic.TotalResults)
			assert.Equal(t, want.Academic.AverageScore, got.Academic.AverageScore)
			assert.Equal(t, want.Academic.PassRate, got.Academic.PassRate)
			assert.Equal(t, want.Academic.GradeDistribution, got.Academic.GradeDistribution)
			assert.Equal(t, want.Academic.TopPerformers, got.Academic.TopPerformers)
			assert.Equal(t, want.TeacherPerformance.TopTeachers, got.TeacherPerformance.TopTeachers)
		})
	}

	snap := &models.Snapshot{
		Students: []models.Student{{ID: 1, Section: models.SectionPrimary}},
		Exams:    []models.Exam{{ID: 1, Section: models.SectionPrimary, Date: dateOf("2024-06-10")}},
		Results: []models.Result{
			{ExamID: 1, StudentID: 1, Subject: "Math", Score: 90, Total: 100},
			{ExamID: 99, StudentID: 1, Subject: "Math", Score: 10, Total: 100},
		},
	}
	acad := BuildAnalyticsReport(snap, allFilter(), reportNow).Academic
	assert.Equal(t, 1, acad.TotalResults)
	assert.Equal(t, 90.0, acad.AverageScore)
}

func TestBuildAnalyticsReportEmptySnapshotHasNoNaN(t *testing.T) {
	report := BuildAnalyticsReport(&models.Snapshot{}, allFilter(), reportNow)

	values := []float64{
		report.Attendance.AttendanceRate,
		report.Academic.AverageScore,
		report.Academic.PassRate,
		report.Financial.CollectionRate,
		report.TeacherPerformance.AverageSalary,
	}
	for _, v := range report.Attendance.BySection {
		values = append(values, v)
	}
	for _, v := range report.Academic.AverageScores.BySection {
		values = append(values, v)
	}
	for _, v := range values {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
		assert.Zero(t, v)
	}
	assert.Len(t, report.Financial.FeeCollection, len(models.PaymentStatuses))
	assert.Empty(t, report.Attendance.DailyTrend.Points)
	assert.True(t, report.Attendance.DailyTrend.InsufficientData)
	assert.True(t, report.Financial.MonthlyTrend.InsufficientData)
	assert.NotNil(t, report.Academic.TopPerformers)
}

func TestBuildAnalyticsReportTopListsSortedAndTruncated(t *testing.T) {
	snap := &models.Snapshot{Exams: []models.Exam{{ID: 1, Section: models.SectionPrimary}}}
	for i := int64(1); i <= 8; i++ {
		snap.Students = append(snap.Students, models.Student{ID: i, FirstName: "S", Section: models.SectionPrimary})
		for j := int64(0); j < i%4; j++ {
			snap.Attendance = append(snap.Attendance, models.Attendance{StudentID: i, Status: models.AttendanceStatusAbsent})
		}
		snap.Payments = append(snap.Payments, models.Payment{StudentID: i, Amount: float64(i * 100), Status: models.PaymentStatusUnpaid})
		snap.Results = append(snap.Results, models.Result{ExamID: 1, StudentID: i, Subject: "Math", Score: float64(i * 10), Total: 100})
	}
	report := BuildAnalyticsReport(snap, allFilter(), reportNow)

	absentees := report.Attendance.TopAbsentees
	require.Len(t, absentees, topN)
	for i := 1; i < len(absentees); i++ {
		assert.GreaterOrEqual(t, absentees[i-1].Absences, absentees[i].Absences)
	}
	assert.Equal(t, []int64{3, 7, 2, 6, 1}, []int64{absentees[0].StudentID, absentees[1].StudentID, absentees[2].StudentID, absentees[3].StudentID, absentees[4].StudentID})

	performers := report.Academic.TopPerformers
	require.Len(t, performers, topN)
	assert.Equal(t, int64(8), performers[0].StudentID)
	for i := 1; i < len(performers); i++ {
		assert.Greater(t, performers[i-1].AverageScore, performers[i].AverageScore)
	}

	pending := report.Financial.PendingPayments
	require.Len(t, pending, topN)
	assert.Equal(t, 800.0, pending[0].PendingAmount)
	assert.Equal(t, 400.0, pending[4].PendingAmount)
}

func TestBuildAnalyticsReportUnpaidFeeScenario(t *testing.T) {
	snap := &models.Snapshot{}
	for i := int64(1); i <= 10; i++ {
		snap.Students = append(snap.Students, models.Student{ID: i, FirstName: "Student", Section: models.SectionPrimary})
		status := models.PaymentStatusPaid
		if i%3 == 0 {
			status = models.PaymentStatusUnpaid
		}
		snap.Payments = append(snap.Payments, models.Payment{ID: i, StudentID: i, Amount: 500, Status: status, Date: dateOf("2024-06-01")})
	}

	report := BuildAnalyticsReport(snap, models.AnalyticsFilter{}, reportNow)

	assert.Equal(t, 1500.0, report.Financial.FeeCollection["unpaid"])
	assert.Equal(t, 3500.0, report.Financial.FeeCollection["paid"])
	require.Len(t, report.Financial.PendingPayments, 3)
	assert.Equal(t, int64(3), report.Financial.PendingPayments[0].StudentID)
	assert.Equal(t, int64(9), report.Financial.PendingPayments[2].StudentID)
}

func TestBuildAnalyticsReportCategorySelectsSections(t *testing.T) {
	filter := allFilter()
	filter.Category = models.CategoryFinancial
	report := BuildAnalyticsReport(sampleSnapshot(), filter, reportNow)

	assert.NotNil(t, report.Financial)
	assert.Nil(t, report.Demographics)
	assert.Nil(t, report.Attendance)
	assert.Nil(t, report.Academic)
	assert.Nil(t, report.TeacherPerformance)
}

func TestBuildAnalyticsReportDailyTrendKeepsLastSevenDays(t *testing.T) {
	snap := &models.Snapshot{Students: []models.Student{{ID: 1, Section: models.SectionPrimary}}}
	start := *dateOf("2024-06-01")
	for i := 0; i < 9; i++ {
		d := start.AddDate(0, 0, i)
		snap.Attendance = append(snap.Attendance, models.Attendance{StudentID: 1, Date: &d, Status: models.AttendanceStatusPresent})
	}

	trend := BuildAnalyticsReport(snap, allFilter(), reportNow).Attendance.DailyTrend

	require.Len(t, trend.Points, minDailyTrendPoints)
	assert.False(t, trend.InsufficientData)
	assert.Equal(t, "2024-06-03", trend.Points[0].Label)
	assert.Equal(t, "2024-06-09", trend.Points[6].Label)
}

func TestRatioGuardsZeroDivision(t *testing.T) {
	assert.Zero(t, ratio(10, 0))
	assert.Zero(t, ratio(0, 0))
	assert.Equal(t, 2.5, ratio(5, 2))
	assert.Zero(t, percent(3, 0))
}
