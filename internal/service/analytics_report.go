package service

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/noah-isme/school-records-api/internal/dto"
	"github.com/noah-isme/school-records-api/internal/models"
)

const (
	topN                  = 5
	minDailyTrendPoints   = 7
	minMonthlyTrendPoints = 6
	maxMonthlyTrendPoints = 12
)

// reportScope is a snapshot narrowed to one section and one time window.
type reportScope struct {
	filter    models.AnalyticsFilter
	cutoff    time.Time
	windowed  bool
	sections  []models.Section
	students  []models.Student
	byID      map[int64]models.Student
	employees []models.Employee
	attend    []models.Attendance
	payments  []models.Payment
	exams     []models.Exam
	results   []models.Result
}

// BuildAnalyticsReport computes the analytics aggregate for filter over snap.
// Undated records are dropped whenever the period is not "all"; results take their exam's date.
func BuildAnalyticsReport(snap *models.Snapshot, filter models.AnalyticsFilter, now time.Time) *dto.AnalyticsResponse {
	scope := newReportScope(snap, filter, now)

	report := &dto.AnalyticsResponse{
		Period:      string(scope.filter.Period),
		Section:     sectionLabel(filter.Section),
		Category:    string(scope.filter.Category),
		GeneratedAt: now.UTC(),
	}

	category := scope.filter.Category
	if category.Includes(models.CategoryDemographics) {
		report.Demographics = scope.demographics()
	}
	if category.Includes(models.CategoryAttendance) {
		report.Attendance = scope.attendance()
	}
	if category.Includes(models.CategoryAcademic) {
		report.Academic = scope.academic()
	}
	if category.Includes(models.CategoryFinancial) {
		report.Financial = scope.financial()
	}
	if category.Includes(models.CategoryTeachers) {
		report.TeacherPerformance = scope.teachers()
	}
	return report
}

func newReportScope(snap *models.Snapshot, filter models.AnalyticsFilter, now time.Time) *reportScope {
	if filter.Period == "" {
		filter.Period = models.PeriodAll
	}
	if filter.Category == "" {
		filter.Category = models.CategoryAll
	}
	cutoff, windowed := filter.Period.Cutoff(now)
	scope := &reportScope{
		filter:    filter,
		cutoff:    cutoff,
		windowed:  windowed,
		sections:  models.Sections,
		byID:      make(map[int64]models.Student),
		employees: snap.Employees,
	}
	if filter.Section != "" {
		scope.sections = []models.Section{filter.Section}
	}

	for _, student := range snap.Students {
		if filter.Section != "" && student.Section != filter.Section {
			continue
		}
		scope.students = append(scope.students, student)
		scope.byID[student.ID] = student
	}

	for _, record := range snap.Attendance {
		if scope.hasStudent(record.StudentID) && scope.inWindow(record.Date) {
			scope.attend = append(scope.attend, record)
		}
	}
	for _, payment := range snap.Payments {
		if scope.hasStudent(payment.StudentID) && scope.inWindow(payment.Date) {
			scope.payments = append(scope.payments, payment)
		}
	}

	examsByID := make(map[int64]models.Exam, len(snap.Exams))
	for _, exam := range snap.Exams {
		examsByID[exam.ID] = exam
		if filter.Section != "" && exam.Section != filter.Section {
			continue
		}
		if scope.inWindow(exam.Date) {
			scope.exams = append(scope.exams, exam)
		}
	}
	// Results of a deleted exam are dropped even when the period is unbounded.
	for _, result := range snap.Results {
		exam, ok := examsByID[result.ExamID]
		if !ok || !scope.hasStudent(result.StudentID) {
			continue
		}
		if scope.inWindow(exam.Date) {
			scope.results = append(scope.results, result)
		}
	}

	return scope
}

func (s *reportScope) hasStudent(id int64) bool {
	_, ok := s.byID[id]
	return ok
}

func (s *reportScope) inWindow(date *time.Time) bool {
	if !s.windowed {
		return true
	}
	return date != nil && !date.Before(s.cutoff)
}

func (s *reportScope) studentName(id int64) (string, string) {
	student, ok := s.byID[id]
	if !ok {
		return "", ""
	}
	return student.FullName(), string(student.Section)
}

func (s *reportScope) demographics() *dto.DemographicsSection {
	out := &dto.DemographicsSection{
		TotalStudents:    len(s.students),
		TotalEmployees:   len(s.employees),
		BySection:        zeroCounts(sectionKeys(s.sections)),
		ByGender:         zeroCounts([]string{string(models.GenderMale), string(models.GenderFemale)}),
		ByClass:          map[string]int{},
		EmployeesByRole:  map[string]int{},
		EmployeesByShift: map[string]int{},
	}
	for _, student := range s.students {
		out.BySection[string(student.Section)]++
		out.ByGender[string(student.Gender)]++
		out.ByClass[student.ClassName]++
		if !s.windowed || !student.CreatedAt.Before(s.cutoff) {
			out.NewAdmissions++
		}
	}
	for _, employee := range s.employees {
		out.EmployeesByRole[string(employee.Role)]++
		out.EmployeesByShift[string(employee.Shift)]++
	}
	return out
}

func (s *reportScope) attendance() *dto.AttendanceSection {
	out := &dto.AttendanceSection{
		BySection:    make(map[string]float64, len(s.sections)),
		TopAbsentees: []dto.StudentAbsences{},
	}

	type tally struct{ attended, total int }
	perSection := make(map[models.Section]*tally, len(s.sections))
	for _, section := range s.sections {
		perSection[section] = &tally{}
	}
	perDay := map[string]*tally{}
	absences := map[int64]int{}

	for _, record := range s.attend {
		out.TotalRecords++
		attended := 0
		switch record.Status {
		case models.AttendanceStatusPresent:
			out.Present++
			attended = 1
		case models.AttendanceStatusLate:
			out.Late++
			attended = 1
		case models.AttendanceStatusAbsent:
			out.Absent++
			absences[record.StudentID]++
		}

		if t, ok := perSection[s.byID[record.StudentID].Section]; ok {
			t.total++
			t.attended += attended
		}
		if record.Date != nil {
			key := record.Date.Format(dateLayout)
			if perDay[key] == nil {
				perDay[key] = &tally{}
			}
			perDay[key].total++
			perDay[key].attended += attended
		}
	}

	out.AttendanceRate = percent(float64(out.Present+out.Late), float64(out.TotalRecords))
	for section, t := range perSection {
		out.BySection[string(section)] = percent(float64(t.attended), float64(t.total))
	}

	days := sortedKeys(perDay)
	if len(days) > minDailyTrendPoints {
		days = days[len(days)-minDailyTrendPoints:]
	}
	points := make([]dto.TrendPoint, 0, len(days))
	for _, day := range days {
		points = append(points, dto.TrendPoint{Label: day, Value: percent(float64(perDay[day].attended), float64(perDay[day].total))})
	}
	out.DailyTrend = dto.TrendSeries{Points: points, InsufficientData: len(points) < minDailyTrendPoints}

	for id, count := range absences {
		name, section := s.studentName(id)
		out.TopAbsentees = append(out.TopAbsentees, dto.StudentAbsences{StudentID: id, Name: name, Section: section, Absences: count})
	}
	sort.Slice(out.TopAbsentees, func(i, j int) bool {
		a, b := out.TopAbsentees[i], out.TopAbsentees[j]
		if a.Absences != b.Absences {
			return a.Absences > b.Absences
		}
		return a.StudentID < b.StudentID
	})
	out.TopAbsentees = truncate(out.TopAbsentees)
	return out
}

func (s *reportScope) academic() *dto.AcademicSection {
	out := &dto.AcademicSection{
		TotalExams:   len(s.exams),
		TotalResults: len(s.results),
		AverageScores: dto.AverageScores{
			BySection: make(map[string]float64, len(s.sections)),
			BySubject: map[string]float64{},
		},
		GradeDistribution: zeroCounts(models.Grades),
		TopPerformers:     []dto.StudentAverage{},
	}

	var all mean
	passed := 0
	bySection := make(map[models.Section]*mean, len(s.sections))
	for _, section := range s.sections {
		bySection[section] = &mean{}
	}
	bySubject := map[string]*mean{}
	byStudent := map[int64]*mean{}

	for _, result := range s.results {
		pct := result.Percentage()
		all.add(pct)
		if pct >= models.PassPercentage {
			passed++
		}
		out.GradeDistribution[models.GradeFor(pct)]++

		if m, ok := bySection[s.byID[result.StudentID].Section]; ok {
			m.add(pct)
		}
		subject := subjectKey(result.Subject)
		if bySubject[subject] == nil {
			bySubject[subject] = &mean{}
		}
		bySubject[subject].add(pct)
		if byStudent[result.StudentID] == nil {
			byStudent[result.StudentID] = &mean{}
		}
		byStudent[result.StudentID].add(pct)
	}

	out.AverageScore = round2(all.value())
	out.PassRate = percent(float64(passed), float64(all.count))
	for section, m := range bySection {
		out.AverageScores.BySection[string(section)] = round2(m.value())
	}
	for subject, m := range bySubject {
		out.AverageScores.BySubject[subject] = round2(m.value())
	}

	for id, m := range byStudent {
		name, section := s.studentName(id)
		out.TopPerformers = append(out.TopPerformers, dto.StudentAverage{StudentID: id, Name: name, Section: section, AverageScore: round2(m.value()), Results: m.count})
	}
	sort.Slice(out.TopPerformers, func(i, j int) bool {
		a, b := out.TopPerformers[i], out.TopPerformers[j]
		if a.AverageScore != b.AverageScore {
			return a.AverageScore > b.AverageScore
		}
		return a.StudentID < b.StudentID
	})
	out.TopPerformers = truncate(out.TopPerformers)
	return out
}

func (s *reportScope) financial() *dto.FinancialSection {
	out := &dto.FinancialSection{
		FeeCollection:   make(map[string]float64, len(models.PaymentStatuses)),
		PendingPayments: []dto.PendingPayment{},
	}
	for _, status := range models.PaymentStatuses {
		out.FeeCollection[string(status)] = 0
	}

	perMonth := map[string]float64{}
	type pending struct {
		amount float64
		count  int
	}
	perStudent := map[int64]*pending{}

	for _, payment := range s.payments {
		collected := payment.Collected()
		owed := payment.Outstanding()
		out.TotalBilled += payment.Amount
		out.TotalCollected += collected
		out.Outstanding += owed
		out.FeeCollection[string(payment.Status)] += payment.Amount

		if payment.Date != nil {
			perMonth[payment.Date.Format("2006-01")] += collected
		}
		if owed > 0 {
			if perStudent[payment.StudentID] == nil {
				perStudent[payment.StudentID] = &pending{}
			}
			perStudent[payment.StudentID].amount += owed
			perStudent[payment.StudentID].count++
		}
	}

	out.CollectionRate = percent(out.TotalCollected, out.TotalBilled)
	out.TotalBilled = round2(out.TotalBilled)
	out.TotalCollected = round2(out.TotalCollected)
	out.Outstanding = round2(out.Outstanding)
	for status, amount := range out.FeeCollection {
		out.FeeCollection[status] = round2(amount)
	}

	months := sortedKeys(perMonth)
	if len(months) > maxMonthlyTrendPoints {
		months = months[len(months)-maxMonthlyTrendPoints:]
	}
	points := make([]dto.TrendPoint, 0, len(months))
	for _, month := range months {
		points = append(points, dto.TrendPoint{Label: month, Value: round2(perMonth[month])})
	}
	out.MonthlyTrend = dto.TrendSeries{Points: points, InsufficientData: len(points) < minMonthlyTrendPoints}

	for id, p := range perStudent {
		name, section := s.studentName(id)
		out.PendingPayments = append(out.PendingPayments, dto.PendingPayment{StudentID: id, Name: name, Section: section, PendingAmount: round2(p.amount), Payments: p.count})
	}
	sort.Slice(out.PendingPayments, func(i, j int) bool {
		a, b := out.PendingPayments[i], out.PendingPayments[j]
		if a.PendingAmount != b.PendingAmount {
			return a.PendingAmount > b.PendingAmount
		}
		return a.StudentID < b.StudentID
	})
	out.PendingPayments = truncate(out.PendingPayments)
	return out
}

func (s *reportScope) teachers() *dto.TeacherPerformanceSection {
	out := &dto.TeacherPerformanceSection{
		BySubject:   map[string]int{},
		ByShift:     map[string]int{},
		TopTeachers: []dto.TeacherAverage{},
	}

	bySubject := map[string]*mean{}
	for _, result := range s.results {
		key := subjectKey(result.Subject)
		if bySubject[key] == nil {
			bySubject[key] = &mean{}
		}
		bySubject[key].add(result.Percentage())
	}

	var salary mean
	for _, employee := range s.employees {
		if employee.Role != models.EmployeeRoleTeacher {
			continue
		}
		out.TotalTeachers++
		out.ByShift[string(employee.Shift)]++
		salary.add(employee.Salary)

		var m mean
		seen := map[string]bool{}
		for _, subject := range employee.Subjects {
			out.BySubject[subject]++
			key := subjectKey(subject)
			if seen[key] || bySubject[key] == nil {
				continue
			}
			seen[key] = true
			m.merge(*bySubject[key])
		}
		if m.count == 0 {
			continue
		}
		out.TopTeachers = append(out.TopTeachers, dto.TeacherAverage{
			TeacherID:    employee.ID,
			Name:         employee.FullName(),
			Subjects:     append([]string{}, employee.Subjects...),
			AverageScore: round2(m.value()),
			Results:      m.count,
		})
	}
	out.AverageSalary = round2(salary.value())

	sort.Slice(out.TopTeachers, func(i, j int) bool {
		a, b := out.TopTeachers[i], out.TopTeachers[j]
		if a.AverageScore != b.AverageScore {
			return a.AverageScore > b.AverageScore
		}
		return a.TeacherID < b.TeacherID
	})
	out.TopTeachers = truncate(out.TopTeachers)
	return out
}

// subjectKey folds subject names so "Math" and " math" share a bucket.
func subjectKey(subject string) string {
	return strings.ToLower(strings.TrimSpace(subject))
}

// mean accumulates a running sum and count.
type mean struct {
	sum   float64
	count int
}

func (m *mean) add(v float64) {
	m.sum += v
	m.count++
}

func (m *mean) merge(other mean) {
	m.sum += other.sum
	m.count += other.count
}

func (m mean) value() float64 {
	return ratio(m.sum, float64(m.count))
}

// ratio divides a by b, returning 0 when b is zero or the result is not finite.
func ratio(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	r := a / b
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return r
}

func percent(part, whole float64) float64 {
	return round2(ratio(part, whole) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func truncate[T any](items []T) []T {
	if len(items) > topN {
		return items[:topN]
	}
	return items
}

func zeroCounts(keys []string) map[string]int {
	out := make(map[string]int, len(keys))
	for _, key := range keys {
		out[key] = 0
	}
	return out
}

func sectionKeys(sections []models.Section) []string {
	keys := make([]string, 0, len(sections))
	for _, section := range sections {
		keys = append(keys, string(section))
	}
	return keys
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
