package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/dto"
	"github.com/noah-isme/school-records-api/internal/models"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
	"github.com/noah-isme/school-records-api/pkg/export"
)

type reportSource interface {
	Report(ctx context.Context, filter models.AnalyticsFilter) (*dto.AnalyticsResponse, bool, error)
}

type datasetRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

// ExportFile is a rendered attachment.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}

// ExportService renders analytics reports as downloadable metric tables.
type ExportService struct {
	reports reportSource
	csv     datasetRenderer
	pdf     datasetRenderer
	logger  *zap.Logger
}

// NewExportService constructs an ExportService. Nil renderers fall back to the package defaults.
func NewExportService(reports reportSource, csv, pdf datasetRenderer, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{reports: reports, csv: csv, pdf: pdf, logger: logger}
}

// Analytics renders the analytics report for filter in the requested format.
func (s *ExportService) Analytics(ctx context.Context, filter models.AnalyticsFilter, rawFormat string) (*ExportFile, error) {
	format, err := export.ParseFormat(strings.ToLower(rawFormat))
	if err != nil {
		return nil, appErrors.Invalid("invalid export format", appErrors.FieldError{Field: "format", Message: "must be one of: csv pdf"})
	}

	report, _, err := s.reports.Report(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := AnalyticsDataset(report)

	var payload []byte
	switch format {
	case export.FormatPDF:
		payload, err = s.pdf.Render(data)
	case export.FormatCSV:
		payload, err = s.csv.Render(data)
	}
	if err != nil {
		return nil, internalError(err, "failed to render export")
	}

	filename := fmt.Sprintf("analytics-%s-%s-%s.%s", report.Period, report.Section, report.GeneratedAt.Format("20060102-150405"), format)
	s.logger.Info("analytics exported", zap.String("format", string(format)), zap.Int("rows", len(data.Rows)))
	return &ExportFile{Filename: filename, ContentType: format.ContentType(), Payload: payload}, nil
}

// AnalyticsDataset flattens a report into section/metric/value rows.
func AnalyticsDataset(report *dto.AnalyticsResponse) export.Dataset {
	data := export.Dataset{
		Title:   fmt.Sprintf("School analytics (%s, %s)", report.Period, report.Section),
		Headers: []string{"section", "metric", "value"},
	}
	if d := report.Demographics; d != nil {
		data.Append("demographics", "totalStudents", itoa(d.TotalStudents))
		data.Append("demographics", "totalEmployees", itoa(d.TotalEmployees))
		data.Append("demographics", "newAdmissions", itoa(d.NewAdmissions))
		appendCounts(&data, "demographics", "bySection", d.BySection)
		appendCounts(&data, "demographics", "byGender", d.ByGender)
		appendCounts(&data, "demographics", "byClass", d.ByClass)
		appendCounts(&data, "demographics", "employeesByRole", d.EmployeesByRole)
		appendCounts(&data, "demographics", "employeesByShift", d.EmployeesByShift)
	}
	if a := report.Attendance; a != nil {
		data.Append("attendance", "totalRecords", itoa(a.TotalRecords))
		data.Append("attendance", "present", itoa(a.Present))
		data.Append("attendance", "absent", itoa(a.Absent))
		data.Append("attendance", "late", itoa(a.Late))
		data.Append("attendance", "attendanceRate", ftoa(a.AttendanceRate))
		appendAmounts(&data, "attendance", "bySection", a.BySection)
		appendTrend(&data, "attendance", "dailyTrend", a.DailyTrend)
		for _, s := range a.TopAbsentees {
			data.Append("attendance", rankedMetric("topAbsentees", s.StudentID, s.Name), itoa(s.Absences))
		}
	}
	if a := report.Academic; a != nil {
		data.Append("academic", "totalExams", itoa(a.TotalExams))
		data.Append("academic", "totalResults", itoa(a.TotalResults))
		data.Append("academic", "averageScore", ftoa(a.AverageScore))
		data.Append("academic", "passRate", ftoa(a.PassRate))
		appendAmounts(&data, "academic", "averageScores.bySection", a.AverageScores.BySection)
		appendAmounts(&data, "academic", "averageScores.bySubject", a.AverageScores.BySubject)
		appendCounts(&data, "academic", "gradeDistribution", a.GradeDistribution)
		for _, p := range a.TopPerformers {
			data.Append("academic", rankedMetric("topPerformers", p.StudentID, p.Name), ftoa(p.AverageScore))
		}
	}
	if f := report.Financial; f != nil {
		data.Append("financial", "totalBilled", ftoa(f.TotalBilled))
		data.Append("financial", "totalCollected", ftoa(f.TotalCollected))
		data.Append("financial", "outstanding", ftoa(f.Outstanding))
		data.Append("financial", "collectionRate", ftoa(f.CollectionRate))
		appendAmounts(&data, "financial", "feeCollection", f.FeeCollection)
		appendTrend(&data, "financial", "monthlyTrend", f.MonthlyTrend)
		for _, p := range f.PendingPayments {
			data.Append("financial", rankedMetric("pendingPayments", p.StudentID, p.Name), ftoa(p.PendingAmount))
		}
	}
	if t := report.TeacherPerformance; t != nil {
		data.Append("teacherPerformance", "totalTeachers", itoa(t.TotalTeachers))
		data.Append("teacherPerformance", "averageSalary", ftoa(t.AverageSalary))
		appendCounts(&data, "teacherPerformance", "bySubject", t.BySubject)
		appendCounts(&data, "teacherPerformance", "byShift", t.ByShift)
		for _, teacher := range t.TopTeachers {
			data.Append("teacherPerformance", rankedMetric("topTeachers", teacher.TeacherID, teacher.Name), ftoa(teacher.AverageScore))
		}
	}
	return data
}

// rankedMetric keys a top-N row by id so equal display names stay distinct.
func rankedMetric(metric string, id int64, name string) string {
	return fmt.Sprintf("%s.%d.%s", metric, id, name)
}

func appendCounts(data *export.Dataset, section, metric string, values map[string]int) {
	for _, key := range sortedKeys(values) {
		data.Append(section, metric+"."+key, itoa(values[key]))
	}
}

func appendAmounts(data *export.Dataset, section, metric string, values map[string]float64) {
	for _, key := range sortedKeys(values) {
		data.Append(section, metric+"."+key, ftoa(values[key]))
	}
}

func appendTrend(data *export.Dataset, section, metric string, series dto.TrendSeries) {
	for _, point := range series.Points {
		data.Append(section, metric+"."+point.Label, ftoa(point.Value))
	}
	data.Append(section, metric+".insufficientData", strconv.FormatBool(series.InsufficientData))
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
