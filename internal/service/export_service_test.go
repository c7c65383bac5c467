package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/school-records-api/internal/dto"
	"github.com/noah-isme/school-records-api/internal/models"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
	"github.com/noah-isme/school-records-api/pkg/export"
)

type stubReports struct {
	report *dto.AnalyticsResponse
	err    error
	filter models.AnalyticsFilter
}

func (s *stubReports) Report(_ context.Context, filter models.AnalyticsFilter) (*dto.AnalyticsResponse, bool, error) {
	s.filter = filter
	return s.report, false, s.err
}

type recordingRenderer struct {
	data export.Dataset
}

func (r *recordingRenderer) Render(data export.Dataset) ([]byte, error) {
	r.data = data
	return []byte("rendered"), nil
}

func TestExportServiceAnalyticsCSV(t *testing.T) {
	report := BuildAnalyticsReport(sampleSnapshot(), models.AnalyticsFilter{Category: models.CategoryFinancial}, reportNow)
	svc := NewExportService(&stubReports{report: report}, nil, nil, nil)

	file, err := svc.Analytics(context.Background(), models.AnalyticsFilter{Category: models.CategoryFinancial}, "CSV")
	require.NoError(t, err)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
	assert.Equal(t, "analytics-all-all-20240615-120000.csv", file.Filename)

	body := string(file.Payload)
	assert.True(t, strings.HasPrefix(body, "section,metric,value\n"))
	assert.Contains(t, body, "financial,feeCollection.unpaid,600.00\n")
	assert.Contains(t, body, "financial,monthlyTrend.insufficientData,true\n")
	assert.NotContains(t, body, "demographics")
}

func TestExportServiceAnalyticsPDFUsesPDFRenderer(t *testing.T) {
	pdf := &recordingRenderer{}
	report := BuildAnalyticsReport(sampleSnapshot(), models.AnalyticsFilter{}, reportNow)
	svc := NewExportService(&stubReports{report: report}, &recordingRenderer{}, pdf, nil)

	file, err := svc.Analytics(context.Background(), models.AnalyticsFilter{}, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.Equal(t, []byte("rendered"), file.Payload)
	assert.Equal(t, []string{"section", "metric", "value"}, pdf.data.Headers)
	assert.Contains(t, pdf.data.Rows, []string{"demographics", "totalStudents", "3"})
	assert.Contains(t, pdf.data.Rows, []string{"teacherPerformance", "topTeachers.11.Joko", "70.00"})
}

func TestExportServiceKeysRankedRowsByID(t *testing.T) {
	pdf := &recordingRenderer{}
	report := &dto.AnalyticsResponse{Attendance: &dto.AttendanceSection{TopAbsentees: []dto.StudentAbsences{
		{StudentID: 4, Name: "Sari", Absences: 3},
		{StudentID: 7, Name: "Sari", Absences: 2},
	}}}
	svc := NewExportService(&stubReports{report: report}, &recordingRenderer{}, pdf, nil)

	_, err := svc.Analytics(context.Background(), models.AnalyticsFilter{}, "pdf")
	require.NoError(t, err)
	assert.Contains(t, pdf.data.Rows, []string{"attendance", "topAbsentees.4.Sari", "3"})
	assert.Contains(t, pdf.data.Rows, []string{"attendance", "topAbsentees.7.Sari", "2"})
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	reports := &stubReports{}
	svc := NewExportService(reports, nil, nil, nil)

	_, err := svc.Analytics(context.Background(), models.AnalyticsFilter{}, "xlsx")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, appErrors.FromError(err).Status)
}

func TestExportServicePropagatesReportError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewExportService(&stubReports{err: boom}, nil, nil, nil)

	_, err := svc.Analytics(context.Background(), models.AnalyticsFilter{}, "")
	assert.ErrorIs(t, err, boom)
}
