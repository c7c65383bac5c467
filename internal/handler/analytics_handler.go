package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/school-records-api/internal/dto"
	"github.com/noah-isme/school-records-api/internal/middleware"
	"github.com/noah-isme/school-records-api/internal/models"
	"github.com/noah-isme/school-records-api/internal/service"
	"github.com/noah-isme/school-records-api/pkg/response"
)

type analyticsService interface {
	Report(ctx context.Context, filter models.AnalyticsFilter) (*dto.AnalyticsResponse, bool, error)
	Stats(ctx context.Context) (*models.Stats, error)
	SystemMetrics() models.AnalyticsSystemMetrics
}

type exportService interface {
	Analytics(ctx context.Context, filter models.AnalyticsFilter, format string) (*service.ExportFile, error)
}

// AnalyticsHandler exposes aggregated school analytics.
type AnalyticsHandler struct {
	analytics analyticsService
	exports   exportService
}

// NewAnalyticsHandler constructs the analytics handler.
func NewAnalyticsHandler(analytics analyticsService, exports exportService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, exports: exports}
}

// Report godoc
// @Summary Aggregated analytics
// @Description Unknown period, section or category values fall back to "all".
// @Tags Analytics
// @Produce json
// @Param period query string false "week, month, quarter, year or all"
// @Param section query string false "primary, secondary, highschool or all"
// @Param category query string false "demographics, attendance, academic, financial, teachers or all"
// @Success 200 {object} response.Envelope{data=dto.AnalyticsResponse}
// @Router /analytics [get]
func (h *AnalyticsHandler) Report(c *gin.Context) {
	start := time.Now()
	report, cacheHit, err := h.analytics.Report(c.Request.Context(), analyticsFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, report, nil, middleware.ResponseMeta(c, start))
}

// Stats godoc
// @Summary Record counts per collection
// @Tags Analytics
// @Produce json
// @Success 200 {object} response.Envelope{data=models.Stats}
// @Router /stats [get]
func (h *AnalyticsHandler) Stats(c *gin.Context) {
	stats, err := h.analytics.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}

// Export godoc
// @Summary Download analytics as CSV or PDF
// @Tags Analytics
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Param period query string false "Period filter"
// @Param section query string false "Section filter"
// @Param category query string false "Category filter"
// @Success 200 {file} file
// @Router /analytics/export [get]
func (h *AnalyticsHandler) Export(c *gin.Context) {
	file, err := h.exports.Analytics(c.Request.Context(), analyticsFilter(c), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Payload)
}

// System returns instrumentation metrics snapshots.
func (h *AnalyticsHandler) System(c *gin.Context) {
	start := time.Now()
	metrics := h.analytics.SystemMetrics()
	middleware.SetCacheHit(c, false)
	response.JSON(c, http.StatusOK, metrics, nil, middleware.ResponseMeta(c, start))
}

func analyticsFilter(c *gin.Context) models.AnalyticsFilter {
	return models.AnalyticsFilter{
		Period:   models.ParsePeriod(c.Query("period")),
		Section:  models.ParseSectionFilter(c.Query("section")),
		Category: models.ParseCategory(c.Query("category")),
	}
}
