package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/dto"
	"github.com/noah-isme/school-records-api/internal/models"
)

// AnalyticsRepository describes the persistence layer required by AnalyticsService.
type AnalyticsRepository interface {
	Snapshot(ctx context.Context) (*models.Snapshot, error)
	Stats(ctx context.Context) (*models.Stats, error)
}

// AnalyticsService builds analytics reports from a consistent snapshot with cache integration.
type AnalyticsService struct {
	repo    AnalyticsRepository
	cache   *CacheService
	metrics *MetricsService
	ttl     time.Duration
	logger  *zap.Logger
	now     func() time.Time
}

// NewAnalyticsService constructs an analytics service.
func NewAnalyticsService(repo AnalyticsRepository, cache *CacheService, metrics *MetricsService, ttl time.Duration, logger *zap.Logger) *AnalyticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyticsService{repo: repo, cache: cache, metrics: metrics, ttl: ttl, logger: logger, now: time.Now}
}

// Report returns the analytics aggregate for filter. The boolean indicates whether data originated from cache.
// Cache failures are logged and never fail the request.
func (s *AnalyticsService) Report(ctx context.Context, filter models.AnalyticsFilter) (*dto.AnalyticsResponse, bool, error) {
	if filter.Period == "" {
		filter.Period = models.PeriodAll
	}
	if filter.Category == "" {
		filter.Category = models.CategoryAll
	}
	// The generation is read before the snapshot so a report built from pre-write
	// data lands under a key that readers stop using once the write invalidates.
	generation := strconv.FormatUint(s.cache.AnalyticsGeneration(), 10)
	cacheKey := makeAnalyticsCacheKey("report", "g"+generation, string(filter.Period), sectionLabel(filter.Section), string(filter.Category))

	var cached dto.AnalyticsResponse
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		s.metrics.ObserveReport(filter.Category, true)
		return &cached, true, nil
	}

	start := time.Now()
	snap, err := s.repo.Snapshot(ctx)
	if err != nil {
		return nil, false, internalError(err, "failed to load analytics snapshot")
	}
	s.metrics.ObserveDBQuery("analytics_snapshot", time.Since(start))

	report := BuildAnalyticsReport(snap, filter, s.now())
	if err := s.cache.Set(ctx, cacheKey, report, s.ttl); err != nil {
		s.logger.Warn("cache analytics report", zap.String("key", cacheKey), zap.Error(err))
	}
	s.metrics.ObserveReport(filter.Category, false)
	return report, false, nil
}

// Stats returns row counts for every collection.
func (s *AnalyticsService) Stats(ctx context.Context) (*models.Stats, error) {
	start := time.Now()
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, internalError(err, "failed to count records")
	}
	s.metrics.ObserveDBQuery("stats", time.Since(start))
	return stats, nil
}

// SystemMetrics returns system instrumentation snapshot.
func (s *AnalyticsService) SystemMetrics() models.AnalyticsSystemMetrics {
	return s.metrics.Snapshot()
}

func sectionLabel(section models.Section) string {
	if section == "" {
		return "all"
	}
	return string(section)
}

func makeAnalyticsCacheKey(parts ...string) string {
	var builder strings.Builder
	builder.Grow(len(parts) * 16)
	builder.WriteString("analytics")
	for _, part := range parts {
		if part == "" {
			continue
		}
		builder.WriteByte(':')
		builder.WriteString(strings.ReplaceAll(part, ":", "|"))
	}
	return builder.String()
}
