package service

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"time"

	"github.com/noah-isme/school-records-api/internal/models"
	"github.com/noah-isme/school-records-api/internal/repository"
	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// WriteHooks runs side effects after a record store write succeeds.
type WriteHooks struct {
	cache   *CacheService
	metrics *MetricsService
}

// NewWriteHooks wires cache invalidation and write metrics. Either dependency may be nil.
func NewWriteHooks(cache *CacheService, metrics *MetricsService) *WriteHooks {
	return &WriteHooks{cache: cache, metrics: metrics}
}

func (h *WriteHooks) recorded(ctx context.Context, entity, operation string) {
	if h == nil {
		return
	}
	h.metrics.ObserveRecordWrite(entity, operation)
	h.cache.InvalidateAnalytics(ctx)
}

func paginationFor(page, size, total int) *models.Pagination {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = 20
	}
	return &models.Pagination{Page: page, PageSize: size, TotalCount: total}
}

func internalError(err error, message string) error {
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

func loadError(err error, entity string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, entity+" not found")
	}
	return internalError(err, "failed to load "+entity)
}

func updateError(err error, entity string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.Clone(appErrors.ErrNotFound, entity+" not found")
	}
	return internalError(err, "failed to update "+entity)
}

func deleteError(err error, entity string) error {
	if errors.Is(err, repository.ErrReferenced) {
		out := appErrors.Clone(appErrors.ErrReferenced, entity+" is still referenced by other records")
		out.Err = err
		return out
	}
	return internalError(err, "failed to delete "+entity)
}

func payloadError(err error, entity string) error {
	return appErrors.Validation(err, "invalid "+entity+" payload")
}

func parseDate(field, raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, appErrors.Invalid("invalid "+field, appErrors.FieldError{Field: field, Message: "must be a date formatted YYYY-MM-DD"})
	}
	return t, nil
}

func parseOptionalDate(field string, raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := parseDate(field, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// emptyPatch reports whether every pointer, slice and map field of a patch payload is nil.
func emptyPatch(req interface{}) bool {
	v := reflect.Indirect(reflect.ValueOf(req))
	if v.Kind() != reflect.Struct {
		return false
	}
	for i := 0; i < v.NumField(); i++ {
		switch f := v.Field(i); f.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
			if !f.IsNil() {
				return false
			}
		default:
			if !f.IsZero() {
				return false
			}
		}
	}
	return true
}

func invalidFields(message string, fields []appErrors.FieldError) error {
	if len(fields) == 0 {
		return nil
	}
	return appErrors.Invalid(message, fields...)
}
