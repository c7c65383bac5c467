package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/school-records-api/pkg/errors"
	"github.com/noah-isme/school-records-api/pkg/response"
)

const queryDateLayout = "2006-01-02"

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Invalid("invalid id", appErrors.FieldError{Field: "id", Message: "must be a positive integer"})
	}
	return id, nil
}

func pageParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	size, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		size = 20
	}
	return page, size
}

func queryID(c *gin.Context, key string) (*int64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, appErrors.Invalid("invalid "+key+" parameter", appErrors.FieldError{Field: key, Message: "must be a positive integer"})
	}
	return &id, nil
}

func queryDate(c *gin.Context, key string) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(queryDateLayout, raw)
	if err != nil {
		return nil, appErrors.Invalid("invalid "+key+" parameter", appErrors.FieldError{Field: key, Message: "must be a date formatted YYYY-MM-DD"})
	}
	return &t, nil
}

// bindJSON decodes the request body, writing a 400 response on failure.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return false
	}
	return true
}

// respondDeleted maps a delete outcome onto 204, 404 or the service error.
func respondDeleted(c *gin.Context, existed bool, err error, entity string) {
	if err != nil {
		response.Error(c, err)
		return
	}
	if !existed {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, entity+" not found"))
		return
	}
	response.NoContent(c)
}
