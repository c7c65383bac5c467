package logger

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rollbar/rollbar-go"

	"github.com/noah-isme/school-records-api/pkg/config"
	"github.com/noah-isme/school-records-api/pkg/middleware/requestid"
)

// Reporter forwards internal errors to Rollbar. A Reporter without a token is a no-op.
type Reporter struct {
	enabled bool
}

// NewReporter configures the global Rollbar notifier from config.
func NewReporter(cfg *config.Config) *Reporter {
	if cfg == nil || cfg.Rollbar.Token == "" {
		rollbar.SetEnabled(false)
		return &Reporter{}
	}
	rollbar.SetToken(cfg.Rollbar.Token)
	rollbar.SetEnvironment(cfg.Env)
	if host, err := os.Hostname(); err == nil {
		rollbar.SetServerHost(host)
	}
	if cfg.Rollbar.CodeVersion != "" {
		rollbar.SetCodeVersion(cfg.Rollbar.CodeVersion)
	}
	rollbar.SetEnabled(true)
	return &Reporter{enabled: true}
}

// Enabled reports whether errors are forwarded.
func (r *Reporter) Enabled() bool {
	return r != nil && r.enabled
}

// Report sends err with request context.
func (r *Reporter) Report(err error, extras map[string]interface{}) {
	if !r.Enabled() || err == nil {
		return
	}
	rollbar.Error(err, extras)
}

// Close flushes queued reports.
func (r *Reporter) Close() {
	if !r.Enabled() {
		return
	}
	rollbar.Wait()
}

// GinMiddleware reports errors attached to 5xx responses.
func (r *Reporter) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if !r.Enabled() || c.Writer.Status() < 500 {
			return
		}
		for _, ginErr := range c.Errors {
			r.Report(ginErr.Err, map[string]interface{}{
				"method":     c.Request.Method,
				"path":       c.FullPath(),
				"status":     c.Writer.Status(),
				"request_id": requestid.Value(c),
			})
		}
	}
}
