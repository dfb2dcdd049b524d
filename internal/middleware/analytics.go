package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/trading_ledger/internal/platform/analytics"
	"github.com/gin-gonic/gin"
)

// AnalyticsMiddleware reports each successful authenticated request to
// tracker. The event name is the HTTP method and matched route, for example
// "post_api_v1_transactions".
func AnalyticsMiddleware(tracker analytics.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if tracker == nil || len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		subject, ok := GetSubjectFromContext(c)
		if !ok || c.FullPath() == "" {
			return
		}

		event := strings.ToLower(c.Request.Method) + strings.ReplaceAll(c.FullPath(), "/", "_")
		props := map[string]any{
			"status_code": c.Writer.Status(),
			"path":        c.Request.URL.Path,
		}
		if id := c.Param("transactionID"); id != "" {
			props["transaction_id"] = id
		}
		tracker.Track(subject, event, props)
	}
}
