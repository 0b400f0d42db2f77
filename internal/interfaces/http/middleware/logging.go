package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/constants"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils/logutil"
)

// Upper bounds for client-controlled fields in access log lines.
const (
	maxLoggedQueryLen     = 256
	maxLoggedUserAgentLen = 128
)

// Logger writes one structured line per request once the handler chain returns.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", logutil.TruncateForLog(c.Request.URL.RawQuery, maxLoggedQueryLen),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"user_agent", logutil.TruncateForLog(c.Request.UserAgent(), maxLoggedUserAgentLen),
			"body_size", c.Writer.Size(),
		}

		if requestID := c.GetString(constants.ContextKeyRequestID); requestID != "" {
			args = append(args, "request_id", requestID)
		}

		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.Last().Error())
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("HTTP request completed with server error", args...)
		case status >= 400:
			log.Warnw("HTTP request completed with client error", args...)
		default:
			log.Infow("HTTP request completed", args...)
		}
	}
}
