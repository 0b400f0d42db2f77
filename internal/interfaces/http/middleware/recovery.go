package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"
	"syscall"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/constants"
	"ticketdesk/internal/shared/logger"
	"ticketdesk/internal/shared/utils"
)

const msgInternalServerError = "Internal server error occurred"

// Recovery turns a handler panic into a 500 JSON body. A panic caused by the
// client hanging up is only logged, since nobody is left to read a response.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		fields := []any{
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", c.GetString(constants.ContextKeyRequestID),
			"error", recovered,
		}

		if isBrokenConnection(recovered) {
			log.Warnw("client connection lost during request", fields...)
			c.Abort()
			return
		}

		log.Errorw("panic recovered", append(fields, "stack", string(debug.Stack()))...)
		utils.ErrorResponse(c, http.StatusInternalServerError, msgInternalServerError)
		c.Abort()
	})
}

func isBrokenConnection(recovered any) bool {
	err, ok := recovered.(error)
	if !ok {
		return false
	}
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.ECONNRESET)
}
