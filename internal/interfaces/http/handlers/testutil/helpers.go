// Package testutil builds gin contexts and loggers for handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http/httptest"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext returns a context for method and path. A non-nil body is
// sent as JSON; a string body is sent verbatim so tests can post malformed
// payloads.
func NewTestContext(method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	switch b := body.(type) {
	case nil:
		c.Request = httptest.NewRequest(method, path, nil)
	case string:
		c.Request = httptest.NewRequest(method, path, bytes.NewBufferString(b))
		c.Request.Header.Set("Content-Type", "application/json")
	default:
		raw, _ := json.Marshal(b)
		c.Request = httptest.NewRequest(method, path, bytes.NewReader(raw))
		c.Request.Header.Set("Content-Type", "application/json")
	}

	return c, w
}

// SetURLParam adds a path parameter as the router would.
func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

// ParseResponse decodes the recorded JSON body into target.
func ParseResponse(w *httptest.ResponseRecorder, target any) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// NewMockLogger returns a logger that drops every record.
func NewMockLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.DiscardHandler))
}
