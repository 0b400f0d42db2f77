package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketdesk/internal/shared/errors"
)

// ErrorBody is the JSON body of every failed request.
type ErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// MessageBody is returned by endpoints that only confirm an action.
type MessageBody struct {
	Message string `json:"message"`
}

// SuccessResponse sends data wrapped under a single top-level key, e.g. {"tickets": [...]}.
func SuccessResponse(c *gin.Context, statusCode int, key string, data interface{}) {
	c.JSON(statusCode, gin.H{key: data})
}

// MessageResponse sends a {"message": ...} body.
func MessageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, MessageBody{Message: message})
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Message: message})
}

// ErrorResponseWithError translates err into an HTTP response. Application
// errors use their own status and message. Unique-constraint violations are
// a 409 and anything else a 500, both carrying fallbackMessage and the error text.
func ErrorResponseWithError(c *gin.Context, err error, fallbackMessage string) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, ErrorBody{
			Message: appErr.Message,
			Error:   appErr.Details,
		})
		return
	}

	_ = c.Error(err)

	if errors.IsDuplicateError(err) {
		c.JSON(http.StatusConflict, ErrorBody{
			Message: fallbackMessage,
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusInternalServerError, ErrorBody{
		Message: fallbackMessage,
		Error:   err.Error(),
	})
}
