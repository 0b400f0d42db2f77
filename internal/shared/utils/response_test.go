package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/shared/errors"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestErrorResponseWithError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
		wantError   string
	}{
		{
			name:        "validation error maps to 400",
			err:         errors.NewValidationError("All fields are required", "title is required"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "All fields are required",
			wantError:   "title is required",
		},
		{
			name:        "wrapped not found maps to 404",
			err:         fmt.Errorf("get ticket: %w", errors.NewNotFoundError("Ticket with ID 9 not found.")),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Ticket with ID 9 not found.",
		},
		{
			name:        "conflict maps to 409",
			err:         errors.NewConflictError("email already in use"),
			wantStatus:  http.StatusConflict,
			wantMessage: "email already in use",
		},
		{
			name:        "unique constraint violation maps to 409",
			err:         fmt.Errorf("failed to create customers: %w", fmt.Errorf("UNIQUE constraint failed: customers.email")),
			wantStatus:  http.StatusConflict,
			wantMessage: "Error fetching tickets",
			wantError:   "failed to create customers: UNIQUE constraint failed: customers.email",
		},
		{
			name:        "unknown error maps to 500 with fallback",
			err:         fmt.Errorf("database is locked"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Error fetching tickets",
			wantError:   "database is locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newContext()

			ErrorResponseWithError(c, tt.err, "Error fetching tickets")

			assert.Equal(t, tt.wantStatus, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, tt.wantMessage, body.Message)
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}

func TestSuccessResponse(t *testing.T) {
	c, w := newContext()

	SuccessResponse(c, http.StatusCreated, "ticket", map[string]int{"id": 4})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"ticket":{"id":4}}`, w.Body.String())
}

func TestMessageResponse(t *testing.T) {
	c, w := newContext()

	MessageResponse(c, http.StatusOK, "Database seeded successfully")

	assert.JSONEq(t, `{"message":"Database seeded successfully"}`, w.Body.String())
}
