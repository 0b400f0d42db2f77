package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{"validation", NewValidationError("All fields are required"), ErrorTypeValidation, http.StatusBadRequest},
		{"not found", NewNotFoundError("Tickets not found."), ErrorTypeNotFound, http.StatusNotFound},
		{"conflict", NewConflictError("email already exists"), ErrorTypeConflict, http.StatusConflict},
		{"internal", NewInternalError("store unavailable"), ErrorTypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Empty(t, tt.err.Details)
		})
	}
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "not_found: Ticket not found", NewNotFoundError("Ticket not found").Error())
	assert.Equal(t,
		"validation_error: All fields are required (title, agentId)",
		NewValidationError("All fields are required", "title, agentId").Error())
}

func TestGetAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("update ticket: %w", NewNotFoundError("Ticket with ID 4 not found."))

	assert.True(t, IsAppError(wrapped))
	assert.True(t, IsNotFoundError(wrapped))
	assert.False(t, IsValidationError(wrapped))
	assert.False(t, IsConflictError(wrapped))
	assert.Nil(t, GetAppError(fmt.Errorf("plain")))
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(fmt.Errorf("UNIQUE constraint failed: customers.email")))
	assert.True(t, IsDuplicateError(fmt.Errorf("Error 1062: Duplicate entry 'a@b.c' for key 'idx_agents_email'")))
	assert.True(t, IsDuplicateError(fmt.Errorf(`ERROR: duplicate key value violates unique constraint "idx_customers_email"`)))
	assert.False(t, IsDuplicateError(fmt.Errorf("connection refused")))
	assert.False(t, IsDuplicateError(nil))
}
