package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		status      string
		priority    int
		wantErr     string
	}{
		{"valid ticket", "Login Issue", "Cannot login to account", "open", 1, ""},
		{"negative priority is present", "Bug", "Found a bug", "open", -1, ""},
		{"missing title", "", "desc", "open", 1, "title is required"},
		{"blank description", "Title", "   ", "open", 1, "description is required"},
		{"missing status", "Title", "desc", "", 1, "status is required"},
		{"zero priority", "Title", "desc", "open", 0, "priority is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk, err := NewTicket(tt.title, tt.description, tt.status, tt.priority)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, tk)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.title, tk.Title())
			assert.Equal(t, tt.description, tk.Description())
			assert.Equal(t, tt.status, tk.Status())
			assert.Equal(t, tt.priority, tk.Priority())
			assert.Zero(t, tk.ID())
			assert.False(t, tk.CreatedAt().IsZero())
			assert.Equal(t, tk.CreatedAt(), tk.UpdatedAt())
		})
	}
}

func TestTicket_SetID(t *testing.T) {
	tk, err := NewTicket("Title", "desc", "open", 2)
	require.NoError(t, err)

	assert.Error(t, tk.SetID(0))
	require.NoError(t, tk.SetID(7))
	assert.Equal(t, uint(7), tk.ID())
	assert.Error(t, tk.SetID(8))
}

func TestTicket_Apply(t *testing.T) {
	created := time.Now().Add(-time.Hour)

	t.Run("partial update touches only supplied fields", func(t *testing.T) {
		tk := ReconstructTicket(1, "Login Issue", "Cannot login", "open", 1, created, created)

		applied := tk.Apply(Changes{Status: strPtr("closed"), Priority: intPtr(5)})

		assert.True(t, applied)
		assert.Equal(t, "Login Issue", tk.Title())
		assert.Equal(t, "Cannot login", tk.Description())
		assert.Equal(t, "closed", tk.Status())
		assert.Equal(t, 5, tk.Priority())
		assert.True(t, tk.UpdatedAt().After(created))
	})

	t.Run("empty and zero values are skipped while the rest applies", func(t *testing.T) {
		tk := ReconstructTicket(1, "Login Issue", "Cannot login", "open", 1, created, created)

		applied := tk.Apply(Changes{Title: strPtr(""), Status: strPtr("closed"), Priority: intPtr(0)})

		assert.True(t, applied)
		assert.Equal(t, "Login Issue", tk.Title())
		assert.Equal(t, "closed", tk.Status())
		assert.Equal(t, 1, tk.Priority())
	})

	t.Run("only empty values is a no-op", func(t *testing.T) {
		tk := ReconstructTicket(1, "Login Issue", "Cannot login", "open", 1, created, created)

		assert.False(t, tk.Apply(Changes{Description: strPtr(""), Priority: intPtr(0)}))
		assert.False(t, tk.Apply(Changes{}))
		assert.Equal(t, "Cannot login", tk.Description())
		assert.Equal(t, created, tk.UpdatedAt())
	})

	t.Run("text is stored exactly as given", func(t *testing.T) {
		tk := ReconstructTicket(1, "Login Issue", "Cannot login", "open", 1, created, created)

		tk.Apply(Changes{Title: strPtr(" <b>spaced</b> &amp; ")})

		assert.Equal(t, " <b>spaced</b> &amp; ", tk.Title())
	})
}

func TestNewLinks(t *testing.T) {
	cl, err := NewCustomerLink(3, 1)
	require.NoError(t, err)
	assert.Equal(t, CustomerLink{TicketID: 3, CustomerID: 1}, cl)

	al, err := NewAgentLink(3, 2)
	require.NoError(t, err)
	assert.Equal(t, AgentLink{TicketID: 3, AgentID: 2}, al)

	_, err = NewCustomerLink(0, 1)
	assert.Error(t, err)
	_, err = NewAgentLink(1, 0)
	assert.Error(t, err)
}
