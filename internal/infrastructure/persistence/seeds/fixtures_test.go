package seeds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/application/ticket/dto"
)

func TestDefaultFixtures(t *testing.T) {
	ds, err := NewDefaultFixtures().Load()
	require.NoError(t, err)

	require.Len(t, ds.Tickets, 3)
	assert.Equal(t, dto.SeedTicket{
		Title:       "Payment Failure",
		Description: "Payment not processed",
		Status:      "closed",
		Priority:    2,
	}, ds.Tickets[1])

	assert.Equal(t, []dto.SeedContact{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "Bob", Email: "bob@example.com"},
	}, ds.Customers)
	assert.Equal(t, []dto.SeedContact{
		{Name: "Charlie", Email: "charlie@example.com"},
		{Name: "Dave", Email: "dave@example.com"},
	}, ds.Agents)

	assert.Equal(t, []dto.SeedLink{{Ticket: 0, Target: 0}, {Ticket: 1, Target: 1}, {Ticket: 2, Target: 0}}, ds.CustomerLinks)
	assert.Equal(t, []dto.SeedLink{{Ticket: 0, Target: 0}, {Ticket: 1, Target: 1}, {Ticket: 2, Target: 0}}, ds.AgentLinks)
}

func TestYAMLFixtures_Invalid(t *testing.T) {
	_, err := NewYAMLFixtures([]byte("tickets: [oops")).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse seed fixtures")
}

func TestLoadYAMLFixturesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
tickets:
  - {title: Only, description: One ticket, status: open, priority: 2}
customers:
  - {name: Erin, email: erin@example.com}
agents: []
ticket_customers:
  - {ticket: 0, customer: 0}
`), 0o600))

	fixtures, err := LoadYAMLFixturesFile(path)
	require.NoError(t, err)

	ds, err := fixtures.Load()
	require.NoError(t, err)
	require.Len(t, ds.Tickets, 1)
	assert.Equal(t, "Only", ds.Tickets[0].Title)
	assert.Equal(t, []dto.SeedLink{{Ticket: 0, Target: 0}}, ds.CustomerLinks)
	assert.Empty(t, ds.AgentLinks)

	_, err = LoadYAMLFixturesFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
