package migrate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"ticketdesk/internal/infrastructure/migration"
)

func TestPrintStatus(t *testing.T) {
	env = "test"
	var buf bytes.Buffer

	printStatus(&buf, 1, []migration.MigrationState{
		{Version: 1, Path: "00001_create_ticket_tables.sql", Applied: true},
		{Version: 2, Path: "00002_add_index.sql", Applied: false},
	})

	out := buf.String()
	assert.Contains(t, out, "Current Version: 1")
	assert.Contains(t, out, "00001  applied  00001_create_ticket_tables.sql")
	assert.Contains(t, out, "00002  pending  00002_add_index.sql")
}

func TestNewCommand_Subcommands(t *testing.T) {
	cmd := NewCommand()

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"up", "down", "status"}, names)
}
