package main

import (
	"os"

	"github.com/spf13/cobra"

	"ticketdesk/internal/interfaces/cli/migrate"
	"ticketdesk/internal/interfaces/cli/seed"
	"ticketdesk/internal/interfaces/cli/server"
)

// @title ticketdesk API
// @version 1.0
// @description Support tickets with their customers and agents.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:   "ticketdesk",
		Short: "ticketdesk - support ticket service",
		Long:  `ticketdesk serves the ticket API and ships migration and seeding tools for its database.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
