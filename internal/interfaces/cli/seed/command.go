package seed

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"ticketdesk/internal/application/ticket/usecases"
	"ticketdesk/internal/infrastructure/database"
	"ticketdesk/internal/infrastructure/migration"
	"ticketdesk/internal/infrastructure/persistence/seeds"
	"ticketdesk/internal/infrastructure/repository"
	"ticketdesk/internal/interfaces/cli/bootstrap"
	"ticketdesk/internal/shared/constants"
	"ticketdesk/internal/shared/db"
	"ticketdesk/internal/shared/logger"
)

var (
	env         string
	configPath  string
	fixturePath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Reset and seed the database",
		Long:  `Drop the ticket tables, recreate them and load the fixture dataset, like GET /seed_db.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVarP(&fixturePath, "fixtures", "f", "", "YAML fixture file (default: built-in dataset)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	_, log, err := bootstrap.Init(env, configPath)
	if err != nil {
		return err
	}
	defer database.Close()

	fixtures := seeds.NewDefaultFixtures()
	if fixturePath != "" {
		fixtures, err = seeds.LoadYAMLFixturesFile(fixturePath)
		if err != nil {
			return err
		}
	}

	result, err := newSeedUseCase(database.Get(), fixtures, log).Execute(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d tickets, %d customers, %d agents\n",
		usecases.MsgDatabaseSeeded, result.Tickets, result.Customers, result.Agents)
	return nil
}

func newSeedUseCase(database *gorm.DB, fixtures usecases.FixtureSource, log logger.Interface) *usecases.SeedDatabaseUseCase {
	return usecases.NewSeedDatabaseUseCase(
		migration.NewSchemaResetter(database, log.Named("migration.reset")),
		fixtures,
		repository.NewTicketRepository(database),
		repository.NewTicketLinkRepository(database),
		repository.NewCustomerRepository(database),
		repository.NewAgentRepository(database),
		db.NewTransactionManager(database),
		log,
	)
}
