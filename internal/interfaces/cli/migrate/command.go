package migrate

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"ticketdesk/internal/infrastructure/database"
	"ticketdesk/internal/infrastructure/migration"
	"ticketdesk/internal/interfaces/cli/bootstrap"
	"ticketdesk/internal/shared/constants"
	"ticketdesk/internal/shared/logger"
)

var (
	env        string
	configPath string
	steps      int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect the versioned SQL migrations of the ticket schema.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

// withStrategy opens the configured database, hands fn the goose strategy for
// its driver and closes the connection afterwards.
func withStrategy(fn func(log logger.Interface, strategy *migration.GooseStrategy, db *gorm.DB) error) error {
	cfg, log, err := bootstrap.Init(env, configPath)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(log, migration.NewGooseStrategy(cfg.Database.GetDriver()), database.Get())
}

func runUp(cmd *cobra.Command, _ []string) error {
	return withStrategy(func(log logger.Interface, strategy *migration.GooseStrategy, db *gorm.DB) error {
		log.Infow("running up migrations", "environment", env)

		if err := strategy.Migrate(cmd.Context(), db); err != nil {
			log.Errorw("migration failed", "error", err)
			return fmt.Errorf("migration failed: %w", err)
		}

		log.Infow("migrations completed successfully")
		return nil
	})
}

func runDown(cmd *cobra.Command, _ []string) error {
	if steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}

	return withStrategy(func(log logger.Interface, strategy *migration.GooseStrategy, db *gorm.DB) error {
		log.Infow("rolling back migrations", "environment", env, "steps", steps)

		if err := strategy.MigrateDown(cmd.Context(), db, steps); err != nil {
			log.Errorw("rollback failed", "error", err)
			return fmt.Errorf("rollback failed: %w", err)
		}

		log.Infow("rollback completed", "steps", steps)
		return nil
	})
}

func runStatus(cmd *cobra.Command, _ []string) error {
	return withStrategy(func(log logger.Interface, strategy *migration.GooseStrategy, db *gorm.DB) error {
		version, err := strategy.GetVersion(cmd.Context(), db)
		if err != nil {
			return fmt.Errorf("failed to get migration version: %w", err)
		}

		states, err := strategy.Status(cmd.Context(), db)
		if err != nil {
			return fmt.Errorf("failed to list migrations: %w", err)
		}

		printStatus(cmd.OutOrStdout(), version, states)
		return nil
	})
}

func printStatus(w io.Writer, version int64, states []migration.MigrationState) {
	fmt.Fprintf(w, "\nMigration Status:\n")
	fmt.Fprintf(w, "  Environment:     %s\n", env)
	fmt.Fprintf(w, "  Current Version: %d\n\n", version)

	for _, s := range states {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		fmt.Fprintf(w, "  %05d  %-8s %s\n", s.Version, state, s.Path)
	}
}
