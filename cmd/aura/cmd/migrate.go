package cmd

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"github.com/templui/aura/internal/config"
	"github.com/templui/aura/internal/db"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the journal database schema",
	}

	cmd.AddCommand(migrateUpCmd())
	cmd.AddCommand(migrateDownCmd())
	cmd.AddCommand(migrateStatusCmd())
	return cmd
}

func withDB(cmd *cobra.Command, fn func(database *sqlx.DB, driver string) error) error {
	cfg := config.Load()
	setupLogging(cmd, cfg)

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close(database)

	return fn(database, cfg.DBDriver)
}

func migrateUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, func(database *sqlx.DB, driver string) error {
				err := db.RunMigrations(database.DB, driver)
				if err != nil {
					return err
				}
				return printVersion(cmd, database, driver)
			})
		},
	}
}

func migrateDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, func(database *sqlx.DB, driver string) error {
				err := db.MigrateDown(database.DB, driver)
				if err != nil {
					return err
				}
				return printVersion(cmd, database, driver)
			})
		},
	}
}

func migrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd, func(database *sqlx.DB, driver string) error {
				return printVersion(cmd, database, driver)
			})
		},
	}
}

func printVersion(cmd *cobra.Command, database *sqlx.DB, driver string) error {
	version, err := db.MigrationVersion(database.DB, driver)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
	return nil
}
