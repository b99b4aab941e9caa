package main

import (
	"errors"

	"github.com/andrewshostak/team-lookup-service/config"
	loggerinternal "github.com/andrewshostak/team-lookup-service/internal/infra/logger"
	"github.com/andrewshostak/team-lookup-service/internal/infra/postgres"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	var source string

	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "migrate execute migration actions on the search history database",
	}

	rootCmd.PersistentFlags().StringVar(&source, "source", "file://./database/migrations", "migrations source url")

	cmdMigrateUp := &cobra.Command{
		Use:   "up",
		Short: "migrate all the way up",
		RunE: func(_ *cobra.Command, _ []string) error {
			return up(source)
		},
	}

	cmdMigrateDown := &cobra.Command{
		Use:   "down",
		Short: "migrate all the way down",
		RunE: func(_ *cobra.Command, _ []string) error {
			return down(source)
		},
	}

	cmdVersion := &cobra.Command{
		Use:   "version",
		Short: "print the current migration version",
		RunE: func(_ *cobra.Command, _ []string) error {
			return version(source)
		},
	}

	rootCmd.AddCommand(cmdMigrateUp)
	rootCmd.AddCommand(cmdMigrateDown)
	rootCmd.AddCommand(cmdVersion)

	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}

func up(source string) error {
	m, l := run(source)

	err := m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		l.Info().Msg("database is up to date")
		return nil
	}

	if err != nil {
		return err
	}

	l.Info().Msg("migration up done")

	return nil
}

func down(source string) error {
	m, l := run(source)

	err := m.Down()
	if errors.Is(err, migrate.ErrNoChange) {
		l.Info().Msg("nothing to migrate down")
		return nil
	}

	if err != nil {
		return err
	}

	l.Info().Msg("migration down done")

	return nil
}

func version(source string) error {
	m, l := run(source)

	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		l.Info().Msg("no migration applied")
		return nil
	}

	if err != nil {
		return err
	}

	l.Info().Uint("version", v).Bool("dirty", dirty).Msg("current migration version")

	return nil
}

func run(source string) (*migrate.Migrate, *zerolog.Logger) {
	cfg := config.Parse[config.Migrate]()

	logger := loggerinternal.SetupLogger()

	db := postgres.EstablishDatabaseConnection(cfg.PG)

	sqlDb, err := db.DB()
	if err != nil {
		panic(err)
	}

	driver, err := migratepg.WithInstance(sqlDb, &migratepg.Config{})
	if err != nil {
		panic(err)
	}

	m, err := migrate.NewWithDatabaseInstance(source, cfg.PG.Database, driver)
	if err != nil {
		panic(err)
	}

	return m, logger
}
