package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// MigrateUp applies every pending migration found at migrationsPath.
func MigrateUp(databaseURL, migrationsPath string) error {
	return runMigrations(databaseURL, migrationsPath, func(m *migrate.Migrate) error { return m.Up() })
}

// MigrateDown rolls back the given number of migrations.
func MigrateDown(databaseURL, migrationsPath string, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	return runMigrations(databaseURL, migrationsPath, func(m *migrate.Migrate) error { return m.Steps(-steps) })
}

func runMigrations(databaseURL, migrationsPath string, apply func(*migrate.Migrate) error) error {
	// A separate database/sql handle through the pgx stdlib driver, as migrate requires.
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			slog.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(migrationsPath, "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	applyErr := apply(m)
	if applyErr != nil && !errors.Is(applyErr, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", applyErr)
	}

	if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
		return fmt.Errorf("migration close: %w", errors.Join(sourceErr, dbErr))
	}

	if errors.Is(applyErr, migrate.ErrNoChange) {
		slog.Info("No new migrations to apply.")
	} else {
		slog.Info("Database migrations applied successfully.", slog.String("source", migrationsPath))
	}
	return nil
}
