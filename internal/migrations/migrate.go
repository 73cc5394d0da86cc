// Package migrations keeps the database schema up to date.
// Every migration is written to be safe on databases created by older
// releases: tables are created if missing and columns are added only when absent.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/sbilibin2017/gw-recipe-generator/internal/logger"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// MigrationsTable is the bookkeeping table used by golang-migrate.
const MigrationsTable = "schema_migrations"

// Up applies all pending migrations.
func Up(db *sql.DB, dbName string) error {
	start := time.Now()

	source, err := iofs.New(sqlFiles, "sql")
	if err != nil {
		return fmt.Errorf("failed to create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{
		MigrationsTable: MigrationsTable,
		DatabaseName:    dbName,
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Log.Infow("schema is up to date", "duration", time.Since(start))
			return nil
		}
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	logger.Log.Infow("schema migrated",
		"version", version,
		"dirty", dirty,
		"duration", time.Since(start),
	)
	return nil
}
