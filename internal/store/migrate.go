package store

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"reward-platform/internal/observability"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// Schema names one service's migration set
type Schema string

const (
	SchemaAuth  Schema = "auth"
	SchemaEvent Schema = "event"
)

// Migrate applies every pending migration of the given schema.
// Each schema keeps its own version table so both services may share a database.
func (s *Store) Migrate(ctx context.Context, schema Schema) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "schema", Value: string(schema)})

	source, err := iofs.New(migrationsFS, "migrations/"+string(schema))
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}

	driver, err := postgres.WithInstance(s.db.DB, &postgres.Config{
		MigrationsTable: fmt.Sprintf("schema_migrations_%s", schema),
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	s.logMigrationVersion(ctx, m)
	return nil
}

// schemaVersioner reports the schema version after migrating
type schemaVersioner interface {
	Version() (version uint, dirty bool, err error)
}

func (s *Store) logMigrationVersion(ctx context.Context, m schemaVersioner) {
	version, dirty, err := m.Version()
	if err != nil {
		s.logger.WarnWithError(ctx, "database migrations applied but the schema version is unknown", err)
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "version", Value: version})
	if dirty {
		s.logger.Warn(ctx, "database migrations are dirty")
		return
	}
	s.logger.Info(ctx, "database migrations applied")
}
