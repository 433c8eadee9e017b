package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// migrator is the part of *migrate.Migrate used at startup.
type migrator interface {
	Up() error
	Version() (uint, bool, error)
}

// newMigrator builds a migrator bound to conn. The returned release func
// closes the migration source only; conn and its pool stay open.
var newMigrator = func(ctx context.Context, conn *sql.Conn) (migrator, func(), error) {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open migrations: %w", err)
	}
	release := func() { source.Close() }

	driver, err := postgres.WithConnection(ctx, conn, &postgres.Config{})
	if err != nil {
		release()
		return nil, nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		release()
		return nil, nil, fmt.Errorf("failed to create migrator: %w", err)
	}

	// m.Close is not called: it would close the driver's database handle.
	return m, release, nil
}

// RunMigrations applies every pending migration in migrations/ on a single
// connection borrowed from db. The connection goes back to the pool when done.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire migration connection: %w", err)
	}
	defer conn.Close()

	m, release, err := newMigrator(ctx, conn)
	if err != nil {
		return err
	}
	defer release()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logrus.Info("Database schema is up to date")
			return nil
		}
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, _, _ := m.Version()
	logrus.Infof("Database migrated to version %d", version)
	return nil
}
