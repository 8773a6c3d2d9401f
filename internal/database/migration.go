package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/sqlite3/*.sql migrations/pgx/*.sql
var migrationFiles embed.FS

// MigrationInfo describes the schema version of a database
type MigrationInfo struct {
	Version uint
	Dirty   bool
	Applied bool
}

// MigrationManager applies the embedded schema migrations.
// Each run uses its own connection because closing a migrate instance closes
// the database handle it was given.
type MigrationManager struct {
	config *ConnectionConfig
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(config *ConnectionConfig) *MigrationManager {
	if config.Logger == nil {
		config.Logger = logrus.New()
	}
	return &MigrationManager{config: config}
}

// Up executes all pending migrations
func (m *MigrationManager) Up() error {
	return m.run(func(mg *migrate.Migrate) error {
		version, dirty, err := mg.Version()
		if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
			return fmt.Errorf("failed to get current migration version: %w", err)
		}
		if dirty {
			return fmt.Errorf("database is dirty at version %d, fix it and force the version", version)
		}

		if err := mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		newVersion, _, _ := mg.Version()
		m.config.Logger.WithFields(logrus.Fields{
			"from_version": version,
			"to_version":   newVersion,
		}).Info("Migrations completed")
		return nil
	})
}

// Down rolls back the given number of migrations
func (m *MigrationManager) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	return m.run(func(mg *migrate.Migrate) error {
		if err := mg.Steps(-steps); err != nil {
			return fmt.Errorf("failed to roll back migrations: %w", err)
		}
		m.config.Logger.WithField("steps", steps).Info("Rollback completed")
		return nil
	})
}

// Force sets the schema version without running migrations, clearing the dirty flag
func (m *MigrationManager) Force(version int) error {
	return m.run(func(mg *migrate.Migrate) error {
		return mg.Force(version)
	})
}

// Status returns the current schema version
func (m *MigrationManager) Status() (*MigrationInfo, error) {
	info := &MigrationInfo{}
	err := m.run(func(mg *migrate.Migrate) error {
		version, dirty, err := mg.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get migration version: %w", err)
		}
		info.Version, info.Dirty, info.Applied = version, dirty, true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

func (m *MigrationManager) run(fn func(*migrate.Migrate) error) error {
	mg, err := m.newMigrate()
	if err != nil {
		return err
	}
	defer mg.Close()
	return fn(mg)
}

func (m *MigrationManager) newMigrate() (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "migrations/"+m.config.Driver)
	if err != nil {
		return nil, fmt.Errorf("failed to open migration source: %w", err)
	}

	db, err := Open(m.config)
	if err != nil {
		return nil, err
	}

	var mg *migrate.Migrate
	switch m.config.Driver {
	case DriverSQLite:
		driver, derr := migratesqlite.WithInstance(db, &migratesqlite.Config{})
		if derr != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create sqlite migration driver: %w", derr)
		}
		mg, err = migrate.NewWithInstance("iofs", source, DriverSQLite, driver)
	case DriverPostgres:
		driver, derr := migratepgx.WithInstance(db, &migratepgx.Config{})
		if derr != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create postgres migration driver: %w", derr)
		}
		mg, err = migrate.NewWithInstance("iofs", source, DriverPostgres, driver)
	default:
		db.Close()
		return nil, fmt.Errorf("unsupported database driver %q", m.config.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize migrate: %w", err)
	}
	return mg, nil
}
