package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	sqlite "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DriverName is the database/sql driver of ledger files: mattn/go-sqlite3 with the casefold and
// deccmp SQL functions registered on every connection.
const DriverName = "sqlite3_ledgerbook"

func init() {
	sql.Register(DriverName, &sqlite.SQLiteDriver{
		ConnectHook: func(conn *sqlite.SQLiteConn) error {
			if err := conn.RegisterFunc("casefold", Fold, true); err != nil {
				return err
			}
			return conn.RegisterFunc("deccmp", CompareDecimal, true)
		},
	})
}

// DSN builds the connection string for a ledger file. Foreign keys stay declarative: references are
// validated by the application before each write.
func DSN(path string) string {
	params := url.Values{}
	params.Set("_busy_timeout", "5000")
	params.Set("_journal_mode", "WAL")
	params.Set("_foreign_keys", "off")
	params.Set("_loc", "UTC")
	return "file:" + path + "?" + params.Encode()
}

// Open opens the single live handle of a ledger file and checks it is reachable.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}

	db, err := sql.Open(DriverName, DSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite has one writer; a single connection keeps the process strictly sequential.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Migrate applies every pending "up" migration. It works on its own handle because the migrate driver
// closes the database it was given.
func Migrate(path string, logger *slog.Logger) error {
	migrationDB, err := sql.Open(DriverName, DSN(path))
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	if err := migrationDB.Ping(); err != nil {
		migrationDB.Close()
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	driver, err := sqlite3.WithInstance(migrationDB, &sqlite3.Config{})
	if err != nil {
		migrationDB.Close()
		return fmt.Errorf("could not create sqlite driver instance for migrations: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	upErr := m.Up()

	// Check for dirty migrations after running Up.
	sourceErr, dbErr := m.Close()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", upErr)
	}
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Debug("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.", slog.String("path", path))
	}
	return nil
}

// OpenAndMigrate migrates the ledger file and then opens its live handle.
func OpenAndMigrate(ctx context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	if err := Migrate(path, logger); err != nil {
		return nil, err
	}
	return Open(ctx, path)
}

// Close closes the live handle.
func Close(db *sql.DB, logger *slog.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("Error closing database", slog.String("error", err.Error()))
		return
	}
	logger.Debug("Database handle closed.")
}
