// Package storage provides the SQLite implementation of the storage ports.
// Only weather content is cached here; panel actions are never written.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xvierd/skycast/internal/domain"
	"github.com/xvierd/skycast/internal/ports"
	"modernc.org/sqlite"
)

// sqliteStorage implements the ports.Storage interface using SQLite.
type sqliteStorage struct {
	db           *sql.DB
	forecastRepo *forecastRepository
}

// Ensure sqliteStorage implements ports.Storage.
var _ ports.Storage = (*sqliteStorage)(nil)

// New creates a new SQLite storage instance and seeds the built-in
// forecast on first use.
func New(dbPath string) (ports.Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// In-memory databases are per-connection.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	storage := &sqliteStorage{
		db:           db,
		forecastRepo: newForecastRepository(db),
	}

	if err := storage.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return storage, nil
}

// NewMemory creates a new in-memory SQLite storage instance for testing.
func NewMemory() (ports.Storage, error) {
	return New(":memory:")
}

// Forecasts returns the forecast repository.
func (s *sqliteStorage) Forecasts() ports.ForecastRepository {
	return s.forecastRepo
}

// Close closes the database connection.
func (s *sqliteStorage) Close() error {
	return s.db.Close()
}

// Migrate creates the database schema and seeds an empty cache.
func (s *sqliteStorage) Migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS forecast_meta (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		location TEXT NOT NULL,
		current TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS forecast_days (
		day INTEGER PRIMARY KEY CHECK (day BETWEEN 0 AND 6),
		icon TEXT NOT NULL,
		temperature TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS summary_tiles (
		position INTEGER PRIMARY KEY,
		icon TEXT NOT NULL,
		title TEXT NOT NULL,
		value TEXT NOT NULL
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	ctx := context.Background()
	if _, err := s.forecastRepo.Load(ctx); err != nil {
		if !errors.Is(err, domain.ErrForecastNotFound) {
			return err
		}
		seed := domain.DefaultForecast()
		if err := s.forecastRepo.Save(ctx, &seed); err != nil {
			return fmt.Errorf("failed to seed forecast: %w", err)
		}
	}

	return nil
}

// isConstraintError checks if an error is a SQLite constraint violation.
func isConstraintError(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code()&0xff == 19 // SQLITE_CONSTRAINT
}
