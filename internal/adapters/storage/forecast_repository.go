package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/xvierd/skycast/internal/domain"
	"github.com/xvierd/skycast/internal/ports"
)

// forecastRepository implements ports.ForecastRepository using SQLite.
type forecastRepository struct {
	db *sql.DB
}

var _ ports.ForecastRepository = (*forecastRepository)(nil)

// newForecastRepository creates a new forecast repository.
func newForecastRepository(db *sql.DB) *forecastRepository {
	return &forecastRepository{db: db}
}

// Load retrieves the cached forecast.
func (r *forecastRepository) Load(ctx context.Context) (*domain.Forecast, error) {
	var f domain.Forecast

	err := r.db.QueryRowContext(ctx,
		`SELECT location, current, updated_at FROM forecast_meta WHERE id = 1`,
	).Scan(&f.Location, &f.Current, &f.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrForecastNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load forecast: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT day, icon, temperature FROM forecast_days ORDER BY day`)
	if err != nil {
		return nil, fmt.Errorf("failed to load forecast days: %w", err)
	}
	defer rows.Close()

	seen := 0
	for rows.Next() {
		var d domain.DailyForecast
		if err := rows.Scan(&d.Day, &d.Icon, &d.Temperature); err != nil {
			return nil, fmt.Errorf("failed to scan forecast day: %w", err)
		}
		if !d.Day.Valid() {
			return nil, fmt.Errorf("%w: stored day %d", domain.ErrInvalidForecast, int(d.Day))
		}
		f.Days[d.Day] = d
		seen++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate forecast days: %w", err)
	}
	if seen != domain.DayCount {
		return nil, fmt.Errorf("%w: %d of %d days cached", domain.ErrInvalidForecast, seen, domain.DayCount)
	}

	tiles, err := r.loadTiles(ctx)
	if err != nil {
		return nil, err
	}
	f.Tiles = tiles

	return &f, nil
}

func (r *forecastRepository) loadTiles(ctx context.Context) ([]domain.SummaryTile, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT icon, title, value FROM summary_tiles ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load summary tiles: %w", err)
	}
	defer rows.Close()

	var tiles []domain.SummaryTile
	for rows.Next() {
		var t domain.SummaryTile
		if err := rows.Scan(&t.Icon, &t.Title, &t.Value); err != nil {
			return nil, fmt.Errorf("failed to scan summary tile: %w", err)
		}
		tiles = append(tiles, t)
	}
	return tiles, rows.Err()
}

// Save replaces the cached forecast in a single transaction.
func (r *forecastRepository) Save(ctx context.Context, forecast *domain.Forecast) error {
	if err := forecast.Validate(); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	updatedAt := forecast.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO forecast_meta (id, location, current, updated_at) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET location = excluded.location, current = excluded.current, updated_at = excluded.updated_at
	`, forecast.Location, forecast.Current, updatedAt); err != nil {
		return fmt.Errorf("failed to save forecast: %w", err)
	}

	for _, d := range forecast.Days {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO forecast_days (day, icon, temperature) VALUES (?, ?, ?)
			ON CONFLICT(day) DO UPDATE SET icon = excluded.icon, temperature = excluded.temperature
		`, int(d.Day), d.Icon, d.Temperature); err != nil {
			if isConstraintError(err) {
				return fmt.Errorf("%w: %s", domain.ErrInvalidDay, d.Day)
			}
			return fmt.Errorf("failed to save forecast day: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM summary_tiles`); err != nil {
		return fmt.Errorf("failed to clear summary tiles: %w", err)
	}
	for i, t := range forecast.Tiles {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO summary_tiles (position, icon, title, value) VALUES (?, ?, ?, ?)`,
			i, t.Icon, t.Title, t.Value,
		); err != nil {
			return fmt.Errorf("failed to save summary tile: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit forecast: %w", err)
	}
	return nil
}

// SetDay updates a single row of the cached forecast.
func (r *forecastRepository) SetDay(ctx context.Context, day domain.Day, icon, temperature string) error {
	if !day.Valid() {
		return domain.ErrInvalidDay
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE forecast_days SET icon = ?, temperature = ? WHERE day = ?`,
		icon, temperature, int(day),
	)
	if err != nil {
		return fmt.Errorf("failed to update forecast day: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if n == 0 {
		return domain.ErrForecastNotFound
	}

	if _, err := r.db.ExecContext(ctx,
		`UPDATE forecast_meta SET updated_at = ? WHERE id = 1`, time.Now(),
	); err != nil {
		return fmt.Errorf("failed to touch forecast: %w", err)
	}
	return nil
}
