// Package ports defines the interfaces (driven and driving ports)
// between the skycast domain and its infrastructure, following
// hexagonal architecture principles.
package ports

import (
	"context"

	"github.com/xvierd/skycast/internal/domain"
)

// ForecastRepository defines the interface for the forecast cache.
// This is a driven port (implemented by adapters).
type ForecastRepository interface {
	// Load returns the cached forecast, or domain.ErrForecastNotFound.
	Load(ctx context.Context) (*domain.Forecast, error)

	// Save replaces the cached forecast.
	Save(ctx context.Context, forecast *domain.Forecast) error

	// SetDay updates the icon and temperature of a single row.
	SetDay(ctx context.Context, day domain.Day, icon, temperature string) error
}

// Storage is the combined repository interface.
// This is a driven port (implemented by adapters).
type Storage interface {
	// Forecasts provides access to the forecast cache.
	Forecasts() ForecastRepository

	// Close closes the storage connection.
	Close() error

	// Migrate runs database migrations.
	Migrate() error
}
