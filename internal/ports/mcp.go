package ports

import (
	"context"

	"github.com/xvierd/skycast/internal/domain"
)

// MCPHandler defines the interface for MCP server operations.
// This is a driving port (called by the application layer).
type MCPHandler interface {
	// Start begins serving MCP requests.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the server.
	Stop() error

	// IsRunning returns true if the server is active.
	IsRunning() bool
}

// ForecastProvider provides weather content to read-only consumers.
// This is a driven port (implemented by the services layer).
type ForecastProvider interface {
	// GetForecast returns the forecast currently displayed by the screen.
	GetForecast(ctx context.Context) (domain.Forecast, error)
}
