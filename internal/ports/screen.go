package ports

import (
	"context"

	"github.com/xvierd/skycast/internal/domain"
)

// Screen is the interactive forecast screen.
// This is a driving port (called by the application layer).
type Screen interface {
	// Run starts the screen and blocks until the user quits or ctx is done.
	Run(ctx context.Context, forecast domain.Forecast) error

	// Stop gracefully stops the screen.
	Stop()

	// SetOnConfirm sets a callback fired after every completed panel action.
	SetOnConfirm(callback func(domain.Confirmation))

	// SetReload sets the function polled for forecast edits while running.
	SetReload(reload func() (domain.Forecast, error))
}

// Notifier mirrors confirmations outside the terminal.
// This is a driven port (implemented by adapters).
type Notifier interface {
	// NotifyConfirmation shows c as a local notification.
	NotifyConfirmation(c domain.Confirmation) error

	// IsEnabled returns true if notifications are enabled.
	IsEnabled() bool
}
