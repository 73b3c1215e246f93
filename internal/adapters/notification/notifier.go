// Package notification mirrors confirmations as local desktop notifications.
package notification

import (
	"github.com/gen2brain/beeep"
	"github.com/xvierd/skycast/internal/config"
	"github.com/xvierd/skycast/internal/domain"
	"github.com/xvierd/skycast/internal/ports"
)

// AppTitle is the title of every notification, kept weather-only.
const AppTitle = "Skycast"

// Notifier handles desktop notifications.
type Notifier struct {
	cfg *config.NotificationConfig

	// notify and alert are the beeep entry points, swapped in tests.
	notify func(title, message string, icon any) error
	alert  func(title, message string, icon any) error
}

// Ensure Notifier implements ports.Notifier.
var _ ports.Notifier = (*Notifier)(nil)

// New creates a new notifier with the given configuration.
func New(cfg *config.NotificationConfig) *Notifier {
	return &Notifier{
		cfg:    cfg,
		notify: beeep.Notify,
		alert:  beeep.Alert,
	}
}

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.IsEnabled() {
		return nil
	}
	if n.cfg.Sound {
		return n.alert(title, message, "")
	}
	return n.notify(title, message, "")
}

// NotifyConfirmation shows the confirmation message.
func (n *Notifier) NotifyConfirmation(c domain.Confirmation) error {
	return n.Notify(AppTitle, c.Message)
}

// SetEnabled toggles notifications at runtime.
func (n *Notifier) SetEnabled(enabled bool) {
	if n.cfg != nil {
		n.cfg.Enabled = enabled
	}
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.cfg != nil && n.cfg.Enabled
}
