package notification

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xvierd/skycast/internal/config"
	"github.com/xvierd/skycast/internal/domain"
)

type call struct {
	title, message string
	sound          bool
}

func recordingNotifier(cfg *config.NotificationConfig) (*Notifier, *[]call) {
	var calls []call
	n := New(cfg)
	n.notify = func(title, message string, _ any) error {
		calls = append(calls, call{title, message, false})
		return nil
	}
	n.alert = func(title, message string, _ any) error {
		calls = append(calls, call{title, message, true})
		return nil
	}
	return n, &calls
}

func TestNotifier_DisabledIsSilent(t *testing.T) {
	n, calls := recordingNotifier(&config.NotificationConfig{Enabled: false})

	assert.NoError(t, n.NotifyConfirmation(domain.SafeConfirmation()))
	assert.Empty(t, *calls)
	assert.False(t, n.IsEnabled())
}

func TestNotifier_NilConfig(t *testing.T) {
	n := New(nil)
	assert.False(t, n.IsEnabled())
	assert.NoError(t, n.Notify("t", "m"))
	n.SetEnabled(true)
	assert.False(t, n.IsEnabled())
}

func TestNotifier_NotifyConfirmation(t *testing.T) {
	n, calls := recordingNotifier(&config.NotificationConfig{Enabled: true})

	assert.NoError(t, n.NotifyConfirmation(domain.WatchConfirmation("Dad")))
	assert.Equal(t, []call{{AppTitle, "Location sent to Dad.", false}}, *calls)
}

func TestNotifier_SoundUsesAlert(t *testing.T) {
	n, calls := recordingNotifier(&config.NotificationConfig{Enabled: true, Sound: true})

	assert.NoError(t, n.Notify("a", "b"))
	assert.True(t, (*calls)[0].sound)
}

func TestNotifier_SetEnabled(t *testing.T) {
	cfg := &config.NotificationConfig{}
	n, calls := recordingNotifier(cfg)

	n.SetEnabled(true)
	assert.True(t, cfg.Enabled)
	assert.NoError(t, n.Notify("a", "b"))
	assert.Len(t, *calls, 1)
}

func TestNotifier_SetEnabledFalseSilences(t *testing.T) {
	n, calls := recordingNotifier(&config.NotificationConfig{Enabled: true})

	n.SetEnabled(false)
	assert.False(t, n.IsEnabled())
	assert.NoError(t, n.NotifyConfirmation(domain.SafeConfirmation()))
	assert.Empty(t, *calls)
}

func TestNotifier_PropagatesErrors(t *testing.T) {
	n := New(&config.NotificationConfig{Enabled: true})
	n.notify = func(string, string, any) error { return errors.New("no dbus") }
	assert.Error(t, n.Notify("a", "b"))
}
