package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonitorConfirmation(t *testing.T) {
	for n := MinActivityLevel; n <= MaxActivityLevel; n++ {
		c := MonitorConfirmation(ActivityLevel(n))
		assert.Equal(t, fmt.Sprintf("Emergency message sent with activity level %d.", n), c.Message)
		assert.Equal(t, PanelMonitor, c.Panel)
	}
}

func TestWatchConfirmation(t *testing.T) {
	c := WatchConfirmation("Sister")
	assert.Equal(t, "Location sent to Sister.", c.Message)
	assert.Equal(t, PanelWatch, c.Panel)
}

func TestFixedConfirmations(t *testing.T) {
	assert.Equal(t, "Location sent to 911. Help is on the way.", EmergencyConfirmation().Message)
	assert.Equal(t, "Message sent to contacts. You are marked as safe.", SafeConfirmation().Message)
}

func TestConfirmation_UniqueIDs(t *testing.T) {
	a := SafeConfirmation()
	b := SafeConfirmation()
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestDefaultContacts(t *testing.T) {
	assert.Equal(t, []string{"Mom", "Dad", "Sister", "Brother", "Friend"}, DefaultContacts)
}
