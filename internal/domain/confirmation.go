package domain

import (
	"fmt"
	"time"
)

// DefaultContacts is the contact list offered by the Watch panel.
var DefaultContacts = []string{"Mom", "Dad", "Sister", "Brother", "Friend"}

// Confirmation is the result a panel hands back to the screen after its
// action button is pressed. Sends are simulated; the message is the only
// observable outcome. ID is unique per confirmation.
type Confirmation struct {
	ID        string
	Panel     Panel
	Message   string
	CreatedAt time.Time
}

func newConfirmation(p Panel, message string) Confirmation {
	return Confirmation{
		ID:        generateID(),
		Panel:     p,
		Message:   message,
		CreatedAt: time.Now(),
	}
}

// MonitorConfirmation reports an emergency message with the chosen activity level.
func MonitorConfirmation(level ActivityLevel) Confirmation {
	return newConfirmation(PanelMonitor,
		fmt.Sprintf("Emergency message sent with activity level %d.", int(level.clamp())))
}

// EmergencyConfirmation reports the location sent to emergency services.
func EmergencyConfirmation() Confirmation {
	return newConfirmation(PanelEmergency, "Location sent to 911. Help is on the way.")
}

// WatchConfirmation reports the location sent to a single contact.
func WatchConfirmation(contact string) Confirmation {
	return newConfirmation(PanelWatch, fmt.Sprintf("Location sent to %s.", contact))
}

// SafeConfirmation reports that contacts were told the user is safe.
func SafeConfirmation() Confirmation {
	return newConfirmation(PanelSafe, "Message sent to contacts. You are marked as safe.")
}
