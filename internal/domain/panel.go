package domain

// Panel identifies which action sheet is open. The zero value means no
// sheet is open, so a screen can never hold two open panels at once.
type Panel int

const (
	PanelNone Panel = iota
	PanelMonitor
	PanelEmergency
	PanelWatch
	PanelSafe
)

// PanelForDay maps a forecast day to the panel it opens. Thursday,
// Friday and Sunday are inert and map to PanelNone.
func PanelForDay(d Day) Panel {
	switch d {
	case Monday:
		return PanelMonitor
	case Tuesday:
		return PanelEmergency
	case Wednesday:
		return PanelWatch
	case Saturday:
		return PanelSafe
	default:
		return PanelNone
	}
}

// IsOpen reports whether p refers to an actual panel.
func (p Panel) IsOpen() bool {
	return p != PanelNone
}

// Title returns the heading drawn at the top of the panel.
func (p Panel) Title() string {
	switch p {
	case PanelMonitor:
		return "Conditions"
	case PanelEmergency:
		return "Emergency Location"
	case PanelWatch:
		return "Select Contact"
	case PanelSafe:
		return "Confirm Safety"
	default:
		return ""
	}
}

// ActionLabel returns the text of the panel's primary button.
func (p Panel) ActionLabel() string {
	switch p {
	case PanelMonitor:
		return "Enter"
	case PanelEmergency:
		return "Send Location"
	case PanelWatch:
		return "Send to"
	case PanelSafe:
		return "Send Safe Notification"
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (p Panel) String() string {
	switch p {
	case PanelMonitor:
		return "monitor"
	case PanelEmergency:
		return "emergency"
	case PanelWatch:
		return "watch"
	case PanelSafe:
		return "safe"
	default:
		return "none"
	}
}
