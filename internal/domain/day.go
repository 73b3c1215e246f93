// Package domain contains the core entities of the forecast screen:
// the seven forecast days, the secret-mode label mapping, the action
// panels bound to specific days and the confirmations they produce.
// Nothing here depends on the terminal, storage or configuration.
package domain

import "errors"

// Common domain errors.
var (
	ErrInvalidDay       = errors.New("invalid day index")
	ErrForecastNotFound = errors.New("forecast not found")
	ErrInvalidForecast  = errors.New("invalid forecast")
	ErrEmptyTemperature = errors.New("temperature cannot be empty")
)

// Day is one of the seven fixed forecast slots, Monday first.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// DayCount is the number of rows in the forecast list.
const DayCount = 7

var dayNames = [DayCount]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Empty labels mark days with no bound action.
var safetyActions = [DayCount]string{
	"Monitor", "Emergency Alert", "Watch", "", "", "Safe", "",
}

// AllDays returns the forecast days in display order.
func AllDays() []Day {
	days := make([]Day, DayCount)
	for i := range days {
		days[i] = Day(i)
	}
	return days
}

// ParseDay validates an integer index and returns the matching Day.
func ParseDay(index int) (Day, error) {
	d := Day(index)
	if !d.Valid() {
		return 0, ErrInvalidDay
	}
	return d, nil
}

// Valid reports whether the day is within [0, DayCount).
func (d Day) Valid() bool {
	return d >= 0 && d < DayCount
}

// Name returns the calendar name of the day.
func (d Day) Name() string {
	if !d.Valid() {
		return ""
	}
	return dayNames[d]
}

// SafetyAction returns the action label bound to the day, or "" if none.
func (d Day) SafetyAction() string {
	if !d.Valid() {
		return ""
	}
	return safetyActions[d]
}

// HasAction reports whether activating the day opens a panel.
func (d Day) HasAction() bool {
	return PanelForDay(d) != PanelNone
}

// String implements fmt.Stringer.
func (d Day) String() string {
	return d.Name()
}

// Label resolves the text shown for a forecast row. In secret mode the
// four action days show their safety action; every other combination
// shows the calendar name.
func Label(d Day, secret bool) string {
	if secret && d.HasAction() {
		return d.SafetyAction()
	}
	return d.Name()
}
