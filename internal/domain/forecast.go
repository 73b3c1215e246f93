package domain

import (
	"fmt"
	"strings"
	"time"
)

// PanelConditions is the weather line shown on the location panels.
const PanelConditions = "75°F | Clear"

// Weather icons used by the forecast rows and summary tiles.
const (
	IconSun      = "☀"
	IconSunCloud = "⛅"
	IconCloud    = "☁"
	IconRain     = "🌧"
	IconStorm    = "⛈"
	IconSnow     = "🌨"
	IconAir      = "🍃"
	IconDrop     = "💧"
)

// DailyForecast is the weather content of one forecast row.
type DailyForecast struct {
	Day         Day
	Icon        string
	Temperature string
}

// SummaryTile is one of the info cards under the forecast list.
type SummaryTile struct {
	Icon  string
	Title string
	Value string
}

// Forecast is everything the weather screen displays apart from the
// day labels, which are fixed.
type Forecast struct {
	Location  string
	Current   string
	Days      [DayCount]DailyForecast
	Tiles     []SummaryTile
	UpdatedAt time.Time
}

// DefaultForecast returns the built-in forecast.
func DefaultForecast() Forecast {
	icons := [DayCount]string{IconSun, IconSunCloud, IconCloud, IconRain, IconSun, IconStorm, IconSnow}

	f := Forecast{
		Location: "My Location",
		Current:  "63° | Clear",
		Tiles: []SummaryTile{
			{Icon: IconAir, Title: "Air Quality", Value: "Good"},
			{Icon: IconDrop, Title: "Precipitation", Value: "15%"},
			{Icon: IconSun, Title: "UV Index", Value: "5"},
		},
	}
	for i := range f.Days {
		f.Days[i] = DailyForecast{Day: Day(i), Icon: icons[i], Temperature: "56°F"}
	}
	return f
}

// Validate checks that every row is present, in order, with a temperature.
func (f Forecast) Validate() error {
	for i, d := range f.Days {
		if d.Day != Day(i) {
			return fmt.Errorf("%w: row %d holds %s", ErrInvalidForecast, i, d.Day)
		}
		if strings.TrimSpace(d.Temperature) == "" {
			return fmt.Errorf("%w: %s: %w", ErrInvalidForecast, d.Day, ErrEmptyTemperature)
		}
	}
	return nil
}

// Row returns the forecast row for d.
func (f Forecast) Row(d Day) (DailyForecast, error) {
	if !d.Valid() {
		return DailyForecast{}, ErrInvalidDay
	}
	return f.Days[d], nil
}
