package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	tests := []struct {
		day    Day
		secret string
		plain  string
	}{
		{Monday, "Monitor", "Monday"},
		{Tuesday, "Emergency Alert", "Tuesday"},
		{Wednesday, "Watch", "Wednesday"},
		{Thursday, "Thursday", "Thursday"},
		{Friday, "Friday", "Friday"},
		{Saturday, "Safe", "Saturday"},
		{Sunday, "Sunday", "Sunday"},
	}

	for _, tt := range tests {
		t.Run(tt.plain, func(t *testing.T) {
			assert.Equal(t, tt.secret, Label(tt.day, true))
			assert.Equal(t, tt.plain, Label(tt.day, false))
		})
	}
}

func TestLabel_PlainModeAlwaysCalendarName(t *testing.T) {
	for _, d := range AllDays() {
		assert.Equal(t, dayNames[d], Label(d, false))
	}
}

func TestLabel_OutOfRange(t *testing.T) {
	assert.Empty(t, Label(Day(-1), true))
	assert.Empty(t, Label(Day(DayCount), false))
}

func TestDay_SafetyAction(t *testing.T) {
	for _, d := range []Day{Thursday, Friday, Sunday} {
		assert.Empty(t, d.SafetyAction(), "%s should have no bound action", d)
		assert.False(t, d.HasAction())
	}
	for _, d := range []Day{Monday, Tuesday, Wednesday, Saturday} {
		assert.NotEmpty(t, d.SafetyAction(), "%s should have a bound action", d)
		assert.True(t, d.HasAction())
	}
}

func TestParseDay(t *testing.T) {
	d, err := ParseDay(5)
	require.NoError(t, err)
	assert.Equal(t, Saturday, d)

	_, err = ParseDay(7)
	assert.ErrorIs(t, err, ErrInvalidDay)

	_, err = ParseDay(-1)
	assert.ErrorIs(t, err, ErrInvalidDay)
}

func TestAllDays(t *testing.T) {
	days := AllDays()
	require.Len(t, days, DayCount)
	assert.Equal(t, Monday, days[0])
	assert.Equal(t, Sunday, days[6])
}
