// Package tui provides the terminal forecast screen using the Bubbletea
// framework.
package tui

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/skycast/internal/config"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// styles groups the lipgloss styles derived from a theme.
type styles struct {
	title    lipgloss.Style
	hero     lipgloss.Style
	caption  lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	icon     lipgloss.Style
	row      lipgloss.Style
	rowFocus lipgloss.Style
	button   lipgloss.Style
	primary  lipgloss.Style
	disabled lipgloss.Style
	live     lipgloss.Style
	sheet    lipgloss.Style
	banner   lipgloss.Style
	secret   lipgloss.Style
	secretOn lipgloss.Style
}

func newStyles(t config.ThemeConfig) styles {
	text := lipgloss.Color(t.ColorText)
	muted := lipgloss.Color(t.ColorMuted)
	accent := lipgloss.Color(t.ColorAccent)

	return styles{
		title:   lipgloss.NewStyle().Foreground(text),
		hero:    lipgloss.NewStyle().Foreground(text).Bold(true),
		caption: lipgloss.NewStyle().Foreground(muted),
		text:    lipgloss.NewStyle().Foreground(text),
		muted:   lipgloss.NewStyle().Foreground(muted),
		icon:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.ColorIcon)),
		row: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.HiddenBorder(), false, false, false, true),
		rowFocus: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(accent),
		button: lipgloss.NewStyle().
			Foreground(text).
			Background(lipgloss.Color(t.ColorButton)).
			Padding(0, 2),
		primary: lipgloss.NewStyle().
			Foreground(text).
			Background(accent).
			Bold(true).
			Padding(0, 2),
		disabled: lipgloss.NewStyle().Foreground(muted),
		live:     lipgloss.NewStyle().Foreground(accent).Bold(true),
		sheet: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(1, 2),
		banner: lipgloss.NewStyle().
			Foreground(text).
			Background(lipgloss.Color(t.ColorBanner)).
			Padding(0, 2),
		secret:   lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		secretOn: lipgloss.NewStyle().Foreground(muted).Padding(0, 1).Underline(true),
	}
}
