package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/skycast/internal/config"
	"github.com/xvierd/skycast/internal/domain"
)

const (
	tileWidth = 16
	mapWidth  = 40
	mapHeight = 7
)

// renderSummary lays the summary tiles out side by side as bordered cards.
func renderSummary(tiles []domain.SummaryTile, theme config.ThemeConfig, s styles) string {
	if len(tiles) == 0 {
		return ""
	}
	card := lipgloss.NewStyle().
		Width(tileWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColorCard)).
		Padding(0, 1)

	cards := make([]string, 0, len(tiles))
	for _, t := range tiles {
		body := lipgloss.JoinVertical(lipgloss.Left,
			s.icon.Render(t.Icon)+" "+s.caption.Render(t.Title),
			s.hero.Render(t.Value),
		)
		cards = append(cards, card.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// renderMap draws the dimmed map placeholder with a pin in the middle.
// It never shows coordinates.
func renderMap(theme config.ThemeConfig, s styles) string {
	var rows []string
	for y := 0; y < mapHeight; y++ {
		if y == mapHeight/2 {
			side := strings.Repeat(" ", (mapWidth-2)/2)
			rows = append(rows, side+theme.IconPin+side)
			continue
		}
		rows = append(rows, s.muted.Faint(true).Render(strings.Repeat("· ", mapWidth/2)))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColorMuted)).
		Render(strings.Join(rows, "\n"))
}
