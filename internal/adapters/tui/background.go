package tui

import (
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// sky draws the night gradient and star field behind the screen content.
// It holds no state besides its seed, so the same seed and size always
// produce the same picture.
type sky struct {
	seed    uint64
	density int
	top     colorful.Color
	bottom  colorful.Color
	star    lipgloss.Style
	glyph   string
	enabled bool
}

func newSky(seed uint64, density int, enabled bool, top, bottom, starColor, glyph string) sky {
	t, err := colorful.Hex(top)
	if err != nil {
		t, _ = colorful.Hex("#000033")
	}
	b, err := colorful.Hex(bottom)
	if err != nil {
		b, _ = colorful.Hex("#000066")
	}
	if density < 0 {
		density = 0
	}
	if density > 100 {
		density = 100
	}
	return sky{
		seed:    seed,
		density: density,
		top:     t,
		bottom:  b,
		star:    lipgloss.NewStyle().Foreground(lipgloss.Color(starColor)),
		glyph:   glyph,
		enabled: enabled,
	}
}

// rowColor returns the gradient color of row y out of height rows.
func (s sky) rowColor(y, height int) string {
	if height <= 1 {
		return s.top.Hex()
	}
	t := float64(y) / float64(height-1)
	return s.top.BlendRgb(s.bottom, t).Clamped().Hex()
}

// starsInRow returns the columns of row y that hold a star.
func (s sky) starsInRow(y, width int) map[int]bool {
	stars := make(map[int]bool)
	if !s.enabled || s.density == 0 {
		return stars
	}
	r := rand.New(rand.NewPCG(s.seed, uint64(y)))
	for x := 0; x < width; x++ {
		if r.IntN(100) < s.density {
			stars[x] = true
		}
	}
	return stars
}

// render centers content horizontally and vertically on a width x height
// canvas, filling the area around it with the gradient and stars.
func (s sky) render(content string, width, height int) string {
	lines := strings.Split(content, "\n")
	if height < len(lines) {
		height = len(lines)
	}
	top := (height - len(lines)) / 2

	var b strings.Builder
	for y := 0; y < height; y++ {
		bg := lipgloss.NewStyle().Background(lipgloss.Color(s.rowColor(y, height)))
		stars := s.starsInRow(y, width)

		line := ""
		if i := y - top; i >= 0 && i < len(lines) {
			line = lines[i]
		}
		lw := lipgloss.Width(line)
		left := 0
		if width > lw {
			left = (width - lw) / 2
		}
		right := width - lw - left

		b.WriteString(s.fill(bg, stars, 0, left))
		b.WriteString(line)
		b.WriteString(s.fill(bg, stars, left+lw, right))
		if y < height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (s sky) fill(bg lipgloss.Style, stars map[int]bool, from, n int) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	for x := from; x < from+n; x++ {
		if stars[x] {
			b.WriteString(s.star.Inherit(bg).Render(s.glyph))
			continue
		}
		b.WriteString(bg.Render(" "))
	}
	return b.String()
}
