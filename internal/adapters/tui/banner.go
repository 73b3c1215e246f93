package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/skycast/internal/domain"
)

// bannerExpiredMsg is delivered when a banner's display time runs out.
type bannerExpiredMsg struct {
	token string
}

// Banner is the transient confirmation overlay. Every Show gets its own
// token; an expiry carrying an older token is ignored, so a newer
// confirmation is never hidden early by the timer of a previous one.
type Banner struct {
	duration time.Duration
	message  string
	token    string
	visible  bool
}

// NewBanner returns a hidden banner that stays up for d after each Show.
func NewBanner(d time.Duration) Banner {
	return Banner{duration: d}
}

// Show replaces the banner text with c's message, makes it visible and
// schedules its expiry.
func (b *Banner) Show(c domain.Confirmation) tea.Cmd {
	b.message = c.Message
	b.token = c.ID
	b.visible = true

	token := c.ID
	return tea.Tick(b.duration, func(time.Time) tea.Msg {
		return bannerExpiredMsg{token: token}
	})
}

// Expire hides the banner if token belongs to the confirmation on
// display. It reports whether the banner went from visible to hidden.
func (b *Banner) Expire(token string) bool {
	if !b.visible || token != b.token {
		return false
	}
	b.visible = false
	return true
}

// Visible reports whether the banner is on screen.
func (b Banner) Visible() bool {
	return b.visible
}

// Message returns the text of the last confirmation shown.
func (b Banner) Message() string {
	return b.message
}

func (b Banner) view(s styles) string {
	if !b.visible {
		return ""
	}
	return s.banner.Render(b.message)
}
