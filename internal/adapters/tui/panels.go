package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"
	"github.com/xvierd/skycast/internal/config"
	"github.com/xvierd/skycast/internal/domain"
)

// panelResult reports what a key press did to an open panel. A closed
// result with a nil confirmation is a dismissal.
type panelResult struct {
	closed       bool
	confirmation *domain.Confirmation
}

// stayOpen leaves the panel on screen.
var stayOpen = panelResult{}

// dismissed closes the panel without acting.
var dismissed = panelResult{closed: true}

func submitted(c domain.Confirmation) panelResult {
	return panelResult{closed: true, confirmation: &c}
}

// panelModel is one open action sheet. Panels never touch screen state;
// the screen applies the panelResult in the same Update that produced it.
type panelModel interface {
	Kind() domain.Panel
	Update(msg tea.KeyMsg) (panelModel, panelResult, tea.Cmd)
	View(theme config.ThemeConfig, s styles) string
	Help() panelKeys
}

// newPanel builds a fresh sub-model for p, so state never carries over
// between openings. It returns nil for PanelNone.
func newPanel(p domain.Panel, keys KeyMap, contacts []string) panelModel {
	switch p {
	case domain.PanelMonitor:
		return monitorPanel{keys: keys, level: domain.NewActivityLevel()}
	case domain.PanelEmergency:
		return emergencyPanel{keys: keys}
	case domain.PanelWatch:
		return newWatchPanel(keys, contacts)
	case domain.PanelSafe:
		return safePanel{keys: keys}
	default:
		return nil
	}
}

func actionButton(s styles, label string) string {
	return s.primary.Render(label)
}

// monitorPanel collects an activity level between 1 and 5.
type monitorPanel struct {
	keys  KeyMap
	level domain.ActivityLevel
}

func (p monitorPanel) Kind() domain.Panel { return domain.PanelMonitor }

func (p monitorPanel) Update(msg tea.KeyMsg) (panelModel, panelResult, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Dismiss):
		return p, dismissed, nil
	case key.Matches(msg, p.keys.Inc):
		p.level = p.level.Increment()
	case key.Matches(msg, p.keys.Dec):
		p.level = p.level.Decrement()
	case key.Matches(msg, p.keys.Select):
		return p, submitted(domain.MonitorConfirmation(p.level)), nil
	}
	return p, stayOpen, nil
}

func (p monitorPanel) View(_ config.ThemeConfig, s styles) string {
	dec, inc := s.disabled.Render("[-]"), s.disabled.Render("[+]")
	if p.level.CanDecrement() {
		dec = s.live.Render("[-]")
	}
	if p.level.CanIncrement() {
		inc = s.live.Render("[+]")
	}
	stepper := fmt.Sprintf("%s  %s  %s", dec,
		s.hero.Render(fmt.Sprintf("Activity level: %d", int(p.level))), inc)

	return lipgloss.JoinVertical(lipgloss.Center,
		s.hero.Render(domain.PanelMonitor.Title()),
		"",
		s.text.Render(domain.PanelConditions),
		"",
		stepper,
		"",
		actionButton(s, domain.PanelMonitor.ActionLabel()),
	)
}

func (p monitorPanel) Help() panelKeys {
	return panelKeys{bindings: []key.Binding{p.keys.Dec, p.keys.Inc, p.keys.Select, p.keys.Dismiss}}
}

// emergencyPanel sends the (simulated) location to emergency services.
type emergencyPanel struct {
	keys KeyMap
}

func (p emergencyPanel) Kind() domain.Panel { return domain.PanelEmergency }

func (p emergencyPanel) Update(msg tea.KeyMsg) (panelModel, panelResult, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Dismiss):
		return p, dismissed, nil
	case key.Matches(msg, p.keys.Select):
		return p, submitted(domain.EmergencyConfirmation()), nil
	}
	return p, stayOpen, nil
}

func (p emergencyPanel) View(theme config.ThemeConfig, s styles) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		s.hero.Render(domain.PanelEmergency.Title()),
		"",
		renderMap(theme, s),
		"",
		s.text.Render(domain.PanelConditions),
		"",
		actionButton(s, domain.PanelEmergency.ActionLabel()),
	)
}

func (p emergencyPanel) Help() panelKeys {
	return panelKeys{bindings: []key.Binding{p.keys.Select, p.keys.Dismiss}}
}

// watchPanel sends the location to one contact picked from a list.
type watchPanel struct {
	keys      KeyMap
	contacts  []string
	matches   []int
	cursor    int
	filtering bool
	filter    textinput.Model
}

func newWatchPanel(keys KeyMap, contacts []string) watchPanel {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter contacts"
	ti.CharLimit = 32
	ti.Cursor.SetMode(cursor.CursorStatic)

	p := watchPanel{
		keys:     keys,
		contacts: contacts,
		filter:   ti,
	}
	p.matches = p.allContacts()
	return p
}

func (p watchPanel) allContacts() []int {
	idx := make([]int, len(p.contacts))
	for i := range p.contacts {
		idx[i] = i
	}
	return idx
}

func (p watchPanel) Kind() domain.Panel { return domain.PanelWatch }

// selected returns the highlighted contact, if any.
func (p watchPanel) selected() (string, bool) {
	if p.cursor < 0 || p.cursor >= len(p.matches) {
		return "", false
	}
	return p.contacts[p.matches[p.cursor]], true
}

func (p watchPanel) refilter() watchPanel {
	query := strings.TrimSpace(p.filter.Value())
	if query == "" {
		p.matches = p.allContacts()
	} else {
		found := fuzzy.Find(query, p.contacts)
		p.matches = make([]int, 0, len(found))
		for _, m := range found {
			p.matches = append(p.matches, m.Index)
		}
	}
	p.cursor = 0
	return p
}

func (p watchPanel) Update(msg tea.KeyMsg) (panelModel, panelResult, tea.Cmd) {
	if p.filtering {
		switch msg.Type {
		case tea.KeyEsc:
			p.filtering = false
			p.filter.Blur()
			p.filter.Reset()
			return p.refilter(), stayOpen, nil
		case tea.KeyEnter:
			return p.send()
		case tea.KeyUp:
			return p.move(-1), stayOpen, nil
		case tea.KeyDown:
			return p.move(1), stayOpen, nil
		}
		var cmd tea.Cmd
		p.filter, cmd = p.filter.Update(msg)
		return p.refilter(), stayOpen, cmd
	}

	switch {
	case key.Matches(msg, p.keys.Dismiss):
		return p, dismissed, nil
	case key.Matches(msg, p.keys.Filter):
		p.filtering = true
		cmd := p.filter.Focus()
		return p, stayOpen, cmd
	case key.Matches(msg, p.keys.Up):
		return p.move(-1), stayOpen, nil
	case key.Matches(msg, p.keys.Down):
		return p.move(1), stayOpen, nil
	case key.Matches(msg, p.keys.Select):
		return p.send()
	}
	return p, stayOpen, nil
}

// move shifts the highlight by delta, stopping at either end of the list.
func (p watchPanel) move(delta int) watchPanel {
	next := p.cursor + delta
	if next >= 0 && next < len(p.matches) {
		p.cursor = next
	}
	return p
}

// send submits the highlighted contact. With nothing highlighted the
// panel stays open.
func (p watchPanel) send() (panelModel, panelResult, tea.Cmd) {
	contact, ok := p.selected()
	if !ok {
		return p, stayOpen, nil
	}
	return p, submitted(domain.WatchConfirmation(contact)), nil
}

func (p watchPanel) View(theme config.ThemeConfig, s styles) string {
	var list []string
	for i, idx := range p.matches {
		name := p.contacts[idx]
		if i == p.cursor {
			list = append(list, s.live.Render("▸ "+name))
			continue
		}
		list = append(list, s.text.Render("  "+name))
	}
	if len(list) == 0 {
		list = append(list, s.muted.Render("no matching contacts"))
	}

	parts := []string{
		s.hero.Render(domain.PanelWatch.Title()),
		"",
		renderMap(theme, s),
		"",
	}
	if p.filtering {
		parts = append(parts, p.filter.View(), "")
	}
	parts = append(parts, lipgloss.JoinVertical(lipgloss.Left, list...), "")

	if contact, ok := p.selected(); ok {
		parts = append(parts, actionButton(s, domain.PanelWatch.ActionLabel()+" "+contact))
	} else {
		parts = append(parts, s.disabled.Render(domain.PanelWatch.ActionLabel()))
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

func (p watchPanel) Help() panelKeys {
	return panelKeys{bindings: []key.Binding{p.keys.Up, p.keys.Down, p.keys.Filter, p.keys.Select, p.keys.Dismiss}}
}

// safePanel tells every contact the user is safe.
type safePanel struct {
	keys KeyMap
}

func (p safePanel) Kind() domain.Panel { return domain.PanelSafe }

func (p safePanel) Update(msg tea.KeyMsg) (panelModel, panelResult, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Dismiss):
		return p, dismissed, nil
	case key.Matches(msg, p.keys.Select):
		return p, submitted(domain.SafeConfirmation()), nil
	}
	return p, stayOpen, nil
}

func (p safePanel) View(_ config.ThemeConfig, s styles) string {
	return lipgloss.JoinVertical(lipgloss.Center,
		s.hero.Render(domain.PanelSafe.Title()),
		"",
		actionButton(s, domain.PanelSafe.ActionLabel()),
	)
}

func (p safePanel) Help() panelKeys {
	return panelKeys{bindings: []key.Binding{p.keys.Select, p.keys.Dismiss}}
}
