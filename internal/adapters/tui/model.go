package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/skycast/internal/config"
	"github.com/xvierd/skycast/internal/domain"
)

// secretButtonIndex is the cursor position of the secret-mode button,
// just past the seven forecast rows.
const secretButtonIndex = domain.DayCount

// Options configures a new Model.
type Options struct {
	Theme          *config.ThemeConfig
	Contacts       []string
	BannerDuration time.Duration
	Secret         bool
	Starfield      bool
	StarDensity    int
	Seed           uint64
	OnConfirm      func(domain.Confirmation)

	// Reload, when set, is polled every ReloadEvery so edits made with
	// "skycast forecast set" show up while the screen is open.
	Reload      func() (domain.Forecast, error)
	ReloadEvery time.Duration
}

// Model is the forecast screen. It owns the secret-mode flag, the single
// open panel and the banner; panels hand back a panelResult and never
// change this state themselves.
type Model struct {
	forecast    domain.Forecast
	secret      bool
	cursor      int
	panel       panelModel
	banner      Banner
	keys        KeyMap
	help        help.Model
	theme       config.ThemeConfig
	styles      styles
	sky         sky
	contacts    []string
	onConfirm   func(domain.Confirmation)
	reload      func() (domain.Forecast, error)
	reloadEvery time.Duration
	width       int
	height      int
	quitting    bool
}

// NewModel creates a screen showing forecast.
func NewModel(forecast domain.Forecast, opts Options) Model {
	theme := resolveTheme(opts.Theme)
	contacts := opts.Contacts
	if len(contacts) == 0 {
		contacts = domain.DefaultContacts
	}
	d := opts.BannerDuration
	if d <= 0 {
		d = config.DefaultBannerDuration
	}
	return Model{
		forecast:  forecast,
		secret:    opts.Secret,
		banner:    NewBanner(d),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		theme:     theme,
		styles:    newStyles(theme),
		sky:       newSky(opts.Seed, opts.StarDensity, opts.Starfield, theme.ColorSkyTop, theme.ColorSkyBottom, theme.ColorStar, theme.IconStar),
		contacts:    contacts,
		onConfirm:   opts.OnConfirm,
		reload:      opts.Reload,
		reloadEvery: opts.ReloadEvery,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.scheduleReload()
}

// forecastMsg carries a freshly loaded forecast. A failed load keeps the
// forecast on display.
type forecastMsg struct {
	forecast domain.Forecast
	err      error
}

func (m Model) scheduleReload() tea.Cmd {
	if m.reload == nil || m.reloadEvery <= 0 {
		return nil
	}
	reload := m.reload
	return tea.Tick(m.reloadEvery, func(time.Time) tea.Msg {
		f, err := reload()
		return forecastMsg{forecast: f, err: err}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case bannerExpiredMsg:
		m.banner.Expire(msg.token)
		return m, nil

	case forecastMsg:
		if msg.err == nil {
			m.forecast = msg.forecast
		}
		return m, m.scheduleReload()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.panel != nil {
			return m.updatePanel(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// updatePanel routes msg to the open panel and applies its result before
// returning, so a panel that closes can never see another key.
func (m Model) updatePanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var res panelResult
	var cmd tea.Cmd
	m.panel, res, cmd = m.panel.Update(msg)
	if !res.closed {
		return m, cmd
	}
	m.closePanel()
	if res.confirmation == nil {
		return m, nil
	}
	return m.confirm(*res.confirmation)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < secretButtonIndex {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Secret):
		m.secret = !m.secret
	case key.Matches(msg, m.keys.Jump):
		d := domain.Day(int(msg.String()[0]-'1'))
		m.cursor = int(d)
		m.activate(d)
	case key.Matches(msg, m.keys.Select):
		if m.cursor == secretButtonIndex {
			m.secret = !m.secret
			return m, nil
		}
		m.activate(domain.Day(m.cursor))
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// activate handles a tap on day row d. Rows without a panel do nothing.
func (m *Model) activate(d domain.Day) {
	p := domain.PanelForDay(d)
	if !p.IsOpen() || m.panel != nil {
		return
	}
	m.panel = newPanel(p, m.keys, m.contacts)
}

func (m *Model) closePanel() {
	m.panel = nil
}

// confirm puts c on the banner and hands it to the OnConfirm callback.
func (m Model) confirm(c domain.Confirmation) (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{m.banner.Show(c)}
	if m.onConfirm != nil {
		cb := m.onConfirm
		cmds = append(cmds, func() tea.Msg {
			cb(c)
			return nil
		})
	}
	return m, tea.Batch(cmds...)
}

// Secret reports whether secret mode is on.
func (m Model) Secret() bool { return m.secret }

// OpenPanel returns the panel currently open, PanelNone if there is none.
func (m Model) OpenPanel() domain.Panel {
	if m.panel == nil {
		return domain.PanelNone
	}
	return m.panel.Kind()
}

// Banner returns the banner controller.
func (m Model) Banner() Banner { return m.banner }

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	var body string
	var helpView string
	if m.panel != nil {
		body = m.styles.sheet.Render(m.panel.View(m.theme, m.styles))
		helpView = m.help.View(m.panel.Help())
	} else {
		body = m.forecastView()
		helpView = m.help.View(m.keys)
	}

	parts := []string{body}
	if banner := m.banner.view(m.styles); banner != "" {
		parts = append(parts, "", banner)
	}
	parts = append(parts, "", helpView)
	content := lipgloss.JoinVertical(lipgloss.Center, parts...)

	return m.sky.render(content, m.width, m.height)
}

func (m Model) forecastView() string {
	header := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.title.Render(m.forecast.Location),
		m.styles.hero.Render(m.forecast.Current),
	)

	rows := []string{m.styles.caption.Render("DAILY FORECAST")}
	for _, d := range domain.AllDays() {
		rows = append(rows, m.dayRow(d))
	}
	list := lipgloss.JoinVertical(lipgloss.Left, rows...)

	secret := m.styles.secret
	if m.cursor == secretButtonIndex {
		secret = m.styles.secretOn
	}
	button := secret.Render(m.theme.IconLock + " Secret Mode")

	return lipgloss.JoinVertical(lipgloss.Center,
		header,
		"",
		list,
		"",
		renderSummary(m.forecast.Tiles, m.theme, m.styles),
		"",
		button,
	)
}

func (m Model) dayRow(d domain.Day) string {
	row, err := m.forecast.Row(d)
	if err != nil {
		row = domain.DailyForecast{Day: d}
	}
	label := domain.Label(d, m.secret)
	line := fmt.Sprintf("%s  %-16s %6s",
		m.styles.icon.Render(row.Icon),
		label,
		row.Temperature,
	)

	style := m.styles.row
	if m.cursor == int(d) {
		style = m.styles.rowFocus
	}
	return style.Render(strings.TrimRight(line, " "))
}
