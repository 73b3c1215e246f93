package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings of the forecast screen and its panels.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Jump      key.Binding
	Secret    key.Binding
	Inc       key.Binding
	Dec       key.Binding
	Filter    key.Binding
	Dismiss   key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// ShortHelp implements help.KeyMap. The secret-mode shortcut stays out of
// help output.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Jump},
		{k.Help, k.Quit},
	}
}

// panelKeys is the help shown while a panel is open.
type panelKeys struct {
	bindings []key.Binding
}

func (p panelKeys) ShortHelp() []key.Binding  { return p.bindings }
func (p panelKeys) FullHelp() [][]key.Binding { return [][]key.Binding{p.bindings} }

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "select"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "day"),
		),
		Secret: key.NewBinding(
			key.WithKeys("."),
		),
		Inc: key.NewBinding(
			key.WithKeys("+", "=", "right", "l", "up", "k"),
			key.WithHelp("+/→", "raise"),
		),
		Dec: key.NewBinding(
			key.WithKeys("-", "left", "h", "down", "j"),
			key.WithHelp("-/←", "lower"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}
