package tui

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/skycast/internal/config"
	"github.com/xvierd/skycast/internal/domain"
)

func TestNewModel(t *testing.T) {
	m := NewModel(domain.DefaultForecast(), Options{})

	if m.Secret() {
		t.Error("secret mode should start off")
	}
	if m.OpenPanel() != domain.PanelNone {
		t.Error("no panel should be open")
	}
	if m.Banner().Visible() {
		t.Error("banner should start hidden")
	}
	if len(m.contacts) != len(domain.DefaultContacts) {
		t.Errorf("expected default contacts, got %v", m.contacts)
	}
	if m.banner.duration != config.DefaultBannerDuration {
		t.Errorf("expected default banner duration, got %v", m.banner.duration)
	}
}

func TestModel_View_Loading(t *testing.T) {
	m := NewModel(domain.DefaultForecast(), Options{})
	if got := m.View(); got != "Loading..." {
		t.Errorf("expected loading view before first resize, got %q", got)
	}
}

func TestModel_View(t *testing.T) {
	m := newTestModel(Options{})
	view := m.View()

	for _, want := range []string{
		"My Location",
		"63° | Clear",
		"DAILY FORECAST",
		"56°F",
		"Air Quality",
		"Precipitation",
		"UV Index",
		"Secret Mode",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_View_PanelSheets(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"1", []string{"Conditions", "75°F | Clear", "Activity level: 1", "Enter"}},
		{"2", []string{"Emergency Location", "75°F | Clear", "Send Location"}},
		{"3", []string{"Select Contact", "Mom", "Friend", "Send to Mom"}},
		{"6", []string{"Confirm Safety", "Send Safe Notification"}},
	}
	for _, tt := range tests {
		m, _ := press(newTestModel(Options{}), tt.key)
		view := m.View()
		for _, want := range tt.want {
			if !strings.Contains(view, want) {
				t.Errorf("panel %s view missing %q", tt.key, want)
			}
		}
		if strings.Contains(view, "DAILY FORECAST") {
			t.Errorf("panel %s should cover the forecast list", tt.key)
		}
	}
}

func TestModel_View_ShowsBanner(t *testing.T) {
	m, c, _ := submitPanel(t, newTestModel(Options{}), "6", "enter")
	if !strings.Contains(m.View(), c.Message) {
		t.Error("view should include the banner message")
	}
}

func TestModel_ReloadPicksUpEdits(t *testing.T) {
	f := domain.DefaultForecast()
	f.Location = "Harbor"
	m := newTestModel(Options{
		Reload:      func() (domain.Forecast, error) { return f, nil },
		ReloadEvery: time.Millisecond,
	})

	msgs := runCmd(m.Init())
	if len(msgs) != 1 {
		t.Fatalf("expected one reload message, got %d", len(msgs))
	}
	next, cmd := m.Update(msgs[0])
	if !strings.Contains(next.(Model).View(), "Harbor") {
		t.Error("expected reloaded location in view")
	}
	if cmd == nil {
		t.Error("expected the next reload to be scheduled")
	}
}

func TestModel_ReloadErrorKeepsForecast(t *testing.T) {
	m := newTestModel(Options{
		Reload:      func() (domain.Forecast, error) { return domain.Forecast{}, errors.New("db locked") },
		ReloadEvery: time.Millisecond,
	})

	next, cmd := m.Update(runCmd(m.Init())[0])
	if !strings.Contains(next.(Model).View(), "My Location") {
		t.Error("failed reload should keep the forecast on display")
	}
	if cmd == nil {
		t.Error("expected reloads to continue after a failure")
	}
}

func TestModel_NoReloadWithoutLoader(t *testing.T) {
	if cmd := newTestModel(Options{ReloadEvery: time.Millisecond}).Init(); cmd != nil {
		t.Error("expected no reload without a loader")
	}
}

func TestResolveTheme(t *testing.T) {
	got := resolveTheme(nil)
	if got != config.DefaultThemeConfig() {
		t.Error("nil theme should resolve to defaults")
	}

	partial := &config.ThemeConfig{ColorAccent: "#FF0000"}
	got = resolveTheme(partial)
	if got.ColorAccent != "#FF0000" {
		t.Errorf("expected override kept, got %s", got.ColorAccent)
	}
	if got.ColorSkyTop != "#000033" {
		t.Errorf("expected default sky top, got %s", got.ColorSkyTop)
	}
}

func TestBanner_ExpireOnce(t *testing.T) {
	b := NewBanner(time.Millisecond)
	c := domain.SafeConfirmation()
	b.Show(c)

	if !b.Expire(c.ID) {
		t.Error("first expiry should hide the banner")
	}
	if b.Expire(c.ID) {
		t.Error("second expiry should not transition again")
	}
	if b.Visible() {
		t.Error("banner should be hidden")
	}
}

func TestBanner_ShowReplacesMessage(t *testing.T) {
	b := NewBanner(time.Second)
	first := domain.EmergencyConfirmation()
	second := domain.WatchConfirmation("Dad")
	b.Show(first)
	b.Show(second)

	if b.Message() != second.Message {
		t.Errorf("expected %q, got %q", second.Message, b.Message())
	}
	if b.Expire(first.ID) {
		t.Error("expiry for a replaced confirmation should be ignored")
	}
}

func TestSky_Deterministic(t *testing.T) {
	s := newSky(42, 20, true, "#000033", "#000066", "#FFFFFF", "*")
	a := s.render("hello", 30, 8)
	b := s.render("hello", 30, 8)
	if a != b {
		t.Error("same seed and size should render identically")
	}
	if !strings.Contains(a, "hello") {
		t.Error("content should be drawn on the sky")
	}
	if lines := strings.Count(a, "\n") + 1; lines != 8 {
		t.Errorf("expected 8 rows, got %d", lines)
	}
}

func TestSky_Gradient(t *testing.T) {
	s := newSky(1, 0, false, "#000033", "#000066", "#FFFFFF", "*")
	if got := s.rowColor(0, 10); got != "#000033" {
		t.Errorf("expected top #000033, got %s", got)
	}
	if got := s.rowColor(9, 10); got != "#000066" {
		t.Errorf("expected bottom #000066, got %s", got)
	}
}

func TestSky_StarDensity(t *testing.T) {
	off := newSky(7, 50, false, "#000033", "#000066", "#FFFFFF", "*")
	if n := len(off.starsInRow(0, 40)); n != 0 {
		t.Errorf("disabled star field should be empty, got %d stars", n)
	}
	full := newSky(7, 100, true, "#000033", "#000066", "#FFFFFF", "*")
	if n := len(full.starsInRow(0, 40)); n != 40 {
		t.Errorf("full density should fill the row, got %d stars", n)
	}
}

func TestScreen_RunStopsOnContextCancel(t *testing.T) {
	s := NewScreen(config.DefaultConfig(), false).(*Screen)
	s.programOpt = []tea.ProgramOption{tea.WithInput(nil), tea.WithOutput(io.Discard)}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, domain.DefaultForecast())
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("screen did not stop after context cancel")
	}
}

func TestScreen_StopBeforeRun(t *testing.T) {
	s := NewScreen(nil, true)
	s.Stop()
}
