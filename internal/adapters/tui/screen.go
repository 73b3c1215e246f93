package tui

import (
	"context"
	"fmt"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/skycast/internal/config"
	"github.com/xvierd/skycast/internal/domain"
	"github.com/xvierd/skycast/internal/ports"
)

// ReloadInterval is how often an open screen re-reads the forecast cache.
const ReloadInterval = 5 * time.Second

// Screen implements the ports.Screen interface using Bubbletea.
type Screen struct {
	program    *tea.Program
	opts       Options
	confirmCh  chan domain.Confirmation
	cancel     context.CancelFunc
	mu         sync.RWMutex
	wg         sync.WaitGroup
	onConfirm  func(domain.Confirmation)
	reload     func() (domain.Forecast, error)
	programOpt []tea.ProgramOption
}

// NewScreen creates a new TUI screen adapter from the loaded configuration.
func NewScreen(cfg *config.Config, secret bool) ports.Screen {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	theme := cfg.Theme
	return &Screen{
		opts: Options{
			Theme:          &theme,
			Contacts:       cfg.ContactList(),
			BannerDuration: cfg.BannerDuration(),
			Secret:         secret,
			Starfield:      cfg.Starfield.Enabled,
			StarDensity:    cfg.Starfield.Density,
			Seed:           uint64(time.Now().UnixNano()),
		},
		confirmCh:  make(chan domain.Confirmation, 10),
		programOpt: []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Run starts the screen and blocks until the user quits or ctx is done.
func (s *Screen) Run(ctx context.Context, forecast domain.Forecast) error {
	opts := s.opts
	opts.OnConfirm = func(c domain.Confirmation) {
		select {
		case s.confirmCh <- c:
		default:
		}
	}
	s.mu.RLock()
	opts.Reload = s.reload
	s.mu.RUnlock()
	if opts.Reload != nil {
		opts.ReloadEvery = ReloadInterval
	}
	model := NewModel(forecast, opts)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	s.program = tea.NewProgram(model, s.programOpt...)
	s.cancel = cancel
	callback := s.onConfirm
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case c := <-s.confirmCh:
				if callback != nil {
					callback(c)
				}
			}
		}
	}()

	// Handle context cancellation
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		<-ctx.Done()
		s.mu.RLock()
		program := s.program
		s.mu.RUnlock()
		if program != nil {
			program.Quit()
		}
	}()

	_, err := s.program.Run()
	cancel()
	s.wg.Wait()
	if err != nil {
		return fmt.Errorf("failed to run screen: %w", err)
	}
	return nil
}

// Stop gracefully stops the screen.
func (s *Screen) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	if s.program != nil {
		s.program.Quit()
	}
}

// SetOnConfirm sets a callback fired after every completed panel action.
// It must be called before Run.
func (s *Screen) SetOnConfirm(callback func(domain.Confirmation)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onConfirm = callback
}

// SetReload sets the function the screen polls for forecast edits.
// It must be called before Run.
func (s *Screen) SetReload(reload func() (domain.Forecast, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reload = reload
}
