package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// EventSink receives the events produced by every simulated tick.
// The sound player implements it.
type EventSink interface {
	Handle(events []core.Event)
}

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	recorder  *storage.Recorder
	sink      EventSink
	config    core.RuntimeConfig
	held      *HeldKeys
	keyMapper *KeyMapper
	throttle  *core.Throttle
	gameState core.GameState

	standalone bool // Back quits instead of returning to a menu
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for the given game. sink may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, sink EventSink) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		recorder:  storage.NewRecorder(store, game.ID(), ""),
		sink:      sink,
		config:    cfg,
		held:      NewHeldKeys(DefaultHoldTicks),
		keyMapper: NewKeyMapper(),
		throttle:  core.NewThrottle(cfg.FrameSkip),
	}
}

// WithPlayer sets the name recorded with finished runs.
func (m GameModel) WithPlayer(name string) GameModel {
	if name != "" {
		m.recorder = storage.NewRecorder(m.store, m.game.ID(), name)
	}
	return m
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The renderer scales the world to any size; no reset needed.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToHeld(msg, m.held) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game only when nothing is running underneath.
	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack &&
		(m.gameState.GameOver || m.gameState.Paused || !m.gameState.Started) {
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if !m.throttle.Allow() {
		return m, tickCmd(m.config.TickRate)
	}

	in := m.held.Frame()

	// A finished campaign restarts from the configured level.
	if m.gameState.GameOver && in.Has(core.ActionReset) {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.recorder.Restart()
		m.held.Reset()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(in)
	m.gameState = result.State

	//nolint:errcheck // Best-effort save, game continues regardless
	m.recorder.Observe(result)
	if m.sink != nil && len(result.Events) > 0 {
		m.sink.Handle(result.Events)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".platformer", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, sink EventSink) error {
	model := NewGameModel(game, store, cfg, sink)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
