package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Menu entries
const (
	menuPlay = iota
	menuLevel
	menuScores
	menuQuit
)

var menuLabels = []string{"Play", "Start level", "High scores", "Quit"}

// Campaign describes the game the menu starts.
type Campaign struct {
	GameID string
	Title  string
	Levels []string // Level names in play order
}

// CampaignOf builds a Campaign for a registered game.
func CampaignOf(game registry.Game, levels []string) Campaign {
	return Campaign{GameID: game.ID(), Title: game.Title(), Levels: levels}
}

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	title          string
	levels         []string
	level          int
	cursor         int
	width          int
	height         int
	best           int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	play           bool
	openScoreboard bool
}

// NewMenuModel creates a title menu. The player may start from any level
// of the campaign.
func NewMenuModel(c Campaign, store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		title:     c.Title,
		levels:    c.Levels,
		level:     core.Clamp(cfg.Level, 0, core.Max(len(c.Levels)-1, 0)),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	if store != nil {
		if best, err := store.HighScore(c.GameID); err == nil {
			m.best = best
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuLabels)-1 {
			m.cursor++
		}

	case MenuActionLeft:
		if m.cursor == menuLevel && m.level > 0 {
			m.level--
		}

	case MenuActionRight:
		if m.cursor == menuLevel && m.level < len(m.levels)-1 {
			m.level++
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch m.cursor {
		case menuPlay, menuLevel:
			m.play = true
			m.config.Level = m.level
		case menuScores:
			m.openScoreboard = true
		case menuQuit:
			m.quitting = true
		}
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	selStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(spaced(m.title)), m.width))
	b.WriteString("\n\n")
	if m.best > 0 {
		b.WriteString(centerText(dimStyle.Render(fmt.Sprintf("Best: %d", m.best)), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, label := range menuLabels {
		line := label
		if i == menuLevel && len(m.levels) > 0 {
			line = fmt.Sprintf("%s: < %d. %s >", label, m.level+1, m.levels[m.level])
		}
		if i == m.cursor {
			line = selStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Left/Right: Level  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// spaced puts a space between letters for the title banner.
func spaced(s string) string {
	return strings.Join(strings.Split(strings.ToUpper(s), ""), " ")
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Config          core.RuntimeConfig
	Play            bool
	WantsScoreboard bool
	Quit            bool
}

func (m MenuModel) result() MenuResult {
	return MenuResult{
		Config:          m.config,
		Play:            m.play,
		WantsScoreboard: m.openScoreboard,
		Quit:            m.quitting || (!m.play && !m.openScoreboard),
	}
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(c Campaign, store *storage.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(c, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.result(), nil
}
