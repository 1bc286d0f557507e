package platformer

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Lifecycle states
const (
	StateNotStarted = "not_started" // Waiting for the start action
	StateRunning    = "running"     // Simulation advancing
	StatePaused     = "paused"      // Input sampled, nothing advances
	StateWon        = "won"         // Last level cleared, simulation halted
)

// configPath stores the custom config path set via CLI
var configPath string

// levelsDir stores the level pack directory set via CLI
var levelsDir string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelsDir makes new games load their levels from a YAML pack.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// Game owns the World and advances it one tick per Step.
type Game struct {
	cfg    config.PlatformerConfig
	levels []levels.Template
	fixed  bool // cfg and levels were supplied by the caller

	runtime    core.RuntimeConfig
	world      World
	state      string
	resetTimer int // ticks until the death reset, 0 when none pending
	prevInput  core.InputFrame
	events     []core.Event
	rng        *rand.Rand
	logger     *log.Logger

	// Player box before this tick's integration, used to tell which side
	// of a solid or an enemy the player came from.
	prevPlayer core.Box
	falling    bool
}

// New creates a game that loads its config and levels on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with explicit constants and levels.
// The templates are copied; later changes by the caller are not seen.
func NewWithConfig(cfg config.PlatformerConfig, lvls []levels.Template) *Game {
	return &Game{cfg: cfg, levels: levels.CloneAll(lvls), fixed: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sky Runner"
}

// SetLogger attaches a logger for lifecycle diagnostics. Nil disables logging.
func (g *Game) SetLogger(l *log.Logger) {
	g.logger = l
}

// Reset initializes the game for a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixed {
		cfg, err := config.LoadPlatformer(configPath)
		if err != nil {
			g.debug("config fallback", "error", err)
			cfg = config.DefaultPlatformerConfig()
		}
		g.cfg = cfg
		g.levels = g.loadLevels()
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness, not security
	g.state = StateNotStarted
	g.resetTimer = 0
	g.prevInput = core.NewInputFrame()
	g.events = nil
	g.world = World{}
	g.world.Player = g.newPlayer()

	start := core.Clamp(runtime.Level, 0, len(g.levels)-1)
	g.loadLevel(start)
	g.events = nil
}

func (g *Game) loadLevels() []levels.Template {
	if levelsDir != "" {
		pack, err := levels.NewLoader(levelsDir, g.cfg.World.GroundY).LoadAll()
		if err == nil && len(pack) > 0 {
			return pack
		}
		g.debug("level pack fallback", "dir", levelsDir, "error", err)
	}
	return levels.Builtin(g.cfg.World.GroundY)
}

// Start leaves the not-started state. It has no effect otherwise.
func (g *Game) Start() {
	if g.state == StateNotStarted {
		g.state = StateRunning
	}
}

// LevelCount returns the number of levels in the campaign.
func (g *Game) LevelCount() int {
	return len(g.levels)
}

// Levels returns a copy of the campaign templates.
func (g *Game) Levels() []levels.Template {
	return levels.CloneAll(g.levels)
}

// LoadLevel instantiates level index, or ends the run with a win when index
// is past the last level.
func (g *Game) LoadLevel(index int) {
	g.loadLevel(index)
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	prev := g.prevInput
	g.prevInput = in.Clone()

	switch g.state {
	case StateNotStarted:
		if in.Pressed(prev, core.ActionConfirm) || in.Pressed(prev, core.ActionJump) {
			g.state = StateRunning
		}
		return g.result()
	case StateWon:
		return g.result()
	}

	// Pause toggle
	if in.Pressed(prev, core.ActionPause) {
		if g.state == StatePaused {
			g.state = StateRunning
			g.emit(core.Event{Kind: core.EventResumed})
		} else {
			g.state = StatePaused
			g.emit(core.Event{Kind: core.EventPaused})
		}
	}
	if g.state == StatePaused {
		return g.result()
	}

	// The world holds still between a death and its reset.
	if g.resetTimer > 0 {
		g.resetTimer--
		if g.resetTimer == 0 {
			g.fullReset("defeat")
		}
		return g.result()
	}

	if in.Pressed(prev, core.ActionReset) {
		g.fullReset("manual")
		return g.result()
	}

	g.world.Tick++

	g.tickTimers()
	g.updatePlayer(in)
	g.movePlayer()
	g.updateEnemies()
	g.updateProjectiles()
	g.updateCompanion()
	g.checkLevelEnd()
	g.animatePlayer()

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Player.Score,
		Coins:    g.world.Player.Coins,
		Level:    g.world.LevelIndex,
		GameOver: g.state == StateWon,
		Paused:   g.state == StatePaused,
		Started:  g.state != StateNotStarted,
	}
}

// Lifecycle returns the lifecycle state name.
func (g *Game) Lifecycle() string {
	return g.state
}

// World returns the live world for read-only inspection.
// Callers must not keep the pointer across Step calls.
func (g *Game) World() *World {
	return &g.world
}

// ResetPending reports whether a death reset is scheduled.
func (g *Game) ResetPending() bool {
	return g.resetTimer > 0
}

// checkLevelEnd moves to the next level once the player passes the end line.
func (g *Game) checkLevelEnd() {
	if g.state != StateRunning || g.resetTimer > 0 {
		return
	}
	// An end line past the last reachable x counts as the world edge.
	p := &g.world.Player
	if p.X < min(g.world.EndX, g.world.WorldWidth-p.W) {
		return
	}

	g.emit(core.Event{Kind: core.EventLevelComplete, Amount: g.world.Player.Score, Source: g.world.LevelID})
	g.loadLevel(g.world.LevelIndex + 1)
}

// fullReset reloads the current level and zeroes score and coins.
func (g *Game) fullReset(reason string) {
	g.resetTimer = 0
	g.loadLevel(g.world.LevelIndex)
	g.world.Player.Score = 0
	g.world.Player.Coins = 0
	g.emit(core.Event{Kind: core.EventReset, Source: reason})
	g.debug("game reset", "reason", reason, "level", g.world.LevelIndex)
}

func (g *Game) emit(e core.Event) {
	e.Level = g.world.LevelIndex
	g.events = append(g.events, e)
}

func (g *Game) debug(msg string, keyvals ...interface{}) {
	if g.logger != nil {
		g.logger.Debug(msg, keyvals...)
	}
}

func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}
