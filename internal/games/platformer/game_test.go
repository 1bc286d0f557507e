package platformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

func TestRegistered(t *testing.T) {
	g, err := registry.Create("platformer")
	if err != nil {
		t.Fatalf("platformer should be registered: %v", err)
	}
	if g.ID() != "platformer" {
		t.Errorf("ID should be platformer, got %q", g.ID())
	}
}

func TestNotStartedIgnoresMovement(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	g := NewWithConfig(cfg, []levels.Template{flatLevel("flat")})
	g.Reset(core.DefaultConfig())

	x := g.World().Player.X
	res := g.Step(core.InputOf(core.ActionRight))
	if res.State.Started {
		t.Error("Game should not start on movement input")
	}
	if g.World().Player.X != x {
		t.Errorf("Player should not move before start, got x=%.1f want %.1f", g.World().Player.X, x)
	}

	g.Step(core.InputOf(core.ActionConfirm))
	if g.Lifecycle() != StateRunning {
		t.Errorf("Confirm should start the game, got %s", g.Lifecycle())
	}
}

func TestJumpStartsGame(t *testing.T) {
	g := NewWithConfig(config.DefaultPlatformerConfig(), []levels.Template{flatLevel("flat")})
	g.Reset(core.DefaultConfig())
	g.Step(core.InputOf(core.ActionJump))
	if g.Lifecycle() != StateRunning {
		t.Errorf("Jump should start the game, got %s", g.Lifecycle())
	}
}

func TestPauseToggle(t *testing.T) {
	g := newRunningGame(t, nil)

	res := g.Step(core.InputOf(core.ActionPause))
	require.True(t, res.State.Paused)
	assert.True(t, hasEvent(res.Events, core.EventPaused))

	x := g.World().Player.X
	tick := g.World().Tick
	for range 10 {
		g.Step(core.InputOf(core.ActionRight))
	}
	assert.Equal(t, x, g.World().Player.X, "paused world must not advance")
	assert.Equal(t, tick, g.World().Tick)

	// Holding pause across frames toggles once.
	g.Step(core.InputOf(core.ActionPause))
	res = g.Step(core.InputOf(core.ActionPause))
	assert.False(t, res.State.Paused)
	assert.Empty(t, res.Events)

	res = g.Step(core.InputOf(core.ActionRight))
	assert.Greater(t, g.World().Player.X, x)
}

// A player walking right from x=0 reaches the end line and the next level
// is instantiated.
func TestReachingEndLoadsNextLevel(t *testing.T) {
	g := newRunningGame(t, func(c *config.PlatformerConfig) {
		c.Player.SpawnX = 0
	}, flatLevel("one"), flatLevel("two"))

	require.Equal(t, 0.0, g.World().Player.X)

	completed := false
	for i := 0; i < 5000 && !completed; i++ {
		res := g.Step(core.InputOf(core.ActionRight))
		completed = hasEvent(res.Events, core.EventLevelComplete)
	}

	require.True(t, completed, "player should reach the end line")
	assert.Equal(t, 1, g.World().LevelIndex)
	assert.Equal(t, "two", g.World().LevelID)
	assert.Equal(t, 0.0, g.World().Player.X, "player respawns on the new level")
	assert.Equal(t, StateRunning, g.Lifecycle())
}

// An end line at the world edge is still reachable even though the player
// clamps one body width short of it.
func TestEndLineAtWorldEdgeCompletes(t *testing.T) {
	edge := levels.Template{ID: "edge", Name: "edge", WorldWidth: 1000, EndX: 1000}
	require.NoError(t, edge.Validate())

	g := newRunningGame(t, func(c *config.PlatformerConfig) {
		c.Player.SpawnX = 0
	}, edge, flatLevel("next"))

	completed := false
	for i := 0; i < 2000 && !completed; i++ {
		res := g.Step(core.InputOf(core.ActionRight))
		completed = hasEvent(res.Events, core.EventLevelComplete)
	}

	require.True(t, completed, "edge end line should complete the level")
	assert.Equal(t, 1, g.World().LevelIndex)
	assert.Equal(t, "next", g.World().LevelID)
}

func TestLoadingPastLastLevelWins(t *testing.T) {
	g := newRunningGame(t, nil)
	g.world.Player.Score = 1234

	g.LoadLevel(g.LevelCount())

	assert.Equal(t, StateWon, g.Lifecycle())
	assert.Equal(t, 1234, g.State().Score, "loading must not change score")
	assert.True(t, g.State().GameOver)
	require.Len(t, g.events, 1)
	assert.Equal(t, core.EventWon, g.events[0].Kind)
	assert.Equal(t, 1234, g.events[0].Amount)

	// Simulation is halted.
	tick := g.World().Tick
	g.Step(core.InputOf(core.ActionRight))
	assert.Equal(t, tick, g.World().Tick)
}

func TestFinishingCampaignWins(t *testing.T) {
	g := newRunningGame(t, func(c *config.PlatformerConfig) {
		c.Player.SpawnX = 2990
	})

	var res core.StepResult
	for range 20 {
		res = g.Step(core.InputOf(core.ActionRight))
		if res.State.GameOver {
			break
		}
	}
	assert.True(t, res.State.GameOver)
	assert.True(t, hasEvent(res.Events, core.EventLevelComplete))
	assert.True(t, hasEvent(res.Events, core.EventWon))
}

func TestDefeatSchedulesReset(t *testing.T) {
	g := newRunningGame(t, nil)
	g.world.Player.Score = 500
	g.world.Player.Coins = 3
	g.world.Player.X = 700

	require.True(t, g.takeDamage(g.world.Player.Health+50, "test"))
	assert.Equal(t, 0, g.world.Player.Health, "health clamps at zero")
	assert.True(t, g.ResetPending())
	assert.True(t, hasEvent(g.events, core.EventPlayerDefeated))

	// Further damage while down is ignored.
	assert.False(t, g.takeDamage(10, "test"))

	delay := g.cfg.Health.ResetDelay
	var res core.StepResult
	for i := 0; i < delay; i++ {
		res = g.Step(empty())
		if i < delay-1 {
			require.Equal(t, 500, res.State.Score, "world holds still until the reset")
		}
	}

	assert.True(t, hasEvent(res.Events, core.EventReset))
	assert.False(t, g.ResetPending())
	assert.Equal(t, 0, res.State.Score)
	assert.Equal(t, 0, res.State.Coins)
	assert.Equal(t, g.world.Player.MaxHealth, g.world.Player.Health)
	assert.Equal(t, g.cfg.Player.SpawnX, g.world.Player.X)
	assert.Equal(t, StateRunning, g.Lifecycle())
}

func TestManualReset(t *testing.T) {
	g := newRunningGame(t, nil)
	for range 30 {
		g.Step(core.InputOf(core.ActionRight))
	}
	g.world.Player.Score = 900

	res := g.Step(core.InputOf(core.ActionReset))
	assert.True(t, hasEvent(res.Events, core.EventReset))
	assert.Equal(t, 0, res.State.Score)
	assert.Equal(t, g.cfg.Player.SpawnX, g.world.Player.X)
}

func TestBoundsHoldEveryTick(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	g := NewWithConfig(cfg, levels.Builtin(cfg.World.GroundY))
	g.Reset(core.RuntimeConfig{Seed: 7})
	g.Start()

	for i := 0; i < 3000; i++ {
		in := core.InputOf(core.ActionRight)
		if i%90 < 50 {
			in.Set(core.ActionJump)
		}
		if i%7 == 0 {
			in.Set(core.ActionShoot)
		}
		if i%300 > 250 {
			in.Set(core.ActionRun)
		}
		g.Step(in)

		p := g.World().Player
		if p.Flight < 0 || p.Flight > p.FlightMax {
			t.Fatalf("tick %d: flight %.2f outside [0, %.2f]", i, p.Flight, p.FlightMax)
		}
		if p.Health < 0 || p.Health > p.MaxHealth {
			t.Fatalf("tick %d: health %d outside [0, %d]", i, p.Health, p.MaxHealth)
		}
		if p.X < 0 || p.Right() > g.World().WorldWidth {
			t.Fatalf("tick %d: player x %.2f outside world", i, p.X)
		}
		if g.Lifecycle() == StateWon {
			break
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() uint64 {
		cfg := config.DefaultPlatformerConfig()
		g := NewWithConfig(cfg, levels.Builtin(cfg.World.GroundY))
		g.Reset(core.RuntimeConfig{Seed: 99})
		g.Start()
		for i := 0; i < 1500; i++ {
			in := core.InputOf(core.ActionRight)
			if i%60 < 20 {
				in.Set(core.ActionJump)
			}
			if i%11 == 0 {
				in.Set(core.ActionShoot)
			}
			g.Step(in)
		}
		return g.Hash()
	}

	h1, h2 := run(), run()
	if h1 != h2 {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", h1, h2)
	}
}

func TestTemplatesNeverMutated(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	lvls := levels.Builtin(cfg.World.GroundY)
	want := levels.CloneAll(lvls)

	g := NewWithConfig(cfg, lvls)
	g.Reset(core.RuntimeConfig{Seed: 1})
	g.Start()
	for i := 0; i < 1200; i++ {
		in := core.InputOf(core.ActionRight, core.ActionShoot)
		if i%40 < 15 {
			in.Set(core.ActionJump)
		}
		g.Step(in)
	}
	// Mutate the live world directly as well.
	for i := range g.world.Blocks {
		g.world.Blocks[i].State = levels.BlockEmpty
	}
	for i := range g.world.Coins {
		g.world.Coins[i].Taken = true
	}

	assert.Equal(t, want, lvls, "caller's templates changed")
	assert.Equal(t, want, g.Levels(), "stored templates changed")

	g.LoadLevel(0)
	for i, b := range g.world.Blocks {
		assert.Equal(t, want[0].Blocks[i].State, b.State, "reload restores block %d", i)
	}
	for i, c := range g.world.Coins {
		assert.False(t, c.Taken, "reload restores coin %d", i)
	}
}

func TestSnapshotCopiesWorld(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	g := NewWithConfig(cfg, levels.Builtin(cfg.World.GroundY))
	g.Reset(core.RuntimeConfig{Seed: 3})
	g.Start()
	g.Step(core.InputOf(core.ActionRight))

	snap := g.Snapshot()
	if snap.Tick != g.World().Tick {
		t.Errorf("Snapshot tick should match world tick, got %d, want %d", snap.Tick, g.World().Tick)
	}
	if len(snap.Enemies) != len(g.World().Enemies) {
		t.Errorf("Snapshot should carry every enemy, got %d, want %d", len(snap.Enemies), len(g.World().Enemies))
	}

	snap.Coins[0].Taken = true
	if g.World().Coins[0].Taken {
		t.Error("Snapshot must not alias the world")
	}

	h := snap.Hash()
	g.Step(core.InputOf(core.ActionRight))
	next := g.Snapshot()
	if next.Hash() == h {
		t.Error("Hash should change when the world moves")
	}
}

// Velocity and elite state feed the hash even when no box has moved yet.
func TestHashCoversVelocityAndEliteState(t *testing.T) {
	g := newRunningGame(t, nil, levelWithEnemy(levels.Enemy{Kind: config.KindElite, X: 700, PatrolLeft: 500, PatrolRight: 900}))
	e := &g.world.Enemies[0]
	b := e.Elite()
	require.NotNil(t, b)

	changes := []struct {
		name   string
		mutate func()
	}{
		{"companion vx", func() { g.world.Companion.VX += 1 }},
		{"companion vy", func() { g.world.Companion.VY -= 2 }},
		{"enemy vx", func() { e.VX += 0.5 }},
		{"enemy facing", func() { e.Facing = -e.Facing }},
		{"elite state", func() { b.State = EliteRanged }},
		{"elite action timer", func() { b.ActionTimer += 7 }},
		{"elite melee cooldown", func() { b.MeleeCooldown += 3 }},
		{"elite ranged cooldown", func() { b.RangedCooldown += 3 }},
		{"elite fired", func() { b.Fired = !b.Fired }},
	}
	for _, c := range changes {
		before := g.Hash()
		c.mutate()
		assert.NotEqual(t, before, g.Hash(), c.name)
	}

	snap := g.Snapshot()
	require.NotNil(t, snap.Enemies[0].Elite)
	assert.Equal(t, EliteRanged.String(), snap.Enemies[0].Elite.State)
	assert.Equal(t, b.ActionTimer, snap.Enemies[0].Elite.ActionTimer)
}

func TestRenderDrawsHUDAndOverlay(t *testing.T) {
	g := newRunningGame(t, nil)
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.Row(0), "Score: 0")
	assert.Contains(t, screen.Row(1), "HP [")

	g.Step(core.InputOf(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")
}
