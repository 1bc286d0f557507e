package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// loadLevel builds live entities for level index from its template.
// An index past the last level is the win condition, not an error.
func (g *Game) loadLevel(index int) {
	if index < 0 {
		index = 0
	}
	if index >= len(g.levels) {
		g.state = StateWon
		g.projectilesClear()
		g.emit(core.Event{Kind: core.EventWon, Amount: g.world.Player.Score})
		g.debug("game won", "score", g.world.Player.Score, "coins", g.world.Player.Coins)
		return
	}

	t := g.levels[index].Clone()
	w := &g.world
	w.LevelIndex = index
	w.LevelID = t.ID
	w.LevelName = t.Name
	w.WorldWidth = t.WorldWidth
	w.EndX = t.EndX

	w.Coins = make([]Coin, len(t.Coins))
	for i, c := range t.Coins {
		w.Coins[i] = Coin{X: c.X, Y: c.Y, R: c.R}
	}

	w.Platforms = make([]Platform, len(t.Platforms))
	for i, p := range t.Platforms {
		w.Platforms[i] = Platform{Box: core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}}
	}

	w.Blocks = make([]Block, len(t.Blocks))
	for i, b := range t.Blocks {
		w.Blocks[i] = Block{Box: core.Box{X: b.X, Y: b.Y, W: b.W, H: b.H}, Kind: b.Kind, State: b.State}
	}

	w.Powerups = make([]Powerup, len(t.Powerups))
	for i, p := range t.Powerups {
		w.Powerups[i] = Powerup{Box: core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}, Value: p.Value}
	}

	w.Enemies = make([]Enemy, len(t.Enemies))
	for i, e := range t.Enemies {
		w.Enemies[i] = g.newEnemy(e)
	}

	g.resetPlayer()
	g.resetCompanion()
	g.projectilesClear()
	w.CameraX = 0

	g.debug("level loaded", "index", index, "id", t.ID, "enemies", len(w.Enemies))
}

// newEnemy sizes an enemy by kind, stands it on the ground line and seeds
// its runtime fields.
func (g *Game) newEnemy(t levels.Enemy) Enemy {
	ec := g.cfg.Enemies
	stats := ec.Kind(t.Kind)
	size := ec.BaseSize * stats.Scale * ec.CharacterScale

	e := Enemy{
		Box:       core.Box{W: size, H: size},
		Kind:      t.Kind,
		VX:        t.VX,
		Alive:     true,
		Health:    stats.Health,
		MaxHealth: stats.Health,
		Damage:    stats.Damage,
		Bonus:     stats.Bonus,
		Facing:    core.Sign(t.VX),
	}
	if e.Facing == 0 {
		e.Facing = -1
	}

	left, right := t.PatrolLeft, t.PatrolRight
	if right-left < size {
		right = left + size
	}
	e.X = core.ClampF(t.X, left, right-size)
	e.Y = g.cfg.World.GroundY - size

	if t.Kind == config.KindElite {
		el := g.cfg.Elite
		e.Brain = &EliteBrain{
			Left:            left,
			Right:           right,
			State:           EliteIdle,
			DetectionRadius: el.DetectionRadius,
			AttackRadius:    el.AttackRadius,
		}
	} else {
		e.Brain = &PatrolBrain{Left: left, Right: right}
	}
	return e
}

func (g *Game) newPlayer() Player {
	pc := g.cfg.Player
	return Player{
		Box:       core.Box{W: pc.Width, H: pc.Height},
		Speed:     pc.Speed,
		Facing:    1,
		FlightMax: g.cfg.Flight.Max,
		MaxHealth: g.cfg.Health.Max,
		Frame:     IdleFrame,
	}
}

// resetPlayer returns the player to the spawn point with full resources.
// Score and coins carry over between levels.
func (g *Game) resetPlayer() {
	p := &g.world.Player
	p.X = g.cfg.Player.SpawnX
	p.Y = g.cfg.World.GroundY - p.H
	p.VX, p.VY = 0, 0
	p.Facing = 1
	p.Grounded = true
	p.Flight = p.FlightMax
	p.FlightCooldown = 0
	p.thrusting = false
	p.Health = p.MaxHealth
	p.Invulnerable = 0
	p.ShootCooldown = 0
	p.Frame = IdleFrame
	g.prevPlayer = p.Box
	g.falling = false
}

func (g *Game) resetCompanion() {
	cc := g.cfg.Companion
	p := g.world.Player
	g.world.Companion = Companion{
		Box: core.Box{
			X: p.X + cc.OffsetX,
			Y: g.cfg.World.GroundY - cc.Height,
			W: cc.Width,
			H: cc.Height,
		},
		Grounded:       true,
		TargetX:        p.X + cc.OffsetX,
		FollowDistance: cc.FollowDistance,
		MaxSpeed:       cc.MaxSpeed,
		JumpImpulse:    cc.JumpImpulse,
	}
}
