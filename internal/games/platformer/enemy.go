package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// updateEnemies runs every living enemy's brain, then resolves contact with
// the player.
func (g *Game) updateEnemies() {
	for i := range g.world.Enemies {
		e := &g.world.Enemies[i]
		if !e.Alive {
			continue
		}

		switch b := e.Brain.(type) {
		case *EliteBrain:
			g.updateElite(e, b)
		case *PatrolBrain:
			patrol(e, b.Left, b.Right)
			if e.VX != 0 {
				e.Facing = core.Sign(e.VX)
			}
		}
		g.animateEnemy(e)
	}

	for i := range g.world.Enemies {
		e := &g.world.Enemies[i]
		if !e.Alive || !e.Overlaps(g.world.Player.Box) {
			continue
		}
		if g.resetTimer > 0 {
			return
		}
		g.contact(e)
	}
}

// patrol moves e at its velocity and reflects it off the bounds.
func patrol(e *Enemy, left, right float64) {
	e.X += e.VX
	if e.X <= left {
		e.X = left
		e.VX = math.Abs(e.VX)
	} else if e.Right() >= right {
		e.X = right - e.W
		e.VX = -math.Abs(e.VX)
	}
}

func (g *Game) animateEnemy(e *Enemy) {
	interval := g.cfg.Enemies.AnimInterval
	if interval <= 0 {
		return
	}
	e.AnimCounter++
	if e.AnimCounter >= interval {
		e.AnimCounter = 0
		e.AnimIndex = (e.AnimIndex + 1) % 2
	}
}

// updateElite advances the elite state machine by one tick.
func (g *Game) updateElite(e *Enemy, b *EliteBrain) {
	ec := g.cfg.Elite
	p := g.world.Player

	if b.ActionTimer > 0 {
		b.ActionTimer--
	}
	if b.MeleeCooldown > 0 {
		b.MeleeCooldown--
	}
	if b.RangedCooldown > 0 {
		b.RangedCooldown--
	}

	dx := p.CenterX() - e.CenterX()
	dist := math.Hypot(dx, p.CenterY()-e.CenterY())
	if dx != 0 {
		e.Facing = core.Sign(dx)
	}

	switch b.State {
	case EliteRanged:
		if !b.Fired && b.ActionTimer <= ec.RangedFireAt {
			g.eliteShoot(e, b)
		}
		if b.ActionTimer == 0 {
			b.State = EliteIdle
		}
		return

	case EliteMelee:
		if b.ActionTimer > ec.MeleeNudgeUntil {
			e.X = core.ClampF(e.X+core.Sign(dx)*ec.MeleeNudge, b.Left, b.Right-e.W)
		}
		if b.ActionTimer == 0 {
			b.State = EliteIdle
		}
		return
	}

	adx := math.Abs(dx)
	switch {
	case dist <= b.AttackRadius && b.MeleeCooldown == 0:
		b.State = EliteMelee
		b.ActionTimer = ec.MeleeAction
		b.MeleeCooldown = ec.MeleeCooldown
		g.debug("elite melee", "dist", dist)
	case dist > b.AttackRadius && dist < b.DetectionRadius &&
		adx >= ec.BandMin && adx <= ec.BandMax && b.RangedCooldown == 0:
		b.State = EliteRanged
		b.ActionTimer = ec.RangedAction
		b.RangedCooldown = ec.RangedCooldown
		b.Fired = false
		b.AimDir = core.Sign(dx)
		g.debug("elite ranged", "dist", dist)
	case dist <= b.DetectionRadius:
		e.X = core.ClampF(e.X+core.Sign(dx)*ec.ChaseSpeed, b.Left, b.Right-e.W)
	default:
		patrol(e, b.Left, b.Right)
	}
}

// eliteShoot fires the elite's single shot toward the side the player was
// on when the attack began.
func (g *Game) eliteShoot(e *Enemy, b *EliteBrain) {
	b.Fired = true
	dir := b.AimDir
	if dir == 0 {
		dir = e.Facing
	}
	shot := g.cfg.Projectiles.Enemy
	x := e.CenterX() - shot.Width/2 + dir*e.W/2
	y := e.CenterY() - shot.Height/2
	g.spawnProjectile(OwnerEnemy, e.Kind, core.Box{X: x, Y: y, W: shot.Width, H: shot.Height}, dir*shot.Speed, 0)
}

// isStomp reports whether the player came down on top of e this tick.
func (g *Game) isStomp(e *Enemy) bool {
	cc := g.cfg.Combat
	p := g.world.Player
	if !g.falling {
		return false
	}
	if g.prevPlayer.Bottom() > e.Y+cc.StompTolerance {
		return false
	}
	return math.Abs(p.CenterX()-e.CenterX()) <= (p.W+e.W)/2*cc.StompAlignment
}

// contact resolves one player/enemy overlap as either a stomp or a hit.
func (g *Game) contact(e *Enemy) {
	p := &g.world.Player
	cc := g.cfg.Combat

	if g.isStomp(e) {
		p.Y = e.Y - p.H
		p.VY = -cc.StompBounce
		p.Grounded = false
		p.Score += cc.StompScore
		g.emit(core.Event{Kind: core.EventStomp, Amount: cc.StompScore, Source: e.Kind})
		g.damageEnemy(e, cc.StompDamage)
		return
	}

	dmg := e.Damage
	if b := e.Elite(); b != nil && b.State == EliteMelee {
		dmg = int(math.Round(float64(dmg) * cc.MeleeMultiplier))
	}
	g.takeDamage(dmg, e.Kind)
}

// damageEnemy lowers enemy health and handles its defeat.
func (g *Game) damageEnemy(e *Enemy, amount int) {
	e.Health = core.Clamp(e.Health-amount, 0, e.MaxHealth)
	if e.Health > 0 {
		return
	}
	e.Alive = false
	g.world.Player.Score += e.Bonus
	g.emit(core.Event{Kind: core.EventEnemyDefeated, Amount: e.Bonus, Source: e.Kind})
	if e.Kind == config.KindElite {
		g.debug("elite defeated", "level", g.world.LevelIndex)
	}
}
