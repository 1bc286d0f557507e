package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// spawnProjectile appends a projectile to the live list.
func (g *Game) spawnProjectile(owner Owner, source string, box core.Box, vx, vy float64) {
	g.world.Projectiles = append(g.world.Projectiles, Projectile{
		Box:        box,
		VX:         vx,
		VY:         vy,
		Owner:      owner,
		SourceKind: source,
	})
	if owner == OwnerPlayer {
		g.emit(core.Event{Kind: core.EventShot, Source: source})
	}
}

// playerShoot fires from the leading edge of the player.
func (g *Game) playerShoot() {
	p := &g.world.Player
	shot := g.cfg.Projectiles.Player

	x := p.Right()
	if p.Facing < 0 {
		x = p.X - shot.Width
	}
	y := p.CenterY() - shot.Height/2
	g.spawnProjectile(OwnerPlayer, "player", core.Box{X: x, Y: y, W: shot.Width, H: shot.Height}, p.Facing*shot.Speed, 0)
	p.ShootCooldown = g.cfg.Player.ShootCooldown
}

// updateProjectiles moves every projectile and resolves hits. Projectiles
// pass through level geometry.
func (g *Game) updateProjectiles() {
	w := &g.world
	margin := g.cfg.World.ProjectileMargin
	maxX := w.WorldWidth + margin
	maxY := g.cfg.World.ViewHeight + margin

	kept := w.Projectiles[:0]
	for _, pr := range w.Projectiles {
		pr.X += pr.VX
		pr.Y += pr.VY

		if pr.Right() < -margin || pr.X > maxX || pr.Bottom() < -margin || pr.Y > maxY {
			continue
		}
		if g.projectileHit(&pr) {
			continue
		}
		kept = append(kept, pr)
	}
	w.Projectiles = kept
}

// projectileHit applies pr to the first thing it touches. It reports
// whether the projectile was consumed.
func (g *Game) projectileHit(pr *Projectile) bool {
	if pr.Owner == OwnerEnemy {
		if !pr.Overlaps(g.world.Player.Box) {
			return false
		}
		g.takeDamage(g.cfg.Projectiles.Enemy.Damage, pr.SourceKind+" shot")
		return true
	}

	for i := range g.world.Enemies {
		e := &g.world.Enemies[i]
		if !e.Alive || !pr.Overlaps(e.Box) {
			continue
		}
		score := g.cfg.Combat.ProjectileHitScore
		g.world.Player.Score += score
		g.damageEnemy(e, g.cfg.Projectiles.Player.Damage)
		return true
	}
	return false
}

func (g *Game) projectilesClear() {
	g.world.Projectiles = g.world.Projectiles[:0]
}
