package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// epsilon absorbs float error when comparing an edge that was snapped to
// another edge on an earlier tick.
const epsilon = 0.01

// contact is the outcome of resolving one overlap.
type contact int

const (
	contactNone   contact = iota
	contactSide           // pushed out horizontally
	contactTop            // landed on top
	contactStrike         // hit the underside while moving up
	contactBelow          // pushed out below without a strike
)

// resolveSolid pushes b out of s along the axis of smaller overlap.
// prev is b before this tick's move; it decides which side b came from.
// Equal overlaps resolve vertically.
func resolveSolid(b *core.Box, prev core.Box, vx, vy *float64, s core.Box) contact {
	if !b.Overlaps(s) {
		return contactNone
	}

	ox, oy := b.OverlapDepth(s)
	if ox < oy {
		fromLeft := prev.Right() <= s.X+epsilon
		fromRight := prev.X >= s.Right()-epsilon
		if !fromLeft && !fromRight {
			fromLeft = prev.CenterX() < s.CenterX()
		}
		if fromLeft {
			b.X = s.X - b.W
		} else {
			b.X = s.Right()
		}
		*vx = 0
		return contactSide
	}

	switch {
	case prev.Bottom() <= s.Y+epsilon:
		b.Y = s.Y - b.H
		*vy = 0
		return contactTop
	case *vy < 0 && prev.Y >= s.Bottom()-epsilon:
		b.Y = s.Bottom()
		*vy = 0
		return contactStrike
	case b.CenterY() < s.CenterY():
		b.Y = s.Y - b.H
		*vy = 0
		return contactTop
	default:
		b.Y = s.Bottom()
		if *vy < 0 {
			*vy = 0
		}
		return contactBelow
	}
}

// supported reports whether b stands exactly on top of s.
func supported(b, s core.Box) bool {
	return math.Abs(b.Bottom()-s.Y) <= epsilon && b.X < s.Right() && s.X < b.Right()
}

// clampToLines applies the ground and ceiling lines. It reports whether b
// ended on the ground.
func (g *Game) clampToLines(b *core.Box, vy *float64) bool {
	wc := g.cfg.World
	grounded := false
	if b.Bottom() >= wc.GroundY {
		b.Y = wc.GroundY - b.H
		*vy = 0
		grounded = true
	}
	if b.Y < wc.SkyY {
		b.Y = wc.SkyY
		if *vy < 0 {
			*vy = 0
		}
	}
	return grounded
}

// body is a moving box resolved against the level geometry.
type body struct {
	box      *core.Box
	vx, vy   *float64
	prev     core.Box
	grounded bool
}

// resolveBody runs the ground/ceiling lines and every solid against b.
// onStrike is called for each block hit from below; it may be nil.
func (g *Game) resolveBody(b *body, onStrike func(*Block)) {
	w := &g.world
	b.grounded = g.clampToLines(b.box, b.vy)

	for i := range w.Platforms {
		if resolveSolid(b.box, b.prev, b.vx, b.vy, w.Platforms[i].Box) == contactTop {
			b.grounded = true
		}
	}
	for i := range w.Blocks {
		blk := &w.Blocks[i]
		if !blk.Solid() {
			continue
		}
		switch resolveSolid(b.box, b.prev, b.vx, b.vy, blk.Box) {
		case contactTop:
			b.grounded = true
		case contactStrike:
			if onStrike != nil {
				onStrike(blk)
			}
		}
	}

	if b.grounded || *b.vy < 0 {
		return
	}
	for _, p := range w.Platforms {
		if supported(*b.box, p.Box) {
			b.grounded = true
			return
		}
	}
	for _, blk := range w.Blocks {
		if blk.Solid() && supported(*b.box, blk.Box) {
			b.grounded = true
			return
		}
	}
}

// updatePlayer turns input into velocity: walking, jumping, flight thrust,
// gravity and shooting.
func (g *Game) updatePlayer(in core.InputFrame) {
	p := &g.world.Player
	pc := g.cfg.Player

	speed := p.Speed
	if in.Has(core.ActionRun) {
		speed *= pc.RunMultiplier
	}

	// Both directions held cancel out and keep the current facing.
	left, right := in.Has(core.ActionLeft), in.Has(core.ActionRight)
	switch {
	case left && !right:
		p.VX = -speed
		p.Facing = -1
	case right && !left:
		p.VX = speed
		p.Facing = 1
	default:
		p.VX = 0
	}

	if in.Has(core.ActionJump) && p.Grounded {
		p.VY = -pc.JumpImpulse
		p.Grounded = false
	}

	p.thrusting = false
	if !p.Grounded {
		if in.Has(core.ActionJump) && p.canThrust() {
			p.VY -= g.cfg.Flight.Power
			p.thrusting = true
			g.drainFlight()
		}
		p.VY += pc.Gravity
		p.VY = core.ClampF(p.VY, -g.cfg.Flight.MaxAscendSpeed, pc.MaxFallSpeed)
	}

	if in.Has(core.ActionShoot) && p.ShootCooldown == 0 {
		g.playerShoot()
	}
}

// movePlayer integrates the player and resolves everything it touches in
// the static world: geometry, blocks, coins and powerups.
func (g *Game) movePlayer() {
	w := &g.world
	p := &w.Player

	g.prevPlayer = p.Box
	p.X += p.VX
	p.Y += p.VY
	p.X = core.ClampF(p.X, 0, math.Max(0, w.WorldWidth-p.W))
	g.falling = p.VY > 0

	b := body{box: &p.Box, vx: &p.VX, vy: &p.VY, prev: g.prevPlayer}
	g.resolveBody(&b, g.strikeBlock)
	p.Grounded = b.grounded

	g.regenFlight()
	g.collectCoins()
	g.collectPowerups()

	vw := g.cfg.World.ViewWidth
	w.CameraX = core.ClampF(p.X-vw*g.cfg.World.CameraLead, 0, math.Max(0, w.WorldWidth-vw))
}

// strikeBlock empties a full question block and pays out its coin.
func (g *Game) strikeBlock(b *Block) {
	if b.Kind != levels.BlockQuestion || b.State != levels.BlockFull {
		return
	}
	b.State = levels.BlockEmpty
	g.emit(core.Event{Kind: core.EventBlockStruck})
	g.awardCoin("block")
}

func (g *Game) awardCoin(source string) {
	p := &g.world.Player
	p.Coins++
	p.Score += g.cfg.Combat.CoinScore
	g.emit(core.Event{Kind: core.EventCoin, Amount: g.cfg.Combat.CoinScore, Source: source})
}

// collectCoins takes every coin whose circle reaches the player center.
func (g *Game) collectCoins() {
	p := &g.world.Player
	cx, cy := p.CenterX(), p.CenterY()
	reach := math.Max(p.W, p.H) / 2 * 0.6

	for i := range g.world.Coins {
		c := &g.world.Coins[i]
		if c.Taken || math.Abs(c.X-cx) > g.cfg.World.CoinPickupRange {
			continue
		}
		if math.Hypot(cx-c.X, cy-c.Y) < c.R+reach {
			c.Taken = true
			g.awardCoin("coin")
		}
	}
}

// collectPowerups consumes touched powerups.
func (g *Game) collectPowerups() {
	w := &g.world
	kept := w.Powerups[:0]
	for _, pu := range w.Powerups {
		if pu.Overlaps(w.Player.Box) {
			g.heal(pu.Value)
			g.emit(core.Event{Kind: core.EventPowerup, Amount: pu.Value, Source: "health"})
			continue
		}
		kept = append(kept, pu)
	}
	w.Powerups = kept
}

// animatePlayer picks the sprite frame: the walk cycle while moving on the
// ground, the idle frame otherwise.
func (g *Game) animatePlayer() {
	p := &g.world.Player
	if p.Grounded && math.Abs(p.VX) > 0.01 {
		ticks := g.cfg.Player.WalkFrameTicks
		if ticks <= 0 {
			ticks = 1
		}
		p.Frame = int(g.world.Tick/uint64(ticks)) % 4 //#nosec G115 -- ticks is positive
		return
	}
	p.Frame = IdleFrame
}
