package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// updateCompanion eases the companion toward a spot behind the player and
// lets it hop now and then.
func (g *Game) updateCompanion() {
	c := &g.world.Companion
	p := g.world.Player
	cc := g.cfg.Companion

	// Stand behind whichever side the player faces.
	c.TargetX = p.CenterX() - p.Facing*c.FollowDistance - c.W/2
	dx := c.TargetX - c.X

	if math.Abs(dx) > cc.SettleDistance {
		c.VX = core.ClampF(c.VX+dx*cc.Accel, -c.MaxSpeed, c.MaxSpeed)
	} else {
		c.VX *= cc.Decay
		if math.Abs(c.VX) < 0.01 {
			c.VX = 0
		}
	}

	playerAbove := c.Y-p.Y > cc.HeightGap
	if c.Grounded {
		switch {
		case playerAbove && g.rng.Float64() < cc.JumpChance:
			c.VY = -c.JumpImpulse
			c.Grounded = false
		case c.VX != 0 && g.rng.Float64() < cc.PlayfulChance:
			c.VY = -c.JumpImpulse * cc.PlayfulScale
			c.Grounded = false
		}
	}

	if !c.Grounded {
		c.VY = math.Min(c.VY+cc.Gravity, cc.MaxFallSpeed)
	}

	prev := c.Box
	c.X += c.VX
	c.Y += c.VY
	c.X = core.ClampF(c.X, 0, math.Max(0, g.world.WorldWidth-c.W))

	b := body{box: &c.Box, vx: &c.VX, vy: &c.VY, prev: prev}
	g.resolveBody(&b, nil)
	c.Grounded = b.grounded

	switch {
	case c.VX > 0.05:
		c.Flip = false
	case c.VX < -0.05:
		c.Flip = true
	case playerAbove:
		c.Flip = p.CenterX() < c.CenterX()
	}
}
