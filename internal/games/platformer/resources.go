package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// tickTimers counts every player timer down by one, floored at zero.
func (g *Game) tickTimers() {
	p := &g.world.Player
	if p.Invulnerable > 0 {
		p.Invulnerable--
	}
	if p.ShootCooldown > 0 {
		p.ShootCooldown--
	}
	if p.FlightCooldown > 0 {
		p.FlightCooldown--
	}
}

// canThrust reports whether flight thrust is available this tick.
func (p *Player) canThrust() bool {
	return p.Flight > 0 && p.FlightCooldown == 0
}

// drainFlight spends stamina for one tick of thrust. Running dry starts
// the cooldown.
func (g *Game) drainFlight() {
	p := &g.world.Player
	p.Flight = core.ClampF(p.Flight-g.cfg.Flight.Drain, 0, p.FlightMax)
	if p.Flight == 0 {
		p.FlightCooldown = g.cfg.Flight.Cooldown
	}
}

// regenFlight refills stamina when not thrusting and no cooldown is active.
func (g *Game) regenFlight() {
	p := &g.world.Player
	if p.thrusting || p.FlightCooldown > 0 {
		return
	}
	rate := g.cfg.Flight.AirRegen
	if p.Grounded {
		rate = g.cfg.Flight.GroundRegen
	}
	p.Flight = core.ClampF(p.Flight+rate, 0, p.FlightMax)
}

// takeDamage hurts the player unless invulnerable or already down.
// It reports whether health changed. Reaching zero schedules a full reset
// instead of resetting here, so collision code in the middle of a tick
// never sees the world reloaded under it.
func (g *Game) takeDamage(amount int, source string) bool {
	p := &g.world.Player
	if p.Invulnerable > 0 || p.Health <= 0 || amount <= 0 {
		return false
	}

	p.Health = core.Clamp(p.Health-amount, 0, p.MaxHealth)
	p.Invulnerable = g.cfg.Health.InvulnerableTicks
	p.LastDamageSource = source
	g.emit(core.Event{Kind: core.EventDamage, Amount: amount, Source: source})
	g.debug("player damaged", "amount", amount, "source", source, "health", p.Health)

	if p.Health == 0 {
		g.resetTimer = g.cfg.Health.ResetDelay
		if g.resetTimer <= 0 {
			g.resetTimer = 1
		}
		g.emit(core.Event{Kind: core.EventPlayerDefeated, Amount: p.Score, Source: source})
		g.debug("player defeated", "source", source, "score", p.Score)
	}
	return true
}

// heal raises health up to the cap.
func (g *Game) heal(amount int) {
	p := &g.world.Player
	p.Health = core.Clamp(p.Health+amount, 0, p.MaxHealth)
}
