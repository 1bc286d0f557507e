package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Snapshot is a read-only copy of the World for renderers and remote
// clients. It shares no memory with the live World.
type Snapshot struct {
	Tick       uint64  `json:"tick"`
	State      string  `json:"state"`
	LevelIndex int     `json:"level"`
	LevelID    string  `json:"level_id"`
	LevelName  string  `json:"level_name"`
	WorldWidth float64 `json:"world_width"`
	EndX       float64 `json:"end_x"`
	CameraX    float64 `json:"camera_x"`
	ResetTimer int     `json:"reset_timer,omitempty"`

	Player      PlayerSnapshot       `json:"player"`
	Companion   CompanionSnapshot    `json:"companion"`
	Enemies     []EnemySnapshot      `json:"enemies"`
	Projectiles []ProjectileSnapshot `json:"projectiles"`
	Coins       []CoinSnapshot       `json:"coins"`
	Platforms   []core.Box           `json:"platforms"`
	Blocks      []BlockSnapshot      `json:"blocks"`
	Powerups    []PowerupSnapshot    `json:"powerups"`
}

// PlayerSnapshot is the rendered part of the player.
type PlayerSnapshot struct {
	core.Box
	VX           float64 `json:"vx"`
	VY           float64 `json:"vy"`
	Facing       float64 `json:"facing"`
	Grounded     bool    `json:"grounded"`
	Frame        int     `json:"frame"`
	Score        int     `json:"score"`
	Coins        int     `json:"coins"`
	Health       int     `json:"health"`
	MaxHealth    int     `json:"max_health"`
	Flight       float64 `json:"flight"`
	FlightMax    float64 `json:"flight_max"`
	Invulnerable int     `json:"invulnerable"`
}

// CompanionSnapshot is the follower's body and pose.
type CompanionSnapshot struct {
	core.Box
	VX       float64 `json:"vx"`
	VY       float64 `json:"vy"`
	Flip     bool    `json:"flip"`
	Grounded bool    `json:"grounded"`
}

// EnemySnapshot is one enemy, alive or not.
type EnemySnapshot struct {
	core.Box
	Kind      string         `json:"kind"`
	VX        float64        `json:"vx"`
	Alive     bool           `json:"alive"`
	Health    int            `json:"health"`
	MaxHealth int            `json:"max_health"`
	Facing    float64        `json:"facing"`
	Frame     int            `json:"frame"`
	Elite     *EliteSnapshot `json:"elite,omitempty"`
}

// EliteSnapshot is the state machine of an elite enemy.
type EliteSnapshot struct {
	State          string `json:"state"`
	ActionTimer    int    `json:"action_timer"`
	MeleeCooldown  int    `json:"melee_cooldown"`
	RangedCooldown int    `json:"ranged_cooldown"`
	Fired          bool   `json:"fired"`
}

// ProjectileSnapshot is a shot in flight and who fired it.
type ProjectileSnapshot struct {
	core.Box
	Owner string `json:"owner"`
}

// CoinSnapshot is a coin and whether it was collected.
type CoinSnapshot struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	R     float64 `json:"r"`
	Taken bool    `json:"taken"`
}

// BlockSnapshot is a block with its kind and full/empty state.
type BlockSnapshot struct {
	core.Box
	Kind  string `json:"kind"`
	State string `json:"state"`
}

// PowerupSnapshot is an uncollected powerup and the health it restores.
type PowerupSnapshot struct {
	core.Box
	Value int `json:"value"`
}

// Snapshot returns the current world as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := &g.world
	p := w.Player

	snap := Snapshot{
		Tick:       w.Tick,
		State:      g.state,
		LevelIndex: w.LevelIndex,
		LevelID:    w.LevelID,
		LevelName:  w.LevelName,
		WorldWidth: w.WorldWidth,
		EndX:       w.EndX,
		CameraX:    w.CameraX,
		ResetTimer: g.resetTimer,
		Player: PlayerSnapshot{
			Box:          p.Box,
			VX:           p.VX,
			VY:           p.VY,
			Facing:       p.Facing,
			Grounded:     p.Grounded,
			Frame:        p.Frame,
			Score:        p.Score,
			Coins:        p.Coins,
			Health:       p.Health,
			MaxHealth:    p.MaxHealth,
			Flight:       p.Flight,
			FlightMax:    p.FlightMax,
			Invulnerable: p.Invulnerable,
		},
		Companion: CompanionSnapshot{
			Box:      w.Companion.Box,
			VX:       w.Companion.VX,
			VY:       w.Companion.VY,
			Flip:     w.Companion.Flip,
			Grounded: w.Companion.Grounded,
		},
		Enemies:     make([]EnemySnapshot, len(w.Enemies)),
		Projectiles: make([]ProjectileSnapshot, len(w.Projectiles)),
		Coins:       make([]CoinSnapshot, len(w.Coins)),
		Platforms:   make([]core.Box, len(w.Platforms)),
		Blocks:      make([]BlockSnapshot, len(w.Blocks)),
		Powerups:    make([]PowerupSnapshot, len(w.Powerups)),
	}

	for i, e := range w.Enemies {
		es := EnemySnapshot{
			Box:       e.Box,
			Kind:      e.Kind,
			VX:        e.VX,
			Alive:     e.Alive,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			Facing:    e.Facing,
			Frame:     e.AnimIndex,
		}
		if b := e.Elite(); b != nil {
			es.Elite = &EliteSnapshot{
				State:          b.State.String(),
				ActionTimer:    b.ActionTimer,
				MeleeCooldown:  b.MeleeCooldown,
				RangedCooldown: b.RangedCooldown,
				Fired:          b.Fired,
			}
		}
		snap.Enemies[i] = es
	}
	for i, pr := range w.Projectiles {
		snap.Projectiles[i] = ProjectileSnapshot{Box: pr.Box, Owner: pr.Owner.String()}
	}
	for i, c := range w.Coins {
		snap.Coins[i] = CoinSnapshot{X: c.X, Y: c.Y, R: c.R, Taken: c.Taken}
	}
	for i, pl := range w.Platforms {
		snap.Platforms[i] = pl.Box
	}
	for i, b := range w.Blocks {
		snap.Blocks[i] = BlockSnapshot{Box: b.Box, Kind: string(b.Kind), State: string(b.State)}
	}
	for i, pu := range w.Powerups {
		snap.Powerups[i] = PowerupSnapshot{Box: pu.Box, Value: pu.Value}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.LevelIndex) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.CameraX)
	h = hashBox(h, snap.Player.Box)
	h = h*31 + math.Float64bits(snap.Player.VX)
	h = h*31 + math.Float64bits(snap.Player.VY)
	h = h*31 + math.Float64bits(snap.Player.Flight)
	h = h*31 + uint64(snap.Player.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Player.Coins)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Player.Health) //#nosec G115 -- hash computation
	h = hashBox(h, snap.Companion.Box)
	h = h*31 + math.Float64bits(snap.Companion.VX)
	h = h*31 + math.Float64bits(snap.Companion.VY)
	h = h*31 + boolBit(snap.Companion.Flip)

	for _, e := range snap.Enemies {
		h = hashBox(h, e.Box)
		h = h*31 + math.Float64bits(e.VX)
		h = h*31 + math.Float64bits(e.Facing)
		h = h*31 + uint64(e.Health) //#nosec G115 -- hash computation
		h = h*31 + boolBit(e.Alive)
		if el := e.Elite; el != nil {
			h = hashString(h, el.State)
			h = h*31 + uint64(el.ActionTimer)    //#nosec G115 -- hash computation
			h = h*31 + uint64(el.MeleeCooldown)  //#nosec G115 -- hash computation
			h = h*31 + uint64(el.RangedCooldown) //#nosec G115 -- hash computation
			h = h*31 + boolBit(el.Fired)
		}
	}
	for _, pr := range snap.Projectiles {
		h = hashBox(h, pr.Box)
	}
	for _, c := range snap.Coins {
		h = h*31 + boolBit(c.Taken)
	}
	for _, b := range snap.Blocks {
		h = h*31 + uint64(len(b.State))
	}
	h = h*31 + uint64(len(snap.Powerups))

	return h
}

// Hash returns the hash of the current world.
func (g *Game) Hash() uint64 {
	snap := g.Snapshot()
	return snap.Hash()
}

func hashBox(h uint64, b core.Box) uint64 {
	h = h*31 + math.Float64bits(b.X)
	h = h*31 + math.Float64bits(b.Y)
	h = h*31 + math.Float64bits(b.W)
	return h*31 + math.Float64bits(b.H)
}

func hashString(h uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		h = h*31 + uint64(s[i])
	}
	return h
}

func boolBit(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}
