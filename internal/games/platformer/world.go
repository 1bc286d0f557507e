// Package platformer implements the side-scrolling platformer simulation:
// a deterministic per-tick World of player, companion, enemies, projectiles
// and static geometry, advanced by Game.Step.
package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

// Player is the controllable character.
type Player struct {
	core.Box
	VX, VY   float64
	Speed    float64
	Facing   float64 // -1 or 1
	Grounded bool

	Coins int
	Score int

	Flight         float64
	FlightMax      float64
	FlightCooldown int // ticks until thrust and regen resume
	thrusting      bool

	Health           int
	MaxHealth        int
	Invulnerable     int // ticks of damage immunity left
	ShootCooldown    int
	LastDamageSource string

	Frame int // sprite frame: 0-3 walk cycle, IdleFrame when standing
}

// IdleFrame is the sprite frame shown when the player is not walking.
const IdleFrame = 8

// Owner tells who fired a projectile.
type Owner int

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

func (o Owner) String() string {
	if o == OwnerEnemy {
		return "enemy"
	}
	return "player"
}

// Projectile is a moving damage box. It dies on its first hit or when it
// leaves the world.
type Projectile struct {
	core.Box
	VX, VY     float64
	Owner      Owner
	SourceKind string // enemy kind for enemy shots, "player" otherwise
}

// Coin is a collectible circle; X and Y are its center.
type Coin struct {
	X, Y, R float64
	Taken   bool
}

// Platform is a solid rectangle.
type Platform struct {
	core.Box
}

// Block is a brick or question block.
type Block struct {
	core.Box
	Kind  levels.BlockKind
	State levels.BlockState
}

// Solid reports whether the block still blocks movement.
func (b Block) Solid() bool {
	return b.State != levels.BlockEmpty
}

// Powerup restores health when touched.
type Powerup struct {
	core.Box
	Value int
}

// Companion trails the player.
type Companion struct {
	core.Box
	VX, VY         float64
	Grounded       bool
	Flip           bool // true when facing left
	TargetX        float64
	FollowDistance float64
	MaxSpeed       float64
	JumpImpulse    float64
}

// World is the single live simulation state. Only Game mutates it.
type World struct {
	Player      Player
	Companion   Companion
	Enemies     []Enemy
	Projectiles []Projectile
	Coins       []Coin
	Platforms   []Platform
	Blocks      []Block
	Powerups    []Powerup

	CameraX    float64
	LevelIndex int
	LevelID    string
	LevelName  string
	WorldWidth float64
	EndX       float64
	Tick       uint64
}
