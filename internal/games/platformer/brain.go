package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Enemy is a hostile entity. Its behavior lives in Brain; everything shared
// by all kinds (body, health, animation) lives here.
type Enemy struct {
	core.Box
	Kind        string
	VX          float64
	Alive       bool
	Health      int
	MaxHealth   int
	Damage      int
	Bonus       int
	AnimIndex   int
	AnimCounter int
	Facing      float64
	Brain       Brain
}

// Brain is the closed set of enemy behaviors: *PatrolBrain or *EliteBrain.
type Brain interface {
	brain()
}

// PatrolBrain paces between two bounds.
type PatrolBrain struct {
	Left, Right float64
}

func (*PatrolBrain) brain() {}

// EliteState is the elite's current behavior.
type EliteState int

const (
	EliteIdle EliteState = iota
	EliteRanged
	EliteMelee
)

func (s EliteState) String() string {
	switch s {
	case EliteRanged:
		return "ranged"
	case EliteMelee:
		return "melee"
	default:
		return "idle"
	}
}

// EliteBrain is the boss state machine. Left and Right bound both its
// patrol and its chase.
type EliteBrain struct {
	Left, Right     float64
	State           EliteState
	ActionTimer     int
	MeleeCooldown   int
	RangedCooldown  int
	Fired           bool
	AimDir          float64
	DetectionRadius float64
	AttackRadius    float64
}

func (*EliteBrain) brain() {}

// Bounds returns the patrol bounds of any brain.
func (e *Enemy) Bounds() (left, right float64) {
	switch b := e.Brain.(type) {
	case *PatrolBrain:
		return b.Left, b.Right
	case *EliteBrain:
		return b.Left, b.Right
	}
	return e.X, e.Right()
}

// Elite returns the elite brain, or nil for patrol enemies.
func (e *Enemy) Elite() *EliteBrain {
	b, _ := e.Brain.(*EliteBrain)
	return b
}
