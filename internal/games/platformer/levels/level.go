// Package levels holds the immutable level templates the simulation
// instantiates: the built-in table and YAML level packs.
// The simulation depends on this package, never the other way round.
package levels

import (
	"errors"
	"fmt"
)

// BlockKind distinguishes plain bricks from coin-bearing question blocks.
type BlockKind string

const (
	BlockBrick    BlockKind = "brick"
	BlockQuestion BlockKind = "question"
)

// BlockState is full until a question block is struck from below.
type BlockState string

const (
	BlockFull  BlockState = "full"
	BlockEmpty BlockState = "empty"
)

// Coin is a collectible circle; X and Y are its center.
type Coin struct {
	X, Y, R float64
}

// Platform is a solid rectangle.
type Platform struct {
	X, Y, W, H float64
}

// Block is a solid rectangle with a kind and a state.
type Block struct {
	X, Y, W, H float64
	Kind       BlockKind
	State      BlockState
}

// Enemy places an enemy. Y is not stored: the simulation stands every enemy
// on the ground line after sizing it by kind.
type Enemy struct {
	Kind        string
	X           float64
	VX          float64
	PatrolLeft  float64
	PatrolRight float64
}

// Powerup restores Value health when touched.
type Powerup struct {
	X, Y, W, H float64
	Value      int
}

// Template is one level blueprint. The simulation never mutates a template;
// it builds runtime entities from a copy at level load.
type Template struct {
	ID         string
	Name       string
	WorldWidth float64
	EndX       float64
	Coins      []Coin
	Platforms  []Platform
	Blocks     []Block
	Enemies    []Enemy
	Powerups   []Powerup
	FilePath   string
}

// Clone creates a deep copy of the template.
func (t Template) Clone() Template {
	clone := t
	clone.Coins = append([]Coin(nil), t.Coins...)
	clone.Platforms = append([]Platform(nil), t.Platforms...)
	clone.Blocks = append([]Block(nil), t.Blocks...)
	clone.Enemies = append([]Enemy(nil), t.Enemies...)
	clone.Powerups = append([]Powerup(nil), t.Powerups...)
	return clone
}

// CloneAll deep-copies an ordered level list.
func CloneAll(ts []Template) []Template {
	out := make([]Template, len(ts))
	for i, t := range ts {
		out[i] = t.Clone()
	}
	return out
}

// ErrInvalidLevel wraps every template validation failure.
var ErrInvalidLevel = errors.New("levels: invalid level")

// Validate checks the structural rules the simulation relies on.
func (t Template) Validate() error {
	if t.WorldWidth <= 0 {
		return fmt.Errorf("%w %q: world width must be positive", ErrInvalidLevel, t.ID)
	}
	if t.EndX <= 0 || t.EndX > t.WorldWidth {
		return fmt.Errorf("%w %q: end x %.0f outside world width %.0f", ErrInvalidLevel, t.ID, t.EndX, t.WorldWidth)
	}
	for i, b := range t.Blocks {
		if b.Kind != BlockBrick && b.Kind != BlockQuestion {
			return fmt.Errorf("%w %q: block %d has unknown kind %q", ErrInvalidLevel, t.ID, i, b.Kind)
		}
		if b.State != BlockFull && b.State != BlockEmpty {
			return fmt.Errorf("%w %q: block %d has unknown state %q", ErrInvalidLevel, t.ID, i, b.State)
		}
	}
	for i, e := range t.Enemies {
		if e.Kind == "" {
			return fmt.Errorf("%w %q: enemy %d has no kind", ErrInvalidLevel, t.ID, i)
		}
		if e.PatrolLeft >= e.PatrolRight {
			return fmt.Errorf("%w %q: enemy %d patrol bounds are inverted", ErrInvalidLevel, t.ID, i)
		}
	}
	return nil
}
