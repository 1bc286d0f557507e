package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by LoadByID when no file carries the ID.
var ErrNotFound = errors.New("levels: not found")

// yamlLevel is the on-disk form of a level. Vertical positions are given as
// "lift", the distance above the ground line.
type yamlLevel struct {
	ID         string        `yaml:"id"`
	Name       string        `yaml:"name"`
	WorldWidth float64       `yaml:"world_width"`
	EndX       float64       `yaml:"end_x"`
	Coins      []yamlCoin    `yaml:"coins"`
	Platforms  []yamlRect    `yaml:"platforms"`
	Blocks     []yamlBlock   `yaml:"blocks"`
	Enemies    []yamlEnemy   `yaml:"enemies"`
	Powerups   []yamlPowerup `yaml:"powerups"`
}

type yamlCoin struct {
	X    float64 `yaml:"x"`
	Lift float64 `yaml:"lift"`
	R    float64 `yaml:"r,omitempty"`
}

type yamlRect struct {
	X    float64 `yaml:"x"`
	Lift float64 `yaml:"lift"`
	W    float64 `yaml:"w"`
	H    float64 `yaml:"h,omitempty"`
}

type yamlBlock struct {
	X     float64 `yaml:"x"`
	Lift  float64 `yaml:"lift"`
	Kind  string  `yaml:"kind"`
	State string  `yaml:"state,omitempty"`
	Size  float64 `yaml:"size,omitempty"`
}

type yamlEnemy struct {
	Kind  string  `yaml:"kind"`
	X     float64 `yaml:"x"`
	VX    float64 `yaml:"vx"`
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
}

type yamlPowerup struct {
	X     float64 `yaml:"x"`
	Lift  float64 `yaml:"lift"`
	Value int     `yaml:"value"`
}

// ParseYAML decodes and validates one level against the given ground line.
func ParseYAML(data []byte, groundY float64) (Template, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Template{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	t := Template{
		ID:         yl.ID,
		Name:       yl.Name,
		WorldWidth: yl.WorldWidth,
		EndX:       yl.EndX,
	}
	if t.Name == "" {
		t.Name = t.ID
	}

	for _, c := range yl.Coins {
		r := c.R
		if r <= 0 {
			r = 10
		}
		t.Coins = append(t.Coins, Coin{X: c.X, Y: groundY - c.Lift, R: r})
	}
	for _, p := range yl.Platforms {
		h := p.H
		if h <= 0 {
			h = 12
		}
		t.Platforms = append(t.Platforms, Platform{X: p.X, Y: groundY - p.Lift, W: p.W, H: h})
	}
	for _, b := range yl.Blocks {
		size := b.Size
		if size <= 0 {
			size = 24
		}
		state := BlockState(strings.ToLower(b.State))
		if state == "" {
			state = BlockFull
		}
		t.Blocks = append(t.Blocks, Block{
			X: b.X, Y: groundY - b.Lift, W: size, H: size,
			Kind:  BlockKind(strings.ToLower(b.Kind)),
			State: state,
		})
	}
	for _, e := range yl.Enemies {
		t.Enemies = append(t.Enemies, Enemy{
			Kind:        strings.ToLower(e.Kind),
			X:           e.X,
			VX:          e.VX,
			PatrolLeft:  e.Left,
			PatrolRight: e.Right,
		})
	}
	for _, p := range yl.Powerups {
		t.Powerups = append(t.Powerups, Powerup{X: p.X, Y: groundY - p.Lift, W: 20, H: 20, Value: p.Value})
	}

	if err := t.Validate(); err != nil {
		return Template{}, err
	}
	return t, nil
}

// Loader reads a directory of YAML level files.
type Loader struct {
	Root    string
	GroundY float64
}

// NewLoader creates a new level loader.
func NewLoader(root string, groundY float64) *Loader {
	return &Loader{Root: root, GroundY: groundY}
}

// LoadAll recursively scans and loads all level files.
// Levels are played in ID order, so packs name them "01-intro", "02-...".
// Any invalid file fails the whole pack; a campaign with a hole in it is
// worse than no campaign.
func (l *Loader) LoadAll() ([]Template, error) {
	var out []Template

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		t, err := l.LoadFile(path)
		if err != nil {
			return err
		}
		out = append(out, t)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	t, err := ParseYAML(data, l.GroundY)
	if err != nil {
		return Template{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if t.ID == "" {
		t.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if t.Name == "" {
			t.Name = t.ID
		}
	}
	t.FilePath = path
	return t, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Template, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Template{}, err
	}

	for _, t := range all {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}
