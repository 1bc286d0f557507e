package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "platformer.yaml"

// LoadPlatformer loads the simulation constants.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default.
// Files only need to name the values they change; everything else keeps
// its default.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultPlatformerConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParsePlatformer(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParsePlatformer(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := ParsePlatformer(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParsePlatformer(defaultPlatformerYAML)
	if err != nil {
		return DefaultPlatformerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParsePlatformer decodes YAML over the defaults and validates the result.
func ParsePlatformer(data []byte) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultPlatformerConfig(), err
	}
	if err := cfg.Validate(); err != nil {
		return DefaultPlatformerConfig(), err
	}
	return cfg, nil
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate rejects values the simulation cannot run with.
func (c PlatformerConfig) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"world.view_width", c.World.ViewWidth},
		{"world.view_height", c.World.ViewHeight},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.speed", c.Player.Speed},
		{"flight.max", c.Flight.Max},
		{"health.max", float64(c.Health.Max)},
		{"enemies.base_size", c.Enemies.BaseSize},
		{"enemies.character_scale", c.Enemies.CharacterScale},
		{"companion.width", c.Companion.Width},
		{"companion.height", c.Companion.Height},
		{"projectiles.player.width", c.Projectiles.Player.Width},
		{"projectiles.enemy.width", c.Projectiles.Enemy.Width},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, p.name)
		}
	}

	if c.World.SkyY >= c.World.GroundY {
		return fmt.Errorf("%w: world.sky_y must be above world.ground_y", ErrInvalidConfig)
	}
	if c.Elite.AttackRadius >= c.Elite.DetectionRadius {
		return fmt.Errorf("%w: elite.attack_radius must be smaller than elite.detection_radius", ErrInvalidConfig)
	}
	if c.Elite.RangedFireAt >= c.Elite.RangedAction {
		return fmt.Errorf("%w: elite.ranged_fire_at must be below elite.ranged_action", ErrInvalidConfig)
	}
	if _, ok := c.Enemies.Kinds[KindGrunt]; !ok {
		return fmt.Errorf("%w: enemies.kinds needs a %q entry", ErrInvalidConfig, KindGrunt)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}
