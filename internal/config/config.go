// Package config provides YAML-based configuration for the platformer:
// every speed, cooldown, damage amount and size the simulation uses.
package config

// PlatformerConfig contains all tunable constants of the simulation.
type PlatformerConfig struct {
	World       WorldConfig      `yaml:"world"`
	Player      PlayerConfig     `yaml:"player"`
	Flight      FlightConfig     `yaml:"flight"`
	Health      HealthConfig     `yaml:"health"`
	Combat      CombatConfig     `yaml:"combat"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Enemies     EnemiesConfig    `yaml:"enemies"`
	Elite       EliteConfig      `yaml:"elite"`
	Companion   CompanionConfig  `yaml:"companion"`
}

// WorldConfig defines the view and the fixed horizontal lines of a level.
type WorldConfig struct {
	ViewWidth        float64 `yaml:"view_width"`  // Visible width in world pixels, drives the camera
	ViewHeight       float64 `yaml:"view_height"` // Visible height in world pixels
	GroundY          float64 `yaml:"ground_y"`    // Ground line; entities stand on it
	SkyY             float64 `yaml:"sky_y"`       // Ceiling line
	CameraLead       float64 `yaml:"camera_lead"` // Fraction of the view kept left of the player
	CoinPickupRange  float64 `yaml:"coin_pickup_range"`
	ProjectileMargin float64 `yaml:"projectile_margin"`
}

// PlayerConfig defines player movement parameters.
type PlayerConfig struct {
	SpawnX         float64 `yaml:"spawn_x"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	RunMultiplier  float64 `yaml:"run_multiplier"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	Gravity        float64 `yaml:"gravity"`
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
	ShootCooldown  int     `yaml:"shoot_cooldown"`   // Ticks between shots
	WalkFrameTicks int     `yaml:"walk_frame_ticks"` // Ticks per walk animation frame
}

// FlightConfig defines the flight stamina resource.
type FlightConfig struct {
	Max            float64 `yaml:"max"`
	Power          float64 `yaml:"power"`            // Upward acceleration per tick of thrust
	MaxAscendSpeed float64 `yaml:"max_ascend_speed"` // Cap on upward speed while thrusting
	Drain          float64 `yaml:"drain"`            // Stamina spent per tick of thrust
	GroundRegen    float64 `yaml:"ground_regen"`
	AirRegen       float64 `yaml:"air_regen"`
	Cooldown       int     `yaml:"cooldown"` // Ticks of lockout after running dry
}

// HealthConfig defines the health resource.
type HealthConfig struct {
	Max               int `yaml:"max"`
	InvulnerableTicks int `yaml:"invulnerable_ticks"`
	ResetDelay        int `yaml:"reset_delay"` // Ticks between death and the full reset
}

// CombatConfig defines scoring and contact damage rules.
type CombatConfig struct {
	CoinScore          int     `yaml:"coin_score"`
	StompDamage        int     `yaml:"stomp_damage"`
	StompBounce        float64 `yaml:"stomp_bounce"`
	StompScore         int     `yaml:"stomp_score"`
	StompAlignment     float64 `yaml:"stomp_alignment"` // Fraction of combined half-widths
	StompTolerance     float64 `yaml:"stomp_tolerance"` // Pixels the feet may start below the enemy top
	ProjectileHitScore int     `yaml:"projectile_hit_score"`
	MeleeMultiplier    float64 `yaml:"melee_multiplier"`
}

// ProjectileSpec defines one owner's projectiles.
type ProjectileSpec struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Damage int     `yaml:"damage"`
}

// ProjectileConfig groups player and enemy projectile specs.
type ProjectileConfig struct {
	Player ProjectileSpec `yaml:"player"`
	Enemy  ProjectileSpec `yaml:"enemy"`
}

// EnemyKind defines per-kind stats. Scale multiplies the base size.
type EnemyKind struct {
	Scale  float64 `yaml:"scale"`
	Health int     `yaml:"health"`
	Damage int     `yaml:"damage"`
	Bonus  int     `yaml:"bonus"` // Score awarded on defeat
}

// EnemiesConfig defines enemy sizing and per-kind stats.
type EnemiesConfig struct {
	BaseSize       float64              `yaml:"base_size"`
	CharacterScale float64              `yaml:"character_scale"`
	AnimInterval   int                  `yaml:"anim_interval"`
	Kinds          map[string]EnemyKind `yaml:"kinds"`
}

// Kind returns the stats for name, falling back to the grunt entry.
func (c EnemiesConfig) Kind(name string) EnemyKind {
	if k, ok := c.Kinds[name]; ok {
		return k
	}
	return c.Kinds[KindGrunt]
}

// Enemy kind names used in level data.
const (
	KindGrunt = "grunt"
	KindScout = "scout"
	KindBrute = "brute"
	KindElite = "elite"
)

// EliteConfig defines the elite enemy's state machine.
type EliteConfig struct {
	DetectionRadius float64 `yaml:"detection_radius"`
	AttackRadius    float64 `yaml:"attack_radius"`
	BandMin         float64 `yaml:"band_min"` // Horizontal distance window for ranged attacks
	BandMax         float64 `yaml:"band_max"`
	ChaseSpeed      float64 `yaml:"chase_speed"`
	MeleeAction     int     `yaml:"melee_action"`
	MeleeCooldown   int     `yaml:"melee_cooldown"`
	MeleeNudge      float64 `yaml:"melee_nudge"`
	MeleeNudgeUntil int     `yaml:"melee_nudge_until"` // Nudging stops once the action timer drops to this
	RangedAction    int     `yaml:"ranged_action"`
	RangedFireAt    int     `yaml:"ranged_fire_at"` // Action timer value at which the shot leaves
	RangedCooldown  int     `yaml:"ranged_cooldown"`
}

// CompanionConfig defines the follower.
type CompanionConfig struct {
	OffsetX        float64 `yaml:"offset_x"` // Spawn offset from the player
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	FollowDistance float64 `yaml:"follow_distance"`
	Accel          float64 `yaml:"accel"`
	MaxSpeed       float64 `yaml:"max_speed"`
	SettleDistance float64 `yaml:"settle_distance"`
	Decay          float64 `yaml:"decay"`
	Gravity        float64 `yaml:"gravity"`
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
	JumpImpulse    float64 `yaml:"jump_impulse"`
	JumpChance     float64 `yaml:"jump_chance"`
	PlayfulChance  float64 `yaml:"playful_chance"`
	PlayfulScale   float64 `yaml:"playful_scale"`
	HeightGap      float64 `yaml:"height_gap"` // Player this far above counts as "well above"
}
