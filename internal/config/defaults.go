package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in constants. The embedded YAML
// carries the same values; this copy is the fallback if it fails to parse.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		World: WorldConfig{
			ViewWidth:        960,
			ViewHeight:       540,
			GroundY:          455,
			SkyY:             12,
			CameraLead:       0.4,
			CoinPickupRange:  160,
			ProjectileMargin: 64,
		},
		Player: PlayerConfig{
			SpawnX:         120,
			Width:          28,
			Height:         40,
			Speed:          2.0,
			RunMultiplier:  1.5,
			JumpImpulse:    9.0,
			Gravity:        0.5,
			MaxFallSpeed:   14,
			ShootCooldown:  20,
			WalkFrameTicks: 6,
		},
		Flight: FlightConfig{
			Max:            100,
			Power:          0.5,
			MaxAscendSpeed: 3.2,
			Drain:          0.6,
			GroundRegen:    0.8,
			AirRegen:       0.25,
			Cooldown:       90,
		},
		Health: HealthConfig{
			Max:               100,
			InvulnerableTicks: 60,
			ResetDelay:        45,
		},
		Combat: CombatConfig{
			CoinScore:          100,
			StompDamage:        20,
			StompBounce:        6,
			StompScore:         50,
			StompAlignment:     0.9,
			StompTolerance:     6,
			ProjectileHitScore: 25,
			MeleeMultiplier:    1.5,
		},
		Projectiles: ProjectileConfig{
			Player: ProjectileSpec{Speed: 12, Width: 10, Height: 4, Damage: 20},
			Enemy:  ProjectileSpec{Speed: 6, Width: 12, Height: 6, Damage: 15},
		},
		Enemies: EnemiesConfig{
			BaseSize:       60,
			CharacterScale: 0.8,
			AnimInterval:   12,
			Kinds: map[string]EnemyKind{
				KindGrunt: {Scale: 0.6, Health: 20, Damage: 15, Bonus: 200},
				KindScout: {Scale: 0.4, Health: 10, Damage: 10, Bonus: 150},
				KindBrute: {Scale: 0.7, Health: 40, Damage: 20, Bonus: 300},
				KindElite: {Scale: 1.0, Health: 100, Damage: 25, Bonus: 1000},
			},
		},
		Elite: EliteConfig{
			DetectionRadius: 360,
			AttackRadius:    70,
			BandMin:         120,
			BandMax:         340,
			ChaseSpeed:      1.2,
			MeleeAction:     30,
			MeleeCooldown:   120,
			MeleeNudge:      1.5,
			MeleeNudgeUntil: 10,
			RangedAction:    40,
			RangedFireAt:    20,
			RangedCooldown:  180,
		},
		Companion: CompanionConfig{
			OffsetX:        -50,
			Width:          20,
			Height:         24,
			FollowDistance: 60,
			Accel:          0.08,
			MaxSpeed:       3.5,
			SettleDistance: 4,
			Decay:          0.8,
			Gravity:        0.45,
			MaxFallSpeed:   12,
			JumpImpulse:    8.5,
			JumpChance:     0.04,
			PlayfulChance:  0.005,
			PlayfulScale:   0.55,
			HeightGap:      40,
		},
	}
}
