package config

import (
	"math"

	"github.com/automoto/knightfall/shared/gamemath"
)

// Default returns a fresh copy of the built-in tuning tables. Every call
// allocates new maps and slices so sessions never share mutable state.
func Default() *Config {
	return &Config{
		Player: PlayerCombatConfig{
			// Sword
			SwordCooldown:       0.5,
			SwordDamage:         25,
			SwordRange:          3.0,
			SwordBossBonusRange: 1.0,
			SwordConeDot:        0.3, // roughly +-70 degrees

			// Gun
			GunCooldown:    0.35,
			MagazineSize:   10,
			ReloadDuration: 2.0,
			StartingAmmo: map[Element]int{
				ElementBasic:     60,
				ElementFire:      10,
				ElementIce:       10,
				ElementLightning: 10,
			},
			ElementDamage: map[Element]float64{
				ElementBasic:     20,
				ElementIce:       25,
				ElementLightning: 30,
				ElementFire:      35,
			},
			ProjectileSpeed:    40,
			ProjectileLifetime: 2.5,

			// Aim
			EyeHeight:    0.6,
			MuzzleOffset: 1.0,
			AimDistance:  100,

			HeadshotMultiplier: 2.0,
			StealthMultiplier:  3.0,

			EnemyHit: HitProfile{Radius: 1.5, HeadOffset: 1.2, HeadBand: 0.4},
			BossHit:  HitProfile{Radius: 2.5, HeadOffset: 1.6, HeadBand: 0.5},
		},
		Enemies:   defaultEnemyTypes(),
		Bosses:    defaultBossTypes(),
		BossRules: defaultBossRules(),
		Levels:    defaultLevels(),
		Encounter: EncounterConfig{
			AlertThreshold: 3,
			SpawnJitter:    4.0,
		},
		Survival: SurvivalConfig{
			EnemyType:        "Ghoul",
			InitialCount:     6,
			WaveInterval:     10,
			WaveSize:         3,
			SpawnMinDistance: 18,
			SpawnMaxDistance: 28,
			StaggerMax:       2.0,
			Duration:         180,
		},
		Physics: PhysicsConfig{
			Extent:         512,
			CellSize:       8,
			BodyRadius:     0.6,
			BossBodyRadius: 1.5,
			PlayerRadius:   0.5,
		},
	}
}

func defaultEnemyTypes() map[string]EnemyTypeConfig {
	return map[string]EnemyTypeConfig{
		"Goblin": {
			Name:            "Goblin",
			Health:          40,
			Speed:           3.5,
			DetectionRadius: 14,
			AttackRange:     2.0,
			AttackCooldown:  1.5,
			Damage:          5,
		},
		"Skeleton": {
			Name:            "Skeleton",
			Health:          55,
			Speed:           3.0,
			DetectionRadius: 16,
			AttackRange:     2.2,
			AttackCooldown:  1.4,
			Damage:          7,
		},
		"Ghoul": {
			Name:            "Ghoul",
			Health:          60,
			Speed:           4.2,
			DetectionRadius: 18,
			AttackRange:     2.0,
			AttackCooldown:  1.2,
			Damage:          8,
		},
		"Orc": {
			Name:            "Orc",
			Health:          90,
			Speed:           3.2,
			DetectionRadius: 16,
			AttackRange:     2.5,
			AttackCooldown:  1.6,
			Damage:          12,
		},
		"Wraith": {
			Name:            "Wraith",
			Health:          75,
			Speed:           5.0,
			DetectionRadius: 22,
			AttackRange:     2.2,
			AttackCooldown:  1.0,
			Damage:          10,
		},
	}
}

func defaultBossRules() BossRulesConfig {
	return BossRulesConfig{
		AwarenessRadius:         40,
		MeleeRange:              3.5,
		MeleeCooldown:           1.0,
		SpecialRange:            30,
		PhaseThreshold:          0.5,
		PhaseSpeedMultiplier:    1.3,
		PhaseCooldownMultiplier: 0.6,

		ProjectileSpeed:     18,
		ProjectileLifetime:  3.0,
		ProjectileHitRadius: 2.0,

		SpawnOffset: gamemath.V3(0, 0, 20),
		LootDrops:   5,
		LootScatter: 3,

		ArenaRadius:      12,
		ArenaPulse:       1.5,
		ArenaPulsePeriod: 1.2,
	}
}

// ring returns n spawn points evenly spaced on a circle around the origin.
func ring(n int, radius, phase float64) []gamemath.Vec3 {
	points := make([]gamemath.Vec3, 0, n)
	for i := 0; i < n; i++ {
		angle := phase + float64(i)*2*math.Pi/float64(n)
		points = append(points, gamemath.Heading(angle).Scale(radius))
	}
	return points
}
