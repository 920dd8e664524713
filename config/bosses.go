package config

func defaultBossTypes() map[string]BossTypeConfig {
	return map[string]BossTypeConfig{
		"troll": {
			Name:               "Thornback Troll",
			Health:             600,
			Speed:              2.8,
			KillThreshold:      4,
			AttackCooldownBase: 3.0,
			Damage:             10,
			Scale:              1.5,
			Pattern:            PatternSpec{Family: PatternSingle, Count: 1},
		},
		"witch": {
			Name:               "Bog Witch",
			Health:             700,
			Speed:              3.0,
			KillThreshold:      5,
			AttackCooldownBase: 2.8,
			Damage:             10,
			Scale:              1.3,
			Pattern:            PatternSpec{Family: PatternSpread, Count: 3, Step: 1},
		},
		"wyrm": {
			Name:               "Sand Wyrm",
			Health:             800,
			Speed:              3.4,
			KillThreshold:      6,
			AttackCooldownBase: 2.6,
			Damage:             12,
			Scale:              1.8,
			Pattern:            PatternSpec{Family: PatternCone, Count: 5, Step: 0.2},
		},
		"giant": {
			Name:               "Frost Giant",
			Health:             1000,
			Speed:              2.6,
			KillThreshold:      7,
			AttackCooldownBase: 3.0,
			Damage:             14,
			Scale:              2.2,
			Pattern:            PatternSpec{Family: PatternRing, Count: 8},
		},
		"golem": {
			Name:               "Magma Golem",
			Health:             1100,
			Speed:              2.5,
			KillThreshold:      8,
			AttackCooldownBase: 2.8,
			Damage:             15,
			Scale:              2.0,
			Pattern:            PatternSpec{Family: PatternRandom, Count: 6, Jitter: 8},
		},
		"lich": {
			Name:               "Lich King",
			Health:             1200,
			Speed:              3.0,
			KillThreshold:      9,
			AttackCooldownBase: 2.6,
			Damage:             15,
			Scale:              1.6,
			Pattern:            PatternSpec{Family: PatternSpiral, Count: 12},
		},
		"drake": {
			Name:               "Storm Drake",
			Health:             1300,
			Speed:              3.8,
			KillThreshold:      10,
			AttackCooldownBase: 2.6,
			Damage:             16,
			Scale:              2.0,
			Pattern: PatternSpec{Family: PatternComposite, Parts: []PatternSpec{
				{Family: PatternCone, Count: 5, Step: 0.2},
				{Family: PatternRing, Count: 6},
			}},
		},
		"shade": {
			Name:               "Shade Lord",
			Health:             1400,
			Speed:              3.6,
			KillThreshold:      11,
			AttackCooldownBase: 2.4,
			Damage:             17,
			Scale:              1.7,
			Pattern:            PatternSpec{Family: PatternRandom, Count: 10, Jitter: 16},
		},
		"knight": {
			Name:               "Black Knight",
			Health:             1600,
			Speed:              3.4,
			KillThreshold:      12,
			AttackCooldownBase: 2.4,
			Damage:             18,
			Scale:              1.4,
			Pattern: PatternSpec{Family: PatternComposite, Parts: []PatternSpec{
				{Family: PatternCone, Count: 8, Step: 0.2},
				{Family: PatternRing, Count: 12},
			}},
		},
		"emperor": {
			Name:               "Void Emperor",
			Health:             2000,
			Speed:              3.2,
			KillThreshold:      14,
			AttackCooldownBase: 2.2,
			Damage:             20,
			Scale:              2.4,
			Pattern: PatternSpec{Family: PatternComposite, Parts: []PatternSpec{
				{Family: PatternCone, Count: 8, Step: 0.2},
				{Family: PatternRing, Count: 12},
				{Family: PatternRandom, Count: 6, Jitter: 10},
			}},
		},
	}
}
