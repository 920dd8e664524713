package config

import "github.com/automoto/knightfall/shared/gamemath"

func defaultLevels() []LevelConfig {
	return []LevelConfig{
		{Name: "Greenwood", Theme: "forest", EnemyCount: 4, EnemyType: "Goblin", Boss: "troll",
			Spawns: []gamemath.Vec3{{X: 10, Z: 12}, {X: -12, Z: 14}, {X: 6, Z: 22}, {X: -4, Z: 26}}},
		{Name: "Mire", Theme: "swamp", EnemyCount: 5, EnemyType: "Goblin", Boss: "witch",
			Spawns: ring(5, 18, 0.3)},
		{Name: "Dunes", Theme: "desert", EnemyCount: 6, EnemyType: "Skeleton", Boss: "wyrm",
			Spawns: ring(4, 20, 0)},
		{Name: "Glacier", Theme: "ice", EnemyCount: 7, EnemyType: "Skeleton", Boss: "giant",
			Spawns: ring(7, 22, 0.5)},
		{Name: "Caldera", Theme: "volcano", EnemyCount: 8, EnemyType: "Orc", Boss: "golem",
			Spawns: ring(6, 24, 0.2)},
		{Name: "Crypt", Theme: "crypt", EnemyCount: 9, EnemyType: "Ghoul", Boss: "lich",
			Spawns: ring(9, 20, 0)},
		{Name: "Stormspire", Theme: "sky", EnemyCount: 10, EnemyType: "Wraith", Boss: "drake",
			Spawns: ring(8, 26, 0.4)},
		{Name: "Shadowfen", Theme: "shadow", EnemyCount: 11, EnemyType: "Wraith", Boss: "shade",
			Spawns: ring(11, 24, 0.1)},
		{Name: "Ironhold", Theme: "castle", EnemyCount: 12, EnemyType: "Orc", Boss: "knight",
			Spawns: ring(10, 28, 0.25)},
		{Name: "Void Gate", Theme: "void", EnemyCount: 14, EnemyType: "Wraith", Boss: "emperor",
			Spawns: ring(12, 30, 0)},
	}
}
