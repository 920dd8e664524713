// Package leveldata imports level wave layouts from Tiled TMX maps.
package leveldata

// Object group and property names read from a level map.
const (
	SpawnGroup = "EnemySpawn"

	PropName       = "name"
	PropTheme      = "theme"
	PropBoss       = "boss"
	PropEnemyCount = "enemyCount"
	PropEnemyType  = "enemyType"
)
