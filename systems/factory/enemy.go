package factory

import (
	"github.com/automoto/knightfall/archetypes"
	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/physics"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a regular enemy of the given type at pos.
func CreateEnemy(ecs *ecs.ECS, enemyType *config.EnemyTypeConfig, pos gamemath.Vec3) *donburi.Entry {
	rules := components.GetRules(ecs.World)
	provider := components.GetProvider(ecs.World)

	enemy := archetypes.Enemy.Spawn(ecs)

	id := provider.Spawn(pos, rules.Config.Physics.BodyRadius, physics.TagEnemy)
	components.Body.SetValue(enemy, components.BodyData{ID: id})

	typeCopy := *enemyType
	components.Enemy.SetValue(enemy, components.EnemyData{Type: &typeCopy})
	components.Combatant.SetValue(enemy, components.CombatantData{
		TypeName:     enemyType.Name,
		Health:       enemyType.Health,
		MaxHealth:    enemyType.Health,
		Speed:        enemyType.Speed,
		Damage:       enemyType.Damage,
		Awareness:    components.Unaware,
		LastPosition: pos,
	})

	return enemy
}
