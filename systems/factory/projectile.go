package factory

import (
	"github.com/automoto/knightfall/archetypes"
	"github.com/automoto/knightfall/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateProjectile(ecs *ecs.ECS, data components.ProjectileData) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)
	components.Projectile.SetValue(p, data)
	return p
}
