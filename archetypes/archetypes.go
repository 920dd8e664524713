package archetypes

import (
	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Body,
		components.Arsenal,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Combatant,
		components.Body,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.Combatant,
		components.Body,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
	)
	Arena = newArchetype(
		tags.Arena,
		components.Arena,
	)
	Encounter = newArchetype(
		components.Encounter,
	)
	Environment = newArchetype(
		components.Clock,
		components.Rules,
		components.Physics,
		components.Collaborators,
	)
)

// archetype is a fixed component set spawned together.
type archetype struct {
	base []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{base: cs}
}

// Spawn creates an entity with the archetype's components plus extra.
func (a *archetype) Spawn(ecs *ecs.ECS, extra ...donburi.IComponentType) *donburi.Entry {
	set := make([]donburi.IComponentType, 0, len(a.base)+len(extra))
	set = append(set, a.base...)
	set = append(set, extra...)
	return ecs.World.Entry(ecs.World.Create(set...))
}
