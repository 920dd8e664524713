package systems

import (
	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ScoreCombatants reports every regular enemy that died since the last pass.
// The Scored flag makes it safe to run more than once per tick.
func ScoreCombatants(ecs *ecs.ECS) int {
	hooks := components.GetCollaborators(ecs.World).Hooks
	enc := components.GetEncounter(ecs.World)

	scored := 0
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Combatant.Get(e)
		if !c.Dead || c.Scored {
			return
		}
		if pos, ok := bodyPosition(ecs.World, e); ok {
			c.LastPosition = pos
		}
		c.Scored = true
		enc.Kills++
		scored++
		hooks.OnKill(c.LastPosition)
		hooks.DropLoot(c.LastPosition)
	})
	return scored
}

// ReapCombatants scores fresh deaths, then removes every regular whose death
// has been reported.
func ReapCombatants(ecs *ecs.ECS) {
	ScoreCombatants(ecs)

	var toRemove []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Combatant.Get(e)
		if c.Dead && c.Scored {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		removeCombatant(ecs, e)
	}
}
