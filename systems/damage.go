package systems

import (
	"log"

	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HitDamage composes the final damage of a player hit on a combatant.
func HitDamage(base, global float64, headshot bool, target *components.CombatantData, headshotMul, stealthMul float64) float64 {
	return gamemath.ComposeDamage(
		base,
		global,
		gamemath.Multiplier(headshot, headshotMul),
		gamemath.Multiplier(!target.IsAware(), stealthMul),
	)
}

// ApplyDamage lowers a combatant's health and wakes it up. It reports whether
// this hit killed it. A boss that dies releases its projectiles and arena at
// once; scoring happens later in the director.
func ApplyDamage(ecs *ecs.ECS, target *donburi.Entry, amount float64) bool {
	if target == nil || !target.Valid() {
		return false
	}
	c := components.Combatant.Get(target)
	if c.Dead {
		return false
	}

	c.Health = gamemath.Clamp(c.Health-amount, 0, c.MaxHealth)
	if c.Awareness == components.Unaware {
		c.Awareness = components.Aware
	}
	if c.Health > 0 {
		return false
	}

	c.Dead = true
	if target.HasComponent(components.Body) {
		components.GetProvider(ecs.World).SetHorizontalVelocity(components.Body.Get(target).ID, 0, 0)
	}
	if target.HasComponent(components.Boss) {
		releaseBossResources(ecs, target)
		log.Printf("[boss] %s defeated", c.TypeName)
	}
	return true
}

// releaseBossResources removes every projectile the boss fired and its arena.
func releaseBossResources(ecs *ecs.ECS, boss *donburi.Entry) {
	owner := boss.Entity()
	for _, p := range collect(ecs.World, components.Projectile) {
		pd := components.Projectile.Get(p)
		if pd.Side == components.SideEnemy && pd.Owner == owner {
			removeEntry(ecs, p)
		}
	}

	b := components.Boss.Get(boss)
	removeEntry(ecs, b.Arena)
	b.Arena = nil
}
