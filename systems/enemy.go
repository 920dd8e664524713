package systems

import (
	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs the regular enemy AI: idle until the player comes into
// detection range, then chase and strike on cooldown.
func UpdateEnemies(ecs *ecs.ECS) {
	dt := components.GetClock(ecs.World).DT
	provider := components.GetProvider(ecs.World)
	hooks := components.GetCollaborators(ecs.World).Hooks
	playerPos, hasPlayer := PlayerPosition(ecs.World)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Combatant.Get(e)
		if c.Dead {
			return
		}
		body := components.Body.Get(e).ID
		pos, ok := provider.Position(body)
		if !ok {
			return
		}
		c.LastPosition = pos

		c.AttackCooldown = countdown(c.AttackCooldown, dt)

		if !hasPlayer {
			provider.SetHorizontalVelocity(body, 0, 0)
			return
		}

		enemyType := components.Enemy.Get(e).Type
		dist := gamemath.HorizontalDistance(pos, playerPos)

		if c.Awareness == components.Unaware {
			if dist > enemyType.DetectionRadius {
				provider.SetHorizontalVelocity(body, 0, 0)
				return
			}
			c.Awareness = components.Aware
		}

		dir := gamemath.FlatDirection(pos, playerPos)
		c.Yaw = gamemath.Bearing(pos, playerPos)

		if dist <= enemyType.AttackRange {
			provider.SetHorizontalVelocity(body, 0, 0)
			if c.AttackCooldown <= 0 {
				hooks.OnPlayerHit(c.Damage)
				c.AttackCooldown = enemyType.AttackCooldown
			}
			return
		}

		provider.SetHorizontalVelocity(body, dir.X*c.Speed, dir.Y*c.Speed)
	})
}
