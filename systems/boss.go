package systems

import (
	"fmt"
	"log"

	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/systems/factory"
	"github.com/automoto/knightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBosses runs the shared boss state machine. Only the attack pattern
// differs between boss types.
func UpdateBosses(ecs *ecs.ECS) {
	for _, e := range collect(ecs.World, tags.Boss) {
		updateBoss(ecs, e)
	}
}

func updateBoss(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	c := components.Combatant.Get(e)
	if c.Dead {
		return
	}
	boss := components.Boss.Get(e)
	rules := components.GetRules(ecs.World).Config.BossRules
	dt := components.GetClock(ecs.World).DT
	provider := components.GetProvider(ecs.World)

	CheckPhase(ecs, e)

	c.AttackCooldown = countdown(c.AttackCooldown, dt)
	boss.MeleeCooldown = countdown(boss.MeleeCooldown, dt)

	body := components.Body.Get(e).ID
	pos, ok := provider.Position(body)
	if !ok {
		return
	}
	c.LastPosition = pos

	playerPos, hasPlayer := PlayerPosition(ecs.World)
	dist := gamemath.HorizontalDistance(pos, playerPos)
	if !hasPlayer || dist > rules.AwarenessRadius {
		provider.SetHorizontalVelocity(body, 0, 0)
		return
	}

	dir := gamemath.FlatDirection(pos, playerPos)
	provider.SetHorizontalVelocity(body, dir.X*c.Speed, dir.Y*c.Speed)
	c.Yaw = gamemath.Bearing(pos, playerPos)

	if dist <= rules.MeleeRange && boss.MeleeCooldown <= 0 {
		components.GetCollaborators(ecs.World).Hooks.OnPlayerHit(c.Damage)
		boss.MeleeCooldown = rules.MeleeCooldown
	}

	if dist <= rules.SpecialRange && c.AttackCooldown <= 0 {
		fireSpecial(ecs, e, pos, playerPos)
		c.AttackCooldown = SpecialCooldown(boss, rules.PhaseCooldownMultiplier)
	}
}

// CheckPhase moves a boss into phase 2 the first time its health drops to the
// threshold. Phase 2 is permanent.
func CheckPhase(ecs *ecs.ECS, e *donburi.Entry) bool {
	c := components.Combatant.Get(e)
	boss := components.Boss.Get(e)
	rules := components.GetRules(ecs.World).Config.BossRules

	if boss.Phase != 1 || c.Health > c.MaxHealth*rules.PhaseThreshold {
		return false
	}
	boss.Phase = 2
	c.Speed *= rules.PhaseSpeedMultiplier

	log.Printf("[boss] %s entered phase 2", c.TypeName)
	components.GetCollaborators(ecs.World).Hooks.Narrate(fmt.Sprintf("%s is enraged!", c.TypeName))
	return true
}

// SpecialCooldown is the delay before the next special attack.
func SpecialCooldown(boss *components.BossData, phaseMultiplier float64) float64 {
	if boss.Phase >= 2 {
		return boss.Type.AttackCooldownBase * phaseMultiplier
	}
	return boss.Type.AttackCooldownBase
}

func fireSpecial(ecs *ecs.ECS, e *donburi.Entry, from, target gamemath.Vec3) {
	rules := components.GetRules(ecs.World)
	br := rules.Config.BossRules
	boss := components.Boss.Get(e)
	damage := components.Combatant.Get(e).Damage

	for _, dir := range Volley(from, target, boss.Type.Pattern, rules.Rand) {
		factory.CreateProjectile(ecs, components.ProjectileData{
			Position: from,
			Velocity: dir.Scale(br.ProjectileSpeed),
			Lifetime: br.ProjectileLifetime,
			Damage:   damage,
			Side:     components.SideEnemy,
			Owner:    e.Entity(),
		})
	}
}

// UpdateArenas advances the ring pulse of every live boss arena.
func UpdateArenas(ecs *ecs.ECS) {
	dt := float32(components.GetClock(ecs.World).DT)
	components.Arena.Each(ecs.World, func(e *donburi.Entry) {
		a := components.Arena.Get(e)
		r, done := a.Tweens[a.Active].Update(dt)
		a.Radius = float64(r)
		if done {
			a.Tweens[a.Active].Reset()
			a.Active = 1 - a.Active
		}
	})
}
