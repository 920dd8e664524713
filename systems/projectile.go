package systems

import (
	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// advance moves a projectile and reports whether it is still alive.
func advance(p *components.ProjectileData, dt float64) bool {
	p.Position = p.Position.Add(p.Velocity.Scale(dt))
	p.Lifetime -= dt
	return p.Lifetime > 0
}

// UpdateBossProjectiles flies boss shots on their fixed heading and hits the
// player on proximity.
func UpdateBossProjectiles(ecs *ecs.ECS) {
	dt := components.GetClock(ecs.World).DT
	radius := components.GetRules(ecs.World).Config.BossRules.ProjectileHitRadius
	hooks := components.GetCollaborators(ecs.World).Hooks
	playerPos, hasPlayer := PlayerPosition(ecs.World)

	var toRemove []*donburi.Entry
	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		if p.Side != components.SideEnemy {
			return
		}
		if !advance(p, dt) {
			toRemove = append(toRemove, e)
			return
		}
		if hasPlayer && p.Position.Distance(playerPos) <= radius {
			hooks.OnPlayerHit(p.Damage)
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		removeEntry(ecs, e)
	}
}

type projectileHit struct {
	projectile *donburi.Entry
	target     *donburi.Entry
	base       float64
	headshot   bool
}

// updatePlayerProjectiles advances player shots and resolves them against
// every alive regular and the active boss. A shot is spent on its first hit.
func updatePlayerProjectiles(ecs *ecs.ECS, arsenal *components.ArsenalData) {
	dt := components.GetClock(ecs.World).DT
	cfg := components.GetRules(ecs.World).Config.Player

	type target struct {
		entry   *donburi.Entry
		pos     gamemath.Vec3
		profile config.HitProfile
	}
	var targets []target
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Combatant.Get(e).Alive() {
			return
		}
		if pos, ok := bodyPosition(ecs.World, e); ok {
			targets = append(targets, target{e, pos, cfg.EnemyHit})
		}
	})
	if boss, ok := activeBoss(ecs.World); ok && components.Combatant.Get(boss).Alive() {
		if pos, ok := bodyPosition(ecs.World, boss); ok {
			scale := components.Boss.Get(boss).Type.Scale
			targets = append(targets, target{boss, pos, cfg.BossHit.Scaled(scale)})
		}
	}

	var expired []*donburi.Entry
	var hits []projectileHit

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		if p.Side != components.SidePlayer {
			return
		}
		if !advance(p, dt) {
			expired = append(expired, e)
			return
		}
		for _, t := range targets {
			if p.Position.Distance(t.pos) > t.profile.Radius {
				continue
			}
			hits = append(hits, projectileHit{
				projectile: e,
				target:     t.entry,
				base:       p.Damage,
				headshot:   gamemath.InHeadBand(p.Position.Y, t.pos.Y, t.profile.HeadOffset, t.profile.HeadBand),
			})
			return
		}
	})

	for _, e := range expired {
		removeEntry(ecs, e)
	}
	for _, h := range hits {
		removeEntry(ecs, h.projectile)
		if !h.target.Valid() {
			continue
		}
		c := components.Combatant.Get(h.target)
		damage := HitDamage(h.base, arsenal.DamageMultiplier, h.headshot, c, cfg.HeadshotMultiplier, cfg.StealthMultiplier)
		ApplyDamage(ecs, h.target, damage)
	}
}
