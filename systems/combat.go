package systems

import (
	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/systems/factory"
	"github.com/automoto/knightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// timerEpsilon absorbs float drift when many small dt steps add up to a
// timer's full duration.
const timerEpsilon = 1e-9

// UpdatePlayerCombat is the combat resolver tick: weapon timers, reload,
// player projectiles, then new attacks from the controls.
func UpdatePlayerCombat(ecs *ecs.ECS) {
	p, ok := playerEntry(ecs.World)
	if !ok {
		return
	}
	clock := components.GetClock(ecs.World)
	arsenal := components.Arsenal.Get(p)

	// --------------------------------------------------------------------
	// 1. Timers keep running even while attacks are blocked
	// --------------------------------------------------------------------
	tickArsenal(arsenal, clock.DT)

	// --------------------------------------------------------------------
	// 2. Shots already in flight
	// --------------------------------------------------------------------
	updatePlayerProjectiles(ecs, arsenal)

	// --------------------------------------------------------------------
	// 3. New attacks
	// --------------------------------------------------------------------
	controls := components.GetCollaborators(ecs.World).Controls
	if controls == nil {
		return
	}
	if controls.ReloadDown() {
		StartReload(ecs)
	}
	if controls.MeleeDown() {
		SwordAttack(ecs)
	}
	if controls.FireDown() {
		GunShoot(ecs)
	}
}

// countdown lowers a timer by dt and snaps it to zero once it runs out.
func countdown(v, dt float64) float64 {
	v -= dt
	if v <= timerEpsilon {
		return 0
	}
	return v
}

func tickArsenal(a *components.ArsenalData, dt float64) {
	a.SwordCooldown = countdown(a.SwordCooldown, dt)
	a.GunCooldown = countdown(a.GunCooldown, dt)

	if !a.IsReloading {
		return
	}
	a.ReloadTimer -= dt
	if a.ReloadTimer <= timerEpsilon {
		finishReload(a)
	}
}

func finishReload(a *components.ArsenalData) {
	if a.ReloadElement != a.Loaded {
		a.Reserve[a.Loaded] += a.CurrentMagazine
		a.CurrentMagazine = 0
		a.Loaded = a.ReloadElement
	}
	moved := min(a.MagazineSize-a.CurrentMagazine, a.Reserve[a.ReloadElement])
	if moved > 0 {
		a.CurrentMagazine += moved
		a.Reserve[a.ReloadElement] -= moved
	}
	a.IsReloading = false
	a.ReloadTimer = 0
}

// SwordAttack swings at everything inside the forward cone. It reports
// whether a swing happened; a swing that connects with nothing still counts.
func SwordAttack(ecs *ecs.ECS) bool {
	p, ok := playerEntry(ecs.World)
	if !ok || components.GetClock(ecs.World).Blocked {
		return false
	}
	a := components.Arsenal.Get(p)
	if a.SwordCooldown > 0 {
		return false
	}
	pos, ok := bodyPosition(ecs.World, p)
	if !ok {
		return false
	}
	cfg := components.GetRules(ecs.World).Config.Player

	eye := pos.Add(gamemath.V3(0, cfg.EyeHeight, 0))
	forward := gamemath.FlatNormalized(AimDirection(ecs, eye, a).Flat())
	a.SwordCooldown = cfg.SwordCooldown

	type hit struct {
		entry  *donburi.Entry
		damage float64
	}
	var hits []hit
	consider := func(e *donburi.Entry, reach float64) {
		c := components.Combatant.Get(e)
		if !c.Alive() {
			return
		}
		target, ok := bodyPosition(ecs.World, e)
		if !ok || !inSwordCone(pos, target, forward, reach, cfg.SwordConeDot) {
			return
		}
		hits = append(hits, hit{e, HitDamage(cfg.SwordDamage, a.DamageMultiplier, false, c, 1, cfg.StealthMultiplier)})
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		consider(e, cfg.SwordRange)
	})
	if boss, ok := activeBoss(ecs.World); ok {
		consider(boss, cfg.SwordRange+cfg.SwordBossBonusRange)
	}

	for _, h := range hits {
		ApplyDamage(ecs, h.entry, h.damage)
	}
	return true
}

func inSwordCone(from, to gamemath.Vec3, forward gamemath.Vec2, reach, minDot float64) bool {
	dist := gamemath.HorizontalDistance(from, to)
	if dist >= reach {
		return false
	}
	if dist < timerEpsilon {
		return true
	}
	return gamemath.FlatDot(forward, gamemath.FlatDirection(from, to)) > minDot
}

// GunShoot fires one projectile of the selected element. With an empty
// magazine, or one loaded with another element, it starts a reload instead
// and reports false. Nothing happens when the selected reserve is empty too.
func GunShoot(ecs *ecs.ECS) bool {
	p, ok := playerEntry(ecs.World)
	if !ok || components.GetClock(ecs.World).Blocked {
		return false
	}
	a := components.Arsenal.Get(p)
	if a.IsReloading || a.GunCooldown > 0 {
		return false
	}
	if a.CurrentMagazine <= 0 || a.Loaded != a.Selected {
		StartReload(ecs)
		return false
	}
	pos, ok := bodyPosition(ecs.World, p)
	if !ok {
		return false
	}
	cfg := components.GetRules(ecs.World).Config.Player

	eye := pos.Add(gamemath.V3(0, cfg.EyeHeight, 0))
	dir := AimDirection(ecs, eye, a)

	factory.CreateProjectile(ecs, components.ProjectileData{
		Position: eye.Add(dir.Scale(cfg.MuzzleOffset)),
		Velocity: dir.Scale(cfg.ProjectileSpeed),
		Lifetime: cfg.ProjectileLifetime,
		Damage:   cfg.ElementDamage[a.Loaded],
		Element:  a.Loaded,
		Side:     components.SidePlayer,
	})

	a.CurrentMagazine--
	a.GunCooldown = cfg.GunCooldown
	return true
}

// StartReload begins refilling the magazine from the selected element's
// reserve. A full magazine of another element can still be swapped out.
// Reloading never waits on the block flag.
func StartReload(ecs *ecs.ECS) bool {
	p, ok := playerEntry(ecs.World)
	if !ok {
		return false
	}
	a := components.Arsenal.Get(p)
	full := a.CurrentMagazine >= a.MagazineSize && a.Loaded == a.Selected
	if a.IsReloading || full || a.Reserve[a.Selected] <= 0 {
		return false
	}

	a.IsReloading = true
	a.ReloadTimer = a.ReloadDuration
	a.ReloadElement = a.Selected
	if a.ReloadTimer <= 0 {
		finishReload(a)
	}
	return true
}

// AimDirection turns the crosshair ray into a unit direction from the eye.
// The pick hit is preferred, then the far point along the ray, then the last
// known forward when no aim provider answers.
func AimDirection(ecs *ecs.ECS, eye gamemath.Vec3, a *components.ArsenalData) gamemath.Vec3 {
	aim := components.GetCollaborators(ecs.World).Aim
	if aim == nil {
		return a.Forward
	}
	origin, dir, ok := aim.AimRay()
	dir = dir.Normalized()
	if !ok || dir == (gamemath.Vec3{}) {
		return a.Forward
	}

	dist := components.GetRules(ecs.World).Config.Player.AimDistance
	target, hit := components.GetProvider(ecs.World).Pick(origin, dir, dist)
	if !hit {
		target = origin.Add(dir.Scale(dist))
	}

	forward := target.Sub(eye).Normalized()
	if forward == (gamemath.Vec3{}) {
		forward = dir
	}
	a.Forward = forward
	return forward
}

// SelectElement switches the ammo element used by the next reload. Shots of
// the new element start once it is loaded.
func SelectElement(ecs *ecs.ECS, el config.Element) bool {
	p, ok := playerEntry(ecs.World)
	if !ok {
		return false
	}
	if _, known := components.GetRules(ecs.World).Config.Player.ElementDamage[el]; !known {
		return false
	}
	components.Arsenal.Get(p).Selected = el
	return true
}

// AddAmmo adds to an element's reserve.
func AddAmmo(ecs *ecs.ECS, el config.Element, amount int) bool {
	p, ok := playerEntry(ecs.World)
	if !ok || amount <= 0 {
		return false
	}
	components.Arsenal.Get(p).Reserve[el] += amount
	return true
}

// SetDamageMultiplier applies the global shop multiplier to every later hit.
func SetDamageMultiplier(ecs *ecs.ECS, m float64) {
	if p, ok := playerEntry(ecs.World); ok && m > 0 {
		components.Arsenal.Get(p).DamageMultiplier = m
	}
}
