package core

import (
	"math"

	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/game"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Autopilot plays the knight on a headless server. It implements
// components.Controls and components.AimProvider: each step it picks the
// nearest live combatant, closes to gun range and shoots, swings the sword
// when something is in reach and reloads when the magazine runs dry.
type Autopilot struct {
	engine *game.Engine

	Speed       float64 // player movement speed
	PreferRange float64 // distance the pilot tries to hold from its target

	target    gamemath.Vec3
	hasTarget bool
	dist      float64
}

func NewAutopilot() *Autopilot {
	return &Autopilot{
		Speed:       6,
		PreferRange: 10,
	}
}

// Bind attaches the pilot to the engine it drives.
func (a *Autopilot) Bind(engine *game.Engine) {
	a.engine = engine
}

// Update picks a target and steers the player body. It runs before the
// engine tick.
func (a *Autopilot) Update() {
	if a.engine == nil {
		return
	}
	provider := a.engine.Provider()
	body := a.engine.PlayerBody()
	pos, ok := provider.Position(body)
	if !ok {
		return
	}

	a.hasTarget = false
	best := math.Inf(1)
	components.Combatant.Each(a.engine.World(), func(e *donburi.Entry) {
		c := components.Combatant.Get(e)
		if !c.Alive() || !e.HasComponent(components.Body) {
			return
		}
		p, ok := provider.Position(components.Body.Get(e).ID)
		if !ok {
			return
		}
		if d := gamemath.HorizontalDistance(pos, p); d < best {
			best = d
			a.target = p
			a.hasTarget = true
		}
	})
	a.dist = best

	if !a.hasTarget {
		provider.SetHorizontalVelocity(body, 0, 0)
		return
	}

	dir := gamemath.FlatDirection(pos, a.target)
	switch {
	case a.dist > a.PreferRange+2:
		provider.SetHorizontalVelocity(body, dir.X*a.Speed, dir.Y*a.Speed)
	case a.dist < a.PreferRange-4 && a.dist > a.swordReach():
		provider.SetHorizontalVelocity(body, -dir.X*a.Speed, -dir.Y*a.Speed)
	default:
		provider.SetHorizontalVelocity(body, 0, 0)
	}
}

func (a *Autopilot) swordReach() float64 {
	return a.engine.Config().Player.SwordRange
}

func (a *Autopilot) MeleeDown() bool {
	return a.hasTarget && a.dist < a.swordReach()
}

func (a *Autopilot) FireDown() bool {
	return a.hasTarget && a.dist >= a.swordReach() && a.engine.Arsenal().CurrentMagazine > 0
}

func (a *Autopilot) ReloadDown() bool {
	ars := a.engine.Arsenal()
	if ars.CurrentMagazine == 0 {
		return true
	}
	return !a.hasTarget && ars.CurrentMagazine < ars.MagazineSize
}

// AimRay aims level from the eye at the target's body.
func (a *Autopilot) AimRay() (gamemath.Vec3, gamemath.Vec3, bool) {
	if !a.hasTarget {
		return gamemath.Vec3{}, gamemath.Vec3{}, false
	}
	pos, ok := a.engine.PlayerPosition()
	if !ok {
		return gamemath.Vec3{}, gamemath.Vec3{}, false
	}
	eye := a.engine.Config().Player.EyeHeight
	origin := pos.Add(gamemath.V3(0, eye, 0))
	aimAt := gamemath.V3(a.target.X, pos.Y+eye, a.target.Z)
	return origin, aimAt.Sub(origin).Normalized(), true
}
