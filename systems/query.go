package systems

import (
	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/automoto/knightfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// collect snapshots the entries of a component so callers can add or remove
// entities while walking the result.
func collect[T any](w donburi.World, c *donburi.ComponentType[T]) []*donburi.Entry {
	var out []*donburi.Entry
	c.Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

func playerEntry(w donburi.World) (*donburi.Entry, bool) {
	p, ok := tags.Player.First(w)
	if !ok || !p.Valid() {
		return nil, false
	}
	return p, true
}

// bodyPosition returns the provider position of an entity's body. A stale
// handle reports false.
func bodyPosition(w donburi.World, e *donburi.Entry) (gamemath.Vec3, bool) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Body) {
		return gamemath.Vec3{}, false
	}
	return components.GetProvider(w).Position(components.Body.Get(e).ID)
}

// PlayerPosition returns the player's body origin.
func PlayerPosition(w donburi.World) (gamemath.Vec3, bool) {
	p, ok := playerEntry(w)
	if !ok {
		return gamemath.Vec3{}, false
	}
	return bodyPosition(w, p)
}

// AliveRegulars counts regular enemies that are not dead.
func AliveRegulars(w donburi.World) int {
	n := 0
	tags.Enemy.Each(w, func(e *donburi.Entry) {
		if components.Combatant.Get(e).Alive() {
			n++
		}
	})
	return n
}

// activeBoss returns the director's boss if it is still in the world.
func activeBoss(w donburi.World) (*donburi.Entry, bool) {
	enc := components.GetEncounter(w)
	if enc.Boss == nil || !enc.Boss.Valid() {
		return nil, false
	}
	return enc.Boss, true
}

// removeCombatant releases the body and removes the entity.
func removeCombatant(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Body) {
		components.GetProvider(ecs.World).Release(components.Body.Get(e).ID)
	}
	ecs.World.Remove(e.Entity())
}

func removeEntry(ecs *ecs.ECS, e *donburi.Entry) {
	if e != nil && e.Valid() {
		ecs.World.Remove(e.Entity())
	}
}
