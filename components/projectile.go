package components

import (
	"github.com/automoto/knightfall/config"
	"github.com/automoto/knightfall/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Side says who fired a projectile and therefore what it can hit.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

type ProjectileData struct {
	Position gamemath.Vec3
	Velocity gamemath.Vec3
	Lifetime float64 // seconds left, removed at or below zero
	Damage   float64
	Element  config.Element
	Side     Side
	Owner    donburi.Entity // firing boss, only meaningful on SideEnemy
}

var Projectile = donburi.NewComponentType[ProjectileData]()
