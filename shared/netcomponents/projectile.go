package netcomponents

import "github.com/yohamta/donburi"

type NetProjectileData struct {
	X, Y, Z          float64
	VelX, VelY, VelZ float64 // Client extrapolation between snapshots
	Side             int     // 0=Player, 1=Enemy
	Element          string
}

var NetProjectile = donburi.NewComponentType[NetProjectileData]()

// LerpNetProjectile interpolates between two projectile states
func LerpNetProjectile(from, to NetProjectileData, t float64) *NetProjectileData {
	out := to
	out.X = from.X + (to.X-from.X)*t
	out.Y = from.Y + (to.Y-from.Y)*t
	out.Z = from.Z + (to.Z-from.Z)*t
	return &out
}
