package components

import "github.com/automoto/knightfall/shared/gamemath"

// Hooks receives scoring, loot and narrative notifications. Implementations
// must not mutate the world from inside a callback.
type Hooks interface {
	OnKill(pos gamemath.Vec3)
	OnBossKill(name string, pos gamemath.Vec3)
	OnLevelComplete(index int)
	OnPlayerHit(damage float64)
	DropLoot(pos gamemath.Vec3)
	Narrate(msg string)
}

// NopHooks ignores every notification.
type NopHooks struct{}

func (NopHooks) OnKill(gamemath.Vec3)             {}
func (NopHooks) OnBossKill(string, gamemath.Vec3) {}
func (NopHooks) OnLevelComplete(int)              {}
func (NopHooks) OnPlayerHit(float64)              {}
func (NopHooks) DropLoot(gamemath.Vec3)           {}
func (NopHooks) Narrate(string)                   {}

// Controls reports the attack keys for the current tick.
type Controls interface {
	MeleeDown() bool
	FireDown() bool
	ReloadDown() bool
}

// AimProvider supplies the camera ray through the crosshair.
type AimProvider interface {
	AimRay() (origin, dir gamemath.Vec3, ok bool)
}
