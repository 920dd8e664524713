package systems

import (
	"github.com/automoto/knightfall/components"
	"github.com/yohamta/donburi/ecs"
)

// WithPauseCheck skips system while the clock is paused or the tick carries
// no time.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		clock := components.GetClock(e.World)
		if clock.Paused || clock.DT <= 0 {
			return
		}
		system(e)
	}
}
