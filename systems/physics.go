package systems

import (
	"github.com/automoto/knightfall/components"
	"github.com/automoto/knightfall/physics"
	"github.com/yohamta/donburi/ecs"
)

// StepPhysics integrates body motion when the provider owns its own stepping.
// External providers that move bodies elsewhere simply do not implement it.
func StepPhysics(ecs *ecs.ECS) {
	if s, ok := components.GetProvider(ecs.World).(physics.Stepper); ok {
		s.Step(components.GetClock(ecs.World).DT)
	}
}
